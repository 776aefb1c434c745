package domain

import "testing"

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"high", PriorityHigh, false},
		{"Medium", PriorityMedium, false},
		{" low ", PriorityLow, false},
		{"urgent", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParsePriority(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPriorityOrdering(t *testing.T) {
	if !(PriorityHigh > PriorityMedium && PriorityMedium > PriorityLow) {
		t.Fatal("priority ranks must order high > medium > low")
	}
}

func TestParseStrategy(t *testing.T) {
	for _, in := range []string{"nearest", "priority", "hybrid", " Hybrid "} {
		if _, err := ParseStrategy(in); err != nil {
			t.Errorf("ParseStrategy(%q): unexpected error: %v", in, err)
		}
	}
	if _, err := ParseStrategy("genetic"); err == nil {
		t.Error("ParseStrategy(genetic): expected error")
	}
}

func TestStopValidate(t *testing.T) {
	valid := DeliveryStop{
		ID:                 "s1",
		Coordinates:        Coordinates{Lat: 28.6139, Lon: 77.2090},
		Priority:           PriorityMedium,
		ServiceTimeMinutes: 5,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(s *DeliveryStop)
	}{
		{"empty id", func(s *DeliveryStop) { s.ID = "" }},
		{"latitude out of range", func(s *DeliveryStop) { s.Coordinates.Lat = 91 }},
		{"longitude out of range", func(s *DeliveryStop) { s.Coordinates.Lon = -181 }},
		{"negative service time", func(s *DeliveryStop) { s.ServiceTimeMinutes = -1 }},
		{"inverted window", func(s *DeliveryStop) { s.Window = &TimeWindow{Earliest: 600, Latest: 500} }},
	}

	for _, tc := range cases {
		stop := valid
		tc.mutate(&stop)
		if err := stop.Validate(); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestStopLabel(t *testing.T) {
	withAddress := DeliveryStop{ID: "s1", Address: "12 Hostel Road"}
	if got := withAddress.Label(); got != "12 Hostel Road" {
		t.Errorf("Label() = %q, want address", got)
	}

	withoutAddress := DeliveryStop{ID: "s1"}
	if got := withoutAddress.Label(); got != "s1" {
		t.Errorf("Label() = %q, want id", got)
	}
}
