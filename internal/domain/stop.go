package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Priority ranks how urgently a stop must be served. Higher values outrank lower.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return 0, fmt.Errorf("parse priority: unknown value %q", s)
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// TimeWindow is an optional arrival constraint on a stop, expressed in
// minutes since the start of the delivery day.
type TimeWindow struct {
	Earliest int
	Latest   int
}

// DeliveryStop is a single location a delivery worker must visit.
// The stop list for an optimization request is built fresh by the order
// assignment layer; the engine never retains or mutates stops across calls.
type DeliveryStop struct {
	ID                 string
	Address            string
	Coordinates        Coordinates
	Priority           Priority
	ServiceTimeMinutes int
	Window             *TimeWindow
}

// Label returns the display name for the stop: the street address when one
// was supplied, otherwise the stop identifier.
func (s DeliveryStop) Label() string {
	if strings.TrimSpace(s.Address) != "" {
		return s.Address
	}
	return s.ID
}

// Validate checks the constraints the engine assumes its callers enforce.
// Coordinate validation belongs at the boundary; the geometry itself never
// rejects malformed input.
func (s DeliveryStop) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("validate stop: id must be non-empty")
	}
	if math.IsNaN(s.Coordinates.Lat) || math.IsInf(s.Coordinates.Lat, 0) ||
		math.IsNaN(s.Coordinates.Lon) || math.IsInf(s.Coordinates.Lon, 0) {
		return fmt.Errorf("validate stop %s: coordinates must be finite", s.ID)
	}
	if s.Coordinates.Lat < -90 || s.Coordinates.Lat > 90 {
		return fmt.Errorf("validate stop %s: latitude %v out of range [-90,90]", s.ID, s.Coordinates.Lat)
	}
	if s.Coordinates.Lon < -180 || s.Coordinates.Lon > 180 {
		return fmt.Errorf("validate stop %s: longitude %v out of range [-180,180]", s.ID, s.Coordinates.Lon)
	}
	if s.ServiceTimeMinutes < 0 {
		return fmt.Errorf("validate stop %s: service time must be >= 0", s.ID)
	}
	if s.Window != nil && s.Window.Earliest > s.Window.Latest {
		return fmt.Errorf("validate stop %s: time window earliest %d after latest %d",
			s.ID, s.Window.Earliest, s.Window.Latest)
	}
	return nil
}
