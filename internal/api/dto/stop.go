package dto

// StopRequest is the wire shape of a delivery stop.
type StopRequest struct {
	ID                 string  `json:"id"`
	Address            string  `json:"address"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Priority           string  `json:"priority"`
	ServiceTimeMinutes int     `json:"service_time_minutes"`
	EarliestArrival    *int    `json:"earliest_arrival,omitempty"`
	LatestArrival      *int    `json:"latest_arrival,omitempty"`
}

type StopResponse struct {
	ID                 string  `json:"id"`
	Address            string  `json:"address,omitempty"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Priority           string  `json:"priority"`
	ServiceTimeMinutes int     `json:"service_time_minutes"`
	EarliestArrival    *int    `json:"earliest_arrival,omitempty"`
	LatestArrival      *int    `json:"latest_arrival,omitempty"`
}
