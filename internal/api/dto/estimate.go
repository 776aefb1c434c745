package dto

import "time"

// EstimateRequest carries a finished route (depot first) and a real start
// timestamp to project wall-clock arrival times.
type EstimateRequest struct {
	Stops     []StopRequest `json:"stops"`
	StartTime time.Time     `json:"start_time"`
}

type StopETAResponse struct {
	Location       string    `json:"location"`
	ArrivalTime    time.Time `json:"arrival_time"`
	ServiceMinutes int       `json:"service_minutes"`
}

type EstimateResponse struct {
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Stops     []StopETAResponse `json:"stops"`
}
