package domain

import "math"

// Earth radius used by the haversine formula, in kilometers.
const earthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the great-circle distance to other in kilometers using
// the haversine formula. Straight-line distance is a deliberate proxy for
// road distance; the engine never consults a road network.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	lat1 := radians(c.Lat)
	lat2 := radians(other.Lat)
	dLat := radians(other.Lat - c.Lat)
	dLon := radians(other.Lon - c.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

func radians(degrees float64) float64 { return degrees * math.Pi / 180 }
