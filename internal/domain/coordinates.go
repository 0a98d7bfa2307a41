package domain

import "strconv"

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
// Ranges are not validated here; out-of-range values pass through to the
// routing provider and come back as provider statuses.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as "lat,lng" for external API compatibility.
func (c Coordinates) LatLng() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}
