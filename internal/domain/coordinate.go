package domain

import "fmt"

type Coordinate struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

// IsUnset reports whether the coordinate is the (0,0) "no fix yet" value.
// A zero coordinate must never pass for a real GPS fix anywhere in the pipeline.
func (c Coordinate) IsUnset() bool {
	return c.Lat == 0 && c.Lng == 0
}

// MapLink builds the fallback map URL embedded in stored reports.
func (c Coordinate) MapLink() string {
	return fmt.Sprintf("https://maps.example/?q=%v,%v", c.Lat, c.Lng)
}

// ServiceArea is the circular fence reports must originate from.
// Configured once at startup, immutable afterwards.
type ServiceArea struct {
	Center       Coordinate
	RadiusMeters float64
	// AddressMatch is an optional substring checked case-insensitively against
	// the reverse-geocoded address as an independent confirmation path.
	AddressMatch string
}
