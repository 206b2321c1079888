package domain

import (
	"strconv"
	"strings"
)

type StationStatus string

const (
	StationActive   StationStatus = "Active"
	StationInactive StationStatus = "Inactive"
)

// Station is a read-only snapshot of a fire station taken at submission time.
// Coordinates are stored as strings upstream; badly formed values make the
// station unroutable rather than failing the whole submission.
type Station struct {
	Key       string        `json:"key"`
	Name      string        `json:"station_name"`
	Latitude  string        `json:"latitude"`
	Longitude string        `json:"longitude"`
	Status    StationStatus `json:"status"`
}

// Coordinate parses the stored lat/lng pair. ok is false when either
// value does not parse; such stations are skipped during selection.
func (s Station) Coordinate() (Coordinate, bool) {
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(s.Latitude), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(s.Longitude), 64)
	if errLat != nil || errLng != nil {
		return Coordinate{}, false
	}
	return Coordinate{Lat: lat, Lng: lng}, true
}

func (s Station) IsActive() bool {
	return strings.EqualFold(string(s.Status), string(StationActive))
}
