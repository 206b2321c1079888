package domain

import "time"

// StationNotification is queued after a report is persisted so the assigned
// station's dispatch endpoint can be pinged out of band.
type StationNotification struct {
	ReportID    string    `json:"report_id"`
	StationKey  string    `json:"station_key"`
	StationName string    `json:"station_name"`
	Type        string    `json:"type"`
	MapLink     string    `json:"map_link"`
	QueuedAt    time.Time `json:"queued_at"`
}
