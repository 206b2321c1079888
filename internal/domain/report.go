package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "Pending"
	ReportOngoing  ReportStatus = "Ongoing"
	ReportResolved ReportStatus = "Resolved"
)

// FireTypes is the fixed list of incident types a reporter can choose from.
var FireTypes = []string{
	"House on Fire",
	"Post on Fire",
	"Vehicle on Fire",
	"Building on Fire",
	"Grass Fire",
	"Forest Fire",
	"Electrical Fire",
	"Garbage Fire",
}

func ValidFireType(t string) bool {
	for _, ft := range FireTypes {
		if ft == t {
			return true
		}
	}
	return false
}

const (
	ReportDateLayout = "01-02-2006"
	ReportTimeLayout = "15:04:05"
)

// FireReport is the persisted incident record. It is owned by the submitter
// until the single final write; partial records are never stored.
type FireReport struct {
	ID uuid.UUID `json:"id"`
	// DeviceID ties the record to the submitting device for throttling
	// stats; it is not part of the station-facing report document.
	DeviceID      string       `json:"-"`
	Name          string       `json:"name"`
	Contact       string       `json:"contact"`
	Type          string       `json:"type"`
	Date          string       `json:"date"`        // MM-dd-yyyy
	ReportTime    string       `json:"report_time"` // HH:mm:ss
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
	ExactLocation string       `json:"exact_location"`
	Location      string       `json:"location"` // map-link URL
	PhotoPayload  string       `json:"photo_payload"`
	Timestamp     int64        `json:"timestamp"` // epoch millis
	Status        ReportStatus `json:"status"`
	StationKey    string       `json:"station_key"`
	StationName   string       `json:"fire_station_name"`
	AdminNotified bool         `json:"admin_notified"`
	Read          bool         `json:"read"`
}

// StampTimes fills the formatted date/time fields and epoch millis from t.
func (r *FireReport) StampTimes(t time.Time) {
	r.Date = t.Format(ReportDateLayout)
	r.ReportTime = t.Format(ReportTimeLayout)
	r.Timestamp = t.UnixMilli()
}
