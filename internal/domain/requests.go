package domain

type ConfirmLocationRequest struct {
	DeviceID string  `json:"device_id" validate:"required"`
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
}

type ConfirmLocationResponse struct {
	State   VerdictState `json:"state"`
	Address string       `json:"address,omitempty"`
	MapLink string       `json:"map_link,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

type SubmitReportRequest struct {
	DeviceID string  `json:"device_id" validate:"required"`
	Type     string  `json:"type" validate:"required"`
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	// Photo is the raw captured image, base64-encoded by the client.
	// Optional; an absent photo submits with an empty payload.
	Photo string `json:"photo,omitempty"`
}

type SubmitReportResponse struct {
	ReportID    string       `json:"report_id"`
	StationKey  string       `json:"station_key"`
	StationName string       `json:"station_name"`
	Status      ReportStatus `json:"status"`
}

type CreateStationRequest struct {
	Name      string        `json:"station_name" validate:"required"`
	Latitude  string        `json:"latitude" validate:"required"`
	Longitude string        `json:"longitude" validate:"required"`
	Status    StationStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateStationRequest struct {
	Name      *string        `json:"station_name" validate:"omitempty,min=1"`
	Latitude  *string        `json:"latitude"`
	Longitude *string        `json:"longitude"`
	Status    *StationStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type ListReportsRequest struct {
	StationKey string `json:"station_key"`
	Page       int    `query:"page" validate:"min=1"`
	Limit      int    `query:"limit" validate:"min=1,max=100"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"`
}

type ReportStats struct {
	ReportCount   int64            `json:"report_count"`
	UniqueDevices int64            `json:"unique_devices"`
	PerStation    map[string]int64 `json:"per_station"`
	Minutes       int              `json:"minutes"`
}
