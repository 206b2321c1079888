package domain

// User is the reporter profile fetched at submission time.
type User struct {
	DeviceID string `json:"device_id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
}
