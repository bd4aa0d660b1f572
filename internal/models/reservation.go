package models

// Reservation represents a table booking. Time is a validated HH:MM clock
// string; bookings are kept in the order they were made and may repeat.
type Reservation struct {
	Name string `json:"name"`
	Time string `json:"time"`
}
