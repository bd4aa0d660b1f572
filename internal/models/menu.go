package models

// MenuItem represents a sellable dish and its unit price.
type MenuItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
