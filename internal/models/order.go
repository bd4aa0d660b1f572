package models

// OrderLine represents one item entry in the active order.
// An item appears at most once; repeated additions accumulate its quantity.
type OrderLine struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}
