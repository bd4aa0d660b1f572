package models

// Route represents which fulfillment sequence handles a finalized order.
type Route string

const (
	RouteCashier Route = "cashier"
	RouteKitchen Route = "kitchen"
)
