// Package fulfillment routes a finalized order to the cashier or kitchen
// processing sequence.
package fulfillment

import (
	"fmt"
	"io"

	"home-food/internal/logger"
	"home-food/internal/models"
)

// DefaultKitchenThreshold is the order total above which the kitchen takes
// over from the cashier.
const DefaultKitchenThreshold = 50

// Router executes the three-step fulfillment sequence for a finalized order:
// display, payment step, customer notice. Both routes run the same steps in
// the same order; only the middle step differs.
type Router struct {
	threshold float64
	out       io.Writer
	logger    *logger.Logger
}

// NewRouter creates a router with the given kitchen threshold.
func NewRouter(threshold float64, out io.Writer, log *logger.Logger) *Router {
	return &Router{
		threshold: threshold,
		out:       out,
		logger:    log,
	}
}

// RouteFor selects the processing sequence. Totals strictly above the
// threshold go to the kitchen; a total equal to the threshold stays with
// the cashier.
func (r *Router) RouteFor(total float64) models.Route {
	if total > r.threshold {
		return models.RouteKitchen
	}
	return models.RouteCashier
}

// Process runs the three steps for the chosen route. Payment is settled
// exactly once before routing; rec is the receipt from that settlement, so
// neither route charges again.
func (r *Router) Process(route models.Route, lines []models.OrderLine, rec models.PaymentRecord, requestID string) {
	r.displayOrder(lines)
	r.handlePayment(route, rec)
	r.notifyCustomer(route)

	r.logger.Info("order_routed", fmt.Sprintf("Order fulfilled via %s", route), requestID, map[string]interface{}{
		"route":      string(route),
		"receipt_id": rec.ReceiptID,
		"amount":     rec.Amount,
	})
}

func (r *Router) displayOrder(lines []models.OrderLine) {
	fmt.Fprintln(r.out, "Order:")
	for _, line := range lines {
		fmt.Fprintf(r.out, "%s x%d\n", line.ItemName, line.Quantity)
	}
}

// handlePayment is the only step that differs between routes. The kitchen
// assumes payment settled upstream and does nothing; the cashier reports
// the settlement.
func (r *Router) handlePayment(route models.Route, rec models.PaymentRecord) {
	if route != models.RouteCashier {
		return
	}
	fmt.Fprintf(r.out, "Payment of $%v settled via %s.\n", rec.Amount, rec.Method)
	fmt.Fprintln(r.out, "Order processed by Cashier.")
}

func (r *Router) notifyCustomer(route models.Route) {
	if route == models.RouteKitchen {
		fmt.Fprintln(r.out, "Order is being prepared by Chef.")
		return
	}
	fmt.Fprintln(r.out, "Customer notified about the order.")
}
