package fulfillment

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"home-food/internal/logger"
	"home-food/internal/models"
)

func testRouter() (*Router, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewRouter(DefaultKitchenThreshold, out, logger.New("test", "error", io.Discard)), out
}

func TestRouteFor(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  models.Route
	}{
		{name: "small order", total: 27, want: models.RouteCashier},
		{name: "just under threshold", total: 49.99, want: models.RouteCashier},
		{name: "exactly at threshold", total: 50, want: models.RouteCashier},
		{name: "just over threshold", total: 50.01, want: models.RouteKitchen},
		{name: "large order", total: 60, want: models.RouteKitchen},
	}

	r, _ := testRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.RouteFor(tt.total))
		})
	}
}

func TestRouteForCustomThreshold(t *testing.T) {
	r := NewRouter(100, io.Discard, logger.New("test", "error", io.Discard))
	assert.Equal(t, models.RouteCashier, r.RouteFor(60))
	assert.Equal(t, models.RouteKitchen, r.RouteFor(100.5))
}

func TestProcessCashierSequence(t *testing.T) {
	r, out := testRouter()
	lines := []models.OrderLine{
		{ItemName: "Nasi Goreng", Quantity: 2},
		{ItemName: "Sate Ayam", Quantity: 1},
	}
	rec := models.NewPaymentRecord(models.CreditCard, 27)

	r.Process(models.RouteCashier, lines, rec, "req-1")

	got := out.String()
	assert.Contains(t, got, "Nasi Goreng x2")
	assert.Contains(t, got, "Sate Ayam x1")
	assert.Contains(t, got, "Order processed by Cashier.")
	assert.Contains(t, got, "Customer notified about the order.")
	assert.NotContains(t, got, "Chef")

	// Display must come before the payment report, which must come before
	// the customer notice.
	displayAt := strings.Index(got, "Order:")
	paymentAt := strings.Index(got, "Order processed by Cashier.")
	noticeAt := strings.Index(got, "Customer notified")
	require.True(t, displayAt >= 0 && paymentAt >= 0 && noticeAt >= 0)
	assert.Less(t, displayAt, paymentAt)
	assert.Less(t, paymentAt, noticeAt)
}

func TestProcessKitchenSequence(t *testing.T) {
	r, out := testRouter()
	lines := []models.OrderLine{{ItemName: "Nasi Goreng", Quantity: 6}}
	rec := models.NewPaymentRecord(models.Cash, 60)

	r.Process(models.RouteKitchen, lines, rec, "req-1")

	got := out.String()
	assert.Contains(t, got, "Nasi Goreng x6")
	assert.Contains(t, got, "Order is being prepared by Chef.")
	assert.NotContains(t, got, "Cashier", "kitchen payment step must be a no-op")
	assert.NotContains(t, got, "settled")
}
