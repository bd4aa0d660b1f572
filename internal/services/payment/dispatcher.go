// Package payment settles order totals with one of the two accepted methods.
package payment

import (
	"errors"
	"fmt"
	"io"

	"home-food/internal/logger"
	"home-food/internal/models"
)

// ErrInvalidAmount is returned for non-positive payment amounts.
var ErrInvalidAmount = errors.New("payment amount must be greater than 0")

// Dispatcher processes payments and reports them on the console.
type Dispatcher struct {
	out    io.Writer
	logger *logger.Logger
}

// NewDispatcher creates a dispatcher reporting to out.
func NewDispatcher(out io.Writer, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		out:    out,
		logger: log,
	}
}

// Process charges amount with the chosen method and returns the receipt.
// A rejected amount has no side effects; the caller reports it and the
// session continues. Records are never stored.
func (d *Dispatcher) Process(method models.PaymentMethod, amount float64, requestID string) (models.PaymentRecord, error) {
	if amount <= 0 {
		return models.PaymentRecord{}, fmt.Errorf("%w: got %v", ErrInvalidAmount, amount)
	}

	rec := models.NewPaymentRecord(method, amount)

	switch method {
	case models.CreditCard:
		fmt.Fprintf(d.out, "Processing credit card payment: $%v\n", amount)
	case models.Cash:
		fmt.Fprintf(d.out, "Processing cash payment: $%v\n", amount)
	}

	d.logger.Info("payment_processed", fmt.Sprintf("Processed %s payment", method), requestID, map[string]interface{}{
		"receipt_id": rec.ReceiptID,
		"method":     string(method),
		"amount":     amount,
	})

	return rec, nil
}
