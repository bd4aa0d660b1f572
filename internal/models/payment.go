package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod represents how an order is settled.
type PaymentMethod string

const (
	CreditCard PaymentMethod = "Credit Card"
	Cash       PaymentMethod = "Cash"
)

// ParsePaymentChoice maps a console selection token to a payment method.
// "1" selects credit card; every other token falls back to cash.
func ParsePaymentChoice(token string) PaymentMethod {
	if token == "1" {
		return CreditCard
	}
	return Cash
}

// PaymentRecord represents the result of a processed payment. It is
// reported to the user and never stored; the system keeps no payment history.
type PaymentRecord struct {
	ReceiptID string        `json:"receipt_id"`
	Method    PaymentMethod `json:"method"`
	Amount    float64       `json:"amount"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewPaymentRecord creates a PaymentRecord for a settled amount.
func NewPaymentRecord(method PaymentMethod, amount float64) PaymentRecord {
	return PaymentRecord{
		ReceiptID: uuid.NewString(),
		Method:    method,
		Amount:    amount,
		Timestamp: time.Now().UTC(),
	}
}
