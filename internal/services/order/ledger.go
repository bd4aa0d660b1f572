// Package order implements the active order's line-item ledger.
package order

import (
	"errors"
	"fmt"

	"home-food/internal/models"
)

var (
	// ErrUnknownItem is returned when a line references an item the catalog
	// does not carry.
	ErrUnknownItem = errors.New("item is not on the menu")

	// ErrInvalidQuantity is returned for quantities of zero or less.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")

	// ErrLineNotFound is returned when removing an item the order does not
	// contain.
	ErrLineNotFound = errors.New("item is not in the order")

	// ErrPriceUnavailable is returned when a line's item vanished from the
	// catalog between ordering and totalling.
	ErrPriceUnavailable = errors.New("price unavailable for ordered item")
)

// Catalog is the price lookup the ledger validates and totals against.
type Catalog interface {
	PriceOf(name string) (float64, bool)
}

// Ledger tracks one active order. Lines keep the order items were first
// added in; repeated additions accumulate onto the existing line.
type Ledger struct {
	catalog    Catalog
	quantities map[string]int
	names      []string
}

// NewLedger creates an empty ledger over the given catalog.
func NewLedger(catalog Catalog) *Ledger {
	return &Ledger{
		catalog:    catalog,
		quantities: make(map[string]int),
	}
}

// AddLine adds quantity of the named item to the order. Unknown items and
// non-positive quantities are rejected and leave the ledger untouched.
func (l *Ledger) AddLine(itemName string, quantity int) error {
	if _, ok := l.catalog.PriceOf(itemName); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemName)
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if _, ok := l.quantities[itemName]; ok {
		l.quantities[itemName] += quantity
		return nil
	}
	l.quantities[itemName] = quantity
	l.names = append(l.names, itemName)
	return nil
}

// RemoveLine drops the item's line entirely; no partial decrement exists.
func (l *Ledger) RemoveLine(itemName string) error {
	if _, ok := l.quantities[itemName]; !ok {
		return fmt.Errorf("%w: %s", ErrLineNotFound, itemName)
	}
	delete(l.quantities, itemName)
	for i, name := range l.names {
		if name == itemName {
			l.names = append(l.names[:i], l.names[i+1:]...)
			break
		}
	}
	return nil
}

// TotalPrice recomputes the order total on every call; nothing is cached.
func (l *Ledger) TotalPrice() (float64, error) {
	var total float64
	for _, name := range l.names {
		price, ok := l.catalog.PriceOf(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrPriceUnavailable, name)
		}
		total += price * float64(l.quantities[name])
	}
	return total, nil
}

// Lines returns the order in the sequence items were first added.
func (l *Ledger) Lines() []models.OrderLine {
	lines := make([]models.OrderLine, 0, len(l.names))
	for _, name := range l.names {
		lines = append(lines, models.OrderLine{ItemName: name, Quantity: l.quantities[name]})
	}
	return lines
}
