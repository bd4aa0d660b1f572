// Package reservation keeps the table reservation book.
package reservation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"home-food/internal/logger"
	"home-food/internal/models"
)

// ErrInvalidTimeFormat is returned for reservation times that are not a
// valid HH:MM clock reading.
var ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")

// ValidateTime accepts clock times like "9:30" or "21:05": an hour in
// [0,24) and a minute in [0,60) separated by a single colon.
func ValidateTime(t string) error {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	if hours < 0 || hours >= 24 || minutes < 0 || minutes >= 60 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	return nil
}

// Book is the append-only, in-memory reservation list. Double bookings are
// allowed; there is no uniqueness constraint on name or time.
type Book struct {
	reservations []models.Reservation
	logger       *logger.Logger
}

// NewBook creates an empty reservation book.
func NewBook(log *logger.Logger) *Book {
	return &Book{logger: log}
}

// Add validates the time and appends the booking. Invalid input is
// discarded and reported; nothing is stored.
func (b *Book) Add(name, t string, requestID string) (models.Reservation, error) {
	if err := ValidateTime(t); err != nil {
		return models.Reservation{}, err
	}

	res := models.Reservation{Name: name, Time: t}
	b.reservations = append(b.reservations, res)

	b.logger.Info("reservation_added", fmt.Sprintf("Reservation booked for %s", name), requestID, map[string]interface{}{
		"name":  name,
		"time":  t,
		"total": len(b.reservations),
	})
	return res, nil
}

// List returns bookings in the order they were made.
func (b *Book) List() []models.Reservation {
	out := make([]models.Reservation, len(b.reservations))
	copy(out, b.reservations)
	return out
}
