// Package notification fans completed-order notices out to registered
// listeners.
package notification

import (
	"fmt"
	"io"

	"home-food/internal/logger"
	"home-food/internal/models"
)

// Listener receives the lines of a completed order.
type Listener interface {
	Update(lines []models.OrderLine) error
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(lines []models.OrderLine) error

func (f ListenerFunc) Update(lines []models.OrderLine) error {
	return f(lines)
}

// Sink is an ordered registry of order-completion listeners. Listeners are
// invoked synchronously in subscription order and are not isolated from each
// other: the first failure aborts the remaining notifications.
// TODO: isolate listener failures so one broken listener cannot starve the rest.
type Sink struct {
	listeners []Listener
	logger    *logger.Logger
}

// NewSink creates an empty sink.
func NewSink(log *logger.Logger) *Sink {
	return &Sink{logger: log}
}

// Subscribe appends l. There is no de-duplication and no unsubscribe.
func (s *Sink) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// NotifyAll invokes every listener once, in subscription order.
func (s *Sink) NotifyAll(lines []models.OrderLine, requestID string) error {
	for i, l := range s.listeners {
		if err := l.Update(lines); err != nil {
			s.logger.Error("notification_failed", "Listener failed; remaining listeners skipped", requestID, err, map[string]interface{}{
				"listener_index": i,
				"subscribed":     len(s.listeners),
			})
			return fmt.Errorf("listener %d: %w", i, err)
		}
	}

	s.logger.Debug("customers_notified", "All listeners notified", requestID, map[string]interface{}{
		"subscribed": len(s.listeners),
	})
	return nil
}

// NewCustomerListener returns the stock listener that prints the customer's
// processed notice to out.
func NewCustomerListener(out io.Writer) Listener {
	return ListenerFunc(func([]models.OrderLine) error {
		_, err := fmt.Fprintln(out, "Your order has been processed.")
		return err
	})
}
