// Package console implements the interactive command loop that drives the
// restaurant services.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"home-food/internal/logger"
	"home-food/internal/models"
	"home-food/internal/services/fulfillment"
	"home-food/internal/services/menu"
	"home-food/internal/services/notification"
	"home-food/internal/services/order"
	"home-food/internal/services/payment"
	"home-food/internal/services/reservation"
)

// Deps bundles the services the command loop drives. Every operation
// receives its collaborators explicitly; the loop holds no hidden state.
type Deps struct {
	Catalog    *menu.Catalog
	Ledger     *order.Ledger
	Dispatcher *payment.Dispatcher
	Router     *fulfillment.Router
	Sink       *notification.Sink
	Book       *reservation.Book
	Logger     *logger.Logger
}

// App wires the restaurant services behind the numbered command menu.
type App struct {
	restaurantName string
	in             *bufio.Scanner
	out            io.Writer
	deps           Deps
}

// New creates the command loop reading from in and writing to out.
func New(restaurantName string, in io.Reader, out io.Writer, deps Deps) *App {
	return &App{
		restaurantName: restaurantName,
		in:             bufio.NewScanner(in),
		out:            out,
		deps:           deps,
	}
}

// Run drives the command loop until the user exits or input ends. Every
// recoverable error is printed and the loop continues; only the exit
// command (or EOF on input) returns.
func (a *App) Run() error {
	for {
		a.printMenu()

		choice, ok := a.prompt("Enter your choice (1-8): ")
		if !ok {
			return a.in.Err()
		}
		requestID := logger.GenerateRequestID()

		switch strings.TrimSpace(choice) {
		case "1":
			a.showMenu()
		case "2":
			a.addLine(requestID)
		case "3":
			a.removeLine(requestID)
		case "4":
			a.makeReservation(requestID)
		case "5":
			a.showOrder()
		case "6":
			a.checkout(requestID)
		case "7":
			fmt.Fprintf(a.out, "Thank you for visiting %s. See you again!\n", a.restaurantName)
			return nil
		case "8":
			a.showReservations()
		default:
			fmt.Fprintln(a.out, "Invalid choice.")
			a.deps.Logger.Debug("invalid_menu_choice", "Unrecognized menu choice", requestID, map[string]interface{}{
				"choice": strings.TrimSpace(choice),
			})
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprintf(a.out, "\n====== %s ======\n", a.restaurantName)
	fmt.Fprintln(a.out, "1. Show menu")
	fmt.Fprintln(a.out, "2. Add to order")
	fmt.Fprintln(a.out, "3. Remove from order")
	fmt.Fprintln(a.out, "4. Make a reservation")
	fmt.Fprintln(a.out, "5. Show order")
	fmt.Fprintln(a.out, "6. Checkout")
	fmt.Fprintln(a.out, "7. Exit")
	fmt.Fprintln(a.out, "8. Show reservations")
}

// prompt prints the label and reads one input line. The second return is
// false once input is exhausted.
func (a *App) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

func (a *App) showMenu() {
	fmt.Fprintln(a.out, "Menu:")
	for _, item := range a.deps.Catalog.Items() {
		fmt.Fprintf(a.out, "%s: $%v\n", item.Name, item.Price)
	}
}

func (a *App) addLine(requestID string) {
	name, ok := a.prompt("Item to add: ")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)

	qtyInput, ok := a.prompt("Quantity: ")
	if !ok {
		return
	}
	// Malformed numbers never reach the ledger.
	qty, err := strconv.Atoi(strings.TrimSpace(qtyInput))
	if err != nil {
		fmt.Fprintln(a.out, "Quantity must be a whole number.")
		return
	}

	if err := a.deps.Ledger.AddLine(name, qty); err != nil {
		fmt.Fprintln(a.out, err)
		a.deps.Logger.Debug("add_line_rejected", "Order line rejected", requestID, map[string]interface{}{
			"item":     name,
			"quantity": qty,
		})
		return
	}
	fmt.Fprintf(a.out, "%d x %s added to the order.\n", qty, name)
}

func (a *App) removeLine(requestID string) {
	name, ok := a.prompt("Item to remove: ")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)

	if err := a.deps.Ledger.RemoveLine(name); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	fmt.Fprintf(a.out, "%s removed from the order.\n", name)
}

func (a *App) makeReservation(requestID string) {
	name, ok := a.prompt("Name for the reservation: ")
	if !ok {
		return
	}
	timeInput, ok := a.prompt("Reservation time (HH:MM): ")
	if !ok {
		return
	}

	res, err := a.deps.Book.Add(strings.TrimSpace(name), strings.TrimSpace(timeInput), requestID)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid time format. Use HH:MM.")
		return
	}
	fmt.Fprintf(a.out, "Reservation for %s at %s confirmed.\n", res.Name, res.Time)
}

func (a *App) showOrder() {
	fmt.Fprintln(a.out, "Order:")
	for _, line := range a.deps.Ledger.Lines() {
		fmt.Fprintf(a.out, "%s x%d\n", line.ItemName, line.Quantity)
	}
}

func (a *App) showReservations() {
	fmt.Fprintln(a.out, "Reservations:")
	for _, res := range a.deps.Book.List() {
		fmt.Fprintf(a.out, "%s - %s\n", res.Name, res.Time)
	}
}

// checkout settles the current order: total, one payment, notifications,
// then fulfillment routing. A payment failure returns to the loop before
// any notification or routing side effect.
func (a *App) checkout(requestID string) {
	total, err := a.deps.Ledger.TotalPrice()
	if err != nil {
		fmt.Fprintln(a.out, err)
		a.deps.Logger.Error("total_unavailable", "Could not total the order", requestID, err, nil)
		return
	}

	fmt.Fprintln(a.out, "Choose a payment method:")
	fmt.Fprintln(a.out, "1. Credit Card")
	fmt.Fprintln(a.out, "2. Cash")
	token, ok := a.prompt("Enter payment method (1/2): ")
	if !ok {
		return
	}
	method := models.ParsePaymentChoice(strings.TrimSpace(token))

	rec, err := a.deps.Dispatcher.Process(method, total, requestID)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	lines := a.deps.Ledger.Lines()
	if err := a.deps.Sink.NotifyAll(lines, requestID); err != nil {
		fmt.Fprintln(a.out, err)
	}

	route := a.deps.Router.RouteFor(total)
	a.deps.Router.Process(route, lines, rec, requestID)

	fmt.Fprintf(a.out, "Payment completed via %s.\n", rec.Method)
}
