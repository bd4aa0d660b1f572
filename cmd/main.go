package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"home-food/internal/config"
	"home-food/internal/console"
	"home-food/internal/logger"
	"home-food/internal/services/fulfillment"
	"home-food/internal/services/menu"
	"home-food/internal/services/notification"
	"home-food/internal/services/order"
	"home-food/internal/services/payment"
	"home-food/internal/services/reservation"
)

func main() {
	var (
		logFile  = flag.String("log-file", "", "Log file path (overrides LOG_FILE; \"stderr\" logs to stderr)")
		logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	// Structured logs go to a file (or stderr) so they never interleave
	// with the interactive console.
	logOut, closeLog, err := openLogOutput(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log output: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	log := logger.New("home-food", cfg.Log.Level, logOut)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", fmt.Sprintf("Starting %s console", cfg.Restaurant.Name), requestID, map[string]interface{}{
		"kitchen_threshold": cfg.Restaurant.KitchenThreshold,
		"log_level":         cfg.Log.Level,
	})

	// Wire the services. Every component receives its collaborators
	// explicitly; there are no package-level globals.
	catalog := menu.DefaultCatalog()
	ledger := order.NewLedger(catalog)
	dispatcher := payment.NewDispatcher(os.Stdout, log)
	router := fulfillment.NewRouter(cfg.Restaurant.KitchenThreshold, os.Stdout, log)
	book := reservation.NewBook(log)

	sink := notification.NewSink(log)
	sink.Subscribe(notification.NewCustomerListener(os.Stdout))

	app := console.New(cfg.Restaurant.Name, os.Stdin, os.Stdout, console.Deps{
		Catalog:    catalog,
		Ledger:     ledger,
		Dispatcher: dispatcher,
		Router:     router,
		Sink:       sink,
		Book:       book,
		Logger:     log,
	})

	if err := app.Run(); err != nil {
		log.Error("console_failed", "Console loop failed", requestID, err, nil)
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

// openLogOutput resolves the configured log destination.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "stderr" {
		return os.Stderr, func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}
