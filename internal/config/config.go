package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the restaurant console.
type Config struct {
	Restaurant RestaurantConfig
	Log        LogConfig
}

// RestaurantConfig holds front-of-house settings.
type RestaurantConfig struct {
	Name string
	// KitchenThreshold is the order total above which a finalized order is
	// handed to the kitchen instead of the cashier.
	KitchenThreshold float64
}

// LogConfig holds structured-log settings. File is a path, or "stderr" to
// keep logs off the interactive console without touching disk.
type LogConfig struct {
	Level string
	File  string
}

// Load reads an optional .env file and then the environment, applying
// defaults for anything unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	threshold, err := strconv.ParseFloat(getEnv("KITCHEN_THRESHOLD", "50"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid KITCHEN_THRESHOLD: %w", err)
	}

	return &Config{
		Restaurant: RestaurantConfig{
			Name:             getEnv("RESTAURANT_NAME", "HOME FOOD"),
			KitchenThreshold: threshold,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "home-food.log"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
