package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is shared by the backend server and the map viewer
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	ReportsFile     string
	DirectionsURL   string
	DirectionsKey   string
	Region          string
	BackendURL      string
	RouteTimeout    time.Duration
	FetchTimeout    time.Duration
	RefreshSchedule string
}

// Load reads .env (if present) and the process environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("GO_ENV", "development"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		ReportsFile:     getEnv("REPORTS_FILE", "data/reports.json"),
		DirectionsURL:   getEnv("DIRECTIONS_URL", "https://maps.googleapis.com/maps/api/directions/json"),
		DirectionsKey:   getEnv("DIRECTIONS_API_KEY", ""),
		Region:          getEnv("REGION", "IN"),
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:8080"),
		RouteTimeout:    getDuration("ROUTE_TIMEOUT", 15*time.Second),
		FetchTimeout:    getDuration("FETCH_TIMEOUT", 10*time.Second),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "@every 30s"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
