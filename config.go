package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all environment configuration for the storefront service.
// MongoURL and StripeSecretKey are optional: with no MongoURL the catalog
// degrades to explicit store-unavailable errors, and with no secret key
// checkout is disabled while the catalog keeps working.
type Config struct {
	Port            string
	MongoURL        string
	MongoDB         string
	StripeSecretKey string
	Currency        string
	CheckoutTimeout time.Duration
	AllowOrigins    []string
}

// LoadConfig loads environment variables into Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8000"),
		MongoURL:        os.Getenv("MONGO_URL"),
		MongoDB:         getEnv("MONGO_DB", "storefront"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:        getEnv("CHECKOUT_CURRENCY", "usd"),
		CheckoutTimeout: 30 * time.Second,
		AllowOrigins:    strings.Split(getEnv("CORS_ALLOW_ORIGINS", "*"), ","),
	}

	if v := os.Getenv("CHECKOUT_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid CHECKOUT_TIMEOUT_SECONDS value %q", v)
		}
		cfg.CheckoutTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
