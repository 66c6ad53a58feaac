package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/dailycart/internal/briefing"
)

type AppConfig struct {
	Port string

	// BriefingInterval controls how often briefings are generated for each market.
	BriefingInterval time.Duration

	// Markets to generate briefings for.
	Markets []briefing.Market

	// In-memory store retention.
	StoreMaxHistory int           // max number of briefings per market (0 = unlimited)
	StoreMaxAge     time.Duration // max age of briefings (0 = unlimited)

	// SalesWindow is how many recent sales records feed a stock plan.
	SalesWindow int
	// SampleSalesDays seeds each market with demo history at startup (0 = off).
	SampleSalesDays int

	// Location is the vendors' time zone.
	Location *time.Location
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	// Briefing interval: default 1 hour.
	interval, err := time.ParseDuration(getenvDefault("BRIEFING_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid BRIEFING_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("invalid BRIEFING_INTERVAL: must be positive, got %s", interval)
	}
	cfg.BriefingInterval = interval

	// Store retention.
	cfg.StoreMaxHistory, err = getenvInt("STORE_MAX_HISTORY", 48) // two days at hourly intervals
	if err != nil {
		return nil, err
	}

	maxAge, err := time.ParseDuration(getenvDefault("STORE_MAX_AGE", "72h"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	if cfg.SalesWindow, err = getenvInt("SALES_WINDOW_DAYS", 7); err != nil {
		return nil, err
	}
	if cfg.SampleSalesDays, err = getenvInt("SAMPLE_SALES_DAYS", 0); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(getenvDefault("TIMEZONE", "Asia/Kolkata"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	cfg.Markets = parseMarkets(getenvDefault("MARKET_LOCATIONS", "Gandhipuram, Coimbatore"))

	return cfg, nil
}

// parseMarkets splits a ';'-separated list; labels themselves may contain commas.
func parseMarkets(raw string) []briefing.Market {
	var markets []briefing.Market
	for _, part := range strings.Split(raw, ";") {
		if label := strings.TrimSpace(part); label != "" {
			markets = append(markets, briefing.Market(label))
		}
	}
	return markets
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
