package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	AuthDelay     time.Duration // simulated login/register latency
	CheckoutDelay time.Duration // simulated order-processing latency
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shopwave.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./shopwave.log"
	}
	authDelay := duration("AUTH_DELAY", 800*time.Millisecond)
	checkoutDelay := duration("CHECKOUT_DELAY", 1500*time.Millisecond)

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, AuthDelay: authDelay, CheckoutDelay: checkoutDelay}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s AUTH_DELAY=%s CHECKOUT_DELAY=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.AuthDelay, cfg.CheckoutDelay)
	return cfg
}

func duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] bad %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
