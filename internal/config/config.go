package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	Mode         string // canonical | legacy
	SimLatencyMS int
}

func Load() Config {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		DBDSN:        getEnv("DB_DSN", "velocity.db"), // sqlite file in project root
		LogFile:      getEnv("LOG_FILE", ""),
		Mode:         getEnv("MODE", "canonical"),
		SimLatencyMS: getEnvInt("SIM_LATENCY_MS", 0),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MODE=%s SIM_LATENCY_MS=%d LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.Mode, cfg.SimLatencyMS, cfg.LogFile)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
