package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first; a missing file
// is not an error. Recognized variables:
//
//	API_BASE_URL  — base origin of the backend API
//	GOPAY_DB      — sqlite DSN of the local session store
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("GOPAY_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
}
