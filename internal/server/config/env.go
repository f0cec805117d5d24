package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables. A .env file in
// the working directory is loaded first if present; variables already set in
// the process environment win over the file.
//
// Recognized variables:
//
//	RUN_ADDRESS   HTTP bind address
//	DATABASE_DSN  PostgreSQL DSN
//	JWT_SECRET    token signing secret
//	TOKEN_TTL     token lifetime, Go duration string (e.g. "1h")
//	CORS_ORIGIN   CORS allowed origin
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("RUN_ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		config.CORSAllowedOrigin = v
	}
}
