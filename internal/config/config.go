package config

import (
	"os"
	"strings"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	AllowOrigins       string
	AllowResetProducts bool
}

// Load reads configuration from environment variables. Call godotenv.Load
// beforehand if values should come from a .env file.
func Load() Config {
	addr := os.Getenv("MARKETPLACE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	origins := strings.TrimSpace(os.Getenv("CORS_ALLOW_ORIGINS"))
	if origins == "" {
		origins = "*"
	}

	return Config{
		Addr:               addr,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AllowOrigins:       origins,
		AllowResetProducts: os.Getenv("ALLOW_RESET_PRODUCTS") == "1",
	}
}
