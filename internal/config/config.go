package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the optional .env file into the process environment.
// A missing file is not an error; defaults cover every setting.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetEnv returns the value of key, or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
