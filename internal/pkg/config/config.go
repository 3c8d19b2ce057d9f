package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the process configuration. Values come from the environment,
// optionally seeded from a .env file in development.
type Config struct {
	GRPCAddr         string
	FirestoreProject string
	GeminiAPIKey     string
	ShutdownSeconds  int
}

// Load reads configuration from the environment. A missing .env file is not
// an error; deployed environments inject variables directly.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GRPCAddr:         Env("GRPC_ADDR", ":50051"),
		FirestoreProject: Env("FIRESTORE_PROJECT_ID", "demo-marketplace"),
		GeminiAPIKey:     Env("GEMINI_API_KEY", ""),
		ShutdownSeconds:  EnvInt("SHUTDOWN_GRACE_SECONDS", 5),
	}
}

// Env returns the value of key or def when unset or empty.
func Env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// EnvInt returns the integer value of key or def when unset or unparsable.
func EnvInt(key string, def int) int {
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
