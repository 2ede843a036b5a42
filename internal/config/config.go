package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by DECIDABLE_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("DECIDABLE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be set.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// CheckParallelism returns how many catalog checks run at once.
// Defaults to 4; 0 means unbounded.
func CheckParallelism() int {
	n, err := strconv.Atoi(os.Getenv("CHECK_PARALLELISM"))
	if err != nil || n < 0 {
		return 4
	}
	return n
}

// LiftParallelism bounds concurrent elements in effectful liftings.
// Defaults to 0 (unbounded).
func LiftParallelism() int {
	n, err := strconv.Atoi(os.Getenv("LIFT_PARALLELISM"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
