package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBPath       string
	JWTSecret    string
	IdentityFile string

	SessionTTL      time.Duration
	SubscriptionTTL time.Duration
	PaymentDelay    time.Duration

	// PremiumGate gates task/team creation behind an active subscription.
	// Off, the service behaves like the plain to-do variant.
	PremiumGate bool
}

func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			slog.Warn("env file not found", "files", envFiles)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			slog.Warn("env file not found, using system environment variables")
		}
	}

	jwtSecret, err := getEnvRequired("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		DBPath:          getEnvWithDefault("DB_PATH", "taskmanager.db"),
		JWTSecret:       jwtSecret,
		IdentityFile:    os.Getenv("IDENTITY_FILE"),
		SessionTTL:      getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		SubscriptionTTL: getEnvAsDuration("SUBSCRIPTION_TTL", 30*24*time.Hour),
		PaymentDelay:    getEnvAsDuration("PAYMENT_DELAY", 1500*time.Millisecond),
		PremiumGate:     getEnvAsBool("PREMIUM_GATE", true),
	}

	slog.Info("configuration loaded", "port", cfg.Port, "db_path", cfg.DBPath, "premium_gate", cfg.PremiumGate)

	return cfg, nil
}

// for variables with default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// for required variables
func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}

	return duration
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
