package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Addr    string
	DataDir string
	DBPath  string

	LogLevel string

	// RedisAddr switches the rate-limit window store to redis when set,
	// for deployments running more than one instance.
	RedisAddr string

	SweepInterval   time.Duration
	RequireDeviceID bool

	JWTSecret            string
	OperatorPasswordHash string
}

func Load() Config {
	addr := os.Getenv("SHOPGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("SHOPGATE_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	dbPath := os.Getenv("SHOPGATE_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "shopgate.db")
	}
	logLevel := os.Getenv("SHOPGATE_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	sweepMinutes := envInt("SHOPGATE_SWEEP_INTERVAL_MINUTES", 5)
	if sweepMinutes < 1 {
		sweepMinutes = 5
	}

	return Config{
		Addr:                 addr,
		DataDir:              filepath.Clean(dataDir),
		DBPath:               filepath.Clean(dbPath),
		LogLevel:             logLevel,
		RedisAddr:            os.Getenv("SHOPGATE_REDIS_ADDR"),
		SweepInterval:        time.Duration(sweepMinutes) * time.Minute,
		RequireDeviceID:      envBool("SHOPGATE_REQUIRE_DEVICE_ID"),
		JWTSecret:            os.Getenv("SHOPGATE_JWT_SECRET"),
		OperatorPasswordHash: os.Getenv("SHOPGATE_OPERATOR_PASSWORD_HASH"),
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}
