package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Repository selects where user records live: "memory" runs the
	// simulated seeded backend, "mongo" a real one.
	Repository string `env:"REPOSITORY, default=memory"`
	// Store selects the key-value store backing cache and session
	// persistence: "file" or "redis".
	Store string `env:"STORE, default=file"`
	// StorePath is the file-store location; empty picks a per-user default.
	StorePath string `env:"STORE_PATH"`

	Dataset DatasetConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Latency LatencyConfig
}

type DatasetConfig struct {
	// Size is the number of users the memory repository is seeded with.
	Size int `env:"DATASET_SIZE, default=500"`
	// Seed fixes the generator so restarts produce the same dataset.
	Seed int64 `env:"DATASET_SEED, default=1"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=lendsqr_admin"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type LatencyConfig struct {
	// Read and Logout are the artificial delays of the simulated
	// transport. Zero disables them; ignored with a real repository.
	Read   time.Duration `env:"SIMULATED_READ_DELAY,   default=500ms"`
	Logout time.Duration `env:"SIMULATED_LOGOUT_DELAY, default=200ms"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger *slog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}
