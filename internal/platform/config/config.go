package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	IsProduction  bool
	EnableDBCheck bool
	// MigrationsPath points golang-migrate at the SQL schema files.
	MigrationsPath string
	// BatchInterval is how often the scheduler triggers the closing and
	// realization runs.
	BatchInterval time.Duration
	// BatchActorID is stamped on rows the batch runs mutate.
	BatchActorID string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("BATCH_INTERVAL", "1h")
	viper.SetDefault("BATCH_ACTOR_ID", "system-batch")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	batchIntervalStr := viper.GetString("BATCH_INTERVAL")
	batchInterval, err := time.ParseDuration(batchIntervalStr)
	if err != nil {
		batchInterval = time.Hour
		log.Printf("Warning: Invalid value for BATCH_INTERVAL ('%s'). Defaulting to %s.\n", batchIntervalStr, batchInterval)
	}
	cfg.BatchInterval = batchInterval

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.BatchActorID = viper.GetString("BATCH_ACTOR_ID")

	return cfg, nil
}
