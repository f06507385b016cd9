package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to a documented env var.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Snapshot persistence
	SnapshotBackend  string `mapstructure:"SNAPSHOT_BACKEND"` // file | redis
	SnapshotPath     string `mapstructure:"SNAPSHOT_PATH"`
	SnapshotRedisKey string `mapstructure:"SNAPSHOT_REDIS_KEY"`

	// Redis (snapshot backend and job queues)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Share webhook
	ShareWebhookURL string `mapstructure:"SHARE_WEBHOOK_URL"`

	// SMTP (daily digest)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	DigestTo     string `mapstructure:"DIGEST_TO"`

	// Business
	AlertCron      string `mapstructure:"ALERT_CRON"`
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 5)
	viper.SetDefault("SNAPSHOT_BACKEND", "file")
	viper.SetDefault("SNAPSHOT_PATH", "data/snapshot.json")
	viper.SetDefault("SNAPSHOT_REDIS_KEY", "boilerfarm:snapshot")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("ALERT_CRON", "0 7 * * *")
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/boilerfarm/pdfs")

	// Optional .env file for local development, does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
