// Package config loads process configuration from the environment (with an
// optional .env file for local development).
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultSessionTTL = 7 * 24 * time.Hour
	defaultDriver     = "sqlite"
	defaultSQLitePath = "passvault.db"
)

type Config struct {
	Env     string
	DB      db
	Crypto  cryptoConfig
	Session session
	Logger  logger
}

type db struct {
	Driver      string `env:"DATABASE_DRIVER"`
	DatabaseURI string `env:"DATABASE_URI"`
}

type cryptoConfig struct {
	// EncryptionKey is the hex- or base64-encoded 256-bit vault key.
	// Required; the process must not start without it.
	EncryptionKey string `env:"VAULT_ENCRYPTION_KEY"`
}

type session struct {
	TTL time.Duration `env:"SESSION_TTL"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// New reads configuration from the environment. The encryption key itself is
// validated by the cipher at construction time, not here.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	cfg := &Config{
		Env: viper.GetString("app_env"),
		DB: db{
			Driver:      viper.GetString("database_driver"),
			DatabaseURI: viper.GetString("database_uri"),
		},
		Crypto: cryptoConfig{
			EncryptionKey: viper.GetString("vault_encryption_key"),
		},
		Session: session{
			TTL: viper.GetDuration("session_ttl"),
		},
		Logger: logger{
			LogLevel: viper.GetString("log_level"),
		},
	}

	if cfg.Env == "" {
		cfg.Env = EnvProd
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = defaultDriver
	}
	if cfg.DB.DatabaseURI == "" {
		if cfg.DB.Driver != defaultDriver {
			return nil, fmt.Errorf("DATABASE_URI is required for driver %q", cfg.DB.Driver)
		}
		cfg.DB.DatabaseURI = defaultSQLitePath
	}

	return cfg, nil
}
