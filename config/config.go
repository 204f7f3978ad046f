package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"dayflow-backend/internal/notify"
)

const (
	EnvLocal = "local"
	EnvDev   = "development"
	EnvProd  = "production"

	// FallbackJWTSecret is used when JWT_SECRET is unset. Never deploy with it.
	FallbackJWTSecret = "your-secret-key-change-in-production"
)

// Config holds the application settings, read from the environment and an
// optional YAML file named by CONFIG_PATH. Environment variables win.
type Config struct {
	Env         string        // local, development, production
	Port        int           // HTTP listen port
	JWTSecret   string        // HMAC key for bearer tokens
	TokenTTL    time.Duration // bearer token lifetime
	CORSOrigins string        // comma separated, "*" for any
	SeedDemo    bool          // create demo accounts at boot
	SMTP        notify.SMTPConfig

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

// UsingFallbackSecret reports whether tokens are signed with the built-in key.
func (c *Config) UsingFallbackSecret() bool {
	return c.JWTSecret == FallbackJWTSecret
}

// Load reads .env (if present), then CONFIG_PATH (if set), then the process
// environment.
func Load() (*Config, error) {
	envFileLoaded := godotenv.Load() == nil

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", EnvLocal)
	v.SetDefault("port", 3001)
	v.SetDefault("jwt.secret", FallbackJWTSecret)
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("seed_demo", false)
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}

	ttl, err := time.ParseDuration(v.GetString("token_ttl"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", v.GetString("token_ttl"))
	}

	secret := v.GetString("jwt.secret")
	if secret == "" {
		secret = FallbackJWTSecret
	}

	return &Config{
		Env:         v.GetString("env"),
		Port:        v.GetInt("port"),
		JWTSecret:   secret,
		TokenTTL:    ttl,
		CORSOrigins: v.GetString("cors_origins"),
		SeedDemo:    v.GetBool("seed_demo"),
		SMTP: notify.SMTPConfig{
			Host:     v.GetString("smtp.host"),
			Port:     v.GetInt("smtp.port"),
			User:     v.GetString("smtp.user"),
			Password: v.GetString("smtp.password"),
			From:     v.GetString("smtp.from"),
		},
		EnvFileLoaded: envFileLoaded,
	}, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
