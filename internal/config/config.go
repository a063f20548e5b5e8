package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName        string
	AppEnv         string
	AppPort        string
	DefaultUserID  int
	LatencyScale   float64
	SearchCacheTTL time.Duration
	SeedDemoData   bool
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("NEXUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Nexus Chat API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("session.default_user_id", 1)
	v.SetDefault("latency.scale", 1.0)
	v.SetDefault("search.cache_ttl", "30s")
	v.SetDefault("seed.demo_data", true)

	ttlString := v.GetString("search.cache_ttl")
	if ttlString == "" {
		ttlString = "30s"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid search cache ttl: %w", err)
	}

	cfg := Config{
		AppName:        v.GetString("app.name"),
		AppEnv:         v.GetString("app.env"),
		AppPort:        v.GetString("app.port"),
		DefaultUserID:  v.GetInt("session.default_user_id"),
		LatencyScale:   v.GetFloat64("latency.scale"),
		SearchCacheTTL: ttl,
		SeedDemoData:   v.GetBool("seed.demo_data"),
	}

	if cfg.DefaultUserID <= 0 {
		return Config{}, fmt.Errorf("session default user id must be positive")
	}

	if cfg.LatencyScale < 0 {
		cfg.LatencyScale = 0
	}

	return cfg, nil
}
