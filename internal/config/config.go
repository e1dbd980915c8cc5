package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	Port            string        `mapstructure:"PORT"`
	CORSOrigin      string        `mapstructure:"CORS_ORIGIN"`
	GoogleAPIKey    string        `mapstructure:"GOOGLE_API_KEY"`
	MapsBaseURL     string        `mapstructure:"MAPS_BASE_URL"`
	RemoteTimeout   time.Duration `mapstructure:"REMOTE_TIMEOUT"`
	AverageSpeedKmh float64       `mapstructure:"AVERAGE_SPEED_KMH"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	CacheTTL        time.Duration `mapstructure:"CACHE_TTL"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	GinMode         string        `mapstructure:"GIN_MODE"`
}

var keys = []string{
	"SERVER_ADDRESS", "PORT", "CORS_ORIGIN", "GOOGLE_API_KEY", "MAPS_BASE_URL",
	"REMOTE_TIMEOUT", "AVERAGE_SPEED_KMH", "DB_SOURCE", "CACHE_TTL", "LOG_LEVEL", "GIN_MODE",
}

// LoadConfig reads app.env from path when present and overlays environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":5000")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("REMOTE_TIMEOUT", "10s")
	v.SetDefault("AVERAGE_SPEED_KMH", 22.0)
	v.SetDefault("CACHE_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")

	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about, so bind the ones without defaults too.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.GoogleAPIKey = strings.TrimSpace(cfg.GoogleAPIKey)
	if cfg.AverageSpeedKmh <= 0 {
		return Config{}, fmt.Errorf("config: AVERAGE_SPEED_KMH must be positive, got %v", cfg.AverageSpeedKmh)
	}
	if cfg.RemoteTimeout <= 0 {
		return Config{}, fmt.Errorf("config: REMOTE_TIMEOUT must be positive, got %v", cfg.RemoteTimeout)
	}

	return cfg, nil
}

// ListenAddress returns the address the HTTP server binds to. A bare PORT wins over SERVER_ADDRESS.
func (c Config) ListenAddress() string {
	if p := strings.TrimSpace(c.Port); p != "" {
		return ":" + strings.TrimPrefix(p, ":")
	}
	return c.ServerAddress
}

// RemoteEnabled reports whether a remote distance credential is configured.
func (c Config) RemoteEnabled() bool {
	return c.GoogleAPIKey != ""
}
