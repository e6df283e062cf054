package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	HTTPServer HTTPServerConfig
	Database   DatabaseConfig
	Logger     LoggerConfig
	Weather    WeatherConfig
	Tagging    TaggingConfig
	Wardrobe   WardrobeConfig
}

type HTTPServerConfig struct {
	Port       int
	StaticPath string
}

type DatabaseConfig struct {
	Path string
}

type LoggerConfig struct {
	Level string
}

type WeatherConfig struct {
	BaseURL           string
	Timeout           time.Duration
	CacheTTL          time.Duration
	RequestsPerMinute int

	// Default location until the household saves one in settings.
	Latitude     float64
	Longitude    float64
	LocationName string
}

type TaggingConfig struct {
	BaseURL           string
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int
}

type WardrobeConfig struct {
	GraceMonths int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/littlewardrobe/
// Every key can be overridden from the environment with dots replaced by
// underscores (DATABASE_PATH, TAGGING_API_KEY, ...).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/littlewardrobe/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.StaticPath = v.GetString("http_server.static_path")
	cfg.Database.Path = v.GetString("database.path")
	// DB_PATH kept for existing deployments.
	if dbPath := v.GetString("db_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	cfg.Logger.Level = v.GetString("logger.level")

	cfg.Weather.BaseURL = v.GetString("weather.base_url")
	cfg.Weather.Timeout = v.GetDuration("weather.timeout")
	cfg.Weather.CacheTTL = v.GetDuration("weather.cache_ttl")
	cfg.Weather.RequestsPerMinute = v.GetInt("weather.requests_per_minute")
	cfg.Weather.Latitude = v.GetFloat64("weather.latitude")
	cfg.Weather.Longitude = v.GetFloat64("weather.longitude")
	cfg.Weather.LocationName = v.GetString("weather.location_name")

	cfg.Tagging.BaseURL = v.GetString("tagging.base_url")
	cfg.Tagging.APIKey = v.GetString("tagging.api_key")
	if geminiKey := v.GetString("gemini_api_key"); cfg.Tagging.APIKey == "" && geminiKey != "" {
		cfg.Tagging.APIKey = geminiKey
	}
	cfg.Tagging.Model = v.GetString("tagging.model")
	cfg.Tagging.Timeout = v.GetDuration("tagging.timeout")
	cfg.Tagging.RequestsPerMinute = v.GetInt("tagging.requests_per_minute")

	cfg.Wardrobe.GraceMonths = v.GetInt("wardrobe.grace_months")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.static_path", "./web/static")
	v.SetDefault("database.path", "./data/wardrobe.db")
	v.SetDefault("logger.level", "info")

	v.SetDefault("weather.base_url", "https://api.open-meteo.com")
	v.SetDefault("weather.timeout", "10s")
	v.SetDefault("weather.cache_ttl", "15m")
	v.SetDefault("weather.requests_per_minute", 30)
	v.SetDefault("weather.latitude", 51.5072)
	v.SetDefault("weather.longitude", -0.1276)
	v.SetDefault("weather.location_name", "London")

	v.SetDefault("tagging.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("tagging.model", "gemini-1.5-flash")
	v.SetDefault("tagging.timeout", "30s")
	v.SetDefault("tagging.requests_per_minute", 10)

	v.SetDefault("wardrobe.grace_months", 1)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port)
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if cfg.Wardrobe.GraceMonths < 0 {
		return fmt.Errorf("wardrobe.grace_months must not be negative")
	}
	if cfg.Weather.Latitude < -90 || cfg.Weather.Latitude > 90 {
		return fmt.Errorf("weather.latitude out of range: %v", cfg.Weather.Latitude)
	}
	if cfg.Weather.Longitude < -180 || cfg.Weather.Longitude > 180 {
		return fmt.Errorf("weather.longitude out of range: %v", cfg.Weather.Longitude)
	}
	return nil
}
