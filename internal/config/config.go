package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	CORS     CORSConfig
	Poll     PollConfig
	Cache    CacheConfig
	Export   ExportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UpstreamConfig holds settings for the core backend REST API.
type UpstreamConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	UploadTimeout time.Duration `mapstructure:"upload_timeout"`
	MaxUploadMB   int64         `mapstructure:"max_upload_mb"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PollConfig holds notification poller settings.
type PollConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Enabled  bool          `mapstructure:"enabled"`
}

// CacheConfig holds settings for the in-memory directory/notification cache.
type CacheConfig struct {
	MaxEntries int           `mapstructure:"max_entries"`
	TTL        time.Duration `mapstructure:"ttl"`
}

// ExportConfig holds drawing-register export settings.
type ExportConfig struct {
	MaxRows   int    `mapstructure:"max_rows"`
	SheetName string `mapstructure:"sheet_name"`
}

// Load reads configuration from environment variables with the FDIM_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FDIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Upstream defaults
	v.SetDefault("upstream.base_url", "http://localhost:9000/api")
	v.SetDefault("upstream.timeout", "10s")
	v.SetDefault("upstream.upload_timeout", "120s")
	v.SetDefault("upstream.max_upload_mb", 50)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Poller defaults
	v.SetDefault("poll.interval", "30s")
	v.SetDefault("poll.enabled", true)

	// Cache defaults
	v.SetDefault("cache.max_entries", 512)
	v.SetDefault("cache.ttl", "60s")

	// Export defaults
	v.SetDefault("export.max_rows", 5000)
	v.SetDefault("export.sheet_name", "Drawing Register")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "FDIM_SERVER_PORT",
		"server.read_timeout":     "FDIM_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "FDIM_SERVER_WRITE_TIMEOUT",
		"server.environment":      "FDIM_SERVER_ENVIRONMENT",
		"upstream.base_url":       "FDIM_UPSTREAM_BASE_URL",
		"upstream.timeout":        "FDIM_UPSTREAM_TIMEOUT",
		"upstream.upload_timeout": "FDIM_UPSTREAM_UPLOAD_TIMEOUT",
		"upstream.max_upload_mb":  "FDIM_UPSTREAM_MAX_UPLOAD_MB",
		"cors.allowed_origins":    "FDIM_CORS_ALLOWED_ORIGINS",
		"poll.interval":           "FDIM_POLL_INTERVAL",
		"poll.enabled":            "FDIM_POLL_ENABLED",
		"cache.max_entries":       "FDIM_CACHE_MAX_ENTRIES",
		"cache.ttl":               "FDIM_CACHE_TTL",
		"export.max_rows":         "FDIM_EXPORT_MAX_ROWS",
		"export.sheet_name":       "FDIM_EXPORT_SHEET_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FDIM_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FDIM_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upstream = UpstreamConfig{
		BaseURL:       strings.TrimRight(v.GetString("upstream.base_url"), "/"),
		Timeout:       v.GetDuration("upstream.timeout"),
		UploadTimeout: v.GetDuration("upstream.upload_timeout"),
		MaxUploadMB:   v.GetInt64("upstream.max_upload_mb"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Poll = PollConfig{
		Interval: v.GetDuration("poll.interval"),
		Enabled:  v.GetBool("poll.enabled"),
	}
	cfg.Cache = CacheConfig{
		MaxEntries: v.GetInt("cache.max_entries"),
		TTL:        v.GetDuration("cache.ttl"),
	}
	cfg.Export = ExportConfig{
		MaxRows:   v.GetInt("export.max_rows"),
		SheetName: v.GetString("export.sheet_name"),
	}

	return cfg, nil
}
