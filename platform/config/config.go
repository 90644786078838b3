// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetAppVersion() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for the per-IP API rate limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// ProfilesConfig provides the location of an optional override for the
// building-type and habit tables.
type ProfilesConfig interface {
	GetProfilesPath() string
}

// SeriesConfig provides settings for the synthetic temperature series tool.
type SeriesConfig interface {
	GetSeriesOutputPath() string
	GetSeriesSeed() uint64
	GetSeriesCron() string
}

// InfluxConfig provides settings for the InfluxDB series sink.
type InfluxConfig interface {
	GetInfluxURL() string
	GetInfluxToken() string
	GetInfluxOrg() string
	GetInfluxBucket() string
	IsInfluxEnabled() bool
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinioBucketSeries() string
	IsMinIOEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	AppVersion        string
	HTTPAddr          string
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	RateLimitRPS      float64
	RateLimitBurst    int
	ProfilesPath      string
	SeriesOutputPath  string
	SeriesSeed        uint64
	SeriesCron        string
	InfluxURL         string
	InfluxToken       string
	InfluxOrg         string
	InfluxBucket      string
	MinIOEndpoint     string
	MinIOAccessKey    string
	MinIOSecretKey    string
	MinIOUseSSL       bool
	MinioBucketSeries string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetAppVersion() string    { return c.AppVersion }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// ProfilesConfig implementation
func (c *Config) GetProfilesPath() string { return c.ProfilesPath }

// SeriesConfig implementation
func (c *Config) GetSeriesOutputPath() string { return c.SeriesOutputPath }
func (c *Config) GetSeriesSeed() uint64       { return c.SeriesSeed }
func (c *Config) GetSeriesCron() string       { return c.SeriesCron }

// InfluxConfig implementation
func (c *Config) GetInfluxURL() string    { return c.InfluxURL }
func (c *Config) GetInfluxToken() string  { return c.InfluxToken }
func (c *Config) GetInfluxOrg() string    { return c.InfluxOrg }
func (c *Config) GetInfluxBucket() string { return c.InfluxBucket }
func (c *Config) IsInfluxEnabled() bool   { return c.InfluxURL != "" && c.InfluxToken != "" }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string     { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string    { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string    { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool         { return c.MinIOUseSSL }
func (c *Config) GetMinioBucketSeries() string { return c.MinioBucketSeries }
func (c *Config) IsMinIOEnabled() bool         { return c.MinIOEndpoint != "" }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be a number: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be an integer: %w", err)
	}
	seed, err := strconv.ParseUint(getEnv("SERIES_SEED", "2015"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SERIES_SEED must be an unsigned integer: %w", err)
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		AppVersion:        getEnv("APP_VERSION", "1.0.0"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":5000"),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitRPS:      rps,
		RateLimitBurst:    burst,
		ProfilesPath:      getEnv("ENERGY_PROFILES_PATH", ""),
		SeriesOutputPath:  getEnv("SERIES_OUTPUT_PATH", "nyc_temperature_complete_2015_2025.csv"),
		SeriesSeed:        seed,
		SeriesCron:        getEnv("SERIES_CRON", ""),
		InfluxURL:         getEnv("INFLUXDB_URL", ""),
		InfluxToken:       getEnv("INFLUXDB_TOKEN", ""),
		InfluxOrg:         getEnv("INFLUXDB_ORG", "energy-coach"),
		InfluxBucket:      getEnv("INFLUXDB_BUCKET", "synthetic-temperature"),
		MinIOEndpoint:     getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:    getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:    getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:       strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinioBucketSeries: getEnv("MINIO_BUCKET_SERIES", "synthetic-series"),
	}

	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.IsMinIOEnabled() && (cfg.MinIOAccessKey == "" || cfg.MinIOSecretKey == "") {
		return nil, fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MINIO_ENDPOINT is set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
