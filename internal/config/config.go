package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Fence    FenceConfig    `json:"fence"`
	Throttle ThrottleConfig `json:"throttle"`
	Photo    PhotoConfig    `json:"photo"`
	Geocoder GeocoderConfig `json:"geocoder"`
	Notify   NotifyConfig   `json:"notify"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// FenceConfig describes the circular service area reports must come from.
type FenceConfig struct {
	CenterLat    float64 `json:"center_lat"`
	CenterLng    float64 `json:"center_lng"`
	RadiusMeters float64 `json:"radius_meters"`
	AddressMatch string  `json:"address_match"`
}

type ThrottleConfig struct {
	Window time.Duration `json:"window"`
}

type PhotoConfig struct {
	MaxDimension int `json:"max_dimension"`
	StartQuality int `json:"start_quality"`
	ByteBudget   int `json:"byte_budget"`
}

type GeocoderConfig struct {
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

type NotifyConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "flare_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", ""),
		Fence: FenceConfig{
			CenterLat:    getEnvFloat("FENCE_CENTER_LAT", 7.447725),
			CenterLng:    getEnvFloat("FENCE_CENTER_LNG", 125.804150),
			RadiusMeters: getEnvFloat("FENCE_RADIUS_METERS", 11000),
			AddressMatch: getEnv("FENCE_ADDRESS_MATCH", "tagum"),
		},
		Throttle: ThrottleConfig{
			Window: getEnvDuration("THROTTLE_WINDOW", 5*time.Minute),
		},
		Photo: PhotoConfig{
			MaxDimension: getEnvInt("PHOTO_MAX_DIMENSION", 1024),
			StartQuality: getEnvInt("PHOTO_START_QUALITY", 75),
			ByteBudget:   getEnvInt("PHOTO_BYTE_BUDGET", 400*1024),
		},
		Geocoder: GeocoderConfig{
			BaseURL: getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
			Timeout: getEnvDuration("GEOCODER_TIMEOUT", 5*time.Second),
		},
		Notify: NotifyConfig{
			URL:      getEnv("NOTIFY_URL", ""),
			Disabled: getEnvBool("NOTIFY_DISABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Float64("fence_radius_m", cfg.Fence.RadiusMeters),
		slog.Duration("throttle_window", cfg.Throttle.Window))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Fence.RadiusMeters <= 0 {
		return errors.New("FENCE_RADIUS_METERS must be positive")
	}
	if c.Fence.CenterLat == 0 && c.Fence.CenterLng == 0 {
		return errors.New("fence center must be configured")
	}

	if c.Throttle.Window <= 0 {
		return errors.New("THROTTLE_WINDOW must be positive")
	}

	if c.Photo.MaxDimension < 1 || c.Photo.StartQuality < 1 || c.Photo.StartQuality > 100 || c.Photo.ByteBudget < 1 {
		return errors.New("photo reducer config out of range")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
