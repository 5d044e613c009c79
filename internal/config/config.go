package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	API      APIConfig
	Session  SessionConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Poll     PollConfig
	Log      LogConfig
	Device   DeviceConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	DefaultLocale  string
	AllowedOrigins []string
	// ViewSwitchDelay is the cosmetic pause shown while flipping admin/user view.
	ViewSwitchDelay time.Duration
}

// APIConfig describes the HR backend the dashboard talks to.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Driver     string // memory, postgres, redis
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PollConfig holds the background refresh periods of the shell layout.
type PollConfig struct {
	PendingInterval      time.Duration
	NotificationInterval time.Duration
	ProfileInterval      time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type DeviceConfig struct {
	// SecretKey is the base64 encoded 32 byte key sealing stored device credentials.
	SecretKey string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", 3000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DEFAULT_LOCALE", "id")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("VIEW_SWITCH_DELAY", "800ms")

	v.SetDefault("API_URL", "http://localhost:4000")
	v.SetDefault("API_TIMEOUT", "10s")

	v.SetDefault("SESSION_DRIVER", "memory")
	v.SetDefault("SESSION_COOKIE_NAME", "hexa_session")
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("SESSION_SECURE_COOKIE", false)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "hexasuite_dashboard")
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("POLL_PENDING_INTERVAL", "15s")
	v.SetDefault("POLL_NOTIFICATION_INTERVAL", "30s")
	v.SetDefault("POLL_PROFILE_INTERVAL", "30s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_MAX_SIZE_MB", 50)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
}

// Load reads .env (if present), an optional dashboard.yaml and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	v.SetConfigName("dashboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/hexasuite")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{}

	config.App = AppConfig{
		Port:            v.GetInt("APP_PORT"),
		Env:             v.GetString("APP_ENV"),
		DefaultLocale:   v.GetString("DEFAULT_LOCALE"),
		AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		ViewSwitchDelay: v.GetDuration("VIEW_SWITCH_DELAY"),
	}

	config.API = APIConfig{
		BaseURL: strings.TrimRight(v.GetString("API_URL"), "/"),
		Timeout: v.GetDuration("API_TIMEOUT"),
	}

	config.Session = SessionConfig{
		Driver:     strings.ToLower(v.GetString("SESSION_DRIVER")),
		Secret:     v.GetString("SESSION_SECRET"),
		CookieName: v.GetString("SESSION_COOKIE_NAME"),
		TTL:        v.GetDuration("SESSION_TTL"),
		Secure:     v.GetBool("SESSION_SECURE_COOKIE"),
	}

	config.Database = DatabaseConfig{
		Host:     v.GetString("DB_HOST"),
		Port:     v.GetInt("DB_PORT"),
		User:     v.GetString("DB_USER"),
		Password: v.GetString("DB_PASSWORD"),
		Name:     v.GetString("DB_NAME"),
		SSLMode:  v.GetString("DB_SSL_MODE"),
	}

	config.Redis = RedisConfig{
		Addr:     v.GetString("REDIS_ADDR"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	config.Poll = PollConfig{
		PendingInterval:      v.GetDuration("POLL_PENDING_INTERVAL"),
		NotificationInterval: v.GetDuration("POLL_NOTIFICATION_INTERVAL"),
		ProfileInterval:      v.GetDuration("POLL_PROFILE_INTERVAL"),
	}

	config.Log = LogConfig{
		Level:      v.GetString("LOG_LEVEL"),
		File:       v.GetString("LOG_FILE"),
		MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
		MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
		MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
	}

	config.Device = DeviceConfig{
		SecretKey: v.GetString("DEVICE_SECRET_KEY"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_URL is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}

	switch c.Session.Driver {
	case "memory":
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres session driver")
		}
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis session driver")
		}
	default:
		return fmt.Errorf("unsupported SESSION_DRIVER: %s", c.Session.Driver)
	}

	if c.Poll.PendingInterval < time.Second {
		return fmt.Errorf("POLL_PENDING_INTERVAL must be at least 1s")
	}
	if c.Poll.NotificationInterval < time.Second {
		return fmt.Errorf("POLL_NOTIFICATION_INTERVAL must be at least 1s")
	}
	if c.Poll.ProfileInterval < time.Second {
		return fmt.Errorf("POLL_PROFILE_INTERVAL must be at least 1s")
	}

	if c.Device.SecretKey != "" {
		key, err := base64.StdEncoding.DecodeString(c.Device.SecretKey)
		if err != nil || len(key) != 32 {
			return fmt.Errorf("DEVICE_SECRET_KEY must be a base64 encoded 32 byte key")
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
