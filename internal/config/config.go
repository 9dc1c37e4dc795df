package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App           AppConfig
	Database      DatabaseConfig
	AttendanceAPI AttendanceAPIConfig
	JWT           JWTConfig
	Report        ReportConfig
}

type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AttendanceAPIConfig points at the backend that owns punches, leave
// requests, holidays and schedules.
type AttendanceAPIConfig struct {
	BaseURL string
	Token   string
}

type JWTConfig struct {
	Secret string
}

// ReportConfig carries the reconciliation knobs: the display offset reports
// are rendered in and the per-batch fan-out cap for employee fetches.
type ReportConfig struct {
	UTCOffsetMinutes int
	BatchSize        int
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timesheet"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.AttendanceAPI = AttendanceAPIConfig{
		BaseURL: getEnv("ATTENDANCE_API_URL", ""),
		Token:   getEnv("ATTENDANCE_API_TOKEN", ""),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	offsetMinutes, err := strconv.Atoi(getEnv("REPORT_UTC_OFFSET_MINUTES", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_UTC_OFFSET_MINUTES: %w", err)
	}

	batchSize, err := strconv.Atoi(getEnv("RECONCILE_BATCH_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_BATCH_SIZE: %w", err)
	}

	config.Report = ReportConfig{
		UTCOffsetMinutes: offsetMinutes,
		BatchSize:        batchSize,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.AttendanceAPI.BaseURL == "" {
		return fmt.Errorf("ATTENDANCE_API_URL is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Report.BatchSize < 1 {
		return fmt.Errorf("RECONCILE_BATCH_SIZE must be positive")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
