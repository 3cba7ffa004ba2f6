package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the payroll policy values. These encode business rules
// (stipend amounts, cohort eligibility) that change without code changes.
type PayrollConfig struct {
	// Fixed stipend paid to manager-class employees for a half-month period.
	// A full-month period pays double this amount.
	ManagerStipendHalfMonth decimal.Decimal

	// An employee joins the pooled-shortage cohort when their shift count in
	// the period is strictly greater than this value.
	PoolMinShifts int

	// Periods of at most this many days fall back to the half-month stipend
	// when they do not match a calendar half-month window exactly.
	HalfMonthMaxDays int
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments; config then comes
	// from the process environment.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "crewdesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll policy configuration
	stipend, err := decimal.NewFromString(getEnv("MANAGER_STIPEND_HALF_MONTH", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid MANAGER_STIPEND_HALF_MONTH: %w", err)
	}
	poolMinShifts, err := strconv.Atoi(getEnv("POOL_MIN_SHIFTS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid POOL_MIN_SHIFTS: %w", err)
	}
	halfMonthMaxDays, err := strconv.Atoi(getEnv("HALF_MONTH_MAX_DAYS", "17"))
	if err != nil {
		return nil, fmt.Errorf("invalid HALF_MONTH_MAX_DAYS: %w", err)
	}
	config.Payroll = PayrollConfig{
		ManagerStipendHalfMonth: stipend,
		PoolMinShifts:           poolMinShifts,
		HalfMonthMaxDays:        halfMonthMaxDays,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.ManagerStipendHalfMonth.IsNegative() {
		return fmt.Errorf("MANAGER_STIPEND_HALF_MONTH must be non-negative")
	}
	if c.Payroll.PoolMinShifts < 0 {
		return fmt.Errorf("POOL_MIN_SHIFTS must be non-negative")
	}
	if c.Payroll.HalfMonthMaxDays < 1 {
		return fmt.Errorf("HALF_MONTH_MAX_DAYS must be positive")
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
