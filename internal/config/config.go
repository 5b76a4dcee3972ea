package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the food ordering system
type Config struct {
	App      AppConfig      `yaml:"app"`
	Admin    AdminConfig    `yaml:"admin"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
}

// AppConfig holds console session settings
type AppConfig struct {
	CustomersFile     string `yaml:"customers_file"`
	Currency          string `yaml:"currency"`
	LowStockThreshold int    `yaml:"low_stock_threshold"`
	SeedData          bool   `yaml:"seed_data"`
}

// AdminConfig holds the admin credential pair
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LogConfig controls where structured logs go
type LogConfig struct {
	Level string `yaml:"level"`
	// File receives log lines; empty means stderr.
	File string `yaml:"file"`
}

// DatabaseConfig holds the order ledger connection configuration
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// RabbitMQConfig holds notification broker configuration
type RabbitMQConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		App: AppConfig{
			CustomersFile:     "customers.txt",
			Currency:          "RM",
			LowStockThreshold: 5,
			SeedData:          true,
		},
		Admin: AdminConfig{
			Username: "bwkt1n22",
			Password: "12345",
		},
		Log: LogConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "foodie",
			Password: "foodie",
			Database: "foodiebran",
		},
		RabbitMQ: RabbitMQConfig{
			Host:     "localhost",
			Port:     5672,
			User:     "guest",
			Password: "guest",
		},
	}
}

// Load reads configuration from a YAML file layered over Default, then
// applies .env and FOODIE_* environment overrides.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist.
func LoadOrDefault(filename string) (*Config, error) {
	cfg, err := Load(filename)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg = Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv loads a .env file if present and overrides values from FOODIE_*
// environment variables.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	setString(&c.App.CustomersFile, "FOODIE_CUSTOMERS_FILE")
	setString(&c.App.Currency, "FOODIE_CURRENCY")
	setString(&c.Admin.Username, "FOODIE_ADMIN_USERNAME")
	setString(&c.Admin.Password, "FOODIE_ADMIN_PASSWORD")
	setString(&c.Log.Level, "FOODIE_LOG_LEVEL")
	setString(&c.Log.File, "FOODIE_LOG_FILE")
	setString(&c.Database.Host, "FOODIE_DB_HOST")
	setString(&c.Database.User, "FOODIE_DB_USER")
	setString(&c.Database.Password, "FOODIE_DB_PASSWORD")
	setString(&c.Database.Database, "FOODIE_DB_NAME")
	setString(&c.RabbitMQ.Host, "FOODIE_RABBITMQ_HOST")
	setString(&c.RabbitMQ.User, "FOODIE_RABBITMQ_USER")
	setString(&c.RabbitMQ.Password, "FOODIE_RABBITMQ_PASSWORD")

	if err := setInt(&c.App.LowStockThreshold, "FOODIE_LOW_STOCK_THRESHOLD"); err != nil {
		return err
	}
	if err := setInt(&c.Database.Port, "FOODIE_DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.RabbitMQ.Port, "FOODIE_RABBITMQ_PORT"); err != nil {
		return err
	}
	if err := setBool(&c.Database.Enabled, "FOODIE_DB_ENABLED"); err != nil {
		return err
	}
	return setBool(&c.RabbitMQ.Enabled, "FOODIE_RABBITMQ_ENABLED")
}

// Validate checks values the rest of the system relies on.
func (c *Config) Validate() error {
	if c.App.CustomersFile == "" {
		return fmt.Errorf("app.customers_file is required")
	}
	if c.App.LowStockThreshold < 0 {
		return fmt.Errorf("app.low_stock_threshold must not be negative")
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin.username and admin.password are required")
	}
	if c.Database.Enabled && (c.Database.Port <= 0 || c.Database.Port > 65535) {
		return fmt.Errorf("invalid database.port value: %d", c.Database.Port)
	}
	if c.RabbitMQ.Enabled && (c.RabbitMQ.Port <= 0 || c.RabbitMQ.Port > 65535) {
		return fmt.Errorf("invalid rabbitmq.port value: %d", c.RabbitMQ.Port)
	}
	return nil
}

// DatabaseURL returns a PostgreSQL connection URL
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Database)
}

// RabbitMQURL returns an AMQP connection URL
func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}
	*dst = b
	return nil
}
