package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/futig/blog-generator/internal/entity"
	"github.com/joho/godotenv"
)

const defaultCreditsFile = "internal/config/credits.json"

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFile is used by the terminal UI, which owns stdout
	LogFile string `env:"LOG_FILE" envDefault:"blog-tui.log"`

	// Generation service
	GeneratorCfg GeneratorConnectorConfig `envPrefix:"GENERATOR_"`

	// Page sessions
	SessionCfg SessionConfig `envPrefix:"SESSION_"`

	// How often a loading page polls for the result
	LoadingRefresh time.Duration `env:"LOADING_REFRESH" envDefault:"2s"`

	// Credits roster (loaded from JSON file)
	CreditsFile string `env:"CREDITS_FILE" envDefault:"internal/config/credits.json"`
	Credits     []entity.Contributor

	// Where the terminal UI saves exported blogs
	ExportDir string `env:"EXPORT_DIR" envDefault:"."`

	// Mock configuration
	EnableMocks bool          `env:"ENABLE_MOCKS" envDefault:"false"`
	MockDelay   time.Duration `env:"MOCK_DELAY" envDefault:"1500ms"`

	// Telegram bot configuration (optional)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GeneratorConnectorConfig configures the outbound generation call.
// Timeouts default to zero, which means wait indefinitely.
type GeneratorConnectorConfig struct {
	EndpointURL           string        `env:"ENDPOINT_URL"`
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"0s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"0s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"30s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
}

type SessionConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"30m"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"5m"`
	CookieName      string        `env:"COOKIE_NAME" envDefault:"blog_session"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken        string `env:"BOT_TOKEN"`
	UpdateTimeout   int    `env:"UPDATE_TIMEOUT" envDefault:"60"`
	ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"` // seconds
}

// creditsFile represents the structure of credits.json
type creditsFile struct {
	Contributors []entity.Contributor `json:"contributors"`
}

var defaultCredits = []entity.Contributor{
	{Name: "Frontend Developer", ID: "DEV-01"},
	{Name: "Backend Developer", ID: "DEV-02"},
	{Name: "Cloud Engineer", ID: "DEV-03"},
	{Name: "ML Engineer", ID: "DEV-04"},
	{Name: "QA Engineer", ID: "DEV-05"},
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	return Load(*envFlag)
}

// Load reads the env file of the given environment (if present) and parses
// the process environment into a Config.
func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := loadCredits(cfg); err != nil {
		return nil, fmt.Errorf("load credits: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if !cfg.EnableMocks && cfg.GeneratorCfg.EndpointURL == "" {
		errors = append(errors, "GENERATOR_ENDPOINT_URL is required unless ENABLE_MOCKS is set")
	}

	if cfg.GeneratorCfg.RequestTimeout < 0 || cfg.GeneratorCfg.ResponseHeaderTimeout < 0 {
		errors = append(errors, "GENERATOR_TIMEOUT and GENERATOR_RESPONSE_HEADER_TIMEOUT must not be negative")
	}

	if cfg.SessionCfg.TTL <= 0 {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be positive, got %s", cfg.SessionCfg.TTL))
	}

	if cfg.LoadingRefresh < time.Second {
		errors = append(errors, fmt.Sprintf("LOADING_REFRESH must be at least 1s, got %s", cfg.LoadingRefresh))
	}

	if cfg.TelegramCfg.ShutdownTimeout < 1 || cfg.TelegramCfg.ShutdownTimeout > 300 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_SHUTDOWN_TIMEOUT must be between 1 and 300 seconds, got %d", cfg.TelegramCfg.ShutdownTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func loadCredits(cfg *Config) error {
	path := cfg.CreditsFile
	if path == "" {
		path = defaultCreditsFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.Credits = defaultCredits
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read credits file: %w", err)
	}

	var parsed creditsFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse credits JSON: %w", err)
	}

	if len(parsed.Contributors) == 0 {
		return fmt.Errorf("credits file contains no contributors: %s", path)
	}

	cfg.Credits = parsed.Contributors
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
