package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DatabaseURL is the Postgres connection string
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// SolverURL is the base URL of the remote planning optimizer
	SolverURL string `yaml:"solverURL" validate:"required,url"`

	// SolverTimeoutSeconds bounds each solver call; defaults to 120
	SolverTimeoutSeconds int `yaml:"solverTimeoutSeconds,omitempty" validate:"omitempty,min=1"`

	// FlagshipSiteID designates the site whose per-period capacity is
	// enforced by the overflow penalty counter
	FlagshipSiteID string `yaml:"flagshipSiteID,omitempty"`

	// WeekRule is the recurrence rule expanding a week start into the
	// planning days (e.g. "FREQ=DAILY;BYDAY=MO,TU,WE,TH,FR,SA;COUNT=6")
	WeekRule string `yaml:"weekRule" validate:"required"`
}

// DefaultSolverTimeoutSeconds applies when solverTimeoutSeconds is omitted
const DefaultSolverTimeoutSeconds = 120

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from cval_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.SolverTimeoutSeconds == 0 {
		cfg.SolverTimeoutSeconds = DefaultSolverTimeoutSeconds
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks the week rule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := rrule.StrToRRule(cfg.WeekRule); err != nil {
		return fmt.Errorf("invalid weekRule: %w", err)
	}

	return nil
}

// findConfigFile searches for cval_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "cval_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
