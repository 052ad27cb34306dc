package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Sim holds all configuration for the augmentation simulator.
type Sim struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level" env:"AUGSIM_LOG_LEVEL"`

	// Database
	Database DatabaseConfig `yaml:"database" envPrefix:"AUGSIM_DB_"`
	Migrate  bool           `yaml:"migrate" env:"AUGSIM_MIGRATE"`

	// Run settings
	StartingMoney     float64        `yaml:"starting_money" env:"AUGSIM_STARTING_MONEY"`
	SourceFile11Level int            `yaml:"source_file_11_level" env:"AUGSIM_SF11_LEVEL"`
	Factions          FactionsConfig `yaml:"factions" envPrefix:"AUGSIM_FACTIONS_"`

	// Extra augmentation definitions (YAML). Empty disables.
	AugmentationsFile string `yaml:"augmentations_file" env:"AUGSIM_AUGMENTATIONS_FILE"`
}

// FactionsConfig toggles factions that only exist when their subsystem is unlocked.
type FactionsConfig struct {
	Bladeburners          bool `yaml:"bladeburners" env:"BLADEBURNERS"`
	ChurchOfTheMachineGod bool `yaml:"church_of_the_machine_god" env:"CHURCH"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSim returns Sim config with sensible defaults.
func DefaultSim() Sim {
	return Sim{
		LogLevel:      "info",
		Migrate:       true,
		StartingMoney: 1000,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "augsim",
			Password: "augsim",
			DBName:   "augsim",
			SSLMode:  "disable",
		},
	}
}

// LoadSim loads config from a YAML file, then applies AUGSIM_* environment
// overrides. If the file doesn't exist, defaults are used.
func LoadSim(path string) (Sim, error) {
	cfg := DefaultSim()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Sim) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.StartingMoney < 0 {
		return fmt.Errorf("starting_money must not be negative, got %f", c.StartingMoney)
	}
	if c.SourceFile11Level < 0 || c.SourceFile11Level > 3 {
		return fmt.Errorf("source_file_11_level must be between 0 and 3, got %d", c.SourceFile11Level)
	}
	return nil
}
