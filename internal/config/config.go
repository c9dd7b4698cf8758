// Package config provides configuration loading and structs for the screener.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hyperjump/screener/internal/scoring"
)

// Environment variables that override file values.
const (
	EnvDatabasePath = "SCREENER_DATABASE_PATH"
	EnvHost         = "SCREENER_HOST"
	EnvPort         = "SCREENER_PORT"
	EnvDebug        = "SCREENER_DEBUG"
	EnvJobTitle     = "SCREENER_JOB_TITLE"
)

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Skills     SkillsConfig     `yaml:"skills"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Watch      WatchConfig      `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

// MaxUploadBytes returns the multipart upload limit in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// StorageConfig holds the evaluation database location.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// SkillsConfig holds the skill vocabulary. Empty means the built-in list.
type SkillsConfig struct {
	Vocabulary []string `yaml:"vocabulary"`
}

// ScoringConfig selects the semantic score provider.
type ScoringConfig struct {
	SemanticProvider   string  `yaml:"semantic_provider"`
	FixedSemanticScore float64 `yaml:"fixed_semantic_score"`
}

// EvaluationConfig holds pipeline defaults.
type EvaluationConfig struct {
	JobTitle         string   `yaml:"job_title"`
	ResumeExtensions []string `yaml:"resume_extensions"`
}

// WatchConfig holds the resume inbox settings used by the watch command.
type WatchConfig struct {
	Directory      string `yaml:"directory"`
	JobDescription string `yaml:"job_description"`
}

// Load reads and parses the config file at path, applies environment overrides and
// defaults, and expands paths. Returns an error if the file cannot be read or parsed
// or the result is invalid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	if cfg.Watch.Directory != "" {
		cfg.Watch.Directory = expandPath(cfg.Watch.Directory, configDir)
	}
	if cfg.Watch.JobDescription != "" {
		cfg.Watch.JobDescription = expandPath(cfg.Watch.JobDescription, configDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotEnv loads variables from a .env file in the working directory when present.
// Existing environment variables are not overwritten.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with SCREENER_* environment variables.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.Storage.DatabasePath = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		cfg.Debug = debug
	}
	if v := os.Getenv(EnvJobTitle); v != "" {
		cfg.Evaluation.JobTitle = v
	}
	return nil
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	switch c.Scoring.SemanticProvider {
	case scoring.ProviderFixed, scoring.ProviderRandom:
	default:
		return fmt.Errorf("invalid scoring.semantic_provider %q: use %q or %q",
			c.Scoring.SemanticProvider, scoring.ProviderFixed, scoring.ProviderRandom)
	}
	if c.Scoring.FixedSemanticScore < 0 || c.Scoring.FixedSemanticScore > 100 {
		return fmt.Errorf("invalid scoring.fixed_semantic_score %v: must be within 0..100", c.Scoring.FixedSemanticScore)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB < 1 {
		return fmt.Errorf("invalid server.max_upload_mb %d: must be at least 1", c.Server.MaxUploadMB)
	}
	for _, skill := range c.Skills.Vocabulary {
		if strings.Contains(skill, ",") {
			return fmt.Errorf("invalid skill %q: skill names cannot contain commas", skill)
		}
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
