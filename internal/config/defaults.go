package config

import (
	"github.com/hyperjump/screener/internal/extract"
	"github.com/hyperjump/screener/internal/pipeline"
	"github.com/hyperjump/screener/internal/scoring"
	"github.com/hyperjump/screener/internal/skills"
)

// DefaultJobTitle is recorded when no job title is supplied.
const DefaultJobTitle = pipeline.DefaultJobTitle

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxUploadMB == 0 {
		cfg.Server.MaxUploadMB = 32
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/screener/data/evaluations.db"
	}
	if len(cfg.Skills.Vocabulary) == 0 {
		cfg.Skills.Vocabulary = append([]string(nil), skills.DefaultTerms...)
	}
	if cfg.Scoring.SemanticProvider == "" {
		cfg.Scoring.SemanticProvider = scoring.ProviderFixed
	}
	if cfg.Evaluation.JobTitle == "" {
		cfg.Evaluation.JobTitle = DefaultJobTitle
	}
	if cfg.Evaluation.ResumeExtensions == nil {
		cfg.Evaluation.ResumeExtensions = append([]string(nil), extract.SupportedExtensions...)
	}
}
