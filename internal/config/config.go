// Package config loads runtime configuration from the environment and the
// optional rubric override file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/halcyon-ventures/deckscout/internal/analysis"
	"github.com/halcyon-ventures/deckscout/models"
)

// Config holds all runtime settings.
type Config struct {
	OpenAIAPIKey    string
	ExtractionModel string
	ScoringModel    string
	InsightModel    string
	DBPath          string
	InputDir        string
	OutputDir       string
	Port            int
	RequestTimeout  time.Duration
	LogLevel        string
	RubricPath      string
}

// Load reads configuration from environment variables, applying defaults
// for everything except the API key. A missing API key is not an error
// here: read-only operations against the store work without one.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		ExtractionModel: getEnv("DECKSCOUT_EXTRACTION_MODEL", "gpt-4o-mini"),
		ScoringModel:    getEnv("DECKSCOUT_SCORING_MODEL", "gpt-4o"),
		InsightModel:    getEnv("DECKSCOUT_INSIGHT_MODEL", "gpt-4o-mini"),
		InputDir:        getEnv("DECKSCOUT_INPUT_DIR", "input_decks"),
		OutputDir:       getEnv("DECKSCOUT_OUTPUT_DIR", "parsed_entities"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RubricPath:      os.Getenv("DECKSCOUT_RUBRIC_PATH"),
	}

	dbPath := os.Getenv("DECKSCOUT_DB_PATH")
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dataDir := filepath.Join(homeDir, ".deckscout")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dbPath = filepath.Join(dataDir, "deckscout.db")
	}
	cfg.DBPath = dbPath

	port := getEnv("DECKSCOUT_PORT", "8080")
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid DECKSCOUT_PORT %q: %w", port, err)
	}
	cfg.Port = p

	timeout := getEnv("DECKSCOUT_REQUEST_TIMEOUT", "60s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid DECKSCOUT_REQUEST_TIMEOUT %q: %w", timeout, err)
	}
	cfg.RequestTimeout = d

	return cfg, nil
}

// LoadRubric loads the scoring rubric from a YAML file, falling back to the
// built-in rubric when no path is configured. The loaded rubric is
// validated; invalid weights fail loudly rather than skewing every score.
func LoadRubric(path string) ([]models.RubricSection, error) {
	if path == "" {
		return analysis.DefaultRubric(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rubric file: %w", err)
	}

	var rubric []models.RubricSection
	if err := yaml.Unmarshal(data, &rubric); err != nil {
		return nil, fmt.Errorf("parse rubric file %s: %w", path, err)
	}
	if err := analysis.ValidateRubric(rubric); err != nil {
		return nil, fmt.Errorf("rubric file %s: %w", path, err)
	}
	return rubric, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
