package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"

	"pulse-insights/internal/model"
)

// Config carries everything the engine needs, built once in main and passed
// by reference. Computation code never reads the environment or model files
// on its own.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogMode  string `env:"LOG_MODE" envDefault:"development"`

	DefaultTeam       string `env:"DEFAULT_TEAM" envDefault:"RISK-OPS"`
	DefaultWindowDays int    `env:"DEFAULT_WINDOW_DAYS" envDefault:"60"`

	SeedPath     string `env:"PULSE_SEED_PATH" envDefault:"data-samples/pulses.csv"`
	StorePath    string `env:"PULSE_STORE_PATH" envDefault:"/tmp/pulses.csv"`
	StoreMode    string `env:"PULSE_STORE_MODE" envDefault:"writable"` // writable | readonly
	ReportDBPath string `env:"REPORT_DB_PATH" envDefault:"reports.db"`
	ModelsDir    string `env:"MODELS_DIR" envDefault:"models"`

	// Static model inputs, loaded at startup. The engine cannot produce a
	// meaningful report without them, so a missing file is fatal here rather
	// than silently yielding zero-topic reports.
	NegativeTerms []string
	Topics        []model.Topic
	Attrition     model.AttritionModel
	Features      []model.FeatureRow
}

// Load reads environment settings and the static model files.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := loadJSON(filepath.Join(cfg.ModelsDir, "negative_terms.json"), &cfg.NegativeTerms); err != nil {
		return nil, fmt.Errorf("negative lexicon: %w", err)
	}
	if len(cfg.NegativeTerms) == 0 {
		return nil, fmt.Errorf("negative lexicon: empty term list in %s", cfg.ModelsDir)
	}

	topics, err := loadTopicTable(filepath.Join(cfg.ModelsDir, "topic_terms.json"))
	if err != nil {
		return nil, fmt.Errorf("topic table: %w", err)
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("topic table: no topics defined in %s", cfg.ModelsDir)
	}
	cfg.Topics = topics

	if err := loadJSON(filepath.Join(cfg.ModelsDir, "attrition_model.json"), &cfg.Attrition); err != nil {
		return nil, fmt.Errorf("attrition model: %w", err)
	}
	if err := loadJSON(filepath.Join(cfg.ModelsDir, "latest_features.json"), &cfg.Features); err != nil {
		return nil, fmt.Errorf("attrition features: %w", err)
	}

	return cfg, nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// loadTopicTable decodes {"topic": ["term", ...], ...} preserving declaration
// order, which defines the tie-break priority between equal topic shares.
// A plain map unmarshal would lose it.
func loadTopicTable(path string) ([]model.Topic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("failed to decode %s: expected object, got %v", path, tok)
	}

	var topics []model.Topic
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		name, _ := keyTok.(string)

		var terms []string
		if err := dec.Decode(&terms); err != nil {
			return nil, fmt.Errorf("failed to decode terms for topic %q in %s: %w", name, path, err)
		}
		topics = append(topics, model.Topic{Name: name, Terms: terms})
	}
	return topics, nil
}
