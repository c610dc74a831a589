package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	OCR       OCRConfig       `yaml:"ocr"`
	Demo      DemoConfig      `yaml:"demo"`
	Narrative NarrativeConfig `yaml:"narrative"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type OCRConfig struct {
	BaseURL    string `yaml:"base_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
	Mock       bool   `yaml:"mock"`
}

type DemoConfig struct {
	DataPath string `yaml:"data_path"`
}

// NarrativeConfig holds the lookup tables the summarizers consult: the
// wagon-wheel zone names and the statement label prefixes used to find a
// batter's preferred positions.
type NarrativeConfig struct {
	WagonZones          map[string]string `yaml:"wagon_zones"`
	PreferredPosLabel   string            `yaml:"preferred_position_label"`
	SecondPrefPosLabel  string            `yaml:"second_position_label"`
}

// Default returns the built-in configuration, including the standard
// six-zone wagon wheel table.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		OCR:    OCRConfig{TimeoutSec: 12},
		Narrative: NarrativeConfig{
			WagonZones: map[string]string{
				"1": "Mid-wicket",
				"2": "Mid-on",
				"3": "Mid-off",
				"4": "Cover",
				"5": "Point",
				"6": "Square leg",
			},
			PreferredPosLabel:  "Preferable batting position",
			SecondPrefPosLabel: "2nd preferable batting position",
		},
	}
}

// Load reads a YAML config file over the defaults; a missing file just means
// defaults. Env vars override the file afterwards.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("OCR_URL"); v != "" {
		cfg.OCR.BaseURL = v
	}
	if os.Getenv("USE_MOCK_OCR") == "true" {
		cfg.OCR.Mock = true
	}
	if v := os.Getenv("DATA_PATH"); v != "" {
		cfg.Demo.DataPath = v
	}
}
