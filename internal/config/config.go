package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type FixMapConfig struct {
	Files []FixFileConfig `toml:"file" yaml:"file"`
}

type FixFileConfig struct {
	Path  string          `toml:"path" yaml:"path"`
	Rules []FixRuleConfig `toml:"rule" yaml:"rule"`
}

type FixRuleConfig struct {
	Pattern     string `toml:"pattern" yaml:"pattern"`
	Replacement string `toml:"replacement" yaml:"replacement"`
}

// LoadFixMapConfig reads a fix map from TOML, or YAML for .yaml/.yml paths.
func LoadFixMapConfig(path string) (FixMapConfig, error) {
	var cfg FixMapConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := loadYaml(path, &cfg); err != nil {
			return FixMapConfig{}, err
		}
	default:
		if err := loadToml(path, &cfg); err != nil {
			return FixMapConfig{}, err
		}
	}
	if err := ValidateFixMapConfig(cfg); err != nil {
		return FixMapConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func loadYaml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateFixMapConfig(cfg FixMapConfig) error {
	if len(cfg.Files) == 0 {
		return fmt.Errorf("fix map has no file entries")
	}
	for i, file := range cfg.Files {
		if err := ValidateFixFileEntry(file); err != nil {
			return fmt.Errorf("file[%d] invalid: %w", i, err)
		}
	}
	return nil
}

func ValidateFixFileEntry(cfg FixFileConfig) error {
	if strings.TrimSpace(cfg.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if filepath.IsAbs(cfg.Path) {
		return fmt.Errorf("path must be relative: %s", cfg.Path)
	}
	if len(cfg.Rules) == 0 {
		return fmt.Errorf("at least one rule is required")
	}
	for j, rule := range cfg.Rules {
		if rule.Pattern == "" {
			return fmt.Errorf("rule[%d] pattern is required", j)
		}
	}
	return nil
}
