package config

import (
	"strings"

	"github.com/danmuck/fwctl/internal/includefix"
)

func FixMap(cfg FixMapConfig) includefix.FixMap {
	fm := make(includefix.FixMap, 0, len(cfg.Files))
	for _, file := range cfg.Files {
		rules := make([]includefix.Rule, 0, len(file.Rules))
		for _, rule := range file.Rules {
			rules = append(rules, includefix.Rule{
				Pattern:     rule.Pattern,
				Replacement: rule.Replacement,
			})
		}
		fm = append(fm, includefix.Entry{
			Path:  strings.TrimSpace(file.Path),
			Rules: rules,
		})
	}
	return fm
}

// FixMapFile is the inverse of FixMap, used to render the built-in table as a template.
func FixMapFile(fm includefix.FixMap) FixMapConfig {
	cfg := FixMapConfig{Files: make([]FixFileConfig, 0, len(fm))}
	for _, entry := range fm {
		rules := make([]FixRuleConfig, 0, len(entry.Rules))
		for _, rule := range entry.Rules {
			rules = append(rules, FixRuleConfig{Pattern: rule.Pattern, Replacement: rule.Replacement})
		}
		cfg.Files = append(cfg.Files, FixFileConfig{Path: entry.Path, Rules: rules})
	}
	return cfg
}
