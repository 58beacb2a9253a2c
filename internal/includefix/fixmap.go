package includefix

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule replaces every match of Pattern with Replacement, inserted literally.
type Rule struct {
	Pattern     string
	Replacement string
}

// Entry is one file and its ordered rules.
type Entry struct {
	Path  string
	Rules []Rule
}

// FixMap is applied in order, one entry per file.
type FixMap []Entry

// DefaultFixMap returns the built-in table for the firmware source tree.
func DefaultFixMap() FixMap {
	return FixMap{
		{Path: "src/core/ConfigManager.cpp", Rules: []Rule{
			{Pattern: `#include "../../include/core/ConfigManager.h"`, Replacement: `#include <core/ConfigManager.h>`},
		}},
		{Path: "src/drivers/IN_DIGITAL.cpp", Rules: []Rule{
			{Pattern: `#include "drivers/IN_DIGITAL.h"`, Replacement: `#include <drivers/IN_DIGITAL.h>`},
		}},
		{Path: "src/drivers/OUT_DIGITAL.cpp", Rules: []Rule{
			{Pattern: `#include "drivers/OUT_DIGITAL.h"`, Replacement: `#include <drivers/OUT_DIGITAL.h>`},
		}},
		{Path: "src/drivers/I2CManager.cpp", Rules: []Rule{
			{Pattern: `#include "../../include/drivers/I2CManager.h"`, Replacement: `#include <drivers/I2CManager.h>`},
		}},
		{Path: "src/core/SystemManager.cpp", Rules: []Rule{
			{Pattern: `#include "core/SystemManager.h"`, Replacement: `#include <core/SystemManager.h>`},
		}},
		{Path: "src/drivers/Led.cpp", Rules: []Rule{
			{Pattern: `#include "drivers/Led.h"`, Replacement: `#include <drivers/Led.h>`},
		}},
	}
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

type compiledEntry struct {
	path  string
	rules []compiledRule
}

// compile checks every entry and pattern before any file is touched.
func (m FixMap) compile() ([]compiledEntry, error) {
	out := make([]compiledEntry, 0, len(m))
	for i, entry := range m {
		path := strings.TrimSpace(entry.Path)
		if path == "" {
			return nil, fmt.Errorf("includefix: entry[%d] missing path", i)
		}
		rules := make([]compiledRule, 0, len(entry.Rules))
		for j, rule := range entry.Rules {
			if rule.Pattern == "" {
				return nil, fmt.Errorf("includefix: %s rule[%d] missing pattern", path, j)
			}
			re, err := regexp.Compile(rule.Pattern)
			if err != nil {
				return nil, fmt.Errorf("includefix: %s rule[%d]: %w", path, j, err)
			}
			rules = append(rules, compiledRule{re: re, replacement: rule.Replacement})
		}
		out = append(out, compiledEntry{path: path, rules: rules})
	}
	return out, nil
}

// Validate reports the first bad entry or pattern.
func (m FixMap) Validate() error {
	_, err := m.compile()
	return err
}

func (e compiledEntry) apply(content string) string {
	for _, rule := range e.rules {
		content = rule.re.ReplaceAllLiteralString(content, rule.replacement)
	}
	return content
}
