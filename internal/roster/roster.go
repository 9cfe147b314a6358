// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     roster
// Description: Batch submission roster file parsing
// Created:     2026-08-30
// License:     MIT
// ============================================================================

package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one student app to submit.
type Entry struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type file struct {
	Students []Entry `yaml:"students"`
}

// Load reads a batch roster file. The format mirrors the roster
// endpoint: a top-level students list of name/url pairs. Entries with
// an empty name or URL are rejected up front so a batch run never
// trips the per-submission validation halfway through.
func Load(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	if len(f.Students) == 0 {
		return nil, fmt.Errorf("roster file %s has no students", path)
	}

	for i, e := range f.Students {
		if e.Name == "" || e.URL == "" {
			return nil, fmt.Errorf("roster entry %d is missing a name or url", i+1)
		}
	}

	return f.Students, nil
}
