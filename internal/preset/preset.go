// Package preset loads YAML session presets: pool declarations plus starting
// variables and currency balances, applied to an interpreter session as one
// atomic unit.
package preset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidPreset = errors.New("invalid preset")

// Pool mirrors a pool-definition statement. Prob is a percentage, the same
// unit the language's `(0.6/...)` form uses.
type Pool struct {
	Name  string   `yaml:"name"`
	Prob  float64  `yaml:"prob"`
	Items []string `yaml:"items"`
}

// File is one preset document.
type File struct {
	Version   string             `yaml:"version,omitempty"`
	Pools     []Pool             `yaml:"pools,omitempty"`
	Variables map[string]string  `yaml:"variables,omitempty"` // value text, assignment forms
	Currency  map[string]float64 `yaml:"currency,omitempty"`
	Notes     string             `yaml:"notes,omitempty"`
}

// Load reads and validates one preset file. Unlike merged config trees,
// presets are explicit: a missing file is an error.
func Load(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read preset: %w", err)
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("parse preset: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate applies the same rules a pool-definition statement enforces.
func (f File) Validate() error {
	for i, p := range f.Pools {
		if p.Name == "" {
			return fmt.Errorf("%w: pool %d has no name", ErrInvalidPreset, i)
		}
		if len(p.Items) == 0 {
			return fmt.Errorf("%w: pool %q has no items", ErrInvalidPreset, p.Name)
		}
		if p.Prob < 0 || p.Prob > 100 {
			return fmt.Errorf("%w: pool %q prob %v outside 0..100", ErrInvalidPreset, p.Name, p.Prob)
		}
	}
	for name, v := range f.Currency {
		if name == "" {
			return fmt.Errorf("%w: currency entry with empty name", ErrInvalidPreset)
		}
		if v < 0 {
			return fmt.Errorf("%w: currency %q is negative", ErrInvalidPreset, name)
		}
	}
	for name := range f.Variables {
		if name == "" {
			return fmt.Errorf("%w: variable with empty name", ErrInvalidPreset)
		}
	}
	return nil
}
