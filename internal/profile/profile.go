// Package profile handles loading built-in difficulty profiles. A profile
// names, per operation, the Q-value window to aim for and the operand
// range to draw from.
package profile

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Profile defines sampling bounds for each supported operation. A nil
// operation entry means the profile does not cover that operation.
type Profile struct {
	Name           string  `yaml:"name"`
	Version        int     `yaml:"version"`
	Description    string  `yaml:"description"`
	Trials         int     `yaml:"trials"`
	Addition       *Bounds `yaml:"addition"`
	Subtraction    *Bounds `yaml:"subtraction"`
	Multiplication *Bounds `yaml:"multiplication"`
}

// Bounds is the target Q window and operand range for one operation.
type Bounds struct {
	QMin       float64 `yaml:"q_min"`
	QMax       float64 `yaml:"q_max"`
	MinOperand int     `yaml:"min_operand"`
	MaxOperand int     `yaml:"max_operand"`
}

// LoadBuiltin loads a built-in profile by name.
func LoadBuiltin(name string) (*Profile, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: unknown profile %q: %w", name, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: parse %q: %w", name, err)
	}
	return &p, nil
}

// List returns the names of all available built-in profiles.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}
