// Package environment turns a .env template into the shell snippet a CI
// pipeline runs to materialize .env, pulling unset values from secrets.
package environment

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
	"gopkg.in/ini.v1"

	"github.com/polyium/polyium/internal/system"
)

// ErrNotReadable is returned when the template exists but can't be read.
var ErrNotReadable = errors.New("target file is not readable")

// Variable is one entry of a .env template.
type Variable struct {
	// Name is the upper-cased variable name.
	Name string
	// Value is the template's value, or the process environment's when the
	// template leaves it empty. Empty means the value is a secret.
	Value string
}

// Secret reports whether the variable has no default and must come from CI
// secrets.
func (v Variable) Secret() bool {
	return v.Value == ""
}

// Extract reads the .env template at path. Keys are deduplicated by their
// train-case form, first occurrence winning, and keep their file order.
func Extract(ctx context.Context, path string) ([]Variable, error) {
	log := clog.FromContext(ctx)

	file, err := system.NewFile(path, false)
	if err != nil {
		return nil, err
	}
	if !file.IsReadable() {
		return nil, fmt.Errorf("%w: %s", ErrNotReadable, file.Path())
	}

	// Only whole-line comments exist; "#" inside a value is kept.
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, file.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file.Path(), err)
	}

	seen := make(map[string]bool)
	var vars []Variable
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			normalized := strings.ToLower(strings.ReplaceAll(key.Name(), "_", "-"))
			if seen[normalized] {
				continue
			}
			seen[normalized] = true

			name := strings.ToUpper(key.Name())
			value := strings.TrimSpace(key.String())
			if value == "" {
				if env, ok := os.LookupEnv(name); ok {
					value = env
				}
			}
			if value != "" {
				log.Debugf("Found default configuration value (%s): %s", name, value)
			}

			vars = append(vars, Variable{Name: name, Value: value})
		}
	}

	return vars, nil
}

// Render builds the shell snippet for vars. Secrets are always emitted;
// variables with defaults only when includeDefaults is set.
func Render(vars []Variable, includeDefaults bool) string {
	lines := []string{
		"cp .env.example .env",
		"",
		"function replace() {",
		`    sed -i "s/${1}=.*/${1}=${2}/" .env`,
		"}",
		"",
		"# Secret replacement(s) through actions configuration",
	}

	var defaults []string
	for _, v := range vars {
		if v.Secret() {
			lines = append(lines, fmt.Sprintf(`replace "%s" "${{ secrets.%s }}"`, v.Name, v.Name))
			continue
		}
		defaults = append(defaults, fmt.Sprintf(`replace "%s" "%s"`, v.Name, v.Value))
	}

	if includeDefaults {
		lines = append(lines, "", "# Defaults configuration ", "")
		lines = append(lines, defaults...)
	}

	return "\n" + strings.Join(lines, "\n") + "\n"
}
