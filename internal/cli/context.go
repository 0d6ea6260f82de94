// Package cli holds the operations behind polyium's commands and the
// context they share: the terminal UI and the resolved runtime settings.
package cli

import (
	"fmt"

	"github.com/polyium/polyium/internal/models"
	"github.com/polyium/polyium/internal/ui"
)

// Context holds all dependencies a command needs.
type Context struct {
	UI       *ui.UI
	Settings *models.Base
}

// Options configure NewContext.
type Options struct {
	// ConfigPath is an optional YAML or JSON settings file.
	ConfigPath string
	// NonInteractive answers every prompt with its default.
	NonInteractive bool
}

// NewContext loads and resolves the settings and builds the UI.
func NewContext(opts Options) (*Context, error) {
	settings, err := models.LoadBase(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	u := ui.New()
	u.SetNonInteractive(opts.NonInteractive)

	return &Context{
		UI:       u,
		Settings: settings,
	}, nil
}
