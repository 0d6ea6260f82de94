package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/chainguard-dev/clog"

	"github.com/polyium/polyium/internal/environment"
	"github.com/polyium/polyium/internal/system"
)

// ExtractEnv renders the CI script for the .env template at path.
func ExtractEnv(ctx context.Context, path string, includeDefaults bool) (string, error) {
	vars, err := environment.Extract(ctx, path)
	if err != nil {
		return "", err
	}

	secrets := 0
	for _, v := range vars {
		if v.Secret() {
			secrets++
		}
	}
	clog.FromContext(ctx).Debugf("Extracted %d variable(s), %d without a value", len(vars), secrets)

	return environment.Render(vars, includeDefaults), nil
}

// WriteScript writes script to path and makes it executable. An existing
// file is first moved aside to "<stem>.backup.<ext>"; the backup path is
// returned, empty when there was nothing to move.
func WriteScript(ctx context.Context, path, script string) (string, error) {
	log := clog.FromContext(ctx)

	var backup string
	if target := system.NewDescriptor(path); target.Exists() {
		if target.IsDir() {
			return "", fmt.Errorf("%w: %s", system.ErrNotFile, path)
		}

		var err error
		backup, err = system.AppendFileStem(path, "backup")
		if err != nil {
			return "", err
		}
		if err := os.Rename(path, backup); err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", path, err)
		}
		log.Infof("Backed up existing %s to %s", path, backup)
	}

	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		return backup, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := system.MakeExecutable(path); err != nil {
		return backup, err
	}

	log.Debugf("Wrote %s", path)
	return backup, nil
}
