package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveRealPath returns the absolute path with every symlink resolved.
// Trailing components that don't exist yet are kept as given, so
// /mnt/new resolves to /var/mnt/new when /mnt links to /var/mnt.
func ResolveRealPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to make %s absolute: %w", path, err)
	}

	existing := abs
	var rest []string
	for {
		resolved, err := filepath.EvalSymlinks(existing)
		if err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to resolve %s: %w", path, err)
		}

		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}
}

// AppendFileStem inserts addition between the stem and the extension of
// path's file name, resolving the parent directory: "a/b.txt" with "bak"
// becomes "<abs>/a/b.bak.txt". Names without an extension, dotfiles
// included, get the addition appended: ".env" becomes ".env.bak".
func AppendFileStem(path, addition string) (string, error) {
	resolved, err := ResolveRealPath(path)
	if err != nil {
		return "", err
	}

	base := filepath.Base(resolved)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem, ext = base, ""
	}

	name := stem + "." + addition + ext
	return filepath.Join(filepath.Dir(resolved), name), nil
}

// criticalPaths may never be removed recursively.
var criticalPaths = []string{
	"/",
	"/bin",
	"/boot",
	"/dev",
	"/etc",
	"/home",
	"/lib",
	"/lib64",
	"/proc",
	"/root",
	"/sbin",
	"/sys",
	"/tmp",
	"/usr",
	"/var",
}

// checkRemovable refuses paths whose recursive removal would take out a
// system directory, the user's home, or the temporary root itself. Both the
// path as given and its resolved form are checked, against the critical
// paths as listed and as resolved, so /bin is refused on merged-usr systems
// where it links to /usr/bin.
func checkRemovable(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafePath)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to make %s absolute: %w", path, err)
	}
	resolved, err := ResolveRealPath(path)
	if err != nil {
		return err
	}
	candidates := []string{abs, resolved}

	for _, critical := range criticalPaths {
		if matchesAny(candidates, critical) {
			return fmt.Errorf("%w: refusing to remove critical system path %s", ErrUnsafePath, abs)
		}
	}

	if home, err := os.UserHomeDir(); err == nil && matchesAny(candidates, home) {
		return fmt.Errorf("%w: refusing to remove home directory %s", ErrUnsafePath, abs)
	}

	if matchesAny(candidates, os.TempDir()) {
		return fmt.Errorf("%w: refusing to remove temporary root %s", ErrUnsafePath, abs)
	}

	return nil
}

// matchesAny reports whether target, cleaned or resolved, equals one of
// candidates.
func matchesAny(candidates []string, target string) bool {
	targets := []string{filepath.Clean(target)}
	if resolved, err := ResolveRealPath(target); err == nil {
		targets = append(targets, resolved)
	}

	for _, c := range candidates {
		for _, t := range targets {
			if c == t {
				return true
			}
		}
	}
	return false
}
