package system

import (
	"fmt"
	"os"
)

// Permission bits for owner, group and other.
const (
	PermUserRead   os.FileMode = 0o400
	PermUserWrite  os.FileMode = 0o200
	PermUserExec   os.FileMode = 0o100
	PermGroupRead  os.FileMode = 0o040
	PermGroupWrite os.FileMode = 0o020
	PermGroupExec  os.FileMode = 0o010
	PermOtherRead  os.FileMode = 0o004
	PermOtherWrite os.FileMode = 0o002
	PermOtherExec  os.FileMode = 0o001

	// PermExecutable is applied when an Executable has to repair its mode (rwxrwxr-x).
	PermExecutable os.FileMode = 0o775
)

const (
	readBits    os.FileMode = PermUserRead | PermGroupRead | PermOtherRead
	specialBits             = os.ModeSetuid | os.ModeSetgid | os.ModeSticky
)

// permissions returns the low nine permission bits of path.
func permissions(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info.Mode().Perm(), nil
}

// ReadToExecute grants execute to every principal that can already read.
// Bits other than the execute bits are left as they are.
func ReadToExecute(mode os.FileMode) os.FileMode {
	return mode | (mode&readBits)>>2
}

// MakeExecutable sets the execute bit for each principal holding the read
// bit on path. Setuid, setgid and sticky bits are kept.
func MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	mode := info.Mode() & (os.ModePerm | specialBits)
	if err := os.Chmod(path, ReadToExecute(mode)); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}

	return nil
}
