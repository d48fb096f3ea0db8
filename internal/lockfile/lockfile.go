// Package lockfile guards the state file against concurrent writers.
// A session writes "<pid> <executable>" to a lockfile next to the
// state file; a second session refuses to start while the recorded
// process is alive and still runs the same executable.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"
)

var (
	findProcessFunc = ps.FindProcess
	executableFunc  = os.Executable
)

// ErrLocked is returned by Acquire when another live process holds the lock.
var ErrLocked = errors.New("another session is already running")

// Lock represents a held lockfile.
type Lock struct {
	path string
}

// Acquire writes a pid lockfile at path. A stale lockfile left behind
// by a dead process, or one whose pid was reused by an unrelated
// process, is overwritten.
func Acquire(path string) (*Lock, error) {
	if pid, held := currentHolder(path); held {
		return nil, fmt.Errorf("%w (pid %d)", ErrLocked, pid)
	}

	content := fmt.Sprintf("%d %s", os.Getpid(), executableName())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: path}, nil
}

// Release removes the lockfile.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

func executableName() string {
	exe, err := executableFunc()
	if err != nil {
		return "stickerhabit"
	}
	return filepath.Base(exe)
}

// currentHolder reports the pid in the lockfile if the process behind
// it is still alive and runs the recorded executable.
func currentHolder(path string) (int, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	parts := strings.Fields(strings.TrimSpace(string(content)))
	if len(parts) != 2 {
		// Malformed lockfile, treat as stale.
		return 0, false
	}

	pid, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}

	if pid == os.Getpid() {
		return 0, false
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return 0, false
	}

	// The pid may have been reused by an unrelated process since the
	// lockfile was written.
	if !strings.HasPrefix(process.Executable(), parts[1]) {
		return 0, false
	}

	return pid, true
}
