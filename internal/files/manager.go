package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const filePermissions = 0o644

// Manager centralizes which journal file egt reads and how it is written
// back. Writes go through a temporary file so a crash never leaves a
// half-written journal behind.
type Manager struct {
	path string
}

// NewManager constructs a Manager for the given journal file. If path is
// empty, it falls back to the location determined by ResolveJournalPath.
func NewManager(path string) (*Manager, error) {
	var err error
	if path == "" {
		path, err = ResolveJournalPath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &Manager{path: abs}, nil
}

// Path returns the absolute path of the managed journal file.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the journal and splits it into lines with trailing whitespace
// stripped, the form the parser expects.
func (m *Manager) Load() ([]string, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return lines, nil
}

// WriteAtomic replaces the journal with the given lines. The content is
// written to a temporary file in the same directory, synced, and renamed
// over the original, preserving the original's permissions when it exists.
func (m *Manager) WriteAtomic(lines []string) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}

	mode := fs.FileMode(filePermissions)
	if info, err := os.Stat(m.path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(m.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(m.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temporary journal: %w", err)
	}
	defer os.Remove(tmp.Name())

	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write temporary journal: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temporary journal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary journal: %w", err)
	}

	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("set journal permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), m.path); err != nil {
		return fmt.Errorf("replace journal: %w", err)
	}
	return nil
}
