package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".egt"
	// DefaultFileName is the journal file used when nothing is configured.
	DefaultFileName = "journal.egt"
)

// ResolveJournalPath determines which journal file egt works on. EGT_FILE
// points at a file directly; EGT_HOME overrides the directory holding the
// default file name. Without either, the journal lives at ~/.egt/journal.egt.
func ResolveJournalPath() (string, error) {
	if override, ok := os.LookupEnv("EGT_FILE"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	if override, ok := os.LookupEnv("EGT_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			dir, err := normalizePath(override)
			if err != nil {
				return "", err
			}
			return filepath.Join(dir, DefaultFileName), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName, DefaultFileName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
