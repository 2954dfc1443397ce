package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nchiapol/egt/internal/files"
	"github.com/nchiapol/egt/internal/journal"
)

var (
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	headingColor = color.New(color.FgCyan, color.Bold)
)

// resolveManager picks the journal file for a command invocation: an
// explicit positional argument wins over the manager the root command was
// built with.
func resolveManager(manager *files.Manager, args []string) (*files.Manager, error) {
	if len(args) == 0 {
		return manager, nil
	}
	return files.NewManager(args[0])
}

// loadDocument reads and parses the managed journal.
func loadDocument(manager *files.Manager, lang string) (*journal.Document, []journal.Diagnostic, error) {
	lines, err := manager.Load()
	if err != nil {
		return nil, nil, err
	}
	doc, diags := journal.Parse(lines, journal.Options{Lang: lang})
	return doc, diags, nil
}

// printDiagnostics reports parse problems on stderr, colored by severity.
// Diagnostics never abort a command; the parse is best-effort.
func printDiagnostics(cmd *cobra.Command, diags []journal.Diagnostic) {
	out := cmd.ErrOrStderr()
	for _, d := range diags {
		c := warningColor
		if d.Severity == journal.SeverityError {
			c = errorColor
		}
		c.Fprintln(out, d.String())
	}
}

// resolveBound parses a --since/--until style flag value as a date phrase,
// in the journal's language.
func resolveBound(value, lang string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parser := journal.NewEventParser(lang)
	parsed, ok := parser.ParseDate(value)
	if !ok {
		return time.Time{}, fmt.Errorf("cannot parse date %q", value)
	}
	return parsed, nil
}
