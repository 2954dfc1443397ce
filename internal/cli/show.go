package cli

import (
	"fmt"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/nchiapol/egt/internal/files"
	"github.com/nchiapol/egt/internal/journal"
)

func newShowCommand(manager *files.Manager) *cobra.Command {
	var (
		langFlag    string
		summaryFlag bool
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Show a parsed project journal: summary, work log and next actions.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := resolveManager(manager, args)
			if err != nil {
				return err
			}
			doc, diags, err := loadDocument(mgr, langFlag)
			if err != nil {
				return err
			}
			printDiagnostics(cmd, diags)

			out := cmd.OutOrStdout()

			table := uitable.New()
			table.AddRow("File:", mgr.Path())
			if name, ok := doc.Meta["name"]; ok {
				table.AddRow("Name:", name)
			}
			if tags, ok := doc.Meta["tags"]; ok {
				table.AddRow("Tags:", tags)
			}
			entries := logEntries(doc)
			table.AddRow("Log entries:", fmt.Sprintf("%d", len(entries)))
			if len(entries) > 0 {
				first := entries[0].Begin
				last := entries[len(entries)-1].Begin
				table.AddRow("First entry:", first.Format("2006-01-02"))
				table.AddRow("Last entry:", last.Format("2006-01-02"))
				table.AddRow("Time logged:", journal.FormatDuration(loggedTime(entries), false))
			}
			table.AddRow("Next actions:", fmt.Sprintf("%d", countActions(doc)))
			fmt.Fprintln(out, table)

			if summaryFlag {
				return nil
			}

			for _, blk := range doc.Log {
				fmt.Fprintln(out)
				headingColor.Fprintln(out, blk.HeadLine())
				for _, line := range blk.Body {
					fmt.Fprintln(out, line)
				}
			}
			for _, na := range doc.NextActionBlocks() {
				if na.Duplicate() {
					continue
				}
				fmt.Fprintln(out)
				printActionBlock(cmd, na)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&langFlag, "lang", "", "Language for date phrases (default: the journal's lang header)")
	cmd.Flags().BoolVar(&summaryFlag, "summary", false, "Print only the summary table")

	return cmd
}

// logEntries returns the log blocks that record work, leaving out the
// stand-alone date lines that only anchor the timeline.
func logEntries(doc *journal.Document) []*journal.LogBlock {
	var out []*journal.LogBlock
	for _, b := range doc.Log {
		if b.Anchor {
			continue
		}
		out = append(out, b)
	}
	return out
}

// loggedTime sums the durations of timed log entries. All-day entries
// carry no clocked time and are left out.
func loggedTime(blocks []*journal.LogBlock) time.Duration {
	var total time.Duration
	for _, b := range blocks {
		if b.AllDay {
			continue
		}
		total += b.Duration()
	}
	return total
}

// countActions counts bulleted action lines across next-action blocks,
// skipping the copies that multi-event headers produce.
func countActions(doc *journal.Document) int {
	count := 0
	for _, na := range doc.NextActionBlocks() {
		if na.Duplicate() {
			continue
		}
		for _, line := range na.Lines {
			if isActionLine(line) {
				count++
			}
		}
	}
	return count
}

func isActionLine(line string) bool {
	for _, r := range line {
		switch r {
		case ' ', '\t':
			continue
		case '-':
			return true
		default:
			return false
		}
	}
	return false
}
