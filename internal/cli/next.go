package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nchiapol/egt/internal/files"
	"github.com/nchiapol/egt/internal/journal"
)

func newNextCommand(manager *files.Manager) *cobra.Command {
	var (
		langFlag    string
		contextFlag string
	)

	cmd := &cobra.Command{
		Use:   "next [file]",
		Short: "List next actions, optionally filtered by context.",
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
			printed := 0
			for _, na := range doc.NextActionBlocks() {
				if na.Duplicate() {
					continue
				}
				if contextFlag != "" && !hasContext(na, contextFlag) {
					continue
				}
				if printed > 0 {
					fmt.Fprintln(out)
				}
				printActionBlock(cmd, na)
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(out, "(no next actions)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&langFlag, "lang", "", "Language for date phrases (default: the journal's lang header)")
	cmd.Flags().StringVar(&contextFlag, "context", "", "Only show lists tagged with this context")

	return cmd
}

func hasContext(na *journal.NextActions, context string) bool {
	for _, c := range na.Contexts {
		if strings.EqualFold(c, context) {
			return true
		}
	}
	return false
}

// printActionBlock writes one next-action list: a colored context header
// when the list has contexts, then the action lines verbatim. Lists with
// a header line keep it as their first source line, so it is skipped in
// favor of the colored one.
func printActionBlock(cmd *cobra.Command, na *journal.NextActions) {
	out := cmd.OutOrStdout()
	lines := na.Lines
	if len(na.Contexts) > 0 || na.Event != nil {
		headingColor.Fprintln(out, strings.TrimRight(lines[0], " \t"))
		lines = lines[1:]
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
