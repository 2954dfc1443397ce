package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nchiapol/egt/internal/files"
)

func newFmtCommand(manager *files.Manager) *cobra.Command {
	var (
		langFlag  string
		writeFlag bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-render the journal in normalized form, annotating entry durations.",
		Long: "fmt parses the journal and prints it back: metadata headers are " +
			"canonicalized, timed log heads gain a duration annotation, and body " +
			"text is preserved byte for byte. With --write the journal file is " +
			"replaced atomically.",
		Args: cobra.MaximumNArgs(1),
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

			rendered := doc.Render()
			if writeFlag {
				if err := mgr.WriteAtomic(rendered); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rewrote %s\n", mgr.Path())
				return nil
			}

			out := cmd.OutOrStdout()
			for _, line := range rendered {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&langFlag, "lang", "", "Language for date phrases (default: the journal's lang header)")
	cmd.Flags().BoolVar(&writeFlag, "write", false, "Rewrite the journal file in place")

	return cmd
}
