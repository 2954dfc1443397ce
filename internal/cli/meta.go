package cli

import (
	"fmt"
	"sort"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/nchiapol/egt/internal/files"
)

func newMetaCommand(manager *files.Manager) *cobra.Command {
	var keyFlag string

	cmd := &cobra.Command{
		Use:   "meta [file]",
		Short: "Print the journal's metadata headers.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := resolveManager(manager, args)
			if err != nil {
				return err
			}
			doc, diags, err := loadDocument(mgr, "")
			if err != nil {
				return err
			}
			printDiagnostics(cmd, diags)

			out := cmd.OutOrStdout()
			if keyFlag != "" {
				value, ok := doc.Meta[keyFlag]
				if !ok {
					return fmt.Errorf("no metadata header %q", keyFlag)
				}
				fmt.Fprintln(out, value)
				return nil
			}

			keys := make([]string, 0, len(doc.Meta))
			for k := range doc.Meta {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			table := uitable.New()
			for _, k := range keys {
				table.AddRow(k+":", doc.Meta[k])
			}
			fmt.Fprintln(out, table)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyFlag, "key", "", "Print only the value of this header (lowercase key)")

	return cmd
}
