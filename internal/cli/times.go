package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/nchiapol/egt/internal/files"
	"github.com/nchiapol/egt/internal/journal"
)

func newTimesCommand(manager *files.Manager) *cobra.Command {
	var (
		langFlag  string
		sinceFlag string
		untilFlag string
	)

	cmd := &cobra.Command{
		Use:   "times [file]",
		Short: "Report logged time per day, with a total.",
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

			lang := langFlag
			if lang == "" {
				lang = doc.Meta["lang"]
			}
			since, err := resolveBound(sinceFlag, lang)
			if err != nil {
				return err
			}
			until, err := resolveBound(untilFlag, lang)
			if err != nil {
				return err
			}

			perDay := map[time.Time]time.Duration{}
			for _, b := range doc.LogBetween(since, until) {
				if b.AllDay {
					continue
				}
				day := time.Date(b.Begin.Year(), b.Begin.Month(), b.Begin.Day(), 0, 0, 0, 0, b.Begin.Location())
				perDay[day] += b.Duration()
			}

			days := make([]time.Time, 0, len(perDay))
			for day := range perDay {
				days = append(days, day)
			}
			sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

			out := cmd.OutOrStdout()
			if len(days) == 0 {
				fmt.Fprintln(out, "(no logged time)")
				return nil
			}

			table := uitable.New()
			var total time.Duration
			for _, day := range days {
				table.AddRow(day.Format("2006-01-02"), journal.FormatDuration(perDay[day], true))
				total += perDay[day]
			}
			fmt.Fprintln(out, table)
			headingColor.Fprintf(out, "total %s\n", journal.FormatDuration(total, false))
			return nil
		},
	}

	cmd.Flags().StringVar(&langFlag, "lang", "", "Language for date phrases (default: the journal's lang header)")
	cmd.Flags().StringVar(&sinceFlag, "since", "", "Only count entries on or after this date")
	cmd.Flags().StringVar(&untilFlag, "until", "", "Only count entries on or before this date")

	return cmd
}
