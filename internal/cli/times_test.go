package cli

import (
	"strings"
	"testing"
)

const timesJournal = `2015
15 march: 9:00-12:00
15 march: 14:00-15:30
16 march:
 - offsite, nothing clocked
17 march: 10:00-11:00
`

func TestTimesCommandReportsPerDay(t *testing.T) {
	mgr := writeJournal(t, timesJournal)

	out, _ := runCommand(t, newTimesCommand(mgr))

	if !strings.Contains(out, "2015-03-15") {
		t.Fatalf("output missing day: %q", out)
	}
	if !strings.Contains(out, "4h 30m") {
		t.Fatalf("output missing summed day total: %q", out)
	}
	if strings.Contains(out, "2015-03-16") {
		t.Fatalf("all-day entries should not be counted: %q", out)
	}
	if !strings.Contains(out, "total 5h 30m") {
		t.Fatalf("output missing grand total: %q", out)
	}
}

func TestTimesCommandHonorsSince(t *testing.T) {
	mgr := writeJournal(t, timesJournal)

	out, _ := runCommand(t, newTimesCommand(mgr), "--since", "2015-03-17")

	if strings.Contains(out, "2015-03-15") {
		t.Fatalf("output should exclude days before --since: %q", out)
	}
	if !strings.Contains(out, "total 1h") {
		t.Fatalf("output missing filtered total: %q", out)
	}
}

func TestTimesCommandNoTimedEntries(t *testing.T) {
	mgr := writeJournal(t, "2015\n16 march:\n - all day\n")

	out, _ := runCommand(t, newTimesCommand(mgr))

	if !strings.Contains(out, "(no logged time)") {
		t.Fatalf("output = %q, want the empty notice", out)
	}
}

func TestTimesCommandBoundsUseJournalLang(t *testing.T) {
	mgr := writeJournal(t, `Lang: it

2015
5 marzo: 9:00-12:00
3 maggio: 10:00-11:00
`)

	// 3/5 is the third of May under the journal's day-first grammar.
	out, _ := runCommand(t, newTimesCommand(mgr), "--since", "3/5/2015")

	if strings.Contains(out, "2015-03-05") {
		t.Fatalf("output should exclude days before --since: %q", out)
	}
	if !strings.Contains(out, "2015-05-03") {
		t.Fatalf("output missing the May day: %q", out)
	}
	if !strings.Contains(out, "total 1h") {
		t.Fatalf("output missing filtered total: %q", out)
	}
}

func TestTimesCommandRejectsBadBound(t *testing.T) {
	mgr := writeJournal(t, timesJournal)

	cmd := newTimesCommand(mgr)
	cmd.SetArgs([]string{"--since", "garbage"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want bound parse failure")
	}
}
