package cli

import (
	"strings"
	"testing"
)

func TestMetaCommandPrintsHeaders(t *testing.T) {
	mgr := writeJournal(t, sampleJournal)

	out, _ := runCommand(t, newMetaCommand(mgr))

	if !strings.Contains(out, "name:") || !strings.Contains(out, "garden shed") {
		t.Fatalf("output missing name header: %q", out)
	}
	if !strings.Contains(out, "tags:") || !strings.Contains(out, "home, wood") {
		t.Fatalf("output missing tags header: %q", out)
	}
}

func TestMetaCommandSingleKey(t *testing.T) {
	mgr := writeJournal(t, sampleJournal)

	out, _ := runCommand(t, newMetaCommand(mgr), "--key", "tags")

	if strings.TrimSpace(out) != "home, wood" {
		t.Fatalf("output = %q, want the tags value only", out)
	}
}

func TestMetaCommandUnknownKey(t *testing.T) {
	mgr := writeJournal(t, sampleJournal)

	cmd := newMetaCommand(mgr)
	cmd.SetArgs([]string{"--key", "owner"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want unknown header error")
	}
}
