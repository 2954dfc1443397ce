package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRootCommandRoutesSubcommands(t *testing.T) {
	mgr := writeJournal(t, sampleJournal)

	root := NewRootCommand(context.Background(), mgr)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"next"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "fix the fence") {
		t.Fatalf("next output = %q", out.String())
	}
}

func TestRootCommandVersion(t *testing.T) {
	mgr := writeJournal(t, sampleJournal)

	root := NewRootCommand(context.Background(), mgr)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "dev") {
		t.Fatalf("version output = %q", out.String())
	}
}

func TestRootCommandPositionalFile(t *testing.T) {
	def := writeJournal(t, "Name: default\n")
	other := writeJournal(t, "Name: explicit\n")

	root := NewRootCommand(context.Background(), def)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"meta", other.Path()})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "explicit") {
		t.Fatalf("meta output = %q, want the explicit file's headers", out.String())
	}
}
