package ui

import (
	"strings"
	"testing"

	"github.com/nchiapol/egt/internal/journal"
)

func parseDoc(t *testing.T, text string) *journal.Document {
	t.Helper()
	doc, diags := journal.Parse(strings.Split(text, "\n"), journal.Options{})
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	return doc
}

func TestRenderActionsViewShowsSomedayWithoutActions(t *testing.T) {
	doc := parseDoc(t, " * someday\n   learn woodworking")

	got := renderActionsView(doc)

	if strings.Contains(got, "(no next actions)") {
		t.Fatalf("renderActionsView() = %q, want the someday section instead of the empty notice", got)
	}
	if !strings.Contains(got, "someday/maybe") {
		t.Fatalf("renderActionsView() = %q, missing someday heading", got)
	}
	if !strings.Contains(got, "   learn woodworking") {
		t.Fatalf("renderActionsView() = %q, missing someday line", got)
	}
}

func TestRenderActionsViewListsActionsAndSomeday(t *testing.T) {
	doc := parseDoc(t, "Name: shed\n\nhome:\n - fix the fence\n * someday\n   learn woodworking")

	got := renderActionsView(doc)

	if !strings.Contains(got, " - fix the fence") {
		t.Fatalf("renderActionsView() = %q, missing action line", got)
	}
	if !strings.Contains(got, "someday/maybe") {
		t.Fatalf("renderActionsView() = %q, missing someday heading", got)
	}
}

func TestRenderActionsViewEmptyBody(t *testing.T) {
	doc := parseDoc(t, "just some notes")

	if got := renderActionsView(doc); got != "(no next actions)" {
		t.Fatalf("renderActionsView() = %q, want the empty notice", got)
	}
}
