package journal

import (
	"strings"
	"testing"
	"time"
)

func parseText(t *testing.T, text string, opts Options) (*Document, []Diagnostic) {
	t.Helper()
	return Parse(strings.Split(text, "\n"), opts)
}

func TestParseDocument(t *testing.T) {
	doc, diags := parseText(t, `Name: test project
Tags: home, garden

2015
15 march: 9:00-12:00
 - tested things
16 march:
 - implemented day logs

home:
 - fix the fence
 * someday
   learn woodworking`, Options{})

	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if doc.Meta["name"] != "test project" {
		t.Fatalf("Meta[name] = %q", doc.Meta["name"])
	}
	if doc.Meta["tags"] != "home, garden" {
		t.Fatalf("Meta[tags] = %q", doc.Meta["tags"])
	}
	if len(doc.Log) != 3 {
		t.Fatalf("len(doc.Log) = %d, want 3", len(doc.Log))
	}
	if len(doc.Body) != 2 {
		t.Fatalf("len(doc.Body) = %d, want 2: %#v", len(doc.Body), doc.Body)
	}
	na := doc.NextActionBlocks()
	if len(na) != 1 {
		t.Fatalf("NextActionBlocks = %#v, want 1", na)
	}
	if len(na[0].Contexts) != 1 || na[0].Contexts[0] != "home" {
		t.Fatalf("Contexts = %#v", na[0].Contexts)
	}
	if _, ok := doc.Body[1].(*SomedayMaybe); !ok {
		t.Fatalf("doc.Body[1] = %T, want *SomedayMaybe", doc.Body[1])
	}
}

func TestParseDocumentLangHeader(t *testing.T) {
	doc, diags := parseText(t, `Lang: it

2015
15 marzo: 9:00-10:00`, Options{})

	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if len(doc.Log) != 2 {
		t.Fatalf("len(doc.Log) = %d, want 2", len(doc.Log))
	}
	wantBegin := time.Date(2015, time.March, 15, 9, 0, 0, 0, time.Local)
	if !doc.Log[1].Begin.Equal(wantBegin) {
		t.Fatalf("Begin = %s, want %s", doc.Log[1].Begin, wantBegin)
	}
}

func TestParseDocumentLangOptionOverridesHeader(t *testing.T) {
	doc, diags := parseText(t, `Lang: en

2015
15 marzo: 9:00-10:00`, Options{Lang: "it"})

	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if doc.Log[1].Begin.Month() != time.March {
		t.Fatalf("Begin month = %s, want March", doc.Log[1].Begin.Month())
	}
}

func TestParseDocumentNoMeta(t *testing.T) {
	doc, _ := parseText(t, `2015
15 march: 9:00-10:00
 - worked`, Options{})

	if len(doc.Meta) != 0 {
		t.Fatalf("Meta = %#v, want empty", doc.Meta)
	}
	if len(doc.Log) != 2 {
		t.Fatalf("len(doc.Log) = %d, want 2", len(doc.Log))
	}
}

func TestParseDocumentBodyOnly(t *testing.T) {
	doc, _ := Parse([]string{"chores", "- buy milk"}, Options{})

	if len(doc.Meta) != 0 {
		t.Fatalf("Meta = %#v, want empty", doc.Meta)
	}
	if len(doc.Log) != 0 {
		t.Fatalf("Log = %#v, want empty", doc.Log)
	}
	if len(doc.Body) != 2 {
		t.Fatalf("len(doc.Body) = %d, want 2: %#v", len(doc.Body), doc.Body)
	}
	if _, ok := doc.Body[0].(*FreeformText); !ok {
		t.Fatalf("doc.Body[0] = %T, want *FreeformText", doc.Body[0])
	}
	if _, ok := doc.Body[1].(*NextActions); !ok {
		t.Fatalf("doc.Body[1] = %T, want *NextActions", doc.Body[1])
	}
}

func TestParseDocumentEmpty(t *testing.T) {
	doc, diags := Parse(nil, Options{})
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v", diags)
	}
	if len(doc.Meta) != 0 || len(doc.Log) != 0 || len(doc.Body) != 0 {
		t.Fatalf("doc = %#v, want empty", doc)
	}
}

func TestParseDocumentRepeatedMetaKeepsLast(t *testing.T) {
	doc, _ := parseText(t, `Name: first
Name: second`, Options{})

	if doc.Meta["name"] != "second" {
		t.Fatalf("Meta[name] = %q, want %q", doc.Meta["name"], "second")
	}
}

func TestParseDocumentFirstLineOffsetsDiagnostics(t *testing.T) {
	_, diags := Parse([]string{
		"2015",
		"nonsense header: 9:00-10:00",
	}, Options{FirstLine: 10})

	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want one", diags)
	}
	if diags[0].Line != 11 {
		t.Fatalf("diagnostic line = %d, want 11", diags[0].Line)
	}
}

func TestLogBetween(t *testing.T) {
	doc, _ := parseText(t, `2015
15 march: 9:00-12:00
16 march: 9:00-12:00
20 march: 9:00-12:00`, Options{})

	if len(doc.Log) != 4 {
		t.Fatalf("len(doc.Log) = %d, want 4", len(doc.Log))
	}

	since := time.Date(2015, time.March, 16, 0, 0, 0, 0, time.Local)
	until := time.Date(2015, time.March, 17, 0, 0, 0, 0, time.Local)
	got := doc.LogBetween(since, until)
	if len(got) != 1 || got[0].Begin.Day() != 16 {
		t.Fatalf("LogBetween = %#v, want the 16 march block", got)
	}

	open := doc.LogBetween(since, time.Time{})
	if len(open) != 2 {
		t.Fatalf("open-ended LogBetween = %#v, want 2 blocks", open)
	}

	// Anchors carry no work and never match an interval.
	all := doc.LogBetween(time.Time{}, time.Time{})
	if len(all) != 3 {
		t.Fatalf("unbounded LogBetween = %#v, want 3 blocks", all)
	}
}
