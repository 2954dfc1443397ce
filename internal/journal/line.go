package journal

import "strings"

// Marker identifies the leading bullet of a classified line.
type Marker uint8

const (
	// MarkerNone is an ordinary text line.
	MarkerNone Marker = iota
	// MarkerBlank is an empty or all-whitespace line.
	MarkerBlank
	// MarkerDash is a line bulleted with a leading '-'.
	MarkerDash
	// MarkerStar is a line bulleted with a leading '*'.
	MarkerStar
)

// Line is a raw source line annotated with its indent depth and bullet
// marker. Text keeps the original line untouched so blocks can be written
// back verbatim.
type Line struct {
	Num    int // 1-based source line number
	Indent int
	Marker Marker
	Text   string
}

// Classify annotates lines with indent level and bullet marker. Indent
// counts one unit per space, eight per tab, and one for the bullet itself.
// Blank lines take the indent of the line preceding their run when the
// run is followed by a line at the same or deeper indent, so that blank
// lines stay attached to the block they punctuate; otherwise, and at end
// of input, they get indent 0.
func Classify(lines []string, firstNum int) []Line {
	out := make([]Line, 0, len(lines))
	lastIndent := 0
	var pending []Line

	for i, raw := range lines {
		if isBlank(raw) {
			pending = append(pending, Line{Num: firstNum + i, Marker: MarkerBlank, Text: raw})
			continue
		}

		lev, mlev, marker := measure(raw)
		if marker == MarkerNone {
			mlev = lev
		}

		if len(pending) > 0 {
			indent := 0
			if mlev >= lastIndent {
				indent = lastIndent
			}
			for j := range pending {
				pending[j].Indent = indent
			}
			out = append(out, pending...)
			pending = pending[:0]
		}

		lastIndent = lev
		out = append(out, Line{Num: firstNum + i, Indent: lev, Marker: marker, Text: raw})
	}

	// A trailing blank run keeps indent 0.
	out = append(out, pending...)
	return out
}

// measure walks the leading characters of a non-blank line. mlev is the
// indent accumulated before the bullet marker, which decides whether a
// preceding blank run belongs to the same block.
func measure(raw string) (lev, mlev int, marker Marker) {
	for _, c := range raw {
		switch {
		case c == ' ':
			lev++
		case c == '\t':
			lev += 8
		case marker == MarkerNone && (c == '-' || c == '*'):
			if c == '-' {
				marker = MarkerDash
			} else {
				marker = MarkerStar
			}
			mlev = lev
			lev++
		default:
			return lev, mlev, marker
		}
	}
	return lev, mlev, marker
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
