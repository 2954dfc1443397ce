package journal

import (
	"regexp"
	"slices"
	"strings"
)

// Block is one structural element of the action-list body. The set of
// implementations is closed: Spacer, FreeformText, NextActions and
// SomedayMaybe. Consumers dispatch with a type switch.
type Block interface {
	isBlock()
}

// Spacer is a run of blank lines, preserved for output fidelity.
type Spacer struct {
	Lines []string
}

// FreeformText is a run of lines that are neither context headers nor
// bulleted, preserved verbatim.
type FreeformText struct {
	Lines []string
}

// NextActions is a bullet list of next actions, optionally introduced by
// a context header line and tagged with an event parsed from that header.
// When a header carries several date tokens, one NextActions block is
// emitted per event, all sharing the same lines.
type NextActions struct {
	Contexts []string
	Lines    []string
	Event    *Event

	// dup marks event-bearing copies after the first, so rendering
	// reproduces the shared source lines exactly once.
	dup bool
}

// SomedayMaybe holds everything from the star terminator on, verbatim.
type SomedayMaybe struct {
	Lines []string
}

func (*Spacer) isBlock()       {}
func (*FreeformText) isBlock() {}
func (*NextActions) isBlock()  {}
func (*SomedayMaybe) isBlock() {}

// Duplicate reports whether this block is an event-tagged copy of an
// earlier block sharing the same source lines.
func (na *NextActions) Duplicate() bool {
	return na.dup
}

// withEvent returns a copy of the block tagged with the given event.
func (na *NextActions) withEvent(ev *Event) *NextActions {
	return &NextActions{
		Contexts: append([]string(nil), na.Contexts...),
		Lines:    append([]string(nil), na.Lines...),
		Event:    ev,
	}
}

var reContextSplit = regexp.MustCompile(`\s*,\s*`)

// bodyParser builds the next-actions / someday-maybe sections from
// classified lines.
type bodyParser struct {
	cur    *Cursor[Line]
	events *EventParser
	blocks []Block
}

// parseBody parses everything after the metadata and log sections.
// Exhausting the input mid-structure is a normal terminal condition;
// whatever was accumulated is kept.
func parseBody(lines []string, firstNum int, lang string) []Block {
	p := &bodyParser{
		cur:    NewCursor(Classify(lines, firstNum)),
		events: NewEventParser(lang),
	}
	p.parseNextActions()
	p.parseSomedayMaybe()
	return p.blocks
}

func (p *bodyParser) parseNextActions() {
	for {
		line, err := p.cur.Peek()
		if err != nil {
			return
		}

		switch {
		case line.Marker == MarkerStar:
			// First line of the someday/maybe section; leave it unconsumed.
			return

		case line.Indent == 0 && strings.HasSuffix(line.Text, ":"):
			var contexts []string
			var events []*Event
			header := strings.Trim(line.Text, " :\t")
			for _, tok := range reContextSplit.Split(header, -1) {
				if ev := p.events.ParseEvent(tok); ev != nil {
					events = append(events, ev)
				} else if !slices.Contains(contexts, tok) {
					contexts = append(contexts, tok)
				}
			}
			p.parseNextActionList(contexts, events, true)

		case line.Marker == MarkerDash:
			p.parseNextActionList(nil, nil, false)

		case line.Marker == MarkerBlank:
			p.addToSpacer(line.Text)
			p.cur.Pop()

		default:
			p.addToFreeform(line.Text)
			p.cur.Pop()
		}
	}
}

// parseNextActionList consumes the header line (when present) and every
// following line until the indent strictly decreases below the previous
// line's, a star marker appears, or input runs out.
func (p *bodyParser) parseNextActionList(contexts []string, events []*Event, hasHeader bool) {
	na := &NextActions{Contexts: contexts}

	if hasHeader {
		line, err := p.cur.Pop()
		if err != nil {
			return
		}
		na.Lines = append(na.Lines, line.Text)
	}

	lastIndent := -1
	for {
		line, err := p.cur.Peek()
		if err != nil {
			break
		}
		if line.Marker == MarkerStar {
			break
		}
		if lastIndent < 0 {
			lastIndent = line.Indent
		}
		if line.Indent < lastIndent {
			break
		}
		na.Lines = append(na.Lines, line.Text)
		p.cur.Pop()
		lastIndent = line.Indent
	}

	if len(events) == 0 {
		p.blocks = append(p.blocks, na)
		return
	}
	for i, ev := range events {
		tagged := na.withEvent(ev)
		tagged.dup = i > 0
		p.blocks = append(p.blocks, tagged)
	}
}

// parseSomedayMaybe consumes every remaining line, terminator included,
// into a single verbatim block.
func (p *bodyParser) parseSomedayMaybe() {
	if p.cur.AtEnd() {
		return
	}
	sm := &SomedayMaybe{}
	for {
		line, err := p.cur.Pop()
		if err != nil {
			break
		}
		sm.Lines = append(sm.Lines, line.Text)
	}
	p.blocks = append(p.blocks, sm)
}

func (p *bodyParser) addToSpacer(text string) {
	if len(p.blocks) > 0 {
		if sp, ok := p.blocks[len(p.blocks)-1].(*Spacer); ok {
			sp.Lines = append(sp.Lines, text)
			return
		}
	}
	p.blocks = append(p.blocks, &Spacer{Lines: []string{text}})
}

func (p *bodyParser) addToFreeform(text string) {
	if len(p.blocks) > 0 {
		if ff, ok := p.blocks[len(p.blocks)-1].(*FreeformText); ok {
			ff.Lines = append(ff.Lines, text)
			return
		}
	}
	p.blocks = append(p.blocks, &FreeformText{Lines: []string{text}})
}
