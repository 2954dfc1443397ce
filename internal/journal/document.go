package journal

import (
	"bufio"
	"net/textproto"
	"regexp"
	"strings"
	"time"
)

// Document is a fully parsed project journal: email-style metadata
// headers, the chronological work log, and the GTD action-list body.
type Document struct {
	Meta map[string]string
	Log  []*LogBlock
	Body []Block
}

// Options configure a parse.
type Options struct {
	// FirstLine is the 1-based number of the first input line; zero
	// means 1. Line numbers in diagnostics are stable across the
	// whole document.
	FirstLine int
	// Lang overrides the document's "lang" metadata header when set.
	Lang string
}

// NextActionBlocks returns the next-action blocks of the body, in order.
func (d *Document) NextActionBlocks() []*NextActions {
	var out []*NextActions
	for _, b := range d.Body {
		if na, ok := b.(*NextActions); ok {
			out = append(out, na)
		}
	}
	return out
}

// LogBetween returns the log blocks overlapping the given interval.
// Zero-valued bounds leave that side open.
func (d *Document) LogBetween(since, until time.Time) []*LogBlock {
	var out []*LogBlock
	for _, b := range d.Log {
		if b.Anchor {
			continue
		}
		if b.Overlaps(since, until) {
			out = append(out, b)
		}
	}
	return out
}

// sourceLine pairs a raw line with its stable 1-based number.
type sourceLine struct {
	num  int
	text string
}

// Head lines look like email headers: a word start and a colon.
var reMetaHead = regexp.MustCompile(`^\w.*:`)

// Parse builds a Document from lines already stripped of trailing
// whitespace. Parsing is best-effort: structural problems surface as
// line-tagged diagnostics, never as a failure.
func Parse(lines []string, opts Options) (*Document, []Diagnostic) {
	first := opts.FirstLine
	if first <= 0 {
		first = 1
	}
	src := make([]sourceLine, len(lines))
	for i, text := range lines {
		src[i] = sourceLine{num: first + i, text: text}
	}

	p := &docParser{
		cur:  NewCursor(src),
		sink: &diagSink{},
		doc:  &Document{Meta: map[string]string{}},
	}

	p.parseMeta()
	p.lang = opts.Lang
	if p.lang == "" {
		p.lang = p.doc.Meta["lang"]
	}
	p.skipBlank()
	p.parseLog()
	p.skipBlank()
	p.parseBody()

	return p.doc, p.sink.diags
}

type docParser struct {
	cur  *Cursor[sourceLine]
	sink *diagSink
	doc  *Document
	lang string
}

// parseMeta consumes the header block, if any: contiguous non-blank lines
// from the start of the document, parsed as email-style key/value headers
// with case-folded keys. A document whose first line already looks like a
// log carries no metadata.
func (p *docParser) parseMeta() {
	line, err := p.cur.Peek()
	if err != nil {
		return
	}
	if looksLikeLogStart(line.text) {
		return
	}
	if !reMetaHead.MatchString(line.text) {
		return
	}

	var headerLines []string
	headerStart := line.num
	for {
		src, err := p.cur.Pop()
		if err != nil || isBlank(src.text) {
			break
		}
		headerLines = append(headerLines, src.text)
	}

	reader := textproto.NewReader(bufio.NewReader(strings.NewReader(strings.Join(headerLines, "\n") + "\n\n")))
	hdr, err := reader.ReadMIMEHeader()
	if err != nil {
		p.sink.warnf(headerStart, "malformed metadata header: %v", err)
	}
	for key, values := range hdr {
		if len(values) == 0 {
			continue
		}
		// Repeated keys keep the last occurrence.
		p.doc.Meta[strings.ToLower(key)] = values[len(values)-1]
	}
}

func (p *docParser) skipBlank() {
	for {
		line, err := p.cur.Peek()
		if err != nil || !isBlank(line.text) {
			return
		}
		p.cur.Pop()
	}
}

// parseLog runs the log segmenter only when the next line looks like the
// start of a work log. A document with no log-looking lines yields an
// empty log, not an error.
func (p *docParser) parseLog() {
	line, err := p.cur.Peek()
	if err != nil || !looksLikeLogStart(line.text) {
		return
	}
	lp := newLogParser(p.lang, p.sink)
	p.doc.Log = lp.parse(p.cur)
}

// parseBody hands every remaining line to the action-list parser.
func (p *docParser) parseBody() {
	if p.cur.AtEnd() {
		return
	}
	var rest []string
	firstNum := 0
	for {
		src, err := p.cur.Pop()
		if err != nil {
			break
		}
		if firstNum == 0 {
			firstNum = src.num
		}
		rest = append(rest, src.text)
	}
	p.doc.Body = parseBody(rest, firstNum, p.lang)
}
