package journal

import (
	"fmt"
	"net/textproto"
	"sort"
)

// HeadLine returns the head line for the block as it should be written
// out. Parsed blocks keep their original head text; timed blocks with an
// end gain a duration annotation, which the parser tolerates and strips
// on the next read.
func (b *LogBlock) HeadLine() string {
	if b.Anchor {
		return b.Head
	}
	head := b.Head
	if head == "" {
		head = b.synthHead()
	}
	if !b.AllDay && b.Until != nil {
		return head + " " + FormatDuration(b.Duration(), false)
	}
	return head
}

// synthHead formats a head for blocks that were created from bare-time or
// day-roll markers and therefore have no stable source text.
func (b *LogBlock) synthHead() string {
	if b.AllDay {
		return b.Begin.Format("02 January") + ":"
	}
	if b.Until != nil {
		return fmt.Sprintf("%s: %s-%s",
			b.Begin.Format("02 January"), b.Begin.Format("15:04"), b.Until.Format("15:04"))
	}
	return fmt.Sprintf("%s: %s-", b.Begin.Format("02 January"), b.Begin.Format("15:04"))
}

// RenderLog serializes log blocks back to journal lines: each head line
// followed by its body, verbatim.
func RenderLog(blocks []*LogBlock) []string {
	var out []string
	for _, b := range blocks {
		out = append(out, b.HeadLine())
		out = append(out, b.Body...)
	}
	return out
}

// RenderBody serializes action blocks back to journal lines. Event-tagged
// copies sharing one context header reproduce their source lines once.
func RenderBody(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		switch blk := b.(type) {
		case *Spacer:
			out = append(out, blk.Lines...)
		case *FreeformText:
			out = append(out, blk.Lines...)
		case *NextActions:
			if !blk.dup {
				out = append(out, blk.Lines...)
			}
		case *SomedayMaybe:
			out = append(out, blk.Lines...)
		}
	}
	return out
}

// RenderMeta serializes the metadata mapping as email-style headers in
// key order. The original key spelling is not retained; keys are written
// in canonical header form.
func RenderMeta(meta map[string]string) []string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s: %s", textproto.CanonicalMIMEHeaderKey(k), meta[k]))
	}
	return out
}

// Render serializes the whole document. Body text survives a
// parse/render cycle byte for byte; head lines and metadata are
// normalized.
func (d *Document) Render() []string {
	var out []string
	if len(d.Meta) > 0 {
		out = append(out, RenderMeta(d.Meta)...)
		out = append(out, "")
	}
	if len(d.Log) > 0 {
		out = append(out, RenderLog(d.Log)...)
		out = append(out, "")
	}
	out = append(out, RenderBody(d.Body)...)
	return out
}
