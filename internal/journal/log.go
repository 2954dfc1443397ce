package journal

import (
	"regexp"
	"strings"
	"time"
)

// LogBlock is one time-stamped work-log entry: a head line carrying the
// start (and optional end) instant, plus the verbatim body lines that
// followed it. AllDay blocks have no time-of-day and span a whole day.
type LogBlock struct {
	Begin  time.Time
	Until  *time.Time
	AllDay bool
	// Anchor marks a stand-alone date line ("2015", "-- 20 june"): it
	// seeds the date context for the heads that follow and carries no
	// work of its own. Head keeps the verbatim line so rewriting the
	// journal preserves the context for the next parse; Body is empty.
	Anchor bool
	// Head is the matched head text, without any duration annotation.
	// Empty for blocks synthesized from bare-time or day-roll heads.
	Head string
	Body []string
}

// Duration returns the elapsed time between Begin and Until, or zero when
// the block has no end.
func (b *LogBlock) Duration() time.Duration {
	if b.Until == nil {
		return 0
	}
	return b.Until.Sub(b.Begin)
}

// Overlaps reports whether the block intersects the given interval.
// Zero-valued bounds leave that side open.
func (b *LogBlock) Overlaps(since, until time.Time) bool {
	end := b.Begin
	if b.Until != nil {
		end = *b.Until
	}
	if !since.IsZero() && end.Before(since) {
		return false
	}
	if !until.IsZero() && b.Begin.After(until) {
		return false
	}
	return true
}

var (
	// Stand-alone date line: a bare 4-digit year, or dashes followed by a
	// date phrase. Updates the rolling default and becomes an anchor.
	reLogDate = regexp.MustCompile(`^(?:(\d{4})|-+\s*(.+?))\s*$`)
	// Timed head: "<date>: H:MM[-H:MM]". Trailing text such as a duration
	// annotation from an earlier rewrite is tolerated and dropped.
	reLogHead = regexp.MustCompile(`^((?:\S| \d).*?):\s+(\d{1,2}:\d{2})(?:\s*-\s*(\d{1,2}:\d{2})?)?`)
	// Bare-time head: a new entry starting at that time on the rolling
	// default date.
	reLogTime = regexp.MustCompile(`^(\d{1,2}:\d{2})\s*-?\s*$`)
	// Day-roll head: a new all-day entry starting today.
	reLogPlus = regexp.MustCompile(`^\+\s*$`)
	// All-day head: "<date>:" with nothing after the colon. Only treated
	// as a head when the date text actually parses.
	reLogAllDay = regexp.MustCompile(`^((?:\S| \d).*?):\s*$`)
)

// looksLikeLogStart reports whether a line opens the work-log section.
func looksLikeLogStart(line string) bool {
	return reLogDate.MatchString(line) ||
		reLogHead.MatchString(line) ||
		reLogTime.MatchString(line) ||
		reLogPlus.MatchString(line)
}

// logParser segments the work-log section into LogBlocks. The section
// runs from the first log-looking line to the first blank line.
type logParser struct {
	events *EventParser
	sink   *diagSink
	lang   string

	open   bool
	begin  time.Time
	until  *time.Time
	allDay bool
	head   string
	body   []string

	blocks []*LogBlock
}

func newLogParser(lang string, sink *diagSink) *logParser {
	ep := NewEventParser(lang)
	// Log heads usually carry mid-year dates without a year of their own,
	// so the default is seeded to January 1 and a stand-alone year line
	// pins the rest of the context.
	now := time.Now()
	ep.SetDefault(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()))
	return &logParser{events: ep, sink: sink, lang: lang}
}

func (p *logParser) parse(cur *Cursor[sourceLine]) []*LogBlock {
	for {
		src, err := cur.Pop()
		if err != nil {
			break
		}
		if isBlank(src.text) {
			// The log section ends at the first blank line.
			break
		}
		p.parseLine(src)
	}
	p.flush()
	return p.blocks
}

func (p *logParser) parseLine(src sourceLine) {
	line := src.text

	if m := reLogDate.FindStringSubmatch(line); m != nil {
		p.flush()
		val := m[2]
		if val == "" {
			val = m[1]
		}
		p.events.ParseDate(val)
		p.blocks = append(p.blocks, &LogBlock{
			Begin:  p.events.Default(),
			Anchor: true,
			Head:   line,
		})
		return
	}

	if reLogPlus.MatchString(line) {
		p.flush()
		begin := midnight(time.Now())
		until := begin.AddDate(0, 0, 1)
		p.openBlock(begin, &until, true, "")
		return
	}

	if m := reLogTime.FindStringSubmatch(line); m != nil {
		p.flush()
		h, min, _, err := parseClock(m[1])
		if err != nil {
			p.sink.errorf(src.num, "%v", err)
			p.body = append(p.body, line)
			return
		}
		def := p.events.Default()
		begin := time.Date(def.Year(), def.Month(), def.Day(), h, min, 0, 0, def.Location())
		p.openBlock(begin, nil, false, "")
		return
	}

	if m := reLogHead.FindStringSubmatch(line); m != nil {
		p.flush()
		date, ok := p.events.ParseDate(m[1])
		if !ok {
			p.sink.warnf(src.num, "cannot parse log header date %q (lang=%q)", m[1], p.lang)
			date = p.events.Default()
		}
		h, min, _, err := parseClock(m[2])
		if err != nil {
			p.sink.errorf(src.num, "%v", err)
			p.body = append(p.body, line)
			return
		}
		begin := time.Date(date.Year(), date.Month(), date.Day(), h, min, 0, 0, date.Location())
		var until *time.Time
		if m[3] != "" {
			h2, min2, _, err := parseClock(m[3])
			if err != nil {
				p.sink.errorf(src.num, "%v", err)
				p.body = append(p.body, line)
				return
			}
			u := time.Date(date.Year(), date.Month(), date.Day(), h2, min2, 0, 0, date.Location())
			if u.Before(begin) {
				// Interval across midnight.
				u = u.AddDate(0, 0, 1)
			}
			until = &u
		}
		p.openBlock(begin, until, false, strings.TrimRight(m[0], " \t"))
		return
	}

	if m := reLogAllDay.FindStringSubmatch(line); m != nil {
		if date, ok := p.events.ParseDate(m[1]); ok {
			p.flush()
			begin := midnight(date)
			until := begin.AddDate(0, 0, 1)
			p.openBlock(begin, &until, true, strings.TrimRight(line, " \t"))
			return
		}
	}

	// Anything else belongs to the body of the open block.
	p.body = append(p.body, line)
}

func (p *logParser) openBlock(begin time.Time, until *time.Time, allDay bool, head string) {
	p.open = true
	p.begin = begin
	p.until = until
	p.allDay = allDay
	p.head = head
}

// flush closes the current block, if one is open. Lines demoted to body
// text before a head was seen stay buffered and attach to the next block.
func (p *logParser) flush() {
	if !p.open {
		return
	}
	p.blocks = append(p.blocks, &LogBlock{
		Begin:  p.begin,
		Until:  p.until,
		AllDay: p.allDay,
		Head:   p.head,
		Body:   p.body,
	})
	p.open = false
	p.until = nil
	p.body = nil
}
