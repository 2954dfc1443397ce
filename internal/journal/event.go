package journal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Event is a date, a point in time, or a date range recognized inside an
// action-context token. AllDay holds when the start has no time-of-day
// component.
type Event struct {
	Start  time.Time
	End    *time.Time
	AllDay bool
}

var (
	reEventRange  = regexp.MustCompile(`\s*--+\s*`)
	reClock       = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	reNumericDate = regexp.MustCompile(`^(\d{1,4})([/.\-])(\d{1,2})(?:([/.\-])(\d{1,4}))?$`)
	reDigits      = regexp.MustCompile(`^\d+$`)
)

// EventParser recognizes dates, times and date ranges in free text using a
// locale-selected grammar. It keeps a rolling default date: every parsed
// full date becomes the default that later partial phrases resolve
// against, so "2015" followed by "15 march" yields 2015-03-15. One parser
// instance serves one document section and is never shared.
type EventParser struct {
	grammar *grammar
	def     time.Time
}

// NewEventParser returns a parser for the given language tag ("" or an
// unrecognized tag selects the default grammar). The rolling default
// starts at today's midnight.
func NewEventParser(lang string) *EventParser {
	now := time.Now()
	return &EventParser{
		grammar: grammarFor(lang),
		def:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}
}

// SetDefault replaces the rolling default date.
func (p *EventParser) SetDefault(d time.Time) {
	p.def = d
}

// Default returns the current rolling default date.
func (p *EventParser) Default() time.Time {
	return p.def
}

// ParseDate parses a free-text date or time phrase. Components missing
// from the phrase are filled in from the rolling default; a phrase that
// does not match the grammar reports ok=false rather than an error.
func (p *EventParser) ParseDate(s string) (time.Time, bool) {
	return p.parse(s, true)
}

func (p *EventParser) parse(s string, setDefault bool) (time.Time, bool) {
	d, hasDate, ok := p.grammar.parse(s, p.def)
	if !ok {
		return time.Time{}, false
	}
	if setDefault && hasDate {
		p.def = midnight(d)
	}
	return d, true
}

// ParseEvent interprets one comma-separated context token. A token
// containing a dash run away from the start is a range; a token starting
// with a digit or the "d:" prefix is a single date or time. Anything else
// is not a date and yields nil, leaving the token a plain context name.
// The until side of a range does not move the rolling default.
func (p *EventParser) ParseEvent(token string) *Event {
	if token == "" {
		return nil
	}
	if loc := reEventRange.FindStringIndex(token); loc != nil && loc[0] > 0 {
		since, ok := p.parse(token[:loc[0]], true)
		if !ok {
			return nil
		}
		ev := &Event{Start: since}
		if until, ok := p.parse(token[loc[1]:], false); ok {
			ev.End = &until
		}
		return ev
	}
	if token[0] >= '0' && token[0] <= '9' {
		return p.toEvent(p.parse(token, true))
	}
	if strings.HasPrefix(token, "d:") {
		return p.toEvent(p.parse(token[2:], true))
	}
	return nil
}

func (p *EventParser) toEvent(d time.Time, ok bool) *Event {
	if !ok {
		return nil
	}
	return &Event{
		Start:  d,
		AllDay: d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0,
	}
}

func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// parse matches a date/time phrase against the grammar. hasDate reports
// whether the phrase carried any date component (as opposed to a bare
// time), which is what decides a rolling-default update.
func (g *grammar) parse(s string, def time.Time) (t time.Time, hasDate, ok bool) {
	fields := strings.Fields(strings.ToLower(strings.ReplaceAll(s, ",", " ")))
	if len(fields) == 0 {
		return time.Time{}, false, false
	}

	year, day := -1, -1
	month := time.Month(0)
	weekday := time.Weekday(-1)
	hour, minute, second := -1, 0, 0

	for _, tok := range fields {
		switch {
		case reClock.MatchString(tok):
			if hour >= 0 {
				return time.Time{}, false, false
			}
			h, m, sec, err := parseClock(tok)
			if err != nil {
				return time.Time{}, false, false
			}
			hour, minute, second = h, m, sec

		case reNumericDate.MatchString(tok):
			y, mo, d, numOK := g.resolveNumericDate(tok)
			if !numOK || month != 0 || day >= 0 || (y >= 0 && year >= 0) {
				return time.Time{}, false, false
			}
			if y >= 0 {
				year = y
			}
			month, day = mo, d

		case reDigits.MatchString(tok):
			v, err := strconv.Atoi(tok)
			if err != nil {
				return time.Time{}, false, false
			}
			switch {
			case len(tok) == 4:
				if year >= 0 {
					return time.Time{}, false, false
				}
				year = v
			case v >= 1 && v <= 31:
				if day >= 0 {
					return time.Time{}, false, false
				}
				day = v
			default:
				return time.Time{}, false, false
			}

		default:
			if mo, found := g.months[tok]; found {
				if month != 0 {
					return time.Time{}, false, false
				}
				month = mo
			} else if wd, found := g.weekdays[tok]; found {
				weekday = wd
			} else {
				return time.Time{}, false, false
			}
		}
	}

	hasDate = year >= 0 || month != 0 || day >= 0 || weekday >= 0
	if !hasDate && hour < 0 {
		return time.Time{}, false, false
	}

	y, mo, d := def.Year(), def.Month(), def.Day()
	if weekday >= 0 && year < 0 && month == 0 && day < 0 {
		// A bare weekday rolls forward from the default, today included.
		ahead := (int(weekday) - int(def.Weekday()) + 7) % 7
		base := def.AddDate(0, 0, ahead)
		y, mo, d = base.Year(), base.Month(), base.Day()
	}
	if year >= 0 {
		y = year
	}
	if month != 0 {
		mo = month
	}
	if day >= 0 {
		d = day
	}
	h, m, sec := 0, 0, 0
	if hour >= 0 {
		h, m, sec = hour, minute, second
	}

	t = time.Date(y, mo, d, h, m, sec, 0, def.Location())
	if t.Day() != d || t.Month() != mo {
		// time.Date normalizes overflow; a phrase like "30 feb" is a no-match.
		return time.Time{}, false, false
	}
	return t, hasDate, true
}

// resolveNumericDate interprets a separator-joined numeric date such as
// 2021-05-01, 15/3/2021 or 15.3 according to the locale's day-first flag.
// A returned year of -1 means the phrase carried no year.
func (g *grammar) resolveNumericDate(tok string) (year int, month time.Month, day int, ok bool) {
	m := reNumericDate.FindStringSubmatch(tok)
	if m == nil {
		return -1, 0, 0, false
	}
	if m[4] != "" && m[4] != m[2] {
		return -1, 0, 0, false
	}

	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[3])
	year = -1

	switch {
	case len(m[1]) == 4:
		// ISO order: year first.
		if b < 1 || b > 12 {
			return -1, 0, 0, false
		}
		day = 1
		if m[5] != "" {
			day, _ = strconv.Atoi(m[5])
		}
		return a, time.Month(b), day, day >= 1 && day <= 31
	case len(m[5]) == 4:
		year, _ = strconv.Atoi(m[5])
	case m[5] != "":
		// Two-digit years are ambiguous; refuse the match.
		return -1, 0, 0, false
	}

	d, mo := a, b
	if !g.dayFirst {
		d, mo = b, a
	}
	if mo > 12 && d <= 12 {
		d, mo = mo, d
	}
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return -1, 0, 0, false
	}
	return year, time.Month(mo), d, true
}

// parseClock validates an H:MM[:SS] literal.
func parseClock(s string) (hour, minute, second int, err error) {
	m := reClock.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("invalid time %q", s)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	if hour > 23 || minute > 59 || second > 59 {
		return 0, 0, 0, fmt.Errorf("invalid time %q", s)
	}
	return hour, minute, second, nil
}
