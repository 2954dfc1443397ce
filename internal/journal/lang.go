package journal

import (
	"strings"
	"time"
)

// grammar holds the locale-specific vocabulary and conventions used when
// parsing free-text dates. The locale is fixed per document via the lang
// metadata header.
type grammar struct {
	months   map[string]time.Month
	weekdays map[string]time.Weekday
	dayFirst bool
}

func grammarFor(lang string) *grammar {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "it":
		return italianGrammar
	default:
		return englishGrammar
	}
}

var englishGrammar = &grammar{
	dayFirst: false,
	months: monthTable(
		[]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"},
		[]string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"},
	),
	weekdays: weekdayTable(
		[]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"},
		[]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
	),
}

var italianGrammar = &grammar{
	dayFirst: true,
	months: monthTable(
		[]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		[]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
	),
	weekdays: weekdayTable(
		[]string{"lun", "mar", "mer", "gio", "ven", "sab", "dom"},
		[]string{"lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato", "domenica"},
	),
}

func monthTable(abbrevs, full []string) map[string]time.Month {
	t := make(map[string]time.Month, 24)
	for i := 0; i < 12; i++ {
		t[abbrevs[i]] = time.Month(i + 1)
		t[full[i]] = time.Month(i + 1)
	}
	return t
}

// weekdayTable takes names ordered Monday..Sunday.
func weekdayTable(abbrevs, full []string) map[string]time.Weekday {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	t := make(map[string]time.Weekday, 14)
	for i, wd := range order {
		t[abbrevs[i]] = wd
		t[full[i]] = wd
	}
	return t
}
