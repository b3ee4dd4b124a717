package filter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary reports how many rows survived a filter pass.
type Summary struct {
	Filtered int
	Total    int
}

// Summarize builds a Summary from two row counts.
func Summarize(filtered, total int) Summary {
	return Summary{Filtered: filtered, Total: total}
}

// Ratio returns the retained fraction in [0, 1]. An empty source frame
// yields 0.
func (s Summary) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Filtered) / float64(s.Total)
}

// Unfiltered reports whether every row survived.
func (s Summary) Unfiltered() bool { return s.Filtered == s.Total }

// String renders the user-facing summary line with grouped thousands:
//
//	Showing all 10,000 rows
//	Filtered: 4,521 / 10,000 rows (45.2%)
func (s Summary) String() string {
	p := message.NewPrinter(language.English)
	if s.Filtered == s.Total {
		return p.Sprintf("Showing all %d rows", s.Total)
	}
	return p.Sprintf("Filtered: %d / %d rows (%.1f%%)", s.Filtered, s.Total, s.Ratio()*100)
}
