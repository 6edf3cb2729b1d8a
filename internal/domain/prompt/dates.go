package prompt

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is an inclusive calendar interval. The extractor always produces
// a valid one; Start never exceeds End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

var (
	yearRe = regexp.MustCompile(`\b(20\d{2})\b`)
	// "del 01/10/2024 al 01/01/2025"; the article may appear as "de"/"del"
	// and "a"/"al".
	rangeRe  = regexp.MustCompile(`del?\s+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+al?\s+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	periodRe = regexp.MustCompile(`periodo\s+del?\s+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+al?\s+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
)

// extractDateRange resolves the calendar interval requested by the prompt.
// Strategies are tried in fixed priority order, first match wins:
//
//  1. named month, with an optional 4-digit year (current year otherwise),
//     expanded to the full calendar month
//  2. explicit "del D/M/Y al D/M/Y" range, day-first; a parse failure falls
//     through instead of failing
//  3. the same range prefixed with the word "periodo"
//  4. the current calendar month
//
// It never fails: a prompt with no recognizable date expression gets the
// current month bounds.
func extractDateRange(text string, now time.Time) DateRange {
	for _, m := range monthNames {
		if !strings.Contains(text, m.name) {
			continue
		}
		year := now.Year()
		if ym := yearRe.FindStringSubmatch(text); ym != nil {
			year, _ = strconv.Atoi(ym[1])
		}
		return monthBounds(year, m.num)
	}

	for _, re := range []*regexp.Regexp{rangeRe, periodRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		start, err := parseDayFirst(m[1])
		if err != nil {
			continue
		}
		end, err := parseDayFirst(m[2])
		if err != nil {
			continue
		}
		return DateRange{Start: start, End: end}
	}

	return monthBounds(now.Year(), int(now.Month()))
}

// monthBounds returns the first and last day of the given month.
func monthBounds(year, month int) DateRange {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return DateRange{Start: start, End: end}
}

var errBadDate = errors.New("unparseable date")

// parseDayFirst parses D/M/Y or D-M-Y with a 2- or 4-digit year. Two-digit
// years resolve to 20xx. Out-of-range components (month 13, day 32, February
// 30) are rejected rather than normalized.
func parseDayFirst(s string) (time.Time, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return time.Time{}, errBadDate
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, errBadDate
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, errBadDate
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, errBadDate
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, errBadDate
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, errBadDate
	}
	return t, nil
}
