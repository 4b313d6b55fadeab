package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "02/01/2006"

var (
	isoDatePattern = regexp.MustCompile(`(?:^|[^\d/-])(\d{4})-(\d{2})-(\d{2})\b`)
	// The day must not follow a digit or separator, so "2025-03-05" is not
	// read as 03/05.
	numericDatePattern = regexp.MustCompile(`(?:^|[^\d/-])(\d{1,2})[/-](\d{1,2})(?:[/-](\d{4}|\d{2}))?\b`)
	textualDatePattern = regexp.MustCompile(`\b(\d{1,2})\s+de\s+(\p{L}+)(?:\s+de\s+(\d{4}|\d{2}))?`)
	dayOfMonthPattern  = regexp.MustCompile(`\bdia\s+(\d{1,2})\b`)
	// dateMarker is a word introducing a date, left over once the date is cut.
	dateMarker = regexp.MustCompile(`\b(?:no dia|no|em|para|até|ate|dia)\s*$`)
)

var monthNames = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"março":     time.March,
	"marco":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

// relativeDays is scanned in order; offsets are in days from today.
var relativeDays = []struct {
	pattern *regexp.Regexp
	offset  int
}{
	{relativeWord("hoje"), 0},
	{relativeWord("amanhã"), 1},
	{relativeWord("amanha"), 1},
	{relativeWord("ontem"), -1},
	{relativeWord("anteontem"), -2},
}

// relativeWord matches w as a whole word. \b is ASCII only and would not
// close a word ending in "ã".
func relativeWord(w string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}])(` + w + `)(?:$|[^\p{L}\p{N}])`)
}

type dateParser func(text string, today time.Time) (time.Time, [2]int, bool)

// Date extracts a calendar date from text. Patterns are tried in order:
// YYYY-MM-DD, DD/MM[/YY[YY]], "D de <mês> [de YYYY]", "dia N", then
// hoje/amanhã/ontem. A pattern that matches an impossible date (31/02) is
// skipped, never clamped.
func (e *Extractor) Date(text string) (time.Time, bool) {
	d, _, ok := e.DateSpan(text)
	return d, ok
}

// DateSpan is Date plus the byte span of the match in strings.ToLower(text).
func (e *Extractor) DateSpan(text string) (time.Time, [2]int, bool) {
	lower := strings.ToLower(text)
	today := e.Today()

	for _, parse := range []dateParser{
		isoDate,
		numericDate,
		textualDate,
		dayOfMonth,
		relativeDate,
	} {
		if d, span, ok := parse(lower, today); ok {
			return d, span, true
		}
	}

	return time.Time{}, [2]int{}, false
}

// CutDate removes the date Date would find, together with the word
// introducing it ("dia 10", "em 05/04", "no dia 3"), so its digits are not
// read as an amount. rest is lower-cased. Without a date rest is the
// lower-cased text.
func (e *Extractor) CutDate(text string) (rest string, date time.Time, ok bool) {
	lower := strings.ToLower(text)

	d, span, ok := e.DateSpan(text)
	if !ok {
		return strings.TrimSpace(lower), time.Time{}, false
	}

	before := dateMarker.ReplaceAllString(lower[:span[0]], "")

	return strings.Join(strings.Fields(before+" "+lower[span[1]:]), " "), d, true
}

// spanOf returns the span from the first group to the end of the match.
func spanOf(loc []int) [2]int {
	return [2]int{loc[2], loc[1]}
}

func group(text string, loc []int, i int) string {
	if loc[2*i] < 0 {
		return ""
	}

	return text[loc[2*i]:loc[2*i+1]]
}

func isoDate(text string, _ time.Time) (time.Time, [2]int, bool) {
	for _, loc := range isoDatePattern.FindAllStringSubmatchIndex(text, -1) {
		year, _ := strconv.Atoi(group(text, loc, 1))
		month, _ := strconv.Atoi(group(text, loc, 2))
		day, _ := strconv.Atoi(group(text, loc, 3))

		if d, ok := calendarDate(year, month, day); ok {
			return d, spanOf(loc), true
		}
	}

	return time.Time{}, [2]int{}, false
}

func numericDate(text string, today time.Time) (time.Time, [2]int, bool) {
	for _, loc := range numericDatePattern.FindAllStringSubmatchIndex(text, -1) {
		day, _ := strconv.Atoi(group(text, loc, 1))
		month, _ := strconv.Atoi(group(text, loc, 2))

		year, ok := parseYear(group(text, loc, 3), today)
		if !ok {
			continue
		}

		if d, ok := calendarDate(year, month, day); ok {
			return d, spanOf(loc), true
		}
	}

	return time.Time{}, [2]int{}, false
}

func textualDate(text string, today time.Time) (time.Time, [2]int, bool) {
	for _, loc := range textualDatePattern.FindAllStringSubmatchIndex(text, -1) {
		month, known := monthNames[group(text, loc, 2)]
		if !known {
			continue
		}

		day, _ := strconv.Atoi(group(text, loc, 1))

		year, ok := parseYear(group(text, loc, 3), today)
		if !ok {
			continue
		}

		if d, ok := calendarDate(year, int(month), day); ok {
			return d, [2]int{loc[0], loc[1]}, true
		}
	}

	return time.Time{}, [2]int{}, false
}

// dayOfMonth resolves "dia N" to the next occurrence of day N, today included.
func dayOfMonth(text string, today time.Time) (time.Time, [2]int, bool) {
	loc := dayOfMonthPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return time.Time{}, [2]int{}, false
	}

	day, _ := strconv.Atoi(group(text, loc, 1))

	year, month := today.Year(), today.Month()
	if day < today.Day() {
		next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
		year, month = next.Year(), next.Month()
	}

	d, ok := calendarDate(year, int(month), day)

	return d, [2]int{loc[0], loc[1]}, ok
}

func relativeDate(text string, today time.Time) (time.Time, [2]int, bool) {
	for _, rel := range relativeDays {
		if loc := rel.pattern.FindStringSubmatchIndex(text); loc != nil {
			return today.AddDate(0, 0, rel.offset), [2]int{loc[2], loc[3]}, true
		}
	}

	return time.Time{}, [2]int{}, false
}

// parseYear normalizes a 2-digit year to 2000+YY and defaults to the current year.
func parseYear(s string, today time.Time) (int, bool) {
	if s == "" {
		return today.Year(), true
	}

	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	if len(s) == 2 {
		y += 2000
	}

	return y, true
}

// calendarDate builds a date and rejects values time.Date would normalize.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month {
		return time.Time{}, false
	}

	return d, true
}

// FormatDate renders a date as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
