// Package extract pulls amounts, dates and categories out of free chat text.
//
// All extractors are pure: the only ambient input is the clock used to resolve
// relative dates, which is injectable for tests.
package extract

import "time"

type Extractor struct {
	now func() time.Time
}

func New() *Extractor {
	return &Extractor{now: time.Now}
}

// NewWithClock returns an Extractor that resolves "hoje", "dia N" and missing
// years against now.
func NewWithClock(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

// Today returns the current date at UTC midnight.
func (e *Extractor) Today() time.Time {
	return dateOnly(e.now())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
