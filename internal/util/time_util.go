package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DateKey collapses a timestamp to its UTC calendar day. Price series from
// different venues stamp bars at different intraday times, so alignment is
// done on these keys.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
