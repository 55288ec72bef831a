// Package daterange holds the calendar-day arithmetic shared by the rates and
// availability services. Stay ranges are half-open: [check_in, check_out),
// the check-out day itself is never a night.
package daterange

import (
	"lodge/shared/constant"
	"time"
)

// StartOfDay truncates t to midnight of its calendar day, keeping the location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// AddDays adds n calendar days (n may be negative) and truncates to midnight.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t.AddDate(0, 0, n))
}

// FormatDateOnly renders t as YYYY-MM-DD.
func FormatDateOnly(t time.Time) string {
	return t.Format(constant.DateOnlyFormat)
}

// ParseDateOnly parses a YYYY-MM-DD string in the given location.
func ParseDateOnly(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constant.DateOnlyFormat, value, loc)
}

// Nights enumerates the stay nights of [checkIn, checkOut) as formatted dates
// in ascending calendar order. checkOut itself is excluded; when
// checkOut <= checkIn the result is empty. Validation of the range is the
// caller's job, this function never errors.
func Nights(checkIn, checkOut time.Time) []string {
	out := []string{}

	end := StartOfDay(checkOut)
	for d := StartOfDay(checkIn); d.Before(end); d = AddDays(d, 1) {
		out = append(out, FormatDateOnly(d))
	}

	return out
}

// NightsCount returns the number of stay nights without materializing them.
func NightsCount(checkIn, checkOut time.Time) int {
	days := int(StartOfDay(checkOut).Sub(StartOfDay(checkIn)).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}
