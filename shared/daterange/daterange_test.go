package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/shared/daterange"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected []string
	}{
		{
			name:     "three night stay excludes checkout day",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 13),
			expected: []string{"2025-03-10", "2025-03-11", "2025-03-12"},
		},
		{
			name:     "single night",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 11),
			expected: []string{"2025-03-10"},
		},
		{
			name:     "same day stay has no nights",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 10),
			expected: []string{},
		},
		{
			name:     "inverted range has no nights",
			checkIn:  date(2025, time.March, 13),
			checkOut: date(2025, time.March, 10),
			expected: []string{},
		},
		{
			name:     "crosses month boundary",
			checkIn:  date(2025, time.January, 30),
			checkOut: date(2025, time.February, 2),
			expected: []string{"2025-01-30", "2025-01-31", "2025-02-01"},
		},
		{
			name:     "crosses leap day",
			checkIn:  date(2024, time.February, 28),
			checkOut: date(2024, time.March, 1),
			expected: []string{"2024-02-28", "2024-02-29"},
		},
		{
			name:     "intra day times are truncated",
			checkIn:  time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC),
			expected: []string{"2025-03-10", "2025-03-11"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, daterange.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNightsCount(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "three nights",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 13),
			expected: 3,
		},
		{
			name:     "zero nights",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 10),
			expected: 0,
		},
		{
			name:     "inverted range clamps to zero",
			checkIn:  date(2025, time.March, 13),
			checkOut: date(2025, time.March, 10),
			expected: 0,
		},
		{
			name:     "full year",
			checkIn:  date(2025, time.January, 1),
			checkOut: date(2026, time.January, 1),
			expected: 365,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, daterange.NightsCount(tt.checkIn, tt.checkOut))
		})
	}
}

func TestAddDays(t *testing.T) {
	base := time.Date(2025, time.March, 10, 17, 45, 0, 0, time.UTC)

	assert.Equal(t, date(2025, time.March, 11), daterange.AddDays(base, 1))
	assert.Equal(t, date(2025, time.March, 9), daterange.AddDays(base, -1))
	assert.Equal(t, date(2025, time.March, 10), daterange.AddDays(base, 0))
}

func TestParseDateOnly(t *testing.T) {
	parsed, err := daterange.ParseDateOnly("2025-03-10", time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 10), parsed)

	_, err = daterange.ParseDateOnly("10/03/2025", time.UTC)
	assert.Error(t, err)

	_, err = daterange.ParseDateOnly("", time.UTC)
	assert.Error(t, err)
}

func TestFormatDateOnly(t *testing.T) {
	assert.Equal(t, "2025-03-10", daterange.FormatDateOnly(time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)))
}
