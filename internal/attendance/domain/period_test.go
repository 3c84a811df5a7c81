package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		startDay  int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "first of month",
			year:      2023, month: 1, startDay: 1,
			wantStart: day(2023, time.January, 1),
			wantEnd:   day(2023, time.January, 31),
		},
		{
			name:      "mid month anchor",
			year:      2023, month: 1, startDay: 15,
			wantStart: day(2023, time.January, 15),
			wantEnd:   day(2023, time.February, 14),
		},
		{
			name:      "anchor clamps to short february",
			year:      2023, month: 2, startDay: 31,
			wantStart: day(2023, time.February, 28),
			wantEnd:   day(2023, time.March, 30),
		},
		{
			name:      "anchor clamps next month boundary",
			year:      2023, month: 1, startDay: 31,
			wantStart: day(2023, time.January, 31),
			wantEnd:   day(2023, time.February, 27),
		},
		{
			name:      "leap year february",
			year:      2024, month: 2, startDay: 30,
			wantStart: day(2024, time.February, 29),
			wantEnd:   day(2024, time.March, 29),
		},
		{
			name:      "december rolls into next year",
			year:      2023, month: 12, startDay: 15,
			wantStart: day(2023, time.December, 15),
			wantEnd:   day(2024, time.January, 14),
		},
		{
			name:      "zero anchor defaults to first",
			year:      2023, month: 6, startDay: 0,
			wantStart: day(2023, time.June, 1),
			wantEnd:   day(2023, time.June, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResolvePeriod(tt.year, tt.month, tt.startDay)
			assert.Equal(t, tt.wantStart, p.Start)
			assert.Equal(t, tt.wantEnd, p.End)
		})
	}
}

func TestPeriodTenureChecks(t *testing.T) {
	doj := day(2023, time.February, 15)

	jan := ResolvePeriod(2023, 1, 1)
	assert.True(t, jan.EndsBefore(doj), "january closes before the employee joined")

	feb := ResolvePeriod(2023, 2, 1)
	assert.False(t, feb.EndsBefore(doj), "february overlaps the joining date")

	// Boundary: joining on the period's last day still counts.
	boundary := Period{Start: day(2023, time.January, 16), End: doj}
	assert.False(t, boundary.EndsBefore(doj))

	// Joining the day after the period closes does not.
	assert.True(t, boundary.EndsBefore(doj.AddDate(0, 0, 1)))

	resignation := day(2023, time.June, 10)

	june := ResolvePeriod(2023, 6, 1)
	assert.False(t, june.BeginsAfter(resignation), "resignation falls inside june")

	july := ResolvePeriod(2023, 7, 1)
	assert.True(t, july.BeginsAfter(resignation), "july starts after the resignation date")

	// Boundary: period starting exactly on the resignation date still counts.
	onDate := Period{Start: resignation, End: day(2023, time.July, 9)}
	assert.False(t, onDate.BeginsAfter(resignation))
}
