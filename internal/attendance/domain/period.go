package domain

import "time"

// Period is one billing cycle, inclusive on both ends.
type Period struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod maps a calendar (year, month) and a billing anchor day to
// the billing period that begins in that month. Anchor days beyond the
// month's length clamp to its last day, so a day-31 rule still yields a
// valid period in February.
func ResolvePeriod(year, month, startDay int) Period {
	if startDay < 1 {
		startDay = 1
	}

	start := time.Date(year, time.Month(month), clampDay(year, month, startDay), 0, 0, 0, 0, time.UTC)

	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	nextStart := time.Date(nextYear, time.Month(nextMonth), clampDay(nextYear, nextMonth, startDay), 0, 0, 0, 0, time.UTC)

	return Period{Start: start, End: nextStart.AddDate(0, 0, -1)}
}

// BeginsAfter reports whether the period starts after the given date.
// Attendance submitted for a period that begins after an employee's
// resignation date is rejected.
func (p Period) BeginsAfter(date time.Time) bool {
	return p.Start.After(date)
}

// EndsBefore reports whether the period closes without reaching the
// given date. Attendance for a period whose last day falls before the
// joining date predates the employee's tenure; a period whose last day
// is the joining date itself still counts.
func (p Period) EndsBefore(date time.Time) bool {
	return p.End.Before(date)
}

func clampDay(year, month, day int) int {
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
