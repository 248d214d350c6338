package report

import "time"

// NumPeriods is the number of comparison windows every report works with.
const NumPeriods = 5

// Period is a named time window with a date-membership rule, used for
// side-by-side reporting. Day zero means the window spans the whole month.
type Period struct {
	Label string
	year  int
	month time.Month
	day   int
}

// Contains reports whether t falls inside the period, ignoring time-of-day.
func (p Period) Contains(t time.Time) bool {
	if t.Year() != p.year || t.Month() != p.month {
		return false
	}
	return p.day == 0 || t.Day() == p.day
}

// GeneratePeriods returns the five comparison windows anchored to ref, in
// fixed order: today, the current month, then the three preceding calendar
// months, most recent first. "Today" and "Current Month" deliberately
// overlap: a transaction dated today counts in both. The trailing months are
// mutually exclusive.
func GeneratePeriods(ref time.Time) []Period {
	periods := make([]Period, 0, NumPeriods)
	periods = append(periods, Period{
		Label: "Today (" + FormatDate(ref, "dd/MM/yyyy") + ")",
		year:  ref.Year(),
		month: ref.Month(),
		day:   ref.Day(),
	})
	periods = append(periods, Period{
		Label: "Current Month (" + FormatMonthYear(ref) + ")",
		year:  ref.Year(),
		month: ref.Month(),
	})
	for i := 1; i <= 3; i++ {
		m := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		periods = append(periods, Period{
			Label: FormatMonthYear(m),
			year:  m.Year(),
			month: m.Month(),
		})
	}
	return periods
}

// CurrentMonthPeriod returns a single period covering ref's calendar month.
func CurrentMonthPeriod(ref time.Time) Period {
	return Period{
		Label: "Current Month (" + FormatMonthYear(ref) + ")",
		year:  ref.Year(),
		month: ref.Month(),
	}
}

// PreviousMonthPeriod returns a single period covering the calendar month
// before ref. It backs the opening-balance query, which is not part of the
// five-period table.
func PreviousMonthPeriod(ref time.Time) Period {
	m := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return Period{
		Label: FormatMonthYear(m),
		year:  m.Year(),
		month: m.Month(),
	}
}
