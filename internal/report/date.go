package report

import (
	"fmt"
	"strings"
	"time"
)

// monthAbbrevs is a fixed English month table so formatting never depends on
// the process locale.
var monthAbbrevs = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatDate renders a calendar date using a small pattern language: dd
// (2-digit day), MM (2-digit month), yyyy (4-digit year), yy (2-digit year).
func FormatDate(t time.Time, pattern string) string {
	year := fmt.Sprintf("%04d", t.Year())
	r := strings.NewReplacer(
		"dd", fmt.Sprintf("%02d", t.Day()),
		"MM", fmt.Sprintf("%02d", int(t.Month())),
		"yyyy", year,
		"yy", year[2:],
	)
	return r.Replace(pattern)
}

// FormatMonthYear renders a date as "Jan-06" style month-year.
func FormatMonthYear(t time.Time) string {
	year := fmt.Sprintf("%04d", t.Year())
	return monthAbbrevs[t.Month()-1] + "-" + year[2:]
}
