package timesheet

import (
	"math"
	"time"
)

// Overtime policy.
const (
	OvertimeThresholdHours = 8.5
	SecondsPerHour         = 3600
	ReportPrecision        = 2
)

// DaySummary holds the classified hours of one calendar day.
type DaySummary struct {
	Date          time.Time
	TotalHours    float64
	LeaveHours    float64
	AbsenceHours  float64
	OvertimeHours float64
}

// Table is the day-ordered summary of a reporting period.
type Table struct {
	Days []DaySummary
}

func (t Table) Len() int {
	return len(t.Days)
}

func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// Round rounds to the report precision. Per-day values and totals both go
// through it so the totals row matches the rendered cells.
func Round(hours float64) float64 {
	scale := math.Pow(10, ReportPrecision)
	return math.Round(hours*scale) / scale
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
