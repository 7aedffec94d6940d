package timesheet

import (
	"time"

	"github.com/klokku/worklog-report/pkg/tempo"
	"github.com/samber/lo"
)

// Classify folds the worklogs of a single day into a DaySummary. Leave and
// absence worklogs are counted in the total as well.
func Classify(day time.Time, worklogs []tempo.Worklog, rules tempo.CategoryRules) DaySummary {
	totalSeconds := lo.SumBy(worklogs, func(w tempo.Worklog) int {
		return w.TimeSpentSeconds
	})

	var leaveHours, absenceHours float64
	for _, w := range worklogs {
		switch w.Category(rules) {
		case tempo.Leave:
			leaveHours += w.Hours()
		case tempo.Absence:
			absenceHours += w.Hours()
		}
	}

	totalHours := Round(float64(totalSeconds) / SecondsPerHour)
	return DaySummary{
		Date:          truncateToDay(day),
		TotalHours:    totalHours,
		LeaveHours:    Round(leaveHours),
		AbsenceHours:  Round(absenceHours),
		OvertimeHours: Overtime(totalHours, day),
	}
}

// Overtime applies the weekday/weekend rule to an already rounded total.
// Every weekend hour is overtime; on weekdays only hours above the threshold count.
func Overtime(totalHours float64, date time.Time) float64 {
	switch {
	case IsWeekend(date):
		return totalHours
	case totalHours == 0:
		return 0
	case totalHours > OvertimeThresholdHours:
		return Round(totalHours - OvertimeThresholdHours)
	default:
		return 0
	}
}
