package timesheet

import (
	"testing"
	"time"

	"github.com/klokku/worklog-report/pkg/tempo"
	"github.com/stretchr/testify/assert"
)

var tuesday = time.Date(2024, time.August, 27, 0, 0, 0, 0, time.UTC)
var saturday = time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC)
var sunday = time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

func worklog(seconds int, accountValue string) tempo.Worklog {
	w := tempo.Worklog{TimeSpentSeconds: seconds}
	if accountValue != "" {
		w.Attributes.Values = []tempo.Attribute{{Key: "_Acount_", Value: accountValue}}
	}
	return w
}

func TestOvertime(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		date  time.Time
		want  float64
	}{
		{"weekday at threshold", 8.5, tuesday, 0},
		{"weekday just above threshold", 8.51, tuesday, 0.01},
		{"weekday well above threshold", 10.25, tuesday, 1.75},
		{"weekday below threshold", 7.99, tuesday, 0},
		{"weekday without work", 0, tuesday, 0},
		{"saturday", 2.5, saturday, 2.5},
		{"sunday", 3, sunday, 3},
		{"sunday without work", 0, sunday, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overtime(tt.total, tt.date))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("should count leave in total and leave hours", func(t *testing.T) {
		// given
		worklogs := []tempo.Worklog{worklog(3600, ""), worklog(7200, "VERLOF")}

		// when
		summary := Classify(tuesday, worklogs, tempo.DefaultCategoryRules)

		// then
		assert.Equal(t, DaySummary{
			Date:          tuesday,
			TotalHours:    3,
			LeaveHours:    2,
			AbsenceHours:  0,
			OvertimeHours: 0,
		}, summary)
	})

	t.Run("should make every weekend hour overtime", func(t *testing.T) {
		worklogs := []tempo.Worklog{worklog(3600, ""), worklog(7200, "VERLOF")}

		summary := Classify(sunday, worklogs, tempo.DefaultCategoryRules)

		assert.Equal(t, 3.0, summary.TotalHours)
		assert.Equal(t, 3.0, summary.OvertimeHours)
	})

	t.Run("should produce zeros for a day without worklogs", func(t *testing.T) {
		summary := Classify(tuesday, nil, tempo.DefaultCategoryRules)

		assert.Equal(t, DaySummary{Date: tuesday}, summary)
	})

	t.Run("should track absence separately from leave", func(t *testing.T) {
		worklogs := []tempo.Worklog{worklog(1800, "CONDUCTION"), worklog(5400, "VERLOF"), worklog(900, "CONDUCTION")}

		summary := Classify(tuesday, worklogs, tempo.DefaultCategoryRules)

		assert.Equal(t, 2.25, summary.TotalHours)
		assert.Equal(t, 1.5, summary.LeaveHours)
		assert.Equal(t, 0.75, summary.AbsenceHours)
	})

	t.Run("should compute overtime from the rounded total", func(t *testing.T) {
		// 30636 seconds = 8.51 hours
		worklogs := []tempo.Worklog{worklog(28800, ""), worklog(1836, "")}

		summary := Classify(tuesday, worklogs, tempo.DefaultCategoryRules)

		assert.Equal(t, 8.51, summary.TotalHours)
		assert.Equal(t, 0.01, summary.OvertimeHours)
	})

	t.Run("should not produce overtime at exactly the threshold", func(t *testing.T) {
		worklogs := []tempo.Worklog{worklog(30600, "")}

		summary := Classify(tuesday, worklogs, tempo.DefaultCategoryRules)

		assert.Equal(t, 8.5, summary.TotalHours)
		assert.Equal(t, 0.0, summary.OvertimeHours)
	})

	t.Run("should reproduce total seconds at report precision", func(t *testing.T) {
		for _, seconds := range []int{1, 59, 61, 1799, 3601, 12345, 29999, 86399} {
			summary := Classify(tuesday, []tempo.Worklog{worklog(seconds, "")}, tempo.DefaultCategoryRules)
			assert.Equal(t, Round(float64(seconds)/3600), summary.TotalHours, "seconds=%d", seconds)
		}
	})

	t.Run("should truncate the day to midnight", func(t *testing.T) {
		summary := Classify(tuesday.Add(15*time.Hour), nil, tempo.DefaultCategoryRules)

		assert.Equal(t, tuesday, summary.Date)
	})
}
