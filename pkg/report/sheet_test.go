package report

import (
	"testing"
	"time"

	"github.com/klokku/worklog-report/pkg/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startDate = time.Date(2024, time.August, 26, 0, 0, 0, 0, time.UTC)
var endDate = time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC)

var sampleTable = timesheet.Table{Days: []timesheet.DaySummary{
	{Date: startDate, TotalHours: 9.25, OvertimeHours: 0.75},
	{Date: startDate.AddDate(0, 0, 1), TotalHours: 8, LeaveHours: 8},
	{Date: startDate.AddDate(0, 0, 2), TotalHours: 4.33, LeaveHours: 2.17, AbsenceHours: 1.5},
	{Date: endDate, TotalHours: 3, OvertimeHours: 3},
}}

func TestBuildSheet(t *testing.T) {
	t.Run("should render leave columns with blanks for zero", func(t *testing.T) {
		// when
		sheet := BuildSheet(sampleTable, Label(startDate, endDate), Options{TrackLeave: true})

		// then
		assert.Equal(t, "2024-08-26_2024-08-31", sheet.Name)
		assert.Equal(t, []string{"Date", "Total Hours", "Overtime", "VERLOF", "VERZUIM"}, sheet.Headers)
		assert.Equal(t, [][]string{
			{"2024-08-26", "9.25", "0.75", "", ""},
			{"2024-08-27", "8", "0", "8", ""},
			{"2024-08-28", "4.33", "0", "2.17", "1.5"},
			{"2024-08-31", "3", "3", "", ""},
			{"Total", "24.58", "3.75", "10.17", "1.5"},
		}, sheet.Cells())
	})

	t.Run("should render only hours and overtime without leave tracking", func(t *testing.T) {
		sheet := BuildSheet(sampleTable, "x", Options{})

		assert.Equal(t, []string{"Date", "Total Hours", "Overtime"}, sheet.Headers)
		assert.Equal(t, []string{"Total", "24.58", "3.75"}, sheet.Cells()[4])
	})

	t.Run("should keep totals equal to column sums with blanks counted as zero", func(t *testing.T) {
		sheet := BuildSheet(sampleTable, "x", Options{TrackLeave: true})

		for col := range sheet.Headers[1:] {
			sum := 0.0
			for _, row := range sheet.Rows {
				sum += row.Values[col].OrZero()
			}
			total, ok := sheet.Totals.Values[col].Get()
			require.True(t, ok)
			assert.Equal(t, timesheet.Round(sum), total, "column %s", sheet.Headers[col+1])
		}
	})

	t.Run("should produce only a totals row for an empty table", func(t *testing.T) {
		sheet := BuildSheet(timesheet.Table{}, "x", Options{TrackLeave: true})

		assert.Empty(t, sheet.Rows)
		assert.Equal(t, [][]string{{"Total", "0", "0", "0", "0"}}, sheet.Cells())
	})
}

func TestSheet_ColumnWidths(t *testing.T) {
	sheet := BuildSheet(sampleTable, "x", Options{TrackLeave: true})

	assert.Equal(t, []int{11, 12, 9, 7, 8}, sheet.ColumnWidths())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "2024-08-26", Label(startDate, startDate.Add(5*time.Hour)))
	assert.Equal(t, "2024-08-26_2024-08-31", Label(startDate, endDate))
}

func TestFileNamer_Name(t *testing.T) {
	t.Run("should name by account and period", func(t *testing.T) {
		namer := NewFileNamer()

		assert.Equal(t, "Alice_2024-08-26.xlsx", namer.Name("acc-1", "Alice", startDate, startDate))
		assert.Equal(t, "Bob_2024-08-26_2024-08-31.xlsx", namer.Name("acc-2", "Bob", startDate, endDate))
	})

	t.Run("should disambiguate accounts sharing a display name", func(t *testing.T) {
		namer := NewFileNamer()

		first := namer.Name("acc-1", "Alice", startDate, endDate)
		second := namer.Name("acc-2", "Alice", startDate, endDate)

		assert.Equal(t, "Alice_2024-08-26_2024-08-31.xlsx", first)
		assert.Equal(t, "Alice_acc-2_2024-08-26_2024-08-31.xlsx", second)
	})

	t.Run("should strip path separators", func(t *testing.T) {
		namer := NewFileNamer()

		assert.Equal(t, "R-D team_2024-08-26.xlsx", namer.Name("acc-1", "R/D team", startDate, startDate))
	})
}
