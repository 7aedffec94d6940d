package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/klokku/worklog-report/pkg/timesheet"
	"github.com/samber/lo"
)

const (
	dateLayout  = "2006-01-02"
	totalsLabel = "Total"
)

const (
	ColumnDate     = "Date"
	ColumnTotal    = "Total Hours"
	ColumnOvertime = "Overtime"
	ColumnLeave    = "VERLOF"
	ColumnAbsence  = "VERZUIM"
)

type Options struct {
	// TrackLeave adds the VERLOF and VERZUIM columns.
	TrackLeave bool
}

type Row struct {
	Label  string
	Values []Hours
}

// Sheet is a rendered-ready report: header, one row per day and a totals row
// placed right after the last day.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
	Totals  Row
}

// BuildSheet turns a day table into a sheet named by label.
func BuildSheet(table timesheet.Table, label string, opts Options) Sheet {
	headers := []string{ColumnDate, ColumnTotal, ColumnOvertime}
	if opts.TrackLeave {
		headers = append(headers, ColumnLeave, ColumnAbsence)
	}

	rows := make([]Row, 0, table.Len())
	for _, day := range table.Days {
		values := []Hours{SomeHours(day.TotalHours), SomeHours(day.OvertimeHours)}
		if opts.TrackLeave {
			values = append(values, OptionalHours(day.LeaveHours), OptionalHours(day.AbsenceHours))
		}
		rows = append(rows, Row{Label: day.Date.Format(dateLayout), Values: values})
	}

	totals := Row{Label: totalsLabel, Values: make([]Hours, len(headers)-1)}
	for col := range totals.Values {
		sum := lo.SumBy(rows, func(row Row) float64 {
			return row.Values[col].OrZero()
		})
		totals.Values[col] = SomeHours(timesheet.Round(sum))
	}

	return Sheet{Name: label, Headers: headers, Rows: rows, Totals: totals}
}

// Cells returns every row below the header as display strings, totals last.
func (s Sheet) Cells() [][]string {
	rows := make([]Row, 0, len(s.Rows)+1)
	rows = append(rows, s.Rows...)
	rows = append(rows, s.Totals)

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, 0, len(row.Values)+1)
		line = append(line, row.Label)
		for _, v := range row.Values {
			line = append(line, v.String())
		}
		cells = append(cells, line)
	}
	return cells
}

// ColumnWidths is the widest of header and rendered values per column, plus one.
func (s Sheet) ColumnWidths() []int {
	widths := make([]int, len(s.Headers))
	for i, h := range s.Headers {
		widths[i] = len(h)
	}
	for _, line := range s.Cells() {
		for i, cell := range line {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		widths[i]++
	}
	return widths
}

// Label names a period: the date for a single day, start_end for a range.
func Label(start, end time.Time) string {
	if sameDay(start, end) {
		return start.Format(dateLayout)
	}
	return fmt.Sprintf("%s_%s", start.Format(dateLayout), end.Format(dateLayout))
}

// FileNamer hands out report file names that are unique within one run.
type FileNamer struct {
	used map[string]string // file name -> account id
}

func NewFileNamer() *FileNamer {
	return &FileNamer{used: make(map[string]string)}
}

// Name returns "{accountName}_{label}.xlsx", adding the account id when another
// account of this run already got the same name.
func (n *FileNamer) Name(accountId, accountName string, start, end time.Time) string {
	label := Label(start, end)
	name := fmt.Sprintf("%s_%s.xlsx", sanitize(accountName), label)
	if owner, taken := n.used[name]; taken && owner != accountId {
		name = fmt.Sprintf("%s_%s_%s.xlsx", sanitize(accountName), sanitize(accountId), label)
	}
	n.used[name] = accountId
	return name
}

func sanitize(name string) string {
	return strings.NewReplacer("/", "-", "\\", "-", ":", "-").Replace(strings.TrimSpace(name))
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
