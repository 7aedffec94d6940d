package runner

import (
	"fmt"
	"time"

	"github.com/klokku/worklog-report/pkg/report"
)

const dateLayout = "2006-01-02"

// ScopeRequest is the period asked for on the command line. Zero values mean
// "not given".
type ScopeRequest struct {
	Date  string
	Month int
	Year  int
	// ClipToToday ends the default current-month period today instead of at
	// month end. Explicit dates and months are never clipped.
	ClipToToday bool
}

type Scope struct {
	Start time.Time
	End   time.Time
}

func (s Scope) Label() string {
	return report.Label(s.Start, s.End)
}

func (s Scope) Days() int {
	return int(s.End.Sub(s.Start).Hours()/24) + 1
}

// ResolveScope picks the reporting period. An explicit date wins, then an
// explicit month and year (both required), then the current month.
func ResolveScope(today time.Time, req ScopeRequest) (Scope, error) {
	loc := today.Location()

	if req.Date != "" {
		day, err := time.ParseInLocation(dateLayout, req.Date, loc)
		if err != nil {
			return Scope{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", req.Date, err)
		}
		return Scope{Start: day, End: day}, nil
	}

	if req.Month != 0 && req.Year != 0 {
		if req.Month < 1 || req.Month > 12 {
			return Scope{}, fmt.Errorf("invalid month %d, expected 1-12", req.Month)
		}
		if req.Year < 1 {
			return Scope{}, fmt.Errorf("invalid year %d", req.Year)
		}
		return monthScope(req.Year, time.Month(req.Month), loc), nil
	}

	scope := monthScope(today.Year(), today.Month(), loc)
	if req.ClipToToday {
		year, month, day := today.Date()
		scope.End = time.Date(year, month, day, 0, 0, 0, 0, loc)
	}
	return scope, nil
}

func monthScope(year int, month time.Month, loc *time.Location) Scope {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Scope{Start: start, End: start.AddDate(0, 1, -1)}
}
