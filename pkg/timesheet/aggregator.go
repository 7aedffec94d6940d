package timesheet

import (
	"errors"
	"fmt"
	"slices"
)

var ErrDuplicateDay = errors.New("duplicate day in timesheet")

// Aggregate orders day summaries ascending by date. Input order does not matter;
// a date may appear only once.
func Aggregate(days []DaySummary) (Table, error) {
	seen := make(map[string]struct{}, len(days))
	sorted := make([]DaySummary, 0, len(days))
	for _, day := range days {
		key := dateKey(day.Date)
		if _, ok := seen[key]; ok {
			return Table{}, fmt.Errorf("%w: %s", ErrDuplicateDay, key)
		}
		seen[key] = struct{}{}
		sorted = append(sorted, day)
	}

	slices.SortFunc(sorted, func(a, b DaySummary) int {
		return a.Date.Compare(b.Date)
	})
	return Table{Days: sorted}, nil
}
