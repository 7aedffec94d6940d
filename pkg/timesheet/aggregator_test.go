package timesheet

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daysFrom(start time.Time, count int) []DaySummary {
	days := make([]DaySummary, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, DaySummary{Date: start.AddDate(0, 0, i), TotalHours: float64(i)})
	}
	return days
}

func TestAggregate(t *testing.T) {
	ordered := daysFrom(tuesday, 6)

	tests := []struct {
		name  string
		input []DaySummary
	}{
		{"already ordered", ordered},
		{"reverse chronological", []DaySummary{ordered[5], ordered[4], ordered[3], ordered[2], ordered[1], ordered[0]}},
		{"shuffled", []DaySummary{ordered[3], ordered[0], ordered[5], ordered[1], ordered[4], ordered[2]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Aggregate(tt.input)

			require.NoError(t, err)
			if diff := cmp.Diff(ordered, table.Days); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("should not reorder the caller's slice", func(t *testing.T) {
		input := []DaySummary{ordered[2], ordered[0]}

		_, err := Aggregate(input)

		require.NoError(t, err)
		assert.Equal(t, ordered[2], input[0])
	})

	t.Run("should reject duplicate dates", func(t *testing.T) {
		_, err := Aggregate([]DaySummary{ordered[0], ordered[1], {Date: ordered[0].Date, TotalHours: 4}})

		assert.True(t, errors.Is(err, ErrDuplicateDay))
	})

	t.Run("should return empty table for no days", func(t *testing.T) {
		table, err := Aggregate(nil)

		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})
}
