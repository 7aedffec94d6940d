package timesheet

import (
	"context"
	"time"

	"github.com/klokku/worklog-report/pkg/tempo"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Collect(ctx context.Context, accountId string, from time.Time, to time.Time) (Collection, error)
}

// Collection is the outcome of collecting one account's period.
type Collection struct {
	Table      Table
	FailedDays []time.Time
}

type ServiceImpl struct {
	client tempo.Client
	rules  tempo.CategoryRules
}

func NewService(client tempo.Client, rules tempo.CategoryRules) *ServiceImpl {
	return &ServiceImpl{client: client, rules: rules}
}

// Collect fetches and classifies every day in [from, to], one request at a time.
// A day whose fetch fails is logged and left out of the table.
func (s *ServiceImpl) Collect(ctx context.Context, accountId string, from time.Time, to time.Time) (Collection, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)

	var days []DaySummary
	var failed []time.Time
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return Collection{}, err
		}

		worklogs, err := s.client.GetWorklogs(ctx, accountId, date)
		if err != nil {
			log.Errorf("Failed to fetch work logs for account %s on %s: %v", accountId, dateKey(date), err)
			failed = append(failed, date)
			continue
		}

		summary := Classify(date, worklogs, s.rules)
		if summary.LeaveHours > 0 || summary.AbsenceHours > 0 {
			log.Debugf("%s on %s: VERLOF %.2f, VERZUIM %.2f", accountId, dateKey(date), summary.LeaveHours, summary.AbsenceHours)
		}
		log.Debugf("%s on %s: %d worklogs, %.2f hours, %.2f overtime",
			accountId, dateKey(date), len(worklogs), summary.TotalHours, summary.OvertimeHours)
		days = append(days, summary)
	}

	table, err := Aggregate(days)
	if err != nil {
		return Collection{}, err
	}
	return Collection{Table: table, FailedDays: failed}, nil
}
