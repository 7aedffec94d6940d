package event_bus

import "time"

const (
	ReportWrittenEvent  EventType = "report.written"
	AccountSkippedEvent EventType = "account.skipped"
)

type ReportWritten struct {
	AccountId   string
	AccountName string
	Path        string
	StartDate   time.Time
	EndDate     time.Time
	Days        int
}

type AccountSkipped struct {
	AccountId   string
	AccountName string
	Reason      string
}
