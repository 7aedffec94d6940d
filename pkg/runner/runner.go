package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klokku/worklog-report/internal/event_bus"
	"github.com/klokku/worklog-report/internal/utils"
	"github.com/klokku/worklog-report/pkg/account"
	"github.com/klokku/worklog-report/pkg/delivery"
	"github.com/klokku/worklog-report/pkg/report"
	"github.com/klokku/worklog-report/pkg/timesheet"
	log "github.com/sirupsen/logrus"
)

var ErrDeliveryNotConfigured = errors.New("email delivery requested but no mailer is configured")

// Deliverer sends the run's reports. *delivery.Mailer implements it.
type Deliverer interface {
	Deliver(ctx context.Context, state delivery.State, period string, attachments []string) (delivery.State, error)
}

// Previewer prints a sheet before it is written. *report.ConsoleRenderer implements it.
type Previewer interface {
	Print(title string, sheet report.Sheet) error
}

type Request struct {
	// AccountId limits the run to one account. Empty means every known account.
	AccountId string
	Scope     ScopeRequest
	Email     bool
	Print     bool
	Notify    bool
	// Delivery is the state carried in from earlier in the process.
	Delivery delivery.State
}

type AccountReport struct {
	Account    account.Account
	Path       string
	Days       int
	FailedDays []time.Time
}

type AccountFailure struct {
	Account account.Account
	Err     error
}

type Result struct {
	RunId       string
	Scope       Scope
	Reports     []AccountReport
	Skipped     []account.Account
	Failures    []AccountFailure
	Delivery    delivery.State
	DeliveryErr error
}

func (r Result) Files() []string {
	files := make([]string, 0, len(r.Reports))
	for _, rep := range r.Reports {
		files = append(files, rep.Path)
	}
	return files
}

// Summary is a one-line description of the run outcome.
func (r Result) Summary() string {
	parts := []string{fmt.Sprintf("%d report(s) generated", len(r.Reports))}
	if len(r.Skipped) > 0 {
		parts = append(parts, fmt.Sprintf("%d account(s) without worklogs", len(r.Skipped)))
	}
	if len(r.Failures) > 0 {
		parts = append(parts, fmt.Sprintf("%d account(s) failed", len(r.Failures)))
	}
	switch {
	case r.DeliveryErr != nil:
		parts = append(parts, "email failed")
	case r.Delivery.Delivered:
		parts = append(parts, "email sent")
	}
	return strings.Join(parts, ", ")
}

type Runner struct {
	directory  *account.Directory
	timesheets timesheet.Service
	renderer   report.Renderer
	bus        *event_bus.EventBus
	collector  *delivery.Collector
	deliverer  Deliverer
	previewer  Previewer
	notifier   delivery.Notifier
	clock      utils.Clock
	outputDir  string
	sheetOpts  report.Options
}

type Dependencies struct {
	Directory  *account.Directory
	Timesheets timesheet.Service
	Renderer   report.Renderer
	Bus        *event_bus.EventBus
	Collector  *delivery.Collector
	Deliverer  Deliverer
	Previewer  Previewer
	Notifier   delivery.Notifier
	Clock      utils.Clock
	OutputDir  string
	Sheet      report.Options
}

func NewRunner(deps Dependencies) *Runner {
	r := &Runner{
		directory:  deps.Directory,
		timesheets: deps.Timesheets,
		renderer:   deps.Renderer,
		bus:        deps.Bus,
		collector:  deps.Collector,
		deliverer:  deps.Deliverer,
		previewer:  deps.Previewer,
		notifier:   deps.Notifier,
		clock:      deps.Clock,
		outputDir:  deps.OutputDir,
		sheetOpts:  deps.Sheet,
	}
	if r.bus == nil {
		r.bus = event_bus.NewEventBus()
	}
	if r.collector == nil {
		r.collector = delivery.NewCollector(r.bus)
	}
	if r.notifier == nil {
		r.notifier = delivery.NoopNotifier{}
	}
	if r.clock == nil {
		r.clock = utils.SystemClock{}
	}
	if r.outputDir == "" {
		r.outputDir = "."
	}
	return r
}

// Run generates one report per account for the requested period and, when
// asked, delivers all of them in a single email afterwards. Accounts are
// processed one after another. Only an invalid period or a cancelled context
// stop the run; per-account problems are recorded in the result.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	result := Result{RunId: uuid.NewString(), Delivery: req.Delivery}
	logger := log.WithField("run", result.RunId)

	if req.Email && r.deliverer == nil {
		return result, ErrDeliveryNotConfigured
	}

	scopeReq := req.Scope
	if req.Email {
		scopeReq.ClipToToday = true
	}
	scope, err := ResolveScope(utils.Today(r.clock), scopeReq)
	if err != nil {
		return result, err
	}
	result.Scope = scope

	accounts := r.directory.Resolve(req.AccountId)
	if len(accounts) == 0 {
		logger.Warn("No accounts to process, provide an account id or an accounts file")
	}
	logger.Infof("Generating reports for %s (%d day(s), %d account(s))", scope.Label(), scope.Days(), len(accounts))

	namer := report.NewFileNamer()
	for _, acc := range accounts {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rep, produced, err := r.processAccount(ctx, logger, acc, scope, namer, req.Print)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			logger.Errorf("Failed to generate report for %s (Account ID: %s): %v", acc.Name, acc.Id, err)
			result.Failures = append(result.Failures, AccountFailure{Account: acc, Err: err})
			continue
		}
		if !produced {
			result.Skipped = append(result.Skipped, acc)
			continue
		}
		result.Reports = append(result.Reports, rep)
	}

	if req.Email {
		state, err := r.deliverer.Deliver(ctx, result.Delivery, scope.Label(), r.collector.Attachments())
		result.Delivery = state
		if err != nil {
			logger.Errorf("Reports were generated but could not be emailed: %v", err)
			result.DeliveryErr = err
		}
	}

	logger.Infof("Done: %s", result.Summary())
	if req.Notify {
		_ = r.notifier.Notify("Worklog reports "+scope.Label(), result.Summary())
	}
	return result, nil
}

func (r *Runner) processAccount(
	ctx context.Context,
	logger *log.Entry,
	acc account.Account,
	scope Scope,
	namer *report.FileNamer,
	preview bool,
) (AccountReport, bool, error) {
	logger.Infof("Fetching work logs for %s (Account ID: %s)...", acc.Name, acc.Id)

	collection, err := r.timesheets.Collect(ctx, acc.Id, scope.Start, scope.End)
	if err != nil {
		return AccountReport{}, false, fmt.Errorf("collecting worklogs: %w", err)
	}

	if collection.Table.Len() == 0 {
		logger.Infof("No worklogs found for %s (Account ID: %s)", acc.Name, acc.Id)
		err := r.bus.Publish(event_bus.NewEvent(ctx, event_bus.AccountSkippedEvent, event_bus.AccountSkipped{
			AccountId:   acc.Id,
			AccountName: acc.Name,
			Reason:      "no worklogs fetched",
		}))
		if err != nil {
			logger.Warnf("Publishing skipped account %s: %v", acc.Id, err)
		}
		return AccountReport{}, false, nil
	}

	sheet := report.BuildSheet(collection.Table, scope.Label(), r.sheetOpts)
	if preview && r.previewer != nil {
		if err := r.previewer.Print(fmt.Sprintf("%s (%s)", acc.Name, acc.Id), sheet); err != nil {
			logger.Warnf("Printing preview for %s: %v", acc.Id, err)
		}
	}

	path := filepath.Join(r.outputDir, namer.Name(acc.Id, acc.Name, scope.Start, scope.End))
	if err := r.renderer.Render(sheet, path); err != nil {
		return AccountReport{}, false, fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Infof("Excel report generated: %s", path)

	err = r.bus.Publish(event_bus.NewEvent(ctx, event_bus.ReportWrittenEvent, event_bus.ReportWritten{
		AccountId:   acc.Id,
		AccountName: acc.Name,
		Path:        path,
		StartDate:   scope.Start,
		EndDate:     scope.End,
		Days:        collection.Table.Len(),
	}))
	if err != nil {
		logger.Warnf("Publishing report %s: %v", path, err)
	}

	return AccountReport{
		Account:    acc,
		Path:       path,
		Days:       collection.Table.Len(),
		FailedDays: collection.FailedDays,
	}, true, nil
}
