package app

import (
	"os"

	"github.com/klokku/worklog-report/internal/config"
	"github.com/klokku/worklog-report/internal/event_bus"
	"github.com/klokku/worklog-report/internal/utils"
	"github.com/klokku/worklog-report/pkg/account"
	"github.com/klokku/worklog-report/pkg/delivery"
	"github.com/klokku/worklog-report/pkg/report"
	"github.com/klokku/worklog-report/pkg/runner"
	"github.com/klokku/worklog-report/pkg/tempo"
	"github.com/klokku/worklog-report/pkg/timesheet"
)

const appName = "worklog-report"

// Dependencies holds every service a run needs.
type Dependencies struct {
	Directory *account.Directory

	TempoClient      tempo.Client
	TimesheetService timesheet.Service

	XlsxRenderer    report.Renderer
	ConsoleRenderer *report.ConsoleRenderer

	EventBus  *event_bus.EventBus
	Collector *delivery.Collector
	Mailer    *delivery.Mailer
	Notifier  delivery.Notifier

	Clock  utils.Clock
	Runner *runner.Runner
}

// BuildDependencies initializes and wires all services of a run. The mailer is
// only created when the run delivers by email.
func BuildDependencies(cfg config.Application, opts Options) (*Dependencies, error) {
	deps := &Dependencies{}

	directory, err := account.Load(cfg.Accounts.File)
	if err != nil {
		return nil, err
	}
	deps.Directory = directory

	deps.TempoClient = tempo.NewClient(cfg.Tempo.Token,
		tempo.WithBaseURL(cfg.Tempo.BaseURL),
		tempo.WithLimit(cfg.Tempo.Limit),
	)
	deps.TimesheetService = timesheet.NewService(deps.TempoClient, cfg.CategoryRules())

	deps.XlsxRenderer = report.NewXlsxRenderer()
	deps.ConsoleRenderer = report.NewConsoleRenderer(os.Stdout)

	deps.EventBus = event_bus.NewEventBus()
	deps.Collector = delivery.NewCollector(deps.EventBus)

	var deliverer runner.Deliverer
	if opts.Email {
		mailer, err := delivery.NewMailer(delivery.Settings{
			Host:      cfg.Email.Host,
			Port:      cfg.Email.Port,
			Username:  cfg.Email.Sender,
			Password:  cfg.Email.Password,
			Sender:    cfg.Email.Sender,
			Recipient: cfg.Email.Recipient,
		})
		if err != nil {
			return nil, err
		}
		deps.Mailer = mailer
		deliverer = mailer
	}

	if opts.Notify {
		deps.Notifier = delivery.NewDesktopNotifier(appName)
	} else {
		deps.Notifier = delivery.NoopNotifier{}
	}

	deps.Clock = &utils.SystemClock{}
	deps.Runner = runner.NewRunner(runner.Dependencies{
		Directory:  deps.Directory,
		Timesheets: deps.TimesheetService,
		Renderer:   deps.XlsxRenderer,
		Bus:        deps.EventBus,
		Collector:  deps.Collector,
		Deliverer:  deliverer,
		Previewer:  deps.ConsoleRenderer,
		Notifier:   deps.Notifier,
		Clock:      deps.Clock,
		OutputDir:  cfg.Report.OutputDir,
		Sheet:      report.Options{TrackLeave: cfg.Report.TrackLeave},
	})

	return deps, nil
}
