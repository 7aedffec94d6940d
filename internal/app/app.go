package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/klokku/worklog-report/internal/config"
	"github.com/klokku/worklog-report/internal/lock"
	"github.com/klokku/worklog-report/pkg/runner"
	log "github.com/sirupsen/logrus"
)

const envFile = ".env"

// Options are the command line settings of one invocation.
type Options struct {
	ConfigPath string
	AccountId  string
	Date       string
	Month      int
	Year       int
	Email      bool
	Print      bool
	Notify     bool
	OutputDir  string
}

func (o Options) request() runner.Request {
	return runner.Request{
		AccountId: o.AccountId,
		Scope: runner.ScopeRequest{
			Date:  o.Date,
			Month: o.Month,
			Year:  o.Year,
		},
		Email:  o.Email,
		Print:  o.Print,
		Notify: o.Notify,
	}
}

// Application runs the report pipeline for one invocation.
type Application struct {
	loadConfig func(path string) (config.Application, error)
	acquire    func(path string) (*lock.Lock, bool, error)
	build      func(cfg config.Application, opts Options) (*Dependencies, error)
}

func NewApplication() *Application {
	return &Application{
		loadConfig: config.Load,
		acquire:    lock.TryAcquire,
		build:      BuildDependencies,
	}
}

// loadEnvFile reads .env into the process environment. A missing file is fine.
func loadEnvFile() error {
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("No %s file found", envFile)
			return nil
		}
		return fmt.Errorf("loading %s: %w", envFile, err)
	}
	log.Debugf("Loaded environment from %s", envFile)
	return nil
}

// Run validates the configuration, takes the single-instance lock and generates
// the reports. Another active run is not an error: this invocation just does
// nothing.
func (a *Application) Run(ctx context.Context, opts Options) (runner.Result, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return runner.Result{}, fmt.Errorf("loading configuration: %w", err)
	}
	if opts.OutputDir != "" {
		cfg.Report.OutputDir = opts.OutputDir
	}
	if err := cfg.Validate(opts.Email); err != nil {
		return runner.Result{}, err
	}

	runLock, acquired, err := a.acquire(cfg.Lock.File)
	if err != nil {
		return runner.Result{}, err
	}
	if !acquired {
		log.Infof("Another worklog-report run holds %s, exiting", cfg.Lock.File)
		return runner.Result{}, nil
	}
	defer func() {
		if err := runLock.Release(); err != nil {
			log.Warnf("Failed to release lock: %v", err)
		}
	}()

	deps, err := a.build(cfg, opts)
	if err != nil {
		return runner.Result{}, err
	}

	result, err := deps.Runner.Run(ctx, opts.request())
	if err != nil {
		return result, err
	}
	if result.DeliveryErr != nil {
		return result, fmt.Errorf("reports written to %s but not emailed: %w", cfg.Report.OutputDir, result.DeliveryErr)
	}
	return result, nil
}
