package app

import (
	"fmt"
	"io"
	"time"

	"github.com/klokku/worklog-report/internal/config"
	"github.com/klokku/worklog-report/pkg/account"
	"github.com/klokku/worklog-report/pkg/tempo"
	"github.com/klokku/worklog-report/pkg/timesheet"
	"github.com/spf13/cobra"
)

func newDayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "day <accountId> <date>",
		Short: "Show the worklogs and computed hours of one account on one day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.ParseInLocation("2006-01-02", args[1], time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", args[1], err)
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if err := cfg.Validate(false); err != nil {
				return err
			}
			directory, err := account.Load(cfg.Accounts.File)
			if err != nil {
				return err
			}

			client := tempo.NewClient(cfg.Tempo.Token,
				tempo.WithBaseURL(cfg.Tempo.BaseURL),
				tempo.WithLimit(cfg.Tempo.Limit),
			)
			worklogs, err := client.GetWorklogs(cmd.Context(), args[0], day)
			if err != nil {
				return err
			}

			printDay(cmd.OutOrStdout(), directory.Name(args[0]), day, worklogs, cfg.CategoryRules())
			return nil
		},
	}
}

func printDay(out io.Writer, name string, day time.Time, worklogs []tempo.Worklog, rules tempo.CategoryRules) {
	fmt.Fprintf(out, "%s on %s (%s)\n", name, day.Format("2006-01-02"), day.Weekday())
	if len(worklogs) == 0 {
		fmt.Fprintln(out, "No worklogs found")
	}
	for _, w := range worklogs {
		fmt.Fprintf(out, "  %-8s %6.2fh  %-8s %s\n", w.StartTime, w.Hours(), w.Category(rules), w.Description)
	}

	summary := timesheet.Classify(day, worklogs, rules)
	fmt.Fprintf(out, "Total: %.2fh  Overtime: %.2fh  VERLOF: %.2fh  VERZUIM: %.2fh\n",
		summary.TotalHours, summary.OvertimeHours, summary.LeaveHours, summary.AbsenceHours)
}
