package app

import (
	"github.com/klokku/worklog-report/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the "worklog-report" command and its subcommands.
func NewRootCmd(application *Application) *cobra.Command {
	opts := Options{}

	root := &cobra.Command{
		Use:   "worklog-report [accountId]",
		Short: "Generate overtime reports from Tempo worklogs",
		Long: "Fetches Tempo worklogs day by day, computes overtime, leave (VERLOF) and\n" +
			"absence (VERZUIM) hours and writes one Excel report per account.\n" +
			"Without an account id every account from the accounts file is processed.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.AccountId = args[0]
			}
			_, err := application.Run(cmd.Context(), opts)
			return err
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "Path to the YAML configuration file")

	flags := root.Flags()
	flags.StringVar(&opts.Date, "date", "", "Single date to report (YYYY-MM-DD)")
	flags.IntVar(&opts.Month, "month", 0, "Month to report (1-12), requires --year")
	flags.IntVar(&opts.Year, "year", 0, "Year to report, requires --month")
	flags.BoolVar(&opts.Email, "email", false, "Email all generated reports once the run is done")
	flags.BoolVar(&opts.Print, "print", false, "Print each report to the console before writing it")
	flags.BoolVar(&opts.Notify, "notify", false, "Show a desktop notification with the run outcome")
	flags.StringVar(&opts.OutputDir, "output", "", "Directory for the generated reports (overrides configuration)")

	root.AddCommand(newDayCmd(&opts.ConfigPath))

	return root
}
