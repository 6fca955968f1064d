package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpu-scheduler-sim",
		Short: "Single-CPU scheduling simulator",
		Long:  "Simulates FCFS, SJF, round robin and priority dispatching over a list of processes.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadSchedulerConfig(flagConfig)
			if err != nil {
				return err
			}
			cfg = c

			level, format := cfg.LogLevel, cfg.LogFormat
			if cmd.Flags().Changed("log-level") {
				level = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				format = flagLogFormat
			}
			if flagDebug {
				level = "debug"
			}
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(level), format, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(),
		newSimulateCmd(),
	)

	return root
}
