package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, logger), os.Stderr, logger)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-quit
				logger.Info("shutting down")
				if err := app.Shutdown(); err != nil {
					logger.Error("shutdown", "error", err)
				}
			}()

			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("listening", "addr", addr, "quantum", cfg.RoundRobinTimeQuantum, "preemptive", cfg.Preemptive)
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")

	return cmd
}
