package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/internal/schedulers"
)

func newSimulateCmd() *cobra.Command {
	var (
		policyName string
		quantum    int
		preemptive bool
	)

	cmd := &cobra.Command{
		Use:   "simulate <process-file>",
		Short: "Run one or all policies over a CSV or YAML process file",
		Long: `Reads processes from a CSV file (id,burst,arrival[,priority]) or a YAML
file with a "jobs" list, runs the selected policy and prints a gantt chart
and a results table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := loadRequest(args[0])
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			if err := request.Validate(); err != nil {
				return fmt.Errorf("invalid processes in %s: %w", args[0], err)
			}

			policies := schedulers.Policies
			if !strings.EqualFold(policyName, "all") {
				policy, err := schedulers.ParsePolicy(policyName)
				if err != nil {
					return err
				}
				policies = []schedulers.Policy{policy}
			}

			params := schedulers.Params{Quantum: cfg.RoundRobinTimeQuantum, Preemptive: cfg.Preemptive}
			if request.Quantum > 0 {
				params.Quantum = request.Quantum
			}
			if request.Preemptive != nil {
				params.Preemptive = *request.Preemptive
			}
			if cmd.Flags().Changed("quantum") {
				params.Quantum = quantum
			}
			if cmd.Flags().Changed("preemptive") {
				params.Preemptive = preemptive
			}

			engine := schedulers.NewEngine(logger)
			for _, job := range request.Jobs {
				engine.Register(job)
			}

			w := cmd.OutOrStdout()
			for _, policy := range policies {
				response, err := engine.Run(policy, params)
				if err != nil {
					return err
				}
				outputTitle(w, title(policy, params))
				outputGantt(w, response.Timeline)
				outputSchedule(w, response)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&policyName, "policy", "p", "all", "Policy: fcfs, sjf, rr, priority or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin quantum (default from config)")
	cmd.Flags().BoolVar(&preemptive, "preemptive", false, "Preemptive SJF and priority (default from config)")

	return cmd
}

func title(policy schedulers.Policy, params schedulers.Params) string {
	switch policy {
	case schedulers.FirstComeFirstServe:
		return "First-come, first-serve"
	case schedulers.ShortestJobFirst:
		if params.Preemptive {
			return "Shortest-remaining-time-first"
		}
		return "Shortest-job-first"
	case schedulers.RoundRobin:
		return fmt.Sprintf("Round-robin (quantum %d)", params.Quantum)
	case schedulers.Priority:
		if params.Preemptive {
			return "Priority (preemptive)"
		}
		return "Priority"
	}
	return policy.String()
}
