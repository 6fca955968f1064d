package schedulers

import (
	"log/slog"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
)

// Engine owns the canonical process list. Every Run works on clones, so
// runs with different policies never observe each other's state. An Engine
// is not safe for concurrent use.
type Engine struct {
	processes []*core.Process
	cpu       *core.CPU
	logger    *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger, cpu: core.NewCPU(logger)}
}

// Register appends a process. Descriptors are expected to be validated by
// the caller.
func (e *Engine) Register(job requests.Job) {
	e.processes = append(e.processes, core.NewProcess(job))
}

// Len returns the number of registered processes.
func (e *Engine) Len() int {
	return len(e.processes)
}

// Clear drops every registered process and the current run state.
func (e *Engine) Clear() {
	e.processes = nil
	e.Reset()
}

// Reset restores every registered process to its initial state and clears
// the clock and timeline.
func (e *Engine) Reset() {
	e.cpu = core.NewCPU(e.logger)
	for _, p := range e.processes {
		p.Reset()
	}
}

// Run simulates policy over the registered processes.
func (e *Engine) Run(policy Policy, params Params) (responses.ScheduleResponse, error) {
	strategy, err := NewStrategy(policy, params)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	e.Reset()

	working := make([]*core.Process, len(e.processes))
	for i, p := range e.processes {
		working[i] = p.Clone()
	}

	e.logger.Info("running scheduler", "algorithm", policy, "processes", len(working),
		"quantum", params.Quantum, "preemptive", params.Preemptive)
	completed := strategy.Schedule(e.cpu, working)

	response := generateResponse(policy, e.cpu, completed)
	e.logger.Info("scheduler finished", "algorithm", policy, "total_time", response.TotalTime,
		"average_waiting_time", response.AverageWaitingTime)
	return response, nil
}
