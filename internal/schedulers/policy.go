package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler-sim/internal/core"
)

var (
	ErrUnknownPolicy  = errors.New("unknown scheduling policy")
	ErrInvalidQuantum = errors.New("round robin quantum must be positive")
)

// Policy selects one of the dispatching algorithms.
type Policy string

const (
	FirstComeFirstServe Policy = "fcfs"
	ShortestJobFirst    Policy = "sjf"
	RoundRobin          Policy = "rr"
	Priority            Policy = "priority"
)

// Policies lists every supported policy in presentation order.
var Policies = []Policy{FirstComeFirstServe, ShortestJobFirst, RoundRobin, Priority}

func (p Policy) String() string {
	return string(p)
}

// ParsePolicy maps a user supplied name onto a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first_come_first_serve":
		return FirstComeFirstServe, nil
	case "sjf", "shortest_job_first":
		return ShortestJobFirst, nil
	case "rr", "round_robin":
		return RoundRobin, nil
	case "priority":
		return Priority, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Params carries the per-policy knobs. Quantum is read by round robin only,
// Preemptive by sjf and priority only.
type Params struct {
	Quantum    int
	Preemptive bool
}

// Strategy turns a working set of processes into a timeline on cpu and
// returns the processes in completion order. Implementations must leave
// every process Finished.
type Strategy interface {
	Schedule(cpu *core.CPU, processes []*core.Process) []*core.Process
}

// NewStrategy returns the Strategy implementing policy.
func NewStrategy(policy Policy, params Params) (Strategy, error) {
	switch policy {
	case FirstComeFirstServe:
		return firstComeFirstServe{}, nil
	case ShortestJobFirst:
		return shortestJobFirst{preemptive: params.Preemptive}, nil
	case RoundRobin:
		if params.Quantum <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantum, params.Quantum)
		}
		return roundRobin{quantum: params.Quantum}, nil
	case Priority:
		return priorityScheduling{preemptive: params.Preemptive}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
}
