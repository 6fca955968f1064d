package schedulers

import (
	"cpu-scheduler-sim/internal/core"

	"github.com/markphelps/optional"
)

// lessFunc orders two ready processes; the smaller one runs first.
type lessFunc func(a, b *core.Process) bool

// selectNext returns the smallest unfinished process that has arrived by
// now, or nil if none has.
func selectNext(processes []*core.Process, now int, less lessFunc) *core.Process {
	var best *core.Process
	for _, p := range processes {
		if p.State() == core.Finished || !p.ArrivedBy(now) {
			continue
		}
		if best == nil || less(p, best) {
			best = p
		}
	}
	return best
}

// nextArrival returns the earliest arrival strictly after now.
func nextArrival(processes []*core.Process, now int) optional.Int {
	next := optional.Int{}
	for _, p := range processes {
		if p.ArrivedBy(now) {
			continue
		}
		if v, err := next.Get(); err != nil || p.Job.ArrivalTime < v {
			next = optional.NewInt(p.Job.ArrivalTime)
		}
	}
	return next
}

// dispatchByKey is the event loop shared by the comparison based policies.
// Decisions are only taken at completions and, when preemptive, at arrivals:
// nothing else can change which process is smallest.
func dispatchByKey(cpu *core.CPU, processes []*core.Process, less lessFunc, preemptive bool) []*core.Process {
	completed := make([]*core.Process, 0, len(processes))
	for len(completed) < len(processes) {
		now := cpu.Now()
		next := selectNext(processes, now, less)
		if next == nil {
			arrival, err := nextArrival(processes, now).Get()
			if err != nil {
				break
			}
			cpu.IdleUntil(arrival)
			continue
		}

		runTime := next.RemainingTime()
		if preemptive {
			if arrival, err := nextArrival(processes, now).Get(); err == nil && arrival-now < runTime {
				runTime = arrival - now
			}
		}
		if cpu.Execute(next, runTime) {
			completed = append(completed, next)
		}
	}
	return completed
}

func byArrival(a, b *core.Process) bool {
	if a.Job.ArrivalTime != b.Job.ArrivalTime {
		return a.Job.ArrivalTime < b.Job.ArrivalTime
	}
	return a.Job.ProcessId < b.Job.ProcessId
}
