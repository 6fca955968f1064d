package schedulers

import (
	"cpu-scheduler-sim/internal/core"
)

// shortestJobFirst picks the ready process with the least remaining time.
// In preemptive mode (SRTF) the decision is revisited at every arrival.
type shortestJobFirst struct {
	preemptive bool
}

func (s shortestJobFirst) Schedule(cpu *core.CPU, processes []*core.Process) []*core.Process {
	return dispatchByKey(cpu, processes, byRemainingTime, s.preemptive)
}

func byRemainingTime(a, b *core.Process) bool {
	if a.RemainingTime() != b.RemainingTime() {
		return a.RemainingTime() < b.RemainingTime()
	}
	return byArrival(a, b)
}
