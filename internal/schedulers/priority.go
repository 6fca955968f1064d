package schedulers

import (
	"cpu-scheduler-sim/internal/core"
)

// priorityScheduling picks the ready process with the lowest priority value.
type priorityScheduling struct {
	preemptive bool
}

func (s priorityScheduling) Schedule(cpu *core.CPU, processes []*core.Process) []*core.Process {
	return dispatchByKey(cpu, processes, byPriority, s.preemptive)
}

func byPriority(a, b *core.Process) bool {
	if a.Job.Priority != b.Job.Priority {
		return a.Job.Priority < b.Job.Priority
	}
	return byArrival(a, b)
}
