package schedulers

import (
	"cpu-scheduler-sim/internal/core"
)

type firstComeFirstServe struct{}

// Schedule runs each process to completion in (arrival, id) order, idling
// the CPU when the next one has not arrived yet.
func (firstComeFirstServe) Schedule(cpu *core.CPU, processes []*core.Process) []*core.Process {
	return dispatchByKey(cpu, processes, byArrival, false)
}
