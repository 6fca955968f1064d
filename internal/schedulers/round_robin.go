package schedulers

import (
	"cpu-scheduler-sim/internal/core"
)

type ProcessQueue struct {
	queue []*core.Process
}

func NewProcessQueue() *ProcessQueue {
	return &ProcessQueue{queue: make([]*core.Process, 0)}
}

func (p *ProcessQueue) AddToEnd(process *core.Process) {
	p.queue = append(p.queue, process)
}

func (p *ProcessQueue) RemoveFromTop() (*core.Process, bool) {
	if len(p.queue) > 0 {
		item := p.queue[0]
		p.queue = p.queue[1:]
		return item, true
	}
	return nil, false
}

func (p *ProcessQueue) Len() int {
	return len(p.queue)
}

type roundRobin struct {
	quantum int
}

// Schedule grants each ready process at most one quantum per turn. Processes
// that arrive while a slice runs are queued ahead of the preempted process.
func (r roundRobin) Schedule(cpu *core.CPU, processes []*core.Process) []*core.Process {
	readyQueue := NewProcessQueue()
	queued := make([]bool, len(processes))
	completed := make([]*core.Process, 0, len(processes))

	// admit arrivals in registration order
	admit := func() {
		for i, p := range processes {
			if !queued[i] && p.ArrivedBy(cpu.Now()) {
				queued[i] = true
				readyQueue.AddToEnd(p)
			}
		}
	}

	var current *core.Process
	for {
		admit()
		if current == nil {
			next, ok := readyQueue.RemoveFromTop()
			if !ok {
				arrival, err := nextArrival(processes, cpu.Now()).Get()
				if err != nil {
					break
				}
				cpu.IdleUntil(arrival)
				continue
			}
			current = next
		}

		runTime := r.quantum
		if current.RemainingTime() < runTime {
			runTime = current.RemainingTime()
		}
		finished := cpu.Execute(current, runTime)

		admit()
		if finished {
			completed = append(completed, current)
		} else {
			// context switch
			readyQueue.AddToEnd(current)
		}
		current = nil
	}
	return completed
}
