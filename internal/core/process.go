package core

import (
	"fmt"

	"cpu-scheduler-sim/internal/requests"
)

// ProcessState is the lifecycle of a process inside one simulation run.
type ProcessState int

const (
	Unstarted ProcessState = iota
	Running
	Finished
)

func (s ProcessState) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("ProcessState(%d)", int(s))
}

// Interval is a half-open [Start, End) CPU slice.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (i Interval) Len() int {
	return i.End - i.Start
}

// Process is the run-time record of one job. The Job descriptor is held by
// value and never mutated; everything else is owned by the state machine:
// start and response are fixed on the Unstarted -> Running transition,
// finish, turnaround and waiting on Running -> Finished.
type Process struct {
	Job requests.Job

	state          ProcessState
	remainingTime  int
	startTime      int
	finishTime     int
	responseTime   int
	turnaroundTime int
	waitingTime    int
	history        []Interval
}

func NewProcess(job requests.Job) *Process {
	return &Process{Job: job, remainingTime: job.BurstTime}
}

// Reset puts the process back into its initial Unstarted state.
func (p *Process) Reset() {
	*p = Process{Job: p.Job, remainingTime: p.Job.BurstTime}
}

// Clone returns an independent copy; the history slice is not shared.
func (p *Process) Clone() *Process {
	c := *p
	c.history = append([]Interval(nil), p.history...)
	return &c
}

func (p *Process) String() string {
	return fmt.Sprintf("P%d", p.Job.ProcessId)
}

func (p *Process) State() ProcessState { return p.state }
func (p *Process) RemainingTime() int  { return p.remainingTime }
func (p *Process) StartTime() int      { return p.startTime }
func (p *Process) FinishTime() int     { return p.finishTime }
func (p *Process) ResponseTime() int   { return p.responseTime }
func (p *Process) TurnaroundTime() int { return p.turnaroundTime }
func (p *Process) WaitingTime() int    { return p.waitingTime }

// ArrivedBy reports whether the process is eligible to run at time now.
func (p *Process) ArrivedBy(now int) bool {
	return p.Job.ArrivalTime <= now
}

// History returns a copy of the CPU slices granted so far.
func (p *Process) History() []Interval {
	return append([]Interval(nil), p.history...)
}

// execute grants the process the slice [start, start+runTime) and reports
// whether it finished. runTime is clamped to the remaining time.
func (p *Process) execute(start, runTime int) (end int, finished bool) {
	if p.state == Finished {
		panic(fmt.Sprintf("core: %s executed after it finished", p))
	}
	if runTime > p.remainingTime {
		runTime = p.remainingTime
	}
	if p.state == Unstarted {
		p.state = Running
		p.startTime = start
		p.responseTime = start - p.Job.ArrivalTime
	}
	end = start + runTime
	p.history = append(p.history, Interval{Start: start, End: end})
	p.remainingTime -= runTime
	if p.remainingTime == 0 {
		p.state = Finished
		p.finishTime = end
		p.turnaroundTime = end - p.Job.ArrivalTime
		p.waitingTime = p.turnaroundTime - p.Job.BurstTime
	}
	return end, p.state == Finished
}
