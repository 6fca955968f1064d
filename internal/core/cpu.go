package core

import (
	"log/slog"
)

// Segment is one entry of the timeline: process ProcessId held the CPU
// during [Start, End).
type Segment struct {
	ProcessId int
	Start     int
	End       int
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is the single simulated processor. It owns the clock and the timeline;
// time only moves forward, either by running a process or by idling until
// the next arrival.
type CPU struct {
	clock    int
	timeline []Segment
	metric   CpuMetric
	logger   *slog.Logger
}

func NewCPU(logger *slog.Logger) *CPU {
	if logger == nil {
		logger = slog.Default()
	}
	return &CPU{logger: logger}
}

func (c *CPU) Now() int {
	return c.clock
}

// Execute runs p for up to runTime units starting at the current clock and
// reports whether p finished.
func (c *CPU) Execute(p *Process, runTime int) bool {
	start := c.clock
	end, finished := p.execute(start, runTime)
	if end > start {
		c.timeline = append(c.timeline, Segment{ProcessId: p.Job.ProcessId, Start: start, End: end})
		c.metric.UtilizationTime += end - start
	}
	c.clock = end
	c.metric.TotalTime = c.clock
	c.logger.Debug("dispatch", "pid", p.Job.ProcessId, "start", start, "end", end, "remaining", p.RemainingTime())
	if finished {
		c.logger.Debug("process completed", "pid", p.Job.ProcessId, "finish", end)
	}
	return finished
}

// IdleUntil advances the clock to t without emitting a segment. It never
// moves the clock backwards.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.logger.Debug("cpu idle", "start", c.clock, "end", t)
	c.metric.IdleTime += t - c.clock
	c.clock = t
	c.metric.TotalTime = c.clock
}

// Timeline returns a copy of the segments emitted so far.
func (c *CPU) Timeline() []Segment {
	return append([]Segment(nil), c.timeline...)
}

func (c *CPU) Metric() CpuMetric {
	return c.metric
}
