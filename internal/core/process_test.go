package core

import (
	"bytes"
	"log/slog"
	"reflect"
	"testing"

	"cpu-scheduler-sim/internal/requests"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestProcess_StateMachine(t *testing.T) {
	p := NewProcess(requests.Job{ProcessId: 1, ArrivalTime: 2, BurstTime: 5})
	if p.State() != Unstarted || p.RemainingTime() != 5 {
		t.Fatalf("new process: state=%v remaining=%d", p.State(), p.RemainingTime())
	}

	end, finished := p.execute(4, 2)
	if end != 6 || finished {
		t.Fatalf("first slice: end=%d finished=%v", end, finished)
	}
	if p.State() != Running || p.StartTime() != 4 || p.ResponseTime() != 2 {
		t.Fatalf("after first slice: state=%v start=%d response=%d", p.State(), p.StartTime(), p.ResponseTime())
	}

	// A later slice must not move the start time.
	if _, finished = p.execute(8, 1); finished {
		t.Fatal("second slice should not finish")
	}
	if p.StartTime() != 4 {
		t.Errorf("start time moved to %d", p.StartTime())
	}

	end, finished = p.execute(10, 10)
	if end != 12 || !finished {
		t.Fatalf("last slice clamped: end=%d finished=%v", end, finished)
	}
	if p.FinishTime() != 12 || p.TurnaroundTime() != 10 || p.WaitingTime() != 5 {
		t.Errorf("finish=%d turnaround=%d waiting=%d", p.FinishTime(), p.TurnaroundTime(), p.WaitingTime())
	}

	want := []Interval{{4, 6}, {8, 9}, {10, 12}}
	if got := p.History(); !reflect.DeepEqual(got, want) {
		t.Errorf("history = %v, want %v", got, want)
	}
	total := 0
	for _, iv := range p.History() {
		total += iv.Len()
	}
	if total != p.Job.BurstTime {
		t.Errorf("history length %d != burst %d", total, p.Job.BurstTime)
	}
}

func TestProcess_ExecuteAfterFinishPanics(t *testing.T) {
	p := NewProcess(requests.Job{ProcessId: 1, BurstTime: 1})
	p.execute(0, 1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	p.execute(1, 1)
}

func TestProcess_ResetAndClone(t *testing.T) {
	p := NewProcess(requests.Job{ProcessId: 3, BurstTime: 4})
	p.execute(0, 2)

	c := p.Clone()
	c.execute(2, 2)
	if p.RemainingTime() != 2 || len(p.History()) != 1 {
		t.Fatalf("clone mutated original: remaining=%d history=%v", p.RemainingTime(), p.History())
	}

	p.Reset()
	if p.State() != Unstarted || p.RemainingTime() != 4 || p.StartTime() != 0 || len(p.History()) != 0 {
		t.Errorf("reset left state behind: %+v", p)
	}
	if p.Job.ProcessId != 3 || p.Job.BurstTime != 4 {
		t.Errorf("reset changed descriptor: %+v", p.Job)
	}
}

func TestCPU_ExecuteAndIdle(t *testing.T) {
	cpu := NewCPU(quietLogger())
	a := NewProcess(requests.Job{ProcessId: 1, BurstTime: 3})
	b := NewProcess(requests.Job{ProcessId: 2, ArrivalTime: 5, BurstTime: 2})

	if !cpu.Execute(a, 3) {
		t.Fatal("a should finish")
	}
	cpu.IdleUntil(5)
	cpu.IdleUntil(1) // never backwards
	if cpu.Now() != 5 {
		t.Fatalf("clock = %d, want 5", cpu.Now())
	}
	cpu.Execute(b, 2)

	want := []Segment{{ProcessId: 1, Start: 0, End: 3}, {ProcessId: 2, Start: 5, End: 7}}
	if got := cpu.Timeline(); !reflect.DeepEqual(got, want) {
		t.Errorf("timeline = %v, want %v", got, want)
	}
	if m := cpu.Metric(); m != (CpuMetric{TotalTime: 7, UtilizationTime: 5, IdleTime: 2}) {
		t.Errorf("metric = %+v", m)
	}
}
