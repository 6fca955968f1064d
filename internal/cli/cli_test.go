package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := writeFile(t, "config.yaml", "scheduler:\n  round_robin:\n    time_quantum: 2\nlog:\n  level: error\n")
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

const classicCSV = `ProcessID,Burst,Arrival,Priority
1,8,0,2
2,4,1,3
3,9,2,1
4,5,3,4
`

func TestLoadProcesses(t *testing.T) {
	jobs, err := loadProcesses(strings.NewReader(classicCSV))
	if err != nil {
		t.Fatalf("loadProcesses: %v", err)
	}
	if len(jobs) != 4 {
		t.Fatalf("got %d jobs", len(jobs))
	}
	if j := jobs[1]; j.ProcessId != 2 || j.BurstTime != 4 || j.ArrivalTime != 1 || j.Priority != 3 {
		t.Errorf("jobs[1] = %+v", j)
	}

	jobs, err = loadProcesses(strings.NewReader("7,3,0\n"))
	if err != nil || len(jobs) != 1 || jobs[0].Priority != 0 {
		t.Errorf("headerless three column row: %+v, %v", jobs, err)
	}

	if _, err := loadProcesses(strings.NewReader("1,x,0\n")); err == nil {
		t.Error("expected error for non-numeric field")
	}
	if _, err := loadProcesses(strings.NewReader("1,2\n")); err == nil {
		t.Error("expected error for short row")
	}
}

func TestLoadRequest_YAML(t *testing.T) {
	path := writeFile(t, "jobs.yaml", `
quantum: 3
preemptive: true
jobs:
  - process_id: 1
    arrival_time: 0
    burst_time: 8
  - process_id: 2
    arrival_time: 1
    burst_time: 4
    priority: 1
`)
	request, err := loadRequest(path)
	if err != nil {
		t.Fatalf("loadRequest: %v", err)
	}
	if request.Quantum != 3 || request.Preemptive == nil || !*request.Preemptive {
		t.Errorf("params not decoded: %+v", request)
	}
	if len(request.Jobs) != 2 || request.Jobs[1].Priority != 1 || request.Jobs[1].BurstTime != 4 {
		t.Errorf("jobs = %+v", request.Jobs)
	}
}

func TestSimulate_FCFS(t *testing.T) {
	path := writeFile(t, "procs.csv", classicCSV)
	out, err := runCLI(t, "simulate", "--policy", "fcfs", path)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, want := range []string{"First-come, first-serve", "Gantt schedule", "P4", "8.75", "Total time 26"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Round-robin") {
		t.Errorf("only fcfs requested:\n%s", out)
	}
}

func TestSimulate_AllPolicies(t *testing.T) {
	path := writeFile(t, "procs.csv", classicCSV)
	out, err := runCLI(t, "simulate", "--preemptive", "-q", "4", path)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, want := range []string{"First-come", "Shortest-remaining-time-first", "Round-robin (quantum 4)", "Priority (preemptive)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSimulate_Errors(t *testing.T) {
	good := writeFile(t, "procs.csv", classicCSV)
	bad := writeFile(t, "bad.csv", "1,0,0\n")

	if _, err := runCLI(t, "simulate", "--policy", "lottery", good); err == nil || !strings.Contains(err.Error(), "unknown scheduling policy") {
		t.Errorf("unknown policy: err = %v", err)
	}
	if _, err := runCLI(t, "simulate", bad); err == nil || !strings.Contains(err.Error(), "burst_time") {
		t.Errorf("invalid burst: err = %v", err)
	}
	if _, err := runCLI(t, "simulate", "--policy", "rr", "-q", "0", good); err == nil {
		t.Error("zero quantum should fail")
	}
	if _, err := runCLI(t, "simulate", filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("missing file should fail")
	}
}
