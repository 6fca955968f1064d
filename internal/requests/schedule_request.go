package requests

import (
	"errors"
	"fmt"
)

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
	// Quantum is only read by round robin. Zero means "use the configured default".
	Quantum int `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	// Preemptive is only read by sjf and priority. nil means "use the configured default".
	Preemptive *bool `json:"preemptive,omitempty" yaml:"preemptive,omitempty"`
}

// FieldError describes an invalid field of one job.
type FieldError struct {
	Index   int
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("jobs[%d].%s: %s", e.Index, e.Field, e.Message)
}

// Validate checks the descriptors the engine assumes are well formed.
// All problems are reported together.
func (r ScheduleRequests) Validate() error {
	var errs []error
	seen := make(map[int]int, len(r.Jobs))
	for i, job := range r.Jobs {
		if job.ProcessId < 0 {
			errs = append(errs, &FieldError{Index: i, Field: "process_id", Message: "must not be negative"})
		}
		if first, ok := seen[job.ProcessId]; ok {
			errs = append(errs, &FieldError{Index: i, Field: "process_id", Message: fmt.Sprintf("duplicates jobs[%d]", first)})
		} else {
			seen[job.ProcessId] = i
		}
		if job.ArrivalTime < 0 {
			errs = append(errs, &FieldError{Index: i, Field: "arrival_time", Message: "must not be negative"})
		}
		if job.BurstTime <= 0 {
			errs = append(errs, &FieldError{Index: i, Field: "burst_time", Message: "must be positive"})
		}
	}
	if r.Quantum < 0 {
		errs = append(errs, errors.New("quantum: must not be negative"))
	}
	return errors.Join(errs...)
}
