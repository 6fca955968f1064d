package requests

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request ScheduleRequests
		wantErr []string
	}{
		{
			name: "valid",
			request: ScheduleRequests{Jobs: []Job{
				{ProcessId: 1, ArrivalTime: 0, BurstTime: 8},
				{ProcessId: 2, ArrivalTime: 1, BurstTime: 4, Priority: -3},
			}},
		},
		{
			name:    "empty job list is valid",
			request: ScheduleRequests{},
		},
		{
			name: "non-positive burst",
			request: ScheduleRequests{Jobs: []Job{
				{ProcessId: 1, BurstTime: 0},
			}},
			wantErr: []string{"jobs[0].burst_time"},
		},
		{
			name: "negative arrival and id",
			request: ScheduleRequests{Jobs: []Job{
				{ProcessId: -1, ArrivalTime: -2, BurstTime: 3},
			}},
			wantErr: []string{"jobs[0].process_id", "jobs[0].arrival_time"},
		},
		{
			name: "duplicate id",
			request: ScheduleRequests{Jobs: []Job{
				{ProcessId: 7, BurstTime: 1},
				{ProcessId: 7, BurstTime: 2},
			}},
			wantErr: []string{"jobs[1].process_id: duplicates jobs[0]"},
		},
		{
			name:    "negative quantum",
			request: ScheduleRequests{Quantum: -1},
			wantErr: []string{"quantum"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want errors containing %v", tt.wantErr)
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() = %q, want it to contain %q", err, want)
				}
			}
		})
	}
}

func TestValidate_FieldErrorUnwrap(t *testing.T) {
	err := ScheduleRequests{Jobs: []Job{{ProcessId: 1}}}.Validate()
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldError in %v", err)
	}
	if fe.Field != "burst_time" || fe.Index != 0 {
		t.Errorf("got %+v", fe)
	}
}
