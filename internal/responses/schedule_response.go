package responses

import "cpu-scheduler-sim/internal/core"

type TimelineSegment struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

type ProcessResponse struct {
	ProcessId        int             `json:"process_id"`
	ArrivalTime      int             `json:"arrival_time"`
	BurstTime        int             `json:"burst_time"`
	Priority         int             `json:"priority"`
	StartTime        int             `json:"start_time"`
	FinishTime       int             `json:"finish_time"`
	ResponseTime     int             `json:"response_time"`
	TurnAroundTime   int             `json:"turn_around_time"`
	WaitingTime      int             `json:"waiting_time"`
	ExecutionHistory []core.Interval `json:"execution_history"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Timeline              []TimelineSegment `json:"timeline"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}
