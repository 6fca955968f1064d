package schedulers

import (
	"sort"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/util"
)

// generateResponse packages a finished run. Details are ordered by process
// id whatever the completion order was.
func generateResponse(policy Policy, cpu *core.CPU, completed []*core.Process) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, 0, len(completed))
	for _, process := range completed {
		processDetails = append(processDetails, generateProcessDetails(process))
	}
	sort.Slice(processDetails, func(i, j int) bool {
		return processDetails[i].ProcessId < processDetails[j].ProcessId
	})

	timeline := make([]responses.TimelineSegment, 0)
	for _, s := range cpu.Timeline() {
		timeline = append(timeline, responses.TimelineSegment{ProcessId: s.ProcessId, Start: s.Start, End: s.End})
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	metric := cpu.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(completed)) / float64(metric.TotalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             policy.String(),
		Timeline:              timeline,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               processDetails,
	}
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:        process.Job.ProcessId,
		ArrivalTime:      process.Job.ArrivalTime,
		BurstTime:        process.Job.BurstTime,
		Priority:         process.Job.Priority,
		StartTime:        process.StartTime(),
		FinishTime:       process.FinishTime(),
		ResponseTime:     process.ResponseTime(),
		TurnAroundTime:   process.TurnaroundTime(),
		WaitingTime:      process.WaitingTime(),
		ExecutionHistory: process.History(),
	}
}
