package util

import (
	"cpu-scheduler-sim/internal/responses"

	"gonum.org/v1/gonum/stat"
)

// CalculateAverage returns the mean waiting, response and turnaround time of
// the given processes, or zeros when there are none.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return 0, 0, 0
	}

	waitingTimes := make([]float64, len(processDetails))
	responseTimes := make([]float64, len(processDetails))
	turnAroundTimes := make([]float64, len(processDetails))
	for i, process := range processDetails {
		waitingTimes[i] = float64(process.WaitingTime)
		responseTimes[i] = float64(process.ResponseTime)
		turnAroundTimes[i] = float64(process.TurnAroundTime)
	}

	averageWaitingTime = stat.Mean(waitingTimes, nil)
	averageResponseTime = stat.Mean(responseTimes, nil)
	averageTurnAroundTime = stat.Mean(turnAroundTimes, nil)
	return
}
