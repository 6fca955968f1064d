package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler-sim/internal/requests"
)

// loadRequest reads a process file. YAML files hold a ScheduleRequests
// document; anything else is read as CSV rows of id,burst,arrival[,priority]
// with an optional header row.
func loadRequest(path string) (requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(f)
	default:
		jobs, err := loadProcesses(f)
		return requests.ScheduleRequests{Jobs: jobs}, err
	}
}

func loadYAML(r io.Reader) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&request); err != nil && err != io.EOF {
		return request, fmt.Errorf("parse yaml: %w", err)
	}
	return request, nil
}

func loadProcesses(r io.Reader) ([]requests.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		if _, err := strconv.Atoi(rows[0][0]); err != nil {
			rows = rows[1:] // header
		}
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("csv row %d: want 3 or 4 fields, got %d", i+1, len(row))
		}
		values := make([]int, 4)
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("csv row %d field %d: %w", i+1, j+1, err)
			}
			values[j] = v
		}
		jobs = append(jobs, requests.Job{
			ProcessId:   values[0],
			BurstTime:   values[1],
			ArrivalTime: values[2],
			Priority:    values[3],
		})
	}
	return jobs, nil
}
