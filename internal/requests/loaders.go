package requests

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"procsim/internal/core"
)

// LoadCSV reads pid,arrival,burst rows. A leading header row naming
// the pid column is skipped.
func LoadCSV(r io.Reader) ([]Job, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading csv: %v", core.ErrInvalidInput, err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "pid") {
			continue
		}
		job, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: csv row %d: %v", core.ErrInvalidInput, i+1, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// LoadJSON reads a JSON array of {pid, arrival, burst} objects.
func LoadJSON(r io.Reader) ([]Job, error) {
	var jobs []Job
	if err := json.NewDecoder(r).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("%w: reading json: %v", core.ErrInvalidInput, err)
	}
	return jobs, nil
}

// ParseInline reads one "pid,arrival,burst" line per process, the
// format used for hand-typed submissions. Blank lines are skipped.
func ParseInline(text string) ([]Job, error) {
	var jobs []Job
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		job, err := parseRow(strings.Split(line, ","))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", core.ErrInvalidInput, n+1, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func parseRow(fields []string) (Job, error) {
	if len(fields) != 3 {
		return Job{}, fmt.Errorf("expected pid,arrival,burst, got %d fields", len(fields))
	}
	arrival, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Job{}, fmt.Errorf("arrival time %q is not an integer", strings.TrimSpace(fields[1]))
	}
	burst, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Job{}, fmt.Errorf("burst time %q is not an integer", strings.TrimSpace(fields[2]))
	}
	return Job{Pid: strings.TrimSpace(fields[0]), Arrival: arrival, Burst: burst}, nil
}
