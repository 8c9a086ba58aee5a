package report

import (
	"encoding/json"
	"io"
	"time"

	"school-timetabler/internal/solver"
)

// RunLogEntry is one line of the append-only run log: a timestamped
// snapshot of a solve attempt's statistics, supplementing the
// original C++ solver's per-run summary file (original_source/).
type RunLogEntry struct {
	Timestamp   string  `json:"timestamp"`
	RunID       string  `json:"run_id"`
	Attempts    int     `json:"construct_attempts"`
	Requests    int     `json:"requests_handled"`
	InitialCost float64 `json:"initial_cost,omitempty"`
	BestCost    float64 `json:"best_cost,omitempty"`
	Aborted     bool    `json:"aborted"`
}

// WriteRunLog appends one JSON-encoded line to w, the row-oriented
// counterpart to WriteJSON's full-document export.
func WriteRunLog(w io.Writer, runID string, stats solver.Statistics, now time.Time) error {
	entry := RunLogEntry{
		Timestamp: now.Format(time.RFC3339),
		RunID:     runID,
		Attempts:  stats.ConstructAttempts,
		Requests:  stats.RequestsHandled,
	}
	if stats.SAStats != nil {
		entry.InitialCost = stats.SAStats.InitialCost
		entry.BestCost = stats.SAStats.BestCost
		entry.Aborted = stats.SAStats.Aborted
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
