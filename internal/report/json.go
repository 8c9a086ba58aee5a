package report

import (
	"encoding/json"
	"io"
	"time"

	"school-timetabler/internal/domain"
	"school-timetabler/internal/solver"
)

// Document is the JSON export shape: a generation timestamp and
// label, the day names and period time ranges in order, the flattened
// lesson rows, and the run's statistics — the same "summary + flat
// activity list" split the teacher's json_exporter.go uses,
// generalized from a semester grid to the weekly one. This shape must
// remain bit-stable: fields are additive-only.
type Document struct {
	GeneratedAt  time.Time     `json:"generated_at"`
	GeneratedBy  string        `json:"generated_by"`
	Days         []string      `json:"days"`
	PeriodRanges []PeriodRange `json:"period_ranges"`

	Lessons    []LessonRecord   `json:"lessons"`
	Statistics *StatisticsBlock `json:"statistics,omitempty"`
}

type LessonRecord struct {
	Day     string `json:"day"`
	Period  int    `json:"period"`
	Class   string `json:"class"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
}

type StatisticsBlock struct {
	ConstructAttempts int                `json:"construct_attempts"`
	RequestsHandled   int                `json:"requests_handled"`
	InitialCost       float64            `json:"initial_cost,omitempty"`
	FinalCost         float64            `json:"final_cost,omitempty"`
	BestCost          float64            `json:"best_cost,omitempty"`
	Accepted          int                `json:"accepted,omitempty"`
	Rejected          int                `json:"rejected,omitempty"`
	Reheats           int                `json:"reheats,omitempty"`
	Decomposition     map[string]float64 `json:"decomposition,omitempty"`
}

// BuildDocument assembles a Document from a schedule and its
// originating Input/Statistics, ready to marshal. now is taken as a
// parameter rather than read via time.Now() so the document stays
// reproducible in tests, the same convention WriteRunLog uses.
func BuildDocument(schedule domain.Schedule, in domain.Input, stats solver.Statistics, now time.Time) Document {
	doc := Document{
		GeneratedAt:  now,
		GeneratedBy:  "school-timetabler",
		Days:         dayNames[:],
		PeriodRanges: PeriodRanges(),
		Statistics: &StatisticsBlock{
			ConstructAttempts: stats.ConstructAttempts,
			RequestsHandled:   stats.RequestsHandled,
		},
	}

	for _, row := range Sorted(schedule, in) {
		doc.Lessons = append(doc.Lessons, LessonRecord{
			Day: row.Day, Period: row.Period, Class: row.Class,
			Subject: row.Subject, Teacher: row.Teacher, Room: row.Room,
		})
	}

	if stats.SAStats != nil {
		doc.Statistics.InitialCost = stats.SAStats.InitialCost
		doc.Statistics.FinalCost = stats.SAStats.FinalCost
		doc.Statistics.BestCost = stats.SAStats.BestCost
		doc.Statistics.Accepted = stats.SAStats.Accepted
		doc.Statistics.Rejected = stats.SAStats.Rejected
		doc.Statistics.Reheats = stats.SAStats.Reheats
		doc.Statistics.Decomposition = stats.SAStats.BestDecomposition
	}

	return doc
}

// WriteJSON marshals the document with indentation, matching the
// teacher's json_exporter.go's MarshalIndent convention.
func WriteJSON(w io.Writer, schedule domain.Schedule, in domain.Input, stats solver.Statistics, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDocument(schedule, in, stats, now))
}

// ReadDocument parses a previously written Document, letting
// cmd/timetablectl's report subcommand re-render a solve result into
// another format without re-solving.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Rows converts a Document's flat lesson list back into display Rows.
func (doc Document) Rows() []Row {
	rows := make([]Row, 0, len(doc.Lessons))
	for _, lesson := range doc.Lessons {
		rows = append(rows, Row{
			Day: lesson.Day, Period: lesson.Period, Class: lesson.Class,
			Subject: lesson.Subject, Teacher: lesson.Teacher, Room: lesson.Room,
		})
	}
	return rows
}
