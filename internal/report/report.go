// Package report turns a solved domain.Schedule into the human- and
// machine-facing outputs spec.md §6 treats as external glue: a console
// pretty-printer, CSV/JSON exports, a per-class PDF timetable, and a
// JSON-lines run log. None of it feeds back into the solver.
package report

import (
	"fmt"
	"sort"
	"strings"

	"school-timetabler/internal/domain"
)

var dayNames = [domain.DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var periodTimeStrings = [domain.PeriodsPerDay]string{
	"08:00 - 08:50",
	"08:55 - 09:45",
	"10:00 - 10:50",
	"10:55 - 11:45",
	"13:00 - 13:50",
	"13:55 - 14:45",
}

// DayName returns the display name for a 0-based weekday index, or
// "?" if out of range.
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return "?"
	}
	return dayNames[day]
}

// PeriodRange is one period's wall-clock span, display-ready.
type PeriodRange struct {
	Period int    `json:"period"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// PeriodRanges returns every period's wall-clock span in order, the
// idiom a bit-stable JSON export needs alongside the day-name list.
func PeriodRanges() []PeriodRange {
	ranges := make([]PeriodRange, domain.PeriodsPerDay)
	for p, span := range periodTimeStrings {
		start, end, _ := strings.Cut(span, " - ")
		ranges[p] = PeriodRange{Period: p, Start: start, End: end}
	}
	return ranges
}

// Row is one flattened, display-ready lesson, shared by every emitter
// so they don't each re-derive display fields from a PlacedLesson.
type Row struct {
	Day     string
	Period  int
	Class   string
	Subject string
	Teacher string
	Room    string
}

// Sorted returns the schedule as display rows ordered by slot, then
// class, matching the teacher's exporter's "by course, then code"
// stable ordering habit.
func Sorted(schedule domain.Schedule, in domain.Input) []Row {
	classes := in.ClassByID()
	subjects := in.SubjectByID()
	teachers := in.TeacherByID()
	rooms := in.RoomByID()

	rows := make([]Row, 0, len(schedule))
	for _, lesson := range schedule {
		rows = append(rows, Row{
			Day:     DayName(lesson.Slot.Day),
			Period:  lesson.Slot.Period,
			Class:   displayName(classes[lesson.ClassID].Name, lesson.ClassID),
			Subject: displayName(subjects[lesson.SubjectID].Name, lesson.SubjectID),
			Teacher: displayName(teachers[lesson.TeacherID].Name, lesson.TeacherID),
			Room:    displayName(rooms[lesson.RoomID].Name, lesson.RoomID),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return dayIndex(rows[i].Day) < dayIndex(rows[j].Day)
		}
		if rows[i].Period != rows[j].Period {
			return rows[i].Period < rows[j].Period
		}
		return rows[i].Class < rows[j].Class
	})

	return rows
}

func displayName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}

func dayIndex(name string) int {
	for i, d := range dayNames {
		if d == name {
			return i
		}
	}
	return len(dayNames)
}

func (r Row) timeLabel() string {
	return fmt.Sprintf("%s P%d", r.Day, r.Period+1)
}
