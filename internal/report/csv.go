package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"school-timetabler/internal/domain"
)

// WriteCSV emits "Class,Subject,Teacher,Room,Day,Period" rows per
// spec.md §6's documented CSV shape.
func WriteCSV(w io.Writer, schedule domain.Schedule, in domain.Input) error {
	return WriteCSVRows(w, Sorted(schedule, in))
}

// WriteCSVRows emits already-flattened rows; see WriteConsoleRows.
func WriteCSVRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Class", "Subject", "Teacher", "Room", "Day", "Period"}); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{row.Class, row.Subject, row.Teacher, row.Room, row.Day, strconv.Itoa(row.Period)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
