package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"school-timetabler/internal/domain"
)

// readCSV opens filepath and reads every record, including the header
// row — callers are expected to skip it themselves.
func readCSV(filepath string) ([][]string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath, err)
	}
	return records, nil
}

// LoadAvailabilityCSV reads rows of "teacher_id,day,period" (with a
// header row) into an AvailabilitySet, the row-oriented counterpart to
// the availability block of a JSON input document.
func LoadAvailabilityCSV(filepath string) (domain.AvailabilitySet, error) {
	records, err := readCSV(filepath)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var set domain.AvailabilitySet
	for i, row := range records[1:] {
		if len(row) < 3 {
			return nil, fmt.Errorf("availability row %d: expected 3 columns, got %d", i+2, len(row))
		}
		day, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("availability row %d: bad day %q: %w", i+2, row[1], err)
		}
		period, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("availability row %d: bad period %q: %w", i+2, row[2], err)
		}
		if day < 0 || day >= domain.DaysPerWeek || period < 0 || period >= domain.PeriodsPerDay {
			return nil, fmt.Errorf("availability row %d: day/period %d/%d out of range", i+2, day, period)
		}
		set = append(set, domain.AvailabilityEntry{TeacherID: row[0], Slot: domain.NewSlot(day, period)})
	}
	return set, nil
}

// LoadRequestsCSV reads rows of "class_id,subject_id,teacher_id" (with
// a header row) into lesson requests.
func LoadRequestsCSV(filepath string) ([]domain.LessonRequest, error) {
	records, err := readCSV(filepath)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var requests []domain.LessonRequest
	for i, row := range records[1:] {
		if len(row) < 3 {
			return nil, fmt.Errorf("request row %d: expected 3 columns, got %d", i+2, len(row))
		}
		requests = append(requests, domain.LessonRequest{ClassID: row[0], SubjectID: row[1], TeacherID: row[2]})
	}
	return requests, nil
}
