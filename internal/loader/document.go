package loader

import (
	"fmt"

	"school-timetabler/internal/domain"
)

// document is the top-level shape of an input JSON file: the full
// dataset needed to run the solver, flattened into the same shape as
// domain.Input so conversion is mostly a field-for-field copy.
type document struct {
	Teachers []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"teachers"`

	Subjects []struct {
		ID               string         `json:"id"`
		Name             string         `json:"name"`
		RequiredLessons  map[string]int `json:"required_lessons"`
		PreferredPeriods []int          `json:"preferred_periods"`
	} `json:"subjects"`

	Classes []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Turno string `json:"turno"`
	} `json:"classes"`

	Rooms []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Shared bool   `json:"shared"`
	} `json:"rooms"`

	ClassToRoom map[string]string `json:"class_to_room"`

	Availability []struct {
		TeacherID string `json:"teacher_id"`
		Day       int    `json:"day"`
		Period    int    `json:"period"`
	} `json:"availability"`

	Requests []struct {
		ClassID   string `json:"class_id"`
		SubjectID string `json:"subject_id"`
		TeacherID string `json:"teacher_id"`
	} `json:"requests"`
}

func (d document) toInput() (domain.Input, error) {
	in := domain.Input{
		ClassToRoom: d.ClassToRoom,
	}

	for _, t := range d.Teachers {
		in.Teachers = append(in.Teachers, domain.Teacher{ID: t.ID, Name: t.Name})
	}

	for _, s := range d.Subjects {
		subject := domain.Subject{
			ID:              s.ID,
			Name:            s.Name,
			RequiredLessons: s.RequiredLessons,
		}
		if len(s.PreferredPeriods) > 0 {
			subject.PreferredPeriods = make(map[int]bool, len(s.PreferredPeriods))
			for _, p := range s.PreferredPeriods {
				subject.PreferredPeriods[p] = true
			}
		}
		in.Subjects = append(in.Subjects, subject)
	}

	for _, c := range d.Classes {
		in.Classes = append(in.Classes, domain.Class{
			ID:    c.ID,
			Name:  c.Name,
			Turno: parseTurno(c.Turno),
		})
	}

	for _, r := range d.Rooms {
		in.Rooms = append(in.Rooms, domain.Room{ID: r.ID, Name: r.Name, Shared: r.Shared})
	}

	for i, a := range d.Availability {
		if a.Day < 0 || a.Day >= domain.DaysPerWeek || a.Period < 0 || a.Period >= domain.PeriodsPerDay {
			return domain.Input{}, fmt.Errorf("availability entry %d: day/period %d/%d out of range", i, a.Day, a.Period)
		}
		in.Availability = append(in.Availability, domain.AvailabilityEntry{
			TeacherID: a.TeacherID,
			Slot:      domain.NewSlot(a.Day, a.Period),
		})
	}

	for _, r := range d.Requests {
		in.Requests = append(in.Requests, domain.LessonRequest{
			ClassID:   r.ClassID,
			SubjectID: r.SubjectID,
			TeacherID: r.TeacherID,
		})
	}

	return in, nil
}

func parseTurno(s string) domain.Turno {
	switch s {
	case "morning":
		return domain.TurnoMorning
	case "afternoon":
		return domain.TurnoAfternoon
	case "evening":
		return domain.TurnoEvening
	default:
		return domain.TurnoNone
	}
}
