package apidto

import "school-timetabler/internal/domain"

// ToInput converts a validated InputDocument into the solver's domain
// model, mirroring internal/loader's JSON-to-domain.Input conversion.
func (doc InputDocument) ToInput() domain.Input {
	in := domain.Input{ClassToRoom: doc.ClassToRoom}

	for _, t := range doc.Teachers {
		in.Teachers = append(in.Teachers, domain.Teacher{ID: t.ID, Name: t.Name})
	}

	for _, s := range doc.Subjects {
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

	for _, c := range doc.Classes {
		in.Classes = append(in.Classes, domain.Class{ID: c.ID, Name: c.Name, Turno: parseTurno(c.Turno)})
	}

	for _, r := range doc.Rooms {
		in.Rooms = append(in.Rooms, domain.Room{ID: r.ID, Name: r.Name, Shared: r.Shared})
	}

	for _, a := range doc.Availability {
		in.Availability = append(in.Availability, domain.AvailabilityEntry{
			TeacherID: a.TeacherID,
			Slot:      domain.NewSlot(a.Day, a.Period),
		})
	}

	for _, r := range doc.Requests {
		in.Requests = append(in.Requests, domain.LessonRequest{
			ClassID:   r.ClassID,
			SubjectID: r.SubjectID,
			TeacherID: r.TeacherID,
		})
	}

	return in
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
