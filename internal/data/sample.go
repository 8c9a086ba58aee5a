// Package data ships a small, self-contained example dataset so the
// CLI and API have something to solve without requiring an input file
// on first run.
package data

import "school-timetabler/internal/domain"

// Sample returns a hand-written weekly timetabling instance: three
// classes, five subjects, four teachers and two rooms (one of them a
// shared gym). It is deliberately small enough to solve in milliseconds.
func Sample() domain.Input {
	teachers := []domain.Teacher{
		{ID: "t.alvarez", Name: "Alvarez"},
		{ID: "t.bravo", Name: "Bravo"},
		{ID: "t.cruz", Name: "Cruz"},
		{ID: "t.duarte", Name: "Duarte"},
	}

	subjects := []domain.Subject{
		{
			ID:   "math",
			Name: "Mathematics",
			RequiredLessons: map[string]int{
				"c1a": 4, "c1b": 4, "c2a": 4,
			},
			PreferredPeriods: map[int]bool{0: true, 1: true, 2: true},
		},
		{
			ID:   "lang",
			Name: "Language Arts",
			RequiredLessons: map[string]int{
				"c1a": 3, "c1b": 3, "c2a": 3,
			},
		},
		{
			ID:   "science",
			Name: "Science",
			RequiredLessons: map[string]int{
				"c1a": 3, "c1b": 2, "c2a": 3,
			},
		},
		{
			ID:   "pe",
			Name: "Physical Education",
			RequiredLessons: map[string]int{
				"c1a": 2, "c1b": 2, "c2a": 2,
			},
		},
		{
			ID:   "art",
			Name: "Art",
			RequiredLessons: map[string]int{
				"c1a": 1, "c1b": 1, "c2a": 1,
			},
		},
	}

	classes := []domain.Class{
		{ID: "c1a", Name: "1A", Turno: domain.TurnoMorning},
		{ID: "c1b", Name: "1B", Turno: domain.TurnoMorning},
		{ID: "c2a", Name: "2A", Turno: domain.TurnoAfternoon},
	}

	rooms := []domain.Room{
		{ID: "room101", Name: "Room 101"},
		{ID: "gym", Name: "Gymnasium", Shared: true},
	}

	// c1b and c2a are both dedicated to the shared gym, so their
	// lessons may legally land in the same slot (H4 relaxation).
	classToRoom := map[string]string{
		"c1a": "room101",
		"c1b": "gym",
		"c2a": "gym",
	}

	var availability domain.AvailabilitySet
	for _, t := range teachers {
		for day := 0; day < domain.DaysPerWeek; day++ {
			for period := 0; period < domain.PeriodsPerDay; period++ {
				availability = append(availability, domain.AvailabilityEntry{
					TeacherID: t.ID,
					Slot:      domain.NewSlot(day, period),
				})
			}
		}
	}

	requests := buildRequests(subjects, map[string]string{
		"math":    "t.alvarez",
		"lang":    "t.bravo",
		"science": "t.cruz",
		"pe":      "t.duarte",
		"art":     "t.duarte",
	})

	return domain.Input{
		Teachers:     teachers,
		Subjects:     subjects,
		Classes:      classes,
		Rooms:        rooms,
		ClassToRoom:  classToRoom,
		Availability: availability,
		Requests:     requests,
	}
}

func buildRequests(subjects []domain.Subject, teacherBySubject map[string]string) []domain.LessonRequest {
	var requests []domain.LessonRequest
	for _, s := range subjects {
		teacherID := teacherBySubject[s.ID]
		for classID, count := range s.RequiredLessons {
			for i := 0; i < count; i++ {
				requests = append(requests, domain.LessonRequest{
					ClassID:   classID,
					SubjectID: s.ID,
					TeacherID: teacherID,
				})
			}
		}
	}
	return requests
}
