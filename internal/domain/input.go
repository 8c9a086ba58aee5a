package domain

// Input is the solver's complete, immutable-after-construction input
// bundle (spec.md §6 "Solver input").
type Input struct {
	Teachers     []Teacher
	Subjects     []Subject
	Classes      []Class
	Rooms        []Room
	ClassToRoom  map[string]string // class ID -> dedicated room ID
	Availability AvailabilitySet
	Requests     []LessonRequest
}

// SubjectByID, ClassByID, RoomByID, TeacherByID do linear-to-map
// conversions once; callers that need repeated lookups should build
// these maps themselves rather than calling these helpers in a loop.
func (in Input) SubjectByID() map[string]Subject {
	out := make(map[string]Subject, len(in.Subjects))
	for _, s := range in.Subjects {
		out[s.ID] = s
	}
	return out
}

func (in Input) ClassByID() map[string]Class {
	out := make(map[string]Class, len(in.Classes))
	for _, c := range in.Classes {
		out[c.ID] = c
	}
	return out
}

func (in Input) RoomByID() map[string]Room {
	out := make(map[string]Room, len(in.Rooms))
	for _, r := range in.Rooms {
		out[r.ID] = r
	}
	return out
}

func (in Input) TeacherByID() map[string]Teacher {
	out := make(map[string]Teacher, len(in.Teachers))
	for _, t := range in.Teachers {
		out[t.ID] = t
	}
	return out
}
