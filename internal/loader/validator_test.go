package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-timetabler/internal/domain"
)

func validInput() domain.Input {
	return domain.Input{
		Teachers:    []domain.Teacher{{ID: "t1", Name: "Ada"}},
		Subjects:    []domain.Subject{{ID: "math", RequiredLessons: map[string]int{"c1": 1}}},
		Classes:     []domain.Class{{ID: "c1", Name: "1A"}},
		Rooms:       []domain.Room{{ID: "r1", Name: "Room 1"}},
		ClassToRoom: map[string]string{"c1": "r1"},
		Availability: domain.AvailabilitySet{
			{TeacherID: "t1", Slot: domain.NewSlot(0, 0)},
		},
		Requests: []domain.LessonRequest{
			{ClassID: "c1", SubjectID: "math", TeacherID: "t1"},
		},
	}
}

func TestValidate_AcceptsWellFormedInput(t *testing.T) {
	require.NoError(t, Validate(validInput()))
}

func TestValidate_RejectsUnknownTeacherReference(t *testing.T) {
	in := validInput()
	in.Requests[0].TeacherID = "ghost"

	err := Validate(in)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors[0], "ghost")
}

func TestValidate_RejectsMissingClassRoom(t *testing.T) {
	in := validInput()
	delete(in.ClassToRoom, "c1")

	err := Validate(in)
	require.Error(t, err)
}

func TestValidate_RejectsOverloadedTeacher(t *testing.T) {
	in := validInput()
	in.Requests = append(in.Requests, domain.LessonRequest{ClassID: "c1", SubjectID: "math", TeacherID: "t1"})

	err := Validate(in)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "physically impossible")
}
