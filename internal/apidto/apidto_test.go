package apidto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoc() InputDocument {
	return InputDocument{
		Teachers: []TeacherDTO{{ID: "t1", Name: "Alvarez"}},
		Subjects: []SubjectDTO{{ID: "math", Name: "Math", RequiredLessons: map[string]int{"c1": 2}}},
		Classes:  []ClassDTO{{ID: "c1", Name: "1A", Turno: "morning"}},
		Rooms:    []RoomDTO{{ID: "r1", Name: "Room 1"}},
		ClassToRoom: map[string]string{"c1": "r1"},
		Availability: []AvailabilitySlotDTO{{TeacherID: "t1", Day: 0, Period: 0}},
		Requests:     []LessonRequestDTO{{ClassID: "c1", SubjectID: "math", TeacherID: "t1"}},
	}
}

func TestValidate_AcceptsWellFormedSolveRequest(t *testing.T) {
	v := validator.New()
	req := SolveRequest{Optimize: true, Input: validDoc()}
	assert.NoError(t, v.Struct(req))
}

func TestValidate_RejectsMissingRequests(t *testing.T) {
	v := validator.New()
	doc := validDoc()
	doc.Requests = nil
	req := SolveRequest{Input: doc}
	assert.Error(t, v.Struct(req))
}

func TestValidate_RejectsOutOfRangeAvailability(t *testing.T) {
	v := validator.New()
	doc := validDoc()
	doc.Availability[0].Day = 9
	req := SolveRequest{Input: doc}
	assert.Error(t, v.Struct(req))
}

func TestValidate_RejectsUnknownTurno(t *testing.T) {
	v := validator.New()
	doc := validDoc()
	doc.Classes[0].Turno = "midnight"
	req := SolveRequest{Input: doc}
	assert.Error(t, v.Struct(req))
}

func TestToInput_ConvertsEveryField(t *testing.T) {
	in := validDoc().ToInput()
	require.Len(t, in.Teachers, 1)
	require.Len(t, in.Requests, 1)
	assert.Equal(t, "r1", in.ClassToRoom["c1"])
	assert.Equal(t, 1, len(in.Availability))
}
