// Package apidto holds the HTTP request/response shapes for
// cmd/timetableapi, kept deliberately separate from the domain model
// the way noah-isme-sma-adp-api's internal/dto sits apart from
// internal/models, and from smeggmann99-Arrango's input/output split.
package apidto

// SolveRequest is the body of POST /v1/jobs.
type SolveRequest struct {
	Optimize    bool          `json:"optimize"`
	Seed        *int64        `json:"seed,omitempty"`
	MaxAttempts int           `json:"max_attempts,omitempty" validate:"omitempty,gt=0"`
	Input       InputDocument `json:"input" validate:"required"`
}

// InputDocument mirrors internal/loader's JSON document shape so API
// clients submit the same payload the CLI reads from disk.
type InputDocument struct {
	Teachers     []TeacherDTO         `json:"teachers" validate:"required,min=1,dive"`
	Subjects     []SubjectDTO         `json:"subjects" validate:"required,min=1,dive"`
	Classes      []ClassDTO           `json:"classes" validate:"required,min=1,dive"`
	Rooms        []RoomDTO            `json:"rooms" validate:"required,min=1,dive"`
	ClassToRoom  map[string]string    `json:"class_to_room" validate:"required"`
	Availability []AvailabilitySlotDTO `json:"availability" validate:"required,min=1,dive"`
	Requests     []LessonRequestDTO   `json:"requests" validate:"required,min=1,dive"`
}

type TeacherDTO struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type SubjectDTO struct {
	ID               string         `json:"id" validate:"required"`
	Name             string         `json:"name" validate:"required"`
	PreferredPeriods []int          `json:"preferred_periods,omitempty"`
	RequiredLessons  map[string]int `json:"required_lessons" validate:"required"`
}

type ClassDTO struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Turno string `json:"turno" validate:"required,oneof=morning afternoon evening"`
}

type RoomDTO struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Shared bool   `json:"shared"`
}

type AvailabilitySlotDTO struct {
	TeacherID string `json:"teacher_id" validate:"required"`
	Day       int    `json:"day" validate:"gte=0,lt=5"`
	Period    int    `json:"period" validate:"gte=0,lt=6"`
}

type LessonRequestDTO struct {
	ClassID   string `json:"class_id" validate:"required"`
	SubjectID string `json:"subject_id" validate:"required"`
	TeacherID string `json:"teacher_id" validate:"required"`
}
