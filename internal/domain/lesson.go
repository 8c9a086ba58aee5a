package domain

import "fmt"

// LessonRequest is a single required lesson instance: one (class,
// subject, teacher) triple. A subject requiring N weekly lessons for a
// class produces N identical requests (spec.md §3).
type LessonRequest struct {
	ClassID   string
	SubjectID string
	TeacherID string
}

// PlacedLesson is a materialized assignment of a request to a room and
// slot. RoomID is fixed at placement time from class_to_room[ClassID].
type PlacedLesson struct {
	TeacherID string
	SubjectID string
	ClassID   string
	RoomID    string
	Slot      Slot
}

// FromRequest builds the PlacedLesson that results from placing r at
// (room, slot).
func FromRequest(r LessonRequest, roomID string, slot Slot) PlacedLesson {
	return PlacedLesson{
		TeacherID: r.TeacherID,
		SubjectID: r.SubjectID,
		ClassID:   r.ClassID,
		RoomID:    roomID,
		Slot:      slot,
	}
}

// Request strips the room and slot, yielding the LessonRequest this
// lesson was placed from.
func (p PlacedLesson) Request() LessonRequest {
	return LessonRequest{ClassID: p.ClassID, SubjectID: p.SubjectID, TeacherID: p.TeacherID}
}

func (p PlacedLesson) String() string {
	return fmt.Sprintf("%s/%s@%s(room=%s,teacher=%s)", p.ClassID, p.SubjectID, p.Slot, p.RoomID, p.TeacherID)
}
