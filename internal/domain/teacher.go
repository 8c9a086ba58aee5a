package domain

// Teacher is a person who may be assigned lessons. Identity is ID; Name
// is for display only.
type Teacher struct {
	ID   string
	Name string
}

// Turno is the part of the day a class meets. It is consumed only by
// the soft-cost evaluator (P5 preferences).
type Turno string

const (
	TurnoNone      Turno = ""
	TurnoMorning   Turno = "MORNING"
	TurnoAfternoon Turno = "AFTERNOON"
	TurnoEvening   Turno = "EVENING"
)

// Class is a student cohort with a dedicated room (the room binding
// lives in the external class_to_room map, not on the struct itself,
// matching spec.md §3).
type Class struct {
	ID    string
	Name  string
	Turno Turno
}

// Room is a physical space. A non-shared room holds at most one lesson
// per slot; a shared room may hold several (gyms, auditoriums).
type Room struct {
	ID     string
	Name   string
	Shared bool
}
