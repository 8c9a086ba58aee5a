package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-timetabler/internal/availability"
	"school-timetabler/internal/domain"
)

func buildTestOracle(t *testing.T) *Oracle {
	t.Helper()
	set := domain.AvailabilitySet{
		{TeacherID: "t1", Slot: domain.NewSlot(0, 0)},
		{TeacherID: "t1", Slot: domain.NewSlot(0, 1)},
		{TeacherID: "t2", Slot: domain.NewSlot(0, 0)},
	}
	return NewOracle(availability.Build(set))
}

func TestLegal_RejectsUnavailableTeacher(t *testing.T) {
	o := buildTestOracle(t)
	ok := o.Legal("c1", "t1", "r1", domain.NewSlot(1, 0), false, nil)
	assert.False(t, ok)
}

func TestLegal_RejectsTeacherDoubleBooking(t *testing.T) {
	o := buildTestOracle(t)
	schedule := domain.Schedule{
		{TeacherID: "t1", ClassID: "c1", RoomID: "r1", Slot: domain.NewSlot(0, 0)},
	}
	ok := o.Legal("c2", "t1", "r2", domain.NewSlot(0, 0), false, schedule)
	assert.False(t, ok)
}

func TestLegal_RejectsClassDoubleBooking(t *testing.T) {
	o := buildTestOracle(t)
	schedule := domain.Schedule{
		{TeacherID: "t2", ClassID: "c1", RoomID: "r1", Slot: domain.NewSlot(0, 0)},
	}
	ok := o.Legal("c1", "t1", "r2", domain.NewSlot(0, 0), false, schedule)
	assert.False(t, ok)
}

func TestLegal_RejectsNonSharedRoomCollision(t *testing.T) {
	o := buildTestOracle(t)
	schedule := domain.Schedule{
		{TeacherID: "t2", ClassID: "c2", RoomID: "gym", Slot: domain.NewSlot(0, 0)},
	}
	ok := o.Legal("c1", "t1", "gym", domain.NewSlot(0, 0), false, schedule)
	assert.False(t, ok)
}

func TestLegal_AllowsSharedRoomCollision(t *testing.T) {
	o := buildTestOracle(t)
	schedule := domain.Schedule{
		{TeacherID: "t2", ClassID: "c2", RoomID: "gym", Slot: domain.NewSlot(0, 0)},
	}
	ok := o.Legal("c1", "t1", "gym", domain.NewSlot(0, 0), true, schedule)
	assert.True(t, ok)
}

func TestFullyLegal_DetectsEveryHardConstraint(t *testing.T) {
	o := buildTestOracle(t)
	roomShared := map[string]bool{"r1": false}

	good := domain.Schedule{
		{TeacherID: "t1", ClassID: "c1", RoomID: "r1", Slot: domain.NewSlot(0, 0)},
	}
	require.True(t, o.FullyLegal(good, roomShared))

	bad := domain.Schedule{
		{TeacherID: "t1", ClassID: "c1", RoomID: "r1", Slot: domain.NewSlot(0, 0)},
		{TeacherID: "t1", ClassID: "c2", RoomID: "r2", Slot: domain.NewSlot(0, 0)},
	}
	assert.False(t, o.FullyLegal(bad, roomShared))
}

func TestLegalForIndex_IgnoresMovedLessonItself(t *testing.T) {
	o := buildTestOracle(t)
	schedule := domain.Schedule{
		{TeacherID: "t1", ClassID: "c1", RoomID: "r1", Slot: domain.NewSlot(0, 0)},
	}
	// Moving lesson 0 back onto its own current slot must stay legal.
	ok := o.LegalForIndex(schedule, 0, domain.NewSlot(0, 0), map[string]bool{"r1": false})
	assert.True(t, ok)
}
