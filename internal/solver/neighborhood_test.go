package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-timetabler/internal/domain"
)

func sampleSchedule() domain.Schedule {
	return domain.Schedule{
		{TeacherID: "t1", ClassID: "c1", SubjectID: "math", RoomID: "r1", Slot: domain.NewSlot(0, 0)},
		{TeacherID: "t2", ClassID: "c2", SubjectID: "sci", RoomID: "r2", Slot: domain.NewSlot(1, 1)},
	}
}

func TestSwapLessons_AppliedTwiceRestoresOriginal(t *testing.T) {
	original := sampleSchedule()
	candidate := original.Clone()
	candidate[0].Slot, candidate[1].Slot = candidate[1].Slot, candidate[0].Slot
	candidate[0].Slot, candidate[1].Slot = candidate[1].Slot, candidate[0].Slot

	require.Equal(t, original, candidate)
}

func TestMoveSlot_ToCurrentSlotIsNoOp(t *testing.T) {
	original := sampleSchedule()
	candidate := original.Clone()
	candidate[0].Slot = candidate[0].Slot // no-op move

	assert.Equal(t, original, candidate)
}

func TestGenerate_EmptyScheduleReturnsEmpty(t *testing.T) {
	_, candidate := Generate(domain.Schedule{}, newTestRNG(), 100, 100)
	assert.Empty(t, candidate)
}

func TestGenerate_CoolTemperatureOnlyProducesLocalMoves(t *testing.T) {
	sched := sampleSchedule()
	rng := newTestRNG()
	for i := 0; i < 50; i++ {
		move, _ := Generate(sched, rng, 1.0, 100.0) // T < 0.3*T0
		assert.LessOrEqual(t, int(move.Kind), int(MoveSlot))
	}
}

func TestCompactTeacherInPlace_ClosesGap(t *testing.T) {
	sched := domain.Schedule{
		{TeacherID: "t1", ClassID: "c1", Slot: domain.NewSlot(0, 0)},
		{TeacherID: "t1", ClassID: "c2", Slot: domain.NewSlot(0, 3)},
	}
	compactTeacherInPlace(sched, "t1")

	assert.Equal(t, domain.NewSlot(0, 0), sched[0].Slot)
	assert.Equal(t, domain.NewSlot(0, 1), sched[1].Slot)
}
