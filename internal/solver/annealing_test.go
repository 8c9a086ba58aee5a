package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-timetabler/internal/availability"
	"school-timetabler/internal/domain"
)

func gapRiddenSchedule() (domain.Schedule, *availability.Index, map[string]bool) {
	schedule := domain.Schedule{
		{TeacherID: "t1", ClassID: "c1", SubjectID: "math", RoomID: "r1", Slot: domain.NewSlot(0, 0)},
		{TeacherID: "t1", ClassID: "c1", SubjectID: "math", RoomID: "r1", Slot: domain.NewSlot(0, 4)},
	}
	set := domain.AvailabilitySet{}
	for p := 0; p < domain.PeriodsPerDay; p++ {
		set = append(set, domain.AvailabilityEntry{TeacherID: "t1", Slot: domain.NewSlot(0, p)})
	}
	avail := availability.Build(set)
	roomShared := map[string]bool{"r1": false}
	return schedule, avail, roomShared
}

// Scenario 5 (spec.md §8): SA never worsens the best-known cost.
func TestRun_BestCostIsMonotonicallyNonIncreasing(t *testing.T) {
	schedule, avail, roomShared := gapRiddenSchedule()
	in := testInput()
	evaluator := NewEvaluator(in, DefaultWeights(), true)

	cfg := DefaultSAConfig()
	cfg.MaxIter = 500
	driver := NewDriver(cfg, evaluator, avail, roomShared, newTestRNG())

	initialCost := evaluator.Cost(schedule)
	_, stats := driver.Run(schedule, nil, nil)

	assert.LessOrEqual(t, stats.BestCost, initialCost)
	assert.Equal(t, initialCost, stats.InitialCost)
}

// max_iter=0 must return the input schedule unchanged (spec.md §8).
func TestRun_ZeroIterationsReturnsInputUnchanged(t *testing.T) {
	schedule, avail, roomShared := gapRiddenSchedule()
	in := testInput()
	evaluator := NewEvaluator(in, DefaultWeights(), true)

	cfg := DefaultSAConfig()
	cfg.MaxIter = 0
	cfg.UseReheating = false
	driver := NewDriver(cfg, evaluator, avail, roomShared, newTestRNG())

	result, stats := driver.Run(schedule, nil, nil)

	require.Equal(t, 0, stats.Iterations)
	assert.Equal(t, evaluator.Cost(schedule), evaluator.Cost(result))
}

func TestRun_AbortStopsLoopEarlyAndFlagsStats(t *testing.T) {
	schedule, avail, roomShared := gapRiddenSchedule()
	in := testInput()
	evaluator := NewEvaluator(in, DefaultWeights(), true)

	cfg := DefaultSAConfig()
	cfg.MaxIter = 1000
	driver := NewDriver(cfg, evaluator, avail, roomShared, newTestRNG())

	calls := 0
	abort := func() bool {
		calls++
		return calls > 1
	}

	_, stats := driver.Run(schedule, abort, nil)
	assert.True(t, stats.Aborted)
}

func TestTabuDeque_DropsOldestPastCapacity(t *testing.T) {
	tabu := newTabuDeque(2)
	tabu.push("a")
	tabu.push("b")
	tabu.push("c")

	assert.False(t, tabu.contains("a"))
	assert.True(t, tabu.contains("b"))
	assert.True(t, tabu.contains("c"))
}

func TestTabuDeque_ClearEmptiesEntries(t *testing.T) {
	tabu := newTabuDeque(4)
	tabu.push("a")
	tabu.clear()
	assert.False(t, tabu.contains("a"))
}

// Scenario 6 (spec.md §8): gapCloser removes an idle period between a
// teacher's two lessons on the same day.
func TestGapCloser_ClosesTeacherDayGap(t *testing.T) {
	schedule, avail, roomShared := gapRiddenSchedule()
	in := testInput()
	evaluator := NewEvaluator(in, DefaultWeights(), true)
	driver := NewDriver(DefaultSAConfig(), evaluator, avail, roomShared, newTestRNG())

	result := driver.gapCloser(schedule)

	gotGap := result[1].Slot.Period - result[0].Slot.Period
	assert.Equal(t, 1, gotGap)
}

func TestTwoOptSlotSwap_NeverIncreasesCost(t *testing.T) {
	schedule, avail, roomShared := gapRiddenSchedule()
	in := testInput()
	evaluator := NewEvaluator(in, DefaultWeights(), true)
	driver := NewDriver(DefaultSAConfig(), evaluator, avail, roomShared, newTestRNG())

	before := evaluator.Cost(schedule)
	after := driver.twoOptSlotSwap(schedule)
	assert.LessOrEqual(t, evaluator.Cost(after), before)
}
