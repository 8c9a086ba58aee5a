package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-timetabler/internal/domain"
)

func seeded(n int64) *int64 { return &n }

func TestSolve_EmptyRequestsReturnsEmptySchedule(t *testing.T) {
	in := domain.Input{}
	result := Solve(in, DefaultOrchestratorConfig(), nil)

	require.NoError(t, result.Err)
	assert.Empty(t, result.Schedule)
}

// Scenario 4 (spec.md §8): demand that can never be fully satisfied
// surfaces as ExhaustedAttempts wrapping a DemandUnmet/InfeasibleAttempt.
func TestSolve_UnsatisfiableDemandExhaustsAttempts(t *testing.T) {
	in := domain.Input{
		ClassToRoom: map[string]string{"c1": "r1"},
		Subjects: []domain.Subject{
			{ID: "math", RequiredLessons: map[string]int{"c1": 2}},
		},
		Availability: domain.AvailabilitySet{
			{TeacherID: "t1", Slot: domain.NewSlot(0, 0)},
		},
		Requests: []domain.LessonRequest{
			{ClassID: "c1", SubjectID: "math", TeacherID: "t1"},
			{ClassID: "c1", SubjectID: "math", TeacherID: "t1"},
		},
	}

	cfg := DefaultOrchestratorConfig()
	cfg.MaxAttempts = 20
	cfg.Seed = seeded(1)
	cfg.Optimize = false

	result := Solve(in, cfg, nil)
	require.Error(t, result.Err)
	var exhausted *ExhaustedAttempts
	assert.ErrorAs(t, result.Err, &exhausted)
}

func TestSolve_SingleSlotSingleTeacherSucceedsOnFirstAttempt(t *testing.T) {
	in := domain.Input{
		ClassToRoom: map[string]string{"c1": "r1"},
		Subjects: []domain.Subject{
			{ID: "math", RequiredLessons: map[string]int{"c1": 1}},
		},
		Availability: domain.AvailabilitySet{
			{TeacherID: "t1", Slot: domain.NewSlot(2, 3)},
		},
		Requests: []domain.LessonRequest{
			{ClassID: "c1", SubjectID: "math", TeacherID: "t1"},
		},
	}

	cfg := DefaultOrchestratorConfig()
	cfg.Seed = seeded(7)
	cfg.Optimize = false

	result := Solve(in, cfg, nil)
	require.NoError(t, result.Err)
	require.Len(t, result.Schedule, 1)
	assert.Equal(t, 1, result.Statistics.ConstructAttempts)
	assert.Equal(t, domain.NewSlot(2, 3), result.Schedule[0].Slot)
}

func TestSolve_OptimizeRunsAnnealingAndFillsStatistics(t *testing.T) {
	in := domain.Input{
		ClassToRoom: map[string]string{"c1": "r1"},
		Subjects: []domain.Subject{
			{ID: "math", RequiredLessons: map[string]int{"c1": 2}},
		},
		Availability: func() domain.AvailabilitySet {
			var set domain.AvailabilitySet
			for p := 0; p < domain.PeriodsPerDay; p++ {
				set = append(set, domain.AvailabilityEntry{TeacherID: "t1", Slot: domain.NewSlot(0, p)})
			}
			return set
		}(),
		Requests: []domain.LessonRequest{
			{ClassID: "c1", SubjectID: "math", TeacherID: "t1"},
			{ClassID: "c1", SubjectID: "math", TeacherID: "t1"},
		},
	}

	cfg := DefaultOrchestratorConfig()
	cfg.Seed = seeded(3)
	cfg.SA.MaxIter = 50

	result := Solve(in, cfg, nil)
	require.NoError(t, result.Err)
	require.NotNil(t, result.Statistics.SAStats)
	assert.Len(t, result.Schedule, 2)
}

func TestCheckDemand_FlagsShortfall(t *testing.T) {
	in := domain.Input{
		Subjects: []domain.Subject{
			{ID: "math", RequiredLessons: map[string]int{"c1": 2}},
		},
	}
	schedule := domain.Schedule{
		{ClassID: "c1", SubjectID: "math", Slot: domain.NewSlot(0, 0)},
	}
	err := checkDemand(schedule, in)
	var unmet *DemandUnmet
	assert.ErrorAs(t, err, &unmet)
}
