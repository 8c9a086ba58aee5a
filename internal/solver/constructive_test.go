package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-timetabler/internal/availability"
	"school-timetabler/internal/domain"
)

// Scenario 1: trivial single lesson (spec.md §8).
func TestBuild_TrivialSingleLesson(t *testing.T) {
	in := domain.Input{
		ClassToRoom: map[string]string{"c1": "r1"},
		Availability: domain.AvailabilitySet{
			{TeacherID: "t1", Slot: domain.NewSlot(0, 0)},
		},
		Requests: []domain.LessonRequest{
			{ClassID: "c1", SubjectID: "math", TeacherID: "t1"},
		},
	}
	avail := availability.Build(in.Availability)
	rng := rand.New(rand.NewSource(1))

	result := Build(in, avail, DefaultConstructiveConfig(), rng)
	require.NoError(t, result.Err)
	require.Len(t, result.Schedule, 1)

	got := result.Schedule[0]
	assert.Equal(t, domain.PlacedLesson{
		TeacherID: "t1", SubjectID: "math", ClassID: "c1", RoomID: "r1", Slot: domain.NewSlot(0, 0),
	}, got)
}

// Scenario 2: availability conflict -> every attempt is infeasible (spec.md §8).
func TestBuild_AvailabilityConflictIsInfeasible(t *testing.T) {
	in := domain.Input{
		ClassToRoom: map[string]string{"c1": "r1"},
		Availability: domain.AvailabilitySet{
			{TeacherID: "t1", Slot: domain.NewSlot(0, 0)},
			{TeacherID: "t2", Slot: domain.NewSlot(0, 0)},
		},
		Requests: []domain.LessonRequest{
			{ClassID: "c1", SubjectID: "math", TeacherID: "t1"},
			{ClassID: "c1", SubjectID: "science", TeacherID: "t2"},
		},
	}
	avail := availability.Build(in.Availability)
	rng := rand.New(rand.NewSource(1))

	result := Build(in, avail, DefaultConstructiveConfig(), rng)
	require.Error(t, result.Err)
	var infeasible *InfeasibleAttempt
	assert.ErrorAs(t, result.Err, &infeasible)
}

// Scenario 3: shared-room tolerance (spec.md §8).
func TestBuild_SharedRoomAllowsSimultaneousClasses(t *testing.T) {
	in := domain.Input{
		ClassToRoom: map[string]string{"c1": "gym", "c2": "gym"},
		Availability: domain.AvailabilitySet{
			{TeacherID: "t1", Slot: domain.NewSlot(0, 0)},
			{TeacherID: "t2", Slot: domain.NewSlot(0, 0)},
		},
		Requests: []domain.LessonRequest{
			{ClassID: "c1", SubjectID: "pe", TeacherID: "t1"},
			{ClassID: "c2", SubjectID: "pe", TeacherID: "t2"},
		},
	}
	// gym is shared, so the oracle never rejects on H4 collisions there.
	avail := availability.Build(in.Availability)
	in.Rooms = []domain.Room{{ID: "gym", Name: "Gym", Shared: true}}

	rng := rand.New(rand.NewSource(1))
	result := Build(in, avail, DefaultConstructiveConfig(), rng)
	require.NoError(t, result.Err)
	require.Len(t, result.Schedule, 2)
	assert.Equal(t, result.Schedule[0].Slot, result.Schedule[1].Slot)
}

func TestBuild_MissingClassRoomIsConfigurationError(t *testing.T) {
	in := domain.Input{
		ClassToRoom: map[string]string{},
		Availability: domain.AvailabilitySet{
			{TeacherID: "t1", Slot: domain.NewSlot(0, 0)},
		},
		Requests: []domain.LessonRequest{
			{ClassID: "c1", SubjectID: "math", TeacherID: "t1"},
		},
	}
	avail := availability.Build(in.Availability)
	rng := rand.New(rand.NewSource(1))

	result := Build(in, avail, DefaultConstructiveConfig(), rng)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, result.Err, &cfgErr)
}

func TestCriticality_ZeroAvailabilityIsInfinite(t *testing.T) {
	requests := []domain.LessonRequest{{TeacherID: "ghost"}}
	avail := availability.Build(nil)
	crit := Criticality(requests, avail)
	assert.True(t, crit["ghost"] > 1e300)
}
