package solver

import "time"

// PhaseTiming records how long one named phase of a solve took.
type PhaseTiming struct {
	Phase    string
	Duration time.Duration
}

// Statistics is the solver's complete output record (spec.md §6
// "Solver output"): per-phase timings, request counts, construction
// attempts, and the full SA statistics record when optimization ran.
type Statistics struct {
	Phases            []PhaseTiming
	RequestsHandled   int
	ConstructAttempts int
	SAStats           *SAStats // nil if optimization was not requested
}

func (s *Statistics) addPhase(name string, d time.Duration) {
	s.Phases = append(s.Phases, PhaseTiming{Phase: name, Duration: d})
}
