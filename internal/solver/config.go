package solver

// ConstructiveConfig tunes the Constructive Solver (C). Defaults match
// spec.md §6.
type ConstructiveConfig struct {
	PrioritizeMinGaps     bool
	DistributeUniformly   bool
	AvoidExtremes         bool
	MaxAttemptsPerRequest int
	Verbose               bool
}

// DefaultConstructiveConfig returns spec.md §6's defaults.
func DefaultConstructiveConfig() ConstructiveConfig {
	return ConstructiveConfig{
		PrioritizeMinGaps:     true,
		DistributeUniformly:   true,
		AvoidExtremes:         true,
		MaxAttemptsPerRequest: 100,
		Verbose:               false,
	}
}

// Weights holds the soft-cost evaluator's five (six, with the
// supplemented P6) component weights.
type Weights struct {
	W1 float64 // daily-load imbalance
	W2 float64 // consecutive-lesson bonus
	W3 float64 // teacher gaps
	W4 float64 // extreme periods
	W5 float64 // preferences
	W6 float64 // session spread (supplemented, SPEC_FULL.md §4)
}

// DefaultWeights returns spec.md §4.3's defaults, (2, 3, 4, 1, 1.5),
// plus a moderate weight for the supplemented P6 term.
func DefaultWeights() Weights {
	return Weights{W1: 2, W2: 3, W3: 4, W4: 1, W5: 1.5, W6: 1}
}

// SAConfig tunes the Simulated Annealing Driver (S). Defaults match
// spec.md §4.5.
type SAConfig struct {
	MaxIter              int
	T0                   float64
	Alpha                float64
	TMin                 float64
	Weights              Weights
	UseReheating         bool
	UseTabu              bool
	TabuLength           int
	ReportEvery          int
	Verbose              bool
	EnableSessionSpread  bool // SPEC_FULL.md §4 supplement; toggles P6
}

// DefaultSAConfig returns spec.md §4.5's defaults.
func DefaultSAConfig() SAConfig {
	return SAConfig{
		MaxIter:             10000,
		T0:                  100.0,
		Alpha:               0.95,
		TMin:                0.01,
		Weights:             DefaultWeights(),
		UseReheating:        true,
		UseTabu:             true,
		TabuLength:          50,
		ReportEvery:         10,
		Verbose:             false,
		EnableSessionSpread: true,
	}
}

// ProgressFunc is the one-way progress callback invoked roughly every
// ReportEvery iterations with (iter, temperature, cost). It must not
// mutate solver state; a nil ProgressFunc is a valid no-op.
type ProgressFunc func(iter int, temperature, cost float64)
