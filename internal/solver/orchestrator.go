package solver

import (
	"fmt"
	"math/rand"
	"time"

	"school-timetabler/internal/availability"
	"school-timetabler/internal/domain"
)

// DefaultMaxAttempts is the orchestrator's retry cap on construction
// attempts (spec.md §4.2 suggests 10^4-10^5; kept modest here since
// each failed attempt is already bounded by request count).
const DefaultMaxAttempts = 10000

// OrchestratorConfig bundles everything Orchestrate needs beyond the
// raw domain.Input.
type OrchestratorConfig struct {
	MaxAttempts  int
	Optimize     bool
	Seed         *int64
	Constructive ConstructiveConfig
	SA           SAConfig
	Logger       Logger
	Progress     ProgressFunc
}

// DefaultOrchestratorConfig returns spec.md §6's defaults for every
// sub-config, with optimization enabled.
func DefaultOrchestratorConfig() OrchestratorConfig {
	return OrchestratorConfig{
		MaxAttempts:  DefaultMaxAttempts,
		Optimize:     true,
		Constructive: DefaultConstructiveConfig(),
		SA:           DefaultSAConfig(),
		Logger:       NopLogger{},
	}
}

// Result is the Orchestrator's terminal output: exactly one of
// Schedule or Err is set.
type Result struct {
	Schedule   domain.Schedule
	Statistics Statistics
	Err        error
}

// Solve runs the Orchestrator (spec.md §4.6): retry the Constructive
// Solver until it satisfies H5, then optionally refine with Simulated
// Annealing. abort, if non-nil, is polled only during the SA phase —
// the Constructive Solver's own attempts are not individually
// cancellable, matching spec.md §5's concurrency model.
func Solve(in domain.Input, cfg OrchestratorConfig, abort func() bool) Result {
	logger := cfg.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	stats := Statistics{RequestsHandled: len(in.Requests)}

	if len(in.Requests) == 0 {
		if cfg.Constructive.Verbose {
			fmt.Println("🏗️  [construct] no lesson requests, returning empty schedule")
		}
		return Result{Schedule: domain.Schedule{}, Statistics: stats}
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	avail := availability.Build(in.Availability)
	roomShared := make(map[string]bool, len(in.Rooms))
	for _, r := range in.Rooms {
		roomShared[r.ID] = r.Shared
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	if cfg.Constructive.Verbose {
		fmt.Printf("🏗️  [construct] starting, %d requests, up to %d attempts\n", len(in.Requests), maxAttempts)
	}

	var schedule domain.Schedule
	var lastErr error

	constructStart := time.Now()
	attempt := 0
	for ; attempt < maxAttempts; attempt++ {
		result := Build(in, avail, cfg.Constructive, rng)
		if result.Err != nil {
			lastErr = result.Err
			logger.Debugf("construct attempt %d failed: %v", attempt, result.Err)
			continue
		}

		if err := checkDemand(result.Schedule, in); err != nil {
			lastErr = err
			logger.Debugf("construct attempt %d produced incomplete schedule: %v", attempt, err)
			continue
		}

		schedule = result.Schedule
		break
	}
	stats.ConstructAttempts = attempt + 1
	if schedule == nil {
		stats.ConstructAttempts = attempt
	}
	stats.addPhase("construct", time.Since(constructStart))

	if schedule == nil {
		err := &ExhaustedAttempts{Attempts: stats.ConstructAttempts, LastErr: lastErr}
		if cfg.Constructive.Verbose {
			fmt.Printf("❌ [construct] %v\n", err)
		}
		return Result{Statistics: stats, Err: err}
	}

	if cfg.Constructive.Verbose {
		fmt.Printf("✅ [construct] feasible schedule found after %d attempt(s)\n", stats.ConstructAttempts)
	}

	if !cfg.Optimize {
		return Result{Schedule: schedule, Statistics: stats}
	}

	if cfg.SA.Verbose {
		fmt.Printf("🔥 [anneal] starting, T0=%.1f alpha=%.3f iters=%d\n", cfg.SA.T0, cfg.SA.Alpha, cfg.SA.MaxIter)
	}

	evaluator := NewEvaluator(in, cfg.SA.Weights, cfg.SA.EnableSessionSpread)
	driver := NewDriver(cfg.SA, evaluator, avail, roomShared, rng)

	annealStart := time.Now()
	best, saStats := driver.Run(schedule, abort, cfg.Progress)
	stats.addPhase("anneal", time.Since(annealStart))
	stats.SAStats = &saStats

	if cfg.SA.Verbose {
		fmt.Printf("🏁 [anneal] done: initial=%.2f final=%.2f best=%.2f accepted=%d rejected=%d reheats=%d\n",
			saStats.InitialCost, saStats.FinalCost, saStats.BestCost, saStats.Accepted, saStats.Rejected, saStats.Reheats)
	}

	return Result{Schedule: best, Statistics: stats}
}

// checkDemand verifies H5: every (class, subject) pair's placed-lesson
// count matches its required count.
func checkDemand(schedule domain.Schedule, in domain.Input) error {
	for _, subject := range in.Subjects {
		for classID, required := range subject.RequiredLessons {
			placed := schedule.CountFor(classID, subject.ID)
			if placed != required {
				return &DemandUnmet{ClassID: classID, SubjectID: subject.ID, Required: required, Placed: placed}
			}
		}
	}
	return nil
}
