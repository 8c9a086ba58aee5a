package solver

import (
	"fmt"
	"math"
	"math/rand"

	"school-timetabler/internal/availability"
	"school-timetabler/internal/domain"
)

// SAState is the annealing driver's lifecycle state (spec.md §4.5):
// Init -> Running -> (Cooling <-> Reheating)* -> Polishing -> Done.
type SAState int

const (
	StateInit SAState = iota
	StateRunning
	StateCooling
	StateReheating
	StatePolishing
	StateDone
)

// SAStats is the Simulated Annealing Driver's statistics record,
// folded into the orchestrator's overall Statistics on completion.
type SAStats struct {
	Iterations       int
	Accepted         int
	Rejected         int
	TabuRejections   int
	Improvements     int
	Worsenings       int
	Reheats          int
	InitialCost      float64
	FinalCost        float64
	BestCost         float64
	Aborted          bool
	BestDecomposition map[string]float64
}

// Driver runs the Simulated Annealing metaheuristic over a feasible
// schedule (spec.md §4.5).
type Driver struct {
	cfg       SAConfig
	evaluator *Evaluator
	oracle    *Oracle
	roomShared map[string]bool

	rng   *rand.Rand
	state SAState
}

// NewDriver builds a Driver. avail backs the oracle's H1 checks;
// roomShared maps room ID to its shared flag for H4.
func NewDriver(cfg SAConfig, evaluator *Evaluator, avail *availability.Index, roomShared map[string]bool, rng *rand.Rand) *Driver {
	return &Driver{
		cfg:        cfg,
		evaluator:  evaluator,
		oracle:     NewOracle(avail),
		roomShared: roomShared,
		rng:        rng,
		state:      StateInit,
	}
}

// State returns the driver's current lifecycle state.
func (d *Driver) State() SAState { return d.state }

// tabuDeque is a fixed-capacity FIFO of recently applied move
// signatures, dropping the oldest entry once full (spec.md §4.5 step
// 7).
type tabuDeque struct {
	entries  []string
	capacity int
}

func newTabuDeque(capacity int) *tabuDeque {
	return &tabuDeque{capacity: capacity}
}

func (t *tabuDeque) contains(sig string) bool {
	for _, e := range t.entries {
		if e == sig {
			return true
		}
	}
	return false
}

func (t *tabuDeque) push(sig string) {
	t.entries = append(t.entries, sig)
	if len(t.entries) > t.capacity {
		t.entries = t.entries[1:]
	}
}

func (t *tabuDeque) clear() {
	t.entries = t.entries[:0]
}

// moveSignature identifies a specific move instance, not just its
// kind — the tabu deque must block the move that was just applied,
// not every future proposal of the same shape.
func moveSignature(m Move) string {
	return fmt.Sprintf("%s:%d:%d:%s:%s:%s:%s",
		m.Kind, m.Index, m.OtherIndex, m.NewSlot, m.ClassID, m.SubjectID, m.TeacherID)
}

// Run executes the annealing loop for up to cfg.MaxIter iterations,
// then applies the two deterministic local-search polishes if the
// result is within 1.5x of the initial cost. With MaxIter == 0 no
// polish runs and the input is returned unchanged. abort, if non-nil, is
// polled at the top of every iteration and transitions Running
// directly to Polishing when it returns true (spec.md §5, §4.5).
func (d *Driver) Run(input domain.Schedule, abort func() bool, progress ProgressFunc) (domain.Schedule, SAStats) {
	current := input.Clone()
	best := input.Clone()

	currentCost := d.evaluator.Cost(current)
	bestCost := currentCost

	stats := SAStats{InitialCost: currentCost, BestCost: bestCost}

	temperature := d.cfg.T0
	tabu := newTabuDeque(d.cfg.TabuLength)
	itersSinceImprove := 0

	windowAccepts := 0
	windowTotal := 0

	d.state = StateRunning

	for i := 0; i < d.cfg.MaxIter; i++ {
		if abort != nil && abort() {
			stats.Aborted = true
			break
		}

		move, candidate := Generate(current, d.rng, temperature, d.cfg.T0)

		if d.cfg.UseTabu && tabu.contains(moveSignature(move)) {
			stats.TabuRejections++
			stats.Rejected++
			itersSinceImprove++
			continue
		}

		feasible := d.checkFeasible(candidate, move)
		if !feasible {
			stats.Rejected++
			itersSinceImprove++
			windowTotal++
			continue
		}

		newCost := d.evaluator.Cost(candidate)
		delta := newCost - currentCost

		accept := delta < 0
		if !accept {
			accept = d.rng.Float64() < math.Exp(-delta/temperature)
		}

		windowTotal++
		if accept {
			current = candidate
			currentCost = newCost
			stats.Accepted++
			windowAccepts++
			tabu.push(moveSignature(move))

			if currentCost < bestCost {
				best = current.Clone()
				bestCost = currentCost
				stats.Improvements++
				itersSinceImprove = 0
			} else {
				stats.Worsenings++
				itersSinceImprove++
			}
		} else {
			stats.Rejected++
			itersSinceImprove++
		}

		stats.Iterations++

		if progress != nil && d.cfg.ReportEvery > 0 && i%d.cfg.ReportEvery == 0 {
			progress(i, temperature, currentCost)
		}

		if i%100 == 0 && i > 0 {
			temperature *= d.cfg.Alpha
			if temperature < d.cfg.TMin {
				temperature = d.cfg.TMin
			}
			if windowTotal > 0 {
				acceptRatio := float64(windowAccepts) / float64(windowTotal)
				if acceptRatio < 0.2 && temperature > d.cfg.TMin {
					temperature *= math.Pow(d.cfg.Alpha, -0.5)
				}
			}
			windowAccepts, windowTotal = 0, 0
		}

		if d.cfg.UseReheating {
			acceptRatio := 1.0
			if windowTotal > 0 {
				acceptRatio = float64(windowAccepts) / float64(windowTotal)
			}
			shouldReheat := itersSinceImprove > d.cfg.MaxIter/20
			shouldReheat = shouldReheat || (acceptRatio < 0.05 && temperature < 0.1*d.cfg.T0)
			if shouldReheat {
				temperature = math.Min(10*temperature, 0.5*d.cfg.T0)
				tabu.clear()
				itersSinceImprove = 0
				stats.Reheats++
			}
		}
	}

	stats.FinalCost = currentCost
	stats.BestCost = bestCost

	d.state = StatePolishing
	if d.cfg.MaxIter > 0 && bestCost < 1.5*stats.InitialCost {
		best = d.polish(best)
		bestCost = d.evaluator.Cost(best)
		stats.BestCost = bestCost
	}

	stats.BestDecomposition = d.evaluator.Decompose(best)
	d.state = StateDone
	return best, stats
}

// checkFeasible dispatches to the oracle's incremental path for
// single-lesson moves and the full verification path otherwise
// (spec.md §4.1, §4.5 step 4).
func (d *Driver) checkFeasible(candidate domain.Schedule, move Move) bool {
	if move.Incremental() {
		return d.oracle.LegalForIndex(candidate, move.Index, candidate[move.Index].Slot, d.roomShared)
	}
	return d.oracle.FullyLegal(candidate, d.roomShared)
}

// polish applies the 2-opt slot swap and gap-closer local searches in
// order, each only accepting strictly improving moves (spec.md §4.5).
func (d *Driver) polish(schedule domain.Schedule) domain.Schedule {
	schedule = d.twoOptSlotSwap(schedule)
	schedule = d.gapCloser(schedule)
	return schedule
}

// twoOptSlotSwap scans all i<j pairs, swaps their slots, and keeps the
// swap when it is feasible and improves cost; it restarts the scan
// from the top after any accepted swap.
func (d *Driver) twoOptSlotSwap(schedule domain.Schedule) domain.Schedule {
	current := schedule.Clone()
	currentCost := d.evaluator.Cost(current)

	improved := true
	for improved {
		improved = false
		for i := 0; i < len(current) && !improved; i++ {
			for j := i + 1; j < len(current) && !improved; j++ {
				candidate := current.Clone()
				candidate[i].Slot, candidate[j].Slot = candidate[j].Slot, candidate[i].Slot

				if !d.oracle.FullyLegal(candidate, d.roomShared) {
					continue
				}
				newCost := d.evaluator.Cost(candidate)
				if newCost < currentCost {
					current = candidate
					currentCost = newCost
					improved = true
				}
			}
		}
	}
	return current
}

// gapCloser pulls later lessons leftward into the earliest vacancy for
// every teacher-day with gaps, accepting the day-level rewrite only
// when it is feasible and improves cost.
func (d *Driver) gapCloser(schedule domain.Schedule) domain.Schedule {
	current := schedule.Clone()
	currentCost := d.evaluator.Cost(current)

	teacherIDs := make(map[string]bool)
	for _, lesson := range current {
		teacherIDs[lesson.TeacherID] = true
	}

	for teacherID := range teacherIDs {
		for day := 0; day < domain.DaysPerWeek; day++ {
			candidate := current.Clone()
			compactTeacherDayInPlace(candidate, teacherID, day)

			if !d.oracle.FullyLegal(candidate, d.roomShared) {
				continue
			}
			newCost := d.evaluator.Cost(candidate)
			if newCost < currentCost {
				current = candidate
				currentCost = newCost
			}
		}
	}
	return current
}

func compactTeacherDayInPlace(schedule domain.Schedule, teacherID string, day int) {
	var indices []int
	for idx, lesson := range schedule {
		if lesson.TeacherID == teacherID && lesson.Slot.Day == day {
			indices = append(indices, idx)
		}
	}
	if len(indices) < 2 {
		return
	}
	for a := 1; a < len(indices); a++ {
		for b := a; b > 0 && schedule[indices[b]].Slot.Period < schedule[indices[b-1]].Slot.Period; b-- {
			indices[b], indices[b-1] = indices[b-1], indices[b]
		}
	}
	period := schedule[indices[0]].Slot.Period
	for _, idx := range indices {
		schedule[idx].Slot = domain.Slot{Day: day, Period: period}
		period++
	}
}
