package solver

import (
	"math"
	"sort"

	"school-timetabler/internal/domain"
	"school-timetabler/internal/utils"
)

const costCacheLimit = 1000

// Evaluator computes the weighted sum of soft-constraint penalties
// over a schedule (spec.md §4.3). It memoizes by schedule fingerprint;
// the cache is bounded and cleared wholesale on overflow or weight
// change, never evicted entry-by-entry (keeping the cache trivially
// correct costs a full clear instead of partial invalidation logic).
type Evaluator struct {
	weights             Weights
	subjects            map[string]domain.Subject
	classes             map[string]domain.Class
	enableSessionSpread bool

	cache map[uint64]float64
}

// NewEvaluator builds an Evaluator over the given reference data.
// enableSessionSpread gates the P6 term (SPEC_FULL.md §4's
// enable_session_spread flag, default true).
func NewEvaluator(in domain.Input, weights Weights, enableSessionSpread bool) *Evaluator {
	return &Evaluator{
		weights:             weights,
		subjects:            in.SubjectByID(),
		classes:             in.ClassByID(),
		enableSessionSpread: enableSessionSpread,
		cache:               make(map[uint64]float64),
	}
}

// SetWeights replaces the component weights and clears the cache —
// cost is a pure function of (weights, schedule), so changing the
// weights invalidates every memoized value.
func (e *Evaluator) SetWeights(w Weights) {
	e.weights = w
	e.cache = make(map[uint64]float64)
}

// Cost returns the weighted total penalty for schedule. It is a pure
// function of e.weights and the schedule's content (invariant I2):
// permuting lesson order never changes the result, because the
// fingerprint and every component below are order-independent.
func (e *Evaluator) Cost(schedule domain.Schedule) float64 {
	fp := schedule.Fingerprint()
	if v, ok := e.cache[fp]; ok {
		return v
	}

	total := e.weights.W1*e.p1DailyLoadImbalance(schedule) +
		e.weights.W2*e.p2ConsecutiveBonus(schedule) +
		e.weights.W3*e.p3TeacherGaps(schedule) +
		e.weights.W4*e.p4ExtremePeriods(schedule) +
		e.weights.W5*e.p5Preferences(schedule)
	if e.enableSessionSpread {
		total += e.weights.W6 * e.p6SessionSpread(schedule)
	}

	if len(e.cache) >= costCacheLimit {
		e.cache = make(map[uint64]float64)
	}
	e.cache[fp] = total
	return total
}

// Decompose returns each component's raw (unweighted) value, used by
// the orchestrator's statistics record.
func (e *Evaluator) Decompose(schedule domain.Schedule) map[string]float64 {
	d := map[string]float64{
		"P1_daily_load_imbalance": e.p1DailyLoadImbalance(schedule),
		"P2_consecutive_bonus":    e.p2ConsecutiveBonus(schedule),
		"P3_teacher_gaps":         e.p3TeacherGaps(schedule),
		"P4_extreme_periods":      e.p4ExtremePeriods(schedule),
		"P5_preferences":          e.p5Preferences(schedule),
	}
	if e.enableSessionSpread {
		d["P6_session_spread"] = e.p6SessionSpread(schedule)
	}
	return d
}

// p1DailyLoadImbalance: per class, stddev of per-day lesson count from
// the mean, plus overload/empty-day penalties.
func (e *Evaluator) p1DailyLoadImbalance(schedule domain.Schedule) float64 {
	perClassDay := make(map[string][domain.DaysPerWeek]int)
	for _, lesson := range schedule {
		counts := perClassDay[lesson.ClassID]
		counts[lesson.Slot.Day]++
		perClassDay[lesson.ClassID] = counts
	}

	total := 0.0
	for _, counts := range perClassDay {
		sum := 0
		for _, c := range counts {
			sum += c
		}
		mean := float64(sum) / float64(domain.DaysPerWeek)

		variance := 0.0
		for _, c := range counts {
			d := float64(c) - mean
			variance += d * d
		}
		variance /= float64(domain.DaysPerWeek)
		total += math.Sqrt(variance)

		for _, c := range counts {
			if c > 7 {
				total += 10 * float64(c-7)
			}
			if c == 0 {
				total += 5
			}
		}
	}
	return total
}

// p2ConsecutiveBonus: for each (class, day, subject), −5·k² for every
// maximal run of k>=2 consecutive periods. Negative contribution
// (a bonus), as spec.md §4.3 defines it.
func (e *Evaluator) p2ConsecutiveBonus(schedule domain.Schedule) float64 {
	type key struct {
		classID, subjectID string
		day                int
	}
	periodsByKey := make(map[key][]int)
	for _, lesson := range schedule {
		k := key{lesson.ClassID, lesson.SubjectID, lesson.Slot.Day}
		periodsByKey[k] = append(periodsByKey[k], lesson.Slot.Period)
	}

	total := 0.0
	for _, periods := range periodsByKey {
		sort.Ints(periods)
		runLen := 1
		for i := 1; i <= len(periods); i++ {
			contiguous := i < len(periods) && periods[i] == periods[i-1]+1
			if contiguous {
				runLen++
				continue
			}
			if runLen >= 2 {
				total += -5 * float64(runLen*runLen)
			}
			runLen = 1
		}
	}
	return total
}

// p3TeacherGaps: per teacher/day gap-count banding plus a per-gap
// penalty for any individual gap of length >= 3.
func (e *Evaluator) p3TeacherGaps(schedule domain.Schedule) float64 {
	type key struct {
		teacherID string
		day       int
	}
	periodsByKey := make(map[key][]int)
	for _, lesson := range schedule {
		k := key{lesson.TeacherID, lesson.Slot.Day}
		periodsByKey[k] = append(periodsByKey[k], lesson.Slot.Period)
	}

	gapsByTeacher := make(map[string]int)
	perGapPenalty := 0.0

	for k, periods := range periodsByKey {
		sort.Ints(periods)
		for i := 1; i < len(periods); i++ {
			gap := periods[i] - periods[i-1] - 1
			if gap <= 0 {
				continue
			}
			gapsByTeacher[k.teacherID] += gap
			if gap >= 3 {
				perGapPenalty += 2 * float64(gap*gap)
			}
		}
	}

	total := perGapPenalty
	for _, g := range gapsByTeacher {
		switch {
		case g <= 2:
			total += 5 * float64(g)
		case g <= 5:
			total += 10 + 10*float64(g-2)
		default:
			total += 40 + 20*float64(g-5)
		}
	}
	return total
}

// p4ExtremePeriods: +3 per lesson in period 0 or 5 (+2 more if the
// subject's total weekly load across all classes >= 20); +1 for any
// lesson in period >= 3.
func (e *Evaluator) p4ExtremePeriods(schedule domain.Schedule) float64 {
	total := 0.0
	for _, lesson := range schedule {
		if lesson.Slot.IsExtremePeriod() {
			total += 3
			if subject, ok := e.subjects[lesson.SubjectID]; ok && subject.TotalWeeklyLoad() >= 20 {
				total += 2
			}
		}
		if lesson.Slot.Period >= 3 {
			total += 1
		}
	}
	return total
}

// p5Preferences: +5 per lesson outside its subject's non-empty
// preferred-period set; +10 per lesson whose class is MORNING and
// period>=4; +10 per lesson whose class is AFTERNOON and period<2.
func (e *Evaluator) p5Preferences(schedule domain.Schedule) float64 {
	total := 0.0
	for _, lesson := range schedule {
		if subject, ok := e.subjects[lesson.SubjectID]; ok {
			if subject.HasPreferences() && !subject.PrefersPeriod(lesson.Slot.Period) {
				total += 5
			}
		}
		if class, ok := e.classes[lesson.ClassID]; ok {
			switch class.Turno {
			case domain.TurnoMorning:
				if lesson.Slot.Period >= 4 {
					total += 10
				}
			case domain.TurnoAfternoon:
				if lesson.Slot.Period < 2 {
					total += 10
				}
			}
		}
	}
	return total
}

// p6SessionSpread is the supplemented term from SPEC_FULL.md §4: for a
// (class, subject) with N>=2 weekly sessions, penalize same-day
// collisions and reward a 2–3 day spread between sessions.
func (e *Evaluator) p6SessionSpread(schedule domain.Schedule) float64 {
	daysByKey := make(map[string][]int)
	for _, lesson := range schedule {
		k := utils.GroupKey([]string{lesson.ClassID, lesson.SubjectID})
		daysByKey[k] = append(daysByKey[k], lesson.Slot.Day)
	}

	total := 0.0
	for _, days := range daysByKey {
		if len(days) < 2 {
			continue
		}
		sort.Ints(days)
		for i := 0; i < len(days); i++ {
			for j := i + 1; j < len(days); j++ {
				gap := days[j] - days[i]
				if gap == 0 {
					total += 15
				} else if gap == 2 || gap == 3 {
					total -= 5
				}
			}
		}
	}
	return total
}
