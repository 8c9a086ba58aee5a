package solver

import (
	"math/rand"
	"sort"

	"school-timetabler/internal/domain"
)

// MoveKind tags which of the seven move shapes a Move describes
// (spec.md §4.4). Expressed as a tagged variant, not an inheritance
// hierarchy: the neighborhood generator returns both the candidate
// schedule and this Move object so the tabu filter and oracle can
// inspect what changed without re-diffing two schedules.
type MoveKind int

const (
	MoveHour MoveKind = iota
	MoveDay
	MoveSlot
	SwapLessons
	MoveBlock
	CompactTeacher
	CompactClass
)

func (k MoveKind) String() string {
	switch k {
	case MoveHour:
		return "MoveHour"
	case MoveDay:
		return "MoveDay"
	case MoveSlot:
		return "MoveSlot"
	case SwapLessons:
		return "SwapLessons"
	case MoveBlock:
		return "MoveBlock"
	case CompactTeacher:
		return "CompactTeacher"
	case CompactClass:
		return "CompactClass"
	default:
		return "Unknown"
	}
}

// Move describes one proposed neighborhood step. Only the fields
// relevant to Kind are populated; the rest are zero values.
type Move struct {
	Kind MoveKind

	Index      int // MoveHour, MoveDay, MoveSlot, SwapLessons (first lesson)
	OtherIndex int // SwapLessons (second lesson)
	NewSlot    domain.Slot

	ClassID   string // MoveBlock, CompactClass
	SubjectID string // MoveBlock
	TeacherID string // CompactTeacher

	// Incremental returns true when the oracle's fast single-lesson
	// path (LegalForIndex) applies; compound moves fall back to
	// FullyLegal (spec.md §4.1, §4.4).
}

// Incremental reports whether this move kind is eligible for the
// oracle's incremental feasibility check.
func (m Move) Incremental() bool {
	switch m.Kind {
	case MoveHour, MoveDay, MoveSlot:
		return true
	default:
		return false
	}
}

// Generate samples one of the seven move kinds uniformly at random and
// applies it to a freshly copied schedule, so a rejected move costs
// nothing to undo (spec.md §4.4, §5). When T < 0.3*T0 the compound
// moves (4–7) are resampled as one of the local moves (1–3), favoring
// local edits as annealing cools.
func Generate(schedule domain.Schedule, rng *rand.Rand, temperature, t0 float64) (Move, domain.Schedule) {
	if len(schedule) == 0 {
		return Move{Kind: MoveHour}, schedule.Clone()
	}

	kind := MoveKind(rng.Intn(7))
	if temperature < 0.3*t0 && kind >= SwapLessons {
		kind = MoveKind(rng.Intn(3))
	}

	switch kind {
	case MoveHour:
		return genMoveHour(schedule, rng)
	case MoveDay:
		return genMoveDay(schedule, rng)
	case MoveSlot:
		return genMoveSlot(schedule, rng)
	case SwapLessons:
		return genSwapLessons(schedule, rng)
	case MoveBlock:
		return genMoveBlock(schedule, rng)
	case CompactTeacher:
		return genCompactTeacher(schedule, rng)
	default:
		return genCompactClass(schedule, rng)
	}
}

func genMoveHour(schedule domain.Schedule, rng *rand.Rand) (Move, domain.Schedule) {
	i := rng.Intn(len(schedule))
	newPeriod := rng.Intn(domain.PeriodsPerDay)
	candidate := schedule.Clone()
	newSlot := domain.Slot{Day: candidate[i].Slot.Day, Period: newPeriod}
	candidate[i].Slot = newSlot
	return Move{Kind: MoveHour, Index: i, NewSlot: newSlot}, candidate
}

func genMoveDay(schedule domain.Schedule, rng *rand.Rand) (Move, domain.Schedule) {
	i := rng.Intn(len(schedule))
	newDay := rng.Intn(domain.DaysPerWeek)
	candidate := schedule.Clone()
	newSlot := domain.Slot{Day: newDay, Period: candidate[i].Slot.Period}
	candidate[i].Slot = newSlot
	return Move{Kind: MoveDay, Index: i, NewSlot: newSlot}, candidate
}

func genMoveSlot(schedule domain.Schedule, rng *rand.Rand) (Move, domain.Schedule) {
	i := rng.Intn(len(schedule))
	newSlot := domain.NewSlot(rng.Intn(domain.DaysPerWeek), rng.Intn(domain.PeriodsPerDay))
	candidate := schedule.Clone()
	candidate[i].Slot = newSlot
	return Move{Kind: MoveSlot, Index: i, NewSlot: newSlot}, candidate
}

func genSwapLessons(schedule domain.Schedule, rng *rand.Rand) (Move, domain.Schedule) {
	i := rng.Intn(len(schedule))
	j := rng.Intn(len(schedule))
	candidate := schedule.Clone()
	candidate[i].Slot, candidate[j].Slot = candidate[j].Slot, candidate[i].Slot
	return Move{Kind: SwapLessons, Index: i, OtherIndex: j}, candidate
}

// genMoveBlock gathers every lesson of one (class, subject) and
// relocates them to consecutive periods starting at p0 on day d'
// (spec.md §4.4 move 5). p0 is chosen so the block fits in the day.
func genMoveBlock(schedule domain.Schedule, rng *rand.Rand) (Move, domain.Schedule) {
	i := rng.Intn(len(schedule))
	classID, subjectID := schedule[i].ClassID, schedule[i].SubjectID

	count := 0
	for _, lesson := range schedule {
		if lesson.ClassID == classID && lesson.SubjectID == subjectID {
			count++
		}
	}
	if count > domain.PeriodsPerDay {
		count = domain.PeriodsPerDay
	}

	day := rng.Intn(domain.DaysPerWeek)
	maxStart := domain.PeriodsPerDay - count
	if maxStart < 0 {
		maxStart = 0
	}
	p0 := rng.Intn(maxStart + 1)

	candidate := schedule.Clone()
	next := p0
	for idx := range candidate {
		if candidate[idx].ClassID == classID && candidate[idx].SubjectID == subjectID {
			if next >= p0+count {
				break
			}
			candidate[idx].Slot = domain.Slot{Day: day, Period: next}
			next++
		}
	}
	return Move{Kind: MoveBlock, ClassID: classID, SubjectID: subjectID, NewSlot: domain.Slot{Day: day, Period: p0}}, candidate
}

// genCompactTeacher slides a randomly chosen teacher's lessons on each
// day with >=2 of their lessons downward to close gaps, preserving
// relative order. It may introduce collisions, which the caller's full
// oracle check rejects (spec.md §4.4 move 6).
func genCompactTeacher(schedule domain.Schedule, rng *rand.Rand) (Move, domain.Schedule) {
	i := rng.Intn(len(schedule))
	teacherID := schedule[i].TeacherID
	candidate := schedule.Clone()
	compactTeacherInPlace(candidate, teacherID)
	return Move{Kind: CompactTeacher, TeacherID: teacherID}, candidate
}

func compactTeacherInPlace(schedule domain.Schedule, teacherID string) {
	for day := 0; day < domain.DaysPerWeek; day++ {
		var indices []int
		for idx, lesson := range schedule {
			if lesson.TeacherID == teacherID && lesson.Slot.Day == day {
				indices = append(indices, idx)
			}
		}
		if len(indices) < 2 {
			continue
		}
		sort.Slice(indices, func(a, b int) bool {
			return schedule[indices[a]].Slot.Period < schedule[indices[b]].Slot.Period
		})
		period := schedule[indices[0]].Slot.Period
		for _, idx := range indices {
			schedule[idx].Slot = domain.Slot{Day: day, Period: period}
			period++
		}
	}
}

// genCompactClass is structurally identical to genCompactTeacher but
// keyed on class, kept as a distinct move for tabu differentiation
// (spec.md §9 open question).
func genCompactClass(schedule domain.Schedule, rng *rand.Rand) (Move, domain.Schedule) {
	i := rng.Intn(len(schedule))
	classID := schedule[i].ClassID
	candidate := schedule.Clone()
	compactClassInPlace(candidate, classID)
	return Move{Kind: CompactClass, ClassID: classID}, candidate
}

func compactClassInPlace(schedule domain.Schedule, classID string) {
	for day := 0; day < domain.DaysPerWeek; day++ {
		var indices []int
		for idx, lesson := range schedule {
			if lesson.ClassID == classID && lesson.Slot.Day == day {
				indices = append(indices, idx)
			}
		}
		if len(indices) < 2 {
			continue
		}
		sort.Slice(indices, func(a, b int) bool {
			return schedule[indices[a]].Slot.Period < schedule[indices[b]].Slot.Period
		})
		period := schedule[indices[0]].Slot.Period
		for _, idx := range indices {
			schedule[idx].Slot = domain.Slot{Day: day, Period: period}
			period++
		}
	}
}
