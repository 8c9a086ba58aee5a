package solver

import (
	"math"
	"math/rand"
	"sort"

	"school-timetabler/internal/availability"
	"school-timetabler/internal/domain"
)

// criticalityBand is the width within which requests are shuffled
// randomly before placement, diversifying restarts (spec.md §4.2).
const criticalityBand = 0.1

type rankedRequest struct {
	req         domain.LessonRequest
	criticality float64
	avail       int
	subjectLoad int
}

// Criticality computes need(t)/avail(t) for every teacher mentioned in
// requests. A teacher with zero availability has infinite criticality.
func Criticality(requests []domain.LessonRequest, avail *availability.Index) map[string]float64 {
	need := make(map[string]int)
	for _, r := range requests {
		need[r.TeacherID]++
	}
	crit := make(map[string]float64, len(need))
	for teacherID, n := range need {
		a := avail.TotalAvailable(teacherID)
		if a == 0 {
			crit[teacherID] = math.Inf(1)
			continue
		}
		crit[teacherID] = float64(n) / float64(a)
	}
	return crit
}

// OrderRequests sorts requests by descending criticality, then
// ascending teacher availability, then descending subject total load,
// with same-band requests shuffled for restart diversity (spec.md
// §4.2 step 2).
func OrderRequests(requests []domain.LessonRequest, avail *availability.Index, subjects map[string]domain.Subject, rng *rand.Rand) []rankedRequest {
	crit := Criticality(requests, avail)

	ranked := make([]rankedRequest, len(requests))
	for i, r := range requests {
		ranked[i] = rankedRequest{
			req:         r,
			criticality: crit[r.TeacherID],
			avail:       avail.TotalAvailable(r.TeacherID),
			subjectLoad: subjects[r.SubjectID].TotalWeeklyLoad(),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.criticality != b.criticality {
			return a.criticality > b.criticality
		}
		if a.avail != b.avail {
			return a.avail < b.avail
		}
		return a.subjectLoad > b.subjectLoad
	})

	shuffleWithinBands(ranked, rng)
	return ranked
}

// shuffleWithinBands randomly permutes runs of requests whose
// criticality falls within the same criticalityBand-wide window,
// preserving the overall descending order across bands.
func shuffleWithinBands(ranked []rankedRequest, rng *rand.Rand) {
	i := 0
	for i < len(ranked) {
		j := i + 1
		bandFloor := ranked[i].criticality - criticalityBand
		for j < len(ranked) && ranked[j].criticality >= bandFloor {
			j++
		}
		rng.Shuffle(j-i, func(a, b int) {
			ranked[i+a], ranked[i+b] = ranked[i+b], ranked[i+a]
		})
		i = j
	}
}

// BuildResult is the outcome of one Constructive Solver attempt.
type BuildResult struct {
	Schedule domain.Schedule
	Err      error // *InfeasibleAttempt or *ConfigurationError
}

// Build runs the randomized constructive heuristic once: order
// requests by criticality, greedily place each in its best-scoring
// still-legal slot, and fail the whole attempt the moment one request
// has no legal slot (spec.md §4.2).
func Build(in domain.Input, avail *availability.Index, cfg ConstructiveConfig, rng *rand.Rand) BuildResult {
	oracle := NewOracle(avail)
	roomShared := make(map[string]bool, len(in.Rooms))
	for _, r := range in.Rooms {
		roomShared[r.ID] = r.Shared
	}
	subjects := in.SubjectByID()

	ranked := OrderRequests(in.Requests, avail, subjects, rng)

	schedule := make(domain.Schedule, 0, len(in.Requests))

	for _, rr := range ranked {
		roomID, ok := in.ClassToRoom[rr.req.ClassID]
		if !ok {
			return BuildResult{Err: &ConfigurationError{
				Reason: "class " + rr.req.ClassID + " has no dedicated room",
			}}
		}
		shared := roomShared[roomID]

		var candidates []domain.Slot
		for _, slot := range domain.AllSlots() {
			if oracle.Legal(rr.req.ClassID, rr.req.TeacherID, roomID, slot, shared, schedule) {
				candidates = append(candidates, slot)
			}
		}

		if len(candidates) == 0 {
			return BuildResult{Err: &InfeasibleAttempt{
				Request:         rr.req,
				CandidatesTried: domain.TotalSlotCount,
			}}
		}

		best := bestCandidate(candidates, rr.req, schedule, subjects[rr.req.SubjectID], avail, cfg)
		schedule = append(schedule, domain.FromRequest(rr.req, roomID, best))
		oracle.FlushCache()
	}

	return BuildResult{Schedule: schedule}
}

// bestCandidate scores every legal candidate slot and returns the
// highest-scoring one, ties broken by slot order for determinism given
// a fixed seed (spec.md §4.2 step 3).
func bestCandidate(candidates []domain.Slot, req domain.LessonRequest, schedule domain.Schedule, subject domain.Subject, avail *availability.Index, cfg ConstructiveConfig) domain.Slot {
	bestSlot := candidates[0]
	bestScore := math.Inf(-1)

	for _, slot := range candidates {
		score := scoreSlot(slot, req, schedule, subject, avail, cfg)
		if score > bestScore {
			bestScore = score
			bestSlot = slot
		}
	}
	return bestSlot
}

func scoreSlot(slot domain.Slot, req domain.LessonRequest, schedule domain.Schedule, subject domain.Subject, avail *availability.Index, cfg ConstructiveConfig) float64 {
	score := 100.0

	if cfg.AvoidExtremes && slot.IsExtremePeriod() {
		score -= 20
	}

	if cfg.DistributeUniformly {
		adjacentSameSubject := 0
		for _, lesson := range schedule {
			if lesson.ClassID == req.ClassID && lesson.SubjectID == req.SubjectID && lesson.Slot.Day == slot.Day {
				if abs(lesson.Slot.Period-slot.Period) == 1 {
					adjacentSameSubject++
				}
			}
		}
		score += 30 * float64(adjacentSameSubject)

		classLoadToday := 0
		for _, lesson := range schedule {
			if lesson.ClassID == req.ClassID && lesson.Slot.Day == slot.Day {
				classLoadToday++
			}
		}
		score -= 5 * float64(classLoadToday)
	}

	if cfg.PrioritizeMinGaps {
		score -= 25 * float64(deltaGaps(req.TeacherID, slot, schedule, avail))
	}

	_ = subject // reserved: preferred periods are an E-only concern (spec.md §4.2 note)
	return score
}

// deltaGaps is the increase in a teacher's P3 gap count caused by
// hypothetically inserting a lesson at slot, used by the constructive
// scoring function (spec.md §4.2 step 3, §4.4's gap definition).
func deltaGaps(teacherID string, slot domain.Slot, schedule domain.Schedule, avail *availability.Index) int {
	before := teacherGapsOnDay(teacherID, slot.Day, schedule)

	hypothetical := make(domain.Schedule, len(schedule)+1)
	copy(hypothetical, schedule)
	hypothetical[len(schedule)] = domain.PlacedLesson{TeacherID: teacherID, Slot: slot}

	after := teacherGapsOnDay(teacherID, slot.Day, hypothetical)
	delta := after - before
	if delta < 0 {
		delta = 0
	}
	return delta
}

func teacherGapsOnDay(teacherID string, day int, schedule domain.Schedule) int {
	var periods []int
	for _, lesson := range schedule {
		if lesson.TeacherID == teacherID && lesson.Slot.Day == day {
			periods = append(periods, lesson.Slot.Period)
		}
	}
	if len(periods) < 2 {
		return 0
	}
	sort.Ints(periods)
	gaps := 0
	for i := 1; i < len(periods); i++ {
		gaps += periods[i] - periods[i-1] - 1
	}
	return gaps
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
