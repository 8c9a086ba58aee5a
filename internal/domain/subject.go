package domain

// Subject is a taught discipline. RequiredLessons maps a class ID to
// the number of weekly lessons that class must receive in this
// subject. PreferredPeriods, if non-empty, is consumed only by the
// soft-cost evaluator (P5): lessons scheduled outside this set are
// penalized.
type Subject struct {
	ID               string
	Name             string
	RequiredLessons  map[string]int
	PreferredPeriods map[int]bool
}

// TotalWeeklyLoad sums RequiredLessons across every class — used by
// the constructive solver's tie-breaking rule and by P4's "heavily
// loaded subject" bonus.
func (s Subject) TotalWeeklyLoad() int {
	total := 0
	for _, n := range s.RequiredLessons {
		total += n
	}
	return total
}

// PrefersPeriod reports whether p is in the subject's preferred set.
// A subject with no preferences prefers every period (no penalty).
func (s Subject) PrefersPeriod(p int) bool {
	if len(s.PreferredPeriods) == 0 {
		return true
	}
	return s.PreferredPeriods[p]
}

// HasPreferences reports whether the subject declared any preferred
// periods at all.
func (s Subject) HasPreferences() bool {
	return len(s.PreferredPeriods) > 0
}
