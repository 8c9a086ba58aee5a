// Package availability builds the immutable lookup the rest of the
// solver uses to answer "may this teacher teach at this slot?" in O(1)
// (spec.md §4.1's Feasibility Oracle consumes it for H1).
package availability

import "school-timetabler/internal/domain"

// Index is a set lookup of (teacher, day, period) triples plus a
// per-teacher total slot count. It is built once from the raw
// AvailabilitySet and never mutated afterwards.
type Index struct {
	byTeacherSlot map[string]map[domain.Slot]bool
	totals        map[string]int
}

// Build constructs an Index from the raw availability set.
func Build(set domain.AvailabilitySet) *Index {
	idx := &Index{
		byTeacherSlot: make(map[string]map[domain.Slot]bool),
		totals:        make(map[string]int),
	}
	for _, entry := range set {
		slots, ok := idx.byTeacherSlot[entry.TeacherID]
		if !ok {
			slots = make(map[domain.Slot]bool)
			idx.byTeacherSlot[entry.TeacherID] = slots
		}
		if !slots[entry.Slot] {
			slots[entry.Slot] = true
			idx.totals[entry.TeacherID]++
		}
	}
	return idx
}

// Available reports whether teacherID declared themselves free at slot.
func (idx *Index) Available(teacherID string, slot domain.Slot) bool {
	slots, ok := idx.byTeacherSlot[teacherID]
	if !ok {
		return false
	}
	return slots[slot]
}

// TotalAvailable is the cardinality of a teacher's availability subset.
// Zero for a teacher who declared no available slots, which the
// constructive solver's criticality formula treats as infinite
// criticality (spec.md §4.2).
func (idx *Index) TotalAvailable(teacherID string) int {
	return idx.totals[teacherID]
}

// Slots returns every slot a teacher is available at, in ascending
// order, or nil for a teacher with no declared availability.
func (idx *Index) Slots(teacherID string) []domain.Slot {
	slots, ok := idx.byTeacherSlot[teacherID]
	if !ok {
		return nil
	}
	out := make([]domain.Slot, 0, len(slots))
	for s := range slots {
		out = append(out, s)
	}
	sortSlots(out)
	return out
}

func sortSlots(slots []domain.Slot) {
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && slots[j].Before(slots[j-1]); j-- {
			slots[j], slots[j-1] = slots[j-1], slots[j]
		}
	}
}
