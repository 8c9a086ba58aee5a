package domain

import "hash/fnv"

// Schedule is an unordered multiset of placed lessons. It is a thin
// slice wrapper so callers can range over it directly; equality of two
// schedules is defined by multiset membership, not slice order.
type Schedule []PlacedLesson

// Clone returns a deep copy whose backing array is independent of the
// receiver's — the neighborhood generator relies on this so a rejected
// move never mutates the schedule simulated annealing is still holding.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	copy(out, s)
	return out
}

// Len returns the number of placed lessons.
func (s Schedule) Len() int { return len(s) }

// Fingerprint is an order-independent hash of the schedule's content,
// used by the cost evaluator's memoization cache (spec.md §4.3). Two
// schedules containing the same lessons in different slice order
// fingerprint identically, which is the point: cost must be a pure
// function of content, not placement order (invariant I2).
func (s Schedule) Fingerprint() uint64 {
	var acc uint64
	h := fnv.New64a()
	for _, lesson := range s {
		h.Reset()
		_, _ = h.Write([]byte(lesson.TeacherID))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(lesson.SubjectID))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(lesson.ClassID))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(lesson.RoomID))
		_, _ = h.Write([]byte{0, byte(lesson.Slot.Day), byte(lesson.Slot.Period)})
		acc ^= h.Sum64()
	}
	return acc
}

// CountFor returns how many placed lessons match (classID, subjectID) —
// used to check hard constraint H5 (demand) and by the soft-cost
// evaluator.
func (s Schedule) CountFor(classID, subjectID string) int {
	n := 0
	for _, lesson := range s {
		if lesson.ClassID == classID && lesson.SubjectID == subjectID {
			n++
		}
	}
	return n
}

// AtSlot returns every lesson occupying the given slot.
func (s Schedule) AtSlot(slot Slot) []PlacedLesson {
	var out []PlacedLesson
	for _, lesson := range s {
		if lesson.Slot == slot {
			out = append(out, lesson)
		}
	}
	return out
}
