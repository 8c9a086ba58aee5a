package loader

import (
	"fmt"
	"strings"

	"school-timetabler/internal/availability"
	"school-timetabler/internal/domain"
)

// ValidationError collects every problem found in an Input in one
// pass, so a caller can fix them all at once instead of one at a time.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("found %d validation error(s):\n- %s", len(v.Errors), strings.Join(v.Errors, "\n- "))
}

// Validate checks an Input's internal consistency before it reaches
// the solver: referential integrity between requests and their
// teachers/subjects/classes, room assignment completeness, and a
// bin-packing-style check that each teacher's assigned load actually
// fits inside their declared availability.
func Validate(in domain.Input) error {
	var errs []string

	if len(in.Teachers) == 0 {
		errs = append(errs, "no teachers loaded")
	}
	if len(in.Rooms) == 0 {
		errs = append(errs, "no rooms loaded")
	}
	if len(in.Classes) == 0 {
		errs = append(errs, "no classes loaded")
	}
	if len(in.Requests) == 0 {
		errs = append(errs, "no lesson requests loaded")
	}

	teachers := in.TeacherByID()
	subjects := in.SubjectByID()
	classes := in.ClassByID()

	for i, r := range in.Requests {
		if _, ok := teachers[r.TeacherID]; !ok {
			errs = append(errs, fmt.Sprintf("request %d: unknown teacher %q", i, r.TeacherID))
		}
		if _, ok := subjects[r.SubjectID]; !ok {
			errs = append(errs, fmt.Sprintf("request %d: unknown subject %q", i, r.SubjectID))
		}
		if _, ok := classes[r.ClassID]; !ok {
			errs = append(errs, fmt.Sprintf("request %d: unknown class %q", i, r.ClassID))
		}
		if _, ok := in.ClassToRoom[r.ClassID]; !ok {
			errs = append(errs, fmt.Sprintf("request %d: class %q has no assigned room", i, r.ClassID))
		}
	}

	avail := availability.Build(in.Availability)
	load := make(map[string]int)
	for _, r := range in.Requests {
		load[r.TeacherID]++
	}
	for teacherID, required := range load {
		if got := avail.TotalAvailable(teacherID); got < required {
			name := teacherID
			if t, ok := teachers[teacherID]; ok {
				name = t.Name
			}
			errs = append(errs, fmt.Sprintf(
				"physically impossible: teacher %q is assigned %d lessons but only has %d available slots",
				name, required, got))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
