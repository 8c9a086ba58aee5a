package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"school-timetabler/internal/domain"
	"school-timetabler/internal/solver"
)

// gapsCmd solves the given (or sample) input and reports each
// teacher's idle-period gaps per day, the new-domain analogue of the
// teacher's old per-day tutorial-distribution script.
func gapsCmd(args []string) {
	fs := flag.NewFlagSet("gaps", flag.ExitOnError)
	jsonPath := fs.String("input", "", "path to a JSON input document (defaults to the bundled sample)")
	fs.Parse(args)

	in, err := loadInput(*jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	cfg := solver.DefaultOrchestratorConfig()
	result := solver.Solve(in, cfg, nil)
	if result.Err != nil {
		fmt.Fprintf(os.Stderr, "❌ solve failed: %v\n", result.Err)
		os.Exit(1)
	}

	fmt.Println("🔍 Teacher day-gaps in the solved schedule")
	fmt.Println("================================================================================")

	gapsByTeacher := map[string]int{}
	for _, teacher := range in.Teachers {
		total := 0
		for day := 0; day < domain.DaysPerWeek; day++ {
			total += dayGapCount(teacher.ID, day, result.Schedule)
		}
		gapsByTeacher[teacher.ID] = total
	}

	ids := make([]string, 0, len(gapsByTeacher))
	for id := range gapsByTeacher {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return gapsByTeacher[ids[i]] > gapsByTeacher[ids[j]] })

	for _, id := range ids {
		marker := ""
		if gapsByTeacher[id] > 0 {
			marker = "  ⚠️"
		}
		fmt.Printf("%-20s %d gap period(s)%s\n", id, gapsByTeacher[id], marker)
	}

	fmt.Printf("\nFinal cost: %.2f (best %.2f)\n", result.Statistics.SAStats.FinalCost, result.Statistics.SAStats.BestCost)
}

// dayGapCount counts idle periods strictly between a teacher's first
// and last taught period of the day.
func dayGapCount(teacherID string, day int, schedule domain.Schedule) int {
	taught := make([]bool, domain.PeriodsPerDay)
	any := false
	for _, lesson := range schedule {
		if lesson.TeacherID != teacherID || lesson.Slot.Day != day {
			continue
		}
		taught[lesson.Slot.Period] = true
		any = true
	}
	if !any {
		return 0
	}

	first, last := -1, -1
	for p, t := range taught {
		if t {
			if first == -1 {
				first = p
			}
			last = p
		}
	}

	gaps := 0
	for p := first; p <= last; p++ {
		if !taught[p] {
			gaps++
		}
	}
	return gaps
}
