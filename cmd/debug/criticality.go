package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"school-timetabler/internal/availability"
	"school-timetabler/internal/solver"
)

// criticalityCmd prints each teacher's need/avail ratio ahead of a
// solve, the same diagnostic the teacher's old semester-analysis
// script ran over its curriculum before attempting a coloring.
func criticalityCmd(args []string) {
	fs := flag.NewFlagSet("criticality", flag.ExitOnError)
	jsonPath := fs.String("input", "", "path to a JSON input document (defaults to the bundled sample)")
	fs.Parse(args)

	in, err := loadInput(*jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	avail := availability.Build(in.Availability)
	crit := solver.Criticality(in.Requests, avail)

	type row struct {
		teacherID string
		score     float64
	}
	rows := make([]row, 0, len(crit))
	for id, score := range crit {
		rows = append(rows, row{id, score})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].score > rows[j].score })

	fmt.Println("🔍 Teacher criticality (need / available slots)")
	fmt.Println("================================================================================")
	for _, r := range rows {
		note := ""
		if r.score > 1.0 {
			note = "  ⚠️  oversubscribed"
		}
		fmt.Printf("%-20s %.3f%s\n", r.teacherID, r.score, note)
	}
}
