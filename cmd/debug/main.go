// Command timetable-debug bundles small diagnostic utilities against a
// timetabling input or solved schedule, in the spirit of the teacher's
// original cmd/debug analysis scripts.
package main

import (
	"fmt"
	"os"

	"school-timetabler/internal/data"
	"school-timetabler/internal/domain"
	"school-timetabler/internal/loader"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: timetable-debug <criticality|gaps> [flags]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "criticality":
		criticalityCmd(os.Args[2:])
	case "gaps":
		gapsCmd(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		os.Exit(1)
	}
}

// loadInput reads a JSON input document, or falls back to the bundled
// sample dataset when jsonPath is empty.
func loadInput(jsonPath string) (domain.Input, error) {
	if jsonPath == "" {
		return data.Sample(), nil
	}
	return loader.LoadJSON(jsonPath)
}
