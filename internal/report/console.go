package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"school-timetabler/internal/domain"
)

// WriteConsole renders a tab-aligned schedule table, one lesson per
// line, in the teacher's cmd/debug emoji-banner style. Column
// alignment uses text/tabwriter — a plain table has no third-party
// seam worth reaching for.
func WriteConsole(w io.Writer, schedule domain.Schedule, in domain.Input) {
	WriteConsoleRows(w, Sorted(schedule, in))
}

// WriteConsoleRows renders already-flattened rows, letting
// cmd/timetablectl's report subcommand re-render a previously solved
// JSON document without re-solving.
func WriteConsoleRows(w io.Writer, rows []Row) {
	fmt.Fprintf(w, "🗓️  Timetable — %d lessons\n\n", len(rows))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tPERIOD\tCLASS\tSUBJECT\tTEACHER\tROOM")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", row.Day, row.Period+1, row.Class, row.Subject, row.Teacher, row.Room)
	}
	tw.Flush()
}
