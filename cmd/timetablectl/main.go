// Command timetablectl runs the timetabling solver from the command
// line, grounded on russross-schedule's cli.go flag-per-subcommand
// layout.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"school-timetabler/internal/config"
	"school-timetabler/internal/data"
	"school-timetabler/internal/domain"
	"school-timetabler/internal/loader"
	"school-timetabler/internal/report"
	"school-timetabler/internal/solver"
	"school-timetabler/pkg/logging"
)

var (
	inputPath  string
	format     = "console"
	outputPath string
	optimize   = true
	seed       int64
	useSeed    bool
	maxIter    int
	maxAttempts int
)

func main() {
	root := &cobra.Command{
		Use:   "timetablectl",
		Short: "Weekly school timetable solver",
		Long:  "Builds and optimizes a weekly class timetable from a JSON input document.",
	}

	cmdSolve := &cobra.Command{
		Use:   "solve",
		Short: "solve a timetabling input and print or export the schedule",
		RunE:  runSolve,
	}
	cmdSolve.Flags().StringVarP(&inputPath, "input", "i", "", "path to a JSON input document (defaults to the bundled sample)")
	cmdSolve.Flags().StringVarP(&format, "format", "f", format, "output format: console, csv, json, pdf")
	cmdSolve.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (defaults to stdout for console/csv/json)")
	cmdSolve.Flags().BoolVar(&optimize, "optimize", optimize, "run simulated annealing after construction")
	cmdSolve.Flags().Int64Var(&seed, "seed", 0, "deterministic RNG seed (0 uses a random seed)")
	cmdSolve.Flags().BoolVar(&useSeed, "use-seed", false, "treat --seed as authoritative even when it is 0")
	cmdSolve.Flags().IntVar(&maxIter, "sa-iterations", 0, "override the simulated annealing iteration cap (0 uses the configured default)")
	cmdSolve.Flags().IntVar(&maxAttempts, "max-attempts", 0, "override the constructive solver's retry cap (0 uses the configured default)")
	root.AddCommand(cmdSolve)

	cmdInspect := &cobra.Command{
		Use:   "inspect",
		Short: "load and validate an input document without solving it",
		RunE:  runInspect,
	}
	cmdInspect.Flags().StringVarP(&inputPath, "input", "i", "", "path to a JSON input document (defaults to the bundled sample)")
	root.AddCommand(cmdInspect)

	cmdReport := &cobra.Command{
		Use:   "report",
		Short: "re-render a previously solved JSON document into another format",
		RunE:  runReport,
	}
	cmdReport.Flags().StringVarP(&inputPath, "result", "r", "", "path to a JSON document written by 'solve --format json' (required)")
	cmdReport.Flags().StringVarP(&format, "format", "f", "console", "output format: console, csv, pdf")
	cmdReport.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (defaults to stdout)")
	root.AddCommand(cmdReport)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadInput() (domain.Input, error) {
	if inputPath == "" {
		return data.Sample(), nil
	}
	return loader.LoadJSON(inputPath)
}

func runInspect(cmd *cobra.Command, args []string) error {
	in, err := loadInput()
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	if err := loader.Validate(in); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	fmt.Printf("✅ valid input: %d teachers, %d classes, %d rooms, %d requests\n",
		len(in.Teachers), len(in.Classes), len(in.Rooms), len(in.Requests))
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	if inputPath == "" {
		return fmt.Errorf("--result is required")
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open result document: %w", err)
	}
	defer f.Close()

	doc, err := report.ReadDocument(f)
	if err != nil {
		return fmt.Errorf("parse result document: %w", err)
	}
	rows := doc.Rows()

	out := os.Stdout
	if outputPath != "" {
		created, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer created.Close()
		out = created
	}

	switch format {
	case "console":
		report.WriteConsoleRows(out, rows)
		return nil
	case "csv":
		return report.WriteCSVRows(out, rows)
	case "pdf":
		return report.WritePDFRows(out, rows)
	default:
		return fmt.Errorf("unknown format %q (report supports console, csv, pdf)", format)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := loadInput()
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	if err := loader.Validate(in); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sugar, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer sugar.Sync()

	orchCfg := solver.OrchestratorConfig{
		MaxAttempts:  cfg.MaxAttempts,
		Optimize:     optimize,
		Constructive: cfg.Constructive,
		SA:           cfg.SA,
		Logger:       logging.SolverAdapter{Sugar: sugar},
	}
	if useSeed || seed != 0 {
		s := seed
		orchCfg.Seed = &s
	}
	if maxAttempts > 0 {
		orchCfg.MaxAttempts = maxAttempts
	}
	if maxIter > 0 {
		orchCfg.SA.MaxIter = maxIter
	}

	fmt.Println("⏳ [solve] constructing feasible schedule...")
	result := solver.Solve(in, orchCfg, nil)
	if result.Err != nil {
		return fmt.Errorf("solve failed: %w", result.Err)
	}
	fmt.Printf("✅ [solve] done: %d lessons placed\n", len(result.Schedule))

	return emit(result.Schedule, in, result.Statistics)
}

func emit(schedule domain.Schedule, in domain.Input, stats solver.Statistics) error {
	w := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		return writeFormat(f, schedule, in, stats)
	}
	return writeFormat(w, schedule, in, stats)
}

func writeFormat(w *os.File, schedule domain.Schedule, in domain.Input, stats solver.Statistics) error {
	switch format {
	case "console":
		report.WriteConsole(w, schedule, in)
		return nil
	case "csv":
		return report.WriteCSV(w, schedule, in)
	case "json":
		return report.WriteJSON(w, schedule, in, stats, time.Now())
	case "pdf":
		return report.WritePDF(w, schedule, in)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
