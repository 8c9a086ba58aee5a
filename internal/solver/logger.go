package solver

// Logger is the minimal structured-logging surface the orchestrator
// logs through (SPEC_FULL.md §2 "Logging"). Keeping this as
// a small interface rather than importing zap directly means the core
// solver package stays free of any concrete logging backend; cmd/
// wires a zap-backed implementation in.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// NopLogger discards everything. It is the default when no Logger is
// supplied.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
