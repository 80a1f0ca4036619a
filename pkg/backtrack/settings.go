package backtrack

import (
	"io"
	"os"
	"time"
)

// SolveSettings configures a solve run. Build one with NewSolveSettings and
// chain the option methods:
//
//	settings := backtrack.NewSolveSettings().
//		Debug(true).
//		SolveSimple(false).
//		StepDelay(500 * time.Millisecond)
type SolveSettings struct {
	debug       bool
	solveSimple bool
	stepDelay   time.Duration
	trace       io.Writer
}

// NewSolveSettings returns settings with defaults: no debug output, forced
// propagation enabled, no step delay, trace to stdout.
func NewSolveSettings() *SolveSettings {
	return &SolveSettings{
		solveSimple: true,
		trace:       os.Stdout,
	}
}

// Debug toggles step traces on the trace writer.
func (s *SolveSettings) Debug(on bool) *SolveSettings {
	s.debug = on
	return s
}

// SolveSimple toggles running forced propagation to fixpoint before every
// branch attempt. Enabled by default; disabling it makes every assignment a
// guess, which is useful when watching the raw search.
func (s *SolveSettings) SolveSimple(on bool) *SolveSettings {
	s.solveSimple = on
	return s
}

// StepDelay pauses the solver for d after each emitted debug step, so a
// human can follow the trace. It blocks the calling goroutine and has no
// effect on search order. Ignored when debug is off.
func (s *SolveSettings) StepDelay(d time.Duration) *SolveSettings {
	s.stepDelay = d
	return s
}

// Trace redirects debug output. A nil w restores the default (stdout).
func (s *SolveSettings) Trace(w io.Writer) *SolveSettings {
	if w == nil {
		w = os.Stdout
	}
	s.trace = w
	return s
}
