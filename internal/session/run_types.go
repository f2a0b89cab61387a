package session

import (
	"io"
	"log/slog"
	"time"

	"mentalmath/internal/drill"
)

// SequenceGenerator produces one drill sequence per call.
type SequenceGenerator interface {
	Generate(count, digits int, op drill.Operation) (drill.Sequence, error)
}

// Sink receives the session header and one entry per run.
type Sink interface {
	WriteHeader(at time.Time) error
	WriteEntry(runIndex int, questions []int, finalAnswer int) error
}

// Plan describes how many sequences to generate and their shape.
type Plan struct {
	Runs      int             `json:"runs"`
	Steps     int             `json:"steps"`
	Digits    int             `json:"digits"`
	Operation drill.Operation `json:"operation"`
}

// RunDependencies allows injecting clocks and id sources for a session.
type RunDependencies struct {
	SessionID func() string
	Now       func() time.Time
}

// RunParams configures a session invocation.
type RunParams struct {
	Plan      Plan
	Generator SequenceGenerator
	Sink      Sink
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Color     bool
	Deps      RunDependencies
}
