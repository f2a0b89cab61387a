package session

import (
	"errors"
	"time"

	"mentalmath/internal/drill"
	"mentalmath/internal/testutil"
)

type sinkEntry struct {
	Run         int
	Questions   []int
	FinalAnswer int
}

// recordingSink captures writes and fails the runs listed in failRuns.
type recordingSink struct {
	headers    []time.Time
	entries    []sinkEntry
	failHeader bool
	failRuns   map[int]bool
}

var errSinkUnavailable = errors.New("sink unavailable")

func (s *recordingSink) WriteHeader(at time.Time) error {
	if s.failHeader {
		return errSinkUnavailable
	}
	s.headers = append(s.headers, at)
	return nil
}

func (s *recordingSink) WriteEntry(runIndex int, questions []int, finalAnswer int) error {
	if s.failRuns[runIndex] {
		return errSinkUnavailable
	}
	s.entries = append(s.entries, sinkEntry{Run: runIndex, Questions: questions, FinalAnswer: finalAnswer})
	return nil
}

// fixedGenerator returns canned sequences in order.
type fixedGenerator struct {
	sequences []drill.Sequence
	err       error
	calls     int
}

func (g *fixedGenerator) Generate(count, digits int, op drill.Operation) (drill.Sequence, error) {
	if g.err != nil {
		return drill.Sequence{}, g.err
	}
	seq := g.sequences[g.calls%len(g.sequences)]
	g.calls++
	return seq, nil
}

func fixedClock() func() time.Time {
	return testutil.NewStepClock(time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), time.Second).Now
}
