// Package session drives repeated drill generation and hands each result to
// a log sink and the console.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Run generates params.Plan.Runs sequences, appending each to the sink and
// printing a progress line. Sink failures are reported and the session moves
// on to the next run; generator errors abort the session.
func Run(ctx context.Context, params RunParams) (Results, error) {
	if params.Generator == nil {
		return Results{}, fmt.Errorf("sequence generator is required")
	}
	if params.Sink == nil {
		return Results{}, fmt.Errorf("log sink is required")
	}
	plan := params.Plan
	if plan.Runs < 0 {
		return Results{}, fmt.Errorf("run count must be >= 0, got %d", plan.Runs)
	}

	stdout := params.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := params.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}

	results := Results{
		SessionID: ensureSessionID(params.Deps.SessionID),
		StartedAt: now(),
		Plan:      plan,
		Runs:      make([]RunResult, 0, plan.Runs),
	}
	logger = logger.With("session_id", results.SessionID)
	logger.Info("session started",
		"runs", plan.Runs,
		"steps", plan.Steps,
		"digits", plan.Digits,
		"operation", string(plan.Operation),
	)

	if err := params.Sink.WriteHeader(results.StartedAt); err != nil {
		results.WriteFailures++
		reportWriteFailure(stderr, logger, "header", 0, err)
	}

	for i := 1; i <= plan.Runs; i++ {
		if err := ctx.Err(); err != nil {
			results.FinishedAt = now()
			logger.Warn("session cancelled", "completed_runs", len(results.Runs), "error", err)
			return results, err
		}

		seq, err := params.Generator.Generate(plan.Steps, plan.Digits, plan.Operation)
		if err != nil {
			results.FinishedAt = now()
			return results, fmt.Errorf("generate run %d: %w", i, err)
		}

		run := RunResult{
			Index:       i,
			Questions:   seq.Questions,
			Answers:     seq.Answers,
			FinalAnswer: seq.FinalAnswer(),
		}
		if err := params.Sink.WriteEntry(i, seq.Questions, run.FinalAnswer); err != nil {
			results.WriteFailures++
			run.WriteError = err.Error()
			reportWriteFailure(stderr, logger, "entry", i, err)
		}
		fmt.Fprintln(stdout, FormatProgress(seq, params.Color))
		logger.Debug("run generated", "run", i, "final_answer", run.FinalAnswer)
		results.Runs = append(results.Runs, run)
	}

	results.FinishedAt = now()
	logger.Info("session finished",
		"runs", len(results.Runs),
		"write_failures", results.WriteFailures,
		"duration", results.FinishedAt.Sub(results.StartedAt),
	)
	return results, nil
}

// reportWriteFailure prints a console message and logs the failed append.
func reportWriteFailure(stderr io.Writer, logger *slog.Logger, what string, run int, err error) {
	if run > 0 {
		fmt.Fprintf(stderr, "Error while writing run %d to log: %v\n", run, err)
	} else {
		fmt.Fprintf(stderr, "Error while writing %s to log: %v\n", what, err)
	}
	logger.Error("log append failed", "part", what, "run", run, "error", err)
}
