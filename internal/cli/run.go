package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"mentalmath/internal/config"
	"mentalmath/internal/drill"
	"mentalmath/internal/journal"
	"mentalmath/internal/session"
	"mentalmath/internal/spec"
)

var runSession = session.Run

// newSeed draws a session seed when none is configured. It spans the same
// uint64 range that --seed accepts.
var newSeed = rand.Uint64

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		specPath := fs.String("spec", "", "Path to config file (default: search for .mentalmath/config.yml)")
		runs := fs.Int("runs", config.DefaultRuns, "Sequences to generate")
		steps := fs.Int("steps", config.DefaultSteps, "Steps per sequence after the seed number")
		digits := fs.Int("digits", config.DefaultDigits, "Decimal digits per drawn number")
		operation := fs.String("operation", string(config.DefaultOperation), "add, subtract or both")
		logFile := fs.String("log-file", journal.DefaultPath, "Text file the drills are appended to")
		seed := fs.Uint64("seed", 0, "Random seed (0 draws a fresh one)")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		logLevel := fs.String("log-level", config.DefaultLogLevel, "debug, info, warn or error")
		logFormat := fs.String("log-format", config.DefaultLogFormat, "text or json")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, _, err := loadRunConfig(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		// Explicit flags win over the config file.
		explicit := map[string]bool{}
		fs.Visit(func(f *flag.Flag) {
			explicit[f.Name] = true
			switch f.Name {
			case "runs":
				cfg.Runs = *runs
			case "steps":
				cfg.Steps = steps
			case "digits":
				cfg.Digits = *digits
			case "operation":
				cfg.Operation = *operation
			case "log-file":
				cfg.LogFile = *logFile
			case "seed":
				cfg.Seed = *seed
			case "no-color":
				cfg.NoColor = *noColor
			case "log-level":
				cfg.LogLevel = *logLevel
			case "log-format":
				cfg.LogFormat = *logFormat
			}
		})
		config.Normalize(&cfg)
		// An explicit zero flag is kept so that --runs 0 and --digits 0 are
		// rejected instead of falling back to the defaults.
		if explicit["runs"] {
			cfg.Runs = *runs
		}
		if explicit["digits"] {
			cfg.Digits = *digits
		}
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid options:\n%v\n", err)
			return ExitUsage
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return executeRun(ctx, cfg, stdout, stderr)
	}
}

// executeRun wires the generator, journal and logger for a validated config.
func executeRun(ctx context.Context, cfg spec.Config, stdout, stderr io.Writer) int {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	seed := cfg.Seed
	if seed == 0 {
		seed = newSeed()
	}
	generator, err := drill.NewGenerator(drill.NewSource(seed))
	if err != nil {
		fmt.Fprintf(stderr, "Run failed: %v\n", err)
		return ExitError
	}
	sink, err := journal.NewFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "Run failed: %v\n", err)
		return ExitError
	}
	logger.Debug("drill source seeded", "seed", seed, "log_file", sink.Path())

	results, err := runSession(ctx, session.RunParams{
		Plan: session.Plan{
			Runs:      cfg.Runs,
			Steps:     cfg.StepCount(),
			Digits:    cfg.Digits,
			Operation: drill.Operation(cfg.Operation),
		},
		Generator: generator,
		Sink:      sink,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Color:     useColor(cfg.NoColor, stdout),
	})
	if err != nil {
		fmt.Fprintf(stderr, "Run failed: %v\n", err)
		return ExitError
	}

	if results.WriteFailures > 0 {
		fmt.Fprintf(stderr, "%d of %d log appends to %s failed\n", results.WriteFailures, len(results.Runs)+1, sink.Path())
	}
	fmt.Fprintf(stdout, "Session %s completed (%d runs, seed %d)\n", results.SessionID, len(results.Runs), seed)
	return ExitOK
}
