// Package journal appends drill sessions to a human-readable text log.
package journal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultPath is the log file used when none is configured.
const DefaultPath = "Mental Math.txt"

// TimestampLayout formats session header timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

const answerPrefix = "The answer is "

// File appends to a single named text file. Every write opens the file,
// writes, flushes and closes it again, so a failed append never leaves a
// handle behind and never blocks later appends.
type File struct {
	path string
}

// NewFile returns a journal for path.
func NewFile(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is empty")
	}
	return &File{path: path}, nil
}

// Path returns the file the journal appends to.
func (f *File) Path() string {
	return f.path
}

// WriteHeader appends the session header line for at.
func (f *File) WriteHeader(at time.Time) error {
	return f.append(func(w *bufio.Writer) error {
		_, err := fmt.Fprintf(w, "\n%s\n", FormatHeader(at))
		return err
	})
}

// WriteEntry appends one run block: the run index, each question on its own
// line, then the final answer.
func (f *File) WriteEntry(runIndex int, questions []int, finalAnswer int) error {
	return f.append(func(w *bufio.Writer) error {
		if _, err := fmt.Fprintf(w, "\n%d.\n", runIndex); err != nil {
			return err
		}
		for _, q := range questions {
			if _, err := fmt.Fprintf(w, "\n%d\n", q); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "\n%s%d\n", answerPrefix, finalAnswer)
		return err
	})
}

// FormatHeader renders the header line without surrounding newlines.
func FormatHeader(at time.Time) string {
	return "=====" + at.Format(TimestampLayout) + "====="
}

// append runs write against a freshly opened append-only handle.
func (f *File) append(write func(w *bufio.Writer) error) (err error) {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", f.path, closeErr))
		}
	}()

	w := bufio.NewWriter(file)
	if err := write(w); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", f.path, err)
	}
	return nil
}
