package session

import "time"

// Results summarizes one session: its plan, every generated run and how
// many log appends failed.
type Results struct {
	SessionID     string      `json:"session_id"`
	StartedAt     time.Time   `json:"started_at"`
	FinishedAt    time.Time   `json:"finished_at"`
	Plan          Plan        `json:"plan"`
	Runs          []RunResult `json:"runs"`
	WriteFailures int         `json:"write_failures"`
}

// RunResult records one generated sequence and any error from appending it.
type RunResult struct {
	Index       int    `json:"index"`
	Questions   []int  `json:"questions"`
	Answers     []int  `json:"answers"`
	FinalAnswer int    `json:"final_answer"`
	WriteError  string `json:"write_error,omitempty"`
}
