package session

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mentalmath/internal/drill"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// FormatProgress renders the console line for one generated sequence, e.g.
// "Questions: [5, 3, 2] / Answer: [8, 10]".
func FormatProgress(seq drill.Sequence, color bool) string {
	questions := formatInts(seq.Questions)
	answers := formatInts(seq.Answers)
	if !color {
		return "Questions: " + questions + " / Answer: " + answers
	}
	return labelStyle.Render("Questions:") + " " + questions +
		mutedStyle.Render(" / ") +
		labelStyle.Render("Answer:") + " " + answerStyle.Render(answers)
}

// formatInts renders values as a bracketed, comma separated list.
func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
