package drill

// Sequence is one generated drill. Questions[0] is the unsigned seed value;
// every later question is a signed delta. Answers[k] is the running total
// after applying Questions[k+1].
type Sequence struct {
	Questions []int `json:"questions"`
	Answers   []int `json:"answers"`
}

// Seed returns the first question, or 0 for an empty sequence.
func (s Sequence) Seed() int {
	if len(s.Questions) == 0 {
		return 0
	}
	return s.Questions[0]
}

// FinalAnswer returns the last running total. A sequence with no steps
// answers with its seed.
func (s Sequence) FinalAnswer() int {
	if len(s.Answers) == 0 {
		return s.Seed()
	}
	return s.Answers[len(s.Answers)-1]
}
