// Package drill generates addition and subtraction practice sequences as a
// random walk over a running total.
package drill

import "fmt"

// MaxDigits bounds the digit width so drawn magnitudes fit in an int64.
const MaxDigits = 18

// minDivisor is the smallest divisor used to bound a subtraction step.
const minDivisor = 2

// Generator builds question sequences from an injected random source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src Source) (*Generator, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return &Generator{src: src}, nil
}

// Number draws a value with exactly digits decimal digits.
func (g *Generator) Number(digits int) (int, error) {
	lo, hi, err := digitRange(digits)
	if err != nil {
		return 0, err
	}
	return g.src.IntRange(lo, hi), nil
}

// Generate produces a sequence of count steps after a seed of the given
// digit width. Subtraction never drives the running total below zero; a step
// that cannot subtract because the total is at most 1 emits a zero question
// and leaves the total unchanged.
func (g *Generator) Generate(count, digits int, op Operation) (Sequence, error) {
	if count < 0 {
		return Sequence{}, fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidCount, count)
	}
	if !op.Valid() {
		return Sequence{}, fmt.Errorf("%w %q", ErrInvalidOperation, op)
	}
	lo, hi, err := digitRange(digits)
	if err != nil {
		return Sequence{}, err
	}

	seed := g.src.IntRange(lo, hi)
	questions := make([]int, 0, count+1)
	answers := make([]int, 0, count)
	questions = append(questions, seed)
	total := seed

	for range count {
		if g.addStep(op) {
			next := g.src.IntRange(lo, hi)
			questions = append(questions, next)
			total += next
		} else if total > 1 {
			divisor := g.src.IntRange(minDivisor, max(minDivisor, count))
			next := g.src.IntRange(1, max(1, total/divisor))
			questions = append(questions, -next)
			total -= next
		} else {
			questions = append(questions, 0)
		}
		answers = append(answers, total)
	}

	return Sequence{Questions: questions, Answers: answers}, nil
}

// addStep picks the direction of the next step.
func (g *Generator) addStep(op Operation) bool {
	switch op {
	case OperationAdd:
		return true
	case OperationSubtract:
		return false
	default:
		return g.src.IntRange(0, 1) == 1
	}
}

// digitRange returns the inclusive bounds of numbers with digits digits.
func digitRange(digits int) (int, int, error) {
	if digits < 1 || digits > MaxDigits {
		return 0, 0, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidDigits, digits, MaxDigits)
	}
	lo := 1
	for i := 1; i < digits; i++ {
		lo *= 10
	}
	return lo, lo*10 - 1, nil
}
