package drill

import "fmt"

// scriptedSource replays fixed draws and records the ranges requested.
type scriptedSource struct {
	values []int
	calls  [][2]int
}

func (s *scriptedSource) IntRange(lo, hi int) int {
	s.calls = append(s.calls, [2]int{lo, hi})
	if len(s.values) == 0 {
		panic(fmt.Sprintf("scriptedSource exhausted at range [%d, %d]", lo, hi))
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func newScripted(values ...int) *scriptedSource {
	return &scriptedSource{values: values}
}
