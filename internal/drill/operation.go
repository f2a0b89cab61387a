package drill

import (
	"fmt"
	"strings"
)

// Operation selects which step directions a sequence may take.
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationBoth     Operation = "both"
)

// Operations lists the canonical operation names.
var Operations = []Operation{OperationAdd, OperationSubtract, OperationBoth}

// ParseOperation normalizes an operation name. The older "plus" and "minus"
// spellings are accepted as aliases.
func ParseOperation(value string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "add", "plus":
		return OperationAdd, nil
	case "subtract", "minus":
		return OperationSubtract, nil
	case "both":
		return OperationBoth, nil
	default:
		return "", fmt.Errorf("%w %q (expected add|subtract|both)", ErrInvalidOperation, value)
	}
}

// Valid reports whether op is one of the canonical operations.
func (op Operation) Valid() bool {
	switch op {
	case OperationAdd, OperationSubtract, OperationBoth:
		return true
	default:
		return false
	}
}
