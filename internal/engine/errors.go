package engine

import (
	"fmt"
	"strings"
)

// Violation is one structural, range, or cross-field problem found by the
// validator. Field is the JSON path of the offending value.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// ValidationError carries the complete list of violations found in one
// validation pass. The validator never stops at the first problem.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return fmt.Sprintf("input validation failed (%d violations): %s",
		len(e.Violations), strings.Join(msgs, "; "))
}

// ContractViolation marks a programming error in how the engine was wired,
// such as invoking the farm module on a non-agricultural property. It is
// raised via panic: a correctly assembled orchestrator can never trigger it,
// and it must fail loudly in development rather than surface as a quiet
// zero.
type ContractViolation struct {
	Msg string
}

func (e *ContractViolation) Error() string {
	return "contract violation: " + e.Msg
}
