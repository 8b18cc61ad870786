package password

import (
	"errors"
	"fmt"
)

// Common analysis and generation errors
var (
	ErrInvalidInput        = errors.New("input is not a valid character sequence")
	ErrUnsatisfiablePolicy = errors.New("no policy-compliant password could be generated")
)

// PolicyError reports a conflicting or out-of-range rule parameter detected
// at policy construction time. Validate and Generate can assume a policy that
// constructed without error is well formed.
type PolicyError struct {
	Rule    RuleKind
	Message string
}

// Error implements the error interface.
func (e *PolicyError) Error() string {
	return fmt.Sprintf("policy rule %s: %s", e.Rule, e.Message)
}
