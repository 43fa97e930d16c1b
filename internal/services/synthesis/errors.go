package synthesis

import "fmt"

// InputError reports a condition value outside its declared range.
// Out-of-range inputs are rejected at the boundary, never clamped.
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
