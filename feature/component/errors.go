package component

import "fmt"

// InvalidFieldError reports an input field that was read but cannot be used,
// such as an unsupported propeller blade count.
type InvalidFieldError struct {
	Domain string
	Field  string
	Value  any
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s field %q (%v): %s", e.Domain, e.Field, e.Value, e.Reason)
}
