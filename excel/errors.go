package excel

import "fmt"

// InvalidReferenceError reports a malformed cell, range or column reference.
type InvalidReferenceError struct {
	Ref string
	Err error
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference %q: %v", e.Ref, e.Err)
}

func (e *InvalidReferenceError) Unwrap() error {
	return e.Err
}
