package formflow

import "fmt"

// NavigationError means the form's location could not be reached.
// It is fatal to the session; the page model does not retry.
type NavigationError struct {
	Location string
	Err      error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate %s: %v", e.Location, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ElementNotFoundError means an expected element was absent from the
// rendered document after the full wait budget. It indicates a contract
// break between the page model and the fixture, so the model does not
// retry; retrying is the caller's prerogative.
type ElementNotFoundError struct {
	Op         string
	Descriptor Descriptor
	Err        error
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("%s: element %s not found: %v", e.Op, e.Descriptor, e.Err)
}

func (e *ElementNotFoundError) Unwrap() error { return e.Err }

// InvalidStateError means an operation was invoked from a state-machine
// position that does not permit it. Always a programming error in the
// caller, never retried.
type InvalidStateError struct {
	Op    string
	Phase Phase
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: not valid in phase %s", e.Op, e.Phase)
}

// TimeoutError means the wait budget expired while a condition on an
// existing element never resolved. Distinct from ElementNotFoundError:
// a timeout implies a race or slow render and is safe for the caller to
// retry; not-found implies a real contract break.
type TimeoutError struct {
	Op         string
	Descriptor Descriptor
	Err        error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out waiting on %s: %v", e.Op, e.Descriptor, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
