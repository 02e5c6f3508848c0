package connector

import "fmt"

// StateError reports a violation of the response lifecycle: mutating a
// committed response, committing twice through SendError/SendRedirect,
// or acquiring both output modes on one instance. These are caller
// bugs, never retried.
type StateError struct {
	Op     string
	Reason string
}

func (e StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func errCommitted(op string) error {
	return StateError{Op: op, Reason: "response is already committed"}
}

// EncodingError reports an empty or unresolvable character encoding
// name.
type EncodingError struct {
	Name string
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("unsupported character encoding: %q", e.Name)
}

// FormatError reports malformed incoming data, e.g. a cookie pair
// without '='. It is recovered locally (skip and continue), never
// escalated to the caller.
type FormatError struct {
	Input  string
	Reason string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("malformed %s: %q", e.Reason, e.Input)
}
