package engine

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyBegun = errors.New("session already begun")
	ErrNotBegun     = errors.New("session not begun")
)

// LoadError wraps a failure to read or decode an adventure.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading adventure %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// UnsupportedActionError is returned for actions the state machine
// recognizes but that have no behavior yet.
type UnsupportedActionError struct {
	Action Action
	Item   string
}

func (e *UnsupportedActionError) Error() string {
	if e.Item == "" {
		return fmt.Sprintf("action %s is not supported", e.Action)
	}
	return fmt.Sprintf("action %s is not supported for %q", e.Action, e.Item)
}

// InvariantViolation means the loaded graph or the session state is
// corrupt. It is never recovered from.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Reason
}
