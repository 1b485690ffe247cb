package pipeline

import (
	"errors"
	"fmt"
)

// Parse-time errors, the shell reprompts without running anything.
var (
	ErrTooManyArguments      = errors.New("too many arguments")
	ErrEmptyCommand          = errors.New("empty command")
	ErrMissingRedirectTarget = errors.New("missing redirect target")
)

// Launch-time errors, reported through *LaunchError.
var (
	ErrCommandNotFound = errors.New("command not found")
	ErrLaunchFailure   = errors.New("couldn't start command")
	ErrPipeCreation    = errors.New("couldn't create pipe")
	ErrFileOpen        = errors.New("couldn't open file")
)

// LaunchError describes a command that never ran to completion because a
// process or descriptor couldn't be acquired.
type LaunchError struct {
	// Op is the step that failed: resolve, pipe, open or start.
	Op string
	// Name is the command or file the step was acting on.
	Name string
	// Kind is one of the launch-time sentinel errors.
	Kind error
	// Err is the underlying cause, if any.
	Err error
}

func (e *LaunchError) Error() string {
	if e.Err == nil || errors.Is(e.Kind, ErrCommandNotFound) {
		return fmt.Sprintf("%s: %v", e.Name, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Name, e.Kind, e.Err)
}

// Is reports whether target is the sentinel this error was classified as.
func (e *LaunchError) Is(target error) bool {
	return target == e.Kind
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
