package pipeline

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// ExitKind classifies how a launch ended.
type ExitKind int

const (
	// NormalExit means the final child exited on its own.
	NormalExit ExitKind = iota
	// SignaledExit means the final child was killed by a signal.
	SignaledExit
	// LaunchFailure means no child ran to completion.
	LaunchFailure
)

func (k ExitKind) String() string {
	switch k {
	case NormalExit:
		return "exit"
	case SignaledExit:
		return "signal"
	case LaunchFailure:
		return "launch_failure"
	default:
		return "unknown"
	}
}

// Exit codes reported for launch failures, matching POSIX shells.
const (
	codeResourceFailure = 1
	codeCannotExecute   = 126
	codeNotFound        = 127
)

// ExitStatus is the outcome of a launch.
type ExitStatus struct {
	Kind ExitKind
	// Code is the exit code, 128+signal for signaled exits.
	Code int
	// Signal is set for SignaledExit.
	Signal syscall.Signal
}

// Success is true if the command exited normally with code 0.
func (s ExitStatus) Success() bool {
	return s.Kind == NormalExit && s.Code == 0
}

func (s ExitStatus) String() string {
	switch s.Kind {
	case SignaledExit:
		return "signal " + SignalName(s.Signal)
	case LaunchFailure:
		return fmt.Sprintf("launch failure %d", s.Code)
	default:
		return fmt.Sprintf("exit %d", s.Code)
	}
}

// SignalName returns the conventional name of sig, e.g. SIGKILL.
func SignalName(sig syscall.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return sig.String()
}

func statusFromState(state *os.ProcessState) ExitStatus {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return ExitStatus{
			Kind:   SignaledExit,
			Code:   128 + int(ws.Signal()),
			Signal: ws.Signal(),
		}
	}

	return ExitStatus{Kind: NormalExit, Code: state.ExitCode()}
}

func failureStatus(err error) ExitStatus {
	code := codeResourceFailure
	switch {
	case errors.Is(err, ErrCommandNotFound):
		code = codeNotFound
	case errors.Is(err, ErrLaunchFailure):
		code = codeCannotExecute
	}

	return ExitStatus{Kind: LaunchFailure, Code: code}
}
