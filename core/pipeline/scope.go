package pipeline

import (
	"errors"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// fdScope owns the parent's copies of descriptors handed to children.
// Close may be called early and again from a defer.
type fdScope struct {
	files []*os.File
	log   *zap.Logger
}

func (s *fdScope) track(files ...*os.File) {
	s.files = append(s.files, files...)
}

// Close releases every tracked descriptor and returns the first failure.
func (s *fdScope) Close() error {
	var firstErr error
	for _, f := range s.files {
		if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			s.log.Warn("close failed", zap.String("file", f.Name()), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	s.files = nil

	return firstErr
}

// child is a started process that must be reaped exactly once.
type child struct {
	cmd    *exec.Cmd
	log    *zap.Logger
	reaped bool
	status ExitStatus
}

func (c *child) wait() ExitStatus {
	if c.reaped {
		return c.status
	}
	c.reaped = true

	err := c.cmd.Wait()
	switch {
	case c.cmd.ProcessState != nil:
		c.status = statusFromState(c.cmd.ProcessState)
	default:
		c.status = ExitStatus{Kind: LaunchFailure, Code: codeResourceFailure}
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		c.log.Warn("wait failed", zap.String("command", c.cmd.Args[0]), zap.Error(err))
	}
	c.log.Debug("reaped",
		zap.String("command", c.cmd.Args[0]),
		zap.Int("pid", c.cmd.Process.Pid),
		zap.Stringer("status", c.status))

	return c.status
}

// reaper waits for every child it was given that hasn't been waited on yet.
type reaper struct {
	children []*child
}

func (r *reaper) add(c *child) {
	r.children = append(r.children, c)
}

func (r *reaper) reapAll() {
	for _, c := range r.children {
		c.wait()
	}
}
