package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// DefaultRedirectPerm is the mode used to create redirect targets.
const DefaultRedirectPerm os.FileMode = 0644

// Launcher spawns classified commands and waits for them.
//
// Stdin, Stdout and Stderr follow os/exec semantics: an *os.File is handed
// to the child directly, other readers and writers are copied through an
// internal pipe, and nil means the null device.
type Launcher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Env is the child environment, nil inherits the shell's.
	Env []string
	// Dir is the child working directory, empty inherits the shell's.
	Dir string
	// LookPath resolves command names, exec.LookPath is used if nil.
	LookPath func(file string) (string, error)
	// RedirectPerm is used when a redirect creates its target.
	RedirectPerm os.FileMode

	Logger *zap.Logger
}

// Launch runs cmd to completion.
//
// Every process Launch starts is reaped and every descriptor it opens is
// closed before it returns, on success and on failure. Failures to resolve,
// spawn or acquire descriptors return a LaunchFailure status with a
// *LaunchError. A child exiting non-zero is not an error.
func (l *Launcher) Launch(cmd Command) (ExitStatus, error) {
	var err error
	var status ExitStatus
	switch c := cmd.(type) {
	case Simple:
		status, err = l.launchSimple(c)
	case Pipe:
		status, err = l.launchPipe(c)
	case Redirect:
		status, err = l.launchRedirect(c)
	default:
		err = fmt.Errorf("unsupported command %T", cmd)
	}

	if err != nil {
		l.logger().Debug("launch failed", zap.Stringer("mode", modeOf(cmd)), zap.Error(err))
		return failureStatus(err), err
	}
	return status, nil
}

func (l *Launcher) launchSimple(c Simple) (ExitStatus, error) {
	cmd, err := l.resolve(c.Args)
	if err != nil {
		return ExitStatus{}, err
	}

	proc, err := l.start(cmd)
	if err != nil {
		return ExitStatus{}, err
	}

	return proc.wait(), nil
}

func (l *Launcher) launchPipe(c Pipe) (ExitStatus, error) {
	left, err := l.resolve(c.Left)
	if err != nil {
		return ExitStatus{}, err
	}
	right, err := l.resolve(c.Right)
	if err != nil {
		return ExitStatus{}, err
	}

	// Deferred in this order so descriptors close before children are reaped,
	// a writer blocked on a full pipe only finishes once the reader is gone.
	children := &reaper{}
	defer children.reapAll()
	fds := &fdScope{log: l.logger()}
	defer fds.Close()

	r, w, err := os.Pipe()
	if err != nil {
		return ExitStatus{}, &LaunchError{Op: "pipe", Name: c.Left.Name(), Kind: ErrPipeCreation, Err: err}
	}
	fds.track(r, w)

	left.Stdout = w
	right.Stdin = r
	shareWriters(&sync.Mutex{}, left, right)

	lproc, err := l.start(left)
	if err != nil {
		return ExitStatus{}, err
	}
	children.add(lproc)

	rproc, err := l.start(right)
	if err != nil {
		return ExitStatus{}, err
	}
	children.add(rproc)

	// The children hold their own copies now. Until the parent drops the
	// write end the reader never sees EOF.
	fds.Close()

	lproc.wait()
	return rproc.wait(), nil
}

func (l *Launcher) launchRedirect(c Redirect) (ExitStatus, error) {
	cmd, err := l.resolve(c.Args)
	if err != nil {
		return ExitStatus{}, err
	}

	fds := &fdScope{log: l.logger()}
	defer fds.Close()

	out, err := os.OpenFile(l.targetPath(c.Target), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, l.redirectPerm())
	if err != nil {
		return ExitStatus{}, &LaunchError{Op: "open", Name: c.Target, Kind: ErrFileOpen, Err: err}
	}
	fds.track(out)
	cmd.Stdout = out

	proc, err := l.start(cmd)
	if err != nil {
		return ExitStatus{}, err
	}
	fds.Close()

	return proc.wait(), nil
}

// resolve looks up the command and builds an unstarted exec.Cmd with the
// launcher's defaults.
func (l *Launcher) resolve(args Argv) (*exec.Cmd, error) {
	lookPath := l.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, err := lookPath(args.Name())
	if err != nil {
		kind := ErrCommandNotFound
		if errors.Is(err, fs.ErrPermission) {
			kind = ErrLaunchFailure
		}
		return nil, &LaunchError{Op: "resolve", Name: args.Name(), Kind: kind, Err: err}
	}

	return &exec.Cmd{
		Path:   path,
		Args:   args.clone(),
		Env:    l.Env,
		Dir:    l.Dir,
		Stdin:  l.Stdin,
		Stdout: l.Stdout,
		Stderr: l.Stderr,
	}, nil
}

func (l *Launcher) start(cmd *exec.Cmd) (*child, error) {
	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Op: "start", Name: cmd.Args[0], Kind: ErrLaunchFailure, Err: err}
	}

	l.logger().Debug("started",
		zap.String("command", cmd.Args[0]),
		zap.String("path", cmd.Path),
		zap.Int("pid", cmd.Process.Pid))

	return &child{cmd: cmd, log: l.logger()}, nil
}

// targetPath resolves relative redirect targets against Dir, where the child
// runs.
func (l *Launcher) targetPath(target string) string {
	if l.Dir == "" || filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(l.Dir, target)
}

// lockedWriter serializes the copy goroutines os/exec starts for each child
// holding a non-file writer.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// shareWriters guards every non-file Stdout and Stderr of cmds with mu so
// children of one launch never write to the same writer at once. Files are
// handed to the children untouched.
func shareWriters(mu *sync.Mutex, cmds ...*exec.Cmd) {
	wrapped := map[io.Writer]io.Writer{}
	lock := func(w io.Writer) io.Writer {
		switch w.(type) {
		case nil, *os.File:
			return w
		}
		// Reusing one wrapper per writer keeps os/exec's single pipe for a
		// child whose Stdout and Stderr are the same writer.
		if !reflect.TypeOf(w).Comparable() {
			return &lockedWriter{mu: mu, w: w}
		}
		if lw, ok := wrapped[w]; ok {
			return lw
		}
		lw := &lockedWriter{mu: mu, w: w}
		wrapped[w] = lw
		return lw
	}

	for _, cmd := range cmds {
		cmd.Stdout = lock(cmd.Stdout)
		cmd.Stderr = lock(cmd.Stderr)
	}
}

func (l *Launcher) redirectPerm() os.FileMode {
	if l.RedirectPerm == 0 {
		return DefaultRedirectPerm
	}
	return l.RedirectPerm
}

func (l *Launcher) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

func modeOf(cmd Command) Mode {
	if cmd == nil {
		return -1
	}
	return cmd.Mode()
}
