package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/trsh/core/logger"
	"github.com/josephlewis42/trsh/core/pipeline"
	"github.com/josephlewis42/trsh/core/vos"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Exit codes for lines that never reach a command.
const (
	codeSuccess = 0
	codeUsage   = 2
)

// maxReadErrors consecutive read failures end the loop.
const maxReadErrors = 10

// Options configures a Shell. Zero values fall back to the running process.
type Options struct {
	// Reader supplies lines for Run, it isn't needed for RunCommand.
	Reader LineReader

	// Stdin, Stdout and Stderr are handed to children. Builtins and
	// diagnostics write to Stdout and Stderr.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	OS vos.VOS
	// Fs is used for command lookup and directory listings.
	Fs afero.Fs

	Events *logger.SessionLogger
	Log    *zap.Logger
	Color  ColorPrinter

	Prompt       string
	MaxArgs      int
	ShowStatus   bool
	RedirectPerm os.FileMode
}

// Shell reads lines and runs them as commands.
type Shell struct {
	Reader LineReader
	Stdout io.Writer
	Stderr io.Writer

	OS       vos.VOS
	Fs       afero.Fs
	Launcher *pipeline.Launcher

	Tokenizer pipeline.Tokenizer
	Events    *logger.SessionLogger
	Log       *zap.Logger
	Color     ColorPrinter

	PromptTemplate string
	ShowStatus     bool

	// Quit is set by the exit builtin to end Run.
	Quit bool

	history []string
}

// New creates a shell from opts.
func New(opts Options) *Shell {
	if opts.OS == nil {
		opts.OS = vos.HostOS{}
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Events == nil {
		opts.Events = logger.NewNopLogger().Sessionless()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}

	return &Shell{
		Reader: opts.Reader,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		OS:     opts.OS,
		Fs:     opts.Fs,
		Launcher: &pipeline.Launcher{
			Stdin:        opts.Stdin,
			Stdout:       opts.Stdout,
			Stderr:       opts.Stderr,
			LookPath:     vos.PathResolver(opts.Fs, opts.OS),
			RedirectPerm: opts.RedirectPerm,
			Logger:       opts.Log,
		},
		Tokenizer:      pipeline.Tokenizer{MaxArgs: opts.MaxArgs},
		Events:         opts.Events,
		Log:            opts.Log,
		Color:          opts.Color,
		PromptTemplate: opts.Prompt,
		ShowStatus:     opts.ShowStatus,
	}
}

// Prompt renders the prompt for the next line.
func (s *Shell) Prompt() string {
	return s.Color.Sprintf(StyleBoldGreen, "%s", ExpandPrompt(s.PromptTemplate, s.OS))
}

// Run reads and runs lines until input ends or the shell is told to quit.
func (s *Shell) Run() int {
	if s.Reader == nil {
		fmt.Fprintln(s.Stderr, "trsh: no input")
		return 1
	}

	readErrors := 0
	for !s.Quit {
		s.Reader.SetPrompt(s.Prompt())
		line, err := s.Reader.Readline()

		switch {
		case errors.Is(err, io.EOF):
			return codeSuccess // Input closed, quit.

		case errors.Is(err, readline.ErrInterrupt):
			readErrors = 0
			continue

		case err != nil:
			readErrors++
			s.Log.Warn("couldn't read line", zap.Error(err), zap.Int("consecutive", readErrors))
			s.errorf("%v", err)
			if readErrors >= maxReadErrors {
				return 1
			}
			continue
		}

		readErrors = 0
		s.RunCommand(line)
	}

	return codeSuccess
}

// RunCommand runs a single line and returns its exit code.
func (s *Shell) RunCommand(line string) int {
	if strings.TrimSpace(line) != "" {
		s.history = append(s.history, line)
	}

	args, err := s.Tokenizer.Tokenize(line)
	if err != nil {
		s.errorf("%v", err)
		s.record(&logger.InvalidInvocation{Command: strings.Fields(line)[:1], Error: err.Error()})
		return codeUsage
	}
	if len(args) == 0 {
		return codeSuccess
	}

	cmd, err := pipeline.Classify(args)
	if err != nil {
		s.errorf("%v", err)
		s.record(&logger.InvalidInvocation{Command: args, Error: err.Error()})
		return codeUsage
	}

	if simple, ok := cmd.(pipeline.Simple); ok {
		if builtin, ok := AllBuiltins[simple.Args.Name()]; ok {
			code := builtin.Main(s, simple.Args)
			s.record(&logger.Builtin{Command: simple.Args, ExitCode: code})
			return code
		}
	}

	return s.launch(cmd, args)
}

func (s *Shell) launch(cmd pipeline.Command, args pipeline.Argv) int {
	wd, err := s.OS.Getwd()
	if err != nil {
		s.Log.Warn("couldn't get working directory", zap.Error(err))
		wd = ""
	}
	s.Launcher.Env = s.OS.Environ()
	s.Launcher.Dir = wd

	s.Log.Debug("launching", zap.Stringer("mode", cmd.Mode()), zap.Strings("args", args))
	status, err := s.Launcher.Launch(cmd)
	if err != nil {
		s.errorf("%v", err)

		event := &logger.UnknownCommand{
			Command:      args,
			Mode:         cmd.Mode().String(),
			ErrorMessage: err.Error(),
		}
		var launchErr *pipeline.LaunchError
		if errors.As(err, &launchErr) {
			event.Op = launchErr.Op
		}
		s.record(event)
		return status.Code
	}

	event := &logger.RunCommand{
		Command:  args,
		Mode:     cmd.Mode().String(),
		Dir:      wd,
		ExitKind: status.Kind.String(),
		ExitCode: status.Code,
	}
	if status.Kind == pipeline.SignaledExit {
		event.Signal = pipeline.SignalName(status.Signal)
	}
	s.record(event)

	if s.ShowStatus && !status.Success() {
		fmt.Fprintln(s.Stderr, s.Color.Sprintf(StyleBoldRed, "[%s]", status))
	}
	return status.Code
}

// History returns the non-blank lines run this session, oldest first.
func (s *Shell) History() []string {
	return append([]string(nil), s.history...)
}

// ClearHistory forgets every line read so far.
func (s *Shell) ClearHistory() {
	s.history = nil
	if s.Reader != nil {
		s.Reader.ResetHistory()
	}
}

func (s *Shell) Close() error {
	if s.Reader == nil {
		return nil
	}
	return s.Reader.Close()
}

func (s *Shell) errorf(format string, a ...interface{}) {
	fmt.Fprintf(s.Stderr, "trsh: "+format+"\n", a...)
}

func (s *Shell) record(event logger.LogType) {
	if err := s.Events.Record(event); err != nil {
		s.Log.Warn("couldn't record event", zap.Error(err))
	}
}
