package pipeline

const (
	// PipeOperator connects the left command's stdout to the right's stdin.
	PipeOperator = "|"
	// RedirectOperator sends the command's stdout to a truncated file.
	RedirectOperator = ">"
)

// Mode tags the shape of a classified Command.
type Mode int

const (
	ModeSimple Mode = iota
	ModePipe
	ModeRedirect
)

func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModePipe:
		return "pipe"
	case ModeRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Command is a classified line: one of Simple, Pipe or Redirect.
type Command interface {
	Mode() Mode
	// Argvs returns every argument vector in the order they are spawned.
	Argvs() []Argv

	isCommand()
}

// Simple runs a single command with the shell's standard descriptors.
type Simple struct {
	Args Argv
}

func (Simple) Mode() Mode { return ModeSimple }
func (c Simple) Argvs() []Argv { return []Argv{c.Args} }
func (Simple) isCommand() {}

// Pipe runs Left and Right concurrently with Left's stdout feeding Right's
// stdin.
type Pipe struct {
	Left  Argv
	Right Argv
}

func (Pipe) Mode() Mode { return ModePipe }
func (c Pipe) Argvs() []Argv { return []Argv{c.Left, c.Right} }
func (Pipe) isCommand() {}

// Redirect runs Args with stdout written to Target, truncating it first.
type Redirect struct {
	Args   Argv
	Target string
}

func (Redirect) Mode() Mode { return ModeRedirect }
func (c Redirect) Argvs() []Argv { return []Argv{c.Args} }
func (Redirect) isCommand() {}

var (
	_ Command = Simple{}
	_ Command = Pipe{}
	_ Command = Redirect{}
)

// Classify splits args on the first pipe operator, or failing that on the
// first redirect operator.
//
// Only one operator is honored. Operators after a pipe are passed to the
// right command verbatim and tokens after a redirect target are dropped, so
// "a > b > c" writes to b. The returned vectors never alias args.
func Classify(args Argv) (Command, error) {
	pipeAt, redirectAt := -1, -1
	for i, tok := range args {
		switch {
		case tok == PipeOperator && pipeAt < 0:
			pipeAt = i
		case tok == RedirectOperator && redirectAt < 0:
			redirectAt = i
		}
	}

	switch {
	case pipeAt >= 0:
		left, right := args[:pipeAt].clone(), args[pipeAt+1:].clone()
		if len(left) == 0 || len(right) == 0 {
			return nil, ErrEmptyCommand
		}
		return Pipe{Left: left, Right: right}, nil

	case redirectAt >= 0:
		if redirectAt == len(args)-1 {
			return nil, ErrMissingRedirectTarget
		}
		cmd := args[:redirectAt].clone()
		if len(cmd) == 0 {
			return nil, ErrEmptyCommand
		}
		return Redirect{Args: cmd, Target: args[redirectAt+1]}, nil

	case len(args) == 0:
		return nil, ErrEmptyCommand

	default:
		return Simple{Args: args.clone()}, nil
	}
}
