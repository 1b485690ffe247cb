package shell

import (
	"io"

	"github.com/abiosoft/readline"
)

// LineReader reads one line of input per prompt.
//
// Readline returns io.EOF once input is exhausted and readline.ErrInterrupt
// when the user cancels the current line.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	// ResetHistory forgets previously read lines.
	ResetHistory()
	Close() error
}

type readlineReader struct {
	*readline.Instance
}

func (r readlineReader) ResetHistory() {
	r.Operation.ResetHistory()
}

// NewReadline creates a line editor over stdin. Lines are appended to
// historyFile unless it's empty.
//
// The editor reads stdin from a background goroutine, so a child that reads
// the terminal may lose keystrokes to it.
func NewReadline(stdin io.Reader, stdout, stderr io.Writer, historyFile string) (LineReader, error) {
	cfg := &readline.Config{
		Stdin:           readline.NewCancelableStdin(stdin),
		Stdout:          stdout,
		Stderr:          stderr,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return readlineReader{Instance: instance}, nil
}
