package pipeline

import (
	"fmt"
	"strings"
)

// DefaultMaxArgs is the number of tokens a single line may hold.
const DefaultMaxArgs = 64

// Argv is an owned argument vector, the first element is the command name.
type Argv []string

// Name returns the command name or the empty string for an empty vector.
func (a Argv) Name() string {
	if len(a) == 0 {
		return ""
	}
	return a[0]
}

func (a Argv) String() string {
	return strings.Join(a, " ")
}

func (a Argv) clone() Argv {
	return append(Argv(nil), a...)
}

// Tokenizer splits input lines on runs of white space. There is no quoting
// or escaping.
type Tokenizer struct {
	// MaxArgs caps the number of tokens, DefaultMaxArgs is used if <= 0.
	MaxArgs int
}

// Tokenize splits the line into a fresh Argv. Blank lines produce an empty
// vector, lines with more than MaxArgs tokens fail with ErrTooManyArguments.
func (t Tokenizer) Tokenize(line string) (Argv, error) {
	limit := t.MaxArgs
	if limit <= 0 {
		limit = DefaultMaxArgs
	}

	fields := strings.Fields(line)
	if len(fields) > limit {
		return nil, fmt.Errorf("%w (got %d, max %d)", ErrTooManyArguments, len(fields), limit)
	}

	return Argv(fields), nil
}

// Tokenize splits line using DefaultMaxArgs.
func Tokenize(line string) (Argv, error) {
	return Tokenizer{}.Tokenize(line)
}
