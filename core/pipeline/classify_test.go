package pipeline

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func ExampleClassify() {
	args, _ := Tokenize("ls -l | grep go > ignored")
	cmd, _ := Classify(args)
	pipe := cmd.(Pipe)

	fmt.Println(cmd.Mode())
	fmt.Printf("%q\n", []string(pipe.Left))
	fmt.Printf("%q\n", []string(pipe.Right))

	// Output: pipe
	// ["ls" "-l"]
	// ["grep" "go" ">" "ignored"]
}

func TestClassify(t *testing.T) {
	cases := map[string]struct {
		args     Argv
		expected Command
	}{
		"simple": {
			args:     Argv{"ls", "-la", "/tmp"},
			expected: Simple{Args: Argv{"ls", "-la", "/tmp"}},
		},
		"simple single": {
			args:     Argv{"pwd"},
			expected: Simple{Args: Argv{"pwd"}},
		},
		"operator lookalikes": {
			args:     Argv{"echo", "||", ">>", "a|b", "x>y"},
			expected: Simple{Args: Argv{"echo", "||", ">>", "a|b", "x>y"}},
		},
		"pipe": {
			args:     Argv{"echo", "hello", "|", "wc", "-w"},
			expected: Pipe{Left: Argv{"echo", "hello"}, Right: Argv{"wc", "-w"}},
		},
		"leftmost pipe wins": {
			args:     Argv{"a", "|", "b", "|", "c"},
			expected: Pipe{Left: Argv{"a"}, Right: Argv{"b", "|", "c"}},
		},
		"pipe beats later redirect": {
			args:     Argv{"a", "|", "b", ">", "f"},
			expected: Pipe{Left: Argv{"a"}, Right: Argv{"b", ">", "f"}},
		},
		"pipe beats earlier redirect": {
			args:     Argv{"a", ">", "f", "|", "b"},
			expected: Pipe{Left: Argv{"a", ">", "f"}, Right: Argv{"b"}},
		},
		"redirect": {
			args:     Argv{"echo", "x", ">", "/tmp/out.txt"},
			expected: Redirect{Args: Argv{"echo", "x"}, Target: "/tmp/out.txt"},
		},
		"redirect drops trailing tokens": {
			args:     Argv{"a", ">", "b", ">", "c"},
			expected: Redirect{Args: Argv{"a"}, Target: "b"},
		},
		"redirect target is operator-free token": {
			args:     Argv{"a", ">", "b", "extra"},
			expected: Redirect{Args: Argv{"a"}, Target: "b"},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			actual, err := Classify(tc.args)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tc.args, diff)
			}
		})
	}
}

func TestClassify_errors(t *testing.T) {
	cases := map[string]struct {
		args     Argv
		expected error
	}{
		"empty":              {Argv{}, ErrEmptyCommand},
		"nil":                {nil, ErrEmptyCommand},
		"lone pipe":          {Argv{"|"}, ErrEmptyCommand},
		"missing left":       {Argv{"|", "wc"}, ErrEmptyCommand},
		"missing right":      {Argv{"echo", "|"}, ErrEmptyCommand},
		"lone redirect":      {Argv{">"}, ErrMissingRedirectTarget},
		"missing target":     {Argv{"echo", "hi", ">"}, ErrMissingRedirectTarget},
		"missing redirected": {Argv{">", "out"}, ErrEmptyCommand},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd, err := Classify(tc.args)

			assert.Nil(t, cmd)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestClassify_doesNotAlias(t *testing.T) {
	args := Argv{"echo", "a", "|", "cat"}
	cmd, err := Classify(args)
	assert.NoError(t, err)

	args[0] = "rm"
	args[3] = "rm"

	assert.Equal(t, Pipe{Left: Argv{"echo", "a"}, Right: Argv{"cat"}}, cmd)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "simple", ModeSimple.String())
	assert.Equal(t, "pipe", ModePipe.String())
	assert.Equal(t, "redirect", ModeRedirect.String())
	assert.Equal(t, "unknown", Mode(42).String())
}
