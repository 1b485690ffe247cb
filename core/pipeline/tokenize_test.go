package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleTokenize() {
	args, _ := Tokenize("  ls   -la\t/tmp  ")
	fmt.Printf("%q\n", []string(args))

	// Output: ["ls" "-la" "/tmp"]
}

func TestTokenize(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected Argv
	}{
		"empty":             {"", Argv{}},
		"spaces":            {"     ", Argv{}},
		"mixed whitespace":  {" \t \n \r\v\f ", Argv{}},
		"single":            {"ls", Argv{"ls"}},
		"runs of spaces":    {"echo    hello     world", Argv{"echo", "hello", "world"}},
		"tabs":              {"echo\thello\t\tworld", Argv{"echo", "hello", "world"}},
		"operators":         {"cat f | wc -l", Argv{"cat", "f", "|", "wc", "-l"}},
		"no quoting":        {`echo "hello world"`, Argv{"echo", `"hello`, `world"`}},
		"no escaping":       {`echo hello\ world`, Argv{"echo", `hello\`, "world"}},
		"attached operator": {"echo hi>out", Argv{"echo", "hi>out"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			actual, err := Tokenize(tc.line)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
			assert.NotNil(t, actual)
		})
	}
}

func TestTokenize_maxArgs(t *testing.T) {
	atLimit := strings.TrimSpace(strings.Repeat("a ", DefaultMaxArgs))
	args, err := Tokenize(atLimit)
	assert.NoError(t, err)
	assert.Len(t, args, DefaultMaxArgs)

	_, err = Tokenize(atLimit + " b")
	assert.True(t, errors.Is(err, ErrTooManyArguments), "got %v", err)

	small := Tokenizer{MaxArgs: 2}
	_, err = small.Tokenize("a b c")
	assert.ErrorIs(t, err, ErrTooManyArguments)
	assert.Contains(t, err.Error(), "max 2")
}

func TestTokenize_ownedVectors(t *testing.T) {
	first, err := Tokenize("echo first")
	assert.NoError(t, err)
	second, err := Tokenize("echo second")
	assert.NoError(t, err)

	first[1] = "changed"
	assert.Equal(t, Argv{"echo", "second"}, second)
}
