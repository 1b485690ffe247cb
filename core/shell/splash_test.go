package shell

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleSplash() {
	var out bytes.Buffer
	Splash(&out, ColorPrinter{}, false)
	fmt.Print(out.String())

	// Output: +--------------------+
	// | trsh, a tiny shell |
	// | version 1.0        |
	// | Apache License 2.0 |
	// +--------------------+
}

func TestSplash_clear(t *testing.T) {
	var out bytes.Buffer
	Splash(&out, ColorPrinter{}, true)

	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
}

func TestNewColorPrinter(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, NewColorPrinter("always", &buf).Enabled)
	assert.False(t, NewColorPrinter("never", &buf).Enabled)
	assert.False(t, NewColorPrinter("auto", &buf).Enabled, "buffers aren't terminals")
}

func TestColorPrinter_Sprintf(t *testing.T) {
	assert.Equal(t, "plain 1", ColorPrinter{}.Sprintf(StyleBoldRed, "plain %d", 1))
	assert.Equal(t, "\x1b[31;1mred 2\x1b[0m", ColorPrinter{Enabled: true}.Sprintf(StyleBoldRed, "red %d", 2))
}
