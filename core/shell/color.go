package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/josephlewis42/trsh/core/config"
	"github.com/mattn/go-isatty"
)

// Style is a set of terminal attributes.
type Style []color.Attribute

var (
	StyleBoldBlue  = Style{color.FgBlue, color.Bold}
	StyleBoldGreen = Style{color.FgGreen, color.Bold}
	StyleBoldCyan  = Style{color.FgCyan, color.Bold}
	StyleBoldRed   = Style{color.FgRed, color.Bold}
)

// ColorPrinter formats text with styles when color is enabled.
type ColorPrinter struct {
	Enabled bool
}

// NewColorPrinter resolves a color mode (always, auto or never) against the
// writer output goes to. In auto mode color is used only for terminals.
func NewColorPrinter(mode string, w io.Writer) ColorPrinter {
	switch mode {
	case config.ColorAlways:
		return ColorPrinter{Enabled: true}
	case config.ColorNever:
		return ColorPrinter{Enabled: false}
	default:
		return ColorPrinter{Enabled: IsTerminal(w)}
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c ColorPrinter) Sprintf(style Style, format string, a ...interface{}) string {
	if !c.Enabled {
		return fmt.Sprintf(format, a...)
	}

	// fatih/color disables itself globally when stdout isn't a terminal, a
	// fresh color with EnableColor ignores that.
	col := color.New(style...)
	col.EnableColor()
	return col.Sprintf(format, a...)
}
