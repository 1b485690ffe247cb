package shell

import (
	"fmt"
	"io"
	"strings"
)

// Version is reported by the splash banner.
const Version = "1.0"

const clearScreen = "\033[0;0H\033[2J"

var splashLines = []string{
	"trsh, a tiny shell",
	"version " + Version,
	"Apache License 2.0",
}

// Splash writes the start up banner, clearing the screen first if clear is
// set.
func Splash(w io.Writer, printer ColorPrinter, clear bool) {
	if clear {
		fmt.Fprint(w, clearScreen)
	}

	width := 0
	for _, line := range splashLines {
		if len(line) > width {
			width = len(line)
		}
	}

	border := "+" + strings.Repeat("-", width+2) + "+"
	fmt.Fprintln(w, printer.Sprintf(StyleBoldCyan, "%s", border))
	for _, line := range splashLines {
		fmt.Fprintf(w, "%s %s %s\n",
			printer.Sprintf(StyleBoldCyan, "|"),
			fmt.Sprintf("%-*s", width, line),
			printer.Sprintf(StyleBoldCyan, "|"))
	}
	fmt.Fprintln(w, printer.Sprintf(StyleBoldCyan, "%s", border))
	fmt.Fprintln(w)
}
