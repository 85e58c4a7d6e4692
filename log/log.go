// Package log prints diagnostics in the style of err(3) and friends.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	Writer io.Writer = os.Stderr

	compilePrefix = color.New(color.FgRed, color.Bold)
	runtimePrefix = color.New(color.FgMagenta, color.Bold)
)

// SetColor chooses whether prefixes are coloured: always, never, or auto to
// colour only when Writer is a terminal.
func SetColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		f, ok := Writer.(*os.File)
		color.NoColor = !ok || !isatty.IsTerminal(f.Fd()) ||
			os.Getenv("NO_COLOR") != ""
	}
}

// Warn prints a diagnostic to Writer according to format.  It also prepends
// the program name and appends a newline, much like the warnx(3) function
// from C.
func Warn(format string, args ...any) {
	fmt.Fprintf(Writer, "calc: "+format+"\n", args...)
}

// Compile reports an error found while parsing.
func Compile(err error) {
	fmt.Fprintf(Writer, "%s %s\n", compilePrefix.Sprint("Compiling error:"), err)
}

// Runtime reports an error raised while a program was running.
func Runtime(err error) {
	fmt.Fprintf(Writer, "%s %s\n", runtimePrefix.Sprint("Runtime error:"), err)
}
