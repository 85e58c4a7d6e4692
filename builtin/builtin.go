// Package builtin implements the REPL’s colon commands.
package builtin

import (
	"fmt"
	"io"
	"strings"

	"git.sr.ht/~mango/calc/pkg/stringsx"
	"git.sr.ht/~mango/calc/vm"
)

// Session is the state a command may inspect or change.
type Session struct {
	Prog    *vm.Program
	Out     io.Writer
	DumpAST bool
	Quit    bool
}

type builtin func(s *Session, args []string) error

var Commands = map[string]builtin{
	"ast":   ast,
	"quit":  quit,
	"reset": reset,
	"run":   run,
	"vars":  vars,
}

func init() {
	Commands["help"] = help
}

// IsCommand reports whether line should be handled by Exec rather than
// parsed as a program.
func IsCommand(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), ":")
}

// Exec runs the command on line.  Runtime errors from :run are returned
// unwrapped so the caller can report them like any other.
func Exec(s *Session, line string) error {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, ":")

	args := stringsx.FieldsMulti(line, []string{" ", "\t"})
	if len(args) == 0 {
		return fmt.Errorf("missing command name")
	}

	f, ok := Commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command ‘%s’", args[0])
	}
	return f(s, args)
}

func errorf(args []string, format string, xs ...any) error {
	return fmt.Errorf(":%s: "+format, append([]any{args[0]}, xs...)...)
}

func noArgs(args []string) error {
	if len(args) > 1 {
		return errorf(args, "unexpected argument ‘%s’", args[1])
	}
	return nil
}
