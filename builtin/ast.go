package builtin

import "fmt"

func ast(s *Session, args []string) error {
	switch {
	case len(args) == 1:
		s.DumpAST = !s.DumpAST
	case len(args) == 2 && args[1] == "on":
		s.DumpAST = true
	case len(args) == 2 && args[1] == "off":
		s.DumpAST = false
	default:
		return errorf(args, "usage: :ast [on | off]")
	}

	state := "off"
	if s.DumpAST {
		state = "on"
	}
	_, err := fmt.Fprintf(s.Out, "AST dumping is %s\n", state)
	return err
}
