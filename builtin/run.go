package builtin

import "git.sr.ht/~mango/calc/vm"

func run(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	return s.Prog.Run()
}

func reset(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	s.Prog = vm.NewProgram(s.Out)
	return nil
}
