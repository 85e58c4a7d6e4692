package builtin

func quit(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	s.Quit = true
	return nil
}
