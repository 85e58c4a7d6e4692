package builtin

import (
	"fmt"

	"git.sr.ht/~mango/calc/vm"
)

// vars lists every declared variable as ‘name type value’, sorted by name.
func vars(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	st := s.Prog.Vars()
	for _, n := range st.Names() {
		v, err := st.Lookup(n)
		if err != nil {
			panic("listed variable is not declared")
		}
		val := "<uninitialized>"
		if v.Initialized() {
			x, _ := v.Get()
			val = vm.FormatValue(x)
		}
		if _, err := fmt.Fprintf(s.Out, "%s %s %s\n", n, v.Type, val); err != nil {
			return err
		}
	}
	return nil
}
