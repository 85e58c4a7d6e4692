package builtin

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

var descriptions = map[string]string{
	"ast":   "toggle dumping of parsed statements",
	"help":  "list the available commands",
	"quit":  "leave the REPL",
	"reset": "discard every statement and variable",
	"run":   "reset all variables and run the whole program again",
	"vars":  "list the declared variables",
}

func help(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	names := maps.Keys(Commands)
	slices.Sort(names)
	for _, n := range names {
		if _, err := fmt.Fprintf(s.Out, ":%-6s %s\n", n, descriptions[n]); err != nil {
			return err
		}
	}
	return nil
}
