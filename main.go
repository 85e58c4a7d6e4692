package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"

	"git.sr.ht/~mango/calc/builtin"
	"git.sr.ht/~mango/calc/config"
	"git.sr.ht/~mango/calc/lexer"
	"git.sr.ht/~mango/calc/log"
	"git.sr.ht/~mango/calc/parser"
	"git.sr.ht/~mango/calc/vm"
)

const (
	exitOK      = 0
	exitCompile = 1
	exitRuntime = 2
	exitUsage   = 1
)

type options struct {
	dump        bool
	interactive bool
	config      string
	expr        string
	haveExpr    bool
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer, argv0 string) {
	fmt.Fprintf(w, "Usage: %s [-ahi] [-c config] [-e program] [file]\n", argv0)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.Writer = stderr

	flags, optind, err := getopt.Getopts(args, "ac:e:hi")
	if err != nil {
		log.Warn("%s", err)
		usage(stderr, args[0])
		return exitUsage
	}

	opts := options{config: config.DefaultPath()}
	for _, f := range flags {
		switch f.Option {
		case 'a':
			opts.dump = true
		case 'c':
			opts.config = f.Value
		case 'e':
			opts.expr, opts.haveExpr = f.Value, true
		case 'h':
			usage(stdout, args[0])
			return exitOK
		case 'i':
			opts.interactive = true
		}
	}
	rest := args[optind:]

	cfg, err := config.Load(opts.config)
	if err != nil {
		log.Warn("%s", err)
		return exitUsage
	}
	log.SetColor(cfg.Color)
	opts.dump = opts.dump || cfg.DumpAST

	switch {
	case len(rest) > 1 || opts.haveExpr && len(rest) > 0:
		usage(stderr, args[0])
		return exitUsage
	case opts.haveExpr:
		return runBatch(opts.expr, stdout, opts.dump)
	case len(rest) == 1:
		b, err := os.ReadFile(rest[0])
		if err != nil {
			log.Warn("%s", err)
			return exitUsage
		}
		return runBatch(string(b), stdout, opts.dump)
	case opts.interactive || isTerminal(stdin):
		return repl(stdin, stdout, stderr, cfg, opts.dump)
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		log.Warn("%s", err)
		return exitUsage
	}
	return runBatch(string(b), stdout, opts.dump)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// runBatch compiles the whole of src before running any of it.
func runBatch(src string, stdout io.Writer, dump bool) int {
	prog, err := parser.Parse(lexer.New(src))
	if err != nil {
		log.Compile(err)
		return exitCompile
	}
	prog.SetOutput(stdout)

	if dump {
		prog.Dump(log.Writer, 0)
	}
	if err := prog.Run(); err != nil {
		log.Runtime(err)
		return exitRuntime
	}
	return exitOK
}

func repl(r io.Reader, stdout, stderr io.Writer, cfg config.Config, dump bool) int {
	s := &builtin.Session{
		Prog:    vm.NewProgram(stdout),
		Out:     stdout,
		DumpAST: dump,
	}
	br := bufio.NewReader(r)

	for !s.Quit {
		fmt.Fprint(stderr, cfg.Prompt)
		line, err := br.ReadString('\n')

		switch {
		case errors.Is(err, io.EOF) && line == "":
			fmt.Fprintln(stderr, "^D")
			return exitOK
		case err != nil && !errors.Is(err, io.EOF):
			log.Warn("%s", err)
			return exitUsage
		}

		var status int
		if builtin.IsCommand(line) {
			status = command(s, line)
		} else {
			status = evalLine(s, line)
		}
		if status != exitOK && !cfg.KeepGoing {
			return status
		}
	}
	return exitOK
}

func command(s *builtin.Session, line string) int {
	err := builtin.Exec(s, line)
	var rerr *vm.RuntimeError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &rerr):
		log.Runtime(err)
		return exitRuntime
	}
	log.Warn("%s", err)
	return exitUsage
}

// evalLine adds the statements on line to the session’s program and runs
// them.  A line that fails is taken back out again, declarations included,
// so it can be corrected and retried.
func evalLine(s *builtin.Session, line string) int {
	c := s.Prog.Checkpoint()
	n := s.Prog.Len()

	if err := parser.ParseInto(s.Prog, lexer.New(line)); err != nil {
		log.Compile(err)
		return exitCompile
	}
	if s.DumpAST {
		s.Prog.Dump(log.Writer, n)
	}
	if err := s.Prog.RunFrom(n); err != nil {
		s.Prog.Restore(c)
		log.Runtime(err)
		return exitRuntime
	}
	return exitOK
}
