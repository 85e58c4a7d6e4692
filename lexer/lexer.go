package lexer

import (
	"sort"
	"unicode/utf8"

	"github.com/edwingeng/deque"
)

const eof rune = -1

// Lexer turns source text into tokens on demand.  Each call to Next runs the
// state machine only until at least one token is pending.
type Lexer struct {
	input string      // The input string to lex
	start int         // The start of the current token in input
	pos   int         // The pos of the cursor in input
	width int         // Width of the last rune lexed
	lines []int       // Offsets at which lines after the first begin
	state lexFn       // The state to resume from
	queue deque.Deque // Tokens emitted but not yet handed out
}

func New(input string) *Lexer {
	return &Lexer{
		input: input,
		state: lexDefault,
		queue: deque.NewDeque(),
	}
}

// Next returns the next token.  Once TokEof has been returned every further
// call returns TokEof again.
func (l *Lexer) Next() Token {
	for l.queue.Empty() {
		if l.state == nil {
			return Token{Kind: TokEof, Pos: l.position(len(l.input))}
		}
		l.state = l.state(l)
	}
	t := l.queue.Front().(Token)
	l.queue.PopFront()
	return t
}

// All drains the lexer, returning every token up to and including TokEof.
func (l *Lexer) All() []Token {
	xs := []Token{}
	for {
		t := l.Next()
		xs = append(xs, t)
		if t.Kind == TokEof {
			return xs
		}
	}
}

func (l *Lexer) emit(k TokenType) {
	l.push(Token{
		Kind: k,
		Pos:  l.position(l.start),
		Val:  l.input[l.start:l.pos],
	})
}

func (l *Lexer) push(t Token) {
	l.queue.PushBack(t)
	l.start = l.pos
}

func (l *Lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	if r == '\n' && (len(l.lines) == 0 || l.lines[len(l.lines)-1] < l.pos) {
		l.lines = append(l.lines, l.pos)
	}
	return r
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) backup() {
	l.pos -= l.width
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) acceptRun(f func(rune) bool) int {
	m := 0
	for f(l.next()) {
		m++
	}
	l.backup()
	return m
}

// position converts a byte offset into a 1-based line and column.  Columns
// count runes, not bytes.
func (l *Lexer) position(off int) Pos {
	n := sort.SearchInts(l.lines, off+1)
	ls := 0
	if n > 0 {
		ls = l.lines[n-1]
	}
	return Pos{
		Line: n + 1,
		Col:  utf8.RuneCountInString(l.input[ls:off]) + 1,
	}
}
