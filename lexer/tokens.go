package lexer

import "fmt"

type TokenType int

const (
	// TokError is emitted for input that cannot start any token.  Lexing
	// carries on after it; it is up to the parser to reject it.
	TokError TokenType = iota

	TokEndStmt // End of statement, either a newline or semicolon
	TokEof     // End of file

	TokInt   // An integer literal
	TokFloat // A decimal literal such as ‘3.0’
	TokIdent // A variable name

	TokKwInt    // The ‘int’ keyword
	TokKwDouble // The ‘double’ keyword
	TokKwPrint  // The ‘print’ keyword

	TokPlus   // The ‘+’ operator
	TokMinus  // The ‘-’ operator
	TokStar   // The ‘*’ operator
	TokSlash  // The ‘/’ operator
	TokCaret  // The ‘^’ operator
	TokTilde  // The ‘~’ operator
	TokPOpen  // An opening parenthesis
	TokPClose // A closing parenthesis
	TokAssign // The ‘=’ operator
)

// Pos is a 1-based source position.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d column %d", p.Line, p.Col)
}

type Token struct {
	Kind  TokenType
	Pos   Pos
	Val   string  // The source text of the token
	Int   int64   // The value of a TokInt
	Float float64 // The value of a TokFloat
}

// Maximum length of an identifier before truncation in diagnostics
const maxStrLen = 20

var keywords = map[string]TokenType{
	"int":    TokKwInt,
	"double": TokKwDouble,
	"print":  TokKwPrint,
}

var punctuation = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'^': TokCaret,
	'~': TokTilde,
	'(': TokPOpen,
	')': TokPClose,
	'=': TokAssign,
}

func (t Token) String() string {
	switch t.Kind {
	case TokError:
		return fmt.Sprintf("invalid input ‘%s’", t.Val)

	case TokEndStmt:
		return "end of statement"
	case TokEof:
		return "end of input"

	case TokInt, TokFloat:
		return t.Val
	case TokIdent:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("‘%.*s…’", maxStrLen, t.Val)
		}
		return "‘" + t.Val + "’"

	case TokKwInt, TokKwDouble, TokKwPrint:
		return "keyword ‘" + t.Val + "’"

	case TokPlus, TokMinus, TokStar, TokSlash, TokCaret, TokTilde, TokPOpen,
		TokPClose, TokAssign:
		return "‘" + t.Val + "’"
	}

	panic("unreachable")
}
