package dialect

import "github.com/freeeve/sqlparse/token"

// Ladder is a full precedence assignment: one binding power per operator
// group. The base ladder matches the generic grammar; dialects that
// reorder operators (PostgreSQL) swap in their own ladder through the
// Dialect.Ladder field.
type Ladder struct {
	Or          int
	And         int
	UnaryNot    int
	PgOther     int // JSON, match, and custom operators
	Is          int
	Like        int
	Between     int // BETWEEN, IN, and comparisons
	Comparison  int
	QuestionOp  int // bare ? as an operator (PostgreSQL JSON)
	Pipe        int
	Caret       int
	Ampersand   int
	Xor         int
	Shift       int
	PlusMinus   int
	MulDivMod   int
	AtTz        int
	Collate     int
	Subscript   int
	DoubleColon int
}

// DefaultLadder is the generic precedence table, low to high.
var DefaultLadder = Ladder{
	Or:          5,
	And:         10,
	UnaryNot:    15,
	PgOther:     16,
	Is:          17,
	Like:        19,
	Between:     20,
	Comparison:  20,
	QuestionOp:  0,
	Pipe:        21,
	Caret:       22,
	Ampersand:   23,
	Xor:         24,
	Shift:       25,
	PlusMinus:   30,
	MulDivMod:   40,
	AtTz:        41,
	Collate:     50,
	Subscript:   50,
	DoubleColon: 50,
}

// PostgresLadder reorders the table: BETWEEN/LIKE bind tighter than
// equality, COLLATE, subscripts, and :: sit at the top.
var PostgresLadder = Ladder{
	Or:          5,
	And:         10,
	UnaryNot:    15,
	PgOther:     95,
	Is:          17,
	Like:        60,
	Between:     60,
	Comparison:  50,
	QuestionOp:  95,
	Pipe:        70,
	Caret:       80,
	Ampersand:   85,
	Xor:         75,
	Shift:       90,
	PlusMinus:   100,
	MulDivMod:   110,
	AtTz:        112,
	Collate:     120,
	Subscript:   130,
	DoubleColon: 140,
}

// Next computes the binding power of the parser's current token under
// this ladder. Zero means the token is not an infix operator here.
func (l *Ladder) Next(p Parser) int {
	cur := p.Cur()
	switch cur.Type {
	case token.OR:
		return l.Or
	case token.AND:
		return l.And
	case token.XOR:
		return l.Xor
	case token.NOT:
		// NOT has dynamic precedence: it binds like the operator it
		// negates, and is not an infix operator otherwise.
		switch p.Peek().Type {
		case token.IN, token.BETWEEN:
			return l.Between
		case token.LIKE, token.ILIKE, token.SIMILAR, token.REGEXP,
			token.RLIKE, token.GLOB:
			return l.Like
		}
		return 0
	case token.IS:
		return l.Is
	case token.IN, token.BETWEEN:
		return l.Between
	case token.LIKE, token.ILIKE, token.SIMILAR, token.REGEXP,
		token.RLIKE, token.GLOB:
		return l.Like
	case token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE,
		token.SPACESHIP:
		return l.Comparison
	case token.BITOR:
		return l.Pipe
	case token.BITXOR:
		return l.Caret
	case token.BITAND:
		return l.Ampersand
	case token.LSHIFT, token.RSHIFT:
		return l.Shift
	case token.PLUS, token.MINUS, token.CONCAT:
		return l.PlusMinus
	case token.ASTERISK, token.SLASH, token.PERCENT:
		return l.MulDivMod
	case token.AT:
		if p.Peek().Type == token.TIME {
			return l.AtTz
		}
		return 0
	case token.COLLATE:
		return l.Collate
	case token.LBRACKET:
		return l.Subscript
	case token.DCOLON:
		return l.DoubleColon
	case token.CARETAT:
		return l.DoubleColon
	case token.ARROW, token.DARROW, token.HASHGT, token.HASHDGT,
		token.HASHMINUS, token.ATGT, token.LTAT, token.ATQUESTION,
		token.ATAT, token.TILDE, token.TILDESTAR, token.NOTTILDE,
		token.NOTTILDESTAR, token.DTILDE, token.DTILDESTAR,
		token.NOTDTILDE, token.NOTDTILDESTAR, token.QUESTIONOR,
		token.QUESTIONAND, token.SQRT, token.CUSTOMOP:
		return l.PgOther
	case token.PARAM:
		if cur.Value == "?" {
			return l.QuestionOp
		}
		return 0
	}
	return 0
}
