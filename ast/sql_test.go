package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freeeve/sqlparse/token"
)

func ident(v string) *Ident { return &Ident{Value: v} }

func num(v string) *Literal { return &Literal{Type: LiteralNumber, Value: v} }

func TestBinaryExprParens(t *testing.T) {
	// (a + b) * c needs parentheses around the lower-precedence child.
	sum := &BinaryExpr{Left: ident("a"), Op: token.PLUS, Right: ident("b")}
	mul := &BinaryExpr{Left: sum, Op: token.ASTERISK, Right: ident("c")}
	assert.Equal(t, "(a + b) * c", SQL(mul))

	// a + b * c stays flat.
	mul2 := &BinaryExpr{Left: ident("b"), Op: token.ASTERISK, Right: ident("c")}
	sum2 := &BinaryExpr{Left: ident("a"), Op: token.PLUS, Right: mul2}
	assert.Equal(t, "a + b * c", SQL(sum2))

	// Same precedence on the right re-parenthesizes to keep left
	// associativity: a - (b - c).
	inner := &BinaryExpr{Left: ident("b"), Op: token.MINUS, Right: ident("c")}
	outer := &BinaryExpr{Left: ident("a"), Op: token.MINUS, Right: inner}
	assert.Equal(t, "a - (b - c)", SQL(outer))
}

func TestIdentQuoting(t *testing.T) {
	assert.Equal(t, "plain", SQL(&Ident{Value: "plain"}))
	assert.Equal(t, `"My Col"`, SQL(&Ident{Value: "My Col", Quote: '"'}))
	assert.Equal(t, "`col`", SQL(&Ident{Value: "col", Quote: '`'}))
	assert.Equal(t, "[col]", SQL(&Ident{Value: "col", Quote: '['}))
	// Embedded closers double.
	assert.Equal(t, `"a""b"`, SQL(&Ident{Value: `a"b`, Quote: '"'}))
	// Raw values are emitted verbatim.
	assert.Equal(t, `"a""b"`, SQL(&Ident{Value: `a""b`, Quote: '"', Raw: true}))
}

func TestLiteralForms(t *testing.T) {
	tests := []struct {
		lit  *Literal
		want string
	}{
		{&Literal{Type: LiteralNull}, "NULL"},
		{&Literal{Type: LiteralBool, Value: "TRUE"}, "TRUE"},
		{num("1.50"), "1.50"},
		{&Literal{Type: LiteralNumber, Value: "123", Long: true}, "123L"},
		{&Literal{Type: LiteralString, Value: "it's"}, "'it''s'"},
		{&Literal{Type: LiteralDQString, Value: "x"}, `"x"`},
		{&Literal{Type: LiteralTSQString, Value: "a"}, "'''a'''"},
		{&Literal{Type: LiteralTDQString, Value: "a"}, `"""a"""`},
		{&Literal{Type: LiteralNational, Value: "n"}, "N'n'"},
		{&Literal{Type: LiteralEscaped, Value: "a\nb"}, `E'a\nb'`},
		{&Literal{Type: LiteralRaw, Value: `a\n`}, `R'a\n'`},
		{&Literal{Type: LiteralByte, Value: "0101"}, "B'0101'"},
		{&Literal{Type: LiteralHex, Value: "2A"}, "X'2A'"},
		{&Literal{Type: LiteralHex, Value: "2A", Tag: "0x"}, "0x2A"},
		{&Literal{Type: LiteralDollarString, Value: "body", Tag: "fn"}, "$fn$body$fn$"},
		{&Literal{Type: LiteralPlaceholder, Value: "$1"}, "$1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SQL(tt.lit))
	}
}

func TestDataTypeForms(t *testing.T) {
	n := 255
	p, s := 10, 2
	wtz := true
	tests := []struct {
		typ  *DataType
		want string
	}{
		{&DataType{Name: "INT"}, "INT"},
		{&DataType{Name: "VARCHAR", Length: &n}, "VARCHAR(255)"},
		{&DataType{Name: "DECIMAL", Precision: &p, Scale: &s}, "DECIMAL(10, 2)"},
		{&DataType{Name: "TIMESTAMP", WithTimeZone: &wtz}, "TIMESTAMP WITH TIME ZONE"},
		{&DataType{Name: "INT", Unsigned: true}, "INT UNSIGNED"},
		{&DataType{Name: "CHARACTER", Varying: true, Length: &n}, "CHARACTER VARYING(255)"},
		{&DataType{Name: "ARRAY", Elem: &DataType{Name: "INT"}, Bracket: BracketAngle}, "ARRAY<INT>"},
		{&DataType{Name: "ARRAY", Elem: &DataType{Name: "INT"}, Bracket: BracketSquare}, "INT[]"},
		{&DataType{Name: "MAP", Key: &DataType{Name: "VARCHAR"}, Value: &DataType{Name: "INT"}}, "MAP<VARCHAR, INT>"},
		{&DataType{Name: "ENUM", Values: []string{"a", "b"}}, "ENUM('a', 'b')"},
		{&DataType{
			Name:    "STRUCT",
			Bracket: BracketAngle,
			Fields:  []*StructField{{Name: ident("a"), Type: &DataType{Name: "INT"}}},
		}, "STRUCT<a INT>"},
	}
	for _, tt := range tests {
		var b strings.Builder
		tt.typ.WriteSQL(&b)
		assert.Equal(t, tt.want, b.String())
	}
}

func TestUnaryExprSpacing(t *testing.T) {
	assert.Equal(t, "NOT a", SQL(&UnaryExpr{Op: token.NOT, Expr: ident("a")}))
	assert.Equal(t, "-1", SQL(&UnaryExpr{Op: token.MINUS, Expr: num("1")}))
	and := &BinaryExpr{Left: ident("a"), Op: token.AND, Right: ident("b")}
	assert.Equal(t, "NOT (a AND b)", SQL(&UnaryExpr{Op: token.NOT, Expr: and}))
}

func TestSetOpQuantifiers(t *testing.T) {
	one := &SelectStmt{Projection: []SelectExpr{&AliasedExpr{Expr: num("1")}}}
	two := &SelectStmt{Projection: []SelectExpr{&AliasedExpr{Expr: num("2")}}}
	op := &SetOp{Left: one, Op: Union, Quantifier: SetAllByName, Right: two}
	assert.Equal(t, "SELECT 1 UNION ALL BY NAME SELECT 2", SQL(op))
}

func TestObjectName(t *testing.T) {
	name := &ObjectName{Parts: []*Ident{ident("db"), ident("schema"), ident("t")}}
	assert.Equal(t, "db.schema.t", SQL(name))
	assert.Equal(t, "t", name.Name())
}
