// Package ast defines the abstract syntax tree for SQL statements and the
// canonical SQL serializer. Every node renders itself through WriteSQL;
// the canonical form uses single spaces between tokens, uppercase
// keywords, and the exact identifier quoting and literal text seen at
// parse time.
package ast

import (
	"strings"

	"github.com/freeeve/sqlparse/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() token.Pos
	End() token.Pos
	WriteSQL(b *strings.Builder)
}

// Statement represents a SQL statement.
type Statement interface {
	Node
	statementNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// SetExpr represents a node that can form the body of a query:
// a SELECT, a parenthesized query, a set operation, VALUES, or TABLE.
type SetExpr interface {
	Node
	setExprNode()
}

// TableExpr represents a table expression (in FROM clause).
type TableExpr interface {
	Node
	tableExprNode()
}

// SelectExpr represents a select expression (in the projection list).
type SelectExpr interface {
	Node
	selectExprNode()
}

// SQL renders a node to its canonical SQL string.
func SQL(n Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.WriteSQL(&b)
	return b.String()
}

// writeExprList writes a comma-separated expression list.
func writeExprList(b *strings.Builder, exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		e.WriteSQL(b)
	}
}

// writeIdentList writes a comma-separated identifier list.
func writeIdentList(b *strings.Builder, idents []*Ident) {
	for i, id := range idents {
		if i > 0 {
			b.WriteString(", ")
		}
		id.WriteSQL(b)
	}
}

// writeQuoted writes an identifier or string body between delimiters,
// doubling embedded closers unless the value is raw source text.
func writeQuoted(b *strings.Builder, val string, open, close byte, raw bool) {
	b.WriteByte(open)
	if raw || !strings.ContainsRune(val, rune(close)) {
		b.WriteString(val)
	} else {
		for i := 0; i < len(val); i++ {
			b.WriteByte(val[i])
			if val[i] == close {
				b.WriteByte(close)
			}
		}
	}
	b.WriteByte(close)
}
