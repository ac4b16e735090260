// Package sqlparse provides a multi-dialect SQL parser.
//
// sqlparse turns SQL text into a strongly-typed AST and renders any AST
// back to canonical SQL. Fourteen dialects are built in, from ANSI to
// Snowflake, and a Custom dialect can inject its own parse hooks.
//
// Basic usage:
//
//	stmts, err := sqlparse.Parse("SELECT * FROM users WHERE id = 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sqlparse.String(stmts[0]))
//
// Parsing under a specific dialect:
//
//	stmts, err := sqlparse.ParseDialect("SELECT a:b.c FROM t", dialect.Snowflake())
//
// Walking the AST:
//
//	sqlparse.Walk(stmts[0], func(node ast.Node) bool {
//	    if id, ok := node.(*ast.Ident); ok {
//	        fmt.Printf("Found identifier: %s\n", id.Value)
//	    }
//	    return true
//	})
package sqlparse

import (
	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/dialect"
	"github.com/freeeve/sqlparse/lexer"
	"github.com/freeeve/sqlparse/parser"
	"github.com/freeeve/sqlparse/token"
	"github.com/freeeve/sqlparse/visitor"
)

// Parse parses all statements in the input under the Generic dialect.
// The parser uses internal pooling for efficiency.
func Parse(sql string) ([]ast.Statement, error) {
	return ParseDialect(sql, dialect.Generic())
}

// ParseDialect parses all statements in the input under the given
// dialect.
func ParseDialect(sql string, d *dialect.Dialect) ([]ast.Statement, error) {
	p := parser.Get(sql, d)
	stmts, err := p.ParseStatements()
	parser.Put(p)
	return stmts, err
}

// ParseOptions parses with explicit parser options.
func ParseOptions(sql string, d *dialect.Dialect, opts parser.Options) ([]ast.Statement, error) {
	return parser.NewWithOptions(sql, d, opts).ParseStatements()
}

// ParseOne parses a single statement, requiring the whole input to be
// consumed.
func ParseOne(sql string, d *dialect.Dialect) (ast.Statement, error) {
	p := parser.Get(sql, d)
	stmt, err := p.Parse()
	parser.Put(p)
	return stmt, err
}

// Tokenize scans the input into its token stream, including comment
// tokens, under the given dialect.
func Tokenize(sql string, d *dialect.Dialect) ([]token.Item, error) {
	return lexer.Tokenize(sql, d)
}

// String renders an AST node to canonical SQL.
func String(node ast.Node) string {
	return ast.SQL(node)
}

// Walk traverses the AST calling the function for each node. If the
// function returns false, children are not visited.
func Walk(node ast.Node, fn func(ast.Node) bool) {
	visitor.WalkFunc(node, fn)
}

// Rewrite traverses the AST allowing node replacement. The function is
// called in post-order (children first, then parent). Return the
// replacement node or the original to keep it.
func Rewrite(node ast.Node, fn func(ast.Node) ast.Node) ast.Node {
	return visitor.Rewrite(node, fn)
}

// ParserOptions are the options accepted by ParseOptions.
type ParserOptions = parser.Options

// Statement is the interface for all SQL statements.
type Statement = ast.Statement

// Expr is the interface for all expressions.
type Expr = ast.Expr

// Node is the base interface for all AST nodes.
type Node = ast.Node

// Common type aliases for convenience.
type (
	Query            = ast.Query
	SelectStmt       = ast.SelectStmt
	SetOp            = ast.SetOp
	ValuesStmt       = ast.ValuesStmt
	InsertStmt       = ast.InsertStmt
	UpdateStmt       = ast.UpdateStmt
	DeleteStmt       = ast.DeleteStmt
	MergeStmt        = ast.MergeStmt
	CreateTableStmt  = ast.CreateTableStmt
	CreateViewStmt   = ast.CreateViewStmt
	CreateIndexStmt  = ast.CreateIndexStmt
	AlterTableStmt   = ast.AlterTableStmt
	DropStmt         = ast.DropStmt
	TruncateStmt     = ast.TruncateStmt
	ExplainStmt      = ast.ExplainStmt
	Ident            = ast.Ident
	CompoundIdent    = ast.CompoundIdent
	ObjectName       = ast.ObjectName
	Literal          = ast.Literal
	BinaryExpr       = ast.BinaryExpr
	UnaryExpr        = ast.UnaryExpr
	FuncExpr         = ast.FuncExpr
	CaseExpr         = ast.CaseExpr
	CastExpr         = ast.CastExpr
	SubqueryExpr     = ast.SubqueryExpr
	ExistsExpr       = ast.ExistsExpr
	InExpr           = ast.InExpr
	BetweenExpr      = ast.BetweenExpr
	LikeExpr         = ast.LikeExpr
	IsExpr           = ast.IsExpr
	ParenExpr        = ast.ParenExpr
	StarExpr         = ast.StarExpr
	AliasedExpr      = ast.AliasedExpr
	AliasedTableExpr = ast.AliasedTableExpr
	JoinExpr         = ast.JoinExpr
	OrderByExpr      = ast.OrderByExpr
	WithClause       = ast.WithClause
	CTE              = ast.CTE
	DataType         = ast.DataType
)

// Join types.
const (
	JoinInner = ast.JoinInner
	JoinLeft  = ast.JoinLeft
	JoinRight = ast.JoinRight
	JoinFull  = ast.JoinFull
	JoinCross = ast.JoinCross
	JoinAsof  = ast.JoinAsof
)

// Literal types.
const (
	LiteralNull        = ast.LiteralNull
	LiteralBool        = ast.LiteralBool
	LiteralNumber      = ast.LiteralNumber
	LiteralString      = ast.LiteralString
	LiteralPlaceholder = ast.LiteralPlaceholder
)
