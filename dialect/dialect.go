// Package dialect defines the per-dialect lexical rules, feature flags,
// and parser extension hooks. A Dialect is a plain record: dialects
// compose by flag, not inheritance, and the parser consults the active
// dialect at every extension point.
package dialect

import (
	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/token"
)

// Parser is the view of the parser that dialect hooks receive. It exposes
// token navigation with an explicit save/restore primitive, and re-entry
// points into expression parsing.
type Parser interface {
	// Cur returns the current token.
	Cur() token.Item
	// Peek returns the token after the current one.
	Peek() token.Item
	// Advance consumes the current token.
	Advance()
	// Save returns a position that Restore rewinds to. Hooks that peek
	// past the current token must save first and restore before
	// returning "not handled".
	Save() int
	// Restore rewinds to a position previously returned by Save.
	Restore(pos int)
	// ParseExpr parses a full expression.
	ParseExpr() (ast.Expr, error)
	// ParseSubExpr parses an expression with a minimum binding power.
	ParseSubExpr(minPrec int) (ast.Expr, error)
	// ParsePrefixDefault runs the built-in prefix parser, bypassing the
	// dialect hook.
	ParsePrefixDefault() (ast.Expr, error)
	// ParseIdent parses a single (possibly quoted) identifier.
	ParseIdent() (*ast.Ident, error)
	// Expected builds the canonical "Expected <what>, found <token>"
	// parse error at the current token.
	Expected(what string) error
}

// Dialect bundles the lexical rules, feature flags, precedence override,
// and parse hooks of one SQL variant. A nil hook, or a hook returning
// ok == false, means "not handled — use the default behavior".
type Dialect struct {
	Name string

	// Character classifiers used by the tokenizer.
	IdentifierStart          func(ch byte) bool
	IdentifierPart           func(ch byte) bool
	DelimitedIdentifierStart func(ch byte) bool
	CustomOperatorPart       func(ch byte) bool

	// IdentifierQuote is the delimiter this dialect quotes identifiers
	// with when quoting is needed.
	IdentifierQuote byte

	// Lexical feature flags.
	StringLiteralBackslashEscape bool // '\n' is an escape inside '...'
	EscapeStringLiterals         bool // E'...' with backslash escapes
	TripleQuotedStrings          bool // '''...''' and """..."""
	UnicodeStringLiterals        bool // U&'...'
	NationalStringLiterals       bool // N'...'
	RawStringLiterals            bool // R'...', B'...'
	DollarQuotedStrings          bool // $tag$...$tag$
	NumericPrefixIdentifiers     bool // 59901_user is an identifier
	NumericLongSuffix            bool // 123L
	HashComments                 bool // # line comments
	SlashSlashComments           bool // // line comments
	NestedBlockComments          bool // /* /* */ */
	AtPlaceholders               bool // @name is a placeholder value
	ColonPlaceholders            bool // :name / :1 placeholders
	DollarPlaceholders           bool // $1 placeholders

	// Grammar feature flags.
	FilterDuringAggregation         bool // FILTER (WHERE ...) after aggregates
	DictionarySyntax                bool // {'k': v} literals
	LambdaFunctions                 bool // x -> x + 1
	MatchRecognize                  bool
	ConnectBy                       bool
	SelectWildcardExcept            bool // SELECT * EXCEPT (...)
	SelectWildcardExclude           bool // SELECT * EXCLUDE (...)
	SelectWildcardReplace           bool // SELECT * REPLACE (...)
	SelectWildcardRename            bool // SELECT * RENAME (...)
	TrailingCommas                  bool
	ProjectionTrailingCommas        bool
	WindowFunctionNullTreatmentArg  bool // IGNORE NULLS inside the arg list
	ConvertTypeBeforeValue          bool // CONVERT(type, expr)
	RequireIntervalQualifier        bool
	DescribeRequiresTableKeyword    bool
	StartTransactionModifiers       bool // BEGIN DEFERRED/IMMEDIATE/EXCLUSIVE
	NamedFunctionArgsWithEqOperator bool // f(name = value)
	ParenthesizedSetVariables       bool // SET (a, b) = (1, 2)
	InEmptyList                     bool // x IN ()
	GroupByAll                      bool // GROUP BY ALL
	SubstringFromFor                bool // SUBSTRING(x FROM 1 FOR 2)
	ExtractCustomFields             bool // EXTRACT(some_ident FROM x)
	ExtractSingleQuotes             bool // EXTRACT('year' FROM x)
	LimitComma                      bool // LIMIT a, b
	TopBeforeProjection             bool // SELECT TOP n ...
	ValueTableMode                  bool // SELECT AS STRUCT / AS VALUE
	AsofJoins                       bool
	ColonJsonAccess                 bool // a:b.c Snowflake JSON path
	OuterJoinMarker                 bool // col (+) Oracle marker
	DoubleColonCast                 bool // expr::type

	// Ladder is the dialect's precedence assignment; nil means the
	// default ladder.
	Ladder *Ladder

	// Parse hooks. Each returns ok == false to fall through to the
	// default grammar.
	ParseStatement func(p Parser) (ast.Statement, bool, error)
	ParsePrefix    func(p Parser) (ast.Expr, bool, error)
	ParseInfix     func(p Parser, lhs ast.Expr, prec int) (ast.Expr, bool, error)
	// NextPrecedence overrides the binding power of the current token.
	NextPrecedence func(p Parser) (int, bool)
}

// Default character classes, shared by most dialects.

func defaultIdentifierStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func defaultIdentifierPart(ch byte) bool {
	return defaultIdentifierStart(ch) || (ch >= '0' && ch <= '9') || ch == '$'
}

func doubleQuoteDelimited(ch byte) bool {
	return ch == '"'
}

func backtickDelimited(ch byte) bool {
	return ch == '`'
}

func doubleQuoteOrBracketDelimited(ch byte) bool {
	return ch == '"' || ch == '[' || ch == '`'
}

func postgresOperatorPart(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '<', '>', '=', '~', '!', '@', '#', '%',
		'^', '&', '|', '`', '?':
		return true
	}
	return false
}
