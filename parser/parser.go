// Package parser provides a recursive descent SQL parser with
// Pratt-style expression parsing and per-dialect extension hooks.
package parser

import (
	"fmt"
	"sync"

	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/dialect"
	"github.com/freeeve/sqlparse/lexer"
	"github.com/freeeve/sqlparse/token"
)

// DefaultRecursionLimit bounds parser recursion depth.
const DefaultRecursionLimit = 50

// Options control parser behavior.
type Options struct {
	// RecursionLimit is the maximum recursion depth; exceeding it fails
	// the parse with a RecursionOverflow error. Zero means the default.
	RecursionLimit int
	// TrailingCommas allows one trailing comma in lists regardless of
	// dialect.
	TrailingCommas bool
	// Unescape processes backslash and doubled-quote escapes in
	// identifiers and string literals during tokenization.
	Unescape bool
}

// DefaultOptions are the default parser options.
var DefaultOptions = Options{
	RecursionLimit: DefaultRecursionLimit,
	Unescape:       true,
}

// ParseError represents a parse error. Message carries the canonical
// "Expected <what>, found <token>, Line: L, Col: C" form.
type ParseError struct {
	Message string
	Pos     token.Pos
}

func (e *ParseError) Error() string { return e.Message }

// Parser is a recursive descent SQL parser. A Parser value is not safe
// for concurrent use; distinct parsers are independent.
type Parser struct {
	dialect *dialect.Dialect
	opts    Options

	input     string
	tokens    []token.Item // comments filtered out
	idx       int
	depth     int
	tokenized bool
	tokErr    error
}

// New creates a parser for the input under the given dialect.
func New(input string, d *dialect.Dialect) *Parser {
	return NewWithOptions(input, d, DefaultOptions)
}

// NewWithOptions creates a parser with explicit options.
func NewWithOptions(input string, d *dialect.Dialect, opts Options) *Parser {
	if opts.RecursionLimit == 0 {
		opts.RecursionLimit = DefaultRecursionLimit
	}
	return &Parser{dialect: d, opts: opts, input: input}
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// Get returns a parser from the pool for the given input. Call Put(p)
// when done to return it to the pool.
func Get(input string, d *dialect.Dialect) *Parser {
	p := parserPool.Get().(*Parser)
	p.dialect = d
	p.opts = DefaultOptions
	p.input = input
	p.tokens = p.tokens[:0]
	p.idx = 0
	p.depth = 0
	p.tokenized = false
	p.tokErr = nil
	return p
}

// Put returns the parser to the pool.
func Put(p *Parser) {
	parserPool.Put(p)
}

// tokenize runs the lexer over the whole input once, keeping every
// non-whitespace token except comments.
func (p *Parser) tokenize() error {
	if p.tokenized {
		return p.tokErr
	}
	p.tokenized = true
	l := lexer.Get(p.input, p.dialect)
	defer lexer.Put(l)
	l.SetUnescape(p.opts.Unescape)
	for {
		it := l.Next()
		if err := l.Err(); err != nil {
			p.tokErr = err
			return err
		}
		if it.Type == token.COMMENT || it.Type == token.BLOCKCOMMENT {
			continue
		}
		p.tokens = append(p.tokens, it)
		if it.Type == token.EOF {
			return nil
		}
	}
}

// ParseStatements parses all statements in the input, skipping empty
// statements between semicolons.
func (p *Parser) ParseStatements() ([]ast.Statement, error) {
	if err := p.tokenize(); err != nil {
		return nil, err
	}
	stmts := []ast.Statement{}
	for {
		for p.curIs(token.SEMICOLON) {
			p.advance()
		}
		if p.curIs(token.EOF) || p.curIs(token.END) {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if !p.curIs(token.SEMICOLON) && !p.curIs(token.EOF) && !p.curIs(token.END) {
			return nil, p.Expected("end of statement")
		}
	}
}

// Parse parses a single statement, requiring the whole input to be
// consumed apart from trailing semicolons.
func (p *Parser) Parse() (ast.Statement, error) {
	if err := p.tokenize(); err != nil {
		return nil, err
	}
	if p.curIs(token.EOF) {
		return nil, nil
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.SEMICOLON) {
		p.advance()
	}
	if !p.curIs(token.EOF) {
		return nil, p.Expected("end of statement")
	}
	return stmt, nil
}

// Token navigation. The parser holds the whole token slice so dialect
// hooks get an exact save/restore primitive instead of ad-hoc rewinds.

// Cur returns the current token.
func (p *Parser) Cur() token.Item {
	if p.idx < len(p.tokens) {
		return p.tokens[p.idx]
	}
	return token.Item{Type: token.EOF}
}

// Peek returns the token after the current one.
func (p *Parser) Peek() token.Item {
	return p.peekAt(1)
}

func (p *Parser) peekAt(n int) token.Item {
	if p.idx+n < len(p.tokens) {
		return p.tokens[p.idx+n]
	}
	return token.Item{Type: token.EOF}
}

// Advance consumes the current token.
func (p *Parser) Advance() {
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
}

// Save returns the current token position for Restore.
func (p *Parser) Save() int { return p.idx }

// Restore rewinds to a position previously returned by Save.
func (p *Parser) Restore(pos int) { p.idx = pos }

func (p *Parser) advance() { p.Advance() }

func (p *Parser) curIs(t token.Token) bool {
	return p.Cur().Type == t
}

func (p *Parser) peekIs(t token.Token) bool {
	return p.Peek().Type == t
}

func (p *Parser) curIsAny(ts ...token.Token) bool {
	cur := p.Cur().Type
	for _, t := range ts {
		if cur == t {
			return true
		}
	}
	return false
}

// parseKeyword consumes the keyword and reports true if the current
// token matches.
func (p *Parser) parseKeyword(t token.Token) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	return false
}

// parseKeywords consumes the whole keyword sequence or nothing.
func (p *Parser) parseKeywords(ts ...token.Token) bool {
	save := p.Save()
	for _, t := range ts {
		if !p.parseKeyword(t) {
			p.Restore(save)
			return false
		}
	}
	return true
}

// expect consumes the token or fails with the canonical error.
func (p *Parser) expect(t token.Token) error {
	if p.curIs(t) {
		p.advance()
		return nil
	}
	return p.Expected(t.String())
}

// Expected builds the canonical parse error at the current token.
func (p *Parser) Expected(what string) error {
	cur := p.Cur()
	return &ParseError{
		Message: fmt.Sprintf("Expected %s, found %s, Line: %d, Col: %d",
			what, cur.String(), cur.Pos.Line, cur.Pos.Column),
		Pos: cur.Pos,
	}
}

// enter guards recursive descent against stack exhaustion.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.opts.RecursionLimit {
		cur := p.Cur()
		return &ParseError{
			Message: fmt.Sprintf("RecursionOverflow: recursion limit %d exceeded, Line: %d, Col: %d",
				p.opts.RecursionLimit, cur.Pos.Line, cur.Pos.Column),
			Pos: cur.Pos,
		}
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// allowTrailingCommas reports whether general lists accept one trailing
// comma.
func (p *Parser) allowTrailingCommas() bool {
	return p.opts.TrailingCommas || p.dialect.TrailingCommas
}

// listEnds reports whether the current token can legally follow a list,
// which is what makes a trailing comma unambiguous.
func (p *Parser) listEnds() bool {
	switch p.Cur().Type {
	case token.RPAREN, token.RBRACKET, token.RBRACE, token.EOF,
		token.SEMICOLON, token.FROM, token.WHERE, token.GROUP,
		token.HAVING, token.ORDER, token.LIMIT, token.OFFSET,
		token.FETCH, token.UNION, token.INTERSECT, token.EXCEPT,
		token.END:
		return true
	}
	return false
}

// parseCommaSeparated parses one or more items separated by commas,
// honoring the trailing-comma gate.
func parseCommaSeparated[T any](p *Parser, f func() (T, error)) ([]T, error) {
	return parseCommaSeparatedExt(p, f, p.allowTrailingCommas())
}

// parseCommaSeparatedExt is the scoped-override variant used by the
// projection list, where the gate can differ from the rest of the
// statement.
func parseCommaSeparatedExt[T any](p *Parser, f func() (T, error), allowTrailing bool) ([]T, error) {
	var items []T
	for {
		item, err := f()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.curIs(token.COMMA) {
			return items, nil
		}
		p.advance()
		if allowTrailing && p.listEnds() {
			return items, nil
		}
	}
}

// parseStatement dispatches on the leading keyword after giving the
// dialect hook the first shot.
func (p *Parser) parseStatement() (ast.Statement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if hook := p.dialect.ParseStatement; hook != nil {
		save := p.Save()
		stmt, ok, err := hook(p)
		if err != nil {
			return nil, err
		}
		if ok {
			return stmt, nil
		}
		p.Restore(save)
	}

	switch p.Cur().Type {
	case token.SELECT, token.WITH, token.VALUES, token.LPAREN, token.TABLE:
		return p.parseQuery()
	case token.INSERT, token.REPLACE:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlter()
	case token.DROP:
		return p.parseDrop()
	case token.TRUNCATE:
		return p.parseTruncate()
	case token.SHOW:
		return p.parseShow()
	case token.USE:
		return p.parseUse()
	case token.SET:
		return p.parseSet()
	case token.PRAGMA:
		return p.parsePragma()
	case token.DECLARE:
		return p.parseDeclare()
	case token.KILL:
		return p.parseKill()
	case token.COMMIT:
		return p.parseCommit()
	case token.ROLLBACK:
		return p.parseRollback()
	case token.BEGIN, token.START:
		return p.parseBegin()
	case token.COPY:
		return p.parseCopyInto()
	case token.ATTACH:
		return p.parseAttach()
	case token.DETACH:
		return p.parseDetach()
	case token.INSTALL, token.FORCE:
		return p.parseInstall()
	case token.LOAD:
		return p.parseLoad()
	case token.COMMENT_KW:
		return p.parseComment()
	case token.FLUSH:
		return p.parseFlush()
	case token.EXPLAIN, token.DESCRIBE, token.DESC:
		return p.parseExplain()
	case token.MERGE:
		return p.parseMerge()
	case token.IF:
		return p.parseIf()
	case token.CALL:
		return p.parseCall()
	case token.GRANT:
		return p.parseGrant()
	}
	return nil, p.Expected("a SQL statement")
}

// Interface checks: the parser is the dialect hooks' view of itself.
var _ dialect.Parser = (*Parser)(nil)
