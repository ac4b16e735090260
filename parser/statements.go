package parser

import (
	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/token"
)

func (p *Parser) parseShow() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // SHOW
	s := &ast.ShowStmt{StartPos: start.Pos}
	s.Global = p.parseKeyword(token.GLOBAL)
	if !s.Global {
		s.Session = p.parseKeyword(token.SESSION)
	}
	s.Full = p.parseKeyword(token.FULL)

	switch {
	case p.parseKeyword(token.TABLES):
		s.Kind = ast.ShowTables
	case p.parseKeyword(token.DATABASES):
		s.Kind = ast.ShowDatabases
	case p.parseKeyword(token.SCHEMAS):
		s.Kind = ast.ShowSchemas
	case p.parseKeyword(token.COLUMNS):
		s.Kind = ast.ShowColumns
	case p.parseKeyword(token.VARIABLES):
		s.Kind = ast.ShowVariables
	case p.parseKeyword(token.STATUS):
		s.Kind = ast.ShowStatus
	case p.parseKeyword(token.COLLATION):
		s.Kind = ast.ShowCollation
	case p.curIs(token.CREATE):
		p.advance()
		switch {
		case p.parseKeyword(token.TABLE):
			s.Kind = ast.ShowCreateTable
		case p.parseKeyword(token.VIEW):
			s.Kind = ast.ShowCreateView
		default:
			return nil, p.Expected("TABLE or VIEW after SHOW CREATE")
		}
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		s.Name = name
	case p.curIs(token.IDENT) && equalFold(p.Cur().Value, "FUNCTIONS"):
		p.advance()
		s.Kind = ast.ShowFunctions
	default:
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		s.Kind = ast.ShowVariable
		s.Name = name
	}

	if p.parseKeyword(token.FROM) || p.parseKeyword(token.IN) {
		from, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		s.From = from
	}
	if p.parseKeyword(token.LIKE) {
		lit, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		s.Like = lit
	}
	if p.parseKeyword(token.WHERE) {
		w, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		s.Where = w
	}
	s.EndPos = p.Cur().Pos
	return s, nil
}

func (p *Parser) parseUse() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // USE
	u := &ast.UseStmt{StartPos: start.Pos}
	switch {
	case p.curIs(token.DATABASE) && p.peekIsIdentLike():
		p.advance()
		u.Keyword = "DATABASE"
	case p.curIs(token.SCHEMA) && p.peekIsIdentLike():
		p.advance()
		u.Keyword = "SCHEMA"
	case p.curIs(token.ROLE) && p.peekIsIdentLike():
		p.advance()
		u.Keyword = "ROLE"
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	u.Name = name
	u.EndPos = p.Cur().Pos
	return u, nil
}

func (p *Parser) peekIsIdentLike() bool {
	next := p.Peek()
	if next.Type == token.IDENT {
		return true
	}
	return next.Type.IsKeyword() && !reservedKeywords[next.Type]
}

func (p *Parser) parseSet() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // SET
	s := &ast.SetStmt{StartPos: start.Pos}
	switch {
	case p.parseKeyword(token.SESSION):
		s.Scope = ast.ScopeSession
	case p.parseKeyword(token.GLOBAL):
		s.Scope = ast.ScopeGlobal
	case p.parseKeyword(token.LOCAL):
		s.Scope = ast.ScopeLocal
	}

	if p.parseKeyword(token.NAMES) {
		s.Names = true
		if p.parseKeyword(token.DEFAULT) {
			s.NamesDefault = true
			s.EndPos = p.Cur().Pos
			return s, nil
		}
		cs, err := p.parseCharsetName()
		if err != nil {
			return nil, err
		}
		s.Charset = cs
		if p.parseKeyword(token.COLLATE) {
			coll, err := p.parseCharsetName()
			if err != nil {
				return nil, err
			}
			s.Collation = coll
		}
		s.EndPos = p.Cur().Pos
		return s, nil
	}

	if p.dialect.ParenthesizedSetVariables && p.curIs(token.LPAREN) {
		p.advance()
		vars, err := parseCommaSeparated(p, p.parseVariableName)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		if err := p.expect(token.EQ); err != nil {
			return nil, err
		}
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		vals, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		s.Parenthesized = true
		s.Variables = vars
		s.Values = vals
		s.EndPos = p.Cur().Pos
		return s, nil
	}

	for {
		v, err := p.parseVariableName()
		if err != nil {
			return nil, err
		}
		if !p.parseKeyword(token.EQ) && !p.parseKeyword(token.TO) {
			return nil, p.Expected("= or TO")
		}
		val, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		s.Variables = append(s.Variables, v)
		s.Values = append(s.Values, val)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	s.EndPos = p.Cur().Pos
	return s, nil
}

// parseVariableName parses a settable variable: an identifier chain or
// a @/@@-prefixed placeholder token.
func (p *Parser) parseVariableName() (*ast.ObjectName, error) {
	cur := p.Cur()
	if cur.Type == token.PARAM {
		p.advance()
		id := &ast.Ident{StartPos: cur.Pos, EndPos: endPos(cur), Value: cur.Value}
		return &ast.ObjectName{StartPos: cur.Pos, EndPos: id.EndPos, Parts: []*ast.Ident{id}}, nil
	}
	return p.parseObjectName()
}

func (p *Parser) parseCharsetName() (*ast.Ident, error) {
	cur := p.Cur()
	if cur.Type.IsStringLiteral() {
		p.advance()
		return &ast.Ident{StartPos: cur.Pos, EndPos: endPos(cur), Value: cur.Value, Quote: '\''}, nil
	}
	return p.ParseIdent()
}

func (p *Parser) parsePragma() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // PRAGMA
	pr := &ast.PragmaStmt{StartPos: start.Pos}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	pr.Name = name
	switch {
	case p.parseKeyword(token.EQ):
		v, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		pr.Eq = true
		pr.Value = v
	case p.curIs(token.LPAREN):
		p.advance()
		v, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		pr.Value = v
	}
	pr.EndPos = p.Cur().Pos
	return pr, nil
}

// parseDeclare keeps the dialect-specific DECLARE shapes apart rather
// than unifying them.
func (p *Parser) parseDeclare() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // DECLARE
	d := &ast.DeclareStmt{StartPos: start.Pos}

	if p.curIs(token.PARAM) {
		d.Kind = ast.DeclareMsSql
		decls, err := parseCommaSeparated(p, func() (*ast.Declare, error) {
			cur := p.Cur()
			if cur.Type != token.PARAM {
				return nil, p.Expected("a @variable")
			}
			p.advance()
			dec := &ast.Declare{Param: cur.Value}
			typ, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			dec.Type = typ
			if p.parseKeyword(token.EQ) {
				def, err := p.ParseExpr()
				if err != nil {
					return nil, err
				}
				dec.Default = def
			}
			return dec, nil
		})
		if err != nil {
			return nil, err
		}
		d.Decls = decls
		d.EndPos = p.Cur().Pos
		return d, nil
	}

	names, err := parseCommaSeparated(p, p.ParseIdent)
	if err != nil {
		return nil, err
	}
	if p.parseKeyword(token.CURSOR) {
		if err := p.expect(token.FOR); err != nil {
			return nil, err
		}
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		d.Kind = ast.DeclareCursor
		d.Decls = []*ast.Declare{{Names: names, Query: q}}
		d.EndPos = p.Cur().Pos
		return d, nil
	}

	if p.dialect.Name == "bigquery" {
		d.Kind = ast.DeclareBigQuery
	} else {
		d.Kind = ast.DeclareSnowflake
	}
	dec := &ast.Declare{Names: names}
	if !p.curIsAny(token.DEFAULT, token.SEMICOLON, token.EOF) {
		typ, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		dec.Type = typ
	}
	if p.parseKeyword(token.DEFAULT) {
		def, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		dec.Default = def
	}
	d.Decls = []*ast.Declare{dec}
	d.EndPos = p.Cur().Pos
	return d, nil
}

func (p *Parser) parseKill() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // KILL
	k := &ast.KillStmt{StartPos: start.Pos}
	switch {
	case p.parseKeyword(token.CONNECTION):
		k.Kind = ast.KillConnection
	case p.parseKeyword(token.QUERY):
		k.Kind = ast.KillQuery
	}
	id, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	k.ID = id
	k.EndPos = p.Cur().Pos
	return k, nil
}

func (p *Parser) parseCommit() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // COMMIT
	p.parseKeyword(token.WORK)
	c := &ast.CommitStmt{StartPos: start.Pos}
	if p.parseKeywords(token.AND, token.CHAIN) {
		c.Chain = true
	}
	c.EndPos = p.Cur().Pos
	return c, nil
}

func (p *Parser) parseRollback() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // ROLLBACK
	p.parseKeyword(token.WORK)
	r := &ast.RollbackStmt{StartPos: start.Pos}
	if p.parseKeywords(token.AND, token.CHAIN) {
		r.Chain = true
	}
	if p.parseKeyword(token.TO) {
		p.parseKeyword(token.SAVEPOINT)
		name, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		r.Savepoint = name
	}
	r.EndPos = p.Cur().Pos
	return r, nil
}

// parseBegin handles the transaction-start state machine:
// BEGIN [DEFERRED|IMMEDIATE|EXCLUSIVE] [TRANSACTION|WORK] and
// START TRANSACTION.
func (p *Parser) parseBegin() (ast.Statement, error) {
	start := p.Cur()
	b := &ast.BeginStmt{StartPos: start.Pos}
	if p.parseKeyword(token.START) {
		if err := p.expect(token.TRANSACTION); err != nil {
			return nil, err
		}
		b.Start = true
		b.EndPos = p.Cur().Pos
		return b, nil
	}
	p.advance() // BEGIN
	if p.dialect.StartTransactionModifiers {
		switch {
		case p.parseKeyword(token.DEFERRED):
			b.Modifier = ast.ModifierDeferred
		case p.parseKeyword(token.IMMEDIATE):
			b.Modifier = ast.ModifierImmediate
		case p.parseKeyword(token.EXCLUSIVE):
			b.Modifier = ast.ModifierExclusive
		}
	}
	switch {
	case p.parseKeyword(token.TRANSACTION):
		b.Transaction = true
	case p.parseKeyword(token.WORK):
		b.Work = true
	}
	b.EndPos = p.Cur().Pos
	return b, nil
}

// parseCopyInto parses the Snowflake COPY INTO statement.
func (p *Parser) parseCopyInto() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // COPY
	if err := p.expect(token.INTO); err != nil {
		return nil, err
	}
	c := &ast.CopyIntoStmt{StartPos: start.Pos}
	into, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	c.Into = into
	if err := p.expect(token.FROM); err != nil {
		return nil, err
	}
	switch {
	case p.curIs(token.LPAREN):
		p.advance()
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		c.FromQuery = q
	case p.curIs(token.PARAM):
		cur := p.Cur()
		p.advance()
		id := &ast.Ident{StartPos: cur.Pos, EndPos: endPos(cur), Value: cur.Value}
		c.FromStage = &ast.ObjectName{StartPos: cur.Pos, EndPos: id.EndPos, Parts: []*ast.Ident{id}}
	default:
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		c.FromStage = name
	}

	for p.curIs(token.IDENT) {
		key := p.Cur().Value
		switch {
		case equalFold(key, "FILES"):
			p.advance()
			if err := p.expect(token.EQ); err != nil {
				return nil, err
			}
			if err := p.expect(token.LPAREN); err != nil {
				return nil, err
			}
			files, err := parseCommaSeparated(p, p.parseStringLiteral)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			c.Files = files
		case equalFold(key, "PATTERN"):
			p.advance()
			if err := p.expect(token.EQ); err != nil {
				return nil, err
			}
			lit, err := p.parseStringLiteral()
			if err != nil {
				return nil, err
			}
			c.Pattern = lit
		case equalFold(key, "FILE_FORMAT"):
			p.advance()
			if err := p.expect(token.EQ); err != nil {
				return nil, err
			}
			kvs, err := p.parseParenKeyValues()
			if err != nil {
				return nil, err
			}
			c.FileFormat = kvs
		case equalFold(key, "VALIDATION_MODE"):
			p.advance()
			if err := p.expect(token.EQ); err != nil {
				return nil, err
			}
			mode, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			c.ValidationMode = mode.Value
		default:
			id, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.EQ); err != nil {
				return nil, err
			}
			v, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			c.CopyOptions = append(c.CopyOptions, &ast.KeyValue{Key: id, Value: v})
		}
	}
	c.EndPos = p.Cur().Pos
	return c, nil
}

// parseParenKeyValues parses ( KEY = value KEY = value ... ).
func (p *Parser) parseParenKeyValues() ([]*ast.KeyValue, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var kvs []*ast.KeyValue
	for !p.curIs(token.RPAREN) {
		key, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.EQ); err != nil {
			return nil, err
		}
		v, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, &ast.KeyValue{Key: key, Value: v})
	}
	p.advance() // )
	return kvs, nil
}

func (p *Parser) parseAttach() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // ATTACH
	a := &ast.AttachStmt{StartPos: start.Pos}
	a.Database = p.parseKeyword(token.DATABASE)
	a.IfNotExists = p.parseKeywords(token.IF, token.NOT, token.EXISTS)
	path, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	a.Path = path
	if p.parseKeyword(token.AS) {
		alias, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		a.Alias = alias
	}
	if p.curIs(token.LPAREN) {
		p.advance()
		opts, err := parseCommaSeparated(p, func() (*ast.KeyValue, error) {
			key, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			kv := &ast.KeyValue{Key: key}
			if !p.curIsAny(token.COMMA, token.RPAREN) {
				v, err := p.ParseExpr()
				if err != nil {
					return nil, err
				}
				kv.Value = v
			}
			return kv, nil
		})
		if err != nil {
			return nil, err
		}
		a.Options = opts
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
	}
	a.EndPos = p.Cur().Pos
	return a, nil
}

func (p *Parser) parseDetach() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // DETACH
	d := &ast.DetachStmt{StartPos: start.Pos}
	d.Database = p.parseKeyword(token.DATABASE)
	d.IfExists = p.parseKeywords(token.IF, token.EXISTS)
	alias, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	d.Alias = alias
	d.EndPos = p.Cur().Pos
	return d, nil
}

func (p *Parser) parseInstall() (ast.Statement, error) {
	start := p.Cur()
	i := &ast.InstallStmt{StartPos: start.Pos}
	if p.parseKeyword(token.FORCE) {
		i.Force = true
	}
	if err := p.expect(token.INSTALL); err != nil {
		return nil, err
	}
	ext, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	i.Extension = ext
	i.EndPos = p.Cur().Pos
	return i, nil
}

func (p *Parser) parseLoad() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // LOAD
	ext, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.LoadStmt{StartPos: start.Pos, EndPos: ext.EndPos, Extension: ext}, nil
}

func (p *Parser) parseFlush() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // FLUSH
	f := &ast.FlushStmt{StartPos: start.Pos}
	switch {
	case p.parseKeyword(token.LOGS):
		f.Kind = ast.FlushLogs
	case p.parseKeyword(token.PRIVILEGES):
		f.Kind = ast.FlushPrivileges
	case p.parseKeyword(token.STATUS):
		f.Kind = ast.FlushStatus
	case p.parseKeyword(token.TABLES):
		f.Kind = ast.FlushTables
		if p.identLike() {
			tables, err := parseCommaSeparated(p, p.parseObjectName)
			if err != nil {
				return nil, err
			}
			f.Tables = tables
		}
		if p.parseKeywords(token.WITH, token.READ) {
			if err := p.expect(token.LOCK); err != nil {
				return nil, err
			}
			f.ReadLock = true
		}
	default:
		return nil, p.Expected("TABLES, LOGS, PRIVILEGES, or STATUS")
	}
	f.EndPos = p.Cur().Pos
	return f, nil
}

// parseExplain handles EXPLAIN, DESCRIBE, and DESC.
func (p *Parser) parseExplain() (ast.Statement, error) {
	start := p.Cur()
	keyword := start.Type.String()
	p.advance()

	if start.Type == token.DESCRIBE || start.Type == token.DESC {
		et := &ast.ExplainTableStmt{StartPos: start.Pos, Keyword: keyword}
		if p.parseKeyword(token.TABLE) {
			et.Table = true
		} else if p.dialect.DescribeRequiresTableKeyword {
			return nil, p.Expected("TABLE")
		}
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		et.Name = name
		et.EndPos = p.Cur().Pos
		return et, nil
	}

	e := &ast.ExplainStmt{StartPos: start.Pos}
	e.Analyze = p.parseKeyword(token.ANALYZE)
	e.Verbose = p.parseKeyword(token.VERBOSE)
	if p.parseKeywords(token.QUERY, token.PLAN) {
		e.QueryPlan = true
	}
	if p.parseKeyword(token.FORMAT) {
		f, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		e.Format = upperASCII(f.Value)
	}
	if p.identLike() && !p.statementStarts() {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.ExplainTableStmt{StartPos: start.Pos, EndPos: p.Cur().Pos, Keyword: "EXPLAIN", Name: name}, nil
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	e.Stmt = stmt
	e.EndPos = p.Cur().Pos
	return e, nil
}

// statementStarts reports whether the current token begins a statement.
func (p *Parser) statementStarts() bool {
	switch p.Cur().Type {
	case token.SELECT, token.WITH, token.VALUES, token.TABLE,
		token.INSERT, token.REPLACE, token.UPDATE, token.DELETE,
		token.CREATE, token.ALTER, token.DROP, token.TRUNCATE,
		token.SHOW, token.USE, token.SET, token.PRAGMA, token.DECLARE,
		token.KILL, token.COMMIT, token.ROLLBACK, token.BEGIN,
		token.START, token.COPY, token.ATTACH, token.DETACH,
		token.INSTALL, token.LOAD, token.MERGE, token.IF, token.CALL,
		token.GRANT, token.EXPLAIN, token.LPAREN:
		return true
	}
	return false
}

// parseStatementList parses statements until one of the stop keywords.
func (p *Parser) parseStatementList(stops ...token.Token) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		for p.curIs(token.SEMICOLON) {
			p.advance()
		}
		if p.curIs(token.EOF) || p.curIsAny(stops...) {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if !p.curIs(token.SEMICOLON) && !p.curIsAny(stops...) && !p.curIs(token.EOF) {
			return nil, p.Expected("end of statement")
		}
	}
}

// parseIf parses the IF statement in both its THEN ... END IF form and
// the bare single-statement form.
func (p *Parser) parseIf() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // IF
	s := &ast.IfStmt{StartPos: start.Pos}
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	s.Condition = cond

	if p.parseKeyword(token.THEN) {
		s.ThenForm = true
		body, err := p.parseStatementList(token.ELSEIF, token.ELSE, token.END)
		if err != nil {
			return nil, err
		}
		s.Then = body
		for p.parseKeyword(token.ELSEIF) {
			eiCond, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.THEN); err != nil {
				return nil, err
			}
			eiBody, err := p.parseStatementList(token.ELSEIF, token.ELSE, token.END)
			if err != nil {
				return nil, err
			}
			s.ElseIfs = append(s.ElseIfs, &ast.ElseIf{Condition: eiCond, Body: eiBody})
		}
		if p.parseKeyword(token.ELSE) {
			elseBody, err := p.parseStatementList(token.END)
			if err != nil {
				return nil, err
			}
			s.Else = elseBody
		}
		if err := p.expect(token.END); err != nil {
			return nil, err
		}
		if err := p.expect(token.IF); err != nil {
			return nil, err
		}
		s.EndPos = p.Cur().Pos
		return s, nil
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	s.Then = []ast.Statement{stmt}
	if p.parseKeyword(token.ELSE) {
		elseStmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		s.Else = []ast.Statement{elseStmt}
	}
	s.EndPos = p.Cur().Pos
	return s, nil
}

func (p *Parser) parseCall() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // CALL
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	c := &ast.CallStmt{StartPos: start.Pos}
	if p.curIs(token.LPAREN) {
		fn, err := p.parseFunction(name)
		if err != nil {
			return nil, err
		}
		fe, ok := fn.(*ast.FuncExpr)
		if !ok {
			return nil, p.Expected("a procedure call")
		}
		c.Func = fe
	} else {
		c.Func = &ast.FuncExpr{StartPos: name.StartPos, EndPos: name.EndPos, Name: name}
	}
	c.EndPos = p.Cur().Pos
	return c, nil
}

func (p *Parser) parseGrant() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // GRANT
	g := &ast.GrantStmt{StartPos: start.Pos}
	if p.parseKeyword(token.ALL) {
		p.parseKeyword(token.PRIVILEGES)
		g.AllPrivileges = true
	} else {
		privs, err := parseCommaSeparated(p, func() (string, error) {
			cur := p.Cur()
			if cur.Type == token.IDENT || cur.Type.IsKeyword() {
				p.advance()
				if cur.Type == token.IDENT {
					return upperASCII(cur.Value), nil
				}
				return cur.Type.String(), nil
			}
			return "", p.Expected("a privilege")
		})
		if err != nil {
			return nil, err
		}
		g.Privileges = privs
	}
	if p.parseKeyword(token.ON) {
		switch {
		case p.parseKeyword(token.TABLE):
			g.ObjectType = ast.ObjectTable
		case p.parseKeyword(token.SCHEMA):
			g.ObjectType = ast.ObjectSchema
		case p.parseKeyword(token.DATABASE):
			g.ObjectType = ast.ObjectDatabase
		case p.parseKeyword(token.SEQUENCE):
			g.ObjectType = ast.ObjectSequence
		case p.parseKeyword(token.FUNCTION):
			g.ObjectType = ast.ObjectFunction
		}
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		g.On = name
	}
	if err := p.expect(token.TO); err != nil {
		return nil, err
	}
	to, err := parseCommaSeparated(p, p.ParseIdent)
	if err != nil {
		return nil, err
	}
	g.To = to
	if p.parseKeywords(token.WITH, token.GRANT) {
		if err := p.expect(token.OPTION); err != nil {
			return nil, err
		}
		g.WithGrant = true
	}
	g.EndPos = p.Cur().Pos
	return g, nil
}
