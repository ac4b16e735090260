package parser

import (
	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/token"
)

// parseCreate dispatches the CREATE statement family.
func (p *Parser) parseCreate() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // CREATE

	orReplace := p.parseKeywords(token.OR, token.REPLACE)
	temporary := p.parseKeyword(token.TEMPORARY) || p.parseKeyword(token.TEMP)
	persistent := p.parseKeyword(token.PERSISTENT)
	unlogged := p.parseKeyword(token.UNLOGGED)
	external := p.parseKeyword(token.EXTERNAL)
	materialized := p.parseKeyword(token.MATERIALIZED)
	virtual := p.parseKeyword(token.VIRTUAL)
	unique := p.parseKeyword(token.UNIQUE)

	switch p.Cur().Type {
	case token.TABLE:
		if virtual {
			return p.parseCreateVirtualTable(start)
		}
		return p.parseCreateTable(start, orReplace, temporary, unlogged, external)
	case token.VIEW:
		return p.parseCreateView(start, orReplace, materialized, temporary)
	case token.INDEX:
		return p.parseCreateIndex(start, unique)
	case token.STAGE:
		return p.parseCreateStage(start, orReplace, temporary)
	case token.ROLE:
		return p.parseCreateRole(start)
	case token.FUNCTION:
		return p.parseCreateFunction(start, orReplace, temporary)
	case token.MACRO:
		return p.parseCreateMacro(start, orReplace, temporary)
	case token.SECRET:
		return p.parseCreateSecret(start, orReplace, temporary, persistent)
	case token.PROCEDURE:
		return p.parseCreateProcedure(start, orReplace)
	}
	return nil, p.Expected("an object type after CREATE")
}

func (p *Parser) parseCreateTable(start token.Item, orReplace, temporary, unlogged, external bool) (ast.Statement, error) {
	p.advance() // TABLE
	ct := &ast.CreateTableStmt{
		StartPos:  start.Pos,
		OrReplace: orReplace,
		Temporary: temporary,
		Unlogged:  unlogged,
		External:  external,
	}
	ct.IfNotExists = p.parseKeywords(token.IF, token.NOT, token.EXISTS)

	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ct.Name = name

	if p.curIs(token.LPAREN) && !p.peekIs(token.SELECT) && !p.peekIs(token.WITH) {
		p.advance()
		items, err := parseCommaSeparated(p, func() (any, error) {
			if p.startsTableConstraint() {
				return p.parseTableConstraint()
			}
			return p.parseColumnDef()
		})
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			switch v := it.(type) {
			case *ast.ColumnDef:
				ct.Columns = append(ct.Columns, v)
			case *ast.TableConstraint:
				ct.Constraints = append(ct.Constraints, v)
			}
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
	}

	if err := p.parseTableOptions(ct); err != nil {
		return nil, err
	}

	if p.parseKeyword(token.AS) {
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		ct.As = q
	}
	ct.EndPos = p.Cur().Pos
	return ct, nil
}

// parseTableOptions parses the trailing CREATE TABLE option block.
func (p *Parser) parseTableOptions(ct *ast.CreateTableStmt) error {
	for {
		switch {
		case p.parseKeywords(token.PARTITION, token.BY):
			e, err := p.ParseExpr()
			if err != nil {
				return err
			}
			ct.PartitionBy = e
		case p.parseKeywords(token.CLUSTER, token.BY):
			exprs, err := parseCommaSeparated(p, p.ParseExpr)
			if err != nil {
				return err
			}
			ct.ClusterBy = exprs
		case p.parseKeywords(token.ORDER, token.BY):
			exprs, err := parseCommaSeparated(p, p.ParseExpr)
			if err != nil {
				return err
			}
			ct.OrderBy = exprs
		case p.parseKeywords(token.WITHOUT, token.ROWID):
			ct.WithoutRowID = true
		case p.parseKeyword(token.STRICT):
			ct.Strict = true
		case p.curIs(token.ENGINE):
			p.advance()
			opt, err := p.parseTableOptionValue("ENGINE", true)
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.curIs(token.COMMENT_KW):
			p.advance()
			opt, err := p.parseTableOptionValue("COMMENT", true)
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.curIs(token.COLLATE):
			p.advance()
			opt, err := p.parseTableOptionValue("COLLATE", true)
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.curIs(token.AUTO_INCREMENT):
			p.advance()
			opt, err := p.parseTableOptionValue("AUTO_INCREMENT", true)
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.parseKeywords(token.DEFAULT, token.CHARSET):
			opt, err := p.parseTableOptionValue("DEFAULT CHARSET", true)
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.parseKeywords(token.DEFAULT, token.CHARACTER, token.SET):
			opt, err := p.parseTableOptionValue("DEFAULT CHARACTER SET", true)
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.curIs(token.CHARSET):
			p.advance()
			opt, err := p.parseTableOptionValue("CHARSET", true)
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.curIs(token.TBLPROPERTIES):
			p.advance()
			opt, err := p.parseParenOption("TBLPROPERTIES")
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.curIs(token.OPTIONS):
			p.advance()
			opt, err := p.parseParenOption("OPTIONS")
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.curIs(token.WITH) && p.peekIs(token.LPAREN):
			p.advance()
			opt, err := p.parseParenOption("WITH")
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		case p.parseKeyword(token.LOCATION):
			lit, err := p.parseStringLiteral()
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, &ast.TableOption{Name: "LOCATION", Value: lit})
		case p.parseKeywords(token.STORED, token.AS):
			id, err := p.ParseIdent()
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, &ast.TableOption{Name: "STORED AS", Value: id})
		case p.parseKeywords(token.CLUSTERED, token.BY):
			opt, err := p.parseParenOption("CLUSTERED BY")
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, opt)
		default:
			return nil
		}
	}
}

func (p *Parser) parseTableOptionValue(name string, allowEq bool) (*ast.TableOption, error) {
	opt := &ast.TableOption{Name: name}
	if allowEq && p.parseKeyword(token.EQ) {
		opt.Eq = true
	}
	v, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	opt.Value = v
	return opt, nil
}

// parseParenOption parses NAME (expr, ...) into a single option whose
// value is the parenthesized list.
func (p *Parser) parseParenOption(name string) (*ast.TableOption, error) {
	open := p.Cur()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	exprs, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.TableOption{
		Name:  name,
		Value: &ast.TupleExpr{StartPos: open.Pos, EndPos: endPos(end), Exprs: exprs},
	}, nil
}

// startsTableConstraint reports whether the current tokens begin a
// table-level constraint rather than a column definition.
func (p *Parser) startsTableConstraint() bool {
	switch p.Cur().Type {
	case token.CONSTRAINT, token.FOREIGN, token.CHECK:
		return true
	case token.PRIMARY:
		return p.peekIs(token.KEY)
	case token.UNIQUE:
		return p.peekIs(token.LPAREN) || p.peekIs(token.KEY)
	}
	return false
}

func (p *Parser) parseTableConstraint() (*ast.TableConstraint, error) {
	c := &ast.TableConstraint{}
	if p.parseKeyword(token.CONSTRAINT) {
		name, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		c.Name = name
	}
	switch {
	case p.parseKeywords(token.PRIMARY, token.KEY):
		c.Kind = ast.ConstraintPrimaryKey
		cols, err := p.parseParenIdents()
		if err != nil {
			return nil, err
		}
		c.Columns = cols
	case p.parseKeyword(token.UNIQUE):
		p.parseKeyword(token.KEY)
		c.Kind = ast.ConstraintUnique
		cols, err := p.parseParenIdents()
		if err != nil {
			return nil, err
		}
		c.Columns = cols
	case p.parseKeywords(token.FOREIGN, token.KEY):
		c.Kind = ast.ConstraintForeignKey
		cols, err := p.parseParenIdents()
		if err != nil {
			return nil, err
		}
		c.Columns = cols
		refs, err := p.parseForeignKeyRef()
		if err != nil {
			return nil, err
		}
		c.Refs = refs
	case p.parseKeyword(token.CHECK):
		c.Kind = ast.ConstraintCheck
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		c.Expr = e
	default:
		return nil, p.Expected("a table constraint")
	}
	return c, nil
}

func (p *Parser) parseParenIdents() ([]*ast.Ident, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	ids, err := parseCommaSeparated(p, p.ParseIdent)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return ids, nil
}

func (p *Parser) parseForeignKeyRef() (*ast.ForeignKeyRef, error) {
	if err := p.expect(token.REFERENCES); err != nil {
		return nil, err
	}
	refs := &ast.ForeignKeyRef{}
	table, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	refs.Table = table
	if p.curIs(token.LPAREN) {
		cols, err := p.parseParenIdents()
		if err != nil {
			return nil, err
		}
		refs.Columns = cols
	}
	for p.curIs(token.ON) {
		p.advance()
		var action *ast.RefAction
		switch {
		case p.parseKeyword(token.DELETE):
			action = &refs.OnDelete
		case p.parseKeyword(token.UPDATE):
			action = &refs.OnUpdate
		default:
			return nil, p.Expected("DELETE or UPDATE")
		}
		switch {
		case p.parseKeywords(token.NO, token.ACTION):
			*action = ast.RefNoAction
		case p.parseKeyword(token.CASCADE):
			*action = ast.RefCascade
		case p.parseKeywords(token.SET, token.NULL):
			*action = ast.RefSetNull
		case p.parseKeywords(token.SET, token.DEFAULT):
			*action = ast.RefSetDefault
		case p.parseKeyword(token.RESTRICT):
			*action = ast.RefRestrict
		default:
			return nil, p.Expected("a referential action")
		}
	}
	return refs, nil
}

// parseColumnDef parses one column definition with its options.
func (p *Parser) parseColumnDef() (*ast.ColumnDef, error) {
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	col := &ast.ColumnDef{Name: name, Type: typ}
	for {
		opt, ok, err := p.parseColumnOption()
		if err != nil {
			return nil, err
		}
		if !ok {
			return col, nil
		}
		col.Options = append(col.Options, opt)
	}
}

func (p *Parser) parseColumnOption() (*ast.ColumnOption, bool, error) {
	opt := &ast.ColumnOption{}
	if p.curIs(token.CONSTRAINT) {
		p.advance()
		name, err := p.ParseIdent()
		if err != nil {
			return nil, false, err
		}
		opt.Name = name
	}
	switch {
	case p.parseKeywords(token.NOT, token.NULL):
		opt.Kind = ast.ColumnOptionNotNull
	case p.parseKeyword(token.NULL):
		opt.Kind = ast.ColumnOptionNull
	case p.parseKeyword(token.DEFAULT):
		e, err := p.ParseExpr()
		if err != nil {
			return nil, false, err
		}
		opt.Kind = ast.ColumnOptionDefault
		opt.Expr = e
	case p.parseKeywords(token.PRIMARY, token.KEY):
		opt.Kind = ast.ColumnOptionPrimaryKey
	case p.parseKeyword(token.UNIQUE):
		p.parseKeyword(token.KEY)
		opt.Kind = ast.ColumnOptionUnique
	case p.parseKeyword(token.CHECK):
		if err := p.expect(token.LPAREN); err != nil {
			return nil, false, err
		}
		e, err := p.ParseExpr()
		if err != nil {
			return nil, false, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, false, err
		}
		opt.Kind = ast.ColumnOptionCheck
		opt.Expr = e
	case p.curIs(token.REFERENCES):
		refs, err := p.parseForeignKeyRef()
		if err != nil {
			return nil, false, err
		}
		opt.Kind = ast.ColumnOptionReferences
		opt.Refs = refs
	case p.parseKeyword(token.GENERATED):
		if !p.parseKeyword(token.ALWAYS) {
			p.parseKeywords(token.BY, token.DEFAULT)
		}
		if err := p.expect(token.AS); err != nil {
			return nil, false, err
		}
		if err := p.expect(token.LPAREN); err != nil {
			return nil, false, err
		}
		e, err := p.ParseExpr()
		if err != nil {
			return nil, false, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, false, err
		}
		opt.Kind = ast.ColumnOptionGenerated
		opt.Expr = e
		if p.parseKeyword(token.STORED) {
			opt.GeneratedStored = true
		} else {
			p.parseKeyword(token.VIRTUAL)
		}
	case p.parseKeyword(token.COLLATE):
		n, err := p.parseObjectName()
		if err != nil {
			return nil, false, err
		}
		opt.Kind = ast.ColumnOptionCollate
		opt.Object = n
	case p.parseKeywords(token.CHARACTER, token.SET):
		n, err := p.parseObjectName()
		if err != nil {
			return nil, false, err
		}
		opt.Kind = ast.ColumnOptionCharacterSet
		opt.Object = n
	case p.parseKeyword(token.COMMENT_KW):
		lit, err := p.parseStringLiteral()
		if err != nil {
			return nil, false, err
		}
		opt.Kind = ast.ColumnOptionComment
		opt.Expr = lit
	case p.parseKeywords(token.ON, token.UPDATE):
		e, err := p.ParseExpr()
		if err != nil {
			return nil, false, err
		}
		opt.Kind = ast.ColumnOptionOnUpdate
		opt.Expr = e
	case p.curIs(token.AUTO_INCREMENT):
		p.advance()
		opt.Kind = ast.ColumnOptionAutoIncrement
		opt.Text = "AUTO_INCREMENT"
	case p.curIs(token.AUTOINCREMENT):
		p.advance()
		opt.Kind = ast.ColumnOptionAutoIncrement
		opt.Text = "AUTOINCREMENT"
	default:
		if opt.Name != nil {
			return nil, false, p.Expected("a column option after CONSTRAINT")
		}
		return nil, false, nil
	}
	return opt, true, nil
}

func (p *Parser) parseCreateView(start token.Item, orReplace, materialized, temporary bool) (ast.Statement, error) {
	p.advance() // VIEW
	cv := &ast.CreateViewStmt{
		StartPos:     start.Pos,
		OrReplace:    orReplace,
		Materialized: materialized,
		Temporary:    temporary,
	}
	cv.IfNotExists = p.parseKeywords(token.IF, token.NOT, token.EXISTS)
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cv.Name = name
	if p.curIs(token.LPAREN) {
		cols, err := p.parseParenIdents()
		if err != nil {
			return nil, err
		}
		cv.Columns = cols
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	q, err := p.parseQueryBody()
	if err != nil {
		return nil, err
	}
	cv.Query = q
	cv.EndPos = p.Cur().Pos
	return cv, nil
}

func (p *Parser) parseCreateIndex(start token.Item, unique bool) (ast.Statement, error) {
	p.advance() // INDEX
	ci := &ast.CreateIndexStmt{StartPos: start.Pos, Unique: unique}
	ci.IfNotExists = p.parseKeywords(token.IF, token.NOT, token.EXISTS)
	if !p.curIs(token.ON) {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		ci.Name = name
	}
	if err := p.expect(token.ON); err != nil {
		return nil, err
	}
	table, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ci.Table = table
	if p.parseKeyword(token.USING) {
		using, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		ci.Using = using
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cols, err := parseCommaSeparated(p, func() (*ast.IndexColumn, error) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		ic := &ast.IndexColumn{Expr: e}
		switch {
		case p.parseKeyword(token.DESC):
			ic.Desc = true
		case p.parseKeyword(token.ASC):
		}
		if p.parseKeyword(token.NULLS) {
			switch {
			case p.parseKeyword(token.FIRST):
				t := true
				ic.NullsFirst = &t
			case p.parseKeyword(token.LAST):
				f := false
				ic.NullsFirst = &f
			default:
				return nil, p.Expected("FIRST or LAST")
			}
		}
		return ic, nil
	})
	if err != nil {
		return nil, err
	}
	ci.Columns = cols
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if p.parseKeyword(token.WHERE) {
		w, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		ci.Where = w
	}
	ci.EndPos = p.Cur().Pos
	return ci, nil
}

func (p *Parser) parseCreateStage(start token.Item, orReplace, temporary bool) (ast.Statement, error) {
	p.advance() // STAGE
	cs := &ast.CreateStageStmt{StartPos: start.Pos, OrReplace: orReplace, Temporary: temporary}
	cs.IfNotExists = p.parseKeywords(token.IF, token.NOT, token.EXISTS)
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cs.Name = name
	for {
		switch {
		case p.curIs(token.COMMENT_KW):
			p.advance()
			p.parseKeyword(token.EQ)
			lit, err := p.parseStringLiteral()
			if err != nil {
				return nil, err
			}
			cs.Comment = lit
		case p.curIs(token.IDENT) && equalFold(p.Cur().Value, "URL"):
			p.advance()
			if err := p.expect(token.EQ); err != nil {
				return nil, err
			}
			lit, err := p.parseStringLiteral()
			if err != nil {
				return nil, err
			}
			cs.URL = lit
		case p.identLike() && p.peekIs(token.EQ):
			key, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			p.advance() // =
			val, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			cs.Options = append(cs.Options, &ast.KeyValue{Key: key, Value: val})
		default:
			cs.EndPos = p.Cur().Pos
			return cs, nil
		}
	}
}

func (p *Parser) parseCreateRole(start token.Item) (ast.Statement, error) {
	p.advance() // ROLE
	cr := &ast.CreateRoleStmt{StartPos: start.Pos}
	cr.IfNotExists = p.parseKeywords(token.IF, token.NOT, token.EXISTS)
	names, err := parseCommaSeparated(p, p.ParseIdent)
	if err != nil {
		return nil, err
	}
	cr.Names = names
	if p.parseKeyword(token.WITH) {
		for p.identLike() {
			key, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			kv := &ast.KeyValue{Key: key}
			if t := p.Cur().Type; t.IsLiteral() && t != token.IDENT {
				v, err := p.ParseExpr()
				if err != nil {
					return nil, err
				}
				kv.Value = v
			}
			cr.Options = append(cr.Options, kv)
		}
	}
	cr.EndPos = p.Cur().Pos
	return cr, nil
}

func (p *Parser) parseCreateFunction(start token.Item, orReplace, temporary bool) (ast.Statement, error) {
	p.advance() // FUNCTION
	cf := &ast.CreateFunctionStmt{StartPos: start.Pos, OrReplace: orReplace, Temporary: temporary}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cf.Name = name
	args, err := p.parseFunctionArgList()
	if err != nil {
		return nil, err
	}
	cf.Args = args
	for {
		switch {
		case p.parseKeyword(token.RETURNS):
			t, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			cf.Returns = t
		case p.parseKeyword(token.LANGUAGE):
			lang, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			cf.Language = lang
		case p.parseKeyword(token.AS):
			body, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			cf.As = body
		case p.parseKeyword(token.RETURN):
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			cf.Return = e
		default:
			cf.EndPos = p.Cur().Pos
			return cf, nil
		}
	}
}

func (p *Parser) parseFunctionArgList() ([]*ast.FunctionArg, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if p.curIs(token.RPAREN) {
		p.advance()
		return nil, nil
	}
	args, err := parseCommaSeparated(p, p.parseFunctionArgDef)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseFunctionArgDef() (*ast.FunctionArg, error) {
	arg := &ast.FunctionArg{}
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	arg.Name = name
	if !p.curIsAny(token.COMMA, token.RPAREN, token.ASSIGN) {
		t, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		arg.Type = t
	}
	if p.parseKeyword(token.ASSIGN) || p.parseKeyword(token.DEFAULT) {
		def, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		arg.Default = def
	}
	return arg, nil
}

func (p *Parser) parseCreateMacro(start token.Item, orReplace, temporary bool) (ast.Statement, error) {
	p.advance() // MACRO
	cm := &ast.CreateMacroStmt{StartPos: start.Pos, OrReplace: orReplace, Temporary: temporary}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cm.Name = name
	args, err := p.parseFunctionArgList()
	if err != nil {
		return nil, err
	}
	cm.Args = args
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	if p.parseKeyword(token.TABLE) {
		cm.Table = true
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		cm.Query = q
	} else {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		cm.Expr = e
	}
	cm.EndPos = p.Cur().Pos
	return cm, nil
}

func (p *Parser) parseCreateSecret(start token.Item, orReplace, temporary, persistent bool) (ast.Statement, error) {
	p.advance() // SECRET
	cs := &ast.CreateSecretStmt{
		StartPos:   start.Pos,
		OrReplace:  orReplace,
		Temporary:  temporary,
		Persistent: persistent,
	}
	cs.IfNotExists = p.parseKeywords(token.IF, token.NOT, token.EXISTS)
	if !p.curIs(token.LPAREN) {
		name, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		cs.Name = name
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	opts, err := parseCommaSeparated(p, func() (*ast.KeyValue, error) {
		key, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		val, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.KeyValue{Key: key, Value: val}, nil
	})
	if err != nil {
		return nil, err
	}
	cs.Options = opts
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	cs.EndPos = p.Cur().Pos
	return cs, nil
}

func (p *Parser) parseCreateVirtualTable(start token.Item) (ast.Statement, error) {
	p.advance() // TABLE
	cv := &ast.CreateVirtualTableStmt{StartPos: start.Pos}
	cv.IfNotExists = p.parseKeywords(token.IF, token.NOT, token.EXISTS)
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cv.Name = name
	if err := p.expect(token.USING); err != nil {
		return nil, err
	}
	module, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	cv.Module = module
	if p.curIs(token.LPAREN) {
		p.advance()
		args, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		cv.Args = args
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
	}
	cv.EndPos = p.Cur().Pos
	return cv, nil
}

func (p *Parser) parseCreateProcedure(start token.Item, orReplace bool) (ast.Statement, error) {
	p.advance() // PROCEDURE
	cp := &ast.CreateProcedureStmt{StartPos: start.Pos, OrReplace: orReplace}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cp.Name = name
	if p.curIs(token.LPAREN) {
		args, err := p.parseFunctionArgList()
		if err != nil {
			return nil, err
		}
		cp.Args = args
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	if err := p.expect(token.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.ParseStatements()
	if err != nil {
		return nil, err
	}
	cp.Body = body
	if err := p.expect(token.END); err != nil {
		return nil, err
	}
	cp.EndPos = p.Cur().Pos
	return cp, nil
}

// parseAlter dispatches ALTER TABLE and ALTER ROLE.
func (p *Parser) parseAlter() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // ALTER
	switch {
	case p.parseKeyword(token.TABLE):
		return p.parseAlterTable(start)
	case p.parseKeyword(token.ROLE):
		return p.parseAlterRole(start)
	}
	return nil, p.Expected("TABLE or ROLE after ALTER")
}

func (p *Parser) parseAlterTable(start token.Item) (ast.Statement, error) {
	at := &ast.AlterTableStmt{StartPos: start.Pos}
	at.IfExists = p.parseKeywords(token.IF, token.EXISTS)
	at.Only = p.parseKeyword(token.ONLY)
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	at.Name = name
	actions, err := parseCommaSeparated(p, p.parseAlterTableAction)
	if err != nil {
		return nil, err
	}
	at.Actions = actions
	at.EndPos = p.Cur().Pos
	return at, nil
}

func (p *Parser) parseAlterTableAction() (ast.AlterTableAction, error) {
	switch {
	case p.parseKeyword(token.ADD):
		if p.startsTableConstraint() {
			c, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			return &ast.AddConstraint{Constraint: c}, nil
		}
		p.parseKeyword(token.COLUMN)
		add := &ast.AddColumn{IfNotExists: p.parseKeywords(token.IF, token.NOT, token.EXISTS)}
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		add.Column = col
		return add, nil
	case p.parseKeyword(token.DROP):
		if p.parseKeyword(token.CONSTRAINT) {
			dc := &ast.DropConstraint{IfExists: p.parseKeywords(token.IF, token.EXISTS)}
			name, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			dc.Name = name
			dc.Cascade = p.parseKeyword(token.CASCADE)
			return dc, nil
		}
		p.parseKeyword(token.COLUMN)
		dc := &ast.DropColumn{IfExists: p.parseKeywords(token.IF, token.EXISTS)}
		name, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		dc.Name = name
		dc.Cascade = p.parseKeyword(token.CASCADE)
		return dc, nil
	case p.parseKeyword(token.MODIFY):
		p.parseKeyword(token.COLUMN)
		def, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		return &ast.ModifyColumn{Name: def.Name, NewDef: def}, nil
	case p.parseKeyword(token.CHANGE):
		p.parseKeyword(token.COLUMN)
		old, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		def, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		return &ast.ModifyColumn{Name: old, NewDef: def}, nil
	case p.parseKeyword(token.ALTER):
		p.parseKeyword(token.COLUMN)
		name, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		mc := &ast.ModifyColumn{Name: name}
		switch {
		case p.parseKeywords(token.SET, token.DATA, token.TYPE):
			t, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			mc.SetType = t
		case p.parseKeywords(token.SET, token.DEFAULT):
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			mc.SetDefault = e
		case p.parseKeywords(token.DROP, token.DEFAULT):
			mc.DropDefault = true
		case p.parseKeywords(token.SET, token.NOT, token.NULL):
			mc.SetNotNull = true
		case p.parseKeywords(token.DROP, token.NOT, token.NULL):
			mc.DropNotNull = true
		default:
			return nil, p.Expected("SET or DROP")
		}
		return mc, nil
	case p.parseKeyword(token.RENAME):
		if p.parseKeyword(token.COLUMN) {
			old, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.TO); err != nil {
				return nil, err
			}
			nw, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			return &ast.RenameColumn{Old: old, New: nw}, nil
		}
		if err := p.expect(token.TO); err != nil {
			return nil, err
		}
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.RenameTable{NewName: name}, nil
	}
	return nil, p.Expected("an ALTER TABLE action")
}

func (p *Parser) parseAlterRole(start token.Item) (ast.Statement, error) {
	ar := &ast.AlterRoleStmt{StartPos: start.Pos}
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	ar.Name = name
	switch {
	case p.parseKeyword(token.RENAME):
		if err := p.expect(token.TO); err != nil {
			return nil, err
		}
		to, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		ar.RenameTo = to
	case p.parseKeyword(token.SET):
		for p.identLike() {
			key, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.EQ); err != nil {
				return nil, err
			}
			val, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			ar.Set = append(ar.Set, &ast.KeyValue{Key: key, Value: val})
		}
	default:
		return nil, p.Expected("RENAME or SET")
	}
	ar.EndPos = p.Cur().Pos
	return ar, nil
}

// parseDrop parses the DROP statement family.
func (p *Parser) parseDrop() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // DROP
	persistent := p.parseKeyword(token.PERSISTENT)
	temporary := p.parseKeyword(token.TEMPORARY) || p.parseKeyword(token.TEMP)

	if p.parseKeyword(token.SECRET) {
		ds := &ast.DropSecretStmt{
			StartPos:   start.Pos,
			Persistent: persistent,
			Temporary:  temporary,
		}
		ds.IfExists = p.parseKeywords(token.IF, token.EXISTS)
		name, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		ds.Name = name
		ds.EndPos = p.Cur().Pos
		return ds, nil
	}

	var typ ast.ObjectType
	switch p.Cur().Type {
	case token.TABLE:
		typ = ast.ObjectTable
	case token.VIEW:
		typ = ast.ObjectView
	case token.INDEX:
		typ = ast.ObjectIndex
	case token.SCHEMA:
		typ = ast.ObjectSchema
	case token.DATABASE:
		typ = ast.ObjectDatabase
	case token.FUNCTION:
		typ = ast.ObjectFunction
	case token.PROCEDURE:
		typ = ast.ObjectProcedure
	case token.MACRO:
		typ = ast.ObjectMacro
	case token.ROLE:
		typ = ast.ObjectRole
	case token.SEQUENCE:
		typ = ast.ObjectSequence
	case token.STAGE:
		typ = ast.ObjectStage
	case token.EXTENSION:
		typ = ast.ObjectExtension
	default:
		return nil, p.Expected("an object type after DROP")
	}
	p.advance()

	ds := &ast.DropStmt{StartPos: start.Pos, Type: typ, Temporary: temporary}
	ds.IfExists = p.parseKeywords(token.IF, token.EXISTS)
	names, err := parseCommaSeparated(p, p.parseObjectName)
	if err != nil {
		return nil, err
	}
	ds.Names = names
	ds.Cascade = p.parseKeyword(token.CASCADE)
	if !ds.Cascade {
		ds.Restrict = p.parseKeyword(token.RESTRICT)
	}
	ds.EndPos = p.Cur().Pos
	return ds, nil
}

func (p *Parser) parseTruncate() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // TRUNCATE
	ts := &ast.TruncateStmt{StartPos: start.Pos, Table: p.parseKeyword(token.TABLE)}
	names, err := parseCommaSeparated(p, p.parseObjectName)
	if err != nil {
		return nil, err
	}
	ts.Names = names
	ts.Cascade = p.parseKeyword(token.CASCADE)
	ts.EndPos = p.Cur().Pos
	return ts, nil
}

// parseComment parses COMMENT ON <object> IS 'text'.
func (p *Parser) parseComment() (ast.Statement, error) {
	start := p.Cur()
	p.advance() // COMMENT
	cs := &ast.CommentStmt{StartPos: start.Pos}
	cs.IfExists = p.parseKeywords(token.IF, token.EXISTS)
	if err := p.expect(token.ON); err != nil {
		return nil, err
	}
	switch p.Cur().Type {
	case token.TABLE:
		cs.Type = ast.ObjectTable
	case token.COLUMN:
		cs.Type = ast.ObjectColumn
	case token.VIEW:
		cs.Type = ast.ObjectView
	case token.INDEX:
		cs.Type = ast.ObjectIndex
	case token.SCHEMA:
		cs.Type = ast.ObjectSchema
	case token.DATABASE:
		cs.Type = ast.ObjectDatabase
	case token.FUNCTION:
		cs.Type = ast.ObjectFunction
	case token.ROLE:
		cs.Type = ast.ObjectRole
	case token.EXTENSION:
		cs.Type = ast.ObjectExtension
	default:
		return nil, p.Expected("an object type after COMMENT ON")
	}
	p.advance()
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cs.Name = name
	if err := p.expect(token.IS); err != nil {
		return nil, err
	}
	if !p.parseKeyword(token.NULL) {
		lit, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		cs.Comment = lit
	}
	cs.EndPos = p.Cur().Pos
	return cs, nil
}
