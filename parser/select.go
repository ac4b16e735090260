package parser

import (
	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/token"
)

// parseQuery parses a full query statement.
func (p *Parser) parseQuery() (ast.Statement, error) {
	return p.parseQueryBody()
}

// parseQueryBody parses WITH, the set-expression body, and the trailing
// clauses.
func (p *Parser) parseQueryBody() (*ast.Query, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	q := &ast.Query{StartPos: p.Cur().Pos}
	if p.curIs(token.WITH) {
		with, err := p.parseWith()
		if err != nil {
			return nil, err
		}
		q.With = with
	}
	body, err := p.parseSetExpr(0)
	if err != nil {
		return nil, err
	}
	q.Body = body

	if p.parseKeywords(token.ORDER, token.BY) {
		obs, err := parseCommaSeparated(p, p.parseOrderByExpr)
		if err != nil {
			return nil, err
		}
		q.OrderBy = obs
	}
	if p.parseKeyword(token.LIMIT) {
		count, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if p.dialect.LimitComma && p.curIs(token.COMMA) {
			// LIMIT a, b is LIMIT b OFFSET a.
			p.advance()
			real, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			q.Offset = count
			q.Limit = real
		} else {
			q.Limit = count
		}
	}
	if p.parseKeyword(token.OFFSET) {
		off, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if p.curIs(token.ROW) || p.curIs(token.ROWS) {
			p.advance()
		}
		q.Offset = off
	}
	if p.curIs(token.FETCH) {
		f, err := p.parseFetch()
		if err != nil {
			return nil, err
		}
		q.Fetch = f
	}
	for {
		if !p.curIs(token.FOR) {
			break
		}
		switch p.Peek().Type {
		case token.UPDATE, token.SHARE:
			lock, err := p.parseLock()
			if err != nil {
				return nil, err
			}
			q.Locks = append(q.Locks, lock)
			continue
		case token.JSON:
			p.advance()
			p.advance()
			q.For = &ast.ForClause{Mode: "JSON"}
			continue
		case token.IDENT:
			mode := p.Peek().Value
			if equalFold(mode, "XML") || equalFold(mode, "BROWSE") {
				p.advance()
				p.advance()
				q.For = &ast.ForClause{Mode: upperASCII(mode)}
				continue
			}
		}
		break
	}
	q.EndPos = p.Cur().Pos
	return q, nil
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'a' && ca <= 'z' {
			ca -= 32
		}
		if cb >= 'a' && cb <= 'z' {
			cb -= 32
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 32
		}
	}
	return string(b)
}

// Set operations: INTERSECT binds tighter than UNION and EXCEPT.
func setOpPrec(t token.Token) int {
	switch t {
	case token.UNION, token.EXCEPT:
		return 10
	case token.INTERSECT:
		return 20
	}
	return 0
}

func (p *Parser) parseSetExpr(minPrec int) (ast.SetExpr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseSetOperand()
	if err != nil {
		return nil, err
	}
	for {
		prec := setOpPrec(p.Cur().Type)
		if prec == 0 || prec <= minPrec {
			return left, nil
		}
		var op ast.SetOpType
		switch p.Cur().Type {
		case token.INTERSECT:
			op = ast.Intersect
		case token.EXCEPT:
			op = ast.Except
		default:
			op = ast.Union
		}
		p.advance()
		quant := p.parseSetQuantifier()
		right, err := p.parseSetExpr(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.SetOp{
			StartPos:   left.Pos(),
			EndPos:     right.End(),
			Left:       left,
			Op:         op,
			Quantifier: quant,
			Right:      right,
		}
	}
}

func (p *Parser) parseSetQuantifier() ast.SetQuantifier {
	switch {
	case p.parseKeyword(token.ALL):
		if p.parseKeywords(token.BY, token.NAME) {
			return ast.SetAllByName
		}
		return ast.SetAll
	case p.parseKeyword(token.DISTINCT):
		if p.parseKeywords(token.BY, token.NAME) {
			return ast.SetDistinctByName
		}
		return ast.SetDistinct
	case p.parseKeywords(token.BY, token.NAME):
		return ast.SetByName
	}
	return ast.SetNone
}

func (p *Parser) parseSetOperand() (ast.SetExpr, error) {
	switch p.Cur().Type {
	case token.LPAREN:
		p.advance()
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return q, nil
	case token.SELECT:
		return p.parseSelect()
	case token.VALUES:
		return p.parseValues()
	case token.TABLE:
		start := p.Cur()
		p.advance()
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.TableStmt{StartPos: start.Pos, EndPos: name.EndPos, Name: name}, nil
	}
	return nil, p.Expected("SELECT, VALUES, or a subquery")
}

// parseSelect parses one SELECT block.
func (p *Parser) parseSelect() (*ast.SelectStmt, error) {
	start := p.Cur()
	if err := p.expect(token.SELECT); err != nil {
		return nil, err
	}
	sel := &ast.SelectStmt{StartPos: start.Pos}

	switch {
	case p.parseKeyword(token.DISTINCT):
		sel.Distinct = ast.DistinctDistinct
		if p.parseKeyword(token.ON) {
			if err := p.expect(token.LPAREN); err != nil {
				return nil, err
			}
			on, err := parseCommaSeparated(p, p.ParseExpr)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			sel.Distinct = ast.DistinctOn
			sel.On = on
		}
	case p.parseKeyword(token.ALL):
		sel.Distinct = ast.DistinctAll
	}

	if p.dialect.TopBeforeProjection && p.curIs(token.TOP) {
		top, err := p.parseTop()
		if err != nil {
			return nil, err
		}
		sel.Top = top
	}
	if p.dialect.ValueTableMode && p.curIs(token.AS) {
		switch p.Peek().Type {
		case token.STRUCT:
			p.advance()
			p.advance()
			sel.ValueTable = ast.ValueTableStruct
		case token.VALUE:
			p.advance()
			p.advance()
			sel.ValueTable = ast.ValueTableValue
		}
	}

	allowTrailing := p.allowTrailingCommas() || p.dialect.ProjectionTrailingCommas
	projection, err := parseCommaSeparatedExt(p, p.parseSelectItem, allowTrailing)
	if err != nil {
		return nil, err
	}
	sel.Projection = projection

	if p.parseKeyword(token.FROM) {
		from, err := parseCommaSeparated(p, p.parseTableAndJoins)
		if err != nil {
			return nil, err
		}
		sel.From = from
	}
	if p.parseKeyword(token.WHERE) {
		w, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		sel.Where = w
	}
	if p.parseKeywords(token.GROUP, token.BY) {
		gb, err := p.parseGroupBy()
		if err != nil {
			return nil, err
		}
		sel.GroupBy = gb
	}
	if p.parseKeyword(token.HAVING) {
		h, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		sel.Having = h
	}
	if p.parseKeyword(token.QUALIFY) {
		q, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		sel.Qualify = q
	}
	if p.parseKeyword(token.WINDOW) {
		defs, err := parseCommaSeparated(p, func() (*ast.WindowDef, error) {
			name, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.AS); err != nil {
				return nil, err
			}
			spec, err := p.parseWindowSpec()
			if err != nil {
				return nil, err
			}
			return &ast.WindowDef{Name: name, Spec: spec}, nil
		})
		if err != nil {
			return nil, err
		}
		sel.Windows = defs
	}
	sel.EndPos = p.Cur().Pos
	return sel, nil
}

func (p *Parser) parseTop() (*ast.Top, error) {
	p.advance() // TOP
	top := &ast.Top{}
	if p.curIs(token.LPAREN) {
		p.advance()
		q, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		top.Quantity = q
	} else {
		cur := p.Cur()
		if cur.Type != token.INT {
			return nil, p.Expected("an integer")
		}
		p.advance()
		top.Quantity = p.literalFromItem(cur)
	}
	if p.parseKeyword(token.PERCENT_KW) {
		top.Percent = true
	}
	if p.parseKeywords(token.WITH, token.TIES) {
		top.WithTies = true
	}
	return top, nil
}

func (p *Parser) parseGroupBy() (*ast.GroupBy, error) {
	switch {
	case p.dialect.GroupByAll && p.curIs(token.ALL):
		p.advance()
		return &ast.GroupBy{Kind: ast.GroupByAll}, nil
	case p.curIs(token.ROLLUP) && p.peekIs(token.LPAREN):
		p.advance()
		p.advance()
		exprs, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.GroupBy{Kind: ast.GroupByRollup, Exprs: exprs}, nil
	case p.curIs(token.CUBE) && p.peekIs(token.LPAREN):
		p.advance()
		p.advance()
		exprs, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.GroupBy{Kind: ast.GroupByCube, Exprs: exprs}, nil
	case p.parseKeywords(token.GROUPING, token.SETS):
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		sets, err := parseCommaSeparated(p, func() ([]ast.Expr, error) {
			if err := p.expect(token.LPAREN); err != nil {
				return nil, err
			}
			var exprs []ast.Expr
			if !p.curIs(token.RPAREN) {
				var err error
				exprs, err = parseCommaSeparated(p, p.ParseExpr)
				if err != nil {
					return nil, err
				}
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			return exprs, nil
		})
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.GroupBy{Kind: ast.GroupByGroupingSets, Sets: sets}, nil
	}
	exprs, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	return &ast.GroupBy{Kind: ast.GroupByExprs, Exprs: exprs}, nil
}

// parseSelectItem parses one projection item.
func (p *Parser) parseSelectItem() (ast.SelectExpr, error) {
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if star, ok := e.(*ast.StarExpr); ok {
		return star, nil
	}
	item := &ast.AliasedExpr{StartPos: e.Pos(), EndPos: e.End(), Expr: e}
	if p.parseKeyword(token.AS) {
		alias, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		item.Alias = alias
		item.EndPos = alias.EndPos
	} else if p.aliasLike() {
		alias, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		item.Alias = alias
		item.EndPos = alias.EndPos
	}
	return item, nil
}

// aliasLike reports whether the current token can serve as a bare alias.
func (p *Parser) aliasLike() bool {
	cur := p.Cur()
	if cur.Type == token.IDENT {
		return true
	}
	if !cur.Type.IsKeyword() || reservedKeywords[cur.Type] {
		return false
	}
	switch cur.Type {
	case token.NATURAL, token.ASOF, token.LEFT, token.RIGHT, token.FULL,
		token.LATERAL, token.EXCLUDE, token.REPLACE, token.RENAME,
		token.MATCH_CONDITION, token.ELSEIF:
		return false
	}
	return true
}

// parseTableAndJoins parses one FROM item: a table factor followed by
// any number of joins.
func (p *Parser) parseTableAndJoins() (ast.TableExpr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	for {
		join := &ast.JoinExpr{StartPos: left.Pos(), Left: left}
		save := p.Save()
		join.Natural = p.parseKeyword(token.NATURAL)
		matched := true
		switch {
		case p.parseKeyword(token.JOIN):
			join.Type = ast.JoinInner
		case p.parseKeywords(token.INNER, token.JOIN):
			join.Type = ast.JoinInner
		case p.parseKeyword(token.LEFT):
			p.parseKeyword(token.OUTER)
			if err := p.expect(token.JOIN); err != nil {
				return nil, err
			}
			join.Type = ast.JoinLeft
		case p.parseKeyword(token.RIGHT):
			p.parseKeyword(token.OUTER)
			if err := p.expect(token.JOIN); err != nil {
				return nil, err
			}
			join.Type = ast.JoinRight
		case p.parseKeyword(token.FULL):
			p.parseKeyword(token.OUTER)
			if err := p.expect(token.JOIN); err != nil {
				return nil, err
			}
			join.Type = ast.JoinFull
		case p.parseKeywords(token.CROSS, token.JOIN):
			join.Type = ast.JoinCross
		case p.dialect.AsofJoins && p.parseKeywords(token.ASOF, token.JOIN):
			join.Type = ast.JoinAsof
		default:
			matched = false
		}
		if !matched {
			if join.Natural {
				p.Restore(save)
			}
			return left, nil
		}
		right, err := p.parseTableFactor()
		if err != nil {
			return nil, err
		}
		join.Right = right
		if join.Type == ast.JoinAsof && p.parseKeyword(token.MATCH_CONDITION) {
			if err := p.expect(token.LPAREN); err != nil {
				return nil, err
			}
			cond, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			join.MatchCondition = cond
		}
		if join.Type != ast.JoinCross && !join.Natural {
			switch {
			case p.parseKeyword(token.ON):
				cond, err := p.ParseExpr()
				if err != nil {
					return nil, err
				}
				join.On = cond
			case p.parseKeyword(token.USING):
				if err := p.expect(token.LPAREN); err != nil {
					return nil, err
				}
				cols, err := parseCommaSeparated(p, p.ParseIdent)
				if err != nil {
					return nil, err
				}
				if err := p.expect(token.RPAREN); err != nil {
					return nil, err
				}
				join.Using = cols
			}
		}
		join.EndPos = p.Cur().Pos
		left = join
	}
}

// parseTableFactor parses one table factor and its optional alias.
func (p *Parser) parseTableFactor() (ast.TableExpr, error) {
	var factor ast.TableExpr
	start := p.Cur()

	switch {
	case p.curIs(token.LATERAL):
		p.advance()
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		factor = &ast.DerivedTable{StartPos: start.Pos, EndPos: p.Cur().Pos, Lateral: true, Query: q}
	case p.curIs(token.LPAREN):
		p.advance()
		if p.curIsAny(token.SELECT, token.WITH, token.VALUES, token.TABLE) {
			q, err := p.parseQueryBody()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			factor = &ast.DerivedTable{StartPos: start.Pos, EndPos: p.Cur().Pos, Query: q}
		} else {
			inner, err := p.parseTableAndJoins()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			factor = &ast.ParenTableExpr{StartPos: start.Pos, EndPos: p.Cur().Pos, Expr: inner}
		}
	case p.curIs(token.VALUES):
		v, err := p.parseValues()
		if err != nil {
			return nil, err
		}
		factor = v
	case p.curIs(token.PARAM):
		// Snowflake stage references (@stage/path) act as table
		// factors.
		cur := p.Cur()
		p.advance()
		id := &ast.Ident{StartPos: cur.Pos, EndPos: endPos(cur), Value: cur.Value}
		factor = &ast.ObjectName{StartPos: cur.Pos, EndPos: id.EndPos, Parts: []*ast.Ident{id}}
	case p.curIs(token.UNNEST):
		p.advance()
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		exprs, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		u := &ast.UnnestTable{StartPos: start.Pos, EndPos: p.Cur().Pos, Exprs: exprs}
		if p.parseKeywords(token.WITH, token.OFFSET) {
			u.WithOffset = true
		}
		factor = u
	default:
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		if p.curIs(token.LPAREN) {
			fn, err := p.parseFunction(name)
			if err != nil {
				return nil, err
			}
			fe, ok := fn.(*ast.FuncExpr)
			if !ok {
				return nil, p.Expected("a table function")
			}
			factor = &ast.TableFunc{StartPos: name.StartPos, EndPos: fe.EndPos, Func: fe}
		} else {
			factor = name
		}
	}

	return p.parseOptionalTableAlias(factor)
}

func (p *Parser) parseOptionalTableAlias(factor ast.TableExpr) (ast.TableExpr, error) {
	hasAs := p.parseKeyword(token.AS)
	if !hasAs && !p.aliasLike() {
		return factor, nil
	}
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	alias := &ast.TableAlias{Name: name}
	if p.curIs(token.LPAREN) {
		p.advance()
		cols, err := parseCommaSeparated(p, p.ParseIdent)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		alias.Columns = cols
	}
	return &ast.AliasedTableExpr{
		StartPos: factor.Pos(),
		EndPos:   p.Cur().Pos,
		Expr:     factor,
		Alias:    alias,
	}, nil
}

func (p *Parser) parseValues() (*ast.ValuesStmt, error) {
	start := p.Cur()
	if err := p.expect(token.VALUES); err != nil {
		return nil, err
	}
	rows, err := parseCommaSeparated(p, func() ([]ast.Expr, error) {
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		exprs := []ast.Expr{}
		if !p.curIs(token.RPAREN) {
			var err error
			exprs, err = parseCommaSeparated(p, p.ParseExpr)
			if err != nil {
				return nil, err
			}
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return exprs, nil
	})
	if err != nil {
		return nil, err
	}
	return &ast.ValuesStmt{StartPos: start.Pos, EndPos: p.Cur().Pos, Rows: rows}, nil
}

func (p *Parser) parseOrderByExpr() (*ast.OrderByExpr, error) {
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	ob := &ast.OrderByExpr{StartPos: e.Pos(), EndPos: e.End(), Expr: e}
	switch {
	case p.parseKeyword(token.DESC):
		ob.Desc = true
	case p.parseKeyword(token.ASC):
	}
	if p.parseKeyword(token.NULLS) {
		switch {
		case p.parseKeyword(token.FIRST):
			t := true
			ob.NullsFirst = &t
		case p.parseKeyword(token.LAST):
			f := false
			ob.NullsFirst = &f
		default:
			return nil, p.Expected("FIRST or LAST")
		}
	}
	return ob, nil
}

func (p *Parser) parseFetch() (*ast.Fetch, error) {
	p.advance() // FETCH
	if !p.parseKeyword(token.FIRST) && !p.parseKeyword(token.NEXT) {
		return nil, p.Expected("FIRST or NEXT")
	}
	f := &ast.Fetch{}
	if !p.curIs(token.ROW) && !p.curIs(token.ROWS) {
		q, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		f.Quantity = q
		if p.parseKeyword(token.PERCENT_KW) {
			f.Percent = true
		}
	}
	if !p.parseKeyword(token.ROWS) && !p.parseKeyword(token.ROW) {
		return nil, p.Expected("ROW or ROWS")
	}
	switch {
	case p.parseKeyword(token.ONLY):
	case p.parseKeywords(token.WITH, token.TIES):
		f.WithTies = true
	default:
		return nil, p.Expected("ONLY or WITH TIES")
	}
	return f, nil
}

func (p *Parser) parseLock() (*ast.LockClause, error) {
	p.advance() // FOR
	lock := &ast.LockClause{}
	switch {
	case p.parseKeyword(token.UPDATE):
		lock.Kind = ast.LockUpdate
	case p.parseKeyword(token.SHARE):
		lock.Kind = ast.LockShare
	default:
		return nil, p.Expected("UPDATE or SHARE")
	}
	if p.parseKeyword(token.OF) {
		names, err := parseCommaSeparated(p, p.parseObjectName)
		if err != nil {
			return nil, err
		}
		lock.Of = names
	}
	switch {
	case p.parseKeyword(token.NOWAIT):
		lock.NoWait = true
	case p.parseKeywords(token.SKIP, token.LOCKED):
		lock.SkipLocked = true
	}
	return lock, nil
}

func (p *Parser) parseWith() (*ast.WithClause, error) {
	p.advance() // WITH
	with := &ast.WithClause{Recursive: p.parseKeyword(token.RECURSIVE)}
	ctes, err := parseCommaSeparated(p, p.parseCTE)
	if err != nil {
		return nil, err
	}
	with.CTEs = ctes
	return with, nil
}

func (p *Parser) parseCTE() (*ast.CTE, error) {
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	cte := &ast.CTE{Name: name}
	if p.curIs(token.LPAREN) {
		p.advance()
		cols, err := parseCommaSeparated(p, p.ParseIdent)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		cte.Columns = cols
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	switch {
	case p.parseKeyword(token.MATERIALIZED):
		t := true
		cte.Materialized = &t
	case p.parseKeywords(token.NOT, token.MATERIALIZED):
		f := false
		cte.Materialized = &f
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	q, err := p.parseQueryBody()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	cte.Query = q
	return cte, nil
}

// parseWindowSpec parses a named window reference or a parenthesized
// window specification.
func (p *Parser) parseWindowSpec() (*ast.WindowSpec, error) {
	if !p.curIs(token.LPAREN) {
		name, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		return &ast.WindowSpec{Name: name}, nil
	}
	p.advance()
	spec := &ast.WindowSpec{}
	if p.identLike() && !p.curIsAny(token.PARTITION, token.ROWS, token.RANGE, token.GROUPS) {
		name, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		spec.Name = name
	}
	if p.parseKeywords(token.PARTITION, token.BY) {
		exprs, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		spec.PartitionBy = exprs
	}
	if p.parseKeywords(token.ORDER, token.BY) {
		obs, err := parseCommaSeparated(p, p.parseOrderByExpr)
		if err != nil {
			return nil, err
		}
		spec.OrderBy = obs
	}
	if p.curIsAny(token.ROWS, token.RANGE, token.GROUPS) {
		frame, err := p.parseWindowFrame()
		if err != nil {
			return nil, err
		}
		spec.Frame = frame
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return spec, nil
}

func (p *Parser) parseWindowFrame() (*ast.WindowFrame, error) {
	frame := &ast.WindowFrame{}
	switch p.Cur().Type {
	case token.RANGE:
		frame.Type = ast.FrameRange
	case token.GROUPS:
		frame.Type = ast.FrameGroups
	default:
		frame.Type = ast.FrameRows
	}
	p.advance()
	if p.parseKeyword(token.BETWEEN) {
		start, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.AND); err != nil {
			return nil, err
		}
		end, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		frame.Start, frame.End = start, end
		return frame, nil
	}
	start, err := p.parseFrameBound()
	if err != nil {
		return nil, err
	}
	frame.Start = start
	return frame, nil
}

func (p *Parser) parseFrameBound() (*ast.FrameBound, error) {
	switch {
	case p.parseKeywords(token.CURRENT, token.ROW):
		return &ast.FrameBound{Type: ast.BoundCurrentRow}, nil
	case p.parseKeyword(token.UNBOUNDED):
		switch {
		case p.parseKeyword(token.PRECEDING):
			return &ast.FrameBound{Type: ast.BoundUnboundedPreceding}, nil
		case p.parseKeyword(token.FOLLOWING):
			return &ast.FrameBound{Type: ast.BoundUnboundedFollowing}, nil
		}
		return nil, p.Expected("PRECEDING or FOLLOWING")
	}
	offset, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	switch {
	case p.parseKeyword(token.PRECEDING):
		return &ast.FrameBound{Type: ast.BoundPreceding, Offset: offset}, nil
	case p.parseKeyword(token.FOLLOWING):
		return &ast.FrameBound{Type: ast.BoundFollowing, Offset: offset}, nil
	}
	return nil, p.Expected("PRECEDING or FOLLOWING")
}
