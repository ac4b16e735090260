package parser

import (
	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/token"
)

// parseInsert parses INSERT and REPLACE statements.
func (p *Parser) parseInsert() (ast.Statement, error) {
	start := p.Cur()
	ins := &ast.InsertStmt{StartPos: start.Pos, Replace: start.Type == token.REPLACE}
	p.advance()
	ins.Ignore = p.parseKeyword(token.IGNORE)
	ins.Overwrite = p.parseKeyword(token.OVERWRITE)
	ins.Into = p.parseKeyword(token.INTO)

	table, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ins.Table = table

	if p.curIs(token.LPAREN) && !p.peekIs(token.SELECT) && !p.peekIs(token.WITH) {
		p.advance()
		// An empty column list is parsed equal to no list at all; the
		// canonical form drops it.
		if !p.curIs(token.RPAREN) {
			cols, err := parseCommaSeparated(p, p.ParseIdent)
			if err != nil {
				return nil, err
			}
			ins.Columns = cols
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
	}

	if p.curIsAny(token.VALUES, token.SELECT, token.WITH, token.LPAREN, token.TABLE) {
		src, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		ins.Source = src
	}

	if p.parseKeywords(token.ON, token.DUPLICATE) {
		if err := p.expect(token.KEY); err != nil {
			return nil, err
		}
		if err := p.expect(token.UPDATE); err != nil {
			return nil, err
		}
		ups, err := parseCommaSeparated(p, p.parseAssignment)
		if err != nil {
			return nil, err
		}
		ins.OnDuplicateUpdate = ups
	} else if p.parseKeywords(token.ON, token.CONFLICT) {
		oc, err := p.parseOnConflict()
		if err != nil {
			return nil, err
		}
		ins.OnConflict = oc
	}

	ret, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	ins.Returning = ret
	ins.EndPos = p.Cur().Pos
	return ins, nil
}

func (p *Parser) parseOnConflict() (*ast.OnConflict, error) {
	oc := &ast.OnConflict{}
	if p.curIs(token.LPAREN) {
		p.advance()
		cols, err := parseCommaSeparated(p, p.ParseIdent)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		oc.Columns = cols
	}
	if p.parseKeyword(token.WHERE) {
		w, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		oc.Where = w
	}
	if err := p.expect(token.DO); err != nil {
		return nil, err
	}
	if p.parseKeyword(token.NOTHING) {
		oc.DoNothing = true
		return oc, nil
	}
	if err := p.expect(token.UPDATE); err != nil {
		return nil, err
	}
	if err := p.expect(token.SET); err != nil {
		return nil, err
	}
	ups, err := parseCommaSeparated(p, p.parseAssignment)
	if err != nil {
		return nil, err
	}
	oc.Updates = ups
	if p.parseKeyword(token.WHERE) {
		w, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		oc.UpdateWhere = w
	}
	return oc, nil
}

func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	first, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	target := &ast.CompoundIdent{StartPos: first.StartPos, EndPos: first.EndPos, Parts: []*ast.Ident{first}}
	for p.curIs(token.DOT) {
		p.advance()
		part, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		target.Parts = append(target.Parts, part)
		target.EndPos = part.EndPos
	}
	if err := p.expect(token.EQ); err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Target: target, Expr: e}, nil
}

func (p *Parser) parseReturning() ([]ast.SelectExpr, error) {
	if !p.parseKeyword(token.RETURNING) {
		return nil, nil
	}
	return parseCommaSeparated(p, p.parseSelectItem)
}

// parseUpdate parses an UPDATE statement.
func (p *Parser) parseUpdate() (ast.Statement, error) {
	start := p.Cur()
	p.advance()
	up := &ast.UpdateStmt{StartPos: start.Pos}

	table, err := p.parseTableAndJoins()
	if err != nil {
		return nil, err
	}
	up.Table = table

	if err := p.expect(token.SET); err != nil {
		return nil, err
	}
	assigns, err := parseCommaSeparated(p, p.parseAssignment)
	if err != nil {
		return nil, err
	}
	up.Assignments = assigns

	if p.parseKeyword(token.FROM) {
		from, err := parseCommaSeparated(p, p.parseTableAndJoins)
		if err != nil {
			return nil, err
		}
		up.From = from
	}
	if p.parseKeyword(token.WHERE) {
		w, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		up.Where = w
	}
	if p.parseKeywords(token.ORDER, token.BY) {
		obs, err := parseCommaSeparated(p, p.parseOrderByExpr)
		if err != nil {
			return nil, err
		}
		up.OrderBy = obs
	}
	if p.parseKeyword(token.LIMIT) {
		l, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		up.Limit = l
	}
	ret, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	up.Returning = ret
	up.EndPos = p.Cur().Pos
	return up, nil
}

// parseDelete parses a DELETE statement, including the MySQL
// multi-table form.
func (p *Parser) parseDelete() (ast.Statement, error) {
	start := p.Cur()
	p.advance()
	del := &ast.DeleteStmt{StartPos: start.Pos}

	if !p.curIs(token.FROM) {
		tables, err := parseCommaSeparated(p, p.parseObjectName)
		if err != nil {
			return nil, err
		}
		del.Tables = tables
	}
	if err := p.expect(token.FROM); err != nil {
		return nil, err
	}
	from, err := parseCommaSeparated(p, p.parseTableAndJoins)
	if err != nil {
		return nil, err
	}
	del.From = from

	if p.parseKeyword(token.USING) {
		using, err := parseCommaSeparated(p, p.parseTableAndJoins)
		if err != nil {
			return nil, err
		}
		del.Using = using
	}
	if p.parseKeyword(token.WHERE) {
		w, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		del.Where = w
	}
	if p.parseKeywords(token.ORDER, token.BY) {
		obs, err := parseCommaSeparated(p, p.parseOrderByExpr)
		if err != nil {
			return nil, err
		}
		del.OrderBy = obs
	}
	if p.parseKeyword(token.LIMIT) {
		l, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		del.Limit = l
	}
	ret, err := p.parseReturning()
	if err != nil {
		return nil, err
	}
	del.Returning = ret
	del.EndPos = p.Cur().Pos
	return del, nil
}

// parseMerge parses MERGE INTO ... USING ... ON ... WHEN clauses.
func (p *Parser) parseMerge() (ast.Statement, error) {
	start := p.Cur()
	p.advance()
	m := &ast.MergeStmt{StartPos: start.Pos, Into: p.parseKeyword(token.INTO)}

	table, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	m.Table = table

	if err := p.expect(token.USING); err != nil {
		return nil, err
	}
	source, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	m.Source = source

	if err := p.expect(token.ON); err != nil {
		return nil, err
	}
	on, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	m.On = on

	for p.curIs(token.WHEN) {
		clause, err := p.parseMergeClause()
		if err != nil {
			return nil, err
		}
		m.Clauses = append(m.Clauses, clause)
	}
	if len(m.Clauses) == 0 {
		return nil, p.Expected("WHEN")
	}
	m.EndPos = p.Cur().Pos
	return m, nil
}

func (p *Parser) parseMergeClause() (*ast.MergeClause, error) {
	p.advance() // WHEN
	c := &ast.MergeClause{NotMatched: p.parseKeyword(token.NOT)}
	if err := p.expect(token.MATCHED); err != nil {
		return nil, err
	}
	if p.parseKeyword(token.AND) {
		pred, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Predicate = pred
	}
	if err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	switch {
	case p.parseKeyword(token.DELETE):
		c.Action = ast.MergeDelete
	case p.parseKeyword(token.UPDATE):
		if err := p.expect(token.SET); err != nil {
			return nil, err
		}
		assigns, err := parseCommaSeparated(p, p.parseAssignment)
		if err != nil {
			return nil, err
		}
		c.Action = ast.MergeUpdate
		c.Assignments = assigns
	case p.parseKeyword(token.INSERT):
		c.Action = ast.MergeInsert
		if p.curIs(token.LPAREN) {
			p.advance()
			cols, err := parseCommaSeparated(p, p.ParseIdent)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			c.InsertColumns = cols
		}
		if err := p.expect(token.VALUES); err != nil {
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
		c.InsertValues = vals
	default:
		return nil, p.Expected("UPDATE, DELETE, or INSERT")
	}
	return c, nil
}
