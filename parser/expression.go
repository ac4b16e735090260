package parser

import (
	"strconv"
	"strings"

	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/dialect"
	"github.com/freeeve/sqlparse/token"
)

// ladder returns the active precedence ladder.
func (p *Parser) ladder() *dialect.Ladder {
	if p.dialect.Ladder != nil {
		return p.dialect.Ladder
	}
	return &dialect.DefaultLadder
}

// nextPrecedence computes the binding power of the current token,
// consulting the dialect hook first.
func (p *Parser) nextPrecedence() int {
	if hook := p.dialect.NextPrecedence; hook != nil {
		if v, ok := hook(p); ok {
			return v
		}
	}
	return p.ladder().Next(p)
}

// ParseExpr parses a full expression.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.ParseSubExpr(0)
}

// ParseSubExpr runs the Pratt loop with a minimum binding power.
func (p *Parser) ParseSubExpr(minPrec int) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	lhs, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		prec := p.nextPrecedence()
		if prec <= minPrec {
			return lhs, nil
		}
		lhs, err = p.parseInfix(lhs, prec)
		if err != nil {
			return nil, err
		}
	}
}

// reservedKeywords are keywords that never act as bare identifiers in
// expression position.
var reservedKeywords = map[token.Token]bool{
	token.SELECT: true, token.FROM: true, token.WHERE: true,
	token.GROUP: true, token.HAVING: true, token.ORDER: true,
	token.LIMIT: true, token.OFFSET: true, token.FETCH: true,
	token.UNION: true, token.INTERSECT: true, token.EXCEPT: true,
	token.AND: true, token.OR: true, token.NOT: true, token.AS: true,
	token.ON: true, token.USING: true, token.JOIN: true,
	token.INNER: true, token.OUTER: true, token.CROSS: true,
	token.WHEN: true, token.THEN: true, token.ELSE: true,
	token.END: true, token.CASE: true, token.INTO: true,
	token.VALUES: true, token.SET: true, token.IN: true,
	token.BETWEEN: true, token.LIKE: true, token.IS: true,
	token.EXISTS: true, token.QUALIFY: true, token.WINDOW: true,
	token.RETURNING: true, token.FOR: true, token.COLLATE: true,
}

// identLike reports whether the current token can begin an identifier.
func (p *Parser) identLike() bool {
	cur := p.Cur()
	if cur.Type == token.IDENT {
		return true
	}
	return cur.Type.IsKeyword() && !reservedKeywords[cur.Type]
}

// ParseIdent parses a single identifier, allowing unreserved keywords.
func (p *Parser) ParseIdent() (*ast.Ident, error) {
	cur := p.Cur()
	if !p.identLike() {
		return nil, p.Expected("an identifier")
	}
	p.advance()
	return p.identFromItem(cur), nil
}

func (p *Parser) identFromItem(it token.Item) *ast.Ident {
	return &ast.Ident{
		StartPos: it.Pos,
		EndPos:   endPos(it),
		Value:    it.Value,
		Quote:    it.Quote,
		Raw:      it.Quote != 0 && !p.opts.Unescape,
	}
}

func endPos(it token.Item) token.Pos {
	end := it.Pos
	end.Offset += len(it.Value)
	end.Column += len(it.Value)
	return end
}

// parseObjectName parses a possibly dotted object name.
func (p *Parser) parseObjectName() (*ast.ObjectName, error) {
	first, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	name := &ast.ObjectName{StartPos: first.StartPos, Parts: []*ast.Ident{first}}
	for p.curIs(token.DOT) {
		p.advance()
		part, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		name.Parts = append(name.Parts, part)
	}
	name.EndPos = name.Parts[len(name.Parts)-1].EndPos
	return name, nil
}

// literalFromItem converts a literal token into an AST literal.
func (p *Parser) literalFromItem(it token.Item) *ast.Literal {
	l := &ast.Literal{StartPos: it.Pos, EndPos: endPos(it), Value: it.Value}
	raw := !p.opts.Unescape
	switch it.Type {
	case token.INT, token.FLOAT:
		l.Type = ast.LiteralNumber
		l.Long = it.Long
	case token.STRING:
		l.Type = ast.LiteralString
		l.Raw = raw
	case token.DQSTRING:
		l.Type = ast.LiteralDQString
		l.Raw = raw
	case token.TSQSTRING:
		l.Type = ast.LiteralTSQString
	case token.TDQSTRING:
		l.Type = ast.LiteralTDQString
	case token.NSTRING:
		l.Type = ast.LiteralNational
		l.Raw = raw
	case token.ESTRING:
		l.Type = ast.LiteralEscaped
		l.Raw = raw
	case token.RAWSTRING:
		l.Type = ast.LiteralRaw
	case token.RAWDQSTRING:
		l.Type = ast.LiteralRawDQ
	case token.BYTESTRING:
		l.Type = ast.LiteralByte
		l.Raw = raw
	case token.BYTEDQSTRING:
		l.Type = ast.LiteralByteDQ
		l.Raw = raw
	case token.USTRING:
		l.Type = ast.LiteralUnicode
	case token.HEX:
		l.Type = ast.LiteralHex
		l.Tag = it.Tag
	case token.DOLLARSTRING:
		l.Type = ast.LiteralDollarString
		l.Tag = it.Tag
	case token.PARAM:
		l.Type = ast.LiteralPlaceholder
	}
	return l
}

// parseStringLiteral expects any string literal token.
func (p *Parser) parseStringLiteral() (*ast.Literal, error) {
	if !p.Cur().Type.IsStringLiteral() {
		return nil, p.Expected("a string literal")
	}
	it := p.Cur()
	p.advance()
	return p.literalFromItem(it), nil
}

// typedStringStarters are the type keywords that form typed literals
// when immediately followed by a string.
var typedStringStarters = map[token.Token]string{
	token.DATE:      "DATE",
	token.TIME:      "TIME",
	token.TIMESTAMP: "TIMESTAMP",
	token.DATETIME:  "DATETIME",
	token.JSON:      "JSON",
	token.UUID:      "UUID",
}

// ParsePrefixDefault runs the built-in prefix parser, bypassing the
// dialect hook. Dialect ParsePrefix hooks call this to wrap or fall
// back.
func (p *Parser) ParsePrefixDefault() (ast.Expr, error) {
	cur := p.Cur()
	switch cur.Type {
	case token.INT, token.FLOAT, token.HEX, token.PARAM:
		p.advance()
		return p.literalFromItem(cur), nil
	case token.TRUE:
		p.advance()
		return &ast.Literal{StartPos: cur.Pos, EndPos: endPos(cur), Type: ast.LiteralBool, Value: "TRUE"}, nil
	case token.FALSE:
		p.advance()
		return &ast.Literal{StartPos: cur.Pos, EndPos: endPos(cur), Type: ast.LiteralBool, Value: "FALSE"}, nil
	case token.NULL:
		p.advance()
		return &ast.Literal{StartPos: cur.Pos, EndPos: endPos(cur), Type: ast.LiteralNull, Value: "NULL"}, nil
	case token.NOT:
		p.advance()
		operand, err := p.ParseSubExpr(p.ladder().UnaryNot)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{StartPos: cur.Pos, EndPos: operand.End(), Op: token.NOT, Expr: operand}, nil
	case token.PLUS, token.MINUS, token.TILDE:
		p.advance()
		operand, err := p.ParseSubExpr(p.ladder().MulDivMod)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{StartPos: cur.Pos, EndPos: operand.End(), Op: cur.Type, Expr: operand}, nil
	case token.CASE:
		return p.parseCase()
	case token.CAST:
		return p.parseCast(ast.CastStandard)
	case token.TRY_CAST:
		return p.parseCast(ast.CastTry)
	case token.SAFE_CAST:
		return p.parseCast(ast.CastSafe)
	case token.CONVERT:
		return p.parseConvert()
	case token.EXTRACT:
		return p.parseExtract()
	case token.SUBSTRING:
		return p.parseSubstring()
	case token.TRIM:
		return p.parseTrim()
	case token.POSITION:
		return p.parsePosition()
	case token.OVERLAY:
		return p.parseOverlay()
	case token.EXISTS:
		return p.parseExists(false)
	case token.INTERVAL:
		return p.parseInterval()
	case token.ARRAY:
		if p.peekIs(token.LBRACKET) {
			p.advance()
			return p.parseArrayLiteral(true)
		}
	case token.STRUCT:
		if p.peekIs(token.LPAREN) {
			return p.parseStructLiteral()
		}
	case token.LBRACKET:
		return p.parseArrayLiteral(false)
	case token.LBRACE:
		if p.dialect.DictionarySyntax {
			return p.parseDictionary()
		}
	case token.LPAREN:
		return p.parseParenExpr()
	case token.ASTERISK:
		p.advance()
		return p.parseStarModifiers(&ast.StarExpr{StartPos: cur.Pos, EndPos: endPos(cur)})
	}

	if cur.Type.IsStringLiteral() {
		p.advance()
		return p.literalFromItem(cur), nil
	}
	if name, ok := typedStringStarters[cur.Type]; ok && p.Peek().Type.IsStringLiteral() {
		p.advance()
		lit, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.TypedStringExpr{
			StartPos: cur.Pos,
			EndPos:   lit.EndPos,
			Type:     &ast.DataType{Name: name},
			Value:    lit,
		}, nil
	}
	if p.identLike() {
		return p.parseIdentExpr()
	}
	return nil, p.Expected("an expression")
}

// parsePrefix consults the dialect hook before the default grammar.
func (p *Parser) parsePrefix() (ast.Expr, error) {
	if hook := p.dialect.ParsePrefix; hook != nil {
		save := p.Save()
		e, ok, err := hook(p)
		if err != nil {
			return nil, err
		}
		if ok {
			return e, nil
		}
		p.Restore(save)
	}
	return p.ParsePrefixDefault()
}

// parseIdentExpr parses everything that begins with an identifier: bare
// and compound names, qualified wildcards, charset-introduced strings,
// lambdas, and function calls.
func (p *Parser) parseIdentExpr() (ast.Expr, error) {
	first := p.Cur()
	p.advance()

	// MySQL charset introducer: _utf8mb4'...'.
	if first.Quote == 0 && strings.HasPrefix(first.Value, "_") &&
		p.Cur().Type.IsStringLiteral() {
		lit, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.IntroducedString{
			StartPos: first.Pos,
			EndPos:   lit.EndPos,
			Charset:  first.Value,
			Value:    lit,
		}, nil
	}

	parts := []*ast.Ident{p.identFromItem(first)}
	for p.curIs(token.DOT) {
		if p.peekIs(token.ASTERISK) {
			p.advance()
			star := p.Cur()
			p.advance()
			qual := &ast.ObjectName{StartPos: first.Pos, EndPos: parts[len(parts)-1].EndPos, Parts: parts}
			return p.parseStarModifiers(&ast.StarExpr{
				StartPos:  first.Pos,
				EndPos:    endPos(star),
				Qualifier: qual,
			})
		}
		p.advance()
		part, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	outerJoin := p.dialect.OuterJoinMarker && p.curIs(token.LPAREN) &&
		p.peekIs(token.PLUS) && p.peekAt(2).Type == token.RPAREN
	if p.curIs(token.LPAREN) && !outerJoin {
		name := &ast.ObjectName{StartPos: first.Pos, EndPos: parts[len(parts)-1].EndPos, Parts: parts}
		return p.parseFunction(name)
	}

	var expr ast.Expr
	if len(parts) == 1 {
		expr = parts[0]
	} else {
		expr = &ast.CompoundIdent{StartPos: first.Pos, EndPos: parts[len(parts)-1].EndPos, Parts: parts}
	}

	if p.dialect.LambdaFunctions && p.curIs(token.ARROW) && len(parts) == 1 {
		return p.parseLambda([]*ast.Ident{parts[0]}, first.Pos)
	}
	if outerJoin {
		p.advance()
		p.advance()
		end := p.Cur()
		p.advance()
		return &ast.OuterJoinExpr{StartPos: first.Pos, EndPos: endPos(end), Expr: expr}, nil
	}
	return expr, nil
}

func (p *Parser) parseLambda(params []*ast.Ident, start token.Pos) (ast.Expr, error) {
	if err := p.expect(token.ARROW); err != nil {
		return nil, err
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LambdaExpr{StartPos: start, EndPos: body.End(), Params: params, Body: body}, nil
}

// parseParenExpr parses a parenthesized subquery, tuple, scalar
// expression, or a parenthesized lambda parameter list.
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	open := p.Cur()
	p.advance()
	if p.curIsAny(token.SELECT, token.WITH, token.VALUES, token.TABLE) {
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		end := p.Cur()
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.SubqueryExpr{StartPos: open.Pos, EndPos: endPos(end), Query: q}, nil
	}
	exprs, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if len(exprs) == 1 {
		inner := &ast.ParenExpr{StartPos: open.Pos, EndPos: endPos(end), Expr: exprs[0]}
		return inner, nil
	}
	tuple := &ast.TupleExpr{StartPos: open.Pos, EndPos: endPos(end), Exprs: exprs}
	if p.dialect.LambdaFunctions && p.curIs(token.ARROW) {
		params := make([]*ast.Ident, 0, len(exprs))
		for _, e := range exprs {
			id, ok := e.(*ast.Ident)
			if !ok {
				return nil, p.Expected("lambda parameters")
			}
			params = append(params, id)
		}
		return p.parseLambda(params, open.Pos)
	}
	return tuple, nil
}

func (p *Parser) parseArrayLiteral(keyword bool) (ast.Expr, error) {
	open := p.Cur()
	if err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var elems []ast.Expr
	if !p.curIs(token.RBRACKET) {
		var err error
		elems, err = parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
	}
	end := p.Cur()
	if err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ArrayExpr{StartPos: open.Pos, EndPos: endPos(end), Keyword: keyword, Elems: elems}, nil
}

func (p *Parser) parseStructLiteral() (ast.Expr, error) {
	start := p.Cur()
	p.advance() // STRUCT
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	fields, err := parseCommaSeparated(p, func() (ast.Expr, error) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if p.parseKeyword(token.AS) {
			name, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			return &ast.NamedExpr{StartPos: e.Pos(), EndPos: name.EndPos, Expr: e, Name: name}, nil
		}
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.StructExpr{StartPos: start.Pos, EndPos: endPos(end), Fields: fields}, nil
}

func (p *Parser) parseDictionary() (ast.Expr, error) {
	open := p.Cur()
	p.advance() // {
	var fields []*ast.DictionaryField
	if !p.curIs(token.RBRACE) {
		var err error
		fields, err = parseCommaSeparated(p, func() (*ast.DictionaryField, error) {
			key, err := p.parseStringLiteral()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			val, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.DictionaryField{Key: key, Value: val}, nil
		})
		if err != nil {
			return nil, err
		}
	}
	end := p.Cur()
	if err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.DictionaryExpr{StartPos: open.Pos, EndPos: endPos(end), Fields: fields}, nil
}

// parseStarModifiers parses the fixed-order EXCLUDE/EXCEPT/REPLACE/
// RENAME wildcard modifiers the dialect supports.
func (p *Parser) parseStarModifiers(star *ast.StarExpr) (ast.Expr, error) {
	if p.dialect.SelectWildcardExclude && p.curIs(token.EXCLUDE) {
		p.advance()
		cols, err := p.parseParenIdentsOrOne()
		if err != nil {
			return nil, err
		}
		star.Exclude = cols
	}
	if p.dialect.SelectWildcardExcept && p.curIs(token.EXCEPT) {
		p.advance()
		cols, err := p.parseParenIdentsOrOne()
		if err != nil {
			return nil, err
		}
		star.Except = cols
	}
	if p.dialect.SelectWildcardReplace && p.curIs(token.REPLACE) {
		p.advance()
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		items, err := parseCommaSeparated(p, func() (*ast.StarReplaceItem, error) {
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.AS); err != nil {
				return nil, err
			}
			alias, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			return &ast.StarReplaceItem{Expr: e, Alias: alias}, nil
		})
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		star.Replace = items
	}
	if p.dialect.SelectWildcardRename && p.curIs(token.RENAME) {
		p.advance()
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		items, err := parseCommaSeparated(p, func() (*ast.StarRenameItem, error) {
			from, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.AS); err != nil {
				return nil, err
			}
			to, err := p.ParseIdent()
			if err != nil {
				return nil, err
			}
			return &ast.StarRenameItem{From: from, To: to}, nil
		})
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		star.Rename = items
	}
	return star, nil
}

func (p *Parser) parseParenIdentsOrOne() ([]*ast.Ident, error) {
	if p.curIs(token.LPAREN) {
		p.advance()
		ids, err := parseCommaSeparated(p, p.ParseIdent)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return ids, nil
	}
	id, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	return []*ast.Ident{id}, nil
}

// binaryOpTokens are the infix tokens that build a plain BinaryExpr.
var binaryOpTokens = map[token.Token]bool{
	token.PLUS: true, token.MINUS: true, token.ASTERISK: true,
	token.SLASH: true, token.PERCENT: true, token.EQ: true,
	token.NEQ: true, token.LT: true, token.GT: true, token.LTE: true,
	token.GTE: true, token.SPACESHIP: true, token.CONCAT: true,
	token.BITAND: true, token.BITOR: true, token.BITXOR: true,
	token.LSHIFT: true, token.RSHIFT: true, token.AND: true,
	token.OR: true, token.XOR: true, token.ARROW: true,
	token.DARROW: true, token.HASHGT: true, token.HASHDGT: true,
	token.HASHMINUS: true, token.ATGT: true, token.LTAT: true,
	token.ATQUESTION: true, token.ATAT: true, token.TILDE: true,
	token.TILDESTAR: true, token.NOTTILDE: true, token.NOTTILDESTAR: true,
	token.DTILDE: true, token.DTILDESTAR: true, token.NOTDTILDE: true,
	token.NOTDTILDESTAR: true, token.QUESTIONOR: true,
	token.QUESTIONAND: true, token.CARETAT: true, token.CUSTOMOP: true,
}

// parseInfix extends lhs with the operator at the current token.
func (p *Parser) parseInfix(lhs ast.Expr, prec int) (ast.Expr, error) {
	if hook := p.dialect.ParseInfix; hook != nil {
		save := p.Save()
		e, ok, err := hook(p, lhs, prec)
		if err != nil {
			return nil, err
		}
		if ok {
			return e, nil
		}
		p.Restore(save)
	}

	cur := p.Cur()
	if binaryOpTokens[cur.Type] {
		p.advance()
		rhs, err := p.ParseSubExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{
			StartPos: lhs.Pos(),
			EndPos:   rhs.End(),
			Left:     lhs,
			Op:       cur.Type,
			OpText:   cur.Value,
			Right:    rhs,
		}, nil
	}

	switch cur.Type {
	case token.PARAM:
		// A bare ? after a complete expression is the PostgreSQL JSON
		// key-exists operator.
		p.advance()
		rhs, err := p.ParseSubExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{
			StartPos: lhs.Pos(),
			EndPos:   rhs.End(),
			Left:     lhs,
			Op:       token.QUESTION,
			Right:    rhs,
		}, nil
	case token.IS:
		return p.parseIs(lhs)
	case token.NOT:
		p.advance()
		switch p.Cur().Type {
		case token.IN:
			return p.parseIn(lhs, true)
		case token.BETWEEN:
			return p.parseBetween(lhs, true)
		case token.LIKE, token.ILIKE, token.SIMILAR, token.GLOB,
			token.REGEXP, token.RLIKE:
			return p.parseLike(lhs, true)
		}
		return nil, p.Expected("IN, BETWEEN, or a pattern operator after NOT")
	case token.IN:
		return p.parseIn(lhs, false)
	case token.BETWEEN:
		return p.parseBetween(lhs, false)
	case token.LIKE, token.ILIKE, token.SIMILAR, token.GLOB,
		token.REGEXP, token.RLIKE:
		return p.parseLike(lhs, false)
	case token.LBRACKET:
		p.advance()
		idx, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		end := p.Cur()
		if err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.SubscriptExpr{StartPos: lhs.Pos(), EndPos: endPos(end), Expr: lhs, Index: idx}, nil
	case token.DCOLON:
		p.advance()
		t, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.CastExpr{StartPos: lhs.Pos(), EndPos: p.Cur().Pos, Kind: ast.CastDoubleColon, Expr: lhs, Type: t}, nil
	case token.AT:
		p.advance()
		if err := p.expect(token.TIME); err != nil {
			return nil, err
		}
		if err := p.expect(token.ZONE); err != nil {
			return nil, err
		}
		tz, err := p.ParseSubExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.AtTimeZoneExpr{StartPos: lhs.Pos(), EndPos: tz.End(), Expr: lhs, TimeZone: tz}, nil
	case token.COLLATE:
		p.advance()
		coll, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.CollateExpr{StartPos: lhs.Pos(), EndPos: coll.EndPos, Expr: lhs, Collation: coll}, nil
	case token.COLON:
		return p.parseJsonAccess(lhs)
	}
	return nil, p.Expected("an infix operator")
}

func (p *Parser) parseIs(lhs ast.Expr) (ast.Expr, error) {
	start := lhs.Pos()
	p.advance() // IS
	not := p.parseKeyword(token.NOT)
	switch p.Cur().Type {
	case token.NULL:
		end := p.Cur()
		p.advance()
		return &ast.IsExpr{StartPos: start, EndPos: endPos(end), Expr: lhs, Not: not, What: ast.IsNull}, nil
	case token.TRUE:
		end := p.Cur()
		p.advance()
		return &ast.IsExpr{StartPos: start, EndPos: endPos(end), Expr: lhs, Not: not, What: ast.IsTrue}, nil
	case token.FALSE:
		end := p.Cur()
		p.advance()
		return &ast.IsExpr{StartPos: start, EndPos: endPos(end), Expr: lhs, Not: not, What: ast.IsFalse}, nil
	case token.UNKNOWN:
		end := p.Cur()
		p.advance()
		return &ast.IsExpr{StartPos: start, EndPos: endPos(end), Expr: lhs, Not: not, What: ast.IsUnknown}, nil
	case token.DISTINCT:
		p.advance()
		if err := p.expect(token.FROM); err != nil {
			return nil, err
		}
		right, err := p.ParseSubExpr(p.ladder().Is)
		if err != nil {
			return nil, err
		}
		return &ast.IsExpr{StartPos: start, EndPos: right.End(), Expr: lhs, Not: not, What: ast.IsDistinctFrom, Right: right}, nil
	}
	return nil, p.Expected("NULL, TRUE, FALSE, UNKNOWN, or DISTINCT FROM")
}

func (p *Parser) parseIn(lhs ast.Expr, not bool) (ast.Expr, error) {
	p.advance() // IN
	in := &ast.InExpr{StartPos: lhs.Pos(), Expr: lhs, Not: not}
	if p.curIs(token.UNNEST) {
		p.advance()
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		end := p.Cur()
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		in.Unnest = e
		in.EndPos = endPos(end)
		return in, nil
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if p.curIsAny(token.SELECT, token.WITH, token.VALUES, token.TABLE) {
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		in.Query = q
	} else if p.curIs(token.RPAREN) {
		if !p.dialect.InEmptyList && !p.opts.TrailingCommas {
			return nil, p.Expected("an expression")
		}
		in.List = []ast.Expr{}
	} else {
		list, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		in.List = list
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	in.EndPos = endPos(end)
	return in, nil
}

func (p *Parser) parseBetween(lhs ast.Expr, not bool) (ast.Expr, error) {
	p.advance() // BETWEEN
	prec := p.ladder().Between
	low, err := p.ParseSubExpr(prec)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.AND); err != nil {
		return nil, err
	}
	high, err := p.ParseSubExpr(prec)
	if err != nil {
		return nil, err
	}
	return &ast.BetweenExpr{
		StartPos: lhs.Pos(),
		EndPos:   high.End(),
		Expr:     lhs,
		Not:      not,
		Low:      low,
		High:     high,
	}, nil
}

func (p *Parser) parseLike(lhs ast.Expr, not bool) (ast.Expr, error) {
	kind := ast.LikeLike
	switch p.Cur().Type {
	case token.ILIKE:
		kind = ast.LikeILike
	case token.SIMILAR:
		kind = ast.LikeSimilarTo
	case token.GLOB:
		kind = ast.LikeGlob
	case token.REGEXP:
		kind = ast.LikeRegexp
	case token.RLIKE:
		kind = ast.LikeRLike
	}
	p.advance()
	if kind == ast.LikeSimilarTo {
		if err := p.expect(token.TO); err != nil {
			return nil, err
		}
	}
	pattern, err := p.ParseSubExpr(p.ladder().Like)
	if err != nil {
		return nil, err
	}
	like := &ast.LikeExpr{
		StartPos: lhs.Pos(),
		EndPos:   pattern.End(),
		Kind:     kind,
		Not:      not,
		Expr:     lhs,
		Pattern:  pattern,
	}
	if p.parseKeyword(token.ESCAPE) {
		esc, err := p.ParseSubExpr(p.ladder().Like)
		if err != nil {
			return nil, err
		}
		like.Escape = esc
		like.EndPos = esc.End()
	}
	return like, nil
}

// parseJsonAccess parses the Snowflake a:b[0].c path.
func (p *Parser) parseJsonAccess(lhs ast.Expr) (ast.Expr, error) {
	access := &ast.JsonAccessExpr{StartPos: lhs.Pos(), Value: lhs}
	p.advance() // :
	elem, err := p.parseJsonKey()
	if err != nil {
		return nil, err
	}
	access.Path = append(access.Path, elem)
	for {
		switch p.Cur().Type {
		case token.DOT:
			p.advance()
			elem, err := p.parseJsonKey()
			if err != nil {
				return nil, err
			}
			access.Path = append(access.Path, elem)
		case token.LBRACKET:
			p.advance()
			idx, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			access.Path = append(access.Path, &ast.JsonPathElem{Index: idx})
		default:
			access.EndPos = p.Cur().Pos
			return access, nil
		}
	}
}

func (p *Parser) parseJsonKey() (*ast.JsonPathElem, error) {
	cur := p.Cur()
	if cur.Type == token.IDENT && cur.Quote != 0 {
		p.advance()
		return &ast.JsonPathElem{Key: cur.Value, Quoted: true}, nil
	}
	if p.identLike() {
		p.advance()
		return &ast.JsonPathElem{Key: cur.Value}, nil
	}
	return nil, p.Expected("a JSON path key")
}

func (p *Parser) parseCase() (ast.Expr, error) {
	start := p.Cur()
	p.advance() // CASE
	c := &ast.CaseExpr{StartPos: start.Pos}
	if !p.curIs(token.WHEN) {
		operand, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Operand = operand
	}
	for p.parseKeyword(token.WHEN) {
		cond, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.THEN); err != nil {
			return nil, err
		}
		result, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Whens = append(c.Whens, &ast.When{Cond: cond, Result: result})
	}
	if len(c.Whens) == 0 {
		return nil, p.Expected("WHEN")
	}
	if p.parseKeyword(token.ELSE) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Else = e
	}
	end := p.Cur()
	if err := p.expect(token.END); err != nil {
		return nil, err
	}
	c.EndPos = endPos(end)
	return c, nil
}

func (p *Parser) parseCast(kind ast.CastKind) (ast.Expr, error) {
	start := p.Cur()
	p.advance()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	t, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CastExpr{StartPos: start.Pos, EndPos: endPos(end), Kind: kind, Expr: e, Type: t}, nil
}

func (p *Parser) parseConvert() (ast.Expr, error) {
	start := p.Cur()
	p.advance()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	conv := &ast.ConvertExpr{StartPos: start.Pos, TypeFirst: p.dialect.ConvertTypeBeforeValue}
	if conv.TypeFirst {
		t, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		conv.Type, conv.Expr = t, e
	} else {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		conv.Expr = e
		if p.parseKeyword(token.USING) {
			cs, err := p.parseObjectName()
			if err != nil {
				return nil, err
			}
			conv.Charset = cs
		} else {
			if err := p.expect(token.COMMA); err != nil {
				return nil, err
			}
			t, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			conv.Type = t
		}
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	conv.EndPos = endPos(end)
	return conv, nil
}

// dateTimeFields are the EXTRACT/INTERVAL field keywords.
var dateTimeFields = map[token.Token]bool{
	token.YEAR: true, token.MONTH: true, token.WEEK: true,
	token.DAY: true, token.HOUR: true, token.MINUTE: true,
	token.SECOND: true, token.CENTURY: true, token.DECADE: true,
	token.MILLENNIUM: true, token.QUARTER: true, token.EPOCH: true,
	token.MILLISECOND: true, token.MICROSECOND: true,
	token.TIMEZONE: true, token.TIMEZONE_HOUR: true,
	token.TIMEZONE_MINUTE: true,
}

func (p *Parser) parseExtract() (ast.Expr, error) {
	start := p.Cur()
	p.advance()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cur := p.Cur()
	var field string
	switch {
	case dateTimeFields[cur.Type]:
		field = cur.Type.String()
		p.advance()
	case cur.Type == token.STRING && p.dialect.ExtractSingleQuotes:
		field = "'" + cur.Value + "'"
		p.advance()
	case p.identLike() && p.dialect.ExtractCustomFields:
		field = cur.Value
		p.advance()
	default:
		return nil, p.Expected("a date/time field")
	}
	ex := &ast.ExtractExpr{StartPos: start.Pos, Field: field}
	if p.curIs(token.COMMA) {
		p.advance()
		ex.Comma = true
	} else if err := p.expect(token.FROM); err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	ex.Expr = e
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	ex.EndPos = endPos(end)
	return ex, nil
}

func (p *Parser) parseSubstring() (ast.Expr, error) {
	start := p.Cur()
	p.advance()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	sub := &ast.SubstringExpr{StartPos: start.Pos, Expr: e}
	if p.curIs(token.FROM) {
		if !p.dialect.SubstringFromFor {
			return nil, p.Expected(", instead of FROM")
		}
		p.advance()
		sub.FromFor = true
		from, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		sub.From = from
		if p.parseKeyword(token.FOR) {
			f, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			sub.For = f
		}
	} else if p.curIs(token.COMMA) {
		p.advance()
		from, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		sub.From = from
		if p.parseKeyword(token.COMMA) {
			f, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			sub.For = f
		}
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	sub.EndPos = endPos(end)
	return sub, nil
}

func (p *Parser) parseTrim() (ast.Expr, error) {
	start := p.Cur()
	p.advance()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	t := &ast.TrimExpr{StartPos: start.Pos}
	switch p.Cur().Type {
	case token.BOTH:
		t.Where = ast.TrimBoth
		p.advance()
	case token.LEADING:
		t.Where = ast.TrimLeading
		p.advance()
	case token.TRAILING:
		t.Where = ast.TrimTrailing
		p.advance()
	}
	first, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if p.parseKeyword(token.FROM) {
		t.Chars = first
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		t.Expr = e
	} else {
		t.Expr = first
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	t.EndPos = endPos(end)
	return t, nil
}

func (p *Parser) parsePosition() (ast.Expr, error) {
	start := p.Cur()
	p.advance()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	// The needle must not swallow the IN keyword.
	needle, err := p.ParseSubExpr(p.ladder().Between)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.IN); err != nil {
		return nil, err
	}
	hay, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.PositionExpr{StartPos: start.Pos, EndPos: endPos(end), Needle: needle, Haystack: hay}, nil
}

func (p *Parser) parseOverlay() (ast.Expr, error) {
	start := p.Cur()
	p.advance()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.PLACING); err != nil {
		return nil, err
	}
	placing, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.FROM); err != nil {
		return nil, err
	}
	from, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	o := &ast.OverlayExpr{StartPos: start.Pos, Expr: e, Placing: placing, From: from}
	if p.parseKeyword(token.FOR) {
		f, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		o.For = f
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	o.EndPos = endPos(end)
	return o, nil
}

func (p *Parser) parseExists(not bool) (ast.Expr, error) {
	start := p.Cur()
	p.advance() // EXISTS
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	q, err := p.parseQueryBody()
	if err != nil {
		return nil, err
	}
	end := p.Cur()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.ExistsExpr{StartPos: start.Pos, EndPos: endPos(end), Not: not, Query: q}, nil
}

func (p *Parser) parseInterval() (ast.Expr, error) {
	start := p.Cur()
	p.advance() // INTERVAL
	value, err := p.ParseSubExpr(p.ladder().PlusMinus)
	if err != nil {
		return nil, err
	}
	iv := &ast.IntervalExpr{StartPos: start.Pos, EndPos: value.End(), Value: value}
	if dateTimeFields[p.Cur().Type] {
		iv.Leading = p.Cur().Type.String()
		p.advance()
		if prec, ok, err := p.parseOptionalIntParen(); err != nil {
			return nil, err
		} else if ok {
			iv.LeadingPrecision = &prec
		}
		if p.parseKeyword(token.TO) {
			if !dateTimeFields[p.Cur().Type] {
				return nil, p.Expected("a date/time field")
			}
			iv.Last = p.Cur().Type.String()
			p.advance()
			if prec, ok, err := p.parseOptionalIntParen(); err != nil {
				return nil, err
			} else if ok {
				iv.FractionalPrecision = &prec
			}
		}
		iv.EndPos = p.Cur().Pos
	} else if p.dialect.RequireIntervalQualifier {
		return nil, p.Expected("a date/time field")
	}
	return iv, nil
}

// parseOptionalIntParen parses an optional (N) suffix.
func (p *Parser) parseOptionalIntParen() (int, bool, error) {
	if !p.curIs(token.LPAREN) {
		return 0, false, nil
	}
	p.advance()
	cur := p.Cur()
	if cur.Type != token.INT {
		return 0, false, p.Expected("an integer")
	}
	n, err := strconv.Atoi(cur.Value)
	if err != nil {
		return 0, false, p.Expected("an integer")
	}
	p.advance()
	if err := p.expect(token.RPAREN); err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// parseFunction parses the call syntax after the function name,
// including aggregate and window clauses.
func (p *Parser) parseFunction(name *ast.ObjectName) (ast.Expr, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	f := &ast.FuncExpr{StartPos: name.StartPos, Name: name}
	if p.parseKeyword(token.DISTINCT) {
		f.Distinct = true
	}
	if !p.curIs(token.RPAREN) {
		args, err := parseCommaSeparated(p, p.parseFunctionArg)
		if err != nil {
			return nil, err
		}
		f.Args = args
		if p.parseKeywords(token.ORDER, token.BY) {
			obs, err := parseCommaSeparated(p, p.parseOrderByExpr)
			if err != nil {
				return nil, err
			}
			f.OrderBy = obs
		}
		if p.dialect.WindowFunctionNullTreatmentArg {
			if p.parseKeywords(token.RESPECT, token.NULLS) {
				f.NullTreatment = ast.NullTreatmentRespect
			} else if p.parseKeywords(token.IGNORE, token.NULLS) {
				f.NullTreatment = ast.NullTreatmentIgnore
			}
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	f.EndPos = p.Cur().Pos

	if p.parseKeywords(token.WITHIN, token.GROUP) {
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		if !p.parseKeywords(token.ORDER, token.BY) {
			return nil, p.Expected("ORDER BY")
		}
		obs, err := parseCommaSeparated(p, p.parseOrderByExpr)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		f.WithinGroup = obs
	}
	if p.dialect.FilterDuringAggregation && p.curIs(token.FILTER) && p.peekIs(token.LPAREN) {
		p.advance()
		p.advance()
		if err := p.expect(token.WHERE); err != nil {
			return nil, err
		}
		cond, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		f.Filter = cond
	}
	if p.parseKeyword(token.OVER) {
		spec, err := p.parseWindowSpec()
		if err != nil {
			return nil, err
		}
		f.Over = spec
	}
	return f, nil
}

// parseFunctionArg parses one call argument, handling named arguments
// where the dialect allows them.
func (p *Parser) parseFunctionArg() (ast.Expr, error) {
	if p.identLike() {
		next := p.Peek().Type
		if next == token.FATARROW ||
			(p.dialect.NamedFunctionArgsWithEqOperator && next == token.EQ) ||
			next == token.ASSIGN {
			name := p.Cur()
			p.advance()
			op := p.Cur()
			p.advance()
			val, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.FuncArgExpr{
				StartPos: name.Pos,
				EndPos:   val.End(),
				Name:     p.identFromItem(name),
				Op:       op.Type,
				Value:    val,
			}, nil
		}
	}
	return p.ParseExpr()
}
