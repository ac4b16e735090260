package parser

import (
	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/token"
)

// parseDataType parses a SQL data type, including the nested
// ARRAY/STRUCT/MAP/UNION shapes.
func (p *Parser) parseDataType() (*ast.DataType, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	t, err := p.parseBaseDataType()
	if err != nil {
		return nil, err
	}
	// PostgreSQL/DuckDB INT[] array suffixes, possibly nested.
	for p.curIs(token.LBRACKET) && p.peekIs(token.RBRACKET) {
		p.advance()
		p.advance()
		t = &ast.DataType{Name: "ARRAY", Elem: t, Bracket: ast.BracketSquare}
	}
	return t, nil
}

func (p *Parser) parseBaseDataType() (*ast.DataType, error) {
	cur := p.Cur()
	switch cur.Type {
	case token.INT_TYPE, token.INTEGER, token.SMALLINT, token.BIGINT,
		token.TINYINT, token.MEDIUMINT:
		p.advance()
		t := &ast.DataType{Name: cur.Type.String()}
		if n, ok, err := p.parseOptionalIntParen(); err != nil {
			return nil, err
		} else if ok {
			t.Length = &n
		}
		p.parseIntModifiers(t)
		return t, nil
	case token.SERIAL, token.BIGSERIAL, token.SMALLSERIAL, token.REAL,
		token.TEXT, token.STRING_TYPE, token.BLOB_TYPE, token.BOOLEAN,
		token.BOOL, token.DATE, token.YEAR, token.JSON, token.JSONB,
		token.UUID, token.INTERVAL, token.ROWID:
		p.advance()
		return &ast.DataType{Name: cur.Type.String()}, nil
	case token.DOUBLE:
		p.advance()
		if p.parseKeyword(token.PRECISION) {
			return &ast.DataType{Name: "DOUBLE PRECISION"}, nil
		}
		t := &ast.DataType{Name: "DOUBLE"}
		p.parseIntModifiers(t)
		return t, nil
	case token.FLOAT_TYPE, token.DECIMAL, token.NUMERIC:
		p.advance()
		t := &ast.DataType{Name: cur.Type.String()}
		if err := p.parsePrecScale(t); err != nil {
			return nil, err
		}
		p.parseIntModifiers(t)
		return t, nil
	case token.CHAR, token.CHARACTER:
		p.advance()
		t := &ast.DataType{Name: cur.Type.String()}
		if p.parseKeyword(token.VARYING) {
			t.Varying = true
		}
		if n, ok, err := p.parseOptionalIntParen(); err != nil {
			return nil, err
		} else if ok {
			t.Length = &n
		}
		return t, nil
	case token.VARCHAR, token.NVARCHAR, token.BINARY, token.VARBINARY,
		token.BYTES:
		p.advance()
		t := &ast.DataType{Name: cur.Type.String()}
		if n, ok, err := p.parseOptionalIntParen(); err != nil {
			return nil, err
		} else if ok {
			t.Length = &n
		}
		return t, nil
	case token.TIME, token.TIMESTAMP, token.DATETIME:
		p.advance()
		t := &ast.DataType{Name: cur.Type.String()}
		if n, ok, err := p.parseOptionalIntParen(); err != nil {
			return nil, err
		} else if ok {
			t.Precision = &n
		}
		if p.parseKeywords(token.WITH, token.TIME, token.ZONE) {
			wtz := true
			t.WithTimeZone = &wtz
		} else if p.parseKeywords(token.WITHOUT, token.TIME, token.ZONE) {
			wtz := false
			t.WithTimeZone = &wtz
		}
		return t, nil
	case token.ARRAY:
		p.advance()
		t := &ast.DataType{Name: "ARRAY"}
		if p.curIs(token.LT) {
			p.advance()
			elem, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			t.Elem = elem
			t.Bracket = ast.BracketAngle
			if err := p.expectCloseAngle(); err != nil {
				return nil, err
			}
		}
		return t, nil
	case token.STRUCT:
		p.advance()
		t := &ast.DataType{Name: "STRUCT"}
		switch {
		case p.curIs(token.LT):
			p.advance()
			t.Bracket = ast.BracketAngle
			fields, err := parseCommaSeparated(p, p.parseStructTypeField)
			if err != nil {
				return nil, err
			}
			t.Fields = fields
			if err := p.expectCloseAngle(); err != nil {
				return nil, err
			}
		case p.curIs(token.LPAREN):
			p.advance()
			t.Bracket = ast.BracketParen
			fields, err := parseCommaSeparated(p, p.parseStructTypeField)
			if err != nil {
				return nil, err
			}
			t.Fields = fields
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
		}
		return t, nil
	case token.UNION:
		p.advance()
		t := &ast.DataType{Name: "UNION", Bracket: ast.BracketParen}
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		fields, err := parseCommaSeparated(p, p.parseStructTypeField)
		if err != nil {
			return nil, err
		}
		t.Fields = fields
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return t, nil
	case token.MAP:
		p.advance()
		t := &ast.DataType{Name: "MAP"}
		if err := p.expect(token.LT); err != nil {
			return nil, err
		}
		key, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		val, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		t.Key, t.Value = key, val
		if err := p.expectCloseAngle(); err != nil {
			return nil, err
		}
		return t, nil
	case token.ENUM, token.SET:
		p.advance()
		t := &ast.DataType{Name: cur.Type.String()}
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		vals, err := parseCommaSeparated(p, func() (string, error) {
			lit, err := p.parseStringLiteral()
			if err != nil {
				return "", err
			}
			return lit.Value, nil
		})
		if err != nil {
			return nil, err
		}
		t.Values = vals
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return t, nil
	}

	if p.identLike() {
		p.advance()
		t := &ast.DataType{Name: cur.Value, Custom: true}
		if err := p.parsePrecScale(t); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, p.Expected("a data type")
}

// parseIntModifiers consumes UNSIGNED/SIGNED/ZEROFILL after numeric
// types.
func (p *Parser) parseIntModifiers(t *ast.DataType) {
	if p.parseKeyword(token.UNSIGNED) {
		t.Unsigned = true
	} else {
		p.parseKeyword(token.SIGNED)
	}
	if p.curIs(token.IDENT) && equalFold(p.Cur().Value, "ZEROFILL") {
		p.advance()
		t.Zerofill = true
	}
}

// parsePrecScale parses an optional (p) or (p, s) suffix.
func (p *Parser) parsePrecScale(t *ast.DataType) error {
	if !p.curIs(token.LPAREN) || p.Peek().Type != token.INT {
		return nil
	}
	p.advance()
	n, err := p.parseInt()
	if err != nil {
		return err
	}
	if p.curIs(token.COMMA) {
		p.advance()
		s, err := p.parseInt()
		if err != nil {
			return err
		}
		t.Precision, t.Scale = &n, &s
	} else {
		t.Precision = &n
	}
	return p.expect(token.RPAREN)
}

func (p *Parser) parseInt() (int, error) {
	cur := p.Cur()
	if cur.Type != token.INT {
		return 0, p.Expected("an integer")
	}
	n := 0
	for i := 0; i < len(cur.Value); i++ {
		n = n*10 + int(cur.Value[i]-'0')
	}
	p.advance()
	return n, nil
}

func (p *Parser) parseStructTypeField() (*ast.StructField, error) {
	name, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	t, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	return &ast.StructField{Name: name, Type: t}, nil
}

// expectCloseAngle consumes one closing angle bracket. A >> token from
// nested generics is split in place into the remaining single >.
func (p *Parser) expectCloseAngle() error {
	if p.curIs(token.GT) {
		p.advance()
		return nil
	}
	if p.curIs(token.RSHIFT) {
		it := p.tokens[p.idx]
		it.Type = token.GT
		it.Value = ">"
		it.Pos.Offset++
		it.Pos.Column++
		p.tokens[p.idx] = it
		return nil
	}
	return p.Expected(">")
}
