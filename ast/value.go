package ast

import (
	"strings"

	"github.com/freeeve/sqlparse/token"
)

// Ident represents a single identifier with its original quote style.
// Quote is 0 for a bare identifier, or the opening delimiter ('"', '`',
// '['). Raw marks a value that still contains source escapes (parsed with
// the unescape option off) and must be emitted verbatim.
type Ident struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    string
	Quote    byte
	Raw      bool
}

func (*Ident) exprNode()        {}
func (i *Ident) Pos() token.Pos { return i.StartPos }
func (i *Ident) End() token.Pos { return i.EndPos }

func (i *Ident) WriteSQL(b *strings.Builder) {
	switch i.Quote {
	case 0:
		b.WriteString(i.Value)
	case '[':
		writeQuoted(b, i.Value, '[', ']', i.Raw)
	default:
		writeQuoted(b, i.Value, i.Quote, i.Quote, i.Raw)
	}
}

// CompoundIdent represents a dotted identifier chain like a.b.c.
// It always has at least two parts; a single part is an Ident.
type CompoundIdent struct {
	StartPos token.Pos
	EndPos   token.Pos
	Parts    []*Ident
}

func (*CompoundIdent) exprNode()        {}
func (c *CompoundIdent) Pos() token.Pos { return c.StartPos }
func (c *CompoundIdent) End() token.Pos { return c.EndPos }

func (c *CompoundIdent) WriteSQL(b *strings.Builder) {
	for i, p := range c.Parts {
		if i > 0 {
			b.WriteByte('.')
		}
		p.WriteSQL(b)
	}
}

// ObjectName is a possibly-qualified name of a schema object: a table,
// view, function, stage, and so on. It doubles as the bare table factor
// in FROM clauses.
type ObjectName struct {
	StartPos token.Pos
	EndPos   token.Pos
	Parts    []*Ident
}

func (*ObjectName) tableExprNode()   {}
func (o *ObjectName) Pos() token.Pos { return o.StartPos }
func (o *ObjectName) End() token.Pos { return o.EndPos }

// Name returns the object name (last part), unquoted.
func (o *ObjectName) Name() string {
	if len(o.Parts) == 0 {
		return ""
	}
	return o.Parts[len(o.Parts)-1].Value
}

func (o *ObjectName) WriteSQL(b *strings.Builder) {
	for i, p := range o.Parts {
		if i > 0 {
			b.WriteByte('.')
		}
		p.WriteSQL(b)
	}
}

// LiteralType indicates the lexical form of a literal value.
type LiteralType int

const (
	LiteralNull LiteralType = iota
	LiteralBool
	LiteralNumber
	LiteralString       // 'abc'
	LiteralDQString     // "abc" where the dialect reads it as a string
	LiteralTSQString    // '''abc'''
	LiteralTDQString    // """abc"""
	LiteralNational     // N'abc'
	LiteralEscaped      // E'a\nb'
	LiteralRaw          // R'abc'
	LiteralRawDQ        // R"abc"
	LiteralByte         // B'0101'
	LiteralByteDQ       // B"0101"
	LiteralUnicode      // U&'d\0061t'
	LiteralHex          // X'2A' or 0x2A
	LiteralDollarString // $tag$abc$tag$
	LiteralPlaceholder  // ?, $1, @name, :name
)

// Literal represents a literal value.
//
// Value holds the content without delimiters: digits for numbers
// (preserved as written, never parsed, so precision survives), the string
// body for string forms, the placeholder text verbatim. Long marks a
// MySQL 123L number. Tag carries the dollar-quote tag, or "0x" for a
// 0x-form hex literal. Raw marks string content that still contains
// source escapes and must not be re-escaped.
type Literal struct {
	StartPos token.Pos
	EndPos   token.Pos
	Type     LiteralType
	Value    string
	Long     bool
	Tag      string
	Raw      bool
}

func (*Literal) exprNode()        {}
func (l *Literal) Pos() token.Pos { return l.StartPos }
func (l *Literal) End() token.Pos { return l.EndPos }

func (l *Literal) WriteSQL(b *strings.Builder) {
	switch l.Type {
	case LiteralNull:
		b.WriteString("NULL")
	case LiteralBool:
		b.WriteString(l.Value)
	case LiteralNumber:
		b.WriteString(l.Value)
		if l.Long {
			b.WriteByte('L')
		}
	case LiteralString:
		writeQuoted(b, l.Value, '\'', '\'', l.Raw)
	case LiteralDQString:
		writeQuoted(b, l.Value, '"', '"', l.Raw)
	case LiteralTSQString:
		b.WriteString("'''")
		b.WriteString(l.Value)
		b.WriteString("'''")
	case LiteralTDQString:
		b.WriteString(`"""`)
		b.WriteString(l.Value)
		b.WriteString(`"""`)
	case LiteralNational:
		b.WriteByte('N')
		writeQuoted(b, l.Value, '\'', '\'', l.Raw)
	case LiteralEscaped:
		b.WriteByte('E')
		if l.Raw {
			b.WriteByte('\'')
			b.WriteString(l.Value)
			b.WriteByte('\'')
		} else {
			writeEscapedString(b, l.Value)
		}
	case LiteralRaw:
		b.WriteByte('R')
		b.WriteByte('\'')
		b.WriteString(l.Value)
		b.WriteByte('\'')
	case LiteralRawDQ:
		b.WriteByte('R')
		b.WriteByte('"')
		b.WriteString(l.Value)
		b.WriteByte('"')
	case LiteralByte:
		b.WriteByte('B')
		writeQuoted(b, l.Value, '\'', '\'', l.Raw)
	case LiteralByteDQ:
		b.WriteByte('B')
		writeQuoted(b, l.Value, '"', '"', l.Raw)
	case LiteralUnicode:
		b.WriteString("U&'")
		b.WriteString(l.Value)
		b.WriteByte('\'')
	case LiteralHex:
		if l.Tag == "0x" {
			b.WriteString("0x")
			b.WriteString(l.Value)
		} else {
			b.WriteString("X'")
			b.WriteString(l.Value)
			b.WriteByte('\'')
		}
	case LiteralDollarString:
		b.WriteByte('$')
		b.WriteString(l.Tag)
		b.WriteByte('$')
		b.WriteString(l.Value)
		b.WriteByte('$')
		b.WriteString(l.Tag)
		b.WriteByte('$')
	case LiteralPlaceholder:
		b.WriteString(l.Value)
	}
}

// writeEscapedString writes a decoded E'...' body, re-encoding the
// escapes the tokenizer understands.
func writeEscapedString(b *strings.Builder, val string) {
	b.WriteByte('\'')
	for i := 0; i < len(val); i++ {
		switch c := val[i]; c {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
}
