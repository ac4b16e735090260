package ast

import (
	"strconv"
	"strings"
)

// BracketKind is the delimiter style of a nested type.
type BracketKind int

const (
	BracketNone   BracketKind = iota
	BracketAngle              // ARRAY<INT>, STRUCT<a INT>
	BracketParen              // STRUCT(a INT), UNION(a INT)
	BracketSquare             // INT[] (PostgreSQL/DuckDB)
)

// StructField is a named field of a STRUCT, ROW, or UNION type.
type StructField struct {
	Name *Ident
	Type *DataType
}

// DataType represents a SQL data type. A single struct covers the whole
// surface: simple named types, parameterized types, character set and
// collation modifiers, and the nested ARRAY/STRUCT/MAP/UNION shapes.
type DataType struct {
	Name         string // canonical uppercase name as parsed
	Length       *int
	Precision    *int
	Scale        *int
	WithTimeZone *bool // TIMESTAMP/TIME WITH or WITHOUT TIME ZONE
	Unsigned     bool
	Zerofill     bool
	Varying      bool // CHARACTER VARYING, BIT VARYING
	CharacterSet *ObjectName
	Collation    *ObjectName
	Elem         *DataType      // ARRAY element
	Bracket      BracketKind    // ARRAY/STRUCT delimiter style
	Fields       []*StructField // STRUCT/UNION fields
	Key          *DataType      // MAP key
	Value        *DataType      // MAP value
	Values       []string       // ENUM/SET members, quoted values
	Custom       bool           // name not in the known type table
}

func (t *DataType) WriteSQL(b *strings.Builder) {
	switch t.Name {
	case "ARRAY":
		if t.Elem != nil {
			if t.Bracket == BracketSquare {
				t.Elem.WriteSQL(b)
				b.WriteString("[]")
				return
			}
			b.WriteString("ARRAY<")
			t.Elem.WriteSQL(b)
			b.WriteByte('>')
			return
		}
		b.WriteString("ARRAY")
		return
	case "STRUCT", "UNION":
		b.WriteString(t.Name)
		if len(t.Fields) == 0 {
			return
		}
		open, close := byte('<'), byte('>')
		if t.Bracket == BracketParen {
			open, close = '(', ')'
		}
		b.WriteByte(open)
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			if f.Name != nil {
				f.Name.WriteSQL(b)
				b.WriteByte(' ')
			}
			f.Type.WriteSQL(b)
		}
		b.WriteByte(close)
		return
	case "MAP":
		b.WriteString("MAP")
		if t.Key != nil {
			b.WriteByte('<')
			t.Key.WriteSQL(b)
			b.WriteString(", ")
			t.Value.WriteSQL(b)
			b.WriteByte('>')
		}
		return
	case "ENUM", "SET":
		b.WriteString(t.Name)
		b.WriteByte('(')
		for i, v := range t.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('\'')
			b.WriteString(v)
			b.WriteByte('\'')
		}
		b.WriteByte(')')
		return
	}

	b.WriteString(t.Name)
	if t.Varying {
		b.WriteString(" VARYING")
	}
	switch {
	case t.Precision != nil && t.Scale != nil:
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(*t.Precision))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(*t.Scale))
		b.WriteByte(')')
	case t.Precision != nil:
		writeIntParen(b, *t.Precision)
	case t.Length != nil:
		writeIntParen(b, *t.Length)
	}
	if t.WithTimeZone != nil {
		if *t.WithTimeZone {
			b.WriteString(" WITH TIME ZONE")
		} else {
			b.WriteString(" WITHOUT TIME ZONE")
		}
	}
	if t.Unsigned {
		b.WriteString(" UNSIGNED")
	}
	if t.Zerofill {
		b.WriteString(" ZEROFILL")
	}
	if t.CharacterSet != nil {
		b.WriteString(" CHARACTER SET ")
		t.CharacterSet.WriteSQL(b)
	}
	if t.Collation != nil {
		b.WriteString(" COLLATE ")
		t.Collation.WriteSQL(b)
	}
}
