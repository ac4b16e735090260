package ast

import (
	"strings"

	"github.com/freeeve/sqlparse/token"
)

// Query is the full query statement: WITH, a set-expression body, and the
// trailing ordering, limiting, and locking clauses.
type Query struct {
	StartPos token.Pos
	EndPos   token.Pos
	With     *WithClause
	Body     SetExpr
	OrderBy  []*OrderByExpr
	Limit    Expr
	Offset   Expr
	Fetch    *Fetch
	For      *ForClause
	Locks    []*LockClause
}

func (*Query) statementNode()   {}
func (*Query) setExprNode()     {}
func (q *Query) Pos() token.Pos { return q.StartPos }
func (q *Query) End() token.Pos { return q.EndPos }

func (q *Query) WriteSQL(b *strings.Builder) {
	if q.With != nil {
		q.With.WriteSQL(b)
		b.WriteByte(' ')
	}
	writeSetExpr(b, q.Body)
	if len(q.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		writeOrderByList(b, q.OrderBy)
	}
	if q.Limit != nil {
		b.WriteString(" LIMIT ")
		q.Limit.WriteSQL(b)
	}
	if q.Offset != nil {
		b.WriteString(" OFFSET ")
		q.Offset.WriteSQL(b)
	}
	if q.Fetch != nil {
		b.WriteByte(' ')
		q.Fetch.WriteSQL(b)
	}
	if q.For != nil {
		b.WriteByte(' ')
		q.For.WriteSQL(b)
	}
	for _, l := range q.Locks {
		b.WriteByte(' ')
		l.WriteSQL(b)
	}
}

// SetOpType indicates UNION, INTERSECT, or EXCEPT.
type SetOpType int

const (
	Union SetOpType = iota
	Intersect
	Except
)

func (t SetOpType) String() string {
	switch t {
	case Intersect:
		return "INTERSECT"
	case Except:
		return "EXCEPT"
	default:
		return "UNION"
	}
}

// SetQuantifier modifies a set operation.
type SetQuantifier int

const (
	SetNone SetQuantifier = iota
	SetAll
	SetDistinct
	SetByName
	SetAllByName
	SetDistinctByName
)

func (q SetQuantifier) String() string {
	switch q {
	case SetAll:
		return "ALL"
	case SetDistinct:
		return "DISTINCT"
	case SetByName:
		return "BY NAME"
	case SetAllByName:
		return "ALL BY NAME"
	case SetDistinctByName:
		return "DISTINCT BY NAME"
	default:
		return ""
	}
}

// SetOp represents left UNION/INTERSECT/EXCEPT [quantifier] right.
type SetOp struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Left       SetExpr
	Op         SetOpType
	Quantifier SetQuantifier
	Right      SetExpr
}

func (*SetOp) statementNode()   {}
func (*SetOp) setExprNode()     {}
func (s *SetOp) Pos() token.Pos { return s.StartPos }
func (s *SetOp) End() token.Pos { return s.EndPos }

func (s *SetOp) WriteSQL(b *strings.Builder) {
	writeSetExpr(b, s.Left)
	b.WriteByte(' ')
	b.WriteString(s.Op.String())
	if q := s.Quantifier.String(); q != "" {
		b.WriteByte(' ')
		b.WriteString(q)
	}
	b.WriteByte(' ')
	writeSetExpr(b, s.Right)
}

// writeSetExpr writes a set-operation operand, parenthesizing a nested
// full query so its ORDER BY/LIMIT stay scoped to it.
func writeSetExpr(b *strings.Builder, se SetExpr) {
	if q, ok := se.(*Query); ok {
		b.WriteByte('(')
		q.WriteSQL(b)
		b.WriteByte(')')
		return
	}
	se.WriteSQL(b)
}

// DistinctKind is the projection distinctness modifier.
type DistinctKind int

const (
	DistinctNone DistinctKind = iota
	DistinctAll
	DistinctDistinct
	DistinctOn
)

// ValueTableMode is BigQuery's SELECT AS STRUCT / SELECT AS VALUE.
type ValueTableMode int

const (
	ValueTableNone ValueTableMode = iota
	ValueTableStruct
	ValueTableValue
)

// Top represents the MS SQL TOP clause.
type Top struct {
	Quantity Expr
	Percent  bool
	WithTies bool
}

func (t *Top) WriteSQL(b *strings.Builder) {
	b.WriteString("TOP (")
	t.Quantity.WriteSQL(b)
	b.WriteByte(')')
	if t.Percent {
		b.WriteString(" PERCENT")
	}
	if t.WithTies {
		b.WriteString(" WITH TIES")
	}
}

// GroupByKind distinguishes the GROUP BY variants.
type GroupByKind int

const (
	GroupByExprs GroupByKind = iota
	GroupByAll
	GroupByRollup
	GroupByCube
	GroupByGroupingSets
)

// GroupBy represents the GROUP BY clause in all its variants.
type GroupBy struct {
	Kind  GroupByKind
	Exprs []Expr
	Sets  [][]Expr
}

func (g *GroupBy) WriteSQL(b *strings.Builder) {
	b.WriteString("GROUP BY ")
	switch g.Kind {
	case GroupByAll:
		b.WriteString("ALL")
	case GroupByRollup:
		b.WriteString("ROLLUP (")
		writeExprList(b, g.Exprs)
		b.WriteByte(')')
	case GroupByCube:
		b.WriteString("CUBE (")
		writeExprList(b, g.Exprs)
		b.WriteByte(')')
	case GroupByGroupingSets:
		b.WriteString("GROUPING SETS (")
		for i, set := range g.Sets {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('(')
			writeExprList(b, set)
			b.WriteByte(')')
		}
		b.WriteByte(')')
	default:
		writeExprList(b, g.Exprs)
	}
}

// SelectStmt represents a single SELECT block.
type SelectStmt struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Distinct   DistinctKind
	On         []Expr // DISTINCT ON (exprs)
	Top        *Top
	ValueTable ValueTableMode
	Projection []SelectExpr
	From       []TableExpr
	Where      Expr
	GroupBy    *GroupBy
	Having     Expr
	Qualify    Expr
	Windows    []*WindowDef
}

func (*SelectStmt) statementNode()   {}
func (*SelectStmt) setExprNode()     {}
func (s *SelectStmt) Pos() token.Pos { return s.StartPos }
func (s *SelectStmt) End() token.Pos { return s.EndPos }

func (s *SelectStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("SELECT ")
	switch s.Distinct {
	case DistinctAll:
		b.WriteString("ALL ")
	case DistinctDistinct:
		b.WriteString("DISTINCT ")
	case DistinctOn:
		b.WriteString("DISTINCT ON (")
		writeExprList(b, s.On)
		b.WriteString(") ")
	}
	if s.Top != nil {
		s.Top.WriteSQL(b)
		b.WriteByte(' ')
	}
	switch s.ValueTable {
	case ValueTableStruct:
		b.WriteString("AS STRUCT ")
	case ValueTableValue:
		b.WriteString("AS VALUE ")
	}
	for i, p := range s.Projection {
		if i > 0 {
			b.WriteString(", ")
		}
		p.WriteSQL(b)
	}
	if len(s.From) > 0 {
		b.WriteString(" FROM ")
		for i, t := range s.From {
			if i > 0 {
				b.WriteString(", ")
			}
			t.WriteSQL(b)
		}
	}
	if s.Where != nil {
		b.WriteString(" WHERE ")
		s.Where.WriteSQL(b)
	}
	if s.GroupBy != nil {
		b.WriteByte(' ')
		s.GroupBy.WriteSQL(b)
	}
	if s.Having != nil {
		b.WriteString(" HAVING ")
		s.Having.WriteSQL(b)
	}
	if s.Qualify != nil {
		b.WriteString(" QUALIFY ")
		s.Qualify.WriteSQL(b)
	}
	if len(s.Windows) > 0 {
		b.WriteString(" WINDOW ")
		for i, w := range s.Windows {
			if i > 0 {
				b.WriteString(", ")
			}
			w.WriteSQL(b)
		}
	}
}

// ValuesStmt represents a VALUES constructor, usable as a statement, a
// query body, and a table factor.
type ValuesStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Rows     [][]Expr
}

func (*ValuesStmt) statementNode()   {}
func (*ValuesStmt) setExprNode()     {}
func (*ValuesStmt) tableExprNode()   {}
func (v *ValuesStmt) Pos() token.Pos { return v.StartPos }
func (v *ValuesStmt) End() token.Pos { return v.EndPos }

func (v *ValuesStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("VALUES ")
	for i, row := range v.Rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		writeExprList(b, row)
		b.WriteByte(')')
	}
}

// TableStmt represents the TABLE name query body.
type TableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     *ObjectName
}

func (*TableStmt) statementNode()   {}
func (*TableStmt) setExprNode()     {}
func (t *TableStmt) Pos() token.Pos { return t.StartPos }
func (t *TableStmt) End() token.Pos { return t.EndPos }

func (t *TableStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("TABLE ")
	t.Name.WriteSQL(b)
}
