package ast

import (
	"strconv"
	"strings"

	"github.com/freeeve/sqlparse/token"
)

// TableAlias is a table alias with optional column aliases.
type TableAlias struct {
	Name    *Ident
	Columns []*Ident
}

func (a *TableAlias) WriteSQL(b *strings.Builder) {
	a.Name.WriteSQL(b)
	if len(a.Columns) > 0 {
		b.WriteString(" (")
		writeIdentList(b, a.Columns)
		b.WriteByte(')')
	}
}

// AliasedTableExpr represents a table factor with an alias.
type AliasedTableExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     TableExpr
	Alias    *TableAlias
}

func (*AliasedTableExpr) tableExprNode()   {}
func (a *AliasedTableExpr) Pos() token.Pos { return a.StartPos }
func (a *AliasedTableExpr) End() token.Pos { return a.EndPos }

func (a *AliasedTableExpr) WriteSQL(b *strings.Builder) {
	a.Expr.WriteSQL(b)
	b.WriteString(" AS ")
	a.Alias.WriteSQL(b)
}

// DerivedTable represents a subquery in the FROM clause.
type DerivedTable struct {
	StartPos token.Pos
	EndPos   token.Pos
	Lateral  bool
	Query    *Query
}

func (*DerivedTable) tableExprNode()   {}
func (d *DerivedTable) Pos() token.Pos { return d.StartPos }
func (d *DerivedTable) End() token.Pos { return d.EndPos }

func (d *DerivedTable) WriteSQL(b *strings.Builder) {
	if d.Lateral {
		b.WriteString("LATERAL ")
	}
	b.WriteByte('(')
	d.Query.WriteSQL(b)
	b.WriteByte(')')
}

// UnnestTable represents UNNEST(exprs) [WITH OFFSET] as a table factor.
type UnnestTable struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Exprs      []Expr
	WithOffset bool
}

func (*UnnestTable) tableExprNode()   {}
func (u *UnnestTable) Pos() token.Pos { return u.StartPos }
func (u *UnnestTable) End() token.Pos { return u.EndPos }

func (u *UnnestTable) WriteSQL(b *strings.Builder) {
	b.WriteString("UNNEST(")
	writeExprList(b, u.Exprs)
	b.WriteByte(')')
	if u.WithOffset {
		b.WriteString(" WITH OFFSET")
	}
}

// TableFunc represents a table-valued function call in the FROM clause.
type TableFunc struct {
	StartPos token.Pos
	EndPos   token.Pos
	Func     *FuncExpr
}

func (*TableFunc) tableExprNode()   {}
func (t *TableFunc) Pos() token.Pos { return t.StartPos }
func (t *TableFunc) End() token.Pos { return t.EndPos }

func (t *TableFunc) WriteSQL(b *strings.Builder) {
	t.Func.WriteSQL(b)
}

// ParenTableExpr represents a parenthesized table expression.
type ParenTableExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     TableExpr
}

func (*ParenTableExpr) tableExprNode()   {}
func (p *ParenTableExpr) Pos() token.Pos { return p.StartPos }
func (p *ParenTableExpr) End() token.Pos { return p.EndPos }

func (p *ParenTableExpr) WriteSQL(b *strings.Builder) {
	b.WriteByte('(')
	p.Expr.WriteSQL(b)
	b.WriteByte(')')
}

// JoinType indicates the type of join.
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
	JoinAsof
)

func (j JoinType) String() string {
	switch j {
	case JoinLeft:
		return "LEFT"
	case JoinRight:
		return "RIGHT"
	case JoinFull:
		return "FULL"
	case JoinCross:
		return "CROSS"
	case JoinAsof:
		return "ASOF"
	default:
		return "INNER"
	}
}

// JoinExpr represents a JOIN between two table expressions.
type JoinExpr struct {
	StartPos       token.Pos
	EndPos         token.Pos
	Type           JoinType
	Natural        bool
	Left           TableExpr
	Right          TableExpr
	On             Expr
	Using          []*Ident
	MatchCondition Expr // Snowflake ASOF JOIN ... MATCH_CONDITION (...)
}

func (*JoinExpr) tableExprNode()   {}
func (j *JoinExpr) Pos() token.Pos { return j.StartPos }
func (j *JoinExpr) End() token.Pos { return j.EndPos }

func (j *JoinExpr) WriteSQL(b *strings.Builder) {
	j.Left.WriteSQL(b)
	b.WriteByte(' ')
	if j.Natural {
		b.WriteString("NATURAL ")
	}
	if j.Type != JoinInner {
		b.WriteString(j.Type.String())
		b.WriteByte(' ')
	}
	b.WriteString("JOIN ")
	j.Right.WriteSQL(b)
	if j.MatchCondition != nil {
		b.WriteString(" MATCH_CONDITION (")
		j.MatchCondition.WriteSQL(b)
		b.WriteByte(')')
	}
	if j.On != nil {
		b.WriteString(" ON ")
		j.On.WriteSQL(b)
	}
	if len(j.Using) > 0 {
		b.WriteString(" USING (")
		writeIdentList(b, j.Using)
		b.WriteByte(')')
	}
}

// OrderByExpr represents an ORDER BY item.
type OrderByExpr struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Expr       Expr
	Desc       bool
	NullsFirst *bool // nil when unspecified
}

func (o *OrderByExpr) Pos() token.Pos { return o.StartPos }
func (o *OrderByExpr) End() token.Pos { return o.EndPos }

func (o *OrderByExpr) WriteSQL(b *strings.Builder) {
	o.Expr.WriteSQL(b)
	if o.Desc {
		b.WriteString(" DESC")
	}
	if o.NullsFirst != nil {
		if *o.NullsFirst {
			b.WriteString(" NULLS FIRST")
		} else {
			b.WriteString(" NULLS LAST")
		}
	}
}

func writeOrderByList(b *strings.Builder, obs []*OrderByExpr) {
	for i, o := range obs {
		if i > 0 {
			b.WriteString(", ")
		}
		o.WriteSQL(b)
	}
}

// Fetch represents FETCH FIRST/NEXT n [PERCENT] ROWS ONLY/WITH TIES.
type Fetch struct {
	Quantity Expr
	Percent  bool
	WithTies bool
}

func (f *Fetch) WriteSQL(b *strings.Builder) {
	b.WriteString("FETCH FIRST ")
	if f.Quantity != nil {
		f.Quantity.WriteSQL(b)
		b.WriteByte(' ')
		if f.Percent {
			b.WriteString("PERCENT ")
		}
	}
	b.WriteString("ROWS ")
	if f.WithTies {
		b.WriteString("WITH TIES")
	} else {
		b.WriteString("ONLY")
	}
}

// LockKind is the FOR UPDATE / FOR SHARE variant.
type LockKind int

const (
	LockUpdate LockKind = iota
	LockShare
)

// LockClause represents FOR UPDATE/SHARE [OF tables] [NOWAIT|SKIP LOCKED].
type LockClause struct {
	Kind       LockKind
	Of         []*ObjectName
	NoWait     bool
	SkipLocked bool
}

func (l *LockClause) WriteSQL(b *strings.Builder) {
	if l.Kind == LockShare {
		b.WriteString("FOR SHARE")
	} else {
		b.WriteString("FOR UPDATE")
	}
	if len(l.Of) > 0 {
		b.WriteString(" OF ")
		for i, o := range l.Of {
			if i > 0 {
				b.WriteString(", ")
			}
			o.WriteSQL(b)
		}
	}
	if l.NoWait {
		b.WriteString(" NOWAIT")
	}
	if l.SkipLocked {
		b.WriteString(" SKIP LOCKED")
	}
}

// ForClause represents the MS SQL FOR XML/JSON/BROWSE output clause.
type ForClause struct {
	Mode string // XML, JSON, BROWSE
}

func (f *ForClause) WriteSQL(b *strings.Builder) {
	b.WriteString("FOR ")
	b.WriteString(f.Mode)
}

// CTE represents a single common table expression.
type CTE struct {
	Name         *Ident
	Columns      []*Ident
	Materialized *bool // nil when unspecified
	Query        *Query
}

func (c *CTE) WriteSQL(b *strings.Builder) {
	c.Name.WriteSQL(b)
	if len(c.Columns) > 0 {
		b.WriteString(" (")
		writeIdentList(b, c.Columns)
		b.WriteByte(')')
	}
	b.WriteString(" AS ")
	if c.Materialized != nil {
		if *c.Materialized {
			b.WriteString("MATERIALIZED ")
		} else {
			b.WriteString("NOT MATERIALIZED ")
		}
	}
	b.WriteByte('(')
	c.Query.WriteSQL(b)
	b.WriteByte(')')
}

// WithClause represents a WITH clause.
type WithClause struct {
	Recursive bool
	CTEs      []*CTE
}

func (w *WithClause) WriteSQL(b *strings.Builder) {
	b.WriteString("WITH ")
	if w.Recursive {
		b.WriteString("RECURSIVE ")
	}
	for i, c := range w.CTEs {
		if i > 0 {
			b.WriteString(", ")
		}
		c.WriteSQL(b)
	}
}

// FrameType indicates the type of window frame.
type FrameType int

const (
	FrameRows FrameType = iota
	FrameRange
	FrameGroups
)

// BoundType indicates the type of frame boundary.
type BoundType int

const (
	BoundCurrentRow BoundType = iota
	BoundUnboundedPreceding
	BoundUnboundedFollowing
	BoundPreceding
	BoundFollowing
)

// FrameBound represents a window frame boundary.
type FrameBound struct {
	Type   BoundType
	Offset Expr
}

func (fb *FrameBound) WriteSQL(b *strings.Builder) {
	switch fb.Type {
	case BoundUnboundedPreceding:
		b.WriteString("UNBOUNDED PRECEDING")
	case BoundUnboundedFollowing:
		b.WriteString("UNBOUNDED FOLLOWING")
	case BoundPreceding:
		fb.Offset.WriteSQL(b)
		b.WriteString(" PRECEDING")
	case BoundFollowing:
		fb.Offset.WriteSQL(b)
		b.WriteString(" FOLLOWING")
	default:
		b.WriteString("CURRENT ROW")
	}
}

// WindowFrame represents a window frame specification.
type WindowFrame struct {
	Type  FrameType
	Start *FrameBound
	End   *FrameBound
}

func (f *WindowFrame) WriteSQL(b *strings.Builder) {
	switch f.Type {
	case FrameRange:
		b.WriteString("RANGE ")
	case FrameGroups:
		b.WriteString("GROUPS ")
	default:
		b.WriteString("ROWS ")
	}
	if f.End != nil {
		b.WriteString("BETWEEN ")
		f.Start.WriteSQL(b)
		b.WriteString(" AND ")
		f.End.WriteSQL(b)
	} else {
		f.Start.WriteSQL(b)
	}
}

// WindowSpec represents a window specification: a named base window
// and/or PARTITION BY, ORDER BY, and a frame.
type WindowSpec struct {
	Name        *Ident
	PartitionBy []Expr
	OrderBy     []*OrderByExpr
	Frame       *WindowFrame
}

func (w *WindowSpec) WriteSQL(b *strings.Builder) {
	if w.Name != nil && len(w.PartitionBy) == 0 && len(w.OrderBy) == 0 && w.Frame == nil {
		w.Name.WriteSQL(b)
		return
	}
	b.WriteByte('(')
	sep := ""
	if w.Name != nil {
		w.Name.WriteSQL(b)
		sep = " "
	}
	if len(w.PartitionBy) > 0 {
		b.WriteString(sep)
		b.WriteString("PARTITION BY ")
		writeExprList(b, w.PartitionBy)
		sep = " "
	}
	if len(w.OrderBy) > 0 {
		b.WriteString(sep)
		b.WriteString("ORDER BY ")
		writeOrderByList(b, w.OrderBy)
		sep = " "
	}
	if w.Frame != nil {
		b.WriteString(sep)
		w.Frame.WriteSQL(b)
	}
	b.WriteByte(')')
}

// WindowDef represents a named window in a WINDOW clause.
type WindowDef struct {
	Name *Ident
	Spec *WindowSpec
}

func (w *WindowDef) WriteSQL(b *strings.Builder) {
	w.Name.WriteSQL(b)
	b.WriteString(" AS ")
	w.Spec.WriteSQL(b)
}

// AliasedExpr represents a projection item with an optional alias.
type AliasedExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Alias    *Ident
}

func (*AliasedExpr) selectExprNode()  {}
func (a *AliasedExpr) Pos() token.Pos { return a.StartPos }
func (a *AliasedExpr) End() token.Pos { return a.EndPos }

func (a *AliasedExpr) WriteSQL(b *strings.Builder) {
	a.Expr.WriteSQL(b)
	if a.Alias != nil {
		b.WriteString(" AS ")
		a.Alias.WriteSQL(b)
	}
}

func writeIntParen(b *strings.Builder, n int) {
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(n))
	b.WriteByte(')')
}
