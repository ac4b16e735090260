package ast

import (
	"strings"

	"github.com/freeeve/sqlparse/token"
)

// Assignment represents target = expr in SET lists.
type Assignment struct {
	Target *CompoundIdent
	Expr   Expr
}

func (a *Assignment) WriteSQL(b *strings.Builder) {
	a.Target.WriteSQL(b)
	b.WriteString(" = ")
	a.Expr.WriteSQL(b)
}

// OnConflict represents the PostgreSQL/SQLite ON CONFLICT clause.
type OnConflict struct {
	Columns     []*Ident
	Where       Expr
	DoNothing   bool
	Updates     []*Assignment
	UpdateWhere Expr
}

func (o *OnConflict) WriteSQL(b *strings.Builder) {
	b.WriteString("ON CONFLICT")
	if len(o.Columns) > 0 {
		b.WriteString(" (")
		writeIdentList(b, o.Columns)
		b.WriteByte(')')
	}
	if o.Where != nil {
		b.WriteString(" WHERE ")
		o.Where.WriteSQL(b)
	}
	if o.DoNothing {
		b.WriteString(" DO NOTHING")
		return
	}
	b.WriteString(" DO UPDATE SET ")
	for i, u := range o.Updates {
		if i > 0 {
			b.WriteString(", ")
		}
		u.WriteSQL(b)
	}
	if o.UpdateWhere != nil {
		b.WriteString(" WHERE ")
		o.UpdateWhere.WriteSQL(b)
	}
}

// InsertStmt represents INSERT and REPLACE statements. Source is nil for
// the MySQL INSERT ... VALUES (), () degenerate form only when no source
// rows were given at all; VALUES and SELECT sources both arrive as a
// Query body.
type InsertStmt struct {
	StartPos          token.Pos
	EndPos            token.Pos
	Replace           bool // REPLACE INTO (MySQL)
	Ignore            bool // INSERT IGNORE (MySQL)
	Into              bool // INTO keyword present
	Overwrite         bool // INSERT OVERWRITE (Hive)
	Table             *ObjectName
	Columns           []*Ident
	Source            *Query
	OnDuplicateUpdate []*Assignment
	OnConflict        *OnConflict
	Returning         []SelectExpr
}

func (*InsertStmt) statementNode()   {}
func (i *InsertStmt) Pos() token.Pos { return i.StartPos }
func (i *InsertStmt) End() token.Pos { return i.EndPos }

func (i *InsertStmt) WriteSQL(b *strings.Builder) {
	if i.Replace {
		b.WriteString("REPLACE ")
	} else {
		b.WriteString("INSERT ")
	}
	if i.Ignore {
		b.WriteString("IGNORE ")
	}
	if i.Overwrite {
		b.WriteString("OVERWRITE ")
	}
	if i.Into {
		b.WriteString("INTO ")
	}
	i.Table.WriteSQL(b)
	if len(i.Columns) > 0 {
		b.WriteString(" (")
		writeIdentList(b, i.Columns)
		b.WriteByte(')')
	}
	if i.Source != nil {
		b.WriteByte(' ')
		i.Source.WriteSQL(b)
	}
	if len(i.OnDuplicateUpdate) > 0 {
		b.WriteString(" ON DUPLICATE KEY UPDATE ")
		for n, u := range i.OnDuplicateUpdate {
			if n > 0 {
				b.WriteString(", ")
			}
			u.WriteSQL(b)
		}
	}
	if i.OnConflict != nil {
		b.WriteByte(' ')
		i.OnConflict.WriteSQL(b)
	}
	writeReturning(b, i.Returning)
}

func writeReturning(b *strings.Builder, items []SelectExpr) {
	if len(items) == 0 {
		return
	}
	b.WriteString(" RETURNING ")
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		it.WriteSQL(b)
	}
}

// UpdateStmt represents an UPDATE statement.
type UpdateStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	Table       TableExpr
	Assignments []*Assignment
	From        []TableExpr
	Where       Expr
	OrderBy     []*OrderByExpr
	Limit       Expr
	Returning   []SelectExpr
}

func (*UpdateStmt) statementNode()   {}
func (u *UpdateStmt) Pos() token.Pos { return u.StartPos }
func (u *UpdateStmt) End() token.Pos { return u.EndPos }

func (u *UpdateStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("UPDATE ")
	u.Table.WriteSQL(b)
	b.WriteString(" SET ")
	for i, a := range u.Assignments {
		if i > 0 {
			b.WriteString(", ")
		}
		a.WriteSQL(b)
	}
	if len(u.From) > 0 {
		b.WriteString(" FROM ")
		for i, t := range u.From {
			if i > 0 {
				b.WriteString(", ")
			}
			t.WriteSQL(b)
		}
	}
	if u.Where != nil {
		b.WriteString(" WHERE ")
		u.Where.WriteSQL(b)
	}
	if len(u.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		writeOrderByList(b, u.OrderBy)
	}
	if u.Limit != nil {
		b.WriteString(" LIMIT ")
		u.Limit.WriteSQL(b)
	}
	writeReturning(b, u.Returning)
}

// DeleteStmt represents a DELETE statement, including the MySQL
// multi-table and PostgreSQL USING forms.
type DeleteStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Tables    []*ObjectName // DELETE t1, t2 FROM ... (MySQL)
	From      []TableExpr
	Using     []TableExpr
	Where     Expr
	OrderBy   []*OrderByExpr
	Limit     Expr
	Returning []SelectExpr
}

func (*DeleteStmt) statementNode()   {}
func (d *DeleteStmt) Pos() token.Pos { return d.StartPos }
func (d *DeleteStmt) End() token.Pos { return d.EndPos }

func (d *DeleteStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("DELETE ")
	for i, t := range d.Tables {
		if i > 0 {
			b.WriteString(", ")
		}
		t.WriteSQL(b)
	}
	if len(d.Tables) > 0 {
		b.WriteByte(' ')
	}
	b.WriteString("FROM ")
	for i, t := range d.From {
		if i > 0 {
			b.WriteString(", ")
		}
		t.WriteSQL(b)
	}
	if len(d.Using) > 0 {
		b.WriteString(" USING ")
		for i, t := range d.Using {
			if i > 0 {
				b.WriteString(", ")
			}
			t.WriteSQL(b)
		}
	}
	if d.Where != nil {
		b.WriteString(" WHERE ")
		d.Where.WriteSQL(b)
	}
	if len(d.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		writeOrderByList(b, d.OrderBy)
	}
	if d.Limit != nil {
		b.WriteString(" LIMIT ")
		d.Limit.WriteSQL(b)
	}
	writeReturning(b, d.Returning)
}

// MergeActionKind is what a matched/not-matched merge clause does.
type MergeActionKind int

const (
	MergeUpdate MergeActionKind = iota
	MergeDelete
	MergeInsert
)

// MergeClause is one WHEN [NOT] MATCHED [AND pred] THEN action clause.
type MergeClause struct {
	NotMatched    bool
	Predicate     Expr
	Action        MergeActionKind
	Assignments   []*Assignment // MergeUpdate
	InsertColumns []*Ident      // MergeInsert
	InsertValues  []Expr        // MergeInsert
}

func (m *MergeClause) WriteSQL(b *strings.Builder) {
	b.WriteString("WHEN ")
	if m.NotMatched {
		b.WriteString("NOT ")
	}
	b.WriteString("MATCHED")
	if m.Predicate != nil {
		b.WriteString(" AND ")
		m.Predicate.WriteSQL(b)
	}
	b.WriteString(" THEN ")
	switch m.Action {
	case MergeDelete:
		b.WriteString("DELETE")
	case MergeInsert:
		b.WriteString("INSERT")
		if len(m.InsertColumns) > 0 {
			b.WriteString(" (")
			writeIdentList(b, m.InsertColumns)
			b.WriteByte(')')
		}
		b.WriteString(" VALUES (")
		writeExprList(b, m.InsertValues)
		b.WriteByte(')')
	default:
		b.WriteString("UPDATE SET ")
		for i, a := range m.Assignments {
			if i > 0 {
				b.WriteString(", ")
			}
			a.WriteSQL(b)
		}
	}
}

// MergeStmt represents MERGE INTO target USING source ON cond WHEN ...
type MergeStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Into     bool
	Table    TableExpr
	Source   TableExpr
	On       Expr
	Clauses  []*MergeClause
}

func (*MergeStmt) statementNode()   {}
func (m *MergeStmt) Pos() token.Pos { return m.StartPos }
func (m *MergeStmt) End() token.Pos { return m.EndPos }

func (m *MergeStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("MERGE ")
	if m.Into {
		b.WriteString("INTO ")
	}
	m.Table.WriteSQL(b)
	b.WriteString(" USING ")
	m.Source.WriteSQL(b)
	b.WriteString(" ON ")
	m.On.WriteSQL(b)
	for _, c := range m.Clauses {
		b.WriteByte(' ')
		c.WriteSQL(b)
	}
}
