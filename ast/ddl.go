package ast

import (
	"strings"

	"github.com/freeeve/sqlparse/token"
)

// KeyValue is a generic name = value option, used by stages, secrets,
// COPY INTO, and role options.
type KeyValue struct {
	Key   *Ident
	Value Expr
}

func (kv *KeyValue) WriteSQL(b *strings.Builder) {
	kv.Key.WriteSQL(b)
	b.WriteString(" = ")
	kv.Value.WriteSQL(b)
}

func writeKeyValues(b *strings.Builder, kvs []*KeyValue) {
	for i, kv := range kvs {
		if i > 0 {
			b.WriteByte(' ')
		}
		kv.WriteSQL(b)
	}
}

// RefAction indicates a foreign key referential action.
type RefAction int

const (
	RefUnspecified RefAction = iota
	RefNoAction
	RefCascade
	RefSetNull
	RefSetDefault
	RefRestrict
)

func (r RefAction) String() string {
	switch r {
	case RefNoAction:
		return "NO ACTION"
	case RefCascade:
		return "CASCADE"
	case RefSetNull:
		return "SET NULL"
	case RefSetDefault:
		return "SET DEFAULT"
	case RefRestrict:
		return "RESTRICT"
	default:
		return ""
	}
}

// ForeignKeyRef represents REFERENCES table (cols) with actions.
type ForeignKeyRef struct {
	Table    *ObjectName
	Columns  []*Ident
	OnDelete RefAction
	OnUpdate RefAction
}

func (f *ForeignKeyRef) WriteSQL(b *strings.Builder) {
	b.WriteString("REFERENCES ")
	f.Table.WriteSQL(b)
	if len(f.Columns) > 0 {
		b.WriteString(" (")
		writeIdentList(b, f.Columns)
		b.WriteByte(')')
	}
	if f.OnDelete != RefUnspecified {
		b.WriteString(" ON DELETE ")
		b.WriteString(f.OnDelete.String())
	}
	if f.OnUpdate != RefUnspecified {
		b.WriteString(" ON UPDATE ")
		b.WriteString(f.OnUpdate.String())
	}
}

// ColumnOptionKind enumerates per-column options.
type ColumnOptionKind int

const (
	ColumnOptionNotNull ColumnOptionKind = iota
	ColumnOptionNull
	ColumnOptionDefault
	ColumnOptionPrimaryKey
	ColumnOptionUnique
	ColumnOptionCheck
	ColumnOptionReferences
	ColumnOptionGenerated
	ColumnOptionCollate
	ColumnOptionCharacterSet
	ColumnOptionComment
	ColumnOptionOnUpdate
	ColumnOptionAutoIncrement
	ColumnOptionDialectSpecific
)

// ColumnOption is one option attached to a column definition. The fields
// in use depend on Kind; Text carries the raw token text of an
// AUTO_INCREMENT/AUTOINCREMENT or other dialect-specific option.
type ColumnOption struct {
	Name            *Ident // optional CONSTRAINT name
	Kind            ColumnOptionKind
	Expr            Expr
	Refs            *ForeignKeyRef
	Object          *ObjectName // collation or charset
	GeneratedStored bool
	Text            string
}

func (o *ColumnOption) WriteSQL(b *strings.Builder) {
	if o.Name != nil {
		b.WriteString("CONSTRAINT ")
		o.Name.WriteSQL(b)
		b.WriteByte(' ')
	}
	switch o.Kind {
	case ColumnOptionNotNull:
		b.WriteString("NOT NULL")
	case ColumnOptionNull:
		b.WriteString("NULL")
	case ColumnOptionDefault:
		b.WriteString("DEFAULT ")
		o.Expr.WriteSQL(b)
	case ColumnOptionPrimaryKey:
		b.WriteString("PRIMARY KEY")
	case ColumnOptionUnique:
		b.WriteString("UNIQUE")
	case ColumnOptionCheck:
		b.WriteString("CHECK (")
		o.Expr.WriteSQL(b)
		b.WriteByte(')')
	case ColumnOptionReferences:
		o.Refs.WriteSQL(b)
	case ColumnOptionGenerated:
		b.WriteString("GENERATED ALWAYS AS (")
		o.Expr.WriteSQL(b)
		b.WriteByte(')')
		if o.GeneratedStored {
			b.WriteString(" STORED")
		}
	case ColumnOptionCollate:
		b.WriteString("COLLATE ")
		o.Object.WriteSQL(b)
	case ColumnOptionCharacterSet:
		b.WriteString("CHARACTER SET ")
		o.Object.WriteSQL(b)
	case ColumnOptionComment:
		b.WriteString("COMMENT ")
		o.Expr.WriteSQL(b)
	case ColumnOptionOnUpdate:
		b.WriteString("ON UPDATE ")
		o.Expr.WriteSQL(b)
	case ColumnOptionAutoIncrement, ColumnOptionDialectSpecific:
		b.WriteString(o.Text)
	}
}

// ColumnDef represents a column definition.
type ColumnDef struct {
	Name    *Ident
	Type    *DataType
	Options []*ColumnOption
}

func (c *ColumnDef) WriteSQL(b *strings.Builder) {
	c.Name.WriteSQL(b)
	b.WriteByte(' ')
	c.Type.WriteSQL(b)
	for _, o := range c.Options {
		b.WriteByte(' ')
		o.WriteSQL(b)
	}
}

// ConstraintKind enumerates table-level constraints.
type ConstraintKind int

const (
	ConstraintPrimaryKey ConstraintKind = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintCheck
)

// TableConstraint represents a table-level constraint.
type TableConstraint struct {
	Name    *Ident
	Kind    ConstraintKind
	Columns []*Ident
	Refs    *ForeignKeyRef
	Expr    Expr
}

func (c *TableConstraint) WriteSQL(b *strings.Builder) {
	if c.Name != nil {
		b.WriteString("CONSTRAINT ")
		c.Name.WriteSQL(b)
		b.WriteByte(' ')
	}
	switch c.Kind {
	case ConstraintUnique:
		b.WriteString("UNIQUE (")
		writeIdentList(b, c.Columns)
		b.WriteByte(')')
	case ConstraintForeignKey:
		b.WriteString("FOREIGN KEY (")
		writeIdentList(b, c.Columns)
		b.WriteString(") ")
		c.Refs.WriteSQL(b)
	case ConstraintCheck:
		b.WriteString("CHECK (")
		c.Expr.WriteSQL(b)
		b.WriteByte(')')
	default:
		b.WriteString("PRIMARY KEY (")
		writeIdentList(b, c.Columns)
		b.WriteByte(')')
	}
}

// TableOption is a trailing CREATE TABLE option: ENGINE = InnoDB,
// COMMENT = '...', TBLPROPERTIES (...), and the rest.
type TableOption struct {
	Name  string
	Eq    bool
	Value Expr
}

func (o *TableOption) WriteSQL(b *strings.Builder) {
	b.WriteString(o.Name)
	if o.Value != nil {
		if o.Eq {
			b.WriteString(" = ")
		} else {
			b.WriteByte(' ')
		}
		o.Value.WriteSQL(b)
	}
}

// CreateTableStmt represents CREATE TABLE in all supported dialect
// shapes, including AS SELECT and the trailing option block.
type CreateTableStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	OrReplace    bool
	Temporary    bool
	Unlogged     bool
	External     bool
	IfNotExists  bool
	Name         *ObjectName
	Columns      []*ColumnDef
	Constraints  []*TableConstraint
	Options      []*TableOption
	PartitionBy  Expr
	ClusterBy    []Expr
	OrderBy      []Expr
	WithoutRowID bool
	Strict       bool
	As           *Query
}

func (*CreateTableStmt) statementNode()   {}
func (c *CreateTableStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateTableStmt) End() token.Pos { return c.EndPos }

func (c *CreateTableStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE ")
	if c.OrReplace {
		b.WriteString("OR REPLACE ")
	}
	if c.Temporary {
		b.WriteString("TEMPORARY ")
	}
	if c.Unlogged {
		b.WriteString("UNLOGGED ")
	}
	if c.External {
		b.WriteString("EXTERNAL ")
	}
	b.WriteString("TABLE ")
	if c.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	c.Name.WriteSQL(b)
	if len(c.Columns) > 0 || len(c.Constraints) > 0 {
		b.WriteString(" (")
		for i, col := range c.Columns {
			if i > 0 {
				b.WriteString(", ")
			}
			col.WriteSQL(b)
		}
		for i, con := range c.Constraints {
			if i > 0 || len(c.Columns) > 0 {
				b.WriteString(", ")
			}
			con.WriteSQL(b)
		}
		b.WriteByte(')')
	}
	for _, o := range c.Options {
		b.WriteByte(' ')
		o.WriteSQL(b)
	}
	if c.PartitionBy != nil {
		b.WriteString(" PARTITION BY ")
		c.PartitionBy.WriteSQL(b)
	}
	if len(c.ClusterBy) > 0 {
		b.WriteString(" CLUSTER BY ")
		writeExprList(b, c.ClusterBy)
	}
	if len(c.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		writeExprList(b, c.OrderBy)
	}
	if c.WithoutRowID {
		b.WriteString(" WITHOUT ROWID")
	}
	if c.Strict {
		b.WriteString(" STRICT")
	}
	if c.As != nil {
		b.WriteString(" AS ")
		c.As.WriteSQL(b)
	}
}

// CreateViewStmt represents CREATE [MATERIALIZED] VIEW.
type CreateViewStmt struct {
	StartPos     token.Pos
	EndPos       token.Pos
	OrReplace    bool
	Materialized bool
	Temporary    bool
	IfNotExists  bool
	Name         *ObjectName
	Columns      []*Ident
	Query        *Query
}

func (*CreateViewStmt) statementNode()   {}
func (c *CreateViewStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateViewStmt) End() token.Pos { return c.EndPos }

func (c *CreateViewStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE ")
	if c.OrReplace {
		b.WriteString("OR REPLACE ")
	}
	if c.Materialized {
		b.WriteString("MATERIALIZED ")
	}
	if c.Temporary {
		b.WriteString("TEMPORARY ")
	}
	b.WriteString("VIEW ")
	if c.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	c.Name.WriteSQL(b)
	if len(c.Columns) > 0 {
		b.WriteString(" (")
		writeIdentList(b, c.Columns)
		b.WriteByte(')')
	}
	b.WriteString(" AS ")
	c.Query.WriteSQL(b)
}

// IndexColumn represents a column or expression in an index definition.
type IndexColumn struct {
	Expr       Expr
	Desc       bool
	NullsFirst *bool
}

func (c *IndexColumn) WriteSQL(b *strings.Builder) {
	c.Expr.WriteSQL(b)
	if c.Desc {
		b.WriteString(" DESC")
	}
	if c.NullsFirst != nil {
		if *c.NullsFirst {
			b.WriteString(" NULLS FIRST")
		} else {
			b.WriteString(" NULLS LAST")
		}
	}
}

// CreateIndexStmt represents CREATE INDEX.
type CreateIndexStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	Unique      bool
	IfNotExists bool
	Name        *ObjectName
	Table       *ObjectName
	Using       *Ident
	Columns     []*IndexColumn
	Where       Expr
}

func (*CreateIndexStmt) statementNode()   {}
func (c *CreateIndexStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateIndexStmt) End() token.Pos { return c.EndPos }

func (c *CreateIndexStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE ")
	if c.Unique {
		b.WriteString("UNIQUE ")
	}
	b.WriteString("INDEX ")
	if c.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	if c.Name != nil {
		c.Name.WriteSQL(b)
		b.WriteByte(' ')
	}
	b.WriteString("ON ")
	c.Table.WriteSQL(b)
	if c.Using != nil {
		b.WriteString(" USING ")
		c.Using.WriteSQL(b)
	}
	b.WriteString(" (")
	for i, col := range c.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		col.WriteSQL(b)
	}
	b.WriteByte(')')
	if c.Where != nil {
		b.WriteString(" WHERE ")
		c.Where.WriteSQL(b)
	}
}

// CreateStageStmt represents the Snowflake CREATE STAGE statement.
type CreateStageStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	OrReplace   bool
	Temporary   bool
	IfNotExists bool
	Name        *ObjectName
	URL         *Literal
	Options     []*KeyValue
	Comment     *Literal
}

func (*CreateStageStmt) statementNode()   {}
func (c *CreateStageStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateStageStmt) End() token.Pos { return c.EndPos }

func (c *CreateStageStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE ")
	if c.OrReplace {
		b.WriteString("OR REPLACE ")
	}
	if c.Temporary {
		b.WriteString("TEMPORARY ")
	}
	b.WriteString("STAGE ")
	if c.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	c.Name.WriteSQL(b)
	if c.URL != nil {
		b.WriteString(" URL = ")
		c.URL.WriteSQL(b)
	}
	if len(c.Options) > 0 {
		b.WriteByte(' ')
		writeKeyValues(b, c.Options)
	}
	if c.Comment != nil {
		b.WriteString(" COMMENT = ")
		c.Comment.WriteSQL(b)
	}
}

// CreateRoleStmt represents CREATE ROLE.
type CreateRoleStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	IfNotExists bool
	Names       []*Ident
	Options     []*KeyValue
}

func (*CreateRoleStmt) statementNode()   {}
func (c *CreateRoleStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateRoleStmt) End() token.Pos { return c.EndPos }

func (c *CreateRoleStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE ROLE ")
	if c.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	writeIdentList(b, c.Names)
	if len(c.Options) > 0 {
		b.WriteString(" WITH")
		for _, kv := range c.Options {
			b.WriteByte(' ')
			kv.Key.WriteSQL(b)
			if kv.Value != nil {
				b.WriteByte(' ')
				kv.Value.WriteSQL(b)
			}
		}
	}
}

// AlterRoleStmt represents ALTER ROLE name RENAME TO / SET options.
type AlterRoleStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     *Ident
	RenameTo *Ident
	Set      []*KeyValue
}

func (*AlterRoleStmt) statementNode()   {}
func (a *AlterRoleStmt) Pos() token.Pos { return a.StartPos }
func (a *AlterRoleStmt) End() token.Pos { return a.EndPos }

func (a *AlterRoleStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("ALTER ROLE ")
	a.Name.WriteSQL(b)
	if a.RenameTo != nil {
		b.WriteString(" RENAME TO ")
		a.RenameTo.WriteSQL(b)
		return
	}
	if len(a.Set) > 0 {
		b.WriteString(" SET ")
		writeKeyValues(b, a.Set)
	}
}

// FunctionArg is one declared argument of a function, macro, or
// procedure.
type FunctionArg struct {
	Name    *Ident
	Type    *DataType
	Default Expr
}

func (a *FunctionArg) WriteSQL(b *strings.Builder) {
	if a.Name != nil {
		a.Name.WriteSQL(b)
		if a.Type != nil {
			b.WriteByte(' ')
		}
	}
	if a.Type != nil {
		a.Type.WriteSQL(b)
	}
	if a.Default != nil {
		b.WriteString(" := ")
		a.Default.WriteSQL(b)
	}
}

func writeFunctionArgs(b *strings.Builder, args []*FunctionArg) {
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.WriteSQL(b)
	}
	b.WriteByte(')')
}

// CreateFunctionStmt represents CREATE FUNCTION.
type CreateFunctionStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	OrReplace bool
	Temporary bool
	Name      *ObjectName
	Args      []*FunctionArg
	Returns   *DataType
	Language  *Ident
	As        Expr // body: a string literal or an expression
	Return    Expr
}

func (*CreateFunctionStmt) statementNode()   {}
func (c *CreateFunctionStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateFunctionStmt) End() token.Pos { return c.EndPos }

func (c *CreateFunctionStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE ")
	if c.OrReplace {
		b.WriteString("OR REPLACE ")
	}
	if c.Temporary {
		b.WriteString("TEMPORARY ")
	}
	b.WriteString("FUNCTION ")
	c.Name.WriteSQL(b)
	writeFunctionArgs(b, c.Args)
	if c.Returns != nil {
		b.WriteString(" RETURNS ")
		c.Returns.WriteSQL(b)
	}
	if c.Language != nil {
		b.WriteString(" LANGUAGE ")
		c.Language.WriteSQL(b)
	}
	if c.As != nil {
		b.WriteString(" AS ")
		c.As.WriteSQL(b)
	}
	if c.Return != nil {
		b.WriteString(" RETURN ")
		c.Return.WriteSQL(b)
	}
}

// CreateMacroStmt represents the DuckDB CREATE MACRO statement.
type CreateMacroStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	OrReplace bool
	Temporary bool
	Table     bool
	Name      *ObjectName
	Args      []*FunctionArg
	Expr      Expr   // scalar macro body
	Query     *Query // table macro body
}

func (*CreateMacroStmt) statementNode()   {}
func (c *CreateMacroStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateMacroStmt) End() token.Pos { return c.EndPos }

func (c *CreateMacroStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE ")
	if c.OrReplace {
		b.WriteString("OR REPLACE ")
	}
	if c.Temporary {
		b.WriteString("TEMPORARY ")
	}
	b.WriteString("MACRO ")
	c.Name.WriteSQL(b)
	writeFunctionArgs(b, c.Args)
	b.WriteString(" AS ")
	if c.Table {
		b.WriteString("TABLE ")
		c.Query.WriteSQL(b)
		return
	}
	c.Expr.WriteSQL(b)
}

// CreateSecretStmt represents the DuckDB CREATE SECRET statement.
type CreateSecretStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	OrReplace   bool
	Temporary   bool
	Persistent  bool
	IfNotExists bool
	Name        *Ident
	Options     []*KeyValue
}

func (*CreateSecretStmt) statementNode()   {}
func (c *CreateSecretStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateSecretStmt) End() token.Pos { return c.EndPos }

func (c *CreateSecretStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE ")
	if c.OrReplace {
		b.WriteString("OR REPLACE ")
	}
	if c.Temporary {
		b.WriteString("TEMPORARY ")
	}
	if c.Persistent {
		b.WriteString("PERSISTENT ")
	}
	b.WriteString("SECRET ")
	if c.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	if c.Name != nil {
		c.Name.WriteSQL(b)
		b.WriteByte(' ')
	}
	b.WriteByte('(')
	for i, kv := range c.Options {
		if i > 0 {
			b.WriteString(", ")
		}
		kv.Key.WriteSQL(b)
		b.WriteByte(' ')
		kv.Value.WriteSQL(b)
	}
	b.WriteByte(')')
}

// DropSecretStmt represents DROP [PERSISTENT|TEMPORARY] SECRET.
type DropSecretStmt struct {
	StartPos   token.Pos
	EndPos     token.Pos
	IfExists   bool
	Persistent bool
	Temporary  bool
	Name       *Ident
}

func (*DropSecretStmt) statementNode()   {}
func (d *DropSecretStmt) Pos() token.Pos { return d.StartPos }
func (d *DropSecretStmt) End() token.Pos { return d.EndPos }

func (d *DropSecretStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("DROP ")
	if d.Persistent {
		b.WriteString("PERSISTENT ")
	}
	if d.Temporary {
		b.WriteString("TEMPORARY ")
	}
	b.WriteString("SECRET ")
	if d.IfExists {
		b.WriteString("IF EXISTS ")
	}
	d.Name.WriteSQL(b)
}

// CreateVirtualTableStmt represents the SQLite CREATE VIRTUAL TABLE
// statement.
type CreateVirtualTableStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	IfNotExists bool
	Name        *ObjectName
	Module      *Ident
	Args        []Expr
}

func (*CreateVirtualTableStmt) statementNode()   {}
func (c *CreateVirtualTableStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateVirtualTableStmt) End() token.Pos { return c.EndPos }

func (c *CreateVirtualTableStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE VIRTUAL TABLE ")
	if c.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	c.Name.WriteSQL(b)
	b.WriteString(" USING ")
	c.Module.WriteSQL(b)
	if len(c.Args) > 0 {
		b.WriteString(" (")
		writeExprList(b, c.Args)
		b.WriteByte(')')
	}
}

// CreateProcedureStmt represents CREATE PROCEDURE with a BEGIN...END
// body.
type CreateProcedureStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	OrReplace bool
	Name      *ObjectName
	Args      []*FunctionArg
	Body      []Statement
}

func (*CreateProcedureStmt) statementNode()   {}
func (c *CreateProcedureStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateProcedureStmt) End() token.Pos { return c.EndPos }

func (c *CreateProcedureStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CREATE ")
	if c.OrReplace {
		b.WriteString("OR REPLACE ")
	}
	b.WriteString("PROCEDURE ")
	c.Name.WriteSQL(b)
	if len(c.Args) > 0 {
		writeFunctionArgs(b, c.Args)
	}
	b.WriteString(" AS BEGIN ")
	for i, s := range c.Body {
		if i > 0 {
			b.WriteString("; ")
		}
		s.WriteSQL(b)
	}
	b.WriteString(" END")
}

// AlterTableAction is the interface for ALTER TABLE actions.
type AlterTableAction interface {
	alterTableAction()
	WriteSQL(b *strings.Builder)
}

// AddColumn represents ADD [COLUMN] [IF NOT EXISTS].
type AddColumn struct {
	IfNotExists bool
	Column      *ColumnDef
}

func (*AddColumn) alterTableAction() {}

func (a *AddColumn) WriteSQL(b *strings.Builder) {
	b.WriteString("ADD COLUMN ")
	if a.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	a.Column.WriteSQL(b)
}

// DropColumn represents DROP [COLUMN].
type DropColumn struct {
	IfExists bool
	Name     *Ident
	Cascade  bool
}

func (*DropColumn) alterTableAction() {}

func (d *DropColumn) WriteSQL(b *strings.Builder) {
	b.WriteString("DROP COLUMN ")
	if d.IfExists {
		b.WriteString("IF EXISTS ")
	}
	d.Name.WriteSQL(b)
	if d.Cascade {
		b.WriteString(" CASCADE")
	}
}

// ModifyColumn represents MODIFY/ALTER COLUMN in its dialect variants.
type ModifyColumn struct {
	Name        *Ident
	NewDef      *ColumnDef
	SetType     *DataType
	SetDefault  Expr
	DropDefault bool
	SetNotNull  bool
	DropNotNull bool
}

func (*ModifyColumn) alterTableAction() {}

func (m *ModifyColumn) WriteSQL(b *strings.Builder) {
	if m.NewDef != nil {
		b.WriteString("MODIFY COLUMN ")
		m.NewDef.WriteSQL(b)
		return
	}
	b.WriteString("ALTER COLUMN ")
	m.Name.WriteSQL(b)
	switch {
	case m.SetType != nil:
		b.WriteString(" SET DATA TYPE ")
		m.SetType.WriteSQL(b)
	case m.SetDefault != nil:
		b.WriteString(" SET DEFAULT ")
		m.SetDefault.WriteSQL(b)
	case m.DropDefault:
		b.WriteString(" DROP DEFAULT")
	case m.SetNotNull:
		b.WriteString(" SET NOT NULL")
	case m.DropNotNull:
		b.WriteString(" DROP NOT NULL")
	}
}

// RenameColumn represents RENAME COLUMN old TO new.
type RenameColumn struct {
	Old *Ident
	New *Ident
}

func (*RenameColumn) alterTableAction() {}

func (r *RenameColumn) WriteSQL(b *strings.Builder) {
	b.WriteString("RENAME COLUMN ")
	r.Old.WriteSQL(b)
	b.WriteString(" TO ")
	r.New.WriteSQL(b)
}

// RenameTable represents RENAME TO.
type RenameTable struct {
	NewName *ObjectName
}

func (*RenameTable) alterTableAction() {}

func (r *RenameTable) WriteSQL(b *strings.Builder) {
	b.WriteString("RENAME TO ")
	r.NewName.WriteSQL(b)
}

// AddConstraint represents ADD CONSTRAINT.
type AddConstraint struct {
	Constraint *TableConstraint
}

func (*AddConstraint) alterTableAction() {}

func (a *AddConstraint) WriteSQL(b *strings.Builder) {
	b.WriteString("ADD ")
	a.Constraint.WriteSQL(b)
}

// DropConstraint represents DROP CONSTRAINT.
type DropConstraint struct {
	IfExists bool
	Name     *Ident
	Cascade  bool
}

func (*DropConstraint) alterTableAction() {}

func (d *DropConstraint) WriteSQL(b *strings.Builder) {
	b.WriteString("DROP CONSTRAINT ")
	if d.IfExists {
		b.WriteString("IF EXISTS ")
	}
	d.Name.WriteSQL(b)
	if d.Cascade {
		b.WriteString(" CASCADE")
	}
}

// AlterTableStmt represents ALTER TABLE with one or more actions.
type AlterTableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	IfExists bool
	Only     bool
	Name     *ObjectName
	Actions  []AlterTableAction
}

func (*AlterTableStmt) statementNode()   {}
func (a *AlterTableStmt) Pos() token.Pos { return a.StartPos }
func (a *AlterTableStmt) End() token.Pos { return a.EndPos }

func (a *AlterTableStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("ALTER TABLE ")
	if a.IfExists {
		b.WriteString("IF EXISTS ")
	}
	if a.Only {
		b.WriteString("ONLY ")
	}
	a.Name.WriteSQL(b)
	b.WriteByte(' ')
	for i, act := range a.Actions {
		if i > 0 {
			b.WriteString(", ")
		}
		act.WriteSQL(b)
	}
}

// ObjectType names the object class of a DROP or COMMENT statement.
type ObjectType int

const (
	ObjectTable ObjectType = iota
	ObjectView
	ObjectIndex
	ObjectSchema
	ObjectDatabase
	ObjectFunction
	ObjectProcedure
	ObjectMacro
	ObjectRole
	ObjectSequence
	ObjectStage
	ObjectExtension
	ObjectColumn
)

func (o ObjectType) String() string {
	switch o {
	case ObjectView:
		return "VIEW"
	case ObjectIndex:
		return "INDEX"
	case ObjectSchema:
		return "SCHEMA"
	case ObjectDatabase:
		return "DATABASE"
	case ObjectFunction:
		return "FUNCTION"
	case ObjectProcedure:
		return "PROCEDURE"
	case ObjectMacro:
		return "MACRO"
	case ObjectRole:
		return "ROLE"
	case ObjectSequence:
		return "SEQUENCE"
	case ObjectStage:
		return "STAGE"
	case ObjectExtension:
		return "EXTENSION"
	case ObjectColumn:
		return "COLUMN"
	default:
		return "TABLE"
	}
}

// DropStmt represents DROP <object type> for every droppable object.
type DropStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Type      ObjectType
	IfExists  bool
	Temporary bool
	Names     []*ObjectName
	Cascade   bool
	Restrict  bool
}

func (*DropStmt) statementNode()   {}
func (d *DropStmt) Pos() token.Pos { return d.StartPos }
func (d *DropStmt) End() token.Pos { return d.EndPos }

func (d *DropStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("DROP ")
	if d.Temporary {
		b.WriteString("TEMPORARY ")
	}
	b.WriteString(d.Type.String())
	b.WriteByte(' ')
	if d.IfExists {
		b.WriteString("IF EXISTS ")
	}
	for i, n := range d.Names {
		if i > 0 {
			b.WriteString(", ")
		}
		n.WriteSQL(b)
	}
	if d.Cascade {
		b.WriteString(" CASCADE")
	}
	if d.Restrict {
		b.WriteString(" RESTRICT")
	}
}

// TruncateStmt represents TRUNCATE [TABLE].
type TruncateStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    bool
	Names    []*ObjectName
	Cascade  bool
}

func (*TruncateStmt) statementNode()   {}
func (t *TruncateStmt) Pos() token.Pos { return t.StartPos }
func (t *TruncateStmt) End() token.Pos { return t.EndPos }

func (t *TruncateStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("TRUNCATE ")
	if t.Table {
		b.WriteString("TABLE ")
	}
	for i, n := range t.Names {
		if i > 0 {
			b.WriteString(", ")
		}
		n.WriteSQL(b)
	}
	if t.Cascade {
		b.WriteString(" CASCADE")
	}
}

// CommentStmt represents COMMENT ON <object> IS 'text'. A nil Comment
// renders as IS NULL.
type CommentStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Type     ObjectType
	Name     *ObjectName
	Comment  *Literal
	IfExists bool
}

func (*CommentStmt) statementNode()   {}
func (c *CommentStmt) Pos() token.Pos { return c.StartPos }
func (c *CommentStmt) End() token.Pos { return c.EndPos }

func (c *CommentStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("COMMENT ")
	if c.IfExists {
		b.WriteString("IF EXISTS ")
	}
	b.WriteString("ON ")
	b.WriteString(c.Type.String())
	b.WriteByte(' ')
	c.Name.WriteSQL(b)
	b.WriteString(" IS ")
	if c.Comment == nil {
		b.WriteString("NULL")
	} else {
		c.Comment.WriteSQL(b)
	}
}
