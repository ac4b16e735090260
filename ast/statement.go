package ast

import (
	"strings"

	"github.com/freeeve/sqlparse/token"
)

// ShowKind enumerates the SHOW statement variants.
type ShowKind int

const (
	ShowTables ShowKind = iota
	ShowDatabases
	ShowSchemas
	ShowColumns
	ShowVariables
	ShowStatus
	ShowCollation
	ShowCreateTable
	ShowCreateView
	ShowFunctions
	ShowVariable // SHOW <name> (PostgreSQL-style single variable)
)

// ShowStmt represents the SHOW family of statements.
type ShowStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Kind     ShowKind
	Full     bool
	Extended bool
	Global   bool
	Session  bool
	Name     *ObjectName // object for SHOW CREATE / SHOW COLUMNS / variable name
	From     *ObjectName
	Like     *Literal
	Where    Expr
}

func (*ShowStmt) statementNode()   {}
func (s *ShowStmt) Pos() token.Pos { return s.StartPos }
func (s *ShowStmt) End() token.Pos { return s.EndPos }

func (s *ShowStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("SHOW ")
	if s.Global {
		b.WriteString("GLOBAL ")
	}
	if s.Session {
		b.WriteString("SESSION ")
	}
	if s.Extended {
		b.WriteString("EXTENDED ")
	}
	if s.Full {
		b.WriteString("FULL ")
	}
	switch s.Kind {
	case ShowDatabases:
		b.WriteString("DATABASES")
	case ShowSchemas:
		b.WriteString("SCHEMAS")
	case ShowColumns:
		b.WriteString("COLUMNS")
	case ShowVariables:
		b.WriteString("VARIABLES")
	case ShowStatus:
		b.WriteString("STATUS")
	case ShowCollation:
		b.WriteString("COLLATION")
	case ShowCreateTable:
		b.WriteString("CREATE TABLE ")
		s.Name.WriteSQL(b)
	case ShowCreateView:
		b.WriteString("CREATE VIEW ")
		s.Name.WriteSQL(b)
	case ShowFunctions:
		b.WriteString("FUNCTIONS")
	case ShowVariable:
		s.Name.WriteSQL(b)
	default:
		b.WriteString("TABLES")
	}
	if s.From != nil {
		b.WriteString(" FROM ")
		s.From.WriteSQL(b)
	}
	if s.Like != nil {
		b.WriteString(" LIKE ")
		s.Like.WriteSQL(b)
	}
	if s.Where != nil {
		b.WriteString(" WHERE ")
		s.Where.WriteSQL(b)
	}
}

// UseStmt represents USE [DATABASE|SCHEMA|ROLE] name.
type UseStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Keyword  string // "", "DATABASE", "SCHEMA", "ROLE"
	Name     *ObjectName
}

func (*UseStmt) statementNode()   {}
func (u *UseStmt) Pos() token.Pos { return u.StartPos }
func (u *UseStmt) End() token.Pos { return u.EndPos }

func (u *UseStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("USE ")
	if u.Keyword != "" {
		b.WriteString(u.Keyword)
		b.WriteByte(' ')
	}
	u.Name.WriteSQL(b)
}

// PragmaStmt represents the SQLite PRAGMA statement: PRAGMA name,
// PRAGMA name = value, or PRAGMA name(value).
type PragmaStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     *ObjectName
	Value    Expr
	Eq       bool
}

func (*PragmaStmt) statementNode()   {}
func (p *PragmaStmt) Pos() token.Pos { return p.StartPos }
func (p *PragmaStmt) End() token.Pos { return p.EndPos }

func (p *PragmaStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("PRAGMA ")
	p.Name.WriteSQL(b)
	if p.Value == nil {
		return
	}
	if p.Eq {
		b.WriteString(" = ")
		p.Value.WriteSQL(b)
	} else {
		b.WriteByte('(')
		p.Value.WriteSQL(b)
		b.WriteByte(')')
	}
}

// DeclareKind discriminates the dialect-specific DECLARE shapes, which
// are deliberately not unified.
type DeclareKind int

const (
	DeclareMsSql     DeclareKind = iota // DECLARE @a INT = 1, @b TEXT
	DeclareSnowflake                    // DECLARE a INT DEFAULT 1
	DeclareBigQuery                     // DECLARE a, b INT64 DEFAULT 1
	DeclareCursor                       // DECLARE c CURSOR FOR query
)

// Declare is one declaration inside a DECLARE statement.
type Declare struct {
	Names   []*Ident
	Param   string // MS SQL @name form, kept verbatim
	Type    *DataType
	Default Expr
	Query   *Query // DeclareCursor
}

// DeclareStmt represents DECLARE in its per-dialect shapes.
type DeclareStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Kind     DeclareKind
	Decls    []*Declare
}

func (*DeclareStmt) statementNode()   {}
func (d *DeclareStmt) Pos() token.Pos { return d.StartPos }
func (d *DeclareStmt) End() token.Pos { return d.EndPos }

func (d *DeclareStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("DECLARE ")
	for i, dec := range d.Decls {
		if i > 0 {
			b.WriteString(", ")
		}
		switch d.Kind {
		case DeclareMsSql:
			b.WriteString(dec.Param)
			b.WriteByte(' ')
			dec.Type.WriteSQL(b)
			if dec.Default != nil {
				b.WriteString(" = ")
				dec.Default.WriteSQL(b)
			}
		case DeclareCursor:
			writeIdentList(b, dec.Names)
			b.WriteString(" CURSOR FOR ")
			dec.Query.WriteSQL(b)
		default:
			writeIdentList(b, dec.Names)
			if dec.Type != nil {
				b.WriteByte(' ')
				dec.Type.WriteSQL(b)
			}
			if dec.Default != nil {
				b.WriteString(" DEFAULT ")
				dec.Default.WriteSQL(b)
			}
		}
	}
}

// FlushKind enumerates FLUSH statement variants.
type FlushKind int

const (
	FlushTables FlushKind = iota
	FlushLogs
	FlushPrivileges
	FlushStatus
)

// FlushStmt represents the MySQL FLUSH statement.
type FlushStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Kind     FlushKind
	Tables   []*ObjectName
	ReadLock bool
}

func (*FlushStmt) statementNode()   {}
func (f *FlushStmt) Pos() token.Pos { return f.StartPos }
func (f *FlushStmt) End() token.Pos { return f.EndPos }

func (f *FlushStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("FLUSH ")
	switch f.Kind {
	case FlushLogs:
		b.WriteString("LOGS")
	case FlushPrivileges:
		b.WriteString("PRIVILEGES")
	case FlushStatus:
		b.WriteString("STATUS")
	default:
		b.WriteString("TABLES")
		for i, t := range f.Tables {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(' ')
			t.WriteSQL(b)
		}
		if f.ReadLock {
			b.WriteString(" WITH READ LOCK")
		}
	}
}

// KillKind is the KILL statement modifier.
type KillKind int

const (
	KillNone KillKind = iota
	KillConnection
	KillQuery
)

// KillStmt represents KILL [CONNECTION|QUERY] id.
type KillStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Kind     KillKind
	ID       Expr
}

func (*KillStmt) statementNode()   {}
func (k *KillStmt) Pos() token.Pos { return k.StartPos }
func (k *KillStmt) End() token.Pos { return k.EndPos }

func (k *KillStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("KILL ")
	switch k.Kind {
	case KillConnection:
		b.WriteString("CONNECTION ")
	case KillQuery:
		b.WriteString("QUERY ")
	}
	k.ID.WriteSQL(b)
}

// TransactionModifier is the SQLite BEGIN modifier.
type TransactionModifier int

const (
	ModifierNone TransactionModifier = iota
	ModifierDeferred
	ModifierImmediate
	ModifierExclusive
)

// BeginStmt represents BEGIN / START TRANSACTION.
type BeginStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	Start       bool // START TRANSACTION rather than BEGIN
	Modifier    TransactionModifier
	Transaction bool // TRANSACTION keyword present
	Work        bool // WORK keyword present
}

func (*BeginStmt) statementNode()   {}
func (s *BeginStmt) Pos() token.Pos { return s.StartPos }
func (s *BeginStmt) End() token.Pos { return s.EndPos }

func (s *BeginStmt) WriteSQL(b *strings.Builder) {
	if s.Start {
		b.WriteString("START TRANSACTION")
		return
	}
	b.WriteString("BEGIN")
	switch s.Modifier {
	case ModifierDeferred:
		b.WriteString(" DEFERRED")
	case ModifierImmediate:
		b.WriteString(" IMMEDIATE")
	case ModifierExclusive:
		b.WriteString(" EXCLUSIVE")
	}
	if s.Transaction {
		b.WriteString(" TRANSACTION")
	}
	if s.Work {
		b.WriteString(" WORK")
	}
}

// CommitStmt represents COMMIT [AND CHAIN].
type CommitStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Chain    bool
}

func (*CommitStmt) statementNode()   {}
func (c *CommitStmt) Pos() token.Pos { return c.StartPos }
func (c *CommitStmt) End() token.Pos { return c.EndPos }

func (c *CommitStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("COMMIT")
	if c.Chain {
		b.WriteString(" AND CHAIN")
	}
}

// RollbackStmt represents ROLLBACK [AND CHAIN] [TO SAVEPOINT name].
type RollbackStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Chain     bool
	Savepoint *Ident
}

func (*RollbackStmt) statementNode()   {}
func (r *RollbackStmt) Pos() token.Pos { return r.StartPos }
func (r *RollbackStmt) End() token.Pos { return r.EndPos }

func (r *RollbackStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("ROLLBACK")
	if r.Chain {
		b.WriteString(" AND CHAIN")
	}
	if r.Savepoint != nil {
		b.WriteString(" TO SAVEPOINT ")
		r.Savepoint.WriteSQL(b)
	}
}

// CopyIntoStmt represents the Snowflake COPY INTO statement.
type CopyIntoStmt struct {
	StartPos       token.Pos
	EndPos         token.Pos
	Into           *ObjectName
	FromStage      *ObjectName // @stage/path reference
	FromQuery      *Query
	Files          []*Literal
	Pattern        *Literal
	FileFormat     []*KeyValue
	CopyOptions    []*KeyValue
	ValidationMode string
}

func (*CopyIntoStmt) statementNode()   {}
func (c *CopyIntoStmt) Pos() token.Pos { return c.StartPos }
func (c *CopyIntoStmt) End() token.Pos { return c.EndPos }

func (c *CopyIntoStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("COPY INTO ")
	c.Into.WriteSQL(b)
	b.WriteString(" FROM ")
	if c.FromQuery != nil {
		b.WriteByte('(')
		c.FromQuery.WriteSQL(b)
		b.WriteByte(')')
	} else {
		c.FromStage.WriteSQL(b)
	}
	if len(c.Files) > 0 {
		b.WriteString(" FILES = (")
		for i, f := range c.Files {
			if i > 0 {
				b.WriteString(", ")
			}
			f.WriteSQL(b)
		}
		b.WriteByte(')')
	}
	if c.Pattern != nil {
		b.WriteString(" PATTERN = ")
		c.Pattern.WriteSQL(b)
	}
	if len(c.FileFormat) > 0 {
		b.WriteString(" FILE_FORMAT = (")
		writeKeyValues(b, c.FileFormat)
		b.WriteByte(')')
	}
	if len(c.CopyOptions) > 0 {
		b.WriteByte(' ')
		writeKeyValues(b, c.CopyOptions)
	}
	if c.ValidationMode != "" {
		b.WriteString(" VALIDATION_MODE = ")
		b.WriteString(c.ValidationMode)
	}
}

// AttachStmt represents ATTACH [DATABASE] path [AS alias] with optional
// DuckDB options.
type AttachStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	Database    bool
	IfNotExists bool
	Path        Expr
	Alias       *Ident
	Options     []*KeyValue
}

func (*AttachStmt) statementNode()   {}
func (a *AttachStmt) Pos() token.Pos { return a.StartPos }
func (a *AttachStmt) End() token.Pos { return a.EndPos }

func (a *AttachStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("ATTACH ")
	if a.Database {
		b.WriteString("DATABASE ")
	}
	if a.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	a.Path.WriteSQL(b)
	if a.Alias != nil {
		b.WriteString(" AS ")
		a.Alias.WriteSQL(b)
	}
	if len(a.Options) > 0 {
		b.WriteString(" (")
		for i, kv := range a.Options {
			if i > 0 {
				b.WriteString(", ")
			}
			kv.Key.WriteSQL(b)
			if kv.Value != nil {
				b.WriteByte(' ')
				kv.Value.WriteSQL(b)
			}
		}
		b.WriteByte(')')
	}
}

// DetachStmt represents DETACH [DATABASE] [IF EXISTS] alias.
type DetachStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Database bool
	IfExists bool
	Alias    *Ident
}

func (*DetachStmt) statementNode()   {}
func (d *DetachStmt) Pos() token.Pos { return d.StartPos }
func (d *DetachStmt) End() token.Pos { return d.EndPos }

func (d *DetachStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("DETACH ")
	if d.Database {
		b.WriteString("DATABASE ")
	}
	if d.IfExists {
		b.WriteString("IF EXISTS ")
	}
	d.Alias.WriteSQL(b)
}

// InstallStmt represents the DuckDB INSTALL statement.
type InstallStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Force     bool
	Extension *Ident
}

func (*InstallStmt) statementNode()   {}
func (i *InstallStmt) Pos() token.Pos { return i.StartPos }
func (i *InstallStmt) End() token.Pos { return i.EndPos }

func (i *InstallStmt) WriteSQL(b *strings.Builder) {
	if i.Force {
		b.WriteString("FORCE ")
	}
	b.WriteString("INSTALL ")
	i.Extension.WriteSQL(b)
}

// LoadStmt represents the DuckDB LOAD statement.
type LoadStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Extension *Ident
}

func (*LoadStmt) statementNode()   {}
func (l *LoadStmt) Pos() token.Pos { return l.StartPos }
func (l *LoadStmt) End() token.Pos { return l.EndPos }

func (l *LoadStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("LOAD ")
	l.Extension.WriteSQL(b)
}

// SetScope is the SESSION/GLOBAL/LOCAL modifier of SET.
type SetScope int

const (
	ScopeNone SetScope = iota
	ScopeSession
	ScopeGlobal
	ScopeLocal
)

// SetStmt represents SET variable assignment and SET NAMES. The
// parenthesized multi-variable form keeps all targets in Variables and
// all values in Values.
type SetStmt struct {
	StartPos      token.Pos
	EndPos        token.Pos
	Scope         SetScope
	Names         bool // SET NAMES charset
	NamesDefault  bool // SET NAMES DEFAULT
	Charset       *Ident
	Collation     *Ident
	Parenthesized bool
	Variables     []*ObjectName
	Values        []Expr
}

func (*SetStmt) statementNode()   {}
func (s *SetStmt) Pos() token.Pos { return s.StartPos }
func (s *SetStmt) End() token.Pos { return s.EndPos }

func (s *SetStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("SET ")
	switch s.Scope {
	case ScopeSession:
		b.WriteString("SESSION ")
	case ScopeGlobal:
		b.WriteString("GLOBAL ")
	case ScopeLocal:
		b.WriteString("LOCAL ")
	}
	if s.Names {
		b.WriteString("NAMES ")
		if s.NamesDefault {
			b.WriteString("DEFAULT")
			return
		}
		s.Charset.WriteSQL(b)
		if s.Collation != nil {
			b.WriteString(" COLLATE ")
			s.Collation.WriteSQL(b)
		}
		return
	}
	if s.Parenthesized {
		b.WriteByte('(')
		for i, v := range s.Variables {
			if i > 0 {
				b.WriteString(", ")
			}
			v.WriteSQL(b)
		}
		b.WriteString(") = (")
		writeExprList(b, s.Values)
		b.WriteByte(')')
		return
	}
	for i, v := range s.Variables {
		if i > 0 {
			b.WriteString(", ")
		}
		v.WriteSQL(b)
		b.WriteString(" = ")
		s.Values[i].WriteSQL(b)
	}
}

// ExplainStmt represents EXPLAIN [ANALYZE] [VERBOSE] [QUERY PLAN].
type ExplainStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Analyze   bool
	Verbose   bool
	QueryPlan bool // SQLite EXPLAIN QUERY PLAN
	Format    string
	Stmt      Statement
}

func (*ExplainStmt) statementNode()   {}
func (e *ExplainStmt) Pos() token.Pos { return e.StartPos }
func (e *ExplainStmt) End() token.Pos { return e.EndPos }

func (e *ExplainStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("EXPLAIN ")
	if e.Analyze {
		b.WriteString("ANALYZE ")
	}
	if e.Verbose {
		b.WriteString("VERBOSE ")
	}
	if e.QueryPlan {
		b.WriteString("QUERY PLAN ")
	}
	if e.Format != "" {
		b.WriteString("FORMAT ")
		b.WriteString(e.Format)
		b.WriteByte(' ')
	}
	e.Stmt.WriteSQL(b)
}

// ExplainTableStmt represents DESCRIBE/DESC/EXPLAIN of a table.
type ExplainTableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Keyword  string // DESCRIBE, DESC, or EXPLAIN as written
	Table    bool   // TABLE keyword present (required by some dialects)
	Name     *ObjectName
}

func (*ExplainTableStmt) statementNode()   {}
func (e *ExplainTableStmt) Pos() token.Pos { return e.StartPos }
func (e *ExplainTableStmt) End() token.Pos { return e.EndPos }

func (e *ExplainTableStmt) WriteSQL(b *strings.Builder) {
	b.WriteString(e.Keyword)
	b.WriteByte(' ')
	if e.Table {
		b.WriteString("TABLE ")
	}
	e.Name.WriteSQL(b)
}

// ElseIf is one ELSEIF arm of an IF statement.
type ElseIf struct {
	Condition Expr
	Body      []Statement
}

// IfStmt represents the MS SQL flavored IF statement, in both the
// THEN ... END IF form and the bare single-statement form.
type IfStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Condition Expr
	ThenForm  bool // IF cond THEN ... END IF
	Then      []Statement
	ElseIfs   []*ElseIf
	Else      []Statement
}

func (*IfStmt) statementNode()   {}
func (s *IfStmt) Pos() token.Pos { return s.StartPos }
func (s *IfStmt) End() token.Pos { return s.EndPos }

func writeStmtList(b *strings.Builder, stmts []Statement) {
	for i, s := range stmts {
		if i > 0 {
			b.WriteString("; ")
		}
		s.WriteSQL(b)
	}
}

func (s *IfStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("IF ")
	s.Condition.WriteSQL(b)
	if s.ThenForm {
		b.WriteString(" THEN ")
		writeStmtList(b, s.Then)
		for _, ei := range s.ElseIfs {
			b.WriteString(" ELSEIF ")
			ei.Condition.WriteSQL(b)
			b.WriteString(" THEN ")
			writeStmtList(b, ei.Body)
		}
		if len(s.Else) > 0 {
			b.WriteString(" ELSE ")
			writeStmtList(b, s.Else)
		}
		b.WriteString(" END IF")
		return
	}
	b.WriteByte(' ')
	writeStmtList(b, s.Then)
	if len(s.Else) > 0 {
		b.WriteString(" ELSE ")
		writeStmtList(b, s.Else)
	}
}

// CallStmt represents CALL procedure(args).
type CallStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Func     *FuncExpr
}

func (*CallStmt) statementNode()   {}
func (c *CallStmt) Pos() token.Pos { return c.StartPos }
func (c *CallStmt) End() token.Pos { return c.EndPos }

func (c *CallStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("CALL ")
	c.Func.WriteSQL(b)
}

// GrantStmt represents GRANT privileges ON object TO grantees.
type GrantStmt struct {
	StartPos      token.Pos
	EndPos        token.Pos
	AllPrivileges bool
	Privileges    []string
	ObjectType    ObjectType
	On            *ObjectName
	To            []*Ident
	WithGrant     bool
}

func (*GrantStmt) statementNode()   {}
func (g *GrantStmt) Pos() token.Pos { return g.StartPos }
func (g *GrantStmt) End() token.Pos { return g.EndPos }

func (g *GrantStmt) WriteSQL(b *strings.Builder) {
	b.WriteString("GRANT ")
	if g.AllPrivileges {
		b.WriteString("ALL PRIVILEGES")
	} else {
		for i, p := range g.Privileges {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p)
		}
	}
	if g.On != nil {
		b.WriteString(" ON ")
		if g.ObjectType != ObjectTable {
			b.WriteString(g.ObjectType.String())
			b.WriteByte(' ')
		}
		g.On.WriteSQL(b)
	}
	b.WriteString(" TO ")
	writeIdentList(b, g.To)
	if g.WithGrant {
		b.WriteString(" WITH GRANT OPTION")
	}
}
