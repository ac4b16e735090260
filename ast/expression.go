package ast

import (
	"strings"

	"github.com/freeeve/sqlparse/token"
)

// binaryPrec mirrors the parser's base precedence ladder closely enough
// for the serializer to decide where parentheses are required.
func binaryPrec(op token.Token) int {
	switch op {
	case token.OR:
		return 5
	case token.AND:
		return 10
	case token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE,
		token.SPACESHIP:
		return 20
	case token.BITOR:
		return 21
	case token.BITXOR:
		return 22
	case token.BITAND:
		return 23
	case token.XOR:
		return 24
	case token.PLUS, token.MINUS, token.CONCAT:
		return 30
	case token.ASTERISK, token.SLASH, token.PERCENT:
		return 40
	case token.LSHIFT, token.RSHIFT:
		return 25
	default:
		// JSON, match, and custom operators group loosely.
		return 16
	}
}

// BinaryExpr represents a binary operation. OpText carries the source
// text of a CUSTOMOP operator.
type BinaryExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Left     Expr
	Op       token.Token
	OpText   string
	Right    Expr
}

func (*BinaryExpr) exprNode()        {}
func (e *BinaryExpr) Pos() token.Pos { return e.StartPos }
func (e *BinaryExpr) End() token.Pos { return e.EndPos }

func (e *BinaryExpr) WriteSQL(b *strings.Builder) {
	prec := binaryPrec(e.Op)
	writeOperand(b, e.Left, prec, false)
	b.WriteByte(' ')
	if e.Op == token.CUSTOMOP {
		b.WriteString(e.OpText)
	} else {
		b.WriteString(e.Op.String())
	}
	b.WriteByte(' ')
	writeOperand(b, e.Right, prec, true)
}

// writeOperand writes a child of a binary expression, inserting the
// parentheses the precedence relationship requires.
func writeOperand(b *strings.Builder, e Expr, parentPrec int, right bool) {
	if child, ok := e.(*BinaryExpr); ok {
		cp := binaryPrec(child.Op)
		if cp < parentPrec || (right && cp == parentPrec) {
			b.WriteByte('(')
			e.WriteSQL(b)
			b.WriteByte(')')
			return
		}
	}
	e.WriteSQL(b)
}

// UnaryExpr represents a prefix operation: NOT, -, +, ~, !.
type UnaryExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Op       token.Token
	Expr     Expr
}

func (*UnaryExpr) exprNode()        {}
func (e *UnaryExpr) Pos() token.Pos { return e.StartPos }
func (e *UnaryExpr) End() token.Pos { return e.EndPos }

func (e *UnaryExpr) WriteSQL(b *strings.Builder) {
	b.WriteString(e.Op.String())
	if e.Op.IsKeyword() {
		b.WriteByte(' ')
	}
	if _, ok := e.Expr.(*BinaryExpr); ok {
		b.WriteByte('(')
		e.Expr.WriteSQL(b)
		b.WriteByte(')')
		return
	}
	e.Expr.WriteSQL(b)
}

// ParenExpr represents an explicitly parenthesized expression.
type ParenExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
}

func (*ParenExpr) exprNode()        {}
func (e *ParenExpr) Pos() token.Pos { return e.StartPos }
func (e *ParenExpr) End() token.Pos { return e.EndPos }

func (e *ParenExpr) WriteSQL(b *strings.Builder) {
	b.WriteByte('(')
	e.Expr.WriteSQL(b)
	b.WriteByte(')')
}

// TupleExpr represents a parenthesized expression list (a, b, c).
type TupleExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Exprs    []Expr
}

func (*TupleExpr) exprNode()        {}
func (e *TupleExpr) Pos() token.Pos { return e.StartPos }
func (e *TupleExpr) End() token.Pos { return e.EndPos }

func (e *TupleExpr) WriteSQL(b *strings.Builder) {
	b.WriteByte('(')
	writeExprList(b, e.Exprs)
	b.WriteByte(')')
}

// CastKind distinguishes the cast syntaxes.
type CastKind int

const (
	CastStandard    CastKind = iota // CAST(e AS t)
	CastTry                         // TRY_CAST(e AS t)
	CastSafe                        // SAFE_CAST(e AS t)
	CastDoubleColon                 // e::t
)

// CastExpr represents a cast in any of its syntaxes.
type CastExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Kind     CastKind
	Expr     Expr
	Type     *DataType
}

func (*CastExpr) exprNode()        {}
func (e *CastExpr) Pos() token.Pos { return e.StartPos }
func (e *CastExpr) End() token.Pos { return e.EndPos }

func (e *CastExpr) WriteSQL(b *strings.Builder) {
	switch e.Kind {
	case CastDoubleColon:
		if _, ok := e.Expr.(*BinaryExpr); ok {
			b.WriteByte('(')
			e.Expr.WriteSQL(b)
			b.WriteByte(')')
		} else {
			e.Expr.WriteSQL(b)
		}
		b.WriteString("::")
		e.Type.WriteSQL(b)
	case CastTry:
		b.WriteString("TRY_CAST(")
		e.Expr.WriteSQL(b)
		b.WriteString(" AS ")
		e.Type.WriteSQL(b)
		b.WriteByte(')')
	case CastSafe:
		b.WriteString("SAFE_CAST(")
		e.Expr.WriteSQL(b)
		b.WriteString(" AS ")
		e.Type.WriteSQL(b)
		b.WriteByte(')')
	default:
		b.WriteString("CAST(")
		e.Expr.WriteSQL(b)
		b.WriteString(" AS ")
		e.Type.WriteSQL(b)
		b.WriteByte(')')
	}
}

// ConvertExpr represents CONVERT in its dialect orderings:
// CONVERT(expr, type), CONVERT(type, expr), CONVERT(expr USING charset).
type ConvertExpr struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Expr      Expr
	Type      *DataType
	TypeFirst bool
	Charset   *ObjectName
}

func (*ConvertExpr) exprNode()        {}
func (e *ConvertExpr) Pos() token.Pos { return e.StartPos }
func (e *ConvertExpr) End() token.Pos { return e.EndPos }

func (e *ConvertExpr) WriteSQL(b *strings.Builder) {
	b.WriteString("CONVERT(")
	switch {
	case e.Charset != nil:
		e.Expr.WriteSQL(b)
		b.WriteString(" USING ")
		e.Charset.WriteSQL(b)
	case e.TypeFirst:
		e.Type.WriteSQL(b)
		b.WriteString(", ")
		e.Expr.WriteSQL(b)
	default:
		e.Expr.WriteSQL(b)
		b.WriteString(", ")
		e.Type.WriteSQL(b)
	}
	b.WriteByte(')')
}

// ExtractExpr represents EXTRACT(field FROM e) and the comma form.
type ExtractExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Field    string
	Comma    bool
	Expr     Expr
}

func (*ExtractExpr) exprNode()        {}
func (e *ExtractExpr) Pos() token.Pos { return e.StartPos }
func (e *ExtractExpr) End() token.Pos { return e.EndPos }

func (e *ExtractExpr) WriteSQL(b *strings.Builder) {
	b.WriteString("EXTRACT(")
	b.WriteString(e.Field)
	if e.Comma {
		b.WriteString(", ")
	} else {
		b.WriteString(" FROM ")
	}
	e.Expr.WriteSQL(b)
	b.WriteByte(')')
}

// SubstringExpr represents SUBSTRING in FROM/FOR or comma syntax.
type SubstringExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	From     Expr
	For      Expr
	FromFor  bool // SUBSTRING(x FROM a FOR b) rather than SUBSTRING(x, a, b)
}

func (*SubstringExpr) exprNode()        {}
func (e *SubstringExpr) Pos() token.Pos { return e.StartPos }
func (e *SubstringExpr) End() token.Pos { return e.EndPos }

func (e *SubstringExpr) WriteSQL(b *strings.Builder) {
	b.WriteString("SUBSTRING(")
	e.Expr.WriteSQL(b)
	if e.FromFor {
		if e.From != nil {
			b.WriteString(" FROM ")
			e.From.WriteSQL(b)
		}
		if e.For != nil {
			b.WriteString(" FOR ")
			e.For.WriteSQL(b)
		}
	} else {
		if e.From != nil {
			b.WriteString(", ")
			e.From.WriteSQL(b)
		}
		if e.For != nil {
			b.WriteString(", ")
			e.For.WriteSQL(b)
		}
	}
	b.WriteByte(')')
}

// TrimType indicates the trim direction.
type TrimType int

const (
	TrimNone TrimType = iota
	TrimBoth
	TrimLeading
	TrimTrailing
)

// TrimExpr represents TRIM([where] [chars FROM] expr).
type TrimExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Where    TrimType
	Chars    Expr
	Expr     Expr
}

func (*TrimExpr) exprNode()        {}
func (e *TrimExpr) Pos() token.Pos { return e.StartPos }
func (e *TrimExpr) End() token.Pos { return e.EndPos }

func (e *TrimExpr) WriteSQL(b *strings.Builder) {
	b.WriteString("TRIM(")
	switch e.Where {
	case TrimBoth:
		b.WriteString("BOTH ")
	case TrimLeading:
		b.WriteString("LEADING ")
	case TrimTrailing:
		b.WriteString("TRAILING ")
	}
	if e.Chars != nil {
		e.Chars.WriteSQL(b)
		b.WriteString(" FROM ")
	}
	e.Expr.WriteSQL(b)
	b.WriteByte(')')
}

// PositionExpr represents POSITION(needle IN haystack).
type PositionExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Needle   Expr
	Haystack Expr
}

func (*PositionExpr) exprNode()        {}
func (e *PositionExpr) Pos() token.Pos { return e.StartPos }
func (e *PositionExpr) End() token.Pos { return e.EndPos }

func (e *PositionExpr) WriteSQL(b *strings.Builder) {
	b.WriteString("POSITION(")
	e.Needle.WriteSQL(b)
	b.WriteString(" IN ")
	e.Haystack.WriteSQL(b)
	b.WriteByte(')')
}

// OverlayExpr represents OVERLAY(e PLACING o FROM f [FOR l]).
type OverlayExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Placing  Expr
	From     Expr
	For      Expr
}

func (*OverlayExpr) exprNode()        {}
func (e *OverlayExpr) Pos() token.Pos { return e.StartPos }
func (e *OverlayExpr) End() token.Pos { return e.EndPos }

func (e *OverlayExpr) WriteSQL(b *strings.Builder) {
	b.WriteString("OVERLAY(")
	e.Expr.WriteSQL(b)
	b.WriteString(" PLACING ")
	e.Placing.WriteSQL(b)
	b.WriteString(" FROM ")
	e.From.WriteSQL(b)
	if e.For != nil {
		b.WriteString(" FOR ")
		e.For.WriteSQL(b)
	}
	b.WriteByte(')')
}

// AtTimeZoneExpr represents e AT TIME ZONE tz.
type AtTimeZoneExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	TimeZone Expr
}

func (*AtTimeZoneExpr) exprNode()        {}
func (e *AtTimeZoneExpr) Pos() token.Pos { return e.StartPos }
func (e *AtTimeZoneExpr) End() token.Pos { return e.EndPos }

func (e *AtTimeZoneExpr) WriteSQL(b *strings.Builder) {
	e.Expr.WriteSQL(b)
	b.WriteString(" AT TIME ZONE ")
	e.TimeZone.WriteSQL(b)
}

// CollateExpr represents expr COLLATE collation.
type CollateExpr struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Expr      Expr
	Collation *ObjectName
}

func (*CollateExpr) exprNode()        {}
func (e *CollateExpr) Pos() token.Pos { return e.StartPos }
func (e *CollateExpr) End() token.Pos { return e.EndPos }

func (e *CollateExpr) WriteSQL(b *strings.Builder) {
	e.Expr.WriteSQL(b)
	b.WriteString(" COLLATE ")
	e.Collation.WriteSQL(b)
}

// LikeKind distinguishes the pattern-match syntaxes.
type LikeKind int

const (
	LikeLike LikeKind = iota
	LikeILike
	LikeSimilarTo
	LikeGlob
	LikeRegexp
	LikeRLike
)

func (k LikeKind) String() string {
	switch k {
	case LikeILike:
		return "ILIKE"
	case LikeSimilarTo:
		return "SIMILAR TO"
	case LikeGlob:
		return "GLOB"
	case LikeRegexp:
		return "REGEXP"
	case LikeRLike:
		return "RLIKE"
	default:
		return "LIKE"
	}
}

// LikeExpr represents [NOT] LIKE/ILIKE/SIMILAR TO/GLOB/REGEXP/RLIKE.
type LikeExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Kind     LikeKind
	Not      bool
	Expr     Expr
	Pattern  Expr
	Escape   Expr
}

func (*LikeExpr) exprNode()        {}
func (e *LikeExpr) Pos() token.Pos { return e.StartPos }
func (e *LikeExpr) End() token.Pos { return e.EndPos }

func (e *LikeExpr) WriteSQL(b *strings.Builder) {
	e.Expr.WriteSQL(b)
	if e.Not {
		b.WriteString(" NOT")
	}
	b.WriteByte(' ')
	b.WriteString(e.Kind.String())
	b.WriteByte(' ')
	e.Pattern.WriteSQL(b)
	if e.Escape != nil {
		b.WriteString(" ESCAPE ")
		e.Escape.WriteSQL(b)
	}
}

// BetweenExpr represents [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Not      bool
	Low      Expr
	High     Expr
}

func (*BetweenExpr) exprNode()        {}
func (e *BetweenExpr) Pos() token.Pos { return e.StartPos }
func (e *BetweenExpr) End() token.Pos { return e.EndPos }

func (e *BetweenExpr) WriteSQL(b *strings.Builder) {
	e.Expr.WriteSQL(b)
	if e.Not {
		b.WriteString(" NOT")
	}
	b.WriteString(" BETWEEN ")
	writeOperand(b, e.Low, 20, false)
	b.WriteString(" AND ")
	writeOperand(b, e.High, 20, false)
}

// InExpr represents [NOT] IN with a value list, a subquery, or UNNEST.
// A nil Query and nil Unnest means the list form, which may be empty
// where the dialect allows it.
type InExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Not      bool
	List     []Expr
	Query    *Query
	Unnest   Expr
}

func (*InExpr) exprNode()        {}
func (e *InExpr) Pos() token.Pos { return e.StartPos }
func (e *InExpr) End() token.Pos { return e.EndPos }

func (e *InExpr) WriteSQL(b *strings.Builder) {
	e.Expr.WriteSQL(b)
	if e.Not {
		b.WriteString(" NOT")
	}
	b.WriteString(" IN ")
	switch {
	case e.Query != nil:
		b.WriteByte('(')
		e.Query.WriteSQL(b)
		b.WriteByte(')')
	case e.Unnest != nil:
		b.WriteString("UNNEST(")
		e.Unnest.WriteSQL(b)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		writeExprList(b, e.List)
		b.WriteByte(')')
	}
}

// IsWhat indicates what an IS expression tests for.
type IsWhat int

const (
	IsNull IsWhat = iota
	IsTrue
	IsFalse
	IsUnknown
	IsDistinctFrom
)

// IsExpr represents IS [NOT] NULL/TRUE/FALSE/UNKNOWN/DISTINCT FROM.
type IsExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Not      bool
	What     IsWhat
	Right    Expr // IS [NOT] DISTINCT FROM right
}

func (*IsExpr) exprNode()        {}
func (e *IsExpr) Pos() token.Pos { return e.StartPos }
func (e *IsExpr) End() token.Pos { return e.EndPos }

func (e *IsExpr) WriteSQL(b *strings.Builder) {
	e.Expr.WriteSQL(b)
	b.WriteString(" IS ")
	if e.Not {
		b.WriteString("NOT ")
	}
	switch e.What {
	case IsTrue:
		b.WriteString("TRUE")
	case IsFalse:
		b.WriteString("FALSE")
	case IsUnknown:
		b.WriteString("UNKNOWN")
	case IsDistinctFrom:
		b.WriteString("DISTINCT FROM ")
		e.Right.WriteSQL(b)
	default:
		b.WriteString("NULL")
	}
}

// ExistsExpr represents [NOT] EXISTS (subquery).
type ExistsExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Not      bool
	Query    *Query
}

func (*ExistsExpr) exprNode()        {}
func (e *ExistsExpr) Pos() token.Pos { return e.StartPos }
func (e *ExistsExpr) End() token.Pos { return e.EndPos }

func (e *ExistsExpr) WriteSQL(b *strings.Builder) {
	if e.Not {
		b.WriteString("NOT ")
	}
	b.WriteString("EXISTS (")
	e.Query.WriteSQL(b)
	b.WriteByte(')')
}

// SubqueryExpr represents a scalar subquery.
type SubqueryExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Query    *Query
}

func (*SubqueryExpr) exprNode()        {}
func (e *SubqueryExpr) Pos() token.Pos { return e.StartPos }
func (e *SubqueryExpr) End() token.Pos { return e.EndPos }

func (e *SubqueryExpr) WriteSQL(b *strings.Builder) {
	b.WriteByte('(')
	e.Query.WriteSQL(b)
	b.WriteByte(')')
}

// When represents a WHEN clause in a CASE expression.
type When struct {
	Cond   Expr
	Result Expr
}

// CaseExpr represents CASE expressions.
type CaseExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Operand  Expr
	Whens    []*When
	Else     Expr
}

func (*CaseExpr) exprNode()        {}
func (e *CaseExpr) Pos() token.Pos { return e.StartPos }
func (e *CaseExpr) End() token.Pos { return e.EndPos }

func (e *CaseExpr) WriteSQL(b *strings.Builder) {
	b.WriteString("CASE")
	if e.Operand != nil {
		b.WriteByte(' ')
		e.Operand.WriteSQL(b)
	}
	for _, w := range e.Whens {
		b.WriteString(" WHEN ")
		w.Cond.WriteSQL(b)
		b.WriteString(" THEN ")
		w.Result.WriteSQL(b)
	}
	if e.Else != nil {
		b.WriteString(" ELSE ")
		e.Else.WriteSQL(b)
	}
	b.WriteString(" END")
}

// NullTreatment is the RESPECT/IGNORE NULLS modifier on window functions.
type NullTreatment int

const (
	NullTreatmentNone NullTreatment = iota
	NullTreatmentRespect
	NullTreatmentIgnore
)

// FuncArgExpr represents a named function argument: name => expr,
// name = expr, or name := expr depending on dialect.
type FuncArgExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     *Ident
	Op       token.Token
	Value    Expr
}

func (*FuncArgExpr) exprNode()        {}
func (e *FuncArgExpr) Pos() token.Pos { return e.StartPos }
func (e *FuncArgExpr) End() token.Pos { return e.EndPos }

func (e *FuncArgExpr) WriteSQL(b *strings.Builder) {
	e.Name.WriteSQL(b)
	b.WriteByte(' ')
	b.WriteString(e.Op.String())
	b.WriteByte(' ')
	e.Value.WriteSQL(b)
}

// FuncExpr represents a function call with its optional aggregate and
// window clauses.
type FuncExpr struct {
	StartPos      token.Pos
	EndPos        token.Pos
	Name          *ObjectName
	Distinct      bool
	Args          []Expr
	OrderBy       []*OrderByExpr // aggregate ORDER BY inside the parens
	NullTreatment NullTreatment
	WithinGroup   []*OrderByExpr
	Filter        Expr
	Over          *WindowSpec
}

func (*FuncExpr) exprNode()        {}
func (e *FuncExpr) Pos() token.Pos { return e.StartPos }
func (e *FuncExpr) End() token.Pos { return e.EndPos }

func (e *FuncExpr) WriteSQL(b *strings.Builder) {
	e.Name.WriteSQL(b)
	b.WriteByte('(')
	if e.Distinct {
		b.WriteString("DISTINCT ")
	}
	writeExprList(b, e.Args)
	if len(e.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		writeOrderByList(b, e.OrderBy)
	}
	switch e.NullTreatment {
	case NullTreatmentRespect:
		b.WriteString(" RESPECT NULLS")
	case NullTreatmentIgnore:
		b.WriteString(" IGNORE NULLS")
	}
	b.WriteByte(')')
	if len(e.WithinGroup) > 0 {
		b.WriteString(" WITHIN GROUP (ORDER BY ")
		writeOrderByList(b, e.WithinGroup)
		b.WriteByte(')')
	}
	if e.Filter != nil {
		b.WriteString(" FILTER (WHERE ")
		e.Filter.WriteSQL(b)
		b.WriteByte(')')
	}
	if e.Over != nil {
		b.WriteString(" OVER ")
		e.Over.WriteSQL(b)
	}
}

// StarReplaceItem is one entry of a wildcard REPLACE list.
type StarReplaceItem struct {
	Expr  Expr
	Alias *Ident
}

// StarRenameItem is one entry of a wildcard RENAME list.
type StarRenameItem struct {
	From *Ident
	To   *Ident
}

// StarExpr represents * or qualifier.* with its optional post-modifiers.
// The modifier order is fixed: EXCLUDE, EXCEPT, REPLACE, RENAME.
type StarExpr struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Qualifier *ObjectName
	Exclude   []*Ident
	Except    []*Ident
	Replace   []*StarReplaceItem
	Rename    []*StarRenameItem
}

func (*StarExpr) exprNode()        {}
func (*StarExpr) selectExprNode() {}
func (e *StarExpr) Pos() token.Pos { return e.StartPos }
func (e *StarExpr) End() token.Pos { return e.EndPos }

func (e *StarExpr) WriteSQL(b *strings.Builder) {
	if e.Qualifier != nil {
		e.Qualifier.WriteSQL(b)
		b.WriteByte('.')
	}
	b.WriteByte('*')
	if len(e.Exclude) > 0 {
		b.WriteString(" EXCLUDE (")
		writeIdentList(b, e.Exclude)
		b.WriteByte(')')
	}
	if len(e.Except) > 0 {
		b.WriteString(" EXCEPT (")
		writeIdentList(b, e.Except)
		b.WriteByte(')')
	}
	if len(e.Replace) > 0 {
		b.WriteString(" REPLACE (")
		for i, r := range e.Replace {
			if i > 0 {
				b.WriteString(", ")
			}
			r.Expr.WriteSQL(b)
			b.WriteString(" AS ")
			r.Alias.WriteSQL(b)
		}
		b.WriteByte(')')
	}
	if len(e.Rename) > 0 {
		b.WriteString(" RENAME (")
		for i, r := range e.Rename {
			if i > 0 {
				b.WriteString(", ")
			}
			r.From.WriteSQL(b)
			b.WriteString(" AS ")
			r.To.WriteSQL(b)
		}
		b.WriteByte(')')
	}
}

// SubscriptExpr represents e[index].
type SubscriptExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Index    Expr
}

func (*SubscriptExpr) exprNode()        {}
func (e *SubscriptExpr) Pos() token.Pos { return e.StartPos }
func (e *SubscriptExpr) End() token.Pos { return e.EndPos }

func (e *SubscriptExpr) WriteSQL(b *strings.Builder) {
	e.Expr.WriteSQL(b)
	b.WriteByte('[')
	e.Index.WriteSQL(b)
	b.WriteByte(']')
}

// JsonPathElem is one step of a JSON access path: a dot member (Key,
// possibly quoted) or a bracketed index expression.
type JsonPathElem struct {
	Key    string
	Quoted bool
	Index  Expr
}

// JsonAccessExpr represents Snowflake-style value:path access
// (a:foo[0].bar) and keeps the whole path in order.
type JsonAccessExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    Expr
	Path     []*JsonPathElem
}

func (*JsonAccessExpr) exprNode()        {}
func (e *JsonAccessExpr) Pos() token.Pos { return e.StartPos }
func (e *JsonAccessExpr) End() token.Pos { return e.EndPos }

func (e *JsonAccessExpr) WriteSQL(b *strings.Builder) {
	e.Value.WriteSQL(b)
	for i, p := range e.Path {
		switch {
		case p.Index != nil:
			b.WriteByte('[')
			p.Index.WriteSQL(b)
			b.WriteByte(']')
		case i == 0:
			b.WriteByte(':')
			writeJsonKey(b, p)
		default:
			b.WriteByte('.')
			writeJsonKey(b, p)
		}
	}
}

func writeJsonKey(b *strings.Builder, p *JsonPathElem) {
	if p.Quoted {
		writeQuoted(b, p.Key, '"', '"', false)
	} else {
		b.WriteString(p.Key)
	}
}

// ArrayExpr represents an array constructor, [1, 2] or ARRAY[1, 2].
type ArrayExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Keyword  bool
	Elems    []Expr
}

func (*ArrayExpr) exprNode()        {}
func (e *ArrayExpr) Pos() token.Pos { return e.StartPos }
func (e *ArrayExpr) End() token.Pos { return e.EndPos }

func (e *ArrayExpr) WriteSQL(b *strings.Builder) {
	if e.Keyword {
		b.WriteString("ARRAY")
	}
	b.WriteByte('[')
	writeExprList(b, e.Elems)
	b.WriteByte(']')
}

// StructExpr represents STRUCT(expr [AS name], ...).
type StructExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Fields   []Expr
}

func (*StructExpr) exprNode()        {}
func (e *StructExpr) Pos() token.Pos { return e.StartPos }
func (e *StructExpr) End() token.Pos { return e.EndPos }

func (e *StructExpr) WriteSQL(b *strings.Builder) {
	b.WriteString("STRUCT(")
	writeExprList(b, e.Fields)
	b.WriteByte(')')
}

// NamedExpr represents expr AS name inside struct constructors.
type NamedExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Name     *Ident
}

func (*NamedExpr) exprNode()        {}
func (e *NamedExpr) Pos() token.Pos { return e.StartPos }
func (e *NamedExpr) End() token.Pos { return e.EndPos }

func (e *NamedExpr) WriteSQL(b *strings.Builder) {
	e.Expr.WriteSQL(b)
	b.WriteString(" AS ")
	e.Name.WriteSQL(b)
}

// DictionaryField is one key-value pair of a dictionary literal.
type DictionaryField struct {
	Key   *Literal
	Value Expr
}

// DictionaryExpr represents a DuckDB dictionary literal {'k': v, ...}.
type DictionaryExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Fields   []*DictionaryField
}

func (*DictionaryExpr) exprNode()        {}
func (e *DictionaryExpr) Pos() token.Pos { return e.StartPos }
func (e *DictionaryExpr) End() token.Pos { return e.EndPos }

func (e *DictionaryExpr) WriteSQL(b *strings.Builder) {
	b.WriteByte('{')
	for i, f := range e.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		f.Key.WriteSQL(b)
		b.WriteString(": ")
		f.Value.WriteSQL(b)
	}
	b.WriteByte('}')
}

// LambdaExpr represents x -> body or (x, y) -> body.
type LambdaExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Params   []*Ident
	Body     Expr
}

func (*LambdaExpr) exprNode()        {}
func (e *LambdaExpr) Pos() token.Pos { return e.StartPos }
func (e *LambdaExpr) End() token.Pos { return e.EndPos }

func (e *LambdaExpr) WriteSQL(b *strings.Builder) {
	if len(e.Params) == 1 {
		e.Params[0].WriteSQL(b)
	} else {
		b.WriteByte('(')
		writeIdentList(b, e.Params)
		b.WriteByte(')')
	}
	b.WriteString(" -> ")
	e.Body.WriteSQL(b)
}

// IntervalExpr represents INTERVAL literals with optional qualifiers:
// INTERVAL '1' YEAR, INTERVAL '1-2' YEAR TO MONTH, INTERVAL '1.5' SECOND(3).
type IntervalExpr struct {
	StartPos            token.Pos
	EndPos              token.Pos
	Value               Expr
	Leading             string
	LeadingPrecision    *int
	Last                string
	FractionalPrecision *int
}

func (*IntervalExpr) exprNode()        {}
func (e *IntervalExpr) Pos() token.Pos { return e.StartPos }
func (e *IntervalExpr) End() token.Pos { return e.EndPos }

func (e *IntervalExpr) WriteSQL(b *strings.Builder) {
	b.WriteString("INTERVAL ")
	e.Value.WriteSQL(b)
	if e.Leading != "" {
		b.WriteByte(' ')
		b.WriteString(e.Leading)
		if e.LeadingPrecision != nil {
			writeIntParen(b, *e.LeadingPrecision)
		}
	}
	if e.Last != "" {
		b.WriteString(" TO ")
		b.WriteString(e.Last)
		if e.FractionalPrecision != nil {
			writeIntParen(b, *e.FractionalPrecision)
		}
	}
}

// TypedStringExpr represents a typed literal like DATE '2024-01-02'.
type TypedStringExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Type     *DataType
	Value    *Literal
}

func (*TypedStringExpr) exprNode()        {}
func (e *TypedStringExpr) Pos() token.Pos { return e.StartPos }
func (e *TypedStringExpr) End() token.Pos { return e.EndPos }

func (e *TypedStringExpr) WriteSQL(b *strings.Builder) {
	e.Type.WriteSQL(b)
	b.WriteByte(' ')
	e.Value.WriteSQL(b)
}

// IntroducedString represents a MySQL charset-introduced literal,
// _utf8mb4'abc'.
type IntroducedString struct {
	StartPos token.Pos
	EndPos   token.Pos
	Charset  string
	Value    *Literal
}

func (*IntroducedString) exprNode()        {}
func (e *IntroducedString) Pos() token.Pos { return e.StartPos }
func (e *IntroducedString) End() token.Pos { return e.EndPos }

func (e *IntroducedString) WriteSQL(b *strings.Builder) {
	b.WriteString(e.Charset)
	b.WriteByte(' ')
	e.Value.WriteSQL(b)
}

// OuterJoinExpr represents the Oracle (+) outer join marker.
type OuterJoinExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
}

func (*OuterJoinExpr) exprNode()        {}
func (e *OuterJoinExpr) Pos() token.Pos { return e.StartPos }
func (e *OuterJoinExpr) End() token.Pos { return e.EndPos }

func (e *OuterJoinExpr) WriteSQL(b *strings.Builder) {
	e.Expr.WriteSQL(b)
	b.WriteString(" (+)")
}
