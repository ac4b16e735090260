package parser

import (
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/dialect"
	"github.com/freeeve/sqlparse/token"
)

func parseOne(t *testing.T, d *dialect.Dialect, sql string) ast.Statement {
	t.Helper()
	stmt, err := New(sql, d).Parse()
	require.NoError(t, err, sql)
	require.NotNil(t, stmt, sql)
	return stmt
}

func mustSQL(t *testing.T, d *dialect.Dialect, sql string) string {
	t.Helper()
	return ast.SQL(parseOne(t, d, sql))
}

func TestSelectOne(t *testing.T) {
	stmt := parseOne(t, dialect.Generic(), "SELECT 1")
	q, ok := stmt.(*ast.Query)
	require.True(t, ok, repr.String(stmt))
	sel, ok := q.Body.(*ast.SelectStmt)
	require.True(t, ok)
	require.Len(t, sel.Projection, 1)
	item, ok := sel.Projection[0].(*ast.AliasedExpr)
	require.True(t, ok)
	require.Nil(t, item.Alias)
	lit, ok := item.Expr.(*ast.Literal)
	require.True(t, ok, repr.String(item.Expr))
	assert.Equal(t, ast.LiteralNumber, lit.Type)
	assert.Equal(t, "1", lit.Value)
	assert.Nil(t, sel.From)
	assert.Equal(t, "SELECT 1", ast.SQL(stmt))
}

func TestWherePrecedenceShape(t *testing.T) {
	stmt := parseOne(t, dialect.Generic(), "SELECT a, b FROM t WHERE a = 1 AND b < 2")
	sel := stmt.(*ast.Query).Body.(*ast.SelectStmt)
	and, ok := sel.Where.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.AND, and.Op)
	left := and.Left.(*ast.BinaryExpr)
	right := and.Right.(*ast.BinaryExpr)
	assert.Equal(t, token.EQ, left.Op)
	assert.Equal(t, token.LT, right.Op)
	assert.Equal(t, "SELECT a, b FROM t WHERE a = 1 AND b < 2", ast.SQL(stmt))
}

func TestOperatorPrecedenceGrouping(t *testing.T) {
	tests := []struct {
		input string
		top   token.Token
	}{
		{"SELECT x OR y AND z", token.OR},
		{"SELECT a + b * c", token.PLUS},
		{"SELECT a = b + c", token.EQ},
		{"SELECT a | b ^ c", token.BITOR},
		{"SELECT a AND b XOR c", token.AND},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt := parseOne(t, dialect.Generic(), tt.input)
			sel := stmt.(*ast.Query).Body.(*ast.SelectStmt)
			e := sel.Projection[0].(*ast.AliasedExpr).Expr
			bin, ok := e.(*ast.BinaryExpr)
			require.True(t, ok, repr.String(e))
			assert.Equal(t, tt.top, bin.Op)
			// The lower-precedence operator is at the top, so the
			// tighter one must have grouped on the right.
			_, rightIsBin := bin.Right.(*ast.BinaryExpr)
			assert.True(t, rightIsBin)
		})
	}
}

func TestPostgresPrecedence(t *testing.T) {
	// Under PostgreSQL, + binds tighter than BETWEEN: a + b BETWEEN c
	// AND d groups as (a + b) BETWEEN c AND d.
	stmt := parseOne(t, dialect.PostgreSql(), "SELECT a + b BETWEEN c AND d")
	sel := stmt.(*ast.Query).Body.(*ast.SelectStmt)
	between, ok := sel.Projection[0].(*ast.AliasedExpr).Expr.(*ast.BetweenExpr)
	require.True(t, ok)
	plus, ok := between.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, plus.Op)
}

func TestBigQueryTripleStrings(t *testing.T) {
	stmt := parseOne(t, dialect.BigQuery(),
		`SELECT 'single', "double", '''triple-single'''`)
	sel := stmt.(*ast.Query).Body.(*ast.SelectStmt)
	require.Len(t, sel.Projection, 3)
	types := []ast.LiteralType{ast.LiteralString, ast.LiteralDQString, ast.LiteralTSQString}
	values := []string{"single", "double", "triple-single"}
	for i, want := range types {
		lit := sel.Projection[i].(*ast.AliasedExpr).Expr.(*ast.Literal)
		assert.Equal(t, want, lit.Type)
		assert.Equal(t, values[i], lit.Value)
	}
	assert.Equal(t, `SELECT 'single', "double", '''triple-single'''`, ast.SQL(stmt))
}

func TestMySqlEmptyValuesInsert(t *testing.T) {
	a := mustSQL(t, dialect.MySql(), "INSERT INTO tb VALUES (), ()")
	b := mustSQL(t, dialect.MySql(), "INSERT INTO tb () VALUES (), ()")
	assert.Equal(t, a, b)
	assert.Equal(t, "INSERT INTO tb VALUES (), ()", a)
}

func TestSnowflakeJsonAccess(t *testing.T) {
	stmt := parseOne(t, dialect.Snowflake(), "SELECT a:foo[0].bar")
	sel := stmt.(*ast.Query).Body.(*ast.SelectStmt)
	access, ok := sel.Projection[0].(*ast.AliasedExpr).Expr.(*ast.JsonAccessExpr)
	require.True(t, ok, repr.String(sel.Projection[0]))
	id := access.Value.(*ast.Ident)
	assert.Equal(t, "a", id.Value)
	require.Len(t, access.Path, 3)
	assert.Equal(t, "foo", access.Path[0].Key)
	require.NotNil(t, access.Path[1].Index)
	assert.Equal(t, "0", access.Path[1].Index.(*ast.Literal).Value)
	assert.Equal(t, "bar", access.Path[2].Key)
	assert.Equal(t, "SELECT a:foo[0].bar", ast.SQL(stmt))
}

func TestSQLiteAtPlaceholder(t *testing.T) {
	stmt := parseOne(t, dialect.SQLite(), "SELECT @xxx")
	sel := stmt.(*ast.Query).Body.(*ast.SelectStmt)
	lit, ok := sel.Projection[0].(*ast.AliasedExpr).Expr.(*ast.Literal)
	require.True(t, ok, repr.String(sel.Projection[0]))
	assert.Equal(t, ast.LiteralPlaceholder, lit.Type)
	assert.Equal(t, "@xxx", lit.Value)
}

func TestCreateTableRoundTrip(t *testing.T) {
	input := "CREATE TABLE t (a INT PRIMARY KEY, b TEXT NOT NULL)"
	stmt := parseOne(t, dialect.Generic(), input)
	ct := stmt.(*ast.CreateTableStmt)
	require.Len(t, ct.Columns, 2)
	assert.Equal(t, "a", ct.Columns[0].Name.Value)
	require.Len(t, ct.Columns[0].Options, 1)
	assert.Equal(t, ast.ColumnOptionPrimaryKey, ct.Columns[0].Options[0].Kind)
	require.Len(t, ct.Columns[1].Options, 1)
	assert.Equal(t, ast.ColumnOptionNotNull, ct.Columns[1].Options[0].Kind)
	assert.Equal(t, input, ast.SQL(stmt))
}

func TestQuoteStyleSurvives(t *testing.T) {
	tests := []struct {
		d     *dialect.Dialect
		input string
	}{
		{dialect.Generic(), `SELECT "MyCol" FROM "T"`},
		{dialect.MySql(), "SELECT `col` FROM `t`"},
		{dialect.MsSql(), "SELECT [col name] FROM [my table]"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.input, mustSQL(t, tt.d, tt.input))
		})
	}
}

func TestNumberPreservedAsString(t *testing.T) {
	input := "SELECT 1.23456789012345678901234567890"
	assert.Equal(t, input, mustSQL(t, dialect.Generic(), input))
}

func TestEmptyInput(t *testing.T) {
	stmts, err := New("", dialect.Generic()).ParseStatements()
	require.NoError(t, err)
	assert.Empty(t, stmts)

	stmts, err = New(";", dialect.Generic()).ParseStatements()
	require.NoError(t, err)
	assert.Empty(t, stmts)
}

func TestMultipleStatements(t *testing.T) {
	stmts, err := New("SELECT 1; SELECT 2;; SELECT 3", dialect.Generic()).ParseStatements()
	require.NoError(t, err)
	assert.Len(t, stmts, 3)
}

func TestUnbalancedEndStopsParsing(t *testing.T) {
	stmts, err := New("SELECT 1; END", dialect.Generic()).ParseStatements()
	require.NoError(t, err)
	assert.Len(t, stmts, 1)
}

func TestTrailingCommaProjection(t *testing.T) {
	// Rejected without a gate.
	_, err := New("SELECT a, FROM t", dialect.Generic()).Parse()
	require.Error(t, err)

	// Accepted when the dialect allows projection trailing commas.
	stmt := parseOne(t, dialect.BigQuery(), "SELECT a, FROM t")
	assert.Equal(t, "SELECT a FROM t", ast.SQL(stmt))

	// Accepted via the parser option.
	p := NewWithOptions("SELECT a, FROM t", dialect.Generic(),
		Options{TrailingCommas: true, Unescape: true})
	_, err = p.Parse()
	require.NoError(t, err)
}

func TestRecursionOverflow(t *testing.T) {
	input := "SELECT " + strings.Repeat("(", 60) + "1" + strings.Repeat(")", 60)
	_, err := New(input, dialect.Generic()).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RecursionOverflow")
}

func TestParseErrorFormat(t *testing.T) {
	_, err := New("SELECT FROM t", dialect.Generic()).Parse()
	require.Error(t, err)
	assert.Equal(t, "Expected an expression, found FROM, Line: 1, Col: 8", err.Error())

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Pos.Line)
	assert.Equal(t, 8, perr.Pos.Column)
}

func TestDialectHooks(t *testing.T) {
	d := dialect.Custom("hooked")
	d.ParseStatement = func(p dialect.Parser) (ast.Statement, bool, error) {
		if p.Cur().Type != token.IDENT || p.Cur().Value != "PING" {
			return nil, false, nil
		}
		p.Advance()
		return &ast.CommitStmt{}, true, nil
	}
	d.ParsePrefix = func(p dialect.Parser) (ast.Expr, bool, error) {
		if p.Cur().Type == token.IDENT && p.Cur().Value == "answer" {
			p.Advance()
			return &ast.Literal{Type: ast.LiteralNumber, Value: "42"}, true, nil
		}
		return nil, false, nil
	}

	stmt, err := New("PING", d).Parse()
	require.NoError(t, err)
	_, ok := stmt.(*ast.CommitStmt)
	assert.True(t, ok)

	stmt = parseOne(t, d, "SELECT answer")
	assert.Equal(t, "SELECT 42", ast.SQL(stmt))

	// A hook that declines falls through to the default grammar.
	stmt = parseOne(t, d, "SELECT other")
	assert.Equal(t, "SELECT other", ast.SQL(stmt))
}

func TestSaveRestore(t *testing.T) {
	p := New("SELECT a FROM t", dialect.Generic())
	_, err := p.Parse()
	require.NoError(t, err)

	p2 := New("a b c", dialect.Generic())
	require.NoError(t, p2.tokenize())
	save := p2.Save()
	p2.Advance()
	p2.Advance()
	assert.Equal(t, "c", p2.Cur().Value)
	p2.Restore(save)
	assert.Equal(t, "a", p2.Cur().Value)
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		d     *dialect.Dialect
		input string
		want  string
	}{
		{dialect.Generic(), "SELECT NOT a", "SELECT NOT a"},
		{dialect.Generic(), "SELECT -1", "SELECT -1"},
		{dialect.Generic(), "SELECT a IS NULL", "SELECT a IS NULL"},
		{dialect.Generic(), "SELECT a IS NOT TRUE", "SELECT a IS NOT TRUE"},
		{dialect.Generic(), "SELECT a IS DISTINCT FROM b", "SELECT a IS DISTINCT FROM b"},
		{dialect.Generic(), "SELECT a BETWEEN 1 AND 10", "SELECT a BETWEEN 1 AND 10"},
		{dialect.Generic(), "SELECT a NOT BETWEEN 1 AND 10", "SELECT a NOT BETWEEN 1 AND 10"},
		{dialect.Generic(), "SELECT a IN (1, 2, 3)", "SELECT a IN (1, 2, 3)"},
		{dialect.Generic(), "SELECT a NOT IN (SELECT b FROM t)", "SELECT a NOT IN (SELECT b FROM t)"},
		{dialect.SQLite(), "SELECT a IN ()", "SELECT a IN ()"},
		{dialect.BigQuery(), "SELECT a IN UNNEST(arr)", "SELECT a IN UNNEST(arr)"},
		{dialect.Generic(), "SELECT a LIKE 'x%'", "SELECT a LIKE 'x%'"},
		{dialect.Generic(), "SELECT a NOT LIKE 'x%' ESCAPE '!'", "SELECT a NOT LIKE 'x%' ESCAPE '!'"},
		{dialect.PostgreSql(), "SELECT a ILIKE 'x%'", "SELECT a ILIKE 'x%'"},
		{dialect.PostgreSql(), "SELECT a SIMILAR TO 'x%'", "SELECT a SIMILAR TO 'x%'"},
		{dialect.MySql(), "SELECT a RLIKE 'x'", "SELECT a RLIKE 'x'"},
		{dialect.Generic(), "SELECT CASE WHEN a THEN 1 ELSE 2 END", "SELECT CASE WHEN a THEN 1 ELSE 2 END"},
		{dialect.Generic(), "SELECT CASE x WHEN 1 THEN 'a' END", "SELECT CASE x WHEN 1 THEN 'a' END"},
		{dialect.Generic(), "SELECT CAST(a AS INT)", "SELECT CAST(a AS INT)"},
		{dialect.Generic(), "SELECT TRY_CAST(a AS INT)", "SELECT TRY_CAST(a AS INT)"},
		{dialect.BigQuery(), "SELECT SAFE_CAST(a AS INT64)", "SELECT SAFE_CAST(a AS INT64)"},
		{dialect.PostgreSql(), "SELECT a::INT", "SELECT a::INT"},
		{dialect.Generic(), "SELECT EXTRACT(YEAR FROM d)", "SELECT EXTRACT(YEAR FROM d)"},
		{dialect.Generic(), "SELECT SUBSTRING(s FROM 1 FOR 2)", "SELECT SUBSTRING(s FROM 1 FOR 2)"},
		{dialect.Generic(), "SELECT SUBSTRING(s, 1, 2)", "SELECT SUBSTRING(s, 1, 2)"},
		{dialect.Generic(), "SELECT TRIM(BOTH 'x' FROM s)", "SELECT TRIM(BOTH 'x' FROM s)"},
		{dialect.Generic(), "SELECT TRIM(s)", "SELECT TRIM(s)"},
		{dialect.Generic(), "SELECT POSITION('a' IN s)", "SELECT POSITION('a' IN s)"},
		{dialect.Generic(), "SELECT OVERLAY(s PLACING 'x' FROM 2 FOR 3)", "SELECT OVERLAY(s PLACING 'x' FROM 2 FOR 3)"},
		{dialect.Generic(), "SELECT ts AT TIME ZONE 'UTC'", "SELECT ts AT TIME ZONE 'UTC'"},
		{dialect.Generic(), "SELECT s COLLATE de_DE", "SELECT s COLLATE de_DE"},
		{dialect.Generic(), "SELECT EXISTS (SELECT 1)", "SELECT EXISTS (SELECT 1)"},
		{dialect.Generic(), "SELECT NOT EXISTS (SELECT 1)", "SELECT NOT EXISTS (SELECT 1)"},
		{dialect.Generic(), "SELECT INTERVAL '1' YEAR", "SELECT INTERVAL '1' YEAR"},
		{dialect.Generic(), "SELECT INTERVAL '1-2' YEAR TO MONTH", "SELECT INTERVAL '1-2' YEAR TO MONTH"},
		{dialect.Generic(), "SELECT DATE '2024-01-02'", "SELECT DATE '2024-01-02'"},
		{dialect.Generic(), "SELECT TIMESTAMP '2024-01-02 03:04:05'", "SELECT TIMESTAMP '2024-01-02 03:04:05'"},
		{dialect.PostgreSql(), "SELECT arr[1]", "SELECT arr[1]"},
		{dialect.DuckDb(), "SELECT [1, 2, 3]", "SELECT [1, 2, 3]"},
		{dialect.PostgreSql(), "SELECT ARRAY[1, 2]", "SELECT ARRAY[1, 2]"},
		{dialect.BigQuery(), "SELECT STRUCT(1 AS a, 'x' AS b)", "SELECT STRUCT(1 AS a, 'x' AS b)"},
		{dialect.DuckDb(), "SELECT {'k': 1, 'j': 2}", "SELECT {'k': 1, 'j': 2}"},
		{dialect.DuckDb(), "SELECT list_transform(l, x -> x + 1)", "SELECT list_transform(l, x -> x + 1)"},
		{dialect.DuckDb(), "SELECT list_reduce(l, (a, b) -> a + b)", "SELECT list_reduce(l, (a, b) -> a + b)"},
		{dialect.Oracle(), "SELECT a.id (+)", "SELECT a.id (+)"},
		{dialect.PostgreSql(), "SELECT j -> 'k'", "SELECT j -> 'k'"},
		{dialect.PostgreSql(), "SELECT j ->> 'k'", "SELECT j ->> 'k'"},
		{dialect.PostgreSql(), "SELECT a @> b", "SELECT a @> b"},
		{dialect.PostgreSql(), "SELECT a ### b", "SELECT a ### b"},
		{dialect.MySql(), "SELECT _utf8mb4'abc'", "SELECT _utf8mb4 'abc'"},
		{dialect.Generic(), "SELECT f(DISTINCT a)", "SELECT f(DISTINCT a)"},
		{dialect.Generic(), "SELECT f(a => 1)", "SELECT f(a => 1)"},
		{dialect.DuckDb(), "SELECT f(a := 1)", "SELECT f(a := 1)"},
		{dialect.Generic(), "SELECT (1, 2, 3)", "SELECT (1, 2, 3)"},
		{dialect.Generic(), "SELECT (1)", "SELECT (1)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mustSQL(t, tt.d, tt.input))
		})
	}
}

func TestAggregatesAndWindows(t *testing.T) {
	tests := []string{
		"SELECT COUNT(*) FROM t",
		"SELECT COUNT(DISTINCT a) FROM t",
		"SELECT SUM(x) FILTER (WHERE y > 0) FROM t",
		"SELECT ROW_NUMBER() OVER () FROM t",
		"SELECT SUM(x) OVER (PARTITION BY a ORDER BY b) FROM t",
		"SELECT SUM(x) OVER (ROWS BETWEEN 1 PRECEDING AND CURRENT ROW) FROM t",
		"SELECT SUM(x) OVER (RANGE BETWEEN UNBOUNDED PRECEDING AND UNBOUNDED FOLLOWING) FROM t",
		"SELECT SUM(x) OVER w FROM t WINDOW w AS (PARTITION BY a)",
		"SELECT percentile_cont(0.5) WITHIN GROUP (ORDER BY x) FROM t",
		"SELECT array_agg(x ORDER BY y) FROM t",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, mustSQL(t, dialect.Generic(), input))
		})
	}
}

func TestNullTreatmentArg(t *testing.T) {
	input := "SELECT LAST_VALUE(x IGNORE NULLS) OVER () FROM t"
	assert.Equal(t, input, mustSQL(t, dialect.BigQuery(), input))
}

func TestLimitCommaRewrite(t *testing.T) {
	got := mustSQL(t, dialect.MySql(), "SELECT * FROM t LIMIT 5, 10")
	assert.Equal(t, "SELECT * FROM t LIMIT 10 OFFSET 5", got)
}

func TestUnescapeOff(t *testing.T) {
	p := NewWithOptions("SELECT 'a''b'", dialect.Generic(),
		Options{Unescape: false})
	stmt, err := p.Parse()
	require.NoError(t, err)
	sel := stmt.(*ast.Query).Body.(*ast.SelectStmt)
	lit := sel.Projection[0].(*ast.AliasedExpr).Expr.(*ast.Literal)
	assert.Equal(t, "a''b", lit.Value)
	assert.True(t, lit.Raw)
	// Serialization must not re-escape raw content.
	assert.Equal(t, "SELECT 'a''b'", ast.SQL(stmt))
}
