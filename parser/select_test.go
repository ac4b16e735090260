package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/dialect"
)

// TestQueryRoundTrip covers the query grammar through canonical
// serialization: each input must parse and render back to itself.
func TestQueryRoundTrip(t *testing.T) {
	tests := []struct {
		d     *dialect.Dialect
		input string
	}{
		{dialect.Generic(), "SELECT * FROM users"},
		{dialect.Generic(), "SELECT DISTINCT name FROM users"},
		{dialect.Generic(), "SELECT ALL * FROM t"},
		{dialect.PostgreSql(), "SELECT DISTINCT ON (a) a, b FROM t"},
		{dialect.Generic(), "SELECT a AS x, b AS y FROM t"},
		{dialect.Generic(), "SELECT t.* FROM t"},
		{dialect.Generic(), "SELECT a FROM t1, t2"},
		{dialect.Generic(), "SELECT a FROM t1 JOIN t2 ON t1.id = t2.id"},
		{dialect.Generic(), "SELECT a FROM t1 LEFT JOIN t2 ON t1.id = t2.id"},
		{dialect.Generic(), "SELECT a FROM t1 RIGHT JOIN t2 USING (id)"},
		{dialect.Generic(), "SELECT a FROM t1 FULL JOIN t2 ON TRUE"},
		{dialect.Generic(), "SELECT a FROM t1 CROSS JOIN t2"},
		{dialect.Generic(), "SELECT a FROM t1 NATURAL JOIN t2"},
		{dialect.Generic(), "SELECT a FROM (SELECT b FROM t) AS sub"},
		{dialect.PostgreSql(), "SELECT a FROM LATERAL (SELECT b FROM t) AS sub"},
		{dialect.BigQuery(), "SELECT x FROM UNNEST(arr) AS u"},
		{dialect.BigQuery(), "SELECT x FROM UNNEST(arr) WITH OFFSET AS pos"},
		{dialect.Generic(), "SELECT a FROM generate_series(1, 10) AS g"},
		{dialect.Generic(), "SELECT a FROM t WHERE x > 0 GROUP BY a HAVING COUNT(*) > 1"},
		{dialect.Generic(), "SELECT a FROM t GROUP BY ROLLUP (a, b)"},
		{dialect.Generic(), "SELECT a FROM t GROUP BY CUBE (a, b)"},
		{dialect.Generic(), "SELECT a FROM t GROUP BY GROUPING SETS ((a), (b), ())"},
		{dialect.DuckDb(), "SELECT a, SUM(b) FROM t GROUP BY ALL"},
		{dialect.Snowflake(), "SELECT a FROM t QUALIFY ROW_NUMBER() OVER (ORDER BY b) = 1"},
		{dialect.Generic(), "SELECT a FROM t ORDER BY a DESC, b"},
		{dialect.Generic(), "SELECT a FROM t ORDER BY a NULLS FIRST"},
		{dialect.Generic(), "SELECT a FROM t ORDER BY a DESC NULLS LAST"},
		{dialect.Generic(), "SELECT a FROM t LIMIT 10"},
		{dialect.Generic(), "SELECT a FROM t LIMIT 10 OFFSET 5"},
		{dialect.Generic(), "SELECT a FROM t FETCH FIRST 10 ROWS ONLY"},
		{dialect.Generic(), "SELECT a FROM t FETCH FIRST 10 PERCENT ROWS WITH TIES"},
		{dialect.Generic(), "SELECT a FROM t FOR UPDATE"},
		{dialect.Generic(), "SELECT a FROM t FOR UPDATE NOWAIT"},
		{dialect.Generic(), "SELECT a FROM t FOR UPDATE SKIP LOCKED"},
		{dialect.Generic(), "SELECT a FROM t FOR SHARE OF t"},
		{dialect.Generic(), "SELECT 1 UNION SELECT 2"},
		{dialect.Generic(), "SELECT 1 UNION ALL SELECT 2"},
		{dialect.Generic(), "SELECT 1 INTERSECT SELECT 2"},
		{dialect.Generic(), "SELECT 1 EXCEPT DISTINCT SELECT 2"},
		{dialect.DuckDb(), "SELECT 1 UNION BY NAME SELECT 2"},
		{dialect.DuckDb(), "SELECT 1 UNION ALL BY NAME SELECT 2"},
		{dialect.Generic(), "(SELECT 1 LIMIT 1) UNION SELECT 2"},
		{dialect.Generic(), "WITH cte AS (SELECT 1) SELECT * FROM cte"},
		{dialect.Generic(), "WITH RECURSIVE cte AS (SELECT 1 UNION ALL SELECT n + 1 FROM cte) SELECT * FROM cte"},
		{dialect.Generic(), "WITH cte (a, b) AS (SELECT 1, 2) SELECT * FROM cte"},
		{dialect.PostgreSql(), "WITH cte AS MATERIALIZED (SELECT 1) SELECT * FROM cte"},
		{dialect.Generic(), "VALUES (1, 'a'), (2, 'b')"},
		{dialect.Generic(), "TABLE t"},
		{dialect.Generic(), "SELECT * FROM (VALUES (1), (2)) AS v (n)"},
		{dialect.Snowflake(), "SELECT * FROM t1 ASOF JOIN t2 MATCH_CONDITION (t1.ts >= t2.ts) ON t1.k = t2.k"},
		{dialect.BigQuery(), "SELECT AS STRUCT a, b FROM t"},
		{dialect.BigQuery(), "SELECT AS VALUE v FROM t"},
		{dialect.MsSql(), "SELECT TOP (5) * FROM t"},
		{dialect.MsSql(), "SELECT TOP (5) PERCENT * FROM t"},
		{dialect.Snowflake(), "SELECT * EXCLUDE (a, b) FROM t"},
		{dialect.BigQuery(), "SELECT * EXCEPT (a) FROM t"},
		{dialect.BigQuery(), "SELECT * REPLACE (a + 1 AS a) FROM t"},
		{dialect.Snowflake(), "SELECT * EXCLUDE (a) RENAME (b AS c) FROM t"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustSQL(t, tt.d, tt.input)
			assert.Equal(t, tt.input, got)
			// Canonical output reparses to the same canonical output.
			assert.Equal(t, got, mustSQL(t, tt.d, got))
		})
	}
}

func TestJoinTreeShape(t *testing.T) {
	stmt := parseOne(t, dialect.Generic(),
		"SELECT * FROM a JOIN b ON a.x = b.x LEFT JOIN c ON b.y = c.y")
	sel := stmt.(*ast.Query).Body.(*ast.SelectStmt)
	require.Len(t, sel.From, 1)
	outer, ok := sel.From[0].(*ast.JoinExpr)
	require.True(t, ok)
	assert.Equal(t, ast.JoinLeft, outer.Type)
	inner, ok := outer.Left.(*ast.JoinExpr)
	require.True(t, ok)
	assert.Equal(t, ast.JoinInner, inner.Type)
}

func TestOuterKeywordNormalized(t *testing.T) {
	got := mustSQL(t, dialect.Generic(), "SELECT a FROM t1 LEFT OUTER JOIN t2 ON TRUE")
	assert.Equal(t, "SELECT a FROM t1 LEFT JOIN t2 ON TRUE", got)
}

func TestBareAliasNormalized(t *testing.T) {
	got := mustSQL(t, dialect.Generic(), "SELECT a x FROM users u")
	assert.Equal(t, "SELECT a AS x FROM users AS u", got)
}

func TestSetOpPrecedence(t *testing.T) {
	stmt := parseOne(t, dialect.Generic(), "SELECT 1 UNION SELECT 2 INTERSECT SELECT 3")
	q := stmt.(*ast.Query)
	top, ok := q.Body.(*ast.SetOp)
	require.True(t, ok)
	assert.Equal(t, ast.Union, top.Op)
	right, ok := top.Right.(*ast.SetOp)
	require.True(t, ok)
	assert.Equal(t, ast.Intersect, right.Op)
}

func TestParenthesizedQueryKeepsClauses(t *testing.T) {
	stmt := parseOne(t, dialect.Generic(), "(SELECT 1 ORDER BY 1 LIMIT 1) UNION SELECT 2")
	q := stmt.(*ast.Query)
	top := q.Body.(*ast.SetOp)
	sub, ok := top.Left.(*ast.Query)
	require.True(t, ok)
	assert.NotNil(t, sub.Limit)
	assert.Len(t, sub.OrderBy, 1)
}
