package sqlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/sqlparse/ast"
	"github.com/freeeve/sqlparse/dialect"
	"github.com/freeeve/sqlparse/token"
)

// roundTripCorpus is the cross-cutting corpus used by the round-trip
// and idempotence property tests.
var roundTripCorpus = []struct {
	d     func() *dialect.Dialect
	input string
}{
	{dialect.Generic, "SELECT 1"},
	{dialect.Generic, "SELECT a, b FROM t WHERE a = 1 AND b < 2"},
	{dialect.Generic, "SELECT * FROM users ORDER BY id DESC LIMIT 10 OFFSET 5"},
	{dialect.Generic, "SELECT COUNT(*) FROM t GROUP BY a HAVING COUNT(*) > 1"},
	{dialect.Generic, "SELECT a FROM t1 JOIN t2 ON t1.id = t2.id LEFT JOIN t3 USING (id)"},
	{dialect.Generic, "WITH cte AS (SELECT 1) SELECT * FROM cte"},
	{dialect.Generic, "SELECT 1 UNION ALL SELECT 2 INTERSECT SELECT 3"},
	{dialect.Generic, "SELECT CASE WHEN a THEN 1 ELSE 2 END FROM t"},
	{dialect.Generic, "SELECT CAST(a AS DECIMAL(10, 2)) FROM t"},
	{dialect.Generic, "SELECT SUM(x) OVER (PARTITION BY a ORDER BY b ROWS BETWEEN 1 PRECEDING AND CURRENT ROW) FROM t"},
	{dialect.Generic, "INSERT INTO t (a, b) VALUES (1, 'x')"},
	{dialect.Generic, "UPDATE t SET a = a + 1 WHERE id IN (SELECT id FROM u)"},
	{dialect.Generic, "DELETE FROM t WHERE NOT EXISTS (SELECT 1 FROM u WHERE u.id = t.id)"},
	{dialect.Generic, "CREATE TABLE t (a INT PRIMARY KEY, b TEXT NOT NULL)"},
	{dialect.Generic, "DROP TABLE IF EXISTS t"},
	{dialect.Generic, "VALUES (1, 2), (3, 4)"},
	{dialect.PostgreSql, "SELECT a::INT, j ->> 'k' FROM t WHERE s ILIKE '%x%'"},
	{dialect.PostgreSql, "SELECT a FROM t WHERE tags @> ARRAY['x']"},
	{dialect.PostgreSql, "SELECT $1, $2"},
	{dialect.MySql, "SELECT `col` FROM `t` LIMIT 10 OFFSET 5"},
	{dialect.MySql, "INSERT INTO t (a) VALUES (1) ON DUPLICATE KEY UPDATE a = 2"},
	{dialect.SQLite, "SELECT @a, :b, $c, ?"},
	{dialect.SQLite, "BEGIN IMMEDIATE TRANSACTION"},
	{dialect.BigQuery, "SELECT * EXCEPT (secret) FROM t"},
	{dialect.BigQuery, "SELECT STRUCT(1 AS a) FROM t"},
	{dialect.Snowflake, "SELECT payload:item[0].id FROM events"},
	{dialect.DuckDb, "SELECT {'k': 1} FROM t"},
	{dialect.MsSql, "SELECT TOP (10) * FROM [my table]"},
	{dialect.Oracle, "SELECT a.id (+) FROM a"},
}

// TestRoundTrip checks parse → toSql → parse equality through the
// canonical form: serializing twice must be a fixed point.
func TestRoundTrip(t *testing.T) {
	for _, tt := range roundTripCorpus {
		t.Run(tt.input, func(t *testing.T) {
			d := tt.d()
			first, err := ParseDialect(tt.input, d)
			require.NoError(t, err)
			require.Len(t, first, 1)
			s1 := String(first[0])

			second, err := ParseDialect(s1, d)
			require.NoError(t, err, "canonical form must reparse: %q", s1)
			require.Len(t, second, 1)
			s2 := String(second[0])
			assert.Equal(t, s1, s2)
		})
	}
}

// TestCrossDialectAgreement checks that dialect-neutral inputs produce
// the same AST under every dialect that accepts them.
func TestCrossDialectAgreement(t *testing.T) {
	inputs := []string{
		"SELECT a, b FROM t WHERE a = 1",
		"SELECT COUNT(*) FROM t GROUP BY a",
		"INSERT INTO t (a) VALUES (1)",
		"UPDATE t SET a = 2 WHERE id = 1",
		"DELETE FROM t WHERE id = 1",
	}
	dialects := []*dialect.Dialect{
		dialect.Generic(), dialect.Ansi(), dialect.MySql(),
		dialect.PostgreSql(), dialect.SQLite(), dialect.Snowflake(),
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			base, err := ParseDialect(input, dialects[0])
			require.NoError(t, err)
			for _, d := range dialects[1:] {
				got, err := ParseDialect(input, d)
				require.NoError(t, err, d.Name)
				assert.Equal(t, base, got, d.Name)
			}
		})
	}
}

func TestParseDefaultsToGeneric(t *testing.T) {
	stmts, err := Parse("SELECT 1")
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, "SELECT 1", String(stmts[0]))
}

func TestParseMultiple(t *testing.T) {
	stmts, err := Parse("SELECT 1; INSERT INTO t VALUES (1); COMMIT")
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	_, ok := stmts[2].(*ast.CommitStmt)
	assert.True(t, ok)
}

func TestTokenizeAPI(t *testing.T) {
	items, err := Tokenize("SELECT 1 -- done", dialect.Generic())
	require.NoError(t, err)
	// Comments are present in the raw token stream.
	var sawComment bool
	for _, it := range items {
		if it.Type == token.COMMENT {
			sawComment = true
		}
	}
	assert.True(t, sawComment)
}

func TestWalkCollectsIdents(t *testing.T) {
	stmts, err := Parse("SELECT a, b FROM t WHERE c = 1")
	require.NoError(t, err)
	var idents []string
	Walk(stmts[0], func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			idents = append(idents, id.Value)
		}
		return true
	})
	assert.Contains(t, idents, "a")
	assert.Contains(t, idents, "b")
	assert.Contains(t, idents, "c")
}

func TestRewriteReplacesIdent(t *testing.T) {
	stmts, err := Parse("SELECT a FROM t WHERE a = 1")
	require.NoError(t, err)
	out := Rewrite(stmts[0], func(n ast.Node) ast.Node {
		if id, ok := n.(*ast.Ident); ok && id.Value == "a" {
			return &ast.Ident{Value: "renamed"}
		}
		return n
	})
	assert.Contains(t, String(out), "renamed = 1")
}

func TestErrorsCarryPosition(t *testing.T) {
	_, err := Parse("SELECT 'unterminated")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated")

	_, err = Parse("SELECT FROM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Line: 1")
	assert.Contains(t, err.Error(), "Col: 8")
}
