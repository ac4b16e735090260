package fuzz

import (
	"testing"

	"github.com/freeeve/sqlparse"
	"github.com/freeeve/sqlparse/dialect"
)

// TestRegressions pins canonical output for inputs that exercised
// tricky corners: token tie-breaks, rewrites, and dialect-gated
// grammar.
func TestRegressions(t *testing.T) {
	tests := []struct {
		name  string
		d     *dialect.Dialect
		input string
		want  string
	}{
		{"limit comma rewrite", dialect.MySql(),
			"SELECT * FROM t LIMIT 5, 10",
			"SELECT * FROM t LIMIT 10 OFFSET 5"},
		{"left outer normalizes", dialect.Generic(),
			"SELECT a FROM t1 LEFT OUTER JOIN t2 ON TRUE",
			"SELECT a FROM t1 LEFT JOIN t2 ON TRUE"},
		{"empty insert column list drops", dialect.MySql(),
			"INSERT INTO tb () VALUES (), ()",
			"INSERT INTO tb VALUES (), ()"},
		{"nested angle close", dialect.BigQuery(),
			"CREATE TABLE t (xs ARRAY<ARRAY<INT>>)",
			"CREATE TABLE t (xs ARRAY<ARRAY<INT>>)"},
		{"not between binds as between", dialect.Generic(),
			"SELECT a NOT BETWEEN 1 AND 2 OR b",
			"SELECT a NOT BETWEEN 1 AND 2 OR b"},
		{"arrow is json op without lambdas", dialect.PostgreSql(),
			"SELECT j -> 'k' FROM t",
			"SELECT j -> 'k' FROM t"},
		{"arrow is lambda with lambdas", dialect.DuckDb(),
			"SELECT list_transform(l, x -> x + 1)",
			"SELECT list_transform(l, x -> x + 1)"},
		{"outer join marker is not a call", dialect.Oracle(),
			"SELECT e.dept_id (+) FROM e",
			"SELECT e.dept_id (+) FROM e"},
		{"bare alias gains AS", dialect.Generic(),
			"SELECT a x FROM t u",
			"SELECT a AS x FROM t AS u"},
		{"double quote string vs identifier", dialect.MySql(),
			`SELECT "s" FROM t`,
			`SELECT "s" FROM t`},
		{"spaceship", dialect.MySql(),
			"SELECT a <=> b FROM t",
			"SELECT a <=> b FROM t"},
		{"exclamation neq", dialect.Generic(),
			"SELECT a != b FROM t",
			"SELECT a <> b FROM t"},
		{"is not distinct from", dialect.Generic(),
			"SELECT a IS NOT DISTINCT FROM b",
			"SELECT a IS NOT DISTINCT FROM b"},
		{"in empty list", dialect.SQLite(),
			"SELECT a IN ()",
			"SELECT a IN ()"},
		{"concat chain", dialect.Generic(),
			"SELECT a || b || c",
			"SELECT a || b || c"},
		{"unary minus of cast", dialect.PostgreSql(),
			"SELECT -1::INT",
			"SELECT -1::INT"},
		{"dollar string", dialect.PostgreSql(),
			"SELECT $fn$ body $fn$",
			"SELECT $fn$ body $fn$"},
		{"group by grouping sets", dialect.Generic(),
			"SELECT a FROM t GROUP BY GROUPING SETS ((a), ())",
			"SELECT a FROM t GROUP BY GROUPING SETS ((a), ())"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := sqlparse.ParseDialect(tt.input, tt.d)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if len(stmts) != 1 {
				t.Fatalf("got %d statements", len(stmts))
			}
			got := sqlparse.String(stmts[0])
			if got != tt.want {
				t.Errorf("canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestRoundTripCorpus reparses every seed's canonical form and checks
// the fixed point.
func TestRoundTripCorpus(t *testing.T) {
	for _, input := range seeds {
		stmts, err := sqlparse.Parse(input)
		if err != nil {
			continue
		}
		for _, stmt := range stmts {
			s1 := sqlparse.String(stmt)
			again, err := sqlparse.Parse(s1)
			if err != nil {
				t.Errorf("canonical form %q of %q does not reparse: %v", s1, input, err)
				continue
			}
			if len(again) != 1 {
				t.Errorf("canonical form %q parsed to %d statements", s1, len(again))
				continue
			}
			if s2 := sqlparse.String(again[0]); s2 != s1 {
				t.Errorf("not a fixed point: %q -> %q", s1, s2)
			}
		}
	}
}
