package fuzz

import (
	"testing"

	"github.com/freeeve/sqlparse"
	"github.com/freeeve/sqlparse/dialect"
	"github.com/freeeve/sqlparse/lexer"
	"github.com/freeeve/sqlparse/token"
)

// seeds is the shared corpus of valid SQL across the supported
// dialects.
var seeds = []string{
	// Basic SELECT
	"SELECT * FROM users",
	"SELECT id, name FROM users WHERE status = 'active'",
	"SELECT a.id, b.name FROM a JOIN b ON a.id = b.a_id",
	"SELECT DISTINCT a, b FROM t",
	"SELECT ALL * FROM t",

	// DML
	"INSERT INTO users (id, name) VALUES (1, 'test')",
	"INSERT INTO t (a, b) VALUES (1, 2), (3, 4), (5, 6)",
	"UPDATE users SET name = 'new' WHERE id = 1",
	"DELETE FROM users WHERE id = 1",
	"MERGE INTO t USING s ON t.id = s.id WHEN MATCHED THEN DELETE",

	// Subqueries
	"SELECT * FROM users WHERE id IN (SELECT user_id FROM orders)",
	"SELECT * FROM (SELECT 1 FROM t) AS sub",
	"SELECT (SELECT MAX(id) FROM t2) FROM t",
	"SELECT * FROM t WHERE EXISTS (SELECT 1 FROM u WHERE u.id = t.id)",

	// CTE and set operations
	"WITH cte AS (SELECT 1) SELECT * FROM cte",
	"WITH RECURSIVE cte AS (SELECT 1 UNION ALL SELECT n + 1 FROM cte) SELECT * FROM cte",
	"SELECT 1 UNION SELECT 2 INTERSECT SELECT 3",
	"VALUES (1), (2)",

	// Window functions
	"SELECT COUNT(*) OVER (PARTITION BY type ORDER BY id) FROM items",
	"SELECT SUM(x) OVER (ORDER BY y ROWS BETWEEN 1 PRECEDING AND 1 FOLLOWING) FROM t",
	"SELECT SUM(x) FILTER (WHERE y > 0) FROM t",

	// Expressions
	"SELECT CASE WHEN x = 1 THEN 'a' ELSE 'b' END FROM t",
	"SELECT CAST(a AS DECIMAL(10, 2)), EXTRACT(YEAR FROM d) FROM t",
	"SELECT a BETWEEN 1 AND 10, b IS NOT NULL, c LIKE 'x%' FROM t",
	"SELECT INTERVAL '1' YEAR, DATE '2024-01-01'",
	"SELECT TRIM(BOTH 'x' FROM s), SUBSTRING(s FROM 1 FOR 2) FROM t",

	// DDL
	"CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(255))",
	"CREATE TABLE t (id INT NOT NULL, name TEXT DEFAULT 'x', UNIQUE (id))",
	"CREATE TABLE IF NOT EXISTS t (id INT)",
	"ALTER TABLE users ADD COLUMN email VARCHAR(255)",
	"DROP TABLE IF EXISTS t CASCADE",
	"CREATE INDEX idx ON t (a, b DESC)",
	"CREATE VIEW v AS SELECT 1",

	// Utility statements
	"EXPLAIN SELECT 1",
	"BEGIN; COMMIT",
	"SET x = 1",
	"SHOW TABLES",
	"GRANT SELECT ON t TO u",

	// Edge cases
	"",
	";",
	";;;",
	"SELECT",
	"SELECT 'unterminated",
	"SELECT ((((1))))",
	"SELECT 1 --",
	"SELECT /* nested /* comment */ here */ 1",
}

// FuzzParse tests that the parser never panics and that accepted input
// round-trips through the serializer.
func FuzzParse(f *testing.F) {
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		stmts, err := sqlparse.Parse(input)
		if err != nil {
			return
		}
		for _, stmt := range stmts {
			out := sqlparse.String(stmt)
			again, err := sqlparse.Parse(out)
			if err != nil {
				t.Fatalf("canonical form %q of %q does not reparse: %v", out, input, err)
			}
			if len(again) != 1 {
				t.Fatalf("canonical form %q parsed to %d statements", out, len(again))
			}
			if got := sqlparse.String(again[0]); got != out {
				t.Fatalf("canonicalization is not a fixed point: %q -> %q", out, got)
			}
		}
	})
}

// FuzzLexer tests that tokenization terminates and either errors or
// ends with EOF, with strictly advancing offsets.
func FuzzLexer(f *testing.F) {
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		l := lexer.New(input, dialect.Generic())
		prev := -1
		for i := 0; i < len(input)+16; i++ {
			it := l.Next()
			if l.Err() != nil {
				return
			}
			if it.Type == token.EOF {
				return
			}
			if it.Pos.Offset <= prev {
				t.Fatalf("offset did not advance: %d after %d in %q", it.Pos.Offset, prev, input)
			}
			prev = it.Pos.Offset
		}
		t.Fatalf("lexer did not terminate on %q", input)
	})
}

// FuzzDialects runs every built-in dialect over the input; no dialect
// may panic, whatever it accepts.
func FuzzDialects(f *testing.F) {
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		for _, d := range dialect.All() {
			stmts, err := sqlparse.ParseDialect(input, d)
			if err != nil {
				continue
			}
			for _, stmt := range stmts {
				_ = sqlparse.String(stmt)
			}
		}
	})
}

// FuzzWalk checks traversal never panics on any accepted input.
func FuzzWalk(f *testing.F) {
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		stmts, err := sqlparse.Parse(input)
		if err != nil {
			return
		}
		for _, stmt := range stmts {
			count := 0
			sqlparse.Walk(stmt, func(n sqlparse.Node) bool {
				count++
				return count < 1_000_000
			})
		}
	})
}
