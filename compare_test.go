package sqlparse

import (
	"testing"

	vitess "github.com/blastrain/vitess-sqlparser/sqlparser"

	"github.com/freeeve/sqlparse/dialect"
)

// TestVitessAgreement runs a MySQL-flavored corpus through both this
// parser and vitess-sqlparser: statements in the shared subset must be
// accepted by both.
func TestVitessAgreement(t *testing.T) {
	corpus := []string{
		"SELECT 1",
		"SELECT * FROM users",
		"SELECT id, name FROM users WHERE status = 'active'",
		"SELECT a.id, b.name FROM a JOIN b ON a.id = b.a_id",
		"SELECT DISTINCT a FROM t",
		"SELECT COUNT(*) FROM t GROUP BY a HAVING COUNT(*) > 1",
		"SELECT a FROM t ORDER BY a DESC LIMIT 10",
		"SELECT a FROM t LIMIT 5, 10",
		"SELECT * FROM t1, t2 WHERE t1.id = t2.id",
		"SELECT a FROM t WHERE b IN (1, 2, 3)",
		"SELECT a FROM t WHERE b BETWEEN 1 AND 10",
		"SELECT a FROM t WHERE b LIKE 'x%'",
		"SELECT a FROM t WHERE b IS NULL",
		"SELECT CASE WHEN a THEN 1 ELSE 2 END FROM t",
		"SELECT * FROM (SELECT 1 FROM t) AS sub",
		"INSERT INTO t (a, b) VALUES (1, 'x')",
		"INSERT INTO t (a) VALUES (1), (2), (3)",
		"UPDATE t SET a = 1 WHERE id = 2",
		"UPDATE t SET a = 1, b = 2",
		"DELETE FROM t WHERE id = 1",
		"SELECT 1 UNION SELECT 2",
		"SELECT 1 UNION ALL SELECT 2",
	}
	d := dialect.MySql()
	for _, input := range corpus {
		t.Run(input, func(t *testing.T) {
			_, ourErr := ParseDialect(input, d)
			_, theirErr := vitess.Parse(input)
			if ourErr != nil {
				t.Errorf("sqlparse rejected %q: %v", input, ourErr)
			}
			if theirErr != nil {
				t.Errorf("vitess rejected %q: %v", input, theirErr)
			}
		})
	}
}

// TestVitessRejectsGarbageWeReject spot-checks agreement on rejection.
func TestVitessRejectsGarbageWeReject(t *testing.T) {
	corpus := []string{
		"SELECT FROM WHERE",
		"INSERT INTO",
		"UPDATE SET",
	}
	d := dialect.MySql()
	for _, input := range corpus {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseDialect(input, d); err == nil {
				t.Errorf("sqlparse accepted %q", input)
			}
			if _, err := vitess.Parse(input); err == nil {
				t.Errorf("vitess accepted %q", input)
			}
		})
	}
}
