package sqlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/sqlparse/dialect"
)

// TestAliases exercises the root-level type aliases so downstream code
// can avoid importing the ast package for common cases.
func TestAliases(t *testing.T) {
	stmts, err := Parse("SELECT a FROM t WHERE a = 1")
	require.NoError(t, err)

	var q *Query
	q, ok := stmts[0].(*Query)
	require.True(t, ok)

	sel, ok := q.Body.(*SelectStmt)
	require.True(t, ok)

	where, ok := sel.Where.(*BinaryExpr)
	require.True(t, ok)
	id, ok := where.Left.(*Ident)
	require.True(t, ok)
	assert.Equal(t, "a", id.Value)

	lit, ok := where.Right.(*Literal)
	require.True(t, ok)
	assert.Equal(t, LiteralNumber, lit.Type)
}

func TestParseOne(t *testing.T) {
	stmt, err := ParseOne("SELECT 1", dialect.Generic())
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", String(stmt))

	// Multiple statements are rejected by ParseOne.
	_, err = ParseOne("SELECT 1; SELECT 2", dialect.Generic())
	require.Error(t, err)

	// Empty input yields no statement and no error.
	stmt, err = ParseOne("", dialect.Generic())
	require.NoError(t, err)
	assert.Nil(t, stmt)
}

func TestParseOptionsRecursionLimit(t *testing.T) {
	_, err := ParseOptions("SELECT ((((1))))", dialect.Generic(),
		ParserOptions{RecursionLimit: 3, Unescape: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RecursionOverflow")
}
