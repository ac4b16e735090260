package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/sqlparse/token"
)

func TestFromName(t *testing.T) {
	for _, d := range All() {
		got := FromName(d.Name)
		require.NotNil(t, got, d.Name)
		assert.Equal(t, d.Name, got.Name)
	}
	assert.Nil(t, FromName("no-such-dialect"))
	assert.NotNil(t, FromName("PostgreSQL"))
}

func TestDialectFlags(t *testing.T) {
	assert.True(t, MySql().LimitComma)
	assert.True(t, MySql().StringLiteralBackslashEscape)
	assert.False(t, PostgreSql().StringLiteralBackslashEscape)
	assert.True(t, PostgreSql().DollarQuotedStrings)
	assert.True(t, BigQuery().TripleQuotedStrings)
	assert.True(t, BigQuery().ProjectionTrailingCommas)
	assert.True(t, Snowflake().ColonJsonAccess)
	assert.True(t, Snowflake().AsofJoins)
	assert.True(t, SQLite().StartTransactionModifiers)
	assert.True(t, MsSql().TopBeforeProjection)
	assert.True(t, MsSql().ConvertTypeBeforeValue)
	assert.True(t, DuckDb().DictionarySyntax)
	assert.True(t, DuckDb().LambdaFunctions)
	assert.True(t, Oracle().OuterJoinMarker)
	assert.True(t, Hive().NumericPrefixIdentifiers)
	assert.True(t, Databricks().DescribeRequiresTableKeyword)
	assert.False(t, Ansi().DollarQuotedStrings)
}

func TestIdentifierQuotes(t *testing.T) {
	assert.Equal(t, byte('"'), PostgreSql().IdentifierQuote)
	assert.Equal(t, byte('`'), MySql().IdentifierQuote)
	assert.Equal(t, byte('['), MsSql().IdentifierQuote)
}

func TestDelimitedIdentifierStart(t *testing.T) {
	assert.True(t, PostgreSql().DelimitedIdentifierStart('"'))
	assert.False(t, PostgreSql().DelimitedIdentifierStart('`'))
	assert.True(t, MySql().DelimitedIdentifierStart('`'))
	assert.False(t, MySql().DelimitedIdentifierStart('"'))
	assert.True(t, SQLite().DelimitedIdentifierStart('['))
	assert.True(t, SQLite().DelimitedIdentifierStart('"'))
}

// fakeParser is a minimal dialect.Parser for precedence tests.
type fakeParser struct {
	Parser
	cur  token.Item
	next token.Item
}

func (f *fakeParser) Cur() token.Item  { return f.cur }
func (f *fakeParser) Peek() token.Item { return f.next }

func prec(l *Ladder, cur, next token.Token) int {
	return l.Next(&fakeParser{
		cur:  token.Item{Type: cur},
		next: token.Item{Type: next},
	})
}

func TestDefaultLadderOrdering(t *testing.T) {
	l := &DefaultLadder
	assert.Less(t, prec(l, token.OR, token.EOF), prec(l, token.AND, token.EOF))
	assert.Less(t, prec(l, token.AND, token.EOF), prec(l, token.EQ, token.EOF))
	assert.Less(t, prec(l, token.EQ, token.EOF), prec(l, token.PLUS, token.EOF))
	assert.Less(t, prec(l, token.PLUS, token.EOF), prec(l, token.ASTERISK, token.EOF))
	assert.Less(t, prec(l, token.ASTERISK, token.EOF), prec(l, token.DCOLON, token.EOF))
}

func TestPostgresLadderReorders(t *testing.T) {
	l := &PostgresLadder
	// BETWEEN and LIKE bind tighter than equality under PostgreSQL.
	assert.Greater(t, prec(l, token.BETWEEN, token.EOF), prec(l, token.EQ, token.EOF))
	assert.Greater(t, prec(l, token.LIKE, token.EOF), prec(l, token.EQ, token.EOF))
	assert.Equal(t, 120, prec(l, token.COLLATE, token.EOF))
	assert.Equal(t, 130, prec(l, token.LBRACKET, token.EOF))
	assert.Equal(t, 140, prec(l, token.DCOLON, token.EOF))
	// Arithmetic still binds tighter than BETWEEN.
	assert.Greater(t, prec(l, token.PLUS, token.EOF), prec(l, token.BETWEEN, token.EOF))
}

func TestNotDynamicPrecedence(t *testing.T) {
	l := &DefaultLadder
	assert.Equal(t, l.Between, prec(l, token.NOT, token.IN))
	assert.Equal(t, l.Between, prec(l, token.NOT, token.BETWEEN))
	assert.Equal(t, l.Like, prec(l, token.NOT, token.LIKE))
	assert.Equal(t, l.Like, prec(l, token.NOT, token.RLIKE))
	assert.Equal(t, 0, prec(l, token.NOT, token.IDENT))
}

func TestAtTimeZonePrecedence(t *testing.T) {
	l := &DefaultLadder
	assert.Equal(t, l.AtTz, prec(l, token.AT, token.TIME))
	assert.Equal(t, 0, prec(l, token.AT, token.IDENT))
}

func TestCustomDialect(t *testing.T) {
	d := Custom("mine")
	assert.Equal(t, "mine", d.Name)
	require.Nil(t, d.ParseStatement)
	d.NextPrecedence = func(p Parser) (int, bool) { return 99, true }
	v, ok := d.NextPrecedence(nil)
	assert.True(t, ok)
	assert.Equal(t, 99, v)
}
