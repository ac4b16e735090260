package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/sqlparse/dialect"
	"github.com/freeeve/sqlparse/token"
)

func kinds(items []token.Item) []token.Token {
	out := make([]token.Token, len(items))
	for i, it := range items {
		out[i] = it.Type
	}
	return out
}

func TestTokenizeBasic(t *testing.T) {
	items, err := Tokenize("SELECT * FROM users WHERE id = 1", dialect.Generic())
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		token.SELECT, token.ASTERISK, token.FROM, token.IDENT,
		token.WHERE, token.IDENT, token.EQ, token.INT, token.EOF,
	}, kinds(items))
	assert.Equal(t, "users", items[3].Value)
	assert.Equal(t, "1", items[7].Value)
}

func TestKeywordCaseInsensitive(t *testing.T) {
	items, err := Tokenize("select SeLeCt SELECT", dialect.Generic())
	require.NoError(t, err)
	for _, it := range items[:3] {
		assert.Equal(t, token.SELECT, it.Type)
	}
	// The original spelling is preserved in the value.
	assert.Equal(t, "SeLeCt", items[1].Value)
}

func TestOperators(t *testing.T) {
	tests := []struct {
		d     *dialect.Dialect
		input string
		want  []token.Token
	}{
		{dialect.MySql(), "a <=> b", []token.Token{token.IDENT, token.SPACESHIP, token.IDENT, token.EOF}},
		{dialect.MySql(), "a != b", []token.Token{token.IDENT, token.NEQ, token.IDENT, token.EOF}},
		{dialect.MySql(), "a <> b", []token.Token{token.IDENT, token.NEQ, token.IDENT, token.EOF}},
		{dialect.MySql(), "a << 2 >> b", []token.Token{token.IDENT, token.LSHIFT, token.INT, token.RSHIFT, token.IDENT, token.EOF}},
		{dialect.PostgreSql(), "a @> b", []token.Token{token.IDENT, token.ATGT, token.IDENT, token.EOF}},
		{dialect.PostgreSql(), "a <@ b", []token.Token{token.IDENT, token.LTAT, token.IDENT, token.EOF}},
		{dialect.PostgreSql(), "a !~~* b", []token.Token{token.IDENT, token.NOTDTILDESTAR, token.IDENT, token.EOF}},
		{dialect.PostgreSql(), "a ~* b", []token.Token{token.IDENT, token.TILDESTAR, token.IDENT, token.EOF}},
		{dialect.PostgreSql(), "j #>> '{x}'", []token.Token{token.IDENT, token.HASHDGT, token.STRING, token.EOF}},
		{dialect.PostgreSql(), "j ->> 'k'", []token.Token{token.IDENT, token.DARROW, token.STRING, token.EOF}},
		{dialect.PostgreSql(), "a ?| b", []token.Token{token.IDENT, token.QUESTIONOR, token.IDENT, token.EOF}},
		{dialect.PostgreSql(), "|/ 25", []token.Token{token.SQRT, token.INT, token.EOF}},
		{dialect.PostgreSql(), "||/ 27", []token.Token{token.CBRT, token.INT, token.EOF}},
		{dialect.PostgreSql(), "a ^@ b", []token.Token{token.IDENT, token.CARETAT, token.IDENT, token.EOF}},
		{dialect.Generic(), "x := 1", []token.Token{token.IDENT, token.ASSIGN, token.INT, token.EOF}},
		{dialect.Generic(), "f(a => 1)", []token.Token{token.IDENT, token.LPAREN, token.IDENT, token.FATARROW, token.INT, token.RPAREN, token.EOF}},
		{dialect.PostgreSql(), "a::int", []token.Token{token.IDENT, token.DCOLON, token.INT_TYPE, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			items, err := Tokenize(tt.input, tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds(items))
		})
	}
}

func TestCustomOperator(t *testing.T) {
	items, err := Tokenize("a ### b", dialect.PostgreSql())
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.IDENT, token.CUSTOMOP, token.IDENT, token.EOF}, kinds(items))
	assert.Equal(t, "###", items[1].Value)
}

func TestLongerOperatorWins(t *testing.T) {
	items, err := Tokenize("a>=b", dialect.Generic())
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.IDENT, token.GTE, token.IDENT, token.EOF}, kinds(items))

	items, err = Tokenize("a!~~b", dialect.PostgreSql())
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.IDENT, token.NOTDTILDE, token.IDENT, token.EOF}, kinds(items))
}

func TestStrings(t *testing.T) {
	t.Run("escaped quote", func(t *testing.T) {
		items, err := Tokenize("'a''b'", dialect.Generic())
		require.NoError(t, err)
		assert.Equal(t, token.STRING, items[0].Type)
		assert.Equal(t, "a'b", items[0].Value)
	})
	t.Run("double quote is identifier by default", func(t *testing.T) {
		items, err := Tokenize(`"col"`, dialect.Generic())
		require.NoError(t, err)
		assert.Equal(t, token.IDENT, items[0].Type)
		assert.Equal(t, byte('"'), items[0].Quote)
		assert.Equal(t, "col", items[0].Value)
	})
	t.Run("double quote is string in mysql", func(t *testing.T) {
		items, err := Tokenize(`"str"`, dialect.MySql())
		require.NoError(t, err)
		assert.Equal(t, token.DQSTRING, items[0].Type)
		assert.Equal(t, "str", items[0].Value)
	})
	t.Run("backslash escape in mysql", func(t *testing.T) {
		items, err := Tokenize(`'a\nb'`, dialect.MySql())
		require.NoError(t, err)
		assert.Equal(t, "a\nb", items[0].Value)
	})
	t.Run("backslash literal in postgres", func(t *testing.T) {
		items, err := Tokenize(`'a\nb'`, dialect.PostgreSql())
		require.NoError(t, err)
		assert.Equal(t, `a\nb`, items[0].Value)
	})
	t.Run("doubled identifier quote", func(t *testing.T) {
		items, err := Tokenize(`"a""b"`, dialect.Generic())
		require.NoError(t, err)
		assert.Equal(t, `a"b`, items[0].Value)
	})
}

func TestStringPrefixes(t *testing.T) {
	tests := []struct {
		d     *dialect.Dialect
		input string
		typ   token.Token
		value string
	}{
		{dialect.Generic(), "N'abc'", token.NSTRING, "abc"},
		{dialect.PostgreSql(), `E'a\nb'`, token.ESTRING, "a\nb"},
		{dialect.Generic(), "X'2A'", token.HEX, "2A"},
		{dialect.Generic(), "0x2A", token.HEX, "2A"},
		{dialect.BigQuery(), `R'a\nb'`, token.RAWSTRING, `a\nb`},
		{dialect.BigQuery(), `R"raw"`, token.RAWDQSTRING, "raw"},
		{dialect.BigQuery(), "B'0101'", token.BYTESTRING, "0101"},
		{dialect.PostgreSql(), `U&'d\0061t'`, token.USTRING, `d\0061t`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			items, err := Tokenize(tt.input, tt.d)
			require.NoError(t, err)
			require.Equal(t, tt.typ, items[0].Type)
			assert.Equal(t, tt.value, items[0].Value)
		})
	}
}

func TestPrefixLetterAsIdentifier(t *testing.T) {
	// A prefix letter not followed by a quote is an ordinary identifier.
	items, err := Tokenize("N + E", dialect.PostgreSql())
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.IDENT, token.PLUS, token.IDENT, token.EOF}, kinds(items))
}

func TestTripleQuoted(t *testing.T) {
	items, err := Tokenize(`'''it''s'''`, dialect.BigQuery())
	require.NoError(t, err)
	require.Equal(t, token.TSQSTRING, items[0].Type)
	assert.Equal(t, "it''s", items[0].Value)

	items, err = Tokenize(`"""doc"""`, dialect.BigQuery())
	require.NoError(t, err)
	require.Equal(t, token.TDQSTRING, items[0].Type)
	assert.Equal(t, "doc", items[0].Value)
}

func TestDollarQuoted(t *testing.T) {
	items, err := Tokenize("$tag$ body $tag$", dialect.PostgreSql())
	require.NoError(t, err)
	require.Equal(t, token.DOLLARSTRING, items[0].Type)
	assert.Equal(t, " body ", items[0].Value)
	assert.Equal(t, "tag", items[0].Tag)

	items, err = Tokenize("$$x$$", dialect.PostgreSql())
	require.NoError(t, err)
	require.Equal(t, token.DOLLARSTRING, items[0].Type)
	assert.Equal(t, "x", items[0].Value)
	assert.Equal(t, "", items[0].Tag)
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		d     *dialect.Dialect
		input string
		value string
	}{
		{dialect.Generic(), "?", "?"},
		{dialect.PostgreSql(), "$1", "$1"},
		{dialect.SQLite(), "@xxx", "@xxx"},
		{dialect.SQLite(), ":name", ":name"},
		{dialect.SQLite(), ":1", ":1"},
		{dialect.SQLite(), "$v", "$v"},
		{dialect.MySql(), "@@session_var", "@@session_var"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			items, err := Tokenize(tt.input, tt.d)
			require.NoError(t, err)
			require.Equal(t, token.PARAM, items[0].Type)
			assert.Equal(t, tt.value, items[0].Value)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Token
		value string
	}{
		{"123", token.INT, "123"},
		{"123.45", token.FLOAT, "123.45"},
		{".5", token.FLOAT, ".5"},
		{"1e10", token.FLOAT, "1e10"},
		{"1.5E-3", token.FLOAT, "1.5E-3"},
	}
	for _, tt := range tests {
		items, err := Tokenize(tt.input, dialect.Generic())
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tt.input, err)
		}
		if items[0].Type != tt.typ || items[0].Value != tt.value {
			t.Errorf("Tokenize(%q) = %v %q, want %v %q",
				tt.input, items[0].Type, items[0].Value, tt.typ, tt.value)
		}
	}
}

func TestLongSuffix(t *testing.T) {
	items, err := Tokenize("123L", dialect.MySql())
	require.NoError(t, err)
	require.Equal(t, token.INT, items[0].Type)
	assert.Equal(t, "123", items[0].Value)
	assert.True(t, items[0].Long)

	// Without the dialect flag, L starts an identifier.
	items, err = Tokenize("123 L", dialect.PostgreSql())
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.INT, token.IDENT, token.EOF}, kinds(items))
}

func TestNumericPrefixIdentifier(t *testing.T) {
	items, err := Tokenize("59901_user", dialect.Hive())
	require.NoError(t, err)
	require.Equal(t, token.IDENT, items[0].Type)
	assert.Equal(t, "59901_user", items[0].Value)

	items, err = Tokenize("59901_user", dialect.Generic())
	require.NoError(t, err)
	assert.NotEqual(t, token.IDENT, items[0].Type)
}

func TestComments(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		items, err := Tokenize("1 -- rest\n2", dialect.Generic())
		require.NoError(t, err)
		assert.Equal(t, []token.Token{token.INT, token.COMMENT, token.INT, token.EOF}, kinds(items))
		assert.Equal(t, " rest", items[1].Value)
		assert.Equal(t, "--", items[1].Tag)
	})
	t.Run("hash", func(t *testing.T) {
		items, err := Tokenize("1 # rest", dialect.MySql())
		require.NoError(t, err)
		assert.Equal(t, []token.Token{token.INT, token.COMMENT, token.EOF}, kinds(items))
		assert.Equal(t, "#", items[1].Tag)
	})
	t.Run("slash slash", func(t *testing.T) {
		items, err := Tokenize("1 // rest", dialect.Snowflake())
		require.NoError(t, err)
		assert.Equal(t, []token.Token{token.INT, token.COMMENT, token.EOF}, kinds(items))
		assert.Equal(t, "//", items[1].Tag)
	})
	t.Run("block", func(t *testing.T) {
		items, err := Tokenize("1 /* x */ 2", dialect.Generic())
		require.NoError(t, err)
		assert.Equal(t, []token.Token{token.INT, token.BLOCKCOMMENT, token.INT, token.EOF}, kinds(items))
		assert.Equal(t, " x ", items[1].Value)
	})
	t.Run("nested block", func(t *testing.T) {
		items, err := Tokenize("/* a /* b */ c */ 1", dialect.PostgreSql())
		require.NoError(t, err)
		assert.Equal(t, []token.Token{token.BLOCKCOMMENT, token.INT, token.EOF}, kinds(items))
		assert.Equal(t, " a /* b */ c ", items[0].Value)
	})
}

func TestBracketIdentifiers(t *testing.T) {
	items, err := Tokenize("[col name]", dialect.MsSql())
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Type != token.IDENT || items[0].Value != "col name" || items[0].Quote != '[' {
		t.Errorf("got %v %q quote %q", items[0].Type, items[0].Value, items[0].Quote)
	}

	// Array subscripts keep [ as punctuation.
	items, err = Tokenize("a[1]", dialect.PostgreSql())
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Token{token.IDENT, token.LBRACKET, token.INT, token.RBRACKET, token.EOF}
	for i, w := range want {
		if items[i].Type != w {
			t.Errorf("token %d = %v, want %v", i, items[i].Type, w)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		d      *dialect.Dialect
		input  string
		prefix string
	}{
		{dialect.Generic(), "'abc", "Unterminated string literal"},
		{dialect.Generic(), `"abc`, "Unterminated delimited identifier"},
		{dialect.Generic(), "/* abc", "Unterminated multiline comment"},
		{dialect.PostgreSql(), "$tag$ abc", "Unterminated dollar-quoted string"},
		{dialect.Generic(), "\x01", "Unexpected character"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Tokenize(tt.input, tt.d)
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), tt.prefix),
				"error %q should start with %q", err.Error(), tt.prefix)
			var terr *TokenizeError
			require.ErrorAs(t, err, &terr)
			assert.Greater(t, terr.Pos.Line, 0)
			assert.Greater(t, terr.Pos.Column, 0)
		})
	}
}

func TestUnterminatedStringPosition(t *testing.T) {
	_, err := Tokenize("SELECT 'abc", dialect.Generic())
	require.Error(t, err)
	var terr *TokenizeError
	require.ErrorAs(t, err, &terr)
	// Points past the opening quote.
	assert.Equal(t, 9, terr.Pos.Column)
}

func TestPositions(t *testing.T) {
	items, err := Tokenize("SELECT a\nFROM t", dialect.Generic())
	require.NoError(t, err)
	assert.Equal(t, 1, items[0].Pos.Line)
	assert.Equal(t, 1, items[0].Pos.Column)
	assert.Equal(t, 1, items[1].Pos.Line)
	assert.Equal(t, 8, items[1].Pos.Column)
	assert.Equal(t, 2, items[2].Pos.Line)
	assert.Equal(t, 1, items[2].Pos.Column)
}

// TestSpanMonotonic checks that token offsets advance strictly through
// the input with no overlap.
func TestSpanMonotonic(t *testing.T) {
	input := "SELECT a, 'str' /* c */ FROM t WHERE x >= 1.5 -- done"
	items, err := Tokenize(input, dialect.Generic())
	require.NoError(t, err)
	prev := -1
	for _, it := range items {
		if it.Type == token.EOF {
			break
		}
		assert.Greater(t, it.Pos.Offset, prev)
		assert.Less(t, it.Pos.Offset, len(input))
		prev = it.Pos.Offset
	}
}

func TestLexerReuse(t *testing.T) {
	l := Get("SELECT 1", dialect.Generic())
	if l.Next().Type != token.SELECT {
		t.Fatal("expected SELECT")
	}
	if l.Peek().Type != token.INT {
		t.Fatal("expected peek INT")
	}
	if l.Next().Type != token.INT {
		t.Fatal("expected INT")
	}
	Put(l)

	l2 := Get("FROM", dialect.Generic())
	if l2.Next().Type != token.FROM {
		t.Fatal("expected FROM after reuse")
	}
	Put(l2)
}
