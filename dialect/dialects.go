package dialect

import (
	"strings"

	"github.com/freeeve/sqlparse/token"
)

// base returns the classifier defaults every dialect starts from.
func base(name string) *Dialect {
	return &Dialect{
		Name:                     name,
		IdentifierStart:          defaultIdentifierStart,
		IdentifierPart:           defaultIdentifierPart,
		DelimitedIdentifierStart: doubleQuoteDelimited,
		IdentifierQuote:          '"',
	}
}

// Ansi is the strict ANSI SQL dialect.
func Ansi() *Dialect {
	d := base("ansi")
	d.NationalStringLiterals = true
	d.DoubleColonCast = false
	d.SubstringFromFor = true
	return d
}

// Generic is the permissive default dialect: it accepts the common
// denominator of the supported dialects plus the widespread extensions.
func Generic() *Dialect {
	d := base("generic")
	d.NationalStringLiterals = true
	d.RawStringLiterals = true
	d.EscapeStringLiterals = true
	d.DollarQuotedStrings = true
	d.AtPlaceholders = true
	d.ColonPlaceholders = true
	d.DollarPlaceholders = true
	d.FilterDuringAggregation = true
	d.GroupByAll = true
	d.SubstringFromFor = true
	d.DoubleColonCast = true
	d.InEmptyList = true
	d.StartTransactionModifiers = true
	d.WindowFunctionNullTreatmentArg = true
	return d
}

// PostgreSql is the PostgreSQL dialect: dollar quoting, escape strings,
// custom operators, and the reordered precedence ladder.
func PostgreSql() *Dialect {
	d := base("postgresql")
	d.CustomOperatorPart = postgresOperatorPart
	d.StringLiteralBackslashEscape = false
	d.NationalStringLiterals = true
	d.UnicodeStringLiterals = true
	d.EscapeStringLiterals = true
	d.DollarQuotedStrings = true
	d.DollarPlaceholders = true
	d.NestedBlockComments = true
	d.FilterDuringAggregation = true
	d.DoubleColonCast = true
	d.SubstringFromFor = true
	d.ExtractSingleQuotes = false
	d.Ladder = &PostgresLadder
	return d
}

// Redshift is PostgreSQL-flavored with bracket-quoted identifiers
// allowed.
func Redshift() *Dialect {
	d := PostgreSql()
	d.Name = "redshift"
	d.DelimitedIdentifierStart = doubleQuoteOrBracketDelimited
	d.NestedBlockComments = false
	return d
}

// MySql is the MySQL dialect: backtick identifiers, double-quoted
// strings, backslash escapes, and LIMIT a, b.
func MySql() *Dialect {
	d := base("mysql")
	d.DelimitedIdentifierStart = backtickDelimited
	d.IdentifierQuote = '`'
	d.StringLiteralBackslashEscape = true
	d.NationalStringLiterals = true
	d.HashComments = true
	d.AtPlaceholders = true
	d.ColonPlaceholders = true
	d.NumericLongSuffix = true
	d.LimitComma = true
	d.InEmptyList = false
	d.SubstringFromFor = true
	return d
}

// SQLite accepts every quoting style and every placeholder form, and the
// BEGIN DEFERRED/IMMEDIATE/EXCLUSIVE transaction modifiers.
func SQLite() *Dialect {
	d := base("sqlite")
	d.DelimitedIdentifierStart = doubleQuoteOrBracketDelimited
	d.AtPlaceholders = true
	d.ColonPlaceholders = true
	d.DollarPlaceholders = true
	d.StartTransactionModifiers = true
	d.InEmptyList = true
	d.FilterDuringAggregation = true
	d.SubstringFromFor = true
	return d
}

// MsSql is the SQL Server dialect: bracket identifiers, @variables, TOP,
// and CONVERT(type, expr).
func MsSql() *Dialect {
	d := base("mssql")
	d.DelimitedIdentifierStart = doubleQuoteOrBracketDelimited
	d.IdentifierQuote = '['
	d.AtPlaceholders = true
	d.ColonPlaceholders = true
	d.NationalStringLiterals = true
	d.TopBeforeProjection = true
	d.ConvertTypeBeforeValue = true
	d.DoubleColonCast = false
	return d
}

// BigQuery is the BigQuery dialect: triple-quoted and raw strings, value
// tables, wildcard EXCEPT/REPLACE, and trailing commas in projections.
func BigQuery() *Dialect {
	d := base("bigquery")
	d.DelimitedIdentifierStart = backtickDelimited
	d.IdentifierQuote = '`'
	d.StringLiteralBackslashEscape = true
	d.TripleQuotedStrings = true
	d.RawStringLiterals = true
	d.AtPlaceholders = true
	d.ProjectionTrailingCommas = true
	d.SelectWildcardExcept = true
	d.SelectWildcardReplace = true
	d.ValueTableMode = true
	d.WindowFunctionNullTreatmentArg = true
	d.ExtractCustomFields = true
	d.NumericPrefixIdentifiers = true
	return d
}

// Snowflake is the Snowflake dialect: // comments, a:b.c JSON paths,
// ASOF joins, and wildcard EXCLUDE/RENAME.
func Snowflake() *Dialect {
	d := base("snowflake")
	d.HashComments = true
	d.SlashSlashComments = true
	d.AtPlaceholders = true
	d.ColonPlaceholders = true
	d.SelectWildcardExclude = true
	d.SelectWildcardRename = true
	d.AsofJoins = true
	d.ColonJsonAccess = true
	d.MatchRecognize = true
	d.ConnectBy = true
	d.TrailingCommas = true
	d.DoubleColonCast = true
	d.ExtractCustomFields = true
	d.ExtractSingleQuotes = true
	d.NamedFunctionArgsWithEqOperator = true
	d.ParenthesizedSetVariables = true
	// The path colon binds like a cast so a:b.c composes with member
	// access and subscripts.
	d.NextPrecedence = func(p Parser) (int, bool) {
		if p.Cur().Type == token.COLON {
			return DefaultLadder.DoubleColon, true
		}
		return 0, false
	}
	return d
}

// DuckDb is the DuckDB dialect: dictionary and lambda literals, macros,
// secrets, GROUP BY ALL, and UNION BY NAME.
func DuckDb() *Dialect {
	d := base("duckdb")
	d.DollarQuotedStrings = true
	d.DollarPlaceholders = true
	d.DictionarySyntax = true
	d.LambdaFunctions = true
	d.GroupByAll = true
	d.TrailingCommas = true
	d.InEmptyList = true
	d.SelectWildcardExclude = true
	d.SelectWildcardReplace = true
	d.FilterDuringAggregation = true
	d.DoubleColonCast = true
	d.SubstringFromFor = true
	d.NamedFunctionArgsWithEqOperator = true
	return d
}

// ClickHouse is the ClickHouse dialect.
func ClickHouse() *Dialect {
	d := base("clickhouse")
	d.DelimitedIdentifierStart = backtickDelimited
	d.IdentifierQuote = '`'
	d.StringLiteralBackslashEscape = true
	d.LimitComma = true
	d.LambdaFunctions = true
	d.SelectWildcardExcept = true
	d.SelectWildcardReplace = true
	d.DoubleColonCast = true
	return d
}

// Hive is the Hive dialect: numeric-prefix identifiers and backslash
// escapes.
func Hive() *Dialect {
	d := base("hive")
	d.DelimitedIdentifierStart = backtickDelimited
	d.IdentifierQuote = '`'
	d.StringLiteralBackslashEscape = true
	d.NumericPrefixIdentifiers = true
	d.ColonPlaceholders = true
	d.InEmptyList = true
	return d
}

// Databricks is the Databricks dialect: Hive lexing with double-quoted
// strings and GROUP BY ALL.
func Databricks() *Dialect {
	d := Hive()
	d.Name = "databricks"
	d.GroupByAll = true
	d.ValueTableMode = false
	d.SelectWildcardExcept = true
	d.DescribeRequiresTableKeyword = true
	d.LambdaFunctions = true
	return d
}

// Oracle is the Oracle dialect: the (+) outer join marker and :name
// binds.
func Oracle() *Dialect {
	d := base("oracle")
	d.ColonPlaceholders = true
	d.NationalStringLiterals = true
	d.OuterJoinMarker = true
	d.ConnectBy = true
	return d
}

// Custom returns a mutable dialect seeded from Generic. Callers set the
// flags and hooks they need; the three parse hooks and NextPrecedence
// are the extension surface.
func Custom(name string) *Dialect {
	d := Generic()
	d.Name = name
	return d
}

// All returns one instance of every built-in dialect.
func All() []*Dialect {
	return []*Dialect{
		Ansi(), BigQuery(), ClickHouse(), Databricks(), DuckDb(),
		Generic(), Hive(), MsSql(), MySql(), Oracle(), PostgreSql(),
		Redshift(), SQLite(), Snowflake(),
	}
}

// FromName returns the built-in dialect with the given name, or nil.
func FromName(name string) *Dialect {
	for _, d := range All() {
		if strings.EqualFold(d.Name, name) {
			return d
		}
	}
	return nil
}
