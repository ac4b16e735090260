package token

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		ident string
		want  Token
	}{
		{"select", SELECT},
		{"SELECT", SELECT},
		{"SeLeCt", SELECT},
		{"from", FROM},
		{"qualify", QUALIFY},
		{"match_condition", MATCH_CONDITION},
		{"asof", ASOF},
		{"users", IDENT},
		{"selectx", IDENT},
		{"", IDENT},
		{"this_is_a_very_long_identifier_name_over_32_chars", IDENT},
	}
	for _, tt := range tests {
		if got := Lookup(tt.ident); got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestKeywordTableSorted(t *testing.T) {
	sorted := sort.SliceIsSorted(keywords, func(i, j int) bool {
		return keywords[i].name < keywords[j].name
	})
	if !sorted {
		t.Fatal("keyword table is not sorted")
	}
}

func TestEveryKeywordResolves(t *testing.T) {
	for _, e := range keywords {
		if got := Lookup(e.name); got != e.tok {
			t.Errorf("Lookup(%q) = %v, want %v", e.name, got, e.tok)
		}
		if !e.tok.IsKeyword() {
			t.Errorf("%q resolves to non-keyword token %v", e.name, e.tok)
		}
	}
}

func TestTokenClasses(t *testing.T) {
	if !IDENT.IsLiteral() || !STRING.IsLiteral() || !PARAM.IsLiteral() {
		t.Error("expected literal class")
	}
	if !PLUS.IsOperator() || !DCOLON.IsOperator() || !CUSTOMOP.IsOperator() {
		t.Error("expected operator class")
	}
	if !SELECT.IsKeyword() || !ELSEIF.IsKeyword() {
		t.Error("expected keyword class")
	}
	if SELECT.IsOperator() || PLUS.IsKeyword() {
		t.Error("class overlap")
	}
	if !STRING.IsStringLiteral() || !DOLLARSTRING.IsStringLiteral() {
		t.Error("expected string literal class")
	}
	if HEX.IsStringLiteral() {
		t.Error("HEX is not a quoted string variant")
	}
}

func TestTokenNames(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{SELECT, "SELECT"},
		{MATCH_CONDITION, "MATCH_CONDITION"},
		{EQ, "="},
		{NEQ, "<>"},
		{DCOLON, "::"},
		{NOTDTILDESTAR, "!~~*"},
		{SPACESHIP, "<=>"},
		{EOF, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestItemEqualIgnoresPos(t *testing.T) {
	a := Item{Type: IDENT, Value: "x", Quote: '"', Pos: Pos{Line: 1, Column: 1}}
	b := Item{Type: IDENT, Value: "x", Quote: '"', Pos: Pos{Line: 9, Column: 9}}
	if !a.Equal(b) {
		t.Error("Equal should ignore Pos")
	}
	c := Item{Type: IDENT, Value: "x"}
	if a.Equal(c) {
		t.Error("Equal must include quote style")
	}
	d := Item{Type: INT, Value: "1", Long: true}
	e := Item{Type: INT, Value: "1"}
	if d.Equal(e) {
		t.Error("Equal must include the Long flag")
	}
}
