package token

import (
	"math"
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"const": KwConst,
		"true":  KwTrue,
		"false": KwFalse,
		"void":  KwVoid,
		"null":  KwNull,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// регистр важен
	notKw := []string{"Const", "TRUE", "Void", "nil", "undefined", "NaN"}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestLookupReal(t *testing.T) {
	if f, ok := LookupReal("NaN"); !ok || !math.IsNaN(f) {
		t.Fatalf("NaN lookup failed: %v %v", f, ok)
	}
	if f, ok := LookupReal("Infinity"); !ok || !math.IsInf(f, 1) {
		t.Fatalf("Infinity lookup failed: %v %v", f, ok)
	}
	if _, ok := LookupReal("infinity"); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
}
