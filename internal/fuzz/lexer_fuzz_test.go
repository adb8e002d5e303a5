package fuzztests

import (
	"testing"

	"tjs/internal/diag"
	"tjs/internal/lexer"
	"tjs/internal/source"
	"tjs/internal/testkit"
	"tjs/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		file := source.NewFile("fuzz.tjs", input)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

		var toks []token.Token
		for tok := range lx.Tokens() {
			if tok.Kind == token.Invalid {
				if lx.Err() == nil {
					t.Fatalf("invalid token without error at %v", tok.Span)
				}
				break
			}
			toks = append(toks, tok)
		}
		if err := testkit.CheckTokenSpans(file, toks); err != nil {
			t.Fatal(err)
		}
		if lx.Err() != nil && !bag.HasErrors() {
			t.Fatalf("lexer error %v was not reported", lx.Err())
		}
	})
}
