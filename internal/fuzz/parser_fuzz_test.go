package fuzztests

import (
	"context"
	"testing"
	"time"

	"tjs/internal/diag"
	"tjs/internal/parser"
	"tjs/internal/render"
	"tjs/internal/source"
	"tjs/value"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

// FuzzParserNoHang tests that the parser terminates on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("[" + string(make([]byte, 100)) + "]"))
	f.Add([]byte(`%["k"=>`))
	f.Add([]byte(`const const const`))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			file := source.NewFile("fuzz.tjs", input)
			bag := diag.NewBag(128)
			_, _ = parser.Parse(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzRenderRoundTrip checks that every accepted document renders to text
// that parses back to the same value and renders identically again.
func FuzzRenderRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		v, err := parser.Parse(source.NewFile("fuzz.tjs", input), parser.Options{})
		if err != nil {
			return
		}
		out := render.String(v)
		back, err := parser.Parse(source.NewFile("render.tjs", []byte(out)), parser.Options{})
		if err != nil {
			t.Fatalf("canonical output does not parse: %v\n%s", err, out)
		}
		if !value.Equal(v, back) {
			t.Fatalf("round trip changed value:\n%s\n%s", out, render.String(back))
		}
		if again := render.String(back); again != out {
			t.Fatalf("output is not stable:\n%s\n%s", out, again)
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], "..."...)
}
