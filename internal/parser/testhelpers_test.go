package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"tjs/internal/diag"
	"tjs/internal/parser"
	"tjs/internal/source"
	"tjs/value"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string, opts parser.Options) (value.Value, *diag.Bag, error) {
	t.Helper()
	bag := diag.NewBag(100)
	if opts.Reporter == nil {
		opts.Reporter = diag.BagReporter{Bag: bag}
	}
	v, err := parser.Parse(source.NewFile("test.tjs", []byte(input)), opts)
	return v, bag, err
}

func mustParse(t *testing.T, input string) value.Value {
	t.Helper()
	v, bag, err := parseSource(t, input, parser.Options{})
	if err != nil {
		t.Fatalf("parse %q: %v (diagnostics: %s)", input, err, diagnosticsSummary(bag))
	}
	return v
}
