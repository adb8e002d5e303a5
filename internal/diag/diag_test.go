package diag_test

import (
	"testing"

	"tjs/internal/diag"
	"tjs/internal/source"
)

func TestCodeID(t *testing.T) {
	cases := map[diag.Code]string{
		diag.LexUnterminatedString: "LEX1002",
		diag.SynExpectKey:          "SYN2002",
		diag.DesMissingField:       "DES3002",
		diag.UnknownCode:           "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("Code(%d).ID() = %q, want %q", code, got, want)
		}
	}
}

func TestCodeTitleFallback(t *testing.T) {
	if got := diag.Code(1999).Title(); got != "Unknown error" {
		t.Fatalf("unexpected fallback title %q", got)
	}
	if got := diag.SynTrailingData.String(); got != "[SYN2004]: Trailing data after value" {
		t.Fatalf("unexpected String() %q", got)
	}
}

func TestBagReporterRespectsLimit(t *testing.T) {
	bag := diag.NewBag(2)
	r := diag.BagReporter{Bag: bag}
	for i := range 3 {
		r.Report(diag.SynDuplicateKey, diag.SevWarning, source.Span{Start: uint32(i), End: uint32(i + 1)}, "dup", nil)
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
	if bag.HasErrors() {
		t.Fatalf("warnings must not count as errors")
	}
	bag.Add(diag.NewDetached(diag.SevError, diag.DesTypeMismatch, "boom"))
	if bag.HasErrors() {
		t.Fatalf("add past the limit must be dropped")
	}
}

func TestWithNote(t *testing.T) {
	d := diag.NewError(diag.SynUnexpectedToken, source.Span{Start: 1, End: 2}, "unexpected ']'")
	d = d.WithNote(source.Span{Start: 0, End: 1}, "array opened here")
	if len(d.Notes) != 1 || !d.HasSpan {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Severity.Label() != "error" {
		t.Fatalf("label = %q", d.Severity.Label())
	}
}

func TestReportBuilder(t *testing.T) {
	bag := diag.NewBag(4)
	r := diag.BagReporter{Bag: bag}
	b := diag.ReportWarning(r, diag.SynDuplicateKey, source.Span{Start: 9, End: 12}, "duplicate key \"a\"").
		WithNote(source.Span{Start: 2, End: 5}, "first defined here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Emit must report once, got %d", bag.Len())
	}
	got := bag.Items()[0]
	if got.Severity != diag.SevWarning || len(got.Notes) != 1 || got.Notes[0].Span.Start != 2 {
		t.Fatalf("unexpected diagnostic %+v", got)
	}
	diag.ReportError(nil, diag.SynExpectKey, source.Span{}, "x").Emit()
}
