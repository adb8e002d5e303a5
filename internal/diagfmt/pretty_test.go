package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tjs/internal/diag"
	"tjs/internal/source"
)

func TestPrettyCaret(t *testing.T) {
	file := source.NewFile("data/test.tjs", []byte("[1, 2]\n[1 2]\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{Start: 10, End: 11}, "expected ',' or ']', found integer 2"))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, file, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "data/test.tjs:2:4: error[SYN2001]: expected ',' or ']', found integer 2\n" +
		" 2 | [1 2]\n" +
		"   |    ^\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	// «日本» занимает 4 колонки терминала (не 2 и не 6), весь префикс 9
	content := `["日本", @]`
	at := uint32(strings.Index(content, "@"))
	file := source.NewFile("wide.tjs", []byte(content))

	var buf bytes.Buffer
	d := diag.NewError(diag.LexUnknownChar, source.Span{Start: at, End: at + 1}, "unexpected character '@'")
	if err := PrettyOne(&buf, d, file, PrettyOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("short output: %q", buf.String())
	}
	if want := "   | " + strings.Repeat(" ", 9) + "^"; lines[2] != want {
		t.Fatalf("caret line = %q, want %q", lines[2], want)
	}
}

func TestPrettyUnderlineAndTabs(t *testing.T) {
	file := source.NewFile("t.tjs", []byte("\t\"abc"))
	d := diag.NewError(diag.LexUnterminatedString, source.Span{Start: 1, End: 5}, "string literal is not closed")
	var buf bytes.Buffer
	if err := PrettyOne(&buf, d, file, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "   | \t^~~~\n") {
		t.Fatalf("unexpected underline:\n%q", buf.String())
	}
}

func TestPrettyDetached(t *testing.T) {
	d := diag.NewDetached(diag.SevError, diag.DesMissingField, "missing field \"age\"")
	var buf bytes.Buffer
	if err := PrettyOne(&buf, d, nil, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "<input>: error[DES3002]: missing field \"age\"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrettyColor(t *testing.T) {
	file := source.NewFile("c.tjs", []byte("x"))
	d := diag.New(diag.SevWarning, diag.SynDuplicateKey, source.Span{Start: 0, End: 1}, "dup")
	var plain, colored bytes.Buffer
	if err := PrettyOne(&plain, d, file, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if err := PrettyOne(&colored, d, file, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output has escape codes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escape codes: %q", colored.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	file := source.NewFile("n.tjs", []byte(`%["a"=>1,"a"=>2]`))
	d := diag.NewError(diag.SynDuplicateKey, source.Span{Start: 9, End: 12}, "duplicate key \"a\"").
		WithNote(source.Span{Start: 2, End: 5}, "first defined here")
	var buf bytes.Buffer
	if err := PrettyOne(&buf, d, file, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "note: n.tjs:1:3: first defined here") {
		t.Fatalf("note missing:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	file := source.NewFile("j.tjs", []byte("[1 2]"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{Start: 3, End: 4}, "boom"))
	bag.Add(diag.NewDetached(diag.SevWarning, diag.DesUnknownField, "extra"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, file, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d", out.Count)
	}
	first := out.Diagnostics[0]
	if first.Code != "SYN2001" || first.Location == nil || first.Location.StartCol != 4 {
		t.Fatalf("first = %+v", first)
	}
	if out.Diagnostics[1].Location != nil {
		t.Fatalf("detached diagnostic must not have a location")
	}

	limited := BuildDiagnosticsOutput(bag, file, JSONOpts{Max: 1})
	if limited.Count != 1 || limited.Diagnostics[0].Location.StartLine != 0 {
		t.Fatalf("Max/IncludePositions not honored: %+v", limited)
	}
}
