package lexer

import (
	"testing"

	"tjs/internal/source"
)

func createFile(content string) *source.File {
	return source.NewFile("test.tjs", []byte(content))
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected zero bytes at EOF")
	}
}

func TestPeek2(t *testing.T) {
	cursor := NewCursor(createFile("=>"))
	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != '=' || b1 != '>' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatalf("Peek2 with one byte left must fail")
	}
}

func TestEatString(t *testing.T) {
	cursor := NewCursor(createFile("<%%>"))
	if cursor.EatString("%>") {
		t.Fatalf("EatString matched at wrong position")
	}
	if cursor.Off != 0 {
		t.Fatalf("failed EatString moved cursor to %d", cursor.Off)
	}
	if !cursor.EatString("<%") || !cursor.EatString("%>") {
		t.Fatalf("EatString failed on matching input")
	}
	if !cursor.EOF() {
		t.Fatalf("expected EOF")
	}
	if cursor.EatString("x") {
		t.Fatalf("EatString past EOF")
	}
}

func TestMarkSpanReset(t *testing.T) {
	cursor := NewCursor(createFile("hello"))
	cursor.Bump()
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	if sp := cursor.SpanFrom(m); sp.Start != 1 || sp.End != 3 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 1 {
		t.Fatalf("Reset: off = %d", cursor.Off)
	}
	if !cursor.Eat('e') || cursor.Eat('x') {
		t.Fatalf("Eat mismatch")
	}
}
