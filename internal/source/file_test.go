package source

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nxyz")
	f := NewFile("test.tjs", content)

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{name: "start of file", off: 0, want: LineCol{Line: 1, Col: 1}},
		{name: "second byte", off: 1, want: LineCol{Line: 1, Col: 2}},
		{name: "newline belongs to its line", off: 2, want: LineCol{Line: 1, Col: 3}},
		{name: "start of second line", off: 3, want: LineCol{Line: 2, Col: 1}},
		{name: "empty third line", off: 6, want: LineCol{Line: 3, Col: 1}},
		{name: "last line", off: 8, want: LineCol{Line: 4, Col: 2}},
		{name: "end of file", off: 10, want: LineCol{Line: 4, Col: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toLineCol(f.LineIdx, tt.off)
			if got != tt.want {
				t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestToLineColSingleLine(t *testing.T) {
	f := NewFile("one.tjs", []byte(`[1, 2]`))
	if got := f.PosAt(4); got != (Pos{Offset: 4, Line: 1, Col: 5}) {
		t.Fatalf("PosAt(4) = %+v", got)
	}
}

func TestGetLine(t *testing.T) {
	f := NewFile("lines.tjs", []byte("first\r\nsecond\nthird"))

	cases := map[uint32]string{
		0: "",
		1: "first",
		2: "second",
		3: "third",
		4: "",
	}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestResolve(t *testing.T) {
	f := NewFile("span.tjs", []byte("%[\n  \"a\" => 1\n]"))
	start, end := f.Resolve(Span{Start: 5, End: 8})
	if start != (LineCol{Line: 2, Col: 3}) {
		t.Errorf("start = %+v", start)
	}
	if end != (LineCol{Line: 2, Col: 6}) {
		t.Errorf("end = %+v", end)
	}
}

func TestOpenRejectsHugeContent(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	n := uint64(math.MaxUint32) + 1
	err := checkSize("big.tjs", int(n))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("checkSize(%d) = %v, want ErrTooLarge", n, err)
	}
	if err := checkSize("ok.tjs", int(n-1)); err != nil {
		t.Fatalf("checkSize(MaxUint32) = %v", err)
	}

	f, err := Open("small.tjs", []byte("[]"))
	if err != nil || f.Len() != 2 {
		t.Fatalf("Open = %v, %v", f, err)
	}
}
