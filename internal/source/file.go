package source

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// ErrTooLarge is returned for content whose offsets do not fit in uint32.
var ErrTooLarge = errors.New("source exceeds 4 GiB")

func checkSize(name string, n int) error {
	if _, err := safecast.Conv[uint32](n); err != nil {
		return fmt.Errorf("source %q: %w", name, ErrTooLarge)
	}
	return nil
}

// Open wraps content into a File and builds its line index.
// Content is not copied; callers must not mutate it afterwards.
func Open(name string, content []byte) (*File, error) {
	if err := checkSize(name, len(content)); err != nil {
		return nil, err
	}
	return &File{
		Name:    name,
		Content: content,
		LineIdx: buildLineIndex(content),
	}, nil
}

// NewFile is Open for content known to be small; it panics otherwise.
func NewFile(name string, content []byte) *File {
	f, err := Open(name, content)
	if err != nil {
		panic(err)
	}
	return f
}

// Len returns the content length as an offset.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}

// Resolve converts a span into line and column positions.
func (f *File) Resolve(span Span) (start, end LineCol) {
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// PosAt resolves a byte offset into a Pos.
func (f *File) PosAt(off uint32) Pos {
	lc := toLineCol(f.LineIdx, off)
	return Pos{Offset: off, Line: lc.Line, Col: lc.Col}
}

// GetLine возвращает строку с заданным номером (1-based) из файла.
// Если строка не существует, возвращает пустую строку.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	var start, end uint32
	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent := f.Len()

	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start > lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	// \r\n: хвостовой \r не относится к содержимому строки
	if end > start && f.Content[end-1] == '\r' {
		end--
	}

	return string(f.Content[start:end])
}
