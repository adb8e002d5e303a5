package source

import "fmt"

// File holds a single input buffer together with its line index.
type File struct {
	Name    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n' in Content
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

// Pos is a fully resolved position: byte offset plus line and column.
type Pos struct {
	Offset uint32
	Line   uint32
	Col    uint32
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
