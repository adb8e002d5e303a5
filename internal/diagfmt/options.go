package diagfmt

// PathMode specifies how file names are displayed.
type PathMode uint8

const (
	// PathModeAsIs prints the name exactly as given.
	PathModeAsIs PathMode = iota
	// PathModeBasename prints only the last path element.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}
