package tjs

import (
	"errors"
	"fmt"
	"io"

	"tjs/internal/diag"
	"tjs/internal/diagfmt"
	"tjs/internal/source"
)

// defaultDiagnosticsLimit caps a Diagnostics created with a non-positive max.
const defaultDiagnosticsLimit = 64

// FormatOptions controls human-readable output.
type FormatOptions struct {
	// Color enables ANSI colours regardless of the terminal.
	Color bool
	// Basename prints only the last element of the input name.
	Basename bool
	// Notes adds related locations, e.g. where a duplicate key first
	// appeared.
	Notes bool
}

func (o FormatOptions) pretty() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{Color: o.Color, PathMode: pathMode(o.Basename), ShowNotes: o.Notes}
}

// JSONOptions controls machine-readable output.
type JSONOptions struct {
	// Positions adds line and column next to byte offsets.
	Positions bool
	Basename  bool
	// Max limits the number of diagnostics written; 0 writes all.
	Max   int
	Notes bool
}

func (o JSONOptions) json() diagfmt.JSONOpts {
	return diagfmt.JSONOpts{IncludePositions: o.Positions, PathMode: pathMode(o.Basename), Max: o.Max, IncludeNotes: o.Notes}
}

func pathMode(basename bool) diagfmt.PathMode {
	if basename {
		return diagfmt.PathModeBasename
	}
	return diagfmt.PathModeAsIs
}

// Diagnostics collects the findings of one parse. It is filled through
// WithDiagnostics and is not safe for concurrent parses.
type Diagnostics struct {
	max  int
	bag  *diag.Bag
	file *source.File
}

// NewDiagnostics returns a collector keeping at most max entries.
func NewDiagnostics(max int) *Diagnostics {
	if max <= 0 {
		max = defaultDiagnosticsLimit
	}
	return &Diagnostics{max: max, bag: diag.NewBag(max)}
}

func (d *Diagnostics) reset(f *source.File) diag.Reporter {
	if d.max <= 0 {
		d.max = defaultDiagnosticsLimit
	}
	d.bag = diag.NewBag(d.max)
	d.file = f
	return diag.BagReporter{Bag: d.bag}
}

// Len returns the number of collected diagnostics.
func (d *Diagnostics) Len() int {
	if d.bag == nil {
		return 0
	}
	return d.bag.Len()
}

// HasErrors reports whether an error, not just warnings, was collected.
func (d *Diagnostics) HasErrors() bool {
	return d.bag != nil && d.bag.HasErrors()
}

// Pretty writes every diagnostic with a source excerpt.
//
//	doc.tjs:1:17: warning[SYN2005]: duplicate key "a" replaces earlier value
//	 1 | %["a"=>1,"b"=>2,"a"=>3]
//	   |                 ^~~
//	  note: doc.tjs:1:3: first defined here
func (d *Diagnostics) Pretty(w io.Writer, opts FormatOptions) error {
	if d.bag == nil {
		return nil
	}
	return diagfmt.Pretty(w, d.bag, d.file, opts.pretty())
}

// JSON writes the diagnostics as an indented JSON document.
func (d *Diagnostics) JSON(w io.Writer, opts JSONOptions) error {
	bag := d.bag
	if bag == nil {
		bag = diag.NewBag(0)
	}
	return diagfmt.JSON(w, bag, d.file, opts.json())
}

// FormatError writes a human-readable report of err. name labels the
// input; src is the text that was parsed, used for the excerpt under lexical
// and syntax errors. Errors of other types are printed as "name: err".
//
//	input.tjs:1:4: error[SYN2001]: expected ',' or ']', found integer 2
//	 1 | [1 2]
//	   |    ^
func FormatError(w io.Writer, err error, name string, src []byte, opts FormatOptions) error {
	if err == nil {
		return nil
	}
	d, ok := toDiagnostic(err)
	if !ok {
		_, werr := fmt.Fprintf(w, "%s: %v\n", displayName(name), err)
		return werr
	}
	return diagfmt.PrettyOne(w, d, fileFor(name, src), opts.pretty())
}

// FormatErrorJSON writes err as a one-entry JSON diagnostics document.
// Errors of other types get the generic code E0000.
func FormatErrorJSON(w io.Writer, err error, name string, src []byte, opts JSONOptions) error {
	if err == nil {
		return nil
	}
	d, ok := toDiagnostic(err)
	if !ok {
		d = diag.NewDetached(diag.SevError, diag.UnknownCode, err.Error())
	}
	bag := diag.NewBag(1)
	bag.Add(d)
	return diagfmt.JSON(w, bag, fileFor(name, src), opts.json())
}

// fileFor falls back to a content-less file when src cannot be indexed.
func fileFor(name string, src []byte) *source.File {
	f, err := source.Open(name, src)
	if err != nil {
		return source.NewFile(name, nil)
	}
	return f
}

func toDiagnostic(err error) (diag.Diagnostic, bool) {
	var lerr *LexError
	if errors.As(err, &lerr) {
		return diag.NewError(lerr.Code(), lerr.Span, lerr.Msg), true
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		d := diag.NewError(perr.Code(), perr.Span, perr.Message())
		for _, n := range perr.Notes {
			d = d.WithNote(n.Span, n.Msg)
		}
		return d, true
	}
	var derr *DeserializeError
	if errors.As(err, &derr) {
		msg := derr.Message()
		if derr.Path != "" {
			msg = derr.Path + ": " + msg
		}
		return diag.NewDetached(diag.SevError, derr.Code(), msg), true
	}
	return diag.Diagnostic{}, false
}

func displayName(name string) string {
	if name == "" {
		return "<input>"
	}
	return name
}
