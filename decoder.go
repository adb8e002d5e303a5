package tjs

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"tjs/value"
)

// Unmarshaler is implemented by types that can decode themselves.
type Unmarshaler interface {
	UnmarshalTJS(d *Decoder) error
}

// DecodeFunc decodes the value under d into some destination.
type DecodeFunc func(d *Decoder) error

// Decoder is a cursor over one node of a value tree. Child decoders keep a
// link to their parent so the path is only built when an error needs it.
type Decoder struct {
	v      value.Value
	parent *Decoder
	key    string
	index  int
	inDict bool
	opts   *settings
}

func newDecoder(v value.Value, s *settings) *Decoder {
	return &Decoder{v: v, opts: s}
}

func (d *Decoder) child(v value.Value, key string) *Decoder {
	return &Decoder{v: v, parent: d, key: key, inDict: true, opts: d.opts}
}

func (d *Decoder) elem(v value.Value, i int) *Decoder {
	return &Decoder{v: v, parent: d, index: i, opts: d.opts}
}

// Kind returns the kind of the current value.
func (d *Decoder) Kind() value.Kind { return d.v.Kind() }

// Value returns the current value as a generic tree.
func (d *Decoder) Value() value.Value { return d.v }

// IsVoid reports whether the current value is void.
func (d *Decoder) IsVoid() bool { return d.v.IsVoid() }

// Path returns the location of the current value: "" for the root,
// otherwise a chain such as owner.phones[1] or tags["two words"].
func (d *Decoder) Path() string {
	var segs []*Decoder
	for n := d; n.parent != nil; n = n.parent {
		segs = append(segs, n)
	}
	slices.Reverse(segs)

	var sb strings.Builder
	for _, s := range segs {
		switch {
		case !s.inDict:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(s.index))
			sb.WriteByte(']')
		case isPathIdent(s.key):
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s.key)
		default:
			sb.WriteByte('[')
			sb.WriteString(strconv.Quote(s.key))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

func isPathIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func (d *Decoder) logger() *slog.Logger {
	if d.opts == nil {
		return nil
	}
	return d.opts.logger
}

func (d *Decoder) mismatch(expected string) error {
	return &DeserializeError{Kind: TypeMismatch, Path: d.Path(), Expected: expected, Found: describe(d.v)}
}

func (d *Decoder) overflow(expected, found string) error {
	return &DeserializeError{Kind: NumericOverflow, Path: d.Path(), Expected: expected, Found: found}
}

// Fail wraps err as a Custom error located at the current value. Errors
// that already are *DeserializeError pass through unchanged.
func (d *Decoder) Fail(err error) error {
	if err == nil {
		return nil
	}
	var de *DeserializeError
	if errors.As(err, &de) {
		return err
	}
	return &DeserializeError{Kind: Custom, Path: d.Path(), Err: err}
}

// Failf is Fail with a formatted message.
func (d *Decoder) Failf(format string, args ...any) error {
	return d.Fail(fmt.Errorf(format, args...))
}

// describe names a value for "found ..." messages.
func describe(v value.Value) string {
	switch v.Kind() {
	case value.KindInt:
		i, _ := v.AsInt()
		return "int " + strconv.FormatInt(i, 10)
	case value.KindBool:
		b, _ := v.AsBool()
		return "bool " + strconv.FormatBool(b)
	default:
		return v.Kind().String()
	}
}

// Decode lets u decode the current value.
func (d *Decoder) Decode(u Unmarshaler) error {
	if u == nil {
		return nil
	}
	return d.Fail(u.UnmarshalTJS(d))
}

// Array calls fn for every element of an array.
func (d *Decoder) Array(fn func(i int, d *Decoder) error) error {
	if d.v.Kind() != value.KindArray {
		return d.mismatch("array")
	}
	for i, it := range d.v.Items() {
		ed := d.elem(it, i)
		if err := ed.Fail(fn(i, ed)); err != nil {
			return err
		}
	}
	return nil
}

// Dict calls fn for every entry of a dict in document order.
func (d *Decoder) Dict(fn func(key string, d *Decoder) error) error {
	if d.v.Kind() != value.KindDict {
		return d.mismatch("dict")
	}
	for k, it := range d.v.Pairs() {
		cd := d.child(it, k)
		if err := cd.Fail(fn(k, cd)); err != nil {
			return err
		}
	}
	return nil
}

// Variant decodes an enum value. A string is a unit variant and yields a
// nil payload decoder. A dict with exactly one entry is a variant carrying
// data: the key names it, the value is the payload. Anything else is a
// TypeMismatch.
func (d *Decoder) Variant() (name string, payload *Decoder, err error) {
	switch d.v.Kind() {
	case value.KindStr:
		name, _ = d.v.AsStr()
		return name, nil, nil
	case value.KindDict:
		if n := d.v.Len(); n != 1 {
			return "", nil, &DeserializeError{Kind: TypeMismatch, Path: d.Path(), Expected: "variant",
				Found: "dict with " + strconv.Itoa(n) + " entries"}
		}
		p := d.v.PairAt(0)
		return p.Key, d.child(p.Value, p.Key), nil
	}
	return "", nil, d.mismatch("variant")
}

// Field describes one named entry of a record.
type Field struct {
	Name     string
	Required bool
	Decode   DecodeFunc
}

// Required declares a field that must be present.
func Required(name string, fn DecodeFunc) Field {
	return Field{Name: name, Required: true, Decode: fn}
}

// Optional declares a field that may be absent; its destination is left
// untouched then.
func Optional(name string, fn DecodeFunc) Field {
	return Field{Name: name, Decode: fn}
}

// Record decodes a dict into named fields. Fields are processed in the given
// order. Keys without a field are ignored unless WithDisallowUnknownFields
// is set.
func (d *Decoder) Record(fields ...Field) error {
	if d.v.Kind() != value.KindDict {
		return d.mismatch("dict")
	}
	for _, f := range fields {
		v, ok := d.v.Get(f.Name)
		if !ok {
			if f.Required {
				return &DeserializeError{Kind: MissingField, Path: d.Path(), Field: f.Name}
			}
			continue
		}
		if f.Decode == nil {
			continue
		}
		cd := d.child(v, f.Name)
		if err := cd.Fail(f.Decode(cd)); err != nil {
			return err
		}
	}

	for k := range d.v.Pairs() {
		if slices.ContainsFunc(fields, func(f Field) bool { return f.Name == k }) {
			continue
		}
		if d.opts != nil && d.opts.disallowUnknown {
			return &DeserializeError{Kind: UnknownField, Path: d.Path(), Field: k}
		}
		if l := d.logger(); l != nil {
			l.Debug("ignoring unknown field", "path", d.Path(), "field", k)
		}
	}
	return nil
}
