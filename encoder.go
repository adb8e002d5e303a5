package tjs

import (
	"cmp"
	"io"
	"slices"

	"fortio.org/safecast"

	"tjs/internal/render"
	"tjs/value"
)

// Marshaler is implemented by types that can describe themselves to an
// Encoder. Encoding cannot fail; errors only arise in the output sink.
type Marshaler interface {
	MarshalTJS(e *Encoder)
}

// Encoder turns method calls into value.Sink events. Every call writes
// exactly one value, so inside Array and Dict callbacks each Elem or Field
// must be followed by one Encoder call.
type Encoder struct {
	sink value.Sink
}

// NewEncoder wraps an arbitrary sink.
func NewEncoder(s value.Sink) *Encoder {
	return &Encoder{sink: s}
}

func (e *Encoder) Void()          { e.sink.Void() }
func (e *Encoder) Bool(b bool)    { e.sink.Bool(b) }
func (e *Encoder) Int(i int64)    { e.sink.Int(i) }
func (e *Encoder) Real(f float64) { e.sink.Real(f) }
func (e *Encoder) Str(s string)   { e.sink.Str(s) }
func (e *Encoder) Octet(b []byte) { e.sink.Octet(b) }

// Uint writes u as Int when it fits in int64 and as Real otherwise.
func (e *Encoder) Uint(u uint64) {
	if i, err := safecast.Conv[int64](u); err == nil {
		e.sink.Int(i)
		return
	}
	e.sink.Real(float64(u))
}

// Value replays a generic tree.
func (e *Encoder) Value(v value.Value) { value.Walk(v, e.sink) }

// Encode lets m describe itself; a nil Marshaler writes void.
func (e *Encoder) Encode(m Marshaler) {
	if m == nil {
		e.sink.Void()
		return
	}
	m.MarshalTJS(e)
}

// Array writes an array whose elements fn produces through a.Elem().
func (e *Encoder) Array(fn func(a *ArrayEncoder)) {
	e.sink.BeginArray()
	fn(&ArrayEncoder{e: e})
	e.sink.End()
}

// Dict writes a dict whose entries fn produces through m.Field(key).
func (e *Encoder) Dict(fn func(m *DictEncoder)) {
	e.sink.BeginDict()
	fn(&DictEncoder{e: e})
	e.sink.End()
}

// Variant writes an enum value. With a nil fn the variant is a unit and is
// written as the string name; otherwise it becomes %[name=>payload].
func (e *Encoder) Variant(name string, fn func(e *Encoder)) {
	if fn == nil {
		e.sink.Str(name)
		return
	}
	e.sink.BeginDict()
	e.sink.Key(name)
	fn(e)
	e.sink.End()
}

type ArrayEncoder struct{ e *Encoder }

// Elem returns the encoder for the next element.
func (a *ArrayEncoder) Elem() *Encoder { return a.e }

type DictEncoder struct{ e *Encoder }

// Field starts the entry for key and returns the encoder for its value.
func (m *DictEncoder) Field(key string) *Encoder {
	m.e.sink.Key(key)
	return m.e
}

// EncodeSlice writes items as an array using fn for each element.
func EncodeSlice[T any](e *Encoder, items []T, fn func(*Encoder, T)) {
	e.Array(func(a *ArrayEncoder) {
		for _, it := range items {
			fn(a.Elem(), it)
		}
	})
}

// EncodeMap writes m as a dict with keys in ascending order, so output is
// deterministic.
func EncodeMap[T any](e *Encoder, m map[string]T, fn func(*Encoder, T)) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, cmp.Compare[string])
	e.Dict(func(d *DictEncoder) {
		for _, k := range keys {
			fn(d.Field(k), m[k])
		}
	})
}

// EncodeOptional writes *p with fn, or void when p is nil.
func EncodeOptional[T any](e *Encoder, p *T, fn func(*Encoder, T)) {
	if p == nil {
		e.Void()
		return
	}
	fn(e, *p)
}

// StreamEncoder writes canonical text straight to an io.Writer without
// building a tree. Keys are written as given; repeated keys are not
// collapsed.
type StreamEncoder struct {
	Encoder
	w *render.Writer
}

func NewStreamEncoder(w io.Writer) *StreamEncoder {
	rw := render.NewStream(w)
	return &StreamEncoder{Encoder: Encoder{sink: rw}, w: rw}
}

// Flush writes buffered output and reports the first write error.
func (s *StreamEncoder) Flush() error {
	return s.w.Flush()
}
