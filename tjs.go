package tjs

import (
	"io"

	"tjs/internal/parser"
	"tjs/internal/render"
	"tjs/internal/source"
	"tjs/value"
)

// Parse reads exactly one TJS2 value from data. Errors are *LexError or
// *ParseError, or ErrInputTooLarge for inputs of 4 GiB and more.
func Parse(data []byte, opts ...Option) (value.Value, error) {
	return parseData(data, newSettings(opts))
}

// ParseString is Parse for a string.
func ParseString(s string, opts ...Option) (value.Value, error) {
	return Parse([]byte(s), opts...)
}

func parseData(data []byte, s *settings) (value.Value, error) {
	f, err := source.Open(s.name, data)
	if err != nil {
		return value.Value{}, err
	}
	popts := s.parse
	if s.diags != nil {
		popts.Reporter = s.diags.reset(f)
	}
	return parser.Parse(f, popts)
}

// Render returns the canonical text of v.
func Render(v value.Value) string {
	return render.String(v)
}

// AppendRender appends the canonical text of v to dst.
func AppendRender(dst []byte, v value.Value) []byte {
	return render.Append(dst, v)
}

// RenderTo writes the canonical text of v to w.
func RenderTo(w io.Writer, v value.Value) error {
	rw := render.NewStream(w)
	value.Walk(v, rw)
	return rw.Flush()
}

// Unmarshal parses data and decodes it into u.
func Unmarshal(data []byte, u Unmarshaler, opts ...Option) error {
	s := newSettings(opts)
	v, err := parseData(data, s)
	if err != nil {
		return err
	}
	return newDecoder(v, s).Decode(u)
}

// UnmarshalString is Unmarshal for a string.
func UnmarshalString(str string, u Unmarshaler, opts ...Option) error {
	return Unmarshal([]byte(str), u, opts...)
}

// DecodeValue decodes an already parsed tree into u.
func DecodeValue(v value.Value, u Unmarshaler, opts ...Option) error {
	return newDecoder(v, newSettings(opts)).Decode(u)
}

// NewDecoder returns a decoder positioned at the root of v.
func NewDecoder(v value.Value, opts ...Option) *Decoder {
	return newDecoder(v, newSettings(opts))
}

// MarshalValue builds the generic tree m describes. Repeated keys collapse
// with the last-write-wins rule. A Marshaler that writes nothing yields void.
func MarshalValue(m Marshaler) value.Value {
	b := value.NewBuilder()
	NewEncoder(b).Encode(m)
	v, ok := b.Result()
	if !ok {
		return value.Void()
	}
	return v
}

// Marshal returns the canonical text of m.
func Marshal(m Marshaler) []byte {
	return render.Append(nil, MarshalValue(m))
}

// MarshalString is Marshal returning a string.
func MarshalString(m Marshaler) string {
	return string(Marshal(m))
}
