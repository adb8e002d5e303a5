package tjs

import (
	"fmt"
	"math"
	"strconv"

	"fortio.org/safecast"

	"tjs/value"
)

// Field decoders. Each returns a DecodeFunc writing into dst, for use with
// Record, Slice, Map and Ptr.

// Int decodes a signed or unsigned integer of any width. Values outside
// the range of T are NumericOverflow errors.
func Int[T safecast.Integer](dst *T) DecodeFunc {
	return func(d *Decoder) error {
		i, err := d.Int64()
		if err != nil {
			return err
		}
		out, err := safecast.Conv[T](i)
		if err != nil {
			return d.overflow(typeName[T](), describe(d.v))
		}
		*dst = out
		return nil
	}
}

// Uint decodes a non-negative integer into T, accepting the full uint64
// range (see Decoder.Uint64).
func Uint[T safecast.Integer](dst *T) DecodeFunc {
	return func(d *Decoder) error {
		u, err := d.Uint64()
		if err != nil {
			return err
		}
		out, err := safecast.Conv[T](u)
		if err != nil {
			return d.overflow(typeName[T](), "int "+strconv.FormatUint(u, 10))
		}
		*dst = out
		return nil
	}
}

// Float decodes a real into float32 or float64. Finite values that would
// become infinite in T are NumericOverflow errors; precision loss is not.
func Float[T safecast.Float](dst *T) DecodeFunc {
	return func(d *Decoder) error {
		f, err := d.Float64()
		if err != nil {
			return err
		}
		out := T(f)
		if math.IsInf(float64(out), 0) && !math.IsInf(f, 0) {
			return d.overflow(typeName[T](), "real "+formatReal(f))
		}
		*dst = out
		return nil
	}
}

func String(dst *string) DecodeFunc {
	return func(d *Decoder) error {
		s, err := d.String()
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}
}

func Bool(dst *bool) DecodeFunc {
	return func(d *Decoder) error {
		b, err := d.Bool()
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func Bytes(dst *[]byte) DecodeFunc {
	return func(d *Decoder) error {
		b, err := d.Bytes()
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

// Raw stores the value as a generic tree.
func Raw(dst *value.Value) DecodeFunc {
	return func(d *Decoder) error {
		*dst = d.v
		return nil
	}
}

// With delegates to an Unmarshaler.
func With(u Unmarshaler) DecodeFunc {
	return func(d *Decoder) error {
		return d.Decode(u)
	}
}

// Slice decodes an array; elem builds the decoder for one element.
//
//	tjs.Slice(&p.Phones, tjs.String)
func Slice[T any](dst *[]T, elem func(*T) DecodeFunc) DecodeFunc {
	return func(d *Decoder) error {
		if d.Kind() != value.KindArray {
			return d.mismatch("array")
		}
		out := make([]T, d.v.Len())
		err := d.Array(func(i int, ed *Decoder) error {
			return elem(&out[i])(ed)
		})
		if err != nil {
			return err
		}
		*dst = out
		return nil
	}
}

// Map decodes a dict into a Go map keyed by the dict keys.
func Map[T any](dst *map[string]T, elem func(*T) DecodeFunc) DecodeFunc {
	return func(d *Decoder) error {
		if d.Kind() != value.KindDict {
			return d.mismatch("dict")
		}
		out := make(map[string]T, d.v.Len())
		err := d.Dict(func(key string, cd *Decoder) error {
			var item T
			if err := elem(&item)(cd); err != nil {
				return err
			}
			out[key] = item
			return nil
		})
		if err != nil {
			return err
		}
		*dst = out
		return nil
	}
}

// Ptr decodes into a freshly allocated T; void yields nil.
func Ptr[T any](dst **T, elem func(*T) DecodeFunc) DecodeFunc {
	return func(d *Decoder) error {
		if d.IsVoid() {
			*dst = nil
			return nil
		}
		p := new(T)
		if err := elem(p)(d); err != nil {
			return err
		}
		*dst = p
		return nil
	}
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func formatReal(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
