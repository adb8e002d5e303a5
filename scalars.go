package tjs

import (
	"math"
)

// Scalar accessors. Each one is a small Visitor, so they report mismatches
// exactly like user visitors do.

type boolVisitor struct {
	RejectAll
	out bool
}

func (*boolVisitor) Expecting() string        { return "bool" }
func (v *boolVisitor) VisitBool(b bool) error { v.out = b; return nil }

// Bool decodes a bool.
func (d *Decoder) Bool() (bool, error) {
	var v boolVisitor
	err := d.Visit(&v)
	return v.out, err
}

type intVisitor struct {
	RejectAll
	out int64
}

func (*intVisitor) Expecting() string        { return "integer" }
func (v *intVisitor) VisitInt(i int64) error { v.out = i; return nil }

// Int64 decodes an integer. Reals are not truncated.
func (d *Decoder) Int64() (int64, error) {
	var v intVisitor
	err := d.Visit(&v)
	return v.out, err
}

type uintVisitor struct {
	RejectAll
	d   *Decoder
	out uint64
}

func (*uintVisitor) Expecting() string { return "unsigned integer" }

func (v *uintVisitor) VisitInt(i int64) error {
	if i < 0 {
		return v.d.overflow("uint64", describe(v.d.v))
	}
	v.out = uint64(i)
	return nil
}

// Значения больше MaxInt64 сериализуются как Real; принимаем их обратно,
// если они целые и помещаются в uint64.
func (v *uintVisitor) VisitReal(f float64) error {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return errRejected
	}
	if f < 0 || f > 1<<64 {
		return v.d.overflow("uint64", "real "+formatReal(f))
	}
	// 2^64 это float64(MaxUint64)
	if f == 1<<64 {
		v.out = math.MaxUint64
		return nil
	}
	v.out = uint64(f)
	return nil
}

// Uint64 decodes a non-negative integer. An integral Real in the uint64
// range is accepted too, since Encoder.Uint writes values above MaxInt64
// as reals. Such reals carry 53 bits of precision, so the real 2^64 that
// Encoder.Uint(math.MaxUint64) writes decodes back to math.MaxUint64.
func (d *Decoder) Uint64() (uint64, error) {
	v := uintVisitor{d: d}
	err := d.Visit(&v)
	return v.out, err
}

type floatVisitor struct {
	RejectAll
	out float64
}

func (*floatVisitor) Expecting() string           { return "real" }
func (v *floatVisitor) VisitReal(f float64) error { v.out = f; return nil }
func (v *floatVisitor) VisitInt(i int64) error    { v.out = float64(i); return nil }

// Float64 decodes a real; integers widen.
func (d *Decoder) Float64() (float64, error) {
	var v floatVisitor
	err := d.Visit(&v)
	return v.out, err
}

type strVisitor struct {
	RejectAll
	out string
}

func (*strVisitor) Expecting() string         { return "string" }
func (v *strVisitor) VisitStr(s string) error { v.out = s; return nil }

// String decodes a string.
func (d *Decoder) String() (string, error) {
	var v strVisitor
	err := d.Visit(&v)
	return v.out, err
}

type bytesVisitor struct {
	RejectAll
	out []byte
}

func (*bytesVisitor) Expecting() string           { return "octet" }
func (v *bytesVisitor) VisitOctet(b []byte) error { v.out = b; return nil }
func (v *bytesVisitor) VisitStr(s string) error   { v.out = []byte(s); return nil }

// Bytes decodes an octet; strings are accepted as their UTF-8 bytes.
func (d *Decoder) Bytes() ([]byte, error) {
	var v bytesVisitor
	err := d.Visit(&v)
	return v.out, err
}
