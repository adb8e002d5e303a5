package tjs

import (
	"errors"

	"tjs/value"
)

// Visitor receives the current value through exactly one Visit call chosen
// by its kind. Embed RejectAll and override only the variants you accept;
// the rest become TypeMismatch errors naming Expecting().
type Visitor interface {
	Expecting() string
	VisitVoid() error
	VisitBool(b bool) error
	VisitInt(i int64) error
	VisitReal(f float64) error
	VisitStr(s string) error
	VisitOctet(b []byte) error
	VisitArray(a *ArrayAccess) error
	VisitDict(m *DictAccess) error
}

var errRejected = errors.New("tjs: variant rejected")

// RejectAll rejects every variant.
type RejectAll struct{}

func (RejectAll) VisitVoid() error              { return errRejected }
func (RejectAll) VisitBool(bool) error          { return errRejected }
func (RejectAll) VisitInt(int64) error          { return errRejected }
func (RejectAll) VisitReal(float64) error       { return errRejected }
func (RejectAll) VisitStr(string) error         { return errRejected }
func (RejectAll) VisitOctet([]byte) error       { return errRejected }
func (RejectAll) VisitArray(*ArrayAccess) error { return errRejected }
func (RejectAll) VisitDict(*DictAccess) error   { return errRejected }

// Visit dispatches the current value to v.
func (d *Decoder) Visit(v Visitor) error {
	var err error
	switch d.v.Kind() {
	case value.KindVoid:
		err = v.VisitVoid()
	case value.KindBool:
		b, _ := d.v.AsBool()
		err = v.VisitBool(b)
	case value.KindInt:
		i, _ := d.v.AsInt()
		err = v.VisitInt(i)
	case value.KindReal:
		f, _ := d.v.AsReal()
		err = v.VisitReal(f)
	case value.KindStr:
		s, _ := d.v.AsStr()
		err = v.VisitStr(s)
	case value.KindOctet:
		b, _ := d.v.AsOctet()
		err = v.VisitOctet(b)
	case value.KindArray:
		err = v.VisitArray(&ArrayAccess{d: d})
	case value.KindDict:
		err = v.VisitDict(&DictAccess{d: d})
	}
	if errors.Is(err, errRejected) {
		return d.mismatch(v.Expecting())
	}
	return d.Fail(err)
}

// ArrayAccess walks the elements of an array being visited.
type ArrayAccess struct {
	d    *Decoder
	next int
}

func (a *ArrayAccess) Len() int { return a.d.v.Len() }

// Next returns a decoder for the next element, or false when exhausted.
func (a *ArrayAccess) Next() (*Decoder, bool) {
	if a.next >= a.d.v.Len() {
		return nil, false
	}
	i := a.next
	a.next++
	return a.d.elem(a.d.v.Index(i), i), true
}

// DictAccess walks the entries of a dict being visited.
type DictAccess struct {
	d    *Decoder
	next int
}

func (m *DictAccess) Len() int { return m.d.v.Len() }

// Next returns the next key and a decoder for its value in document order.
func (m *DictAccess) Next() (string, *Decoder, bool) {
	if m.next >= m.d.v.Len() {
		return "", nil, false
	}
	p := m.d.v.PairAt(m.next)
	m.next++
	return p.Key, m.d.child(p.Value, p.Key), true
}

// Get returns a decoder for key regardless of iteration state.
func (m *DictAccess) Get(key string) (*Decoder, bool) {
	v, ok := m.d.v.Get(key)
	if !ok {
		return nil, false
	}
	return m.d.child(v, key), true
}
