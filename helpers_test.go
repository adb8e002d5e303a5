package tjs_test

import (
	"tjs"
)

type Person struct {
	Name   string
	Age    uint8
	Phones []string
}

func (p *Person) UnmarshalTJS(d *tjs.Decoder) error {
	return d.Record(
		tjs.Required("name", tjs.String(&p.Name)),
		tjs.Required("age", tjs.Uint(&p.Age)),
		tjs.Required("phones", tjs.Slice(&p.Phones, tjs.String)),
	)
}

func (p Person) MarshalTJS(e *tjs.Encoder) {
	e.Dict(func(m *tjs.DictEncoder) {
		m.Field("name").Str(p.Name)
		m.Field("age").Int(int64(p.Age))
		tjs.EncodeSlice(m.Field("phones"), p.Phones, (*tjs.Encoder).Str)
	})
}

type Address struct {
	Street string
	Zip    *int32
}

func (a *Address) UnmarshalTJS(d *tjs.Decoder) error {
	return d.Record(
		tjs.Required("street", tjs.String(&a.Street)),
		tjs.Optional("zip", tjs.Ptr(&a.Zip, tjs.Int[int32])),
	)
}

func (a Address) MarshalTJS(e *tjs.Encoder) {
	e.Dict(func(m *tjs.DictEncoder) {
		m.Field("street").Str(a.Street)
		tjs.EncodeOptional(m.Field("zip"), a.Zip, func(e *tjs.Encoder, z int32) { e.Int(int64(z)) })
	})
}

type Company struct {
	Name    string
	Owner   Person
	Offices map[string]Address
	Ratio   float32
	Logo    []byte
	Active  bool
}

func (c *Company) UnmarshalTJS(d *tjs.Decoder) error {
	return d.Record(
		tjs.Required("name", tjs.String(&c.Name)),
		tjs.Required("owner", tjs.With(&c.Owner)),
		tjs.Optional("offices", tjs.Map(&c.Offices, func(a *Address) tjs.DecodeFunc { return tjs.With(a) })),
		tjs.Optional("ratio", tjs.Float(&c.Ratio)),
		tjs.Optional("logo", tjs.Bytes(&c.Logo)),
		tjs.Optional("active", tjs.Bool(&c.Active)),
	)
}

func (c Company) MarshalTJS(e *tjs.Encoder) {
	e.Dict(func(m *tjs.DictEncoder) {
		m.Field("name").Str(c.Name)
		m.Field("owner").Encode(c.Owner)
		tjs.EncodeMap(m.Field("offices"), c.Offices, func(e *tjs.Encoder, a Address) { e.Encode(a) })
		m.Field("ratio").Real(float64(c.Ratio))
		m.Field("logo").Octet(c.Logo)
		m.Field("active").Bool(c.Active)
	})
}
