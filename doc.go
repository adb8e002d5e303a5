// Package tjs converts between TJS2 literal notation and Go values.
//
// TJS2 text such as
//
//	(const) %["name"=>"John Doe","age"=>43,"phones"=>(const)["+44 1234567"]]
//
// is parsed into a generic value.Value tree, which typed code consumes through
// a Decoder and the Visitor protocol. In the other direction a Marshaler
// describes itself to an Encoder, which feeds either a value.Builder or the
// canonical writer directly.
//
// Types opt in explicitly by implementing Unmarshaler and Marshaler; there is
// no reflection. Field helpers (Required, Optional, Int, String, Slice, ...)
// keep that glue short:
//
//	func (p *Person) UnmarshalTJS(d *tjs.Decoder) error {
//		return d.Record(
//			tjs.Required("name", tjs.String(&p.Name)),
//			tjs.Required("age", tjs.Uint(&p.Age)),
//			tjs.Optional("phones", tjs.Slice(&p.Phones, tjs.String)),
//		)
//	}
//
// Lexical and syntax errors carry byte offsets and line/column positions;
// decoding errors carry the path of the offending value (phones[1],
// owner.name). FormatError renders either kind for humans.
package tjs
