package value

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Value <-> MessagePack. Dicts are written as maps in insertion order and
// read back in stream order, so the round trip preserves order. Void maps to
// nil and Octet to bin. Unsigned integers above MaxInt64 decode as Real.

var (
	_ msgpack.CustomEncoder = Value{}
	_ msgpack.CustomDecoder = (*Value)(nil)
)

func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch v.kind {
	case KindVoid:
		return enc.EncodeNil()
	case KindBool:
		return enc.EncodeBool(v.bits != 0)
	case KindInt:
		i, _ := v.AsInt()
		return enc.EncodeInt(i)
	case KindReal:
		f, _ := v.AsReal()
		return enc.EncodeFloat64(f)
	case KindStr:
		return enc.EncodeString(v.str)
	case KindOctet:
		// nil слайс кодируется как nil, поэтому пустой октет явно непустой слайс
		return enc.EncodeBytes(append([]byte{}, v.str...))
	case KindArray:
		if err := enc.EncodeArrayLen(len(v.items)); err != nil {
			return err
		}
		for _, it := range v.items {
			if err := it.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	case KindDict:
		if err := enc.EncodeMapLen(len(v.dict.pairs)); err != nil {
			return err
		}
		for _, p := range v.dict.pairs {
			if err := enc.EncodeString(p.Key); err != nil {
				return err
			}
			if err := p.Value.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("value: cannot encode kind %d", v.kind)
}

func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}

	switch {
	case c == msgpcode.Nil:
		*v = Void()
		return dec.DecodeNil()

	case c == msgpcode.False || c == msgpcode.True:
		b, err := dec.DecodeBool()
		*v = Bool(b)
		return err

	case c == msgpcode.Uint64:
		u, err := dec.DecodeUint64()
		if err != nil {
			return err
		}
		if i, err := safecast.Conv[int64](u); err == nil {
			*v = Int(i)
		} else {
			*v = Real(float64(u))
		}
		return nil

	case msgpcode.IsFixedNum(c),
		c == msgpcode.Int8, c == msgpcode.Int16, c == msgpcode.Int32, c == msgpcode.Int64,
		c == msgpcode.Uint8, c == msgpcode.Uint16, c == msgpcode.Uint32:
		i, err := dec.DecodeInt64()
		*v = Int(i)
		return err

	case c == msgpcode.Float || c == msgpcode.Double:
		f, err := dec.DecodeFloat64()
		*v = Real(f)
		return err

	case msgpcode.IsString(c):
		s, err := dec.DecodeString()
		*v = Str(s)
		return err

	case msgpcode.IsBin(c):
		b, err := dec.DecodeBytes()
		*v = Octet(b)
		return err

	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return err
		}
		items := make([]Value, n)
		for i := range items {
			if err := items[i].DecodeMsgpack(dec); err != nil {
				return err
			}
		}
		*v = Array(items...)
		return nil

	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return err
		}
		b := NewDictBuilder(n)
		for range n {
			kc, err := dec.PeekCode()
			if err != nil {
				return err
			}
			if !msgpcode.IsString(kc) {
				return fmt.Errorf("value: msgpack map key must be a string, got code 0x%02x", kc)
			}
			key, err := dec.DecodeString()
			if err != nil {
				return err
			}
			var item Value
			if err := item.DecodeMsgpack(dec); err != nil {
				return err
			}
			b.Set(key, item)
		}
		*v = b.Build()
		return nil
	}

	return fmt.Errorf("value: unsupported msgpack code 0x%02x", c)
}

// MarshalMsgpack encodes v as a standalone MessagePack document.
func MarshalMsgpack(v Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalMsgpack decodes a MessagePack document into a Value.
func UnmarshalMsgpack(data []byte) (Value, error) {
	var v Value
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&v); err != nil {
		return Value{}, err
	}
	return v, nil
}
