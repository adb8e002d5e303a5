package value

import (
	"iter"
	"math"
)

// Kind discriminates the variant held by a Value.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBool
	KindInt
	KindReal
	KindStr
	KindOctet
	KindArray
	KindDict
)

var kindNames = [...]string{
	KindVoid:  "void",
	KindBool:  "bool",
	KindInt:   "int",
	KindReal:  "real",
	KindStr:   "string",
	KindOctet: "octet",
	KindArray: "array",
	KindDict:  "dict",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a node of the tree. Copying a Value is cheap; children are shared
// and never mutated.
type Value struct {
	kind  Kind
	bits  uint64  // Bool, Int, Real
	str   string  // Str, Octet
	items []Value // Array
	dict  *dict   // Dict
}

type dict struct {
	pairs []Pair
	index map[string]int
}

// Pair is one dictionary entry.
type Pair struct {
	Key   string
	Value Value
}

func Void() Value { return Value{} }

func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.bits = 1
	}
	return v
}

func Int(i int64) Value { return Value{kind: KindInt, bits: uint64(i)} } //nolint:gosec // bit pattern storage

func Real(f float64) Value { return Value{kind: KindReal, bits: math.Float64bits(f)} }

func Str(s string) Value { return Value{kind: KindStr, str: s} }

// Octet copies b.
func Octet(b []byte) Value { return Value{kind: KindOctet, str: string(b)} }

// Array takes ownership of items; callers must not modify the slice afterwards.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

// Object builds a Dict from pairs. Repeated keys follow the last-write-wins
// rule.
func Object(pairs ...Pair) Value {
	b := NewDictBuilder(len(pairs))
	for _, p := range pairs {
		b.Set(p.Key, p.Value)
	}
	return b.Build()
}

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsVoid() bool  { return v.kind == KindVoid }
func (v Value) IsArray() bool { return v.kind == KindArray }
func (v Value) IsDict() bool  { return v.kind == KindDict }

func (v Value) AsBool() (bool, bool) {
	return v.bits != 0, v.kind == KindBool
}

func (v Value) AsInt() (int64, bool) {
	return int64(v.bits), v.kind == KindInt //nolint:gosec // bit pattern storage
}

func (v Value) AsReal() (float64, bool) {
	if v.kind != KindReal {
		return 0, false
	}
	return math.Float64frombits(v.bits), true
}

func (v Value) AsStr() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.str, true
}

// AsOctet returns a copy of the octet bytes.
func (v Value) AsOctet() ([]byte, bool) {
	if v.kind != KindOctet {
		return nil, false
	}
	return []byte(v.str), true
}

// OctetString returns the octet bytes without copying.
func (v Value) OctetString() (string, bool) {
	if v.kind != KindOctet {
		return "", false
	}
	return v.str, true
}

// Len returns the number of array elements or dict entries; 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindDict:
		return len(v.dict.pairs)
	default:
		return 0
	}
}

// Index returns the i-th array element. It panics when v is not an array or
// i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindArray {
		panic("value: Index on " + v.kind.String())
	}
	return v.items[i]
}

// PairAt returns the i-th dict entry in insertion order.
func (v Value) PairAt(i int) Pair {
	if v.kind != KindDict {
		panic("value: PairAt on " + v.kind.String())
	}
	return v.dict.pairs[i]
}

// Get looks a key up in a dict. Non-dicts report false.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindDict {
		return Value{}, false
	}
	i, ok := v.dict.index[key]
	if !ok {
		return Value{}, false
	}
	return v.dict.pairs[i].Value, true
}

// Items iterates array elements.
func (v Value) Items() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if v.kind != KindArray {
			return
		}
		for i, it := range v.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Pairs iterates dict entries in insertion order.
func (v Value) Pairs() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v.kind != KindDict {
			return
		}
		for _, p := range v.dict.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
