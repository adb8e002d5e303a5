package value

// DictBuilder accumulates dict entries with the last-write-wins rule.
// The zero value is ready to use.
type DictBuilder struct {
	pairs []Pair
	index map[string]int
}

func NewDictBuilder(capHint int) *DictBuilder {
	return &DictBuilder{
		pairs: make([]Pair, 0, capHint),
		index: make(map[string]int, capHint),
	}
}

// Set inserts or replaces key. An existing key keeps its position.
// replaced reports whether the key was already present.
func (b *DictBuilder) Set(key string, v Value) (replaced bool) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[key]; ok {
		b.pairs[i].Value = v
		return true
	}
	b.index[key] = len(b.pairs)
	b.pairs = append(b.pairs, Pair{Key: key, Value: v})
	return false
}

func (b *DictBuilder) Has(key string) bool {
	_, ok := b.index[key]
	return ok
}

func (b *DictBuilder) Len() int { return len(b.pairs) }

// Build returns the dict and resets the builder.
func (b *DictBuilder) Build() Value {
	d := &dict{pairs: b.pairs, index: b.index}
	if d.index == nil {
		d.index = map[string]int{}
	}
	b.pairs, b.index = nil, nil
	return Value{kind: KindDict, dict: d}
}
