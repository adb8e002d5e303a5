package value

// Sink receives a value as a stream of events. Inside a dict every value
// event must be preceded by Key. Containers are closed by End.
type Sink interface {
	Void()
	Bool(b bool)
	Int(i int64)
	Real(f float64)
	Str(s string)
	Octet(b []byte)
	BeginArray()
	BeginDict()
	Key(k string)
	End()
}

type frame struct {
	dict   bool
	items  []Value
	pairs  DictBuilder
	key    string
	hasKey bool
}

// Builder assembles a tree from Sink events. Misuse (a value without a key
// inside a dict, End without Begin, a second root) is a programming error
// and panics.
type Builder struct {
	stack []frame
	root  Value
	done  bool

	// OnReplace is called when a dict key is written twice; optional.
	OnReplace func(key string)
}

var _ Sink = (*Builder)(nil)

func NewBuilder() *Builder { return &Builder{} }

// Result returns the finished root. ok is false until a complete value has
// been received.
func (b *Builder) Result() (Value, bool) {
	return b.root, b.done
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.stack = b.stack[:0]
	b.root = Value{}
	b.done = false
}

func (b *Builder) Void()          { b.put(Void()) }
func (b *Builder) Bool(v bool)    { b.put(Bool(v)) }
func (b *Builder) Int(v int64)    { b.put(Int(v)) }
func (b *Builder) Real(v float64) { b.put(Real(v)) }
func (b *Builder) Str(v string)   { b.put(Str(v)) }
func (b *Builder) Octet(v []byte) { b.put(Octet(v)) }

func (b *Builder) BeginArray() {
	b.checkSlot()
	b.stack = append(b.stack, frame{})
}

func (b *Builder) BeginDict() {
	b.checkSlot()
	b.stack = append(b.stack, frame{dict: true})
}

func (b *Builder) Key(k string) {
	top := b.top()
	if top == nil || !top.dict {
		panic("value: Key outside of a dict")
	}
	if top.hasKey {
		panic("value: Key " + k + " follows key " + top.key + " without a value")
	}
	top.key, top.hasKey = k, true
}

func (b *Builder) End() {
	top := b.top()
	if top == nil {
		panic("value: End without Begin")
	}
	if top.hasKey {
		panic("value: End after dangling key " + top.key)
	}
	var v Value
	if top.dict {
		v = top.pairs.Build()
	} else {
		v = Array(top.items...)
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.put(v)
}

func (b *Builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return &b.stack[len(b.stack)-1]
}

// checkSlot panics if no value may start at this point.
func (b *Builder) checkSlot() {
	top := b.top()
	switch {
	case top == nil && b.done:
		panic("value: second root value")
	case top != nil && top.dict && !top.hasKey:
		panic("value: dict value without Key")
	}
}

func (b *Builder) put(v Value) {
	b.checkSlot()
	top := b.top()
	switch {
	case top == nil:
		b.root, b.done = v, true
	case top.dict:
		if top.pairs.Set(top.key, v) && b.OnReplace != nil {
			b.OnReplace(top.key)
		}
		top.key, top.hasKey = "", false
	default:
		top.items = append(top.items, v)
	}
}

// Walk replays v into s.
func Walk(v Value, s Sink) {
	switch v.kind {
	case KindVoid:
		s.Void()
	case KindBool:
		s.Bool(v.bits != 0)
	case KindInt:
		i, _ := v.AsInt()
		s.Int(i)
	case KindReal:
		f, _ := v.AsReal()
		s.Real(f)
	case KindStr:
		s.Str(v.str)
	case KindOctet:
		s.Octet([]byte(v.str))
	case KindArray:
		s.BeginArray()
		for _, it := range v.items {
			Walk(it, s)
		}
		s.End()
	case KindDict:
		s.BeginDict()
		for _, p := range v.dict.pairs {
			s.Key(p.Key)
			Walk(p.Value, s)
		}
		s.End()
	}
}
