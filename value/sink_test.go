package value_test

import (
	"testing"

	"tjs/value"
)

func sample() value.Value {
	return value.Object(
		value.Pair{Key: "name", Value: value.Str("John Doe")},
		value.Pair{Key: "age", Value: value.Int(43)},
		value.Pair{Key: "phones", Value: value.Array(value.Str("+44 1234567"), value.Str("+44 2345678"))},
		value.Pair{Key: "blob", Value: value.Octet([]byte{0x0a, 0xff})},
		value.Pair{Key: "nested", Value: value.Object(
			value.Pair{Key: "ok", Value: value.Bool(true)},
			value.Pair{Key: "ratio", Value: value.Real(0.5)},
			value.Pair{Key: "none", Value: value.Void()},
		)},
	)
}

func TestWalkIntoBuilder(t *testing.T) {
	v := sample()
	b := value.NewBuilder()
	value.Walk(v, b)
	got, ok := b.Result()
	if !ok {
		t.Fatalf("builder not finished")
	}
	if !value.Equal(got, v) {
		t.Fatalf("Walk/Builder round trip changed the tree")
	}
}

func TestBuilderScalarRoot(t *testing.T) {
	b := value.NewBuilder()
	if _, ok := b.Result(); ok {
		t.Fatalf("empty builder reported done")
	}
	b.Int(7)
	got, ok := b.Result()
	if i, _ := got.AsInt(); !ok || i != 7 {
		t.Fatalf("Result = %v %v", got, ok)
	}
	b.Reset()
	if _, ok := b.Result(); ok {
		t.Fatalf("Reset did not clear the builder")
	}
}

func TestBuilderOnReplace(t *testing.T) {
	var replaced []string
	b := &value.Builder{OnReplace: func(k string) { replaced = append(replaced, k) }}
	b.BeginDict()
	b.Key("a")
	b.Int(1)
	b.Key("a")
	b.Int(2)
	b.End()
	got, _ := b.Result()
	if got.Len() != 1 || len(replaced) != 1 || replaced[0] != "a" {
		t.Fatalf("len=%d replaced=%v", got.Len(), replaced)
	}
}

func TestBuilderMisusePanics(t *testing.T) {
	cases := []struct {
		name string
		run  func(b *value.Builder)
	}{
		{"end without begin", func(b *value.Builder) { b.End() }},
		{"key outside dict", func(b *value.Builder) { b.BeginArray(); b.Key("k") }},
		{"value without key", func(b *value.Builder) { b.BeginDict(); b.Int(1) }},
		{"two keys", func(b *value.Builder) { b.BeginDict(); b.Key("a"); b.Key("b") }},
		{"dangling key", func(b *value.Builder) { b.BeginDict(); b.Key("a"); b.End() }},
		{"second root", func(b *value.Builder) { b.Int(1); b.Int(2) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			tc.run(value.NewBuilder())
		})
	}
}
