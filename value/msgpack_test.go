package value_test

import (
	"math"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"tjs/value"
)

func TestMsgpackRoundTrip(t *testing.T) {
	cases := []value.Value{
		value.Void(),
		value.Bool(false),
		value.Int(-1),
		value.Int(math.MaxInt64),
		value.Int(math.MinInt64),
		value.Real(1.25),
		value.Real(math.Inf(-1)),
		value.Str(""),
		value.Octet(nil),
		value.Array(),
		value.Object(),
		sample(),
	}
	for _, v := range cases {
		data, err := value.MarshalMsgpack(v)
		if err != nil {
			t.Fatalf("marshal %v: %v", v.Kind(), err)
		}
		got, err := value.UnmarshalMsgpack(data)
		if err != nil {
			t.Fatalf("unmarshal %v: %v", v.Kind(), err)
		}
		if !value.Equal(got, v) {
			t.Errorf("%v: round trip mismatch", v.Kind())
		}
	}
}

func TestMsgpackPreservesOrder(t *testing.T) {
	v := value.Object(
		value.Pair{Key: "z", Value: value.Int(1)},
		value.Pair{Key: "a", Value: value.Int(2)},
		value.Pair{Key: "m", Value: value.Int(3)},
	)
	data, err := msgpack.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var got value.Value
	if err := msgpack.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.PairAt(0).Key != "z" || got.PairAt(2).Key != "m" {
		t.Fatalf("order lost: %q %q", got.PairAt(0).Key, got.PairAt(2).Key)
	}
}

func TestMsgpackLargeUintBecomesReal(t *testing.T) {
	data, err := msgpack.Marshal(uint64(math.MaxUint64))
	if err != nil {
		t.Fatal(err)
	}
	got, err := value.UnmarshalMsgpack(data)
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := got.AsReal(); !ok || f != float64(uint64(math.MaxUint64)) {
		t.Fatalf("got %v (%v), want real", got.Kind(), f)
	}
}

func TestMsgpackNonStringKey(t *testing.T) {
	data, err := msgpack.Marshal(map[int]int{1: 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := value.UnmarshalMsgpack(data); err == nil {
		t.Fatalf("expected error for integer map key")
	}
}
