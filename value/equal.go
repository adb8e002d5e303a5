package value

import "math"

// Equal reports structural equality. Dict order is significant, NaN equals
// NaN, and Int never equals Real.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindVoid:
		return true
	case KindBool, KindInt:
		return a.bits == b.bits
	case KindReal:
		x, y := math.Float64frombits(a.bits), math.Float64frombits(b.bits)
		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
		return x == y
	case KindStr, KindOctet:
		return a.str == b.str
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindDict:
		ap, bp := a.dict.pairs, b.dict.pairs
		if len(ap) != len(bp) {
			return false
		}
		for i := range ap {
			if ap[i].Key != bp[i].Key || !Equal(ap[i].Value, bp[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
