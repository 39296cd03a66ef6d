package elem

import "fmt"

// Attrs holds a node's scalar attributes. Values are restricted to
// string, bool, int64 and float64; normalize widens the other integer
// and float forms so equality checks compare like with like.
type Attrs map[string]any

func (a Attrs) normalize() Attrs {
	for k, v := range a {
		a[k] = normalizeValue(v)
	}
	return a
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case string, bool, int64, float64:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return float64(x)
	default:
		panic(fmt.Sprintf("unsupported attribute value %T", v))
	}
}

func (a Attrs) Equal(b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if av != bv {
			return false
		}
	}
	return true
}

func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	res := make(Attrs, len(a))
	for k, v := range a {
		res[k] = v
	}
	return res
}
