package document

// Equal reports whether two maps hold the same keys in the same order with
// deeply equal values. Key order is significant: the same entries in a
// different order are not equal.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, k := range m.keys {
		if other.keys[i] != k {
			return false
		}
		if !equalValue(m.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

// equalValue compares two document values. Numeric values compare by
// magnitude across int/int64/float64 so that a document rebuilt from its
// own serialized form compares equal to the original.
func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Map:
		bv, ok := b.(*Map)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValue(av[i], bv[i]) {
				return false
			}
		}
		return true
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int, int64, float64:
		an, _ := numericValue(a)
		bn, ok := numericValue(b)
		return ok && an == bn
	default:
		return a == b
	}
}

// numericValue widens supported numeric kinds to float64.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
