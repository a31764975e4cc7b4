package document

// DeepCopy returns a copy of the map that shares no mutable state with the
// original at any depth. Validators receive these copies so that engines
// known to annotate their input (for example by adding scope metadata to
// references) can never alter the canonical document.
func (m *Map) DeepCopy() *Map {
	if m == nil {
		return nil
	}
	cp := &Map{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]any, len(m.values)),
	}
	copy(cp.keys, m.keys)
	for k, v := range m.values {
		cp.values[k] = copyValue(v)
	}
	return cp
}

// copyValue recursively copies any value a Map may hold. Scalars are
// returned as-is since they are immutable.
func copyValue(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.DeepCopy()
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = copyValue(item)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = copyValue(item)
		}
		return cp
	default:
		return v
	}
}
