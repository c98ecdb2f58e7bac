package emit

// mergeParams deep-merges src into dst (map[string]any).
// - Maps: merged recursively
// - Slices & scalars: replaced.
func mergeParams(dst, src map[string]any) {
	if src == nil {
		return
	}
	for k, v := range src {
		if mv, ok := asMap(v); ok {
			if existing, ok2 := dst[k].(map[string]any); ok2 {
				mergeParams(existing, mv)
			} else {
				cp := map[string]any{}
				mergeParams(cp, mv)
				dst[k] = cp
			}
			continue
		}
		dst[k] = v
	}
}

// asMap accepts the map shapes produced by YAML decoding.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}
