package extract

import "fmt"

// Flatten flattens a nested JSON object into a single-level map. Nested
// map keys are joined with "_"; array elements get an index suffix.
// Scalar array elements and scalars keep their value under the joined
// key.
func Flatten(v map[string]any) map[string]any {
	out := map[string]any{}
	flattenInto(out, "", v)
	return out
}

func flattenInto(out map[string]any, prefix string, v any) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			key := k
			if prefix != "" {
				key = prefix + "_" + k
			}
			flattenInto(out, key, child)
		}
	case []any:
		for i, child := range val {
			flattenInto(out, fmt.Sprintf("%s_%d", prefix, i), child)
		}
	default:
		if prefix != "" {
			out[prefix] = val
		}
	}
}
