package schema

import "strings"

// PruneEmpty recursively removes nil values, blank strings, and empty
// lists/maps from a document tree. List elements that prune down to
// nothing are dropped; non-container scalars pass through unchanged.
// The function is idempotent.
func PruneEmpty(v any) any {
	switch t := v.(type) {
	case Doc:
		return pruneDoc(t)
	case map[string]any:
		return pruneDoc(Doc(t))
	case OneOrMany:
		if pruned := pruneList([]any(t)); pruned != nil {
			return OneOrMany(pruned)
		}

		return OneOrMany(nil)
	case []any:
		return pruneList(t)
	case []Doc:
		items := make([]any, 0, len(t))
		for _, d := range t {
			items = append(items, d)
		}

		return pruneList(items)
	case []string:
		var kept []string

		for _, s := range t {
			if strings.TrimSpace(s) != "" {
				kept = append(kept, s)
			}
		}

		return kept
	default:
		return v
	}
}

func pruneDoc(d Doc) Doc {
	out := Doc{}

	for k, v := range d {
		pv := PruneEmpty(v)
		if isEmpty(pv) {
			continue
		}

		out[k] = pv
	}

	return out
}

func pruneList(items []any) []any {
	var kept []any

	for _, item := range items {
		pv := PruneEmpty(item)
		if isEmpty(pv) {
			continue
		}

		kept = append(kept, pv)
	}

	return kept
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case Doc:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case OneOrMany:
		return len(t) == 0
	case []string:
		return len(t) == 0
	default:
		return false
	}
}
