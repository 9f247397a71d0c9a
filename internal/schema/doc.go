// Package schema assembles schema.org JSON-LD documents from a business
// facts record. Every generator is a pure function of its input: it never
// mutates the facts record, never errors on missing optional fields, and
// returns a freshly built, deep-pruned document. Cross-document references
// use identifiers derived from the business's canonical URL, so all
// documents generated from one record form a connected graph.
package schema

import "encoding/json"

// Context is the JSON-LD @context for every generated document.
const Context = "https://schema.org"

// Doc is one JSON-LD object or graph node, kept as a plain map so the
// output stays directly JSON-serializable for the export layer.
type Doc map[string]any

// OneOrMany is a place list that marshals as a bare object when it holds
// exactly one element and as a JSON array otherwise. It makes the
// single-vs-list return contract of the area-served resolver explicit.
type OneOrMany []any

// MarshalJSON implements json.Marshaler.
func (m OneOrMany) MarshalJSON() ([]byte, error) {
	if len(m) == 1 {
		return json.Marshal(m[0])
	}

	return json.Marshal([]any(m))
}

func orElse(v, fallback string) string {
	if v != "" {
		return v
	}

	return fallback
}
