package utils

import "strings"

// NormalizeURL trims whitespace, prefixes https:// when no scheme is
// present, and strips one trailing slash. Empty input yields empty output.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}

	return strings.TrimSuffix(raw, "/")
}

// BuildID constructs the canonical @id URI for an entity. The same
// (base, fragment) pair always yields the same identifier, which is what
// lets generated documents cross-reference each other as one graph.
func BuildID(baseURL, fragment string) string {
	return NormalizeURL(baseURL) + "/#" + fragment
}
