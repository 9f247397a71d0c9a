// Package utils provides text, URL, and list-parsing helpers shared by the
// schema generators.
package utils

import (
	"strings"
	"unicode"
)

// Slugify converts text to a URL-safe slug: lowercase, punctuation
// stripped, whitespace and underscores collapsed to single hyphens.
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	fields := strings.FieldsFunc(b.String(), func(r rune) bool {
		return unicode.IsSpace(r) || r == '_'
	})
	slug := strings.Join(fields, "-")

	// Hyphen runs can survive the join when the input itself carried them.
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	return strings.Trim(slug, "-")
}

// NormalizeWhitespace replaces runs of whitespace with single spaces.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// Truncate shortens a string to maxLength, appending an ellipsis.
func Truncate(str string, maxLength int) string {
	if len(str) <= maxLength {
		return str
	}

	return str[:maxLength] + "..."
}
