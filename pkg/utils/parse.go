package utils

import (
	"regexp"
	"strings"
)

var (
	listSeparators   = regexp.MustCompile(`[\n,]+`)
	postalSeparators = regexp.MustCompile(`[\n,\s]+`)
)

// SplitList parses newline- or comma-separated free text into trimmed
// tokens. Order is preserved and duplicates are kept.
func SplitList(text string) []string {
	return splitOn(listSeparators, text)
}

// SplitPostalCodes parses postal codes separated by newlines, commas, or
// whitespace.
func SplitPostalCodes(text string) []string {
	return splitOn(postalSeparators, text)
}

func splitOn(sep *regexp.Regexp, text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string

	for _, part := range sep.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}

	return tokens
}
