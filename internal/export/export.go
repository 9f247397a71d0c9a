// Package export serializes generated documents to JSON-LD files and
// script tags.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"schemagen/internal/schema"
)

// FormatJSON serializes a document to pretty-printed JSON. HTML escaping is
// disabled so inline answer links survive as-is.
func FormatJSON(doc schema.Doc) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// WrapInScriptTag wraps serialized JSON-LD in an HTML script tag ready to
// paste into a page head.
func WrapInScriptTag(jsonStr string) string {
	return "<script type=\"application/ld+json\">\n" + jsonStr + "\n</script>"
}

// FileName returns the output file name for a document: {slug}-{key}.json.
func FileName(slug, key string) string {
	return fmt.Sprintf("%s-%s.json", slug, key)
}

// Write serializes the document and writes it under dir, optionally
// wrapped in a script tag. It returns the written path.
func Write(dir, slug string, kind schema.Kind, doc schema.Doc, scriptTag bool) (string, error) {
	content, err := FormatJSON(doc)
	if err != nil {
		return "", err
	}

	if scriptTag {
		content = WrapInScriptTag(content)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(slug, kind.FileKey()))
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

