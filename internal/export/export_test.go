package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"schemagen/internal/schema"
)

func TestFormatJSON(t *testing.T) {
	doc := schema.Doc{
		"@context": "https://schema.org",
		"@type":    "FAQPage",
		"text":     "See <a href='https://acme.com/pricing'>our pricing</a> page.",
	}

	got, err := FormatJSON(doc)
	if err != nil {
		t.Fatal(err)
	}

	// Inline HTML must survive unescaped.
	if !strings.Contains(got, "<a href='https://acme.com/pricing'>") {
		t.Errorf("HTML was escaped:\n%s", got)
	}

	if !strings.HasPrefix(got, "{\n  \"@context\"") {
		t.Errorf("expected two-space indent:\n%s", got)
	}

	if strings.HasSuffix(got, "\n") {
		t.Error("trailing newline should be trimmed")
	}
}

func TestWrapInScriptTag(t *testing.T) {
	got := WrapInScriptTag(`{"@type": "WebSite"}`)
	want := "<script type=\"application/ld+json\">\n{\"@type\": \"WebSite\"}\n</script>"

	if got != want {
		t.Errorf("WrapInScriptTag = %q", got)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("acme-plumbing", "faq"); got != "acme-plumbing-faq.json" {
		t.Errorf("FileName = %q", got)
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	doc := schema.Doc{"@context": "https://schema.org", "@type": "WebSite"}

	path, err := Write(dir, "acme", schema.KindWebsite, doc, false)
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(path) != "acme-website.json" {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	if !strings.HasSuffix(content, "}\n") {
		t.Errorf("file should end with a newline:\n%q", content)
	}

	if strings.Contains(content, "<script") {
		t.Error("script tag written without being requested")
	}
}

func TestWriteScriptTag(t *testing.T) {
	dir := t.TempDir()
	doc := schema.Doc{"@type": "WebSite"}

	path, err := Write(dir, "acme", schema.KindWebsite, doc, true)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "<script type=\"application/ld+json\">\n") {
		t.Errorf("missing opening tag:\n%s", content)
	}

	if !strings.HasSuffix(content, "</script>\n") {
		t.Errorf("missing closing tag:\n%s", content)
	}
}
