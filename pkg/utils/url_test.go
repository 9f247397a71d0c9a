package utils

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Bare domain gets scheme", "example.com", "https://example.com"},
		{"Existing https kept", "https://example.com", "https://example.com"},
		{"Existing http kept", "http://example.com", "http://example.com"},
		{"One trailing slash stripped", "https://example.com/", "https://example.com"},
		{"Only one slash stripped", "https://example.com//", "https://example.com/"},
		{"Whitespace trimmed", "  example.com  ", "https://example.com"},
		{"Empty stays empty", "", ""},
		{"Path preserved", "https://example.com/services/", "https://example.com/services"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.input); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildID(t *testing.T) {
	want := "https://example.com/#organization"

	// Different spellings of the same base URL must produce the same
	// identifier or cross-document references break.
	inputs := []string{"example.com", "https://example.com", "https://example.com/", "  example.com "}
	for _, in := range inputs {
		if got := BuildID(in, "organization"); got != want {
			t.Errorf("BuildID(%q) = %q, want %q", in, got, want)
		}
	}

	if got := BuildID("https://example.com/about", "webpage"); got != "https://example.com/about/#webpage" {
		t.Errorf("BuildID page = %q", got)
	}
}
