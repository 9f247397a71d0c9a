package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"schemagen/internal/schema"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

const validYAML = `
generator:
  business_type: local
  schemas:
    - organization
    - homepage
    - faq
  output:
    dir: ./out
    script_tag: true
  logging:
    level: debug
facts:
  business_name: Acme Plumbing
  website_url: https://acme-plumbing.com
  telephone: "+1-512-555-0100"
  city: Austin
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Facts.BusinessName != "Acme Plumbing" {
		t.Errorf("business_name = %q", cfg.Facts.BusinessName)
	}

	if cfg.Facts.City != "Austin" {
		t.Errorf("city = %q", cfg.Facts.City)
	}

	if !cfg.Generator.Output.ScriptTag {
		t.Error("script_tag should be true")
	}

	if cfg.Generator.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Generator.Logging.Level)
	}

	if !cfg.IsLocalBusiness() {
		t.Error("local business type expected")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "generator: [not a mapping")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateErrors(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(writeConfig(t, validYAML))
		if err != nil {
			t.Fatal(err)
		}

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing business name", func(c *Config) { c.Facts.BusinessName = " " }, ErrMissingBusinessName},
		{"missing website url", func(c *Config) { c.Facts.WebsiteURL = "" }, ErrMissingWebsiteURL},
		{"no schemas", func(c *Config) { c.Generator.Schemas = nil }, ErrNoSchemas},
		{"unknown schema", func(c *Config) { c.Generator.Schemas = []string{"podcast"} }, ErrUnknownSchema},
		{"bad business type", func(c *Config) { c.Generator.BusinessType = "franchise" }, ErrInvalidBusinessType},
		{"missing output dir", func(c *Config) { c.Generator.Output.Dir = "" }, ErrMissingOutputDir},
		{"bad log level", func(c *Config) { c.Generator.Logging.Level = "trace" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestKindsResolvesOrganization(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatal(err)
	}

	kinds := cfg.Kinds()
	if kinds[0] != schema.KindLocalBusiness {
		t.Errorf("organization should resolve to local-business, got %v", kinds[0])
	}

	cfg.Generator.BusinessType = BusinessTypeSaaS

	kinds = cfg.Kinds()
	if kinds[0] != schema.KindOrganization {
		t.Errorf("organization should stay generic for saas, got %v", kinds[0])
	}
}

func TestClientSlug(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.ClientSlug(); got != "acme-plumbing" {
		t.Errorf("ClientSlug() = %q", got)
	}

	cfg.Facts.ClientSlug = "acme-tx"
	if got := cfg.ClientSlug(); got != "acme-tx" {
		t.Errorf("explicit slug ignored, got %q", got)
	}
}

func TestOutputPath(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.OutputPath(schema.KindLocalBusiness); got != "./out/acme-plumbing-organization.json" {
		t.Errorf("OutputPath = %q", got)
	}

	if got := cfg.OutputPath(schema.KindSaaSPricing); got != "./out/acme-plumbing-pricing.json" {
		t.Errorf("OutputPath = %q", got)
	}
}
