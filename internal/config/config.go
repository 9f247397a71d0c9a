// Package config provides configuration management for the schema
// generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"schemagen/internal/models"
	"schemagen/internal/schema"
	"schemagen/pkg/utils"
)

// Configuration validation errors.
var (
	ErrMissingBusinessName = errors.New("facts.business_name is required")
	ErrMissingWebsiteURL   = errors.New("facts.website_url is required")
	ErrNoSchemas           = errors.New("generator.schemas must list at least one schema kind")
	ErrUnknownSchema       = errors.New("generator.schemas contains an unknown schema kind")
	ErrInvalidBusinessType = errors.New("generator.business_type must be one of: local, ecommerce, saas")
	ErrMissingOutputDir    = errors.New("generator.output.dir is required")
	ErrInvalidLogLevel     = errors.New("generator.logging.level must be one of: debug, info, warn, error")
)

// Business types supported by the generator. The type decides whether the
// organization document renders as LocalBusiness or Organization and which
// validation checks apply.
const (
	BusinessTypeLocal     = "local"
	BusinessTypeEcommerce = "ecommerce"
	BusinessTypeSaaS      = "saas"
)

// Config is the complete generator configuration: generation settings plus
// the business facts record the generators consume.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Facts     models.Facts    `yaml:"facts"`
}

// GeneratorConfig contains generation-specific settings.
type GeneratorConfig struct {
	Output       OutputConfig  `yaml:"output"`
	Schemas      []string      `yaml:"schemas"`
	BusinessType string        `yaml:"business_type"`
	Logging      LoggingConfig `yaml:"logging"`
}

// OutputConfig defines where and how documents are written.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	ScriptTag bool   `yaml:"script_tag"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and validates a configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Facts.BusinessName) == "" {
		return ErrMissingBusinessName
	}

	if strings.TrimSpace(c.Facts.WebsiteURL) == "" {
		return ErrMissingWebsiteURL
	}

	if len(c.Generator.Schemas) == 0 {
		return ErrNoSchemas
	}

	known := map[string]bool{}
	for _, k := range schema.Kinds() {
		known[string(k)] = true
	}

	for i, s := range c.Generator.Schemas {
		if !known[s] {
			return fmt.Errorf("%w: schemas[%d] = %q", ErrUnknownSchema, i, s)
		}
	}

	switch c.Generator.BusinessType {
	case BusinessTypeLocal, BusinessTypeEcommerce, BusinessTypeSaaS:
	default:
		return ErrInvalidBusinessType
	}

	if strings.TrimSpace(c.Generator.Output.Dir) == "" {
		return ErrMissingOutputDir
	}

	validLevels := map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Generator.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// IsLocalBusiness reports whether the configured business type renders
// organization documents as LocalBusiness.
func (c *Config) IsLocalBusiness() bool {
	return c.Generator.BusinessType == BusinessTypeLocal
}

// Kinds resolves the configured schema list to document kinds. For a
// local business the generic organization kind resolves to the
// LocalBusiness generator; both share one output file key.
func (c *Config) Kinds() []schema.Kind {
	var kinds []schema.Kind

	for _, s := range c.Generator.Schemas {
		kind := schema.Kind(s)
		if kind == schema.KindOrganization && c.IsLocalBusiness() {
			kind = schema.KindLocalBusiness
		}

		kinds = append(kinds, kind)
	}

	return kinds
}

// ClientSlug returns the configured client slug, derived from the business
// name when unset.
func (c *Config) ClientSlug() string {
	if c.Facts.ClientSlug != "" {
		return c.Facts.ClientSlug
	}

	slug := utils.Slugify(c.Facts.BusinessName)
	if slug == "" {
		slug = "business"
	}

	return slug
}

// OutputPath returns the output file path for one document kind:
// {dir}/{slug}-{key}.json.
func (c *Config) OutputPath(kind schema.Kind) string {
	return fmt.Sprintf("%s/%s-%s.json", c.Generator.Output.Dir, c.ClientSlug(), kind.FileKey())
}
