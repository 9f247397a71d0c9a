// Package main provides the schema generator command-line tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"schemagen/internal/config"
	"schemagen/internal/export"
	"schemagen/internal/logger"
	"schemagen/internal/schema"
	"schemagen/internal/validator"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file with generator settings and business facts")
	outDir := flag.String("out", "", "Output directory (overrides generator.output.dir)")
	force := flag.Bool("force", false, "Write output even when validation reports errors")
	flag.Parse()

	if *configPath == "" {
		fmt.Println("Usage: generator -config <config.yaml> [-out <dir>] [-force]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v\n", err)
	}

	if *outDir != "" {
		cfg.Generator.Output.Dir = *outDir
	}

	lg := logger.New(cfg.Generator.Logging.Level).With("client", cfg.ClientSlug())

	kinds := cfg.Kinds()
	fmt.Printf("📂 Loaded facts for %q (%d schemas selected)\n", cfg.Facts.BusinessName, len(kinds))

	// Validate every selected kind before generating anything.
	var sections []validator.Section

	for _, kind := range kinds {
		issues := validator.ForKind(kind, cfg.IsLocalBusiness(), &cfg.Facts)
		sections = append(sections, validator.Section{Kind: kind, Issues: issues})
	}

	errCount, warnCount := validator.Summary(sections)
	if errCount > 0 || warnCount > 0 {
		fmt.Println(validator.FormatReport(sections))
	}

	if errCount > 0 && !*force {
		log.Fatalf("Validation failed with %d error(s). Fix the facts or re-run with -force.\n", errCount)
	}

	// Generate. One failing kind does not stop the rest.
	docs := map[schema.Kind]schema.Doc{}

	var failed []string

	for _, kind := range kinds {
		doc, genErr := schema.Generate(kind, &cfg.Facts)
		if genErr != nil {
			var ge *schema.GenerationError
			if errors.As(genErr, &ge) {
				lg.Error("generation failed", "kind", ge.Kind, "error", ge.Err)
			} else {
				lg.Error("generation failed", "kind", kind, "error", genErr)
			}

			failed = append(failed, string(kind))

			continue
		}

		docs[kind] = doc
	}

	for _, kind := range kinds {
		doc, ok := docs[kind]
		if !ok {
			continue
		}

		path, writeErr := export.Write(cfg.Generator.Output.Dir, cfg.ClientSlug(), kind, doc, cfg.Generator.Output.ScriptTag)
		if writeErr != nil {
			log.Fatalf("Error writing output: %v\n", writeErr)
		}

		lg.Debug("document written", "kind", kind, "path", path)
	}

	if len(failed) > 0 {
		fmt.Printf("⚠️  %d schema(s) failed: %v\n", len(failed), failed)
	}

	fmt.Printf("✅ %d schema(s) written to %s\n", len(docs), cfg.Generator.Output.Dir)
}
