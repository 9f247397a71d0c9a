package schema

import (
	"strings"

	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

// deprecatedSlugSuffix marks a retired service page; such services are
// excluded from offer catalogs.
const deprecatedSlugSuffix = "-deprecated"

// cleanServiceType strips trailing SEO location fragments from a free-text
// service type: "Drain Cleaning - Austin TX" becomes "Drain Cleaning".
// The first segment before any title separator is kept and trailing
// punctuation is dropped.
func cleanServiceType(raw string) string {
	cleaned := strings.TrimSpace(raw)

	for _, sep := range seoSeparators {
		if i := strings.Index(cleaned, sep); i >= 0 {
			cleaned = cleaned[:i]
		}
	}

	return strings.TrimRight(strings.TrimSpace(cleaned), ".,;:|-")
}

func isDeprecatedService(url string) bool {
	slug := strings.ToLower(strings.TrimSuffix(utils.NormalizeURL(url), "/"))

	return strings.HasSuffix(slug, deprecatedSlugSuffix)
}

// makeOfferCatalog builds an OfferCatalog with one Offer per named,
// non-deprecated service, each referencing the provider by identifier.
// An entirely empty result is nil, never a catalog with zero entries.
func makeOfferCatalog(services []models.Service, providerID, catalogName string) Doc {
	var items []any

	for _, svc := range services {
		if svc.Name == "" || isDeprecatedService(svc.URL) {
			continue
		}

		items = append(items, Doc{
			"@type": "Offer",
			"itemOffered": pruneDoc(Doc{
				"@type":       "Service",
				"name":        svc.Name,
				"url":         svc.URL,
				"serviceType": cleanServiceType(orElse(svc.ServiceType, svc.Name)),
				"description": svc.Description,
				"audience":    svc.Audience,
				"provider":    ref(providerID),
			}),
		})
	}

	if len(items) == 0 {
		return nil
	}

	return Doc{
		"@type":           "OfferCatalog",
		"name":            catalogName,
		"itemListElement": items,
	}
}
