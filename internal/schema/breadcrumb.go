package schema

import (
	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

const fragBreadcrumb = "breadcrumb"

// GenerateBreadcrumb builds a BreadcrumbList for the current page. With no
// configured trail a single Home entry pointing at the site root is
// emitted. Unnamed entries are dropped before positions are assigned, so
// positions always run 1..n without gaps.
func GenerateBreadcrumb(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	pageURL := utils.NormalizeURL(orElse(f.CurrentPageURL, baseURL))

	items := f.BreadcrumbItems
	if len(items) == 0 {
		items = []models.BreadcrumbItem{{Name: "Home", URL: baseURL}}
	}

	var elements []any

	for _, item := range items {
		if item.Name == "" {
			continue
		}

		elements = append(elements, Doc{
			"@type":    "ListItem",
			"position": len(elements) + 1,
			"name":     item.Name,
			"item":     utils.NormalizeURL(orElse(item.URL, baseURL)),
		})
	}

	return pruneDoc(Doc{
		"@context":        Context,
		"@type":           "BreadcrumbList",
		"@id":             utils.BuildID(pageURL, fragBreadcrumb),
		"itemListElement": elements,
	})
}
