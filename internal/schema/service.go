package schema

import (
	"fmt"

	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

// GenerateServicePage builds a single service page: a WebPage whose main
// entity is the Service, with the organization as provider and brand and
// sub-services collected into an offer catalog. The resolved areaServed is
// shared verbatim between the service and each sub-service.
func GenerateServicePage(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	serviceURL := utils.NormalizeURL(f.ServicePageURL)
	pageURL := orElse(serviceURL, baseURL)

	var serviceID string
	if serviceURL != "" {
		serviceID = utils.BuildID(serviceURL, "service")
	} else {
		serviceID = utils.BuildID(baseURL, "service-"+utils.Slugify(f.ServiceName))
	}

	area := makeAreaServed(f)

	service := Doc{
		"@context":    Context,
		"@type":       "Service",
		"@id":         serviceID,
		"name":        f.ServiceName,
		"description": f.ServiceDescription,
		"serviceType": orElse(f.ServiceType, f.ServiceName),
		"url":         pageURL,
		"audience":    f.ServiceAudience,
		"provider":    ref(orgID(baseURL)),
		"brand":       ref(orgID(baseURL)),
	}

	if f.ServiceAdditionalType != "" {
		service["additionalType"] = f.ServiceAdditionalType
	}

	service["areaServed"] = area

	if len(f.SubServices) > 0 {
		var items []any

		for _, sub := range f.SubServices {
			if sub.Name == "" {
				continue
			}

			items = append(items, Doc{
				"@type": "Offer",
				"itemOffered": pruneDoc(Doc{
					"@type":       "Service",
					"name":        sub.Name,
					"url":         sub.URL,
					"serviceType": orElse(sub.ServiceType, sub.Name),
					"audience":    sub.Audience,
					"provider":    ref(orgID(baseURL)),
					"brand":       ref(orgID(baseURL)),
					"areaServed":  area,
				}),
			})
		}

		if len(items) > 0 {
			service["hasOfferCatalog"] = Doc{
				"@type":           "OfferCatalog",
				"name":            f.ServiceName + " Services",
				"itemListElement": items,
			}
		}
	}

	doc := Doc{
		"@context":    Context,
		"@type":       "WebPage",
		"@id":         webpageID(pageURL),
		"url":         pageURL,
		"name":        orElse(f.ServicePageTitle, f.ServiceName),
		"description": orElse(f.ServicePageDescription, f.ServiceDescription),
		"inLanguage":  orElse(f.Language, "en"),
		"mainEntity":  pruneDoc(service),
		"about":       pruneDoc(service),
		"isPartOf": Doc{
			"@type":     "WebSite",
			"@id":       websiteID(baseURL),
			"url":       baseURL,
			"publisher": ref(orgID(baseURL)),
		},
	}

	return pruneDoc(doc)
}

// GenerateMultiServicePage builds the services overview page as a @graph:
// the WebPage node followed by one Service node per category, each with its
// own offer catalog. All nodes share the resolved areaServed.
func GenerateMultiServicePage(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	pageURL := utils.NormalizeURL(orElse(f.ServicesPageURL, baseURL+"/services"))

	area := makeAreaServed(f)

	graph := []any{
		pruneDoc(Doc{
			"@type":       "WebPage",
			"@id":         webpageID(pageURL),
			"url":         pageURL,
			"name":        orElse(f.ServicesPageTitle, "Services — "+f.BusinessName),
			"description": f.ServicesPageDescription,
			"inLanguage":  orElse(f.Language, "en"),
			"about":       ref(orgID(baseURL)),
			"isPartOf": Doc{
				"@type":     "WebSite",
				"@id":       websiteID(baseURL),
				"url":       baseURL,
				"publisher": ref(orgID(baseURL)),
			},
		}),
	}

	for i, cat := range f.ServiceCategories {
		catName := cat.Name
		if catName == "" {
			catName = fmt.Sprintf("Service %d", i+1)
		}

		catID := utils.BuildID(orElse(cat.URL, baseURL), fmt.Sprintf("service-%d", i+1))

		node := Doc{
			"@type":       "Service",
			"@id":         catID,
			"name":        catName,
			"description": cat.Description,
			"serviceType": orElse(cat.ServiceType, catName),
			"url":         orElse(cat.URL, pageURL),
			"provider":    ref(orgID(baseURL)),
			"brand":       ref(orgID(baseURL)),
			"areaServed":  area,
		}

		if len(cat.Services) > 0 {
			var items []any

			for _, sub := range cat.Services {
				if sub.Name == "" {
					continue
				}

				items = append(items, Doc{
					"@type": "Offer",
					"itemOffered": pruneDoc(Doc{
						"@type":       "Service",
						"name":        sub.Name,
						"url":         sub.URL,
						"serviceType": orElse(sub.ServiceType, sub.Name),
						"provider":    ref(orgID(baseURL)),
						"brand":       ref(orgID(baseURL)),
					}),
				})
			}

			if len(items) > 0 {
				node["hasOfferCatalog"] = Doc{
					"@type":           "OfferCatalog",
					"name":            catName,
					"itemListElement": items,
				}
			}
		}

		graph = append(graph, pruneDoc(node))
	}

	return Doc{"@context": Context, "@graph": graph}
}
