package schema

import (
	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

// availabilityURLs maps the human-readable availability label to the
// schema.org enumeration URL. Unknown labels fall back to InStock.
var availabilityURLs = map[string]string{
	"In Stock":     "https://schema.org/InStock",
	"Out of Stock": "https://schema.org/OutOfStock",
	"Pre-order":    "https://schema.org/PreOrder",
	"Discontinued": "https://schema.org/Discontinued",
}

// GenerateProduct builds a Merchant Center compatible Product document
// with Offer, shipping and return policy details, rating, and reviews.
func GenerateProduct(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	productURL := utils.NormalizeURL(f.ProductURL)

	images := f.ProductImages
	if f.ProductImage != "" && !contains(images, f.ProductImage) {
		images = append([]string{f.ProductImage}, images...)
	}

	doc := Doc{
		"@context":                  Context,
		"@type":                     "Product",
		"@id":                       orElse(productURL, baseURL),
		"name":                      f.ProductName,
		"description":               f.ProductDescription,
		"disambiguatingDescription": f.ProductDisambiguating,
		"sku":                       f.SKU,
		"mpn":                       f.MPN,
		"gtin":                      f.GTIN,
		"gtin13":                    f.GTIN13,
		"url":                       productURL,
		"color":                     f.Color,
		"material":                  f.Material,
		"pattern":                   f.Pattern,
		"category":                  f.Category,
		"slogan":                    f.ProductSlogan,
	}

	if len(images) == 1 {
		doc["image"] = images[0]
	} else if len(images) > 1 {
		doc["image"] = images
	}

	doc["brand"] = ref(orgID(baseURL))
	doc["manufacturer"] = ref(orgID(baseURL))

	if f.IsRelatedTo != "" {
		doc["isRelatedTo"] = f.IsRelatedTo
	}

	doc["offers"] = makeProductOffer(f, orgID(baseURL), productURL)

	if f.AggregateRatingValue != "" && f.AggregateRatingCount != "" {
		doc["aggregateRating"] = Doc{
			"@type":       "AggregateRating",
			"ratingValue": f.AggregateRatingValue,
			"reviewCount": f.AggregateRatingCount,
			"bestRating":  orElse(f.BestRating, "5"),
			"worstRating": orElse(f.WorstRating, "1"),
		}
	}

	if len(f.Reviews) > 0 {
		var reviews []any

		for _, r := range f.Reviews {
			// A review without an author or body is unusable.
			if r.Author == "" || r.Body == "" {
				continue
			}

			reviews = append(reviews, pruneDoc(Doc{
				"@type":         "Review",
				"author":        Doc{"@type": "Person", "name": r.Author},
				"datePublished": r.Date,
				"name":          r.Title,
				"reviewBody":    r.Body,
				"reviewRating": Doc{
					"@type":       "Rating",
					"ratingValue": orElse(r.Rating, "5"),
					"bestRating":  "5",
					"worstRating": "1",
				},
			}))
		}

		doc["review"] = reviews
	}

	return pruneDoc(doc)
}

// makeProductOffer builds the Offer with optional shipping details (only
// when a shipping rate was explicitly provided, including an explicit
// zero for free shipping) and an optional finite-window return policy.
func makeProductOffer(f *models.Facts, providerID, productURL string) Doc {
	if f.Price == "" {
		return nil
	}

	currency := orElse(f.Currency, "USD")

	availability, ok := availabilityURLs[f.Availability]
	if !ok {
		availability = availabilityURLs["In Stock"]
	}

	offer := Doc{
		"@type":           "Offer",
		"url":             productURL,
		"priceCurrency":   currency,
		"price":           f.Price,
		"priceValidUntil": f.PriceValidUntil,
		"itemCondition":   "https://schema.org/NewCondition",
		"availability":    availability,
		"seller":          ref(providerID),
	}

	if f.ShippingRate != nil {
		offer["shippingDetails"] = Doc{
			"@type": "OfferShippingDetails",
			"shippingRate": Doc{
				"@type":    "MonetaryAmount",
				"value":    orElse(*f.ShippingRate, "0"),
				"currency": currency,
			},
			"shippingDestination": Doc{
				"@type":          "DefinedRegion",
				"addressCountry": f.ShippingCountry,
			},
			"deliveryTime": Doc{
				"@type": "ShippingDeliveryTime",
				"handlingTime": Doc{
					"@type":    "QuantitativeValue",
					"minValue": defaultInt(f.HandlingTimeMin, 1),
					"maxValue": defaultInt(f.HandlingTimeMax, 3),
					"unitCode": "DAY",
				},
				"transitTime": Doc{
					"@type":    "QuantitativeValue",
					"minValue": defaultInt(f.TransitTimeMin, 3),
					"maxValue": defaultInt(f.TransitTimeMax, 7),
					"unitCode": "DAY",
				},
			},
		}
	}

	if f.ReturnDays > 0 {
		offer["hasMerchantReturnPolicy"] = Doc{
			"@type":                "MerchantReturnPolicy",
			"applicableCountry":    f.ReturnPolicyCountry,
			"returnPolicyCategory": "https://schema.org/MerchantReturnFiniteReturnWindow",
			"merchantReturnDays":   f.ReturnDays,
			"returnMethod":         "https://schema.org/" + orElse(f.ReturnMethod, "ReturnByMail"),
			"returnFees":           "https://schema.org/" + orElse(f.ReturnFees, "FreeReturn"),
		}
	}

	return pruneDoc(offer)
}

func defaultInt(v, fallback int) int {
	if v != 0 {
		return v
	}

	return fallback
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}

	return false
}
