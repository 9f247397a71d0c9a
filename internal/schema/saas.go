package schema

import (
	"strconv"
	"strings"

	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

const fragWebApp = "webapp"

// tierPrices returns the numeric values of the parseable tier prices.
// Free-text prices ("Custom", "Contact us") are skipped.
func tierPrices(tiers []models.PricingTier) []float64 {
	var prices []float64

	for _, t := range tiers {
		v, err := strconv.ParseFloat(strings.TrimSpace(t.Price), 64)
		if err != nil || t.Price == "" {
			continue
		}

		prices = append(prices, v)
	}

	return prices
}

func minMax(prices []float64) (float64, float64) {
	if len(prices) == 0 {
		return 0, 0
	}

	lo, hi := prices[0], prices[0]

	for _, p := range prices[1:] {
		if p < lo {
			lo = p
		}

		if p > hi {
			hi = p
		}
	}

	return lo, hi
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// makeUnitPriceSpec is the per-tier recurring price: one unit of the
// billing period (UN/CEFACT code, MON by default).
func makeUnitPriceSpec(t models.PricingTier, currency string) Doc {
	return Doc{
		"@type":         "UnitPriceSpecification",
		"price":         t.Price,
		"priceCurrency": currency,
		"name":          t.Name,
		"referenceQuantity": Doc{
			"@type":    "QuantitativeValue",
			"value":    "1",
			"unitCode": orElse(t.BillingPeriod, "MON"),
		},
	}
}

// GenerateSaaSApp builds a WebApplication document. Pricing renders three
// ways: a bare Offer from the flat price when no tiers exist, a single
// Offer for one tier, or an AggregateOffer spanning all tiers.
func GenerateSaaSApp(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	appURL := utils.NormalizeURL(orElse(f.AppURL, baseURL))
	currency := orElse(f.Currency, "USD")

	doc := Doc{
		"@context":            Context,
		"@type":               "WebApplication",
		"@id":                 utils.BuildID(appURL, fragWebApp),
		"name":                orElse(f.AppName, f.BusinessName),
		"description":         orElse(f.AppDescription, f.Description),
		"url":                 appURL,
		"sameAs":              orElse(f.MarketingURL, baseURL),
		"browserRequirements": orElse(f.BrowserRequirements, "Requires JavaScript. Requires HTML5."),
		"applicationCategory": orElse(f.AppCategory, "BusinessApplication"),
		"applicationSuite":    f.AppSuite,
		"operatingSystem":     orElse(f.OperatingSystem, "Web Browser"),
		"permissions":         f.Permissions,
		"releaseNotes":        f.ReleaseNotesURL,
		"provider":            ref(orgID(baseURL)),
	}

	switch {
	case len(f.PricingTiers) == 0 && f.Price != "":
		doc["offers"] = Doc{
			"@type":         "Offer",
			"price":         f.Price,
			"priceCurrency": currency,
		}
	case len(f.PricingTiers) == 1:
		t := f.PricingTiers[0]
		doc["offers"] = pruneDoc(Doc{
			"@type":         "Offer",
			"name":          t.Name,
			"price":         t.Price,
			"priceCurrency": currency,
			"url":           orElse(t.URL, baseURL),
		})
	case len(f.PricingTiers) > 1:
		lo, hi := minMax(tierPrices(f.PricingTiers))

		var offers []any

		for _, t := range f.PricingTiers {
			if t.Name == "" {
				continue
			}

			offers = append(offers, pruneDoc(Doc{
				"@type":              "Offer",
				"name":               t.Name,
				"url":                orElse(t.URL, baseURL),
				"price":              t.Price,
				"priceCurrency":      currency,
				"priceSpecification": makeUnitPriceSpec(t, currency),
			}))
		}

		doc["offers"] = Doc{
			"@type":         "AggregateOffer",
			"lowPrice":      lo,
			"highPrice":     hi,
			"priceCurrency": currency,
			"offerCount":    len(f.PricingTiers),
			"offers":        offers,
		}
	}

	doc["isPartOf"] = Doc{
		"@type":     "WebSite",
		"@id":       websiteID(baseURL),
		"url":       baseURL,
		"publisher": ref(orgID(baseURL)),
	}

	return pruneDoc(doc)
}

// GenerateSaaSPricingPage builds the pricing page as a @graph of the
// WebPage and an AggregateOffer whose category is the application itself.
func GenerateSaaSPricingPage(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	pricingURL := utils.NormalizeURL(orElse(f.PricingPageURL, baseURL+"/pricing"))
	appURL := utils.NormalizeURL(orElse(f.AppURL, baseURL))
	currency := orElse(f.Currency, "USD")

	offerID := utils.BuildID(pricingURL, "aggregateoffer")

	prices := tierPrices(f.PricingTiers)

	var lowPrice, highPrice string
	if len(prices) > 0 {
		lo, hi := minMax(prices)
		lowPrice, highPrice = formatPrice(lo), formatPrice(hi)
	}

	var offers []any

	for _, t := range f.PricingTiers {
		if t.Name == "" || t.Price == "" {
			continue
		}

		offers = append(offers, pruneDoc(Doc{
			"@type":              "Offer",
			"name":               t.Name,
			"url":                orElse(t.URL, pricingURL),
			"description":        t.Description,
			"priceSpecification": makeUnitPriceSpec(t, currency),
		}))
	}

	aggregateOffer := pruneDoc(Doc{
		"@type":         "AggregateOffer",
		"@id":           offerID,
		"url":           pricingURL,
		"lowPrice":      lowPrice,
		"highPrice":     highPrice,
		"priceCurrency": currency,
		"offerCount":    len(f.PricingTiers),
		"offers":        offers,
		"category": Doc{
			"@type":       "Service",
			"@id":         utils.BuildID(appURL, fragWebApp),
			"name":        orElse(f.AppName, f.BusinessName),
			"serviceType": orElse(f.AppCategory, "SaaS"),
			"provider":    ref(orgID(baseURL)),
		},
	})

	webpage := pruneDoc(Doc{
		"@type":       "WebPage",
		"@id":         webpageID(pricingURL),
		"url":         pricingURL,
		"name":        orElse(f.PricingPageTitle, "Pricing — "+f.BusinessName),
		"description": f.PricingPageDescription,
		"inLanguage":  orElse(f.Language, "en"),
		"mainEntity":  ref(offerID),
		"about":       ref(offerID),
		"isPartOf": Doc{
			"@type":     "WebSite",
			"@id":       websiteID(baseURL),
			"url":       baseURL,
			"publisher": ref(orgID(baseURL)),
		},
	})

	return Doc{"@context": Context, "@graph": []any{webpage, aggregateOffer}}
}
