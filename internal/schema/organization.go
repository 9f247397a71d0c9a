package schema

import (
	"fmt"

	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

// GenerateOrganization builds the root Organization document used for
// SaaS, e-commerce, and other non-local businesses.
func GenerateOrganization(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)

	doc := Doc{
		"@context":                  Context,
		"@type":                     "Organization",
		"@id":                       orgID(baseURL),
		"name":                      f.BusinessName,
		"legalName":                 orElse(f.LegalName, f.BusinessName),
		"alternateName":             f.AlternateName,
		"url":                       baseURL,
		"description":               f.Description,
		"disambiguatingDescription": f.DisambiguatingDescription,
		"slogan":                    f.Slogan,
		"foundingDate":              f.FoundingDate,
		"foundingLocation":          f.FoundingLocation,
		"email":                     f.Email,
		"telephone":                 f.Telephone,
	}

	if len(f.AdditionalTypes) > 0 {
		doc["additionalType"] = f.AdditionalTypes
	}

	doc["logo"] = makeLogo(f.LogoURL)
	doc["image"] = makeImageObject(f.ImageURL)
	doc["knowsAbout"] = makeKnowsAbout(f.KnowsAbout)
	doc["sameAs"] = makeSameAs(f.SameAs)
	doc["contactPoint"] = makeContactPoint(f.Telephone, f.Email)

	if f.FounderName != "" {
		doc["founder"] = Doc{
			"@type": "Person",
			"@id":   personID(baseURL),
			"name":  f.FounderName,
		}
	}

	if f.ParentOrganization != "" {
		doc["parentOrganization"] = Doc{"@type": "Organization", "name": f.ParentOrganization}
	}

	doc["areaServed"] = makeAreaServed(f)

	return pruneDoc(doc)
}

// GenerateLocalBusiness builds a LocalBusiness document with address,
// hours, and areaServed. Specific subtypes (HVACBusiness, Dentist,
// LegalService, ...) are supported via the configured schema subtype.
func GenerateLocalBusiness(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)

	schemaType := f.SchemaSubtype
	switch schemaType {
	case "", "Organization", "OnlineBusiness":
		schemaType = "LocalBusiness"
	}

	// The literal ancestor types always come first; user-supplied
	// disambiguation URLs are appended without duplicating entries.
	additionalTypes := []string{"LocalBusiness", "Organization"}

	for _, t := range f.AdditionalTypes {
		duplicate := false

		for _, existing := range additionalTypes {
			if existing == t {
				duplicate = true

				break
			}
		}

		if !duplicate {
			additionalTypes = append(additionalTypes, t)
		}
	}

	doc := Doc{
		"@context":                  Context,
		"@type":                     schemaType,
		"@id":                       orgID(baseURL),
		"additionalType":            additionalTypes,
		"name":                      f.BusinessName,
		"legalName":                 orElse(f.LegalName, f.BusinessName),
		"alternateName":             f.AlternateName,
		"url":                       baseURL,
		"description":               f.Description,
		"disambiguatingDescription": f.DisambiguatingDescription,
		"slogan":                    f.Slogan,
		"priceRange":                f.PriceRange,
		"email":                     f.Email,
		"telephone":                 f.Telephone,
		"paymentAccepted":           f.PaymentAccepted,
		"currenciesAccepted":        f.CurrenciesAccepted,
		"foundingDate":              f.FoundingDate,
		"foundingLocation":          f.FoundingLocation,
		"hasMap":                    f.HasMap,
	}

	doc["logo"] = makeLogo(f.LogoURL)
	doc["image"] = makeImageObject(f.ImageURL)
	doc["address"] = makePostalAddress(f)
	doc["knowsAbout"] = makeKnowsAbout(f.KnowsAbout)
	doc["sameAs"] = makeSameAs(f.SameAs)
	doc["contactPoint"] = makeContactPoint(f.Telephone, f.Email)
	doc["openingHoursSpecification"] = makeOpeningHours(f.OpeningHours)
	doc["areaServed"] = makeAreaServed(f)

	if len(f.Services) > 0 {
		var offered []any

		for _, svc := range f.Services {
			if svc.Name == "" {
				continue
			}

			offered = append(offered, pruneDoc(Doc{
				"@type":       "Service",
				"name":        svc.Name,
				"url":         svc.URL,
				"serviceType": orElse(svc.ServiceType, svc.Name),
				"audience":    svc.Audience,
			}))
		}

		if len(offered) > 0 {
			doc["makesOffer"] = Doc{
				"@type":       "Offer",
				"itemOffered": offered,
			}
		}
	}

	if f.FounderName != "" {
		doc["founder"] = Doc{
			"@type": "Person",
			"@id":   personID(baseURL),
			"name":  f.FounderName,
		}
	}

	return pruneDoc(doc)
}

// GenerateMultiLocationOrg builds an Organization whose physical locations
// appear as LocalBusiness departments with per-location address and hours.
func GenerateMultiLocationOrg(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)

	doc := Doc{
		"@context":    Context,
		"@type":       "Organization",
		"@id":         orgID(baseURL),
		"name":        f.BusinessName,
		"url":         baseURL,
		"description": f.Description,
		"email":       f.Email,
		"telephone":   f.Telephone,
	}

	doc["logo"] = makeLogo(f.LogoURL)
	doc["sameAs"] = makeSameAs(f.SameAs)

	if len(f.Locations) > 0 {
		var departments []any

		for i, loc := range f.Locations {
			dept := Doc{
				"@type":     "LocalBusiness",
				"@id":       utils.BuildID(baseURL, fmt.Sprintf("location-%d", i+1)),
				"name":      orElse(loc.Name, f.BusinessName),
				"url":       orElse(loc.URL, baseURL),
				"telephone": loc.Telephone,
				"email":     loc.Email,
				"address":   makeLocationAddress(loc),
			}
			if len(loc.OpeningHours) > 0 {
				dept["openingHoursSpecification"] = makeOpeningHours(loc.OpeningHours)
			}

			departments = append(departments, pruneDoc(dept))
		}

		doc["department"] = departments
	}

	return pruneDoc(doc)
}
