package schema

import (
	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

// GenerateWebsite builds the WebSite document, with a SiteLinks Searchbox
// SearchAction when enabled.
func GenerateWebsite(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)

	doc := Doc{
		"@context":    Context,
		"@type":       "WebSite",
		"@id":         websiteID(baseURL),
		"url":         baseURL,
		"name":        f.BusinessName,
		"description": f.Description,
		"inLanguage":  orElse(f.Language, "en"),
		"publisher":   ref(orgID(baseURL)),
	}

	if f.EnableSearchAction {
		doc["potentialAction"] = Doc{
			"@type": "SearchAction",
			"target": Doc{
				"@type":       "EntryPoint",
				"urlTemplate": baseURL + "/?s={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		}
	}

	return pruneDoc(doc)
}

// GenerateWebPage builds a generic page document of the given type
// (WebPage, AboutPage, ContactPage, CollectionPage, ...), linked to the
// site and organization by identifier.
func GenerateWebPage(f *models.Facts, pageURL, pageType string) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	page := utils.NormalizeURL(orElse(pageURL, baseURL))

	doc := Doc{
		"@context":    Context,
		"@type":       orElse(pageType, "WebPage"),
		"@id":         webpageID(page),
		"url":         page,
		"name":        orElse(f.PageTitle, f.BusinessName),
		"description": orElse(f.PageDescription, f.Description),
		"inLanguage":  orElse(f.Language, "en"),
		"isPartOf":    ref(websiteID(baseURL)),
		"about":       ref(orgID(baseURL)),
		"publisher":   ref(orgID(baseURL)),
	}

	doc["relatedLink"] = f.RelatedLinks
	doc["significantLink"] = f.SignificantLinks

	return pruneDoc(doc)
}

// GenerateHomepage builds the homepage document. Unlike every other page
// it inlines the full Organization inside the WebSite inside the WebPage:
// the crawler consuming the homepage expects the complete business entity
// there rather than a reference.
func GenerateHomepage(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)

	schemaType := f.SchemaSubtype
	if schemaType == "" {
		schemaType = "Organization"
	}

	org := Doc{
		"@id":                       orgID(baseURL),
		"name":                      f.BusinessName,
		"legalName":                 orElse(f.LegalName, f.BusinessName),
		"url":                       baseURL,
		"description":               f.Description,
		"disambiguatingDescription": f.DisambiguatingDescription,
		"slogan":                    f.Slogan,
		"email":                     f.Email,
		"telephone":                 f.Telephone,
		"priceRange":                f.PriceRange,
		"hasMap":                    f.HasMap,
	}

	if schemaType == "Organization" {
		org["@type"] = "Organization"
	} else {
		org["@type"] = []string{schemaType, "Organization"}
	}

	if len(f.AdditionalTypes) > 0 {
		org["additionalType"] = f.AdditionalTypes
	}

	org["logo"] = makeLogo(f.LogoURL)
	org["image"] = makeImageObject(f.ImageURL)
	org["address"] = makePostalAddress(f)
	org["geo"] = makeGeo(f.Latitude, f.Longitude)
	org["sameAs"] = makeSameAs(f.SameAs)
	org["knowsAbout"] = makeKnowsAbout(f.KnowsAbout)
	org["areaServed"] = makeAreaServed(f)
	org["serviceArea"] = makeServiceArea(f)
	org["aggregateRating"] = makeAggregateRating(f.AggregateRatingValue, f.AggregateRatingCount)
	org["openingHoursSpecification"] = makeOpeningHours(f.OpeningHours)

	if len(f.Services) > 0 {
		org["hasOfferCatalog"] = makeOfferCatalog(f.Services, orgID(baseURL), f.BusinessName+" Services")
	}

	if len(f.SpecialOffers) > 0 {
		var offers []any

		for _, o := range f.SpecialOffers {
			if o.Name == "" {
				continue
			}

			offers = append(offers, pruneDoc(Doc{
				"@type":       "Offer",
				"name":        o.Name,
				"description": o.Description,
			}))
		}

		org["makesOffer"] = offers
	}

	if f.FounderName != "" {
		founder := Doc{
			"@type":      "Person",
			"@id":        personID(baseURL),
			"name":       f.FounderName,
			"jobTitle":   f.JobTitle,
			"sameAs":     makeSameAs(f.PersonSameAs),
			"knowsAbout": makeKnowsAbout(f.PersonKnowsAbout),
		}

		org["founder"] = pruneDoc(founder)
	}

	website := Doc{
		"@type":     "WebSite",
		"@id":       websiteID(baseURL),
		"url":       baseURL,
		"name":      f.BusinessName,
		"publisher": pruneDoc(org),
		"about":     ref(orgID(baseURL)),
	}

	doc := Doc{
		"@context":    Context,
		"@type":       "WebPage",
		"@id":         webpageID(baseURL),
		"url":         baseURL,
		"name":        orElse(f.PageTitle, f.BusinessName),
		"description": orElse(f.PageDescription, f.Description),
		"inLanguage":  orElse(f.Language, "en"),
		"mainEntity":  ref(orgID(baseURL)),
		"isPartOf":    website,
		"relatedLink": f.RelatedLinks,
	}

	return pruneDoc(doc)
}

// GenerateAboutPage builds an AboutPage whose main entity is the founder
// or primary person, carrying their expertise and credential signals.
// Person contact fields fall back to the business's own.
func GenerateAboutPage(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	aboutURL := utils.NormalizeURL(orElse(f.AboutPageURL, baseURL+"/about"))

	person := Doc{
		"@type":       "Person",
		"@id":         personID(baseURL),
		"name":        f.PersonDisplayName(),
		"url":         aboutURL,
		"description": f.PersonDescription,
		"jobTitle":    f.JobTitle,
		"email":       orElse(f.PersonEmail, f.Email),
		"telephone":   orElse(f.PersonTelephone, f.Telephone),
		"image":       f.PersonImage,
	}

	if baseURL != "" {
		person["worksFor"] = ref(orgID(baseURL))
	}

	topics := f.PersonKnowsAbout
	if len(topics) == 0 {
		topics = f.KnowsAbout
	}

	person["knowsAbout"] = makeKnowsAbout(topics)
	person["sameAs"] = makeSameAs(f.PersonSameAs)

	if f.AlumniOf != "" {
		alumni := Doc{"@type": "EducationalOrganization", "name": f.AlumniOf}
		if f.AlumniOfURL != "" {
			alumni["@id"] = f.AlumniOfURL
		}

		person["alumniOf"] = alumni
	}

	person["hasCredential"] = f.HasCredential
	person["knowsLanguage"] = f.KnowsLanguage

	doc := Doc{
		"@context":    Context,
		"@type":       "AboutPage",
		"@id":         webpageID(aboutURL),
		"url":         aboutURL,
		"name":        orElse(f.AboutPageTitle, "About "+f.BusinessName),
		"description": orElse(f.AboutPageDescription, f.PersonDescription),
		"inLanguage":  orElse(f.Language, "en"),
		"mainEntity":  pruneDoc(person),
		"isPartOf": Doc{
			"@type":     "WebSite",
			"@id":       websiteID(baseURL),
			"url":       baseURL,
			"publisher": ref(orgID(baseURL)),
		},
		"about":       ref(orgID(baseURL)),
		"relatedLink": f.RelatedLinks,
	}

	return pruneDoc(doc)
}

// GenerateContactPage builds a ContactPage with the organization's contact
// details inlined as the main entity.
func GenerateContactPage(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	contactURL := utils.NormalizeURL(orElse(f.ContactPageURL, baseURL+"/contact"))

	doc := Doc{
		"@context":    Context,
		"@type":       "ContactPage",
		"@id":         webpageID(contactURL),
		"url":         contactURL,
		"name":        orElse(f.ContactPageTitle, "Contact "+f.BusinessName),
		"description": f.ContactPageDescription,
		"inLanguage":  orElse(f.Language, "en"),
		"about":       ref(orgID(baseURL)),
		"mainEntity": pruneDoc(Doc{
			"@id":       orgID(baseURL),
			"@type":     orElse(f.SchemaSubtype, "Organization"),
			"name":      f.BusinessName,
			"telephone": f.Telephone,
			"email":     f.Email,
			"address":   makePostalAddress(f),
		}),
		"isPartOf": Doc{
			"@type":     "WebSite",
			"@id":       websiteID(baseURL),
			"url":       baseURL,
			"publisher": ref(orgID(baseURL)),
		},
	}

	return pruneDoc(doc)
}
