package schema

import (
	"strings"
	"unicode"

	"schemagen/internal/models"
)

// Scraped "city" lists are noisy: SEO page titles, postal codes, brand
// fragments, and navigation labels all get misidentified as place names.
// The filters below are deliberate pattern-matching approximations; a
// real city sharing a long word with the business name is dropped too.

// maxCityNameLen caps candidate place names; anything longer is a page
// title, not a place.
const maxCityNameLen = 40

// linkableCityTokens is the longest place name that still gets a derived
// reference link; compound names produce broken links too often.
const linkableCityTokens = 3

var cityMetaWords = map[string]bool{
	"area":      true,
	"areas":     true,
	"location":  true,
	"locations": true,
	"service":   true,
	"services":  true,
	"contact":   true,
	"home":      true,
}

var industryKeywords = []string{
	"plumbing", "plumber", "hvac", "heating", "cooling", "roofing",
	"dentist", "dental", "chiropractic", "landscaping", "electric",
	"electrician", "cleaning", "lawyer", "attorney", "law firm",
	"repair", "restoration", "remodeling", "pest control", "moving",
	"towing", "locksmith", "painting",
}

var seoSeparators = []string{" - ", " | ", "–", "—"}

var adminAreaMarkers = []string{"County", "Region", "District"}

// brandWords returns the lowercased words of the business name longer than
// three characters. A candidate city whose first word matches one is a
// brand fragment, not a place.
func brandWords(businessName string) map[string]bool {
	words := map[string]bool{}

	for _, w := range strings.Fields(strings.ToLower(businessName)) {
		if len(w) > 3 {
			words[w] = true
		}
	}

	return words
}

// isPlausibleCityName reports whether a scraped candidate looks like a
// real place name rather than SEO noise.
func isPlausibleCityName(name string, brand map[string]bool) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxCityNameLen {
		return false
	}

	// Postal codes and street numbers misparsed as cities.
	if strings.ContainsFunc(name, unicode.IsDigit) {
		return false
	}

	for _, sep := range seoSeparators {
		if strings.Contains(name, sep) {
			return false
		}
	}

	lower := strings.ToLower(name)
	if strings.Contains(lower, "near me") {
		return false
	}

	for _, kw := range industryKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}

	fields := strings.Fields(lower)
	for _, w := range fields {
		if cityMetaWords[w] {
			return false
		}
	}

	if len(fields) > 0 && brand[fields[0]] {
		return false
	}

	return true
}

func placeType(name string) string {
	for _, marker := range adminAreaMarkers {
		if strings.Contains(name, marker) {
			return "AdministrativeArea"
		}
	}

	return "City"
}

func cityIsLinkable(name string) bool {
	return len(strings.Fields(name)) <= linkableCityTokens && !strings.Contains(name, ",")
}

func wikipediaURL(name string) string {
	return "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(name, " ", "_")
}

// makeAreaServed resolves the areaServed value from city names, postal
// codes, a free-text area name, and the country. City candidates pass
// through the plausibility filter first; when nothing survives and no
// postal codes exist, the resolver falls back to the area name, then the
// country, then empty. A single resulting place is returned bare rather
// than wrapped in a list.
func makeAreaServed(f *models.Facts) OneOrMany {
	brand := brandWords(f.BusinessName)

	var cities []string

	for _, c := range f.Cities {
		if isPlausibleCityName(c, brand) {
			cities = append(cities, strings.TrimSpace(c))
		}
	}

	if len(cities) == 0 && len(f.PostalCodes) == 0 {
		if f.AreaServedName != "" {
			return OneOrMany{Doc{"@type": "AdministrativeArea", "name": f.AreaServedName}}
		}

		if f.Country != "" {
			return OneOrMany{Doc{"@type": "Country", "name": f.Country}}
		}

		return nil
	}

	var places OneOrMany

	for _, city := range cities {
		place := Doc{"@type": placeType(city), "name": city}
		if cityIsLinkable(city) {
			place["sameAs"] = wikipediaURL(city)
		}

		places = append(places, place)
	}

	if len(f.PostalCodes) > 0 {
		area := Doc{
			"@type": "AdministrativeArea",
			"geo":   makeGeoShape(f.PostalCodes),
		}
		if f.AreaServedName != "" {
			area["name"] = f.AreaServedName
		}

		places = append(places, area)
	}

	return places
}
