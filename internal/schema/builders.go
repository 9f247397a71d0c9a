package schema

import (
	"strconv"
	"strings"

	"schemagen/internal/models"
)

// fillInPrefix marks a sameAs URL the enrichment step could not resolve.
// Such placeholders are never emitted.
const fillInPrefix = "FILL-IN:"

func makePostalAddress(f *models.Facts) Doc {
	return pruneDoc(Doc{
		"@type":           "PostalAddress",
		"streetAddress":   f.StreetAddress,
		"addressLocality": f.City,
		"addressRegion":   f.State,
		"postalCode":      f.PostalCode,
		"addressCountry":  f.Country,
	})
}

func makeLocationAddress(loc models.Location) Doc {
	return pruneDoc(Doc{
		"@type":           "PostalAddress",
		"streetAddress":   loc.StreetAddress,
		"addressLocality": loc.City,
		"addressRegion":   loc.State,
		"postalCode":      loc.PostalCode,
		"addressCountry":  loc.Country,
	})
}

// makeGeo builds a GeoCoordinates point. Both coordinates must parse as
// numbers; a parse failure yields an empty result, never an error.
func makeGeo(lat, lng string) Doc {
	latVal, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return nil
	}

	lngVal, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return nil
	}

	return Doc{
		"@type":     "GeoCoordinates",
		"latitude":  latVal,
		"longitude": lngVal,
	}
}

func makeGeoShape(postalCodes []string) Doc {
	if len(postalCodes) == 0 {
		return nil
	}

	return Doc{
		"@type":      "GeoShape",
		"postalCode": postalCodes,
	}
}

// makeServiceArea builds a GeoCircle around the business location. All of
// latitude, longitude, and radius must be present and the coordinates must
// parse; otherwise the result is empty.
func makeServiceArea(f *models.Facts) Doc {
	if f.ServiceRadius == "" {
		return nil
	}

	midpoint := makeGeo(f.Latitude, f.Longitude)
	if midpoint == nil {
		return nil
	}

	return Doc{
		"@type":       "GeoCircle",
		"geoMidpoint": midpoint,
		"geoRadius":   f.ServiceRadius,
	}
}

// makeAggregateRating parses the rating value as a number and the review
// count as an integer (digit group separators stripped, so "1,203" reads
// as 1203). Fixed best/worst bounds of 5/1. Malformed input yields an
// empty result.
func makeAggregateRating(value, count string) Doc {
	ratingValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}

	countClean := strings.ReplaceAll(strings.TrimSpace(count), ",", "")

	reviewCount, err := strconv.Atoi(countClean)
	if err != nil {
		return nil
	}

	return Doc{
		"@type":       "AggregateRating",
		"ratingValue": ratingValue,
		"reviewCount": reviewCount,
		"bestRating":  5,
		"worstRating": 1,
	}
}

func makeContactPoint(telephone, email string) Doc {
	if telephone == "" && email == "" {
		return nil
	}

	cp := Doc{"@type": "ContactPoint", "contactType": "Customer Service"}
	if telephone != "" {
		cp["telephone"] = telephone
	}

	if email != "" {
		cp["email"] = email
	}

	return cp
}

// upgradeScheme rewrites an http:// URL to https://.
func upgradeScheme(url string) string {
	if rest, ok := strings.CutPrefix(url, "http://"); ok {
		return "https://" + rest
	}

	return url
}

func makeLogo(url string) Doc {
	return makeImageObject(url)
}

func makeImageObject(url string) Doc {
	if url == "" {
		return nil
	}

	url = upgradeScheme(url)

	return Doc{"@type": "ImageObject", "contentUrl": url, "url": url}
}

// makeKnowsAbout maps topic records to Thing entries. Entries without a
// name are dropped. Only the Wikipedia URL is emitted as an external
// reference; machine-suggested Wikidata identifiers are too unreliable to
// pass through.
func makeKnowsAbout(topics []models.Topic) []any {
	var things []any

	for _, t := range topics {
		if t.Name == "" {
			continue
		}

		thing := Doc{"@type": "Thing", "name": t.Name}
		if t.WikipediaURL != "" {
			thing["sameAs"] = t.WikipediaURL
		}

		things = append(things, thing)
	}

	return things
}

// makeMentions maps topic records to typed mention entries, defaulting the
// type to Thing. Like makeKnowsAbout it passes through only the Wikipedia
// reference.
func makeMentions(topics []models.Topic) []any {
	var mentions []any

	for _, t := range topics {
		if t.Name == "" {
			continue
		}

		mention := Doc{"@type": orElse(t.Type, "Thing"), "name": t.Name}
		if t.WikipediaURL != "" {
			mention["sameAs"] = t.WikipediaURL
		}

		mentions = append(mentions, mention)
	}

	return mentions
}

// makeSameAs passes through non-empty URLs, dropping unresolved
// placeholders.
func makeSameAs(urls []string) []string {
	var kept []string

	for _, u := range urls {
		if u == "" || strings.HasPrefix(u, fillInPrefix) {
			continue
		}

		kept = append(kept, u)
	}

	return kept
}
