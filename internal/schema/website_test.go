package schema

import (
	"testing"

	"schemagen/internal/models"
)

func TestGenerateWebsite(t *testing.T) {
	f := &models.Facts{
		BusinessName: "Acme Plumbing",
		WebsiteURL:   "https://acme-plumbing.com",
	}

	doc := GenerateWebsite(f)

	if doc["@id"] != "https://acme-plumbing.com/#website" {
		t.Errorf("@id = %v", doc["@id"])
	}

	if doc["inLanguage"] != "en" {
		t.Errorf("inLanguage should default to en, got %v", doc["inLanguage"])
	}

	if _, ok := doc["potentialAction"]; ok {
		t.Error("SearchAction should be absent unless enabled")
	}

	f.EnableSearchAction = true
	doc = GenerateWebsite(f)

	action := doc["potentialAction"].(Doc)

	target := action["target"].(Doc)
	if target["urlTemplate"] != "https://acme-plumbing.com/?s={search_term_string}" {
		t.Errorf("urlTemplate = %v", target["urlTemplate"])
	}
}

func TestGenerateWebPage(t *testing.T) {
	f := &models.Facts{
		BusinessName: "Acme Plumbing",
		WebsiteURL:   "https://acme-plumbing.com",
		PageTitle:    "Emergency Plumbing",
		RelatedLinks: []string{"https://acme-plumbing.com/contact"},
	}

	doc := GenerateWebPage(f, "https://acme-plumbing.com/emergency", "CollectionPage")

	if doc["@type"] != "CollectionPage" {
		t.Errorf("@type = %v", doc["@type"])
	}

	if doc["@id"] != "https://acme-plumbing.com/emergency/#webpage" {
		t.Errorf("@id = %v", doc["@id"])
	}

	isPartOf := doc["isPartOf"].(Doc)
	if isPartOf["@id"] != "https://acme-plumbing.com/#website" {
		t.Errorf("isPartOf = %v", isPartOf)
	}

	// Falls back to the base URL and default type.
	doc = GenerateWebPage(f, "", "")
	if doc["@type"] != "WebPage" || doc["url"] != "https://acme-plumbing.com" {
		t.Errorf("fallback page = %v / %v", doc["@type"], doc["url"])
	}
}

func TestGenerateHomepageNesting(t *testing.T) {
	f := localBusinessFacts()
	f.Latitude = "30.2672"
	f.Longitude = "-97.7431"
	f.ServiceRadius = "50000"
	f.AggregateRatingValue = "4.9"
	f.AggregateRatingCount = "212"
	f.SpecialOffers = []models.SpecialOffer{{Name: "$50 off first visit"}}

	doc := GenerateHomepage(f)

	if doc["@type"] != "WebPage" {
		t.Errorf("top level should be WebPage, got %v", doc["@type"])
	}

	mainEntity := doc["mainEntity"].(Doc)
	if mainEntity["@id"] != "https://acme-plumbing.com/#organization" {
		t.Errorf("mainEntity = %v", mainEntity)
	}

	website := doc["isPartOf"].(Doc)
	if website["@type"] != "WebSite" {
		t.Fatalf("isPartOf = %v", website)
	}

	org := website["publisher"].(Doc)
	if org["@id"] != "https://acme-plumbing.com/#organization" {
		t.Errorf("nested org @id = %v", org["@id"])
	}

	types, ok := org["@type"].([]string)
	if !ok || types[0] != "Plumber" || types[1] != "Organization" {
		t.Errorf("nested org @type = %v", org["@type"])
	}

	if _, ok := org["geo"]; !ok {
		t.Error("nested org should carry geo")
	}

	if _, ok := org["serviceArea"]; !ok {
		t.Error("nested org should carry serviceArea")
	}

	rating := org["aggregateRating"].(Doc)
	if rating["reviewCount"] != 212 {
		t.Errorf("rating = %v", rating)
	}

	catalog := org["hasOfferCatalog"].(Doc)
	if catalog["name"] != "Acme Plumbing Services" {
		t.Errorf("catalog name = %v", catalog["name"])
	}

	offers := org["makesOffer"].([]any)
	if offers[0].(Doc)["name"] != "$50 off first visit" {
		t.Errorf("special offers = %v", offers)
	}

	founder := org["founder"].(Doc)
	if founder["name"] != "Jordan Reyes" {
		t.Errorf("founder = %v", founder)
	}
}

func TestGenerateHomepagePlainOrganization(t *testing.T) {
	f := &models.Facts{BusinessName: "CloudDesk", WebsiteURL: "https://clouddesk.io"}

	doc := GenerateHomepage(f)

	org := doc["isPartOf"].(Doc)["publisher"].(Doc)
	if org["@type"] != "Organization" {
		t.Errorf("@type = %v, want scalar Organization", org["@type"])
	}
}

func TestGenerateAboutPage(t *testing.T) {
	f := &models.Facts{
		BusinessName:      "Acme Plumbing",
		WebsiteURL:        "https://acme-plumbing.com",
		FounderName:       "Jordan Reyes",
		JobTitle:          "Master Plumber",
		PersonDescription: "Licensed master plumber with 20 years in the field.",
		Email:             "office@acme-plumbing.com",
		AlumniOf:          "Austin Community College",
		AlumniOfURL:       "https://www.austincc.edu",
	}

	doc := GenerateAboutPage(f)

	if doc["@type"] != "AboutPage" {
		t.Errorf("@type = %v", doc["@type"])
	}

	if doc["url"] != "https://acme-plumbing.com/about" {
		t.Errorf("default about URL = %v", doc["url"])
	}

	if doc["name"] != "About Acme Plumbing" {
		t.Errorf("default title = %v", doc["name"])
	}

	person := doc["mainEntity"].(Doc)
	if person["@id"] != "https://acme-plumbing.com/#person" {
		t.Errorf("person @id = %v", person["@id"])
	}

	// Person email falls back to the business address.
	if person["email"] != "office@acme-plumbing.com" {
		t.Errorf("person email = %v", person["email"])
	}

	worksFor := person["worksFor"].(Doc)
	if worksFor["@id"] != "https://acme-plumbing.com/#organization" {
		t.Errorf("worksFor = %v", worksFor)
	}

	alumni := person["alumniOf"].(Doc)
	if alumni["@id"] != "https://www.austincc.edu" {
		t.Errorf("alumniOf = %v", alumni)
	}
}

func TestGenerateContactPage(t *testing.T) {
	f := localBusinessFacts()

	doc := GenerateContactPage(f)

	if doc["@type"] != "ContactPage" {
		t.Errorf("@type = %v", doc["@type"])
	}

	if doc["url"] != "https://acme-plumbing.com/contact" {
		t.Errorf("default contact URL = %v", doc["url"])
	}

	entity := doc["mainEntity"].(Doc)
	if entity["@type"] != "Plumber" {
		t.Errorf("mainEntity @type = %v", entity["@type"])
	}

	if entity["telephone"] != "+1-512-555-0100" {
		t.Errorf("mainEntity telephone = %v", entity["telephone"])
	}

	addr := entity["address"].(Doc)
	if addr["postalCode"] != "78701" {
		t.Errorf("address = %v", addr)
	}
}
