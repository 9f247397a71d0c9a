package schema

import (
	"reflect"
	"testing"

	"schemagen/internal/models"
)

func TestGenerateServicePage(t *testing.T) {
	f := &models.Facts{
		BusinessName:       "Acme Plumbing",
		WebsiteURL:         "https://acme-plumbing.com",
		ServiceName:        "Drain Cleaning",
		ServicePageURL:     "https://acme-plumbing.com/drain-cleaning",
		ServiceDescription: "Professional drain cleaning.",
		Cities:             []string{"Austin"},
		SubServices: []models.Service{
			{Name: "Hydro Jetting", URL: "https://acme-plumbing.com/hydro-jetting"},
			{Name: ""},
		},
	}

	doc := GenerateServicePage(f)

	if doc["@type"] != "WebPage" {
		t.Errorf("@type = %v", doc["@type"])
	}

	service := doc["mainEntity"].(Doc)
	if service["@id"] != "https://acme-plumbing.com/drain-cleaning/#service" {
		t.Errorf("service @id = %v", service["@id"])
	}

	if service["serviceType"] != "Drain Cleaning" {
		t.Errorf("serviceType should fall back to name, got %v", service["serviceType"])
	}

	provider := service["provider"].(Doc)
	if provider["@id"] != "https://acme-plumbing.com/#organization" {
		t.Errorf("provider = %v", provider)
	}

	catalog := service["hasOfferCatalog"].(Doc)
	if catalog["name"] != "Drain Cleaning Services" {
		t.Errorf("catalog name = %v", catalog["name"])
	}

	items := catalog["itemListElement"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 sub-service, got %d", len(items))
	}

	// Sub-services inherit the resolved areaServed verbatim.
	sub := items[0].(Doc)["itemOffered"].(Doc)
	if !reflect.DeepEqual(sub["areaServed"], service["areaServed"]) {
		t.Errorf("sub-service area %v != service area %v", sub["areaServed"], service["areaServed"])
	}

	// mainEntity and about are the same inlined service.
	if !reflect.DeepEqual(doc["mainEntity"], doc["about"]) {
		t.Error("mainEntity and about should match")
	}
}

func TestGenerateServicePageFragmentFallback(t *testing.T) {
	f := &models.Facts{
		BusinessName: "Acme Plumbing",
		WebsiteURL:   "https://acme-plumbing.com",
		ServiceName:  "Water Heater Repair",
	}

	doc := GenerateServicePage(f)

	service := doc["mainEntity"].(Doc)
	if service["@id"] != "https://acme-plumbing.com/#service-water-heater-repair" {
		t.Errorf("service @id = %v", service["@id"])
	}

	if service["url"] != "https://acme-plumbing.com" {
		t.Errorf("service url should fall back to base, got %v", service["url"])
	}
}

func TestGenerateMultiServicePage(t *testing.T) {
	f := &models.Facts{
		BusinessName: "Acme Plumbing",
		WebsiteURL:   "https://acme-plumbing.com",
		ServiceCategories: []models.ServiceCategory{
			{
				Name: "Residential",
				URL:  "https://acme-plumbing.com/residential",
				Services: []models.Service{
					{Name: "Leak Repair"},
					{Name: ""},
				},
			},
			{},
		},
	}

	doc := GenerateMultiServicePage(f)

	graph := doc["@graph"].([]any)
	if len(graph) != 3 {
		t.Fatalf("expected webpage + 2 service nodes, got %d", len(graph))
	}

	page := graph[0].(Doc)
	if page["@id"] != "https://acme-plumbing.com/services/#webpage" {
		t.Errorf("page @id = %v", page["@id"])
	}

	if page["name"] != "Services — Acme Plumbing" {
		t.Errorf("default page name = %v", page["name"])
	}

	residential := graph[1].(Doc)
	if residential["@id"] != "https://acme-plumbing.com/residential/#service-1" {
		t.Errorf("category @id = %v", residential["@id"])
	}

	catalog := residential["hasOfferCatalog"].(Doc)
	if len(catalog["itemListElement"].([]any)) != 1 {
		t.Errorf("unnamed sub-service should be dropped: %v", catalog["itemListElement"])
	}

	// A nameless category gets a positional name.
	unnamed := graph[2].(Doc)
	if unnamed["name"] != "Service 2" {
		t.Errorf("positional name = %v", unnamed["name"])
	}
}
