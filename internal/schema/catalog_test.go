package schema

import (
	"testing"

	"schemagen/internal/models"
)

func TestCleanServiceType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Hyphen separator", "Drain Cleaning - Austin TX", "Drain Cleaning"},
		{"Pipe separator", "AC Repair | Phoenix", "AC Repair"},
		{"En dash", "Roofing – Dallas", "Roofing"},
		{"Trailing punctuation", "Roofing.", "Roofing"},
		{"Clean input unchanged", "Water Heater Installation", "Water Heater Installation"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanServiceType(tt.input); got != tt.want {
				t.Errorf("cleanServiceType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsDeprecatedService(t *testing.T) {
	if !isDeprecatedService("https://acme.com/services/old-thing-deprecated") {
		t.Error("deprecated slug should be detected")
	}

	if !isDeprecatedService("https://acme.com/services/old-thing-deprecated/") {
		t.Error("trailing slash should not hide a deprecated slug")
	}

	if isDeprecatedService("https://acme.com/services/drain-cleaning") {
		t.Error("live service flagged as deprecated")
	}
}

func TestMakeOfferCatalog(t *testing.T) {
	services := []models.Service{
		{Name: "Drain Cleaning", URL: "https://acme.com/drain-cleaning", ServiceType: "Drain Cleaning - Austin TX"},
		{Name: "", URL: "https://acme.com/unnamed"},
		{Name: "Old Service", URL: "https://acme.com/old-service-deprecated"},
	}

	catalog := makeOfferCatalog(services, "https://acme.com/#organization", "Acme Services")
	if catalog == nil {
		t.Fatal("expected catalog")
	}

	items := catalog["itemListElement"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 offer after filtering, got %d", len(items))
	}

	offered := items[0].(Doc)["itemOffered"].(Doc)
	if offered["serviceType"] != "Drain Cleaning" {
		t.Errorf("serviceType not cleaned: %v", offered["serviceType"])
	}

	provider := offered["provider"].(Doc)
	if provider["@id"] != "https://acme.com/#organization" {
		t.Errorf("provider ref = %v", provider)
	}
}

func TestMakeOfferCatalogEmpty(t *testing.T) {
	catalog := makeOfferCatalog([]models.Service{{Name: "", URL: ""}}, "id", "name")
	if catalog != nil {
		t.Errorf("catalog with zero entries should be nil, got %v", catalog)
	}
}
