// Package validator checks a business facts record against the required
// fields and best practices of each document kind before generation.
// Errors block export; warnings are advisory.
package validator

import (
	"fmt"
	"strings"

	"schemagen/internal/models"
	"schemagen/internal/schema"
)

// Severity levels for validation issues.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is one validation finding on a facts field.
type Issue struct {
	Severity string
	Field    string
	Message  string
}

func errorIssue(field, message string) Issue {
	return Issue{Severity: SeverityError, Field: field, Message: message}
}

func warning(field, message string) Issue {
	return Issue{Severity: SeverityWarning, Field: field, Message: message}
}

// gbpMarkers identify a Google Business Profile URL inside sameAs.
var gbpMarkers = []string{"google.com/maps", "g.page", "business.site"}

func hasGBP(urls []string) bool {
	for _, u := range urls {
		for _, marker := range gbpMarkers {
			if strings.Contains(u, marker) {
				return true
			}
		}
	}

	return false
}

// CheckBusinessData validates the core identity fields shared by every
// organization-level document.
func CheckBusinessData(f *models.Facts) []Issue {
	var issues []Issue

	if strings.TrimSpace(f.BusinessName) == "" {
		issues = append(issues, errorIssue("business_name", "Business name is required."))
	}

	if strings.TrimSpace(f.WebsiteURL) == "" {
		issues = append(issues, errorIssue("website_url", "Website URL is required."))
	}

	if strings.TrimSpace(f.Description) == "" {
		issues = append(issues, warning("description", "Business description is missing. This is important for Google Knowledge Panel."))
	}

	if len(f.SameAs) == 0 {
		issues = append(issues, warning("same_as", "No sameAs profiles provided. Add Google Business Profile, social media, and Wikidata URLs to establish entity authority."))
	} else if !hasGBP(f.SameAs) {
		issues = append(issues, warning("same_as", "Google Business Profile URL not found in sameAs. This is a strong trust signal for local businesses."))
	}

	if len(f.KnowsAbout) == 0 {
		issues = append(issues, warning("knows_about", "No knowsAbout topics provided. Add Wikidata-linked topics to strengthen the knowledge graph."))
	} else {
		hasWikidata := false

		for _, t := range f.KnowsAbout {
			if t.WikidataID != "" {
				hasWikidata = true

				break
			}
		}

		if !hasWikidata {
			issues = append(issues, warning("knows_about", "knowsAbout topics have no Wikidata @id links. Add Wikidata URLs to anchor entities in the knowledge graph."))
		}
	}

	if strings.TrimSpace(f.LogoURL) == "" {
		issues = append(issues, warning("logo_url", "Logo URL is missing. Google requires a logo for Organization schema."))
	}

	if strings.TrimSpace(f.ImageURL) == "" {
		issues = append(issues, warning("image_url", "Image URL is missing. Google requires at least one image for LocalBusiness schema."))
	}

	return issues
}

// CheckLocalBusiness validates the additional fields Google requires or
// recommends for LocalBusiness rich results.
func CheckLocalBusiness(f *models.Facts) []Issue {
	issues := CheckBusinessData(f)

	if strings.TrimSpace(f.Telephone) == "" {
		issues = append(issues, errorIssue("telephone", "Telephone is required for LocalBusiness schema (Google requirement)."))
	}

	if strings.TrimSpace(f.StreetAddress) == "" && strings.TrimSpace(f.City) == "" {
		issues = append(issues, errorIssue("address", "Address (at minimum city) is required for LocalBusiness schema."))
	}

	if strings.TrimSpace(f.Country) == "" {
		issues = append(issues, warning("country", "Country is missing from address. Required by Google for LocalBusiness."))
	}

	if len(f.OpeningHours) == 0 {
		issues = append(issues, warning("opening_hours", "Opening hours not provided. Recommended for LocalBusiness rich results."))
	}

	if strings.TrimSpace(f.HasMap) == "" {
		issues = append(issues, warning("has_map", "Google Maps URL (hasMap) not provided. Strongly recommended for LocalBusiness entity anchoring."))
	}

	if len(f.Cities) == 0 && len(f.PostalCodes) == 0 {
		issues = append(issues, warning("area_served", "No areaServed cities or postal codes provided. Important for local SEO knowledge graph."))
	}

	if strings.TrimSpace(f.PriceRange) == "" {
		issues = append(issues, warning("price_range", "priceRange not set. Recommended for LocalBusiness (e.g., $, $$, $$$)."))
	}

	return issues
}

// CheckOrganization validates fields specific to non-local organizations.
func CheckOrganization(f *models.Facts) []Issue {
	issues := CheckBusinessData(f)

	if strings.TrimSpace(f.Email) == "" && strings.TrimSpace(f.Telephone) == "" {
		issues = append(issues, warning("contact", "No email or telephone provided. At least one contact method is recommended."))
	}

	if strings.TrimSpace(f.FoundingDate) == "" {
		issues = append(issues, warning("founding_date", "foundingDate not provided. Helps Google establish entity longevity."))
	}

	return issues
}

// CheckPerson validates the founder/person record. With no name at all the
// single advisory stands alone since no Person document will be produced.
func CheckPerson(f *models.Facts) []Issue {
	var issues []Issue

	if f.PersonDisplayName() == "" {
		issues = append(issues, warning("founder_name", "No person/founder name provided. Person schema won't be generated."))

		return issues
	}

	if len(f.PersonSameAs) == 0 {
		issues = append(issues, warning("person_same_as", "No person sameAs profiles (LinkedIn, etc.). Required for E-E-A-T author disambiguation."))
	}

	if len(f.PersonKnowsAbout) == 0 && len(f.KnowsAbout) == 0 {
		issues = append(issues, warning("person_knows_about", "Person has no knowsAbout topics. Add expertise areas with Wikidata links for E-E-A-T signals."))
	}

	if strings.TrimSpace(f.JobTitle) == "" {
		issues = append(issues, warning("job_title", "jobTitle not provided. Important for E-E-A-T expertise signals."))
	}

	return issues
}

// CheckService validates single service page fields.
func CheckService(f *models.Facts) []Issue {
	var issues []Issue

	if strings.TrimSpace(f.ServiceName) == "" {
		issues = append(issues, errorIssue("service_name", "Service name is required."))
	}

	if strings.TrimSpace(f.ServicePageURL) == "" {
		issues = append(issues, warning("service_page_url", "Service page URL not provided. @id will fall back to base URL."))
	}

	if strings.TrimSpace(f.ServiceDescription) == "" {
		issues = append(issues, warning("service_description", "Service description is missing. Recommended for rich results."))
	}

	return issues
}

// CheckBlogPost validates the fields Google requires for Article rich
// results.
func CheckBlogPost(f *models.Facts) []Issue {
	var issues []Issue

	if strings.TrimSpace(f.PostTitle) == "" {
		issues = append(issues, errorIssue("post_title", "Post title (headline) is required for BlogPosting schema."))
	}

	if strings.TrimSpace(f.PostURL) == "" {
		issues = append(issues, errorIssue("post_url", "Post URL is required."))
	}

	if strings.TrimSpace(f.DatePublished) == "" {
		issues = append(issues, errorIssue("date_published", "datePublished is required for Article/BlogPosting schema (Google requirement)."))
	}

	if strings.TrimSpace(f.PostImage) == "" {
		issues = append(issues, errorIssue("post_image", "Image is required for Article rich results (Google requirement)."))
	}

	if f.PersonDisplayName() == "" {
		issues = append(issues, warning("author", "No author provided. Adding author Person schema is important for E-E-A-T."))
	}

	if len(f.Mentions) == 0 {
		issues = append(issues, warning("mentions", "No mentions entities provided. Add Wikidata-linked entities to strengthen the knowledge graph for this article."))
	}

	return issues
}

// CheckFAQ validates question/answer pairs.
func CheckFAQ(f *models.Facts) []Issue {
	var issues []Issue

	if len(f.Questions) == 0 {
		issues = append(issues, errorIssue("questions", "At least one question/answer pair is required for FAQPage schema."))

		return issues
	}

	for i, q := range f.Questions {
		if strings.TrimSpace(q.Question) == "" {
			issues = append(issues, errorIssue(
				fmt.Sprintf("questions[%d].question", i),
				fmt.Sprintf("Question %d is missing the question text.", i+1),
			))
		}

		if strings.TrimSpace(q.Answer) == "" {
			issues = append(issues, errorIssue(
				fmt.Sprintf("questions[%d].answer", i),
				fmt.Sprintf("Question %d is missing the answer text.", i+1),
			))
		}
	}

	return issues
}

// CheckProduct validates product fields for Google rich results.
func CheckProduct(f *models.Facts) []Issue {
	var issues []Issue

	if strings.TrimSpace(f.ProductName) == "" {
		issues = append(issues, errorIssue("product_name", "Product name is required."))
	}

	if strings.TrimSpace(f.ProductImage) == "" && len(f.ProductImages) == 0 {
		issues = append(issues, errorIssue("product_image", "At least one product image is required for Product rich results (Google requirement)."))
	}

	if strings.TrimSpace(f.Price) == "" {
		issues = append(issues, errorIssue("price", "Price is required for Product rich results."))
	}

	if strings.TrimSpace(f.Currency) == "" {
		issues = append(issues, errorIssue("currency", "Price currency is required (e.g., USD, GBP, AUD)."))
	}

	if strings.TrimSpace(f.ProductDescription) == "" {
		issues = append(issues, warning("product_description", "Product description is missing. Strongly recommended."))
	}

	if strings.TrimSpace(f.SKU) == "" && strings.TrimSpace(f.GTIN13) == "" {
		issues = append(issues, warning("sku", "Neither SKU nor GTIN provided. At least one product identifier is recommended."))
	}

	if strings.TrimSpace(f.AggregateRatingValue) == "" {
		issues = append(issues, warning("aggregate_rating", "AggregateRating not provided. Ratings can improve CTR in search results."))
	}

	return issues
}

// CheckSaaS validates WebApplication fields.
func CheckSaaS(f *models.Facts) []Issue {
	var issues []Issue

	if strings.TrimSpace(f.AppName) == "" && strings.TrimSpace(f.BusinessName) == "" {
		issues = append(issues, errorIssue("app_name", "App/product name is required."))
	}

	if strings.TrimSpace(f.AppURL) == "" && strings.TrimSpace(f.WebsiteURL) == "" {
		issues = append(issues, errorIssue("app_url", "App URL is required for WebApplication schema."))
	}

	if len(f.PricingTiers) == 0 {
		issues = append(issues, warning("pricing_tiers", "No pricing tiers provided. AggregateOffer won't be generated."))
	}

	if strings.TrimSpace(f.AppCategory) == "" {
		issues = append(issues, warning("app_category", "applicationCategory not set. Recommended for WebApplication schema."))
	}

	return issues
}

// ForKind runs the check mapped to the document kind. Organization-level
// kinds branch on whether the business is a local one. Kinds with no
// mapped check return nil.
func ForKind(kind schema.Kind, localBusiness bool, f *models.Facts) []Issue {
	switch kind {
	case schema.KindHomepage, schema.KindOrganization, schema.KindLocalBusiness, schema.KindOrganizationMulti:
		if localBusiness {
			return CheckLocalBusiness(f)
		}

		return CheckOrganization(f)
	case schema.KindAboutPage, schema.KindPerson:
		return CheckPerson(f)
	case schema.KindService:
		return CheckService(f)
	case schema.KindBlogPost:
		return CheckBlogPost(f)
	case schema.KindFAQ:
		return CheckFAQ(f)
	case schema.KindProduct:
		return CheckProduct(f)
	case schema.KindSaaSApp, schema.KindSaaSPricing:
		return CheckSaaS(f)
	default:
		return nil
	}
}

// Split partitions issues into error and warning messages, each prefixed
// with the offending field.
func Split(issues []Issue) (errors, warnings []string) {
	for _, issue := range issues {
		msg := fmt.Sprintf("%s: %s", issue.Field, issue.Message)

		if issue.Severity == SeverityError {
			errors = append(errors, msg)
		} else {
			warnings = append(warnings, msg)
		}
	}

	return errors, warnings
}
