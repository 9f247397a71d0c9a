// Package models defines the business facts record consumed by the schema
// generators and validators.
package models

// Facts is everything known about one business and the pages being marked
// up. Every field is optional: generators omit the dependent property when
// a field is absent, and required-ness is enforced only by the validator.
// The record is read-only input per call; generators never mutate it.
type Facts struct {
	// Identity
	BusinessName              string `yaml:"business_name" json:"business_name"`
	WebsiteURL                string `yaml:"website_url" json:"website_url"`
	LegalName                 string `yaml:"legal_name" json:"legal_name"`
	AlternateName             string `yaml:"alternate_name" json:"alternate_name"`
	ClientSlug                string `yaml:"client_slug" json:"client_slug"`
	Description               string `yaml:"description" json:"description"`
	DisambiguatingDescription string `yaml:"disambiguating_description" json:"disambiguating_description"`
	Slogan                    string `yaml:"slogan" json:"slogan"`
	SchemaSubtype             string `yaml:"schema_subtype" json:"schema_subtype"`
	Language                  string `yaml:"language" json:"language"`

	// Contact and commerce
	Telephone          string `yaml:"telephone" json:"telephone"`
	Email              string `yaml:"email" json:"email"`
	FoundingDate       string `yaml:"founding_date" json:"founding_date"`
	FoundingLocation   string `yaml:"founding_location" json:"founding_location"`
	PriceRange         string `yaml:"price_range" json:"price_range"`
	PaymentAccepted    string `yaml:"payment_accepted" json:"payment_accepted"`
	CurrenciesAccepted string `yaml:"currencies_accepted" json:"currencies_accepted"`
	ParentOrganization string `yaml:"parent_organization" json:"parent_organization"`

	// Address and geo
	StreetAddress string `yaml:"street_address" json:"street_address"`
	City          string `yaml:"city" json:"city"`
	State         string `yaml:"state" json:"state"`
	PostalCode    string `yaml:"postal_code" json:"postal_code"`
	Country       string `yaml:"country" json:"country"`
	Latitude      string `yaml:"latitude" json:"latitude"`
	Longitude     string `yaml:"longitude" json:"longitude"`
	ServiceRadius string `yaml:"service_radius" json:"service_radius"`

	// Media and authority signals
	LogoURL         string   `yaml:"logo_url" json:"logo_url"`
	ImageURL        string   `yaml:"image_url" json:"image_url"`
	HasMap          string   `yaml:"has_map" json:"has_map"`
	SameAs          []string `yaml:"same_as" json:"same_as"`
	AdditionalTypes []string `yaml:"additional_types" json:"additional_types"`
	KnowsAbout      []Topic  `yaml:"knows_about" json:"knows_about"`

	// Aggregate rating
	AggregateRatingValue string `yaml:"aggregate_rating_value" json:"aggregate_rating_value"`
	AggregateRatingCount string `yaml:"aggregate_rating_count" json:"aggregate_rating_count"`

	// Founder / primary person (E-E-A-T)
	FounderName         string   `yaml:"founder_name" json:"founder_name"`
	PersonName          string   `yaml:"person_name" json:"person_name"`
	PersonAlternateName string   `yaml:"person_alternate_name" json:"person_alternate_name"`
	PersonDescription   string   `yaml:"person_description" json:"person_description"`
	PersonURL           string   `yaml:"person_url" json:"person_url"`
	PersonEmail         string   `yaml:"person_email" json:"person_email"`
	PersonTelephone     string   `yaml:"person_telephone" json:"person_telephone"`
	PersonImage         string   `yaml:"person_image" json:"person_image"`
	JobTitle            string   `yaml:"job_title" json:"job_title"`
	JobTitleSameAs      string   `yaml:"job_title_same_as" json:"job_title_same_as"`
	Gender              string   `yaml:"gender" json:"gender"`
	Nationality         string   `yaml:"nationality" json:"nationality"`
	BirthDate           string   `yaml:"birth_date" json:"birth_date"`
	BirthPlace          string   `yaml:"birth_place" json:"birth_place"`
	MemberOf            string   `yaml:"member_of" json:"member_of"`
	AlumniOf            string   `yaml:"alumni_of" json:"alumni_of"`
	AlumniOfURL         string   `yaml:"alumni_of_url" json:"alumni_of_url"`
	Award               string   `yaml:"award" json:"award"`
	HasCredential       string   `yaml:"has_credential" json:"has_credential"`
	KnowsLanguage       string   `yaml:"knows_language" json:"knows_language"`
	PersonSameAs        []string `yaml:"person_same_as" json:"person_same_as"`
	PersonKnowsAbout    []Topic  `yaml:"person_knows_about" json:"person_knows_about"`

	// Area served
	Cities         []string `yaml:"cities" json:"cities"`
	PostalCodes    []string `yaml:"postal_codes" json:"postal_codes"`
	AreaServedName string   `yaml:"area_served_name" json:"area_served_name"`

	// Collections
	OpeningHours      []OpeningHours    `yaml:"opening_hours" json:"opening_hours"`
	Services          []Service         `yaml:"services" json:"services"`
	SubServices       []Service         `yaml:"sub_services" json:"sub_services"`
	ServiceCategories []ServiceCategory `yaml:"service_categories" json:"service_categories"`
	SpecialOffers     []SpecialOffer    `yaml:"special_offers" json:"special_offers"`
	Locations         []Location        `yaml:"locations" json:"locations"`

	// Homepage / generic page overrides
	PageTitle        string   `yaml:"page_title" json:"page_title"`
	PageDescription  string   `yaml:"page_description" json:"page_description"`
	RelatedLinks     []string `yaml:"related_links" json:"related_links"`
	SignificantLinks []string `yaml:"significant_links" json:"significant_links"`

	// WebSite
	EnableSearchAction bool `yaml:"enable_search_action" json:"enable_search_action"`

	// About page
	AboutPageURL         string `yaml:"about_page_url" json:"about_page_url"`
	AboutPageTitle       string `yaml:"about_page_title" json:"about_page_title"`
	AboutPageDescription string `yaml:"about_page_description" json:"about_page_description"`

	// Contact page
	ContactPageURL         string `yaml:"contact_page_url" json:"contact_page_url"`
	ContactPageTitle       string `yaml:"contact_page_title" json:"contact_page_title"`
	ContactPageDescription string `yaml:"contact_page_description" json:"contact_page_description"`

	// Single service page
	ServiceName            string `yaml:"service_name" json:"service_name"`
	ServicePageURL         string `yaml:"service_page_url" json:"service_page_url"`
	ServicePageTitle       string `yaml:"service_page_title" json:"service_page_title"`
	ServicePageDescription string `yaml:"service_page_description" json:"service_page_description"`
	ServiceDescription     string `yaml:"service_description" json:"service_description"`
	ServiceType            string `yaml:"service_type" json:"service_type"`
	ServiceAudience        string `yaml:"service_audience" json:"service_audience"`
	ServiceAdditionalType  string `yaml:"service_additional_type" json:"service_additional_type"`

	// Multi-service page
	ServicesPageURL         string `yaml:"services_page_url" json:"services_page_url"`
	ServicesPageTitle       string `yaml:"services_page_title" json:"services_page_title"`
	ServicesPageDescription string `yaml:"services_page_description" json:"services_page_description"`

	// Blog post
	PostURL         string  `yaml:"post_url" json:"post_url"`
	PostTitle       string  `yaml:"post_title" json:"post_title"`
	PostDescription string  `yaml:"post_description" json:"post_description"`
	ArticleBody     string  `yaml:"article_body" json:"article_body"`
	Keywords        string  `yaml:"keywords" json:"keywords"`
	DatePublished   string  `yaml:"date_published" json:"date_published"`
	DateModified    string  `yaml:"date_modified" json:"date_modified"`
	PostImage       string  `yaml:"post_image" json:"post_image"`
	WordCount       int     `yaml:"word_count" json:"word_count"`
	ArticleSection  string  `yaml:"article_section" json:"article_section"`
	Mentions        []Topic `yaml:"mentions" json:"mentions"`
	ReviewedByName  string  `yaml:"reviewed_by_name" json:"reviewed_by_name"`
	ReviewedByTitle string  `yaml:"reviewed_by_title" json:"reviewed_by_title"`

	// FAQ page
	FAQPageURL         string     `yaml:"faq_page_url" json:"faq_page_url"`
	FAQPageTitle       string     `yaml:"faq_page_title" json:"faq_page_title"`
	FAQPageDescription string     `yaml:"faq_page_description" json:"faq_page_description"`
	Questions          []Question `yaml:"questions" json:"questions"`

	// Product
	ProductURL             string   `yaml:"product_url" json:"product_url"`
	ProductName            string   `yaml:"product_name" json:"product_name"`
	ProductDescription     string   `yaml:"product_description" json:"product_description"`
	ProductDisambiguating  string   `yaml:"product_disambiguating" json:"product_disambiguating"`
	ProductSlogan          string   `yaml:"product_slogan" json:"product_slogan"`
	SKU                    string   `yaml:"sku" json:"sku"`
	MPN                    string   `yaml:"mpn" json:"mpn"`
	GTIN                   string   `yaml:"gtin" json:"gtin"`
	GTIN13                 string   `yaml:"gtin13" json:"gtin13"`
	Color                  string   `yaml:"color" json:"color"`
	Material               string   `yaml:"material" json:"material"`
	Pattern                string   `yaml:"pattern" json:"pattern"`
	Category               string   `yaml:"category" json:"category"`
	ProductImage           string   `yaml:"product_image" json:"product_image"`
	ProductImages          []string `yaml:"product_images" json:"product_images"`
	Price                  string   `yaml:"price" json:"price"`
	Currency               string   `yaml:"currency" json:"currency"`
	Availability           string   `yaml:"availability" json:"availability"`
	PriceValidUntil        string   `yaml:"price_valid_until" json:"price_valid_until"`
	BestRating             string   `yaml:"best_rating" json:"best_rating"`
	WorstRating            string   `yaml:"worst_rating" json:"worst_rating"`
	IsRelatedTo            string   `yaml:"is_related_to" json:"is_related_to"`
	ShippingRate           *string  `yaml:"shipping_rate" json:"shipping_rate"`
	ShippingCountry        string   `yaml:"shipping_country" json:"shipping_country"`
	HandlingTimeMin        int      `yaml:"handling_time_min" json:"handling_time_min"`
	HandlingTimeMax        int      `yaml:"handling_time_max" json:"handling_time_max"`
	TransitTimeMin         int      `yaml:"transit_time_min" json:"transit_time_min"`
	TransitTimeMax         int      `yaml:"transit_time_max" json:"transit_time_max"`
	ReturnDays             int      `yaml:"return_days" json:"return_days"`
	ReturnPolicyCountry    string   `yaml:"return_policy_country" json:"return_policy_country"`
	ReturnMethod           string   `yaml:"return_method" json:"return_method"`
	ReturnFees             string   `yaml:"return_fees" json:"return_fees"`
	Reviews                []Review `yaml:"reviews" json:"reviews"`

	// SaaS / WebApplication
	AppURL              string        `yaml:"app_url" json:"app_url"`
	AppName             string        `yaml:"app_name" json:"app_name"`
	AppDescription      string        `yaml:"app_description" json:"app_description"`
	MarketingURL        string        `yaml:"marketing_url" json:"marketing_url"`
	AppCategory         string        `yaml:"app_category" json:"app_category"`
	AppSuite            string        `yaml:"app_suite" json:"app_suite"`
	BrowserRequirements string        `yaml:"browser_requirements" json:"browser_requirements"`
	OperatingSystem     string        `yaml:"operating_system" json:"operating_system"`
	Permissions         string        `yaml:"permissions" json:"permissions"`
	ReleaseNotesURL     string        `yaml:"release_notes_url" json:"release_notes_url"`
	PricingTiers        []PricingTier `yaml:"pricing_tiers" json:"pricing_tiers"`

	// SaaS pricing page
	PricingPageURL         string `yaml:"pricing_page_url" json:"pricing_page_url"`
	PricingPageTitle       string `yaml:"pricing_page_title" json:"pricing_page_title"`
	PricingPageDescription string `yaml:"pricing_page_description" json:"pricing_page_description"`

	// Breadcrumb
	BreadcrumbItems []BreadcrumbItem `yaml:"breadcrumb_items" json:"breadcrumb_items"`
	CurrentPageURL  string           `yaml:"current_page_url" json:"current_page_url"`
}

// PersonDisplayName returns the founder name, falling back to the
// standalone person name.
func (f *Facts) PersonDisplayName() string {
	if f.FounderName != "" {
		return f.FounderName
	}

	return f.PersonName
}

// Topic is one knowsAbout/mentions entry. WikidataID is accepted as input
// but never emitted; only the Wikipedia URL becomes an external reference.
type Topic struct {
	Name         string `yaml:"name" json:"name"`
	Type         string `yaml:"type" json:"type"`
	WikidataID   string `yaml:"wikidata_id" json:"wikidata_id"`
	WikipediaURL string `yaml:"wikipedia_url" json:"wikipedia_url"`
}

// OpeningHours is one raw (day, opens, closes) entry before consolidation.
type OpeningHours struct {
	Day    string `yaml:"day" json:"day"`
	Opens  string `yaml:"opens" json:"opens"`
	Closes string `yaml:"closes" json:"closes"`
}

// Service is one offered service (top-level or sub-service).
type Service struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	ServiceType string `yaml:"service_type" json:"service_type"`
	Description string `yaml:"description" json:"description"`
	Audience    string `yaml:"audience" json:"audience"`
}

// ServiceCategory groups services on a multi-service page.
type ServiceCategory struct {
	Name        string    `yaml:"name" json:"name"`
	URL         string    `yaml:"url" json:"url"`
	ServiceType string    `yaml:"service_type" json:"service_type"`
	Description string    `yaml:"description" json:"description"`
	Services    []Service `yaml:"services" json:"services"`
}

// SpecialOffer is a promotional offer listed on the homepage.
type SpecialOffer struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Location is one physical location of a multi-location organization.
type Location struct {
	Name          string         `yaml:"name" json:"name"`
	URL           string         `yaml:"url" json:"url"`
	Telephone     string         `yaml:"telephone" json:"telephone"`
	Email         string         `yaml:"email" json:"email"`
	StreetAddress string         `yaml:"street_address" json:"street_address"`
	City          string         `yaml:"city" json:"city"`
	State         string         `yaml:"state" json:"state"`
	PostalCode    string         `yaml:"postal_code" json:"postal_code"`
	Country       string         `yaml:"country" json:"country"`
	OpeningHours  []OpeningHours `yaml:"opening_hours" json:"opening_hours"`
}

// Question is one FAQ question/answer pair. AnswerLinks are anchor phrases
// substituted into the answer text as inline HTML links.
type Question struct {
	Question    string       `yaml:"question" json:"question"`
	Answer      string       `yaml:"answer" json:"answer"`
	AnswerLinks []AnswerLink `yaml:"answer_links" json:"answer_links"`
	Mentions    []Topic      `yaml:"mentions" json:"mentions"`
}

// AnswerLink maps an anchor phrase in an answer to a target URL.
type AnswerLink struct {
	AnchorText string `yaml:"anchor_text" json:"anchor_text"`
	URL        string `yaml:"url" json:"url"`
}

// Review is one customer review attached to a product.
type Review struct {
	Author string `yaml:"author" json:"author"`
	Date   string `yaml:"date" json:"date"`
	Title  string `yaml:"title" json:"title"`
	Body   string `yaml:"body" json:"body"`
	Rating string `yaml:"rating" json:"rating"`
}

// PricingTier is one plan on a SaaS pricing page.
type PricingTier struct {
	Name          string `yaml:"name" json:"name"`
	Price         string `yaml:"price" json:"price"`
	URL           string `yaml:"url" json:"url"`
	BillingPeriod string `yaml:"billing_period" json:"billing_period"`
	Description   string `yaml:"description" json:"description"`
}

// BreadcrumbItem is one entry in a breadcrumb trail.
type BreadcrumbItem struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}
