package schema

import (
	"errors"
	"fmt"

	"schemagen/internal/models"
)

var (
	// ErrUnknownKind is returned when a requested document kind has no
	// registered generator.
	ErrUnknownKind = errors.New("unknown schema kind")
	// ErrNilFacts is returned when Generate is called without a facts
	// record.
	ErrNilFacts = errors.New("facts record is nil")
)

// Kind identifies one generated document type.
type Kind string

const (
	KindOrganization      Kind = "organization"
	KindLocalBusiness     Kind = "local-business"
	KindOrganizationMulti Kind = "organization-multi"
	KindPerson            Kind = "person"
	KindWebsite           Kind = "website"
	KindHomepage          Kind = "homepage"
	KindAboutPage         Kind = "about"
	KindContactPage       Kind = "contact"
	KindService           Kind = "service"
	KindServiceMulti      Kind = "service-multi"
	KindProduct           Kind = "product"
	KindSaaSApp           Kind = "saas-app"
	KindSaaSPricing       Kind = "saas-pricing"
	KindFAQ               Kind = "faq"
	KindBlogPost          Kind = "blog"
	KindBreadcrumb        Kind = "breadcrumb"
)

// Kinds lists every supported document kind in output order.
func Kinds() []Kind {
	return []Kind{
		KindOrganization,
		KindLocalBusiness,
		KindOrganizationMulti,
		KindPerson,
		KindWebsite,
		KindHomepage,
		KindAboutPage,
		KindContactPage,
		KindService,
		KindServiceMulti,
		KindProduct,
		KindSaaSApp,
		KindSaaSPricing,
		KindFAQ,
		KindBlogPost,
		KindBreadcrumb,
	}
}

// FileKey returns the stable output-file key for the kind. Local business
// documents share the "organization" key since a run produces one or the
// other, never both.
func (k Kind) FileKey() string {
	switch k {
	case KindLocalBusiness:
		return "organization"
	case KindServiceMulti:
		return "services-multi"
	case KindSaaSApp:
		return "webapp"
	case KindSaaSPricing:
		return "pricing"
	default:
		return string(k)
	}
}

// GenerationError wraps a failure of one document kind so a batch run can
// keep going and report per-kind outcomes.
type GenerationError struct {
	Kind Kind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

var generators = map[Kind]func(*models.Facts) Doc{
	KindOrganization:      GenerateOrganization,
	KindLocalBusiness:     GenerateLocalBusiness,
	KindOrganizationMulti: GenerateMultiLocationOrg,
	KindPerson:            GeneratePerson,
	KindWebsite:           GenerateWebsite,
	KindHomepage:          GenerateHomepage,
	KindAboutPage:         GenerateAboutPage,
	KindContactPage:       GenerateContactPage,
	KindService:           GenerateServicePage,
	KindServiceMulti:      GenerateMultiServicePage,
	KindProduct:           GenerateProduct,
	KindSaaSApp:           GenerateSaaSApp,
	KindSaaSPricing:       GenerateSaaSPricingPage,
	KindFAQ:               GenerateFAQ,
	KindBlogPost:          GenerateBlogPost,
	KindBreadcrumb:        GenerateBreadcrumb,
}

// Generate builds the document of the given kind from the facts record.
func Generate(kind Kind, f *models.Facts) (Doc, error) {
	if f == nil {
		return nil, &GenerationError{Kind: kind, Err: ErrNilFacts}
	}

	gen, ok := generators[kind]
	if !ok {
		return nil, &GenerationError{Kind: kind, Err: ErrUnknownKind}
	}

	return gen(f), nil
}
