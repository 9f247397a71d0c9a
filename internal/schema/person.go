package schema

import (
	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

// GeneratePerson builds the full Person document for the founder or
// primary author, carrying the E-E-A-T signals (expertise topics,
// credentials, education, profile links). Whenever a base URL is known the
// person back-references the Organization via worksFor/owns, independent
// of whether an Organization document exists in the same output.
func GeneratePerson(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)

	doc := Doc{
		"@context":      Context,
		"@type":         "Person",
		"@id":           personID(baseURL),
		"name":          f.PersonDisplayName(),
		"alternateName": f.PersonAlternateName,
		"description":   f.PersonDescription,
		"url":           orElse(f.PersonURL, baseURL),
		"email":         f.PersonEmail,
		"telephone":     f.PersonTelephone,
		"gender":        f.Gender,
		"nationality":   f.Nationality,
		"birthDate":     f.BirthDate,
		"birthPlace":    f.BirthPlace,
		"memberOf":      f.MemberOf,
		"image":         f.PersonImage,
	}

	if f.JobTitle != "" {
		jobTitle := Doc{"@type": "DefinedTerm", "name": f.JobTitle}
		if f.JobTitleSameAs != "" {
			jobTitle["sameAs"] = f.JobTitleSameAs
		}

		doc["jobTitle"] = jobTitle
	}

	if baseURL != "" {
		doc["worksFor"] = ref(orgID(baseURL))
		doc["owns"] = ref(orgID(baseURL))
	}

	doc["knowsAbout"] = makeKnowsAbout(f.PersonKnowsAbout)
	doc["knowsLanguage"] = f.KnowsLanguage

	if f.AlumniOf != "" {
		alumni := Doc{"@type": "EducationalOrganization", "name": f.AlumniOf}
		if f.AlumniOfURL != "" {
			alumni["@id"] = f.AlumniOfURL
		}

		doc["alumniOf"] = alumni
	}

	doc["hasCredential"] = f.HasCredential
	doc["award"] = f.Award
	doc["sameAs"] = makeSameAs(f.PersonSameAs)
	doc["address"] = makePostalAddress(f)

	return pruneDoc(doc)
}

// authorReference is the compact Person used as author/reviewedBy in
// BlogPosting and FAQPage documents. Empty when no person name is known.
func authorReference(f *models.Facts, baseURL string) Doc {
	name := f.PersonDisplayName()
	if name == "" {
		return nil
	}

	return Doc{
		"@type": "Person",
		"@id":   personID(baseURL),
		"name":  name,
	}
}
