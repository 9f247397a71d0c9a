package schema

import "schemagen/pkg/utils"

// Fragment names for the fixed entities every run shares.
const (
	fragOrganization = "organization"
	fragPerson       = "person"
	fragWebsite      = "website"
	fragWebpage      = "webpage"
)

func orgID(baseURL string) string {
	return utils.BuildID(baseURL, fragOrganization)
}

func personID(baseURL string) string {
	return utils.BuildID(baseURL, fragPerson)
}

func websiteID(baseURL string) string {
	return utils.BuildID(baseURL, fragWebsite)
}

func webpageID(pageURL string) string {
	return utils.BuildID(pageURL, fragWebpage)
}

func ref(id string) Doc {
	return Doc{"@id": id}
}
