package schema

import (
	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

const fragBlogPosting = "blogposting"

// GenerateBlogPost builds a BlogPosting document with author and reviewer
// attribution, entity mentions, and the publishing organization linked by
// identifier.
func GenerateBlogPost(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	postURL := utils.NormalizeURL(f.PostURL)

	doc := Doc{
		"@context":      Context,
		"@type":         "BlogPosting",
		"@id":           utils.BuildID(orElse(postURL, baseURL), fragBlogPosting),
		"url":           postURL,
		"headline":      f.PostTitle,
		"name":          f.PostTitle,
		"description":   f.PostDescription,
		"articleBody":   f.ArticleBody,
		"keywords":      f.Keywords,
		"datePublished": f.DatePublished,
		"dateModified":  orElse(f.DateModified, f.DatePublished),
		"inLanguage":    orElse(f.Language, "en"),
	}

	authorName := f.PersonDisplayName()

	doc["author"] = Doc{
		"@type": "Person",
		"@id":   personID(baseURL),
		"name":  authorName,
	}

	if f.ReviewedByName != "" {
		doc["reviewedBy"] = pruneDoc(Doc{
			"@type":    "Person",
			"name":     f.ReviewedByName,
			"jobTitle": f.ReviewedByTitle,
		})
	} else if authorName != "" {
		doc["reviewedBy"] = Doc{"@type": "Person", "@id": personID(baseURL), "name": authorName}
	}

	if f.PostImage != "" {
		creator := ref(orgID(baseURL))
		if authorName != "" {
			creator = ref(personID(baseURL))
		}

		doc["image"] = Doc{
			"@type":                "ImageObject",
			"representativeOfPage": true,
			"contentUrl":           f.PostImage,
			"url":                  f.PostImage,
			"copyrightHolder":      ref(orgID(baseURL)),
			"creator":              creator,
		}
	}

	doc["publisher"] = ref(orgID(baseURL))

	doc["isPartOf"] = Doc{
		"@type":     "WebSite",
		"@id":       websiteID(baseURL),
		"url":       baseURL,
		"name":      f.BusinessName,
		"publisher": ref(orgID(baseURL)),
	}

	doc["mentions"] = makeMentions(f.Mentions)

	if f.WordCount > 0 {
		doc["wordCount"] = f.WordCount
	}

	doc["articleSection"] = f.ArticleSection

	doc["mainEntityOfPage"] = Doc{
		"@type": "WebPage",
		"@id":   webpageID(orElse(postURL, baseURL)),
	}

	return pruneDoc(doc)
}
