package schema

import (
	"strings"

	"schemagen/internal/models"
	"schemagen/pkg/utils"
)

const fragFAQPage = "faqpage"

// buildAnswerText inserts inline HTML links into an answer. Only the first
// occurrence of each anchor phrase is linked, and href uses single quotes
// so the markup survives JSON-LD embedding in double-quoted attributes.
func buildAnswerText(text string, links []models.AnswerLink) string {
	for _, l := range links {
		if l.AnchorText == "" || l.URL == "" {
			continue
		}

		text = strings.Replace(text, l.AnchorText, "<a href='"+l.URL+"'>"+l.AnchorText+"</a>", 1)
	}

	return text
}

// makeQuestions maps question/answer pairs to Question entries, skipping
// pairs missing either side. Per-answer mentions are attached when present.
func makeQuestions(questions []models.Question) []any {
	var entries []any

	for _, q := range questions {
		if q.Question == "" || q.Answer == "" {
			continue
		}

		answer := Doc{
			"@type": "Answer",
			"text":  buildAnswerText(q.Answer, q.AnswerLinks),
		}

		if mentions := makeMentions(q.Mentions); len(mentions) > 0 {
			answer["mentions"] = mentions
		}

		entries = append(entries, Doc{
			"@type":          "Question",
			"name":           q.Question,
			"acceptedAnswer": answer,
		})
	}

	return entries
}

// reviewedBy attributes review to the founder when known, otherwise to
// the organization itself.
func reviewedBy(f *models.Facts, baseURL string) Doc {
	if name := f.PersonDisplayName(); name != "" {
		return Doc{"@type": "Person", "@id": personID(baseURL), "name": name}
	}

	return ref(orgID(baseURL))
}

// GenerateFAQ builds a standalone FAQPage document nested under its
// WebPage and WebSite.
func GenerateFAQ(f *models.Facts) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	faqURL := utils.NormalizeURL(orElse(f.FAQPageURL, baseURL+"/faq"))

	doc := Doc{
		"@context":    Context,
		"@type":       "FAQPage",
		"@id":         utils.BuildID(faqURL, fragFAQPage),
		"url":         faqURL,
		"name":        orElse(f.FAQPageTitle, "FAQ — "+f.BusinessName),
		"description": f.FAQPageDescription,
		"inLanguage":  orElse(f.Language, "en"),
		"author":      ref(orgID(baseURL)),
		"reviewedBy":  reviewedBy(f, baseURL),
		"mainEntity":  makeQuestions(f.Questions),
		"isPartOf": Doc{
			"@type": "WebPage",
			"@id":   webpageID(faqURL),
			"url":   faqURL,
			"isPartOf": Doc{
				"@type":     "WebSite",
				"@id":       websiteID(baseURL),
				"url":       baseURL,
				"publisher": ref(orgID(baseURL)),
			},
		},
	}

	return pruneDoc(doc)
}

// GenerateFAQNestedInPage builds a @graph pairing an existing page with a
// FAQPage node attached to it, for FAQ sections embedded in service pages
// or articles.
func GenerateFAQNestedInPage(f *models.Facts, pageURL string) Doc {
	baseURL := utils.NormalizeURL(f.WebsiteURL)
	page := utils.NormalizeURL(pageURL)

	webpage := pruneDoc(Doc{
		"@type":       "WebPage",
		"@id":         webpageID(page),
		"url":         page,
		"name":        f.PageTitle,
		"description": f.PageDescription,
		"inLanguage":  orElse(f.Language, "en"),
		"isPartOf": Doc{
			"@type":     "WebSite",
			"@id":       websiteID(baseURL),
			"url":       baseURL,
			"publisher": ref(orgID(baseURL)),
		},
	})

	faq := pruneDoc(Doc{
		"@type":      "FAQPage",
		"@id":        utils.BuildID(page, fragFAQPage),
		"author":     ref(orgID(baseURL)),
		"reviewedBy": reviewedBy(f, baseURL),
		"mainEntity": makeQuestions(f.Questions),
		"isPartOf":   ref(webpageID(page)),
	})

	return Doc{"@context": Context, "@graph": []any{webpage, faq}}
}
