package extraction

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DescriptionText reduces a job posting's stored HTML description to plain
// text. Job boards persist descriptions as markup; scoring and prompts
// want prose. Non-HTML input passes through unchanged.
func DescriptionText(description string) string {
	if !strings.Contains(description, "<") {
		return strings.TrimSpace(description)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return strings.TrimSpace(description)
	}

	doc.Find("script, style, noscript").Remove()

	// Line breaks for block-level boundaries so lists stay readable.
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})
	doc.Find("p, li, div, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return normalizeWhitespace(doc.Text())
}
