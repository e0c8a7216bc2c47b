package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTML extracts visible text from an HTML document, such as a job
// posting copied from a careers page. Script, style and navigation chrome
// are dropped; block elements become separate lines so section labels keep
// their line boundaries.
func ExtractHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExtractionError{Format: "html", Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Skip containers; only leaf-level text becomes a line.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	// Fallback for documents without recognizable block structure.
	if sb.Len() == 0 {
		return CleanText(doc.Text()), nil
	}

	return CleanText(sb.String()), nil
}
