package resume

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLPreview extracts the readable text of an HTML resume so the user can
// confirm the right file was picked before it leaves the machine. Boiler-
// plate containers are dropped; remaining text blocks are joined in
// document order.
func HTMLPreview(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}
	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()

	var blocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > 0 {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) > 0 {
		return strings.Join(blocks, "\n"), nil
	}
	return strings.TrimSpace(doc.Find("body").Text()), nil
}
