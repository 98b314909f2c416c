package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractAnchors returns absolute http(s) hrefs that mention none of the excluded hosts.
func extractAnchors(body string, excluded []string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}

	var urls []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(href, "http") || mentionsAny(href, excluded) {
			return
		}
		urls = append(urls, href)
	})
	return urls
}

func mentionsAny(s string, hosts []string) bool {
	for _, h := range hosts {
		if strings.Contains(s, h) {
			return true
		}
	}
	return false
}
