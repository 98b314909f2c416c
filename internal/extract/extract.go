// Package extract pulls graduate counts and employment/signing rates out of
// free-form Chinese web pages.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"EmploymentReport/internal/domain"
)

var (
	graduatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`毕业[生人数]+[:：]?(\d+[万千]?)人`),
		regexp.MustCompile(`(\d+[万千]?)毕业生`),
		regexp.MustCompile(`共(\d+[万千]?)名毕业生`),
	}
	employmentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`就业率[:：]?(\d+\.?\d*)%`),
		regexp.MustCompile(`就业.*?(\d+\.?\d*)%`),
	}
	signingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`签约率[:：]?(\d+\.?\d*)%`),
		regexp.MustCompile(`签(?:约|三方)[^%]*(\d+\.?\d*)%`),
	}
)

var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
}

// FromHTML extracts the first match of each field from the page text.
// Values are not range-checked; a field with no match stays nil.
func FromHTML(page string) domain.PageExtraction {
	text := Text(page)

	out := domain.PageExtraction{ContentLength: utf8.RuneCountInString(page)}
	if v, ok := firstMatch(graduatePatterns, text); ok {
		out.TotalGraduates = &v
	}
	out.EmploymentRate = firstRate(employmentPatterns, text)
	out.SigningRate = firstRate(signingPatterns, text)
	return out
}

// Text flattens an HTML document into whitespace-joined visible text.
func Text(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return page
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skippedElements[n.Data]; skip {
				return
			}
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " ")
}

func firstMatch(patterns []*regexp.Regexp, text string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func firstRate(patterns []*regexp.Regexp, text string) *float64 {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return &v
	}
	return nil
}
