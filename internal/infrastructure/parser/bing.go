package parser

import (
	"fmt"
	"net/url"
	"strconv"

	"EmploymentReport/internal/search"
)

const bingSearchURL = "https://www.bing.com/search"

var bingOwnHosts = []string{"bing.com", "microsoft.com", "live.com", "msn.com"}

// BingEngine paginates by result offset and is scraped through its anchors.
type BingEngine struct {
	baseURL string
}

var _ search.Engine = (*BingEngine)(nil)

// NewBingEngine targets baseURL, defaulting to the public endpoint.
func NewBingEngine(baseURL string) *BingEngine {
	if baseURL == "" {
		baseURL = bingSearchURL
	}
	return &BingEngine{baseURL: baseURL}
}

// Name identifies the engine inside the registry.
func (b *BingEngine) Name() string {
	return "bing"
}

// PageURL sets q/count/first/setlang; first is the 0-based offset of the page.
func (b *BingEngine) PageURL(query string, page, resultsPerPage int) (string, error) {
	parsed, err := url.Parse(b.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid bing url %s: %w", b.baseURL, err)
	}

	offset := (page - 1) * resultsPerPage
	q := parsed.Query()
	q.Set("q", query)
	q.Set("count", strconv.Itoa(resultsPerPage))
	q.Set("first", strconv.Itoa(offset))
	q.Set("setlang", "zh-CN")
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

// ExtractURLs keeps outbound links, skipping Microsoft properties.
func (b *BingEngine) ExtractURLs(body string) []string {
	return extractAnchors(body, bingOwnHosts)
}
