package parser

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"EmploymentReport/internal/search"
)

const (
	sogouSearchURL     = "https://sogou.com/web"
	minSogouJSONURLLen = 40
)

// Sogou renders results client-side; the URLs sit in inline JSON with escaped slashes.
var sogouJSONPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"sup_url":"(https?:\\{1,2}/\\{1,2}/[^"]+)"`),
	regexp.MustCompile(`"url":"(https?:\\{1,2}/\\{1,2}/[^"]+)"`),
	regexp.MustCompile(`"link":"(https?:\\{1,2}/\\{1,2}/[^"]+)"`),
}

var escapedSlash = regexp.MustCompile(`\\+/`)

var (
	sogouOwnHosts  = []string{"sogou.com", "sogoucdn.com", "sogouws.com"}
	sogouJSONNoise = []string{"sogou.com", "sogoucdn.com", "sogouws.com", "openapi", "qpic.cn"}
)

// SogouEngine paginates by page number.
type SogouEngine struct {
	baseURL string
}

var _ search.Engine = (*SogouEngine)(nil)

// NewSogouEngine targets baseURL, defaulting to the public endpoint.
func NewSogouEngine(baseURL string) *SogouEngine {
	if baseURL == "" {
		baseURL = sogouSearchURL
	}
	return &SogouEngine{baseURL: baseURL}
}

// Name identifies the engine inside the registry.
func (s *SogouEngine) Name() string {
	return "sogou"
}

// PageURL sets query/page/ie with a 1-indexed page.
func (s *SogouEngine) PageURL(query string, page, _ int) (string, error) {
	parsed, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid sogou url %s: %w", s.baseURL, err)
	}

	q := parsed.Query()
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("ie", "utf8")
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

// ExtractURLs tries each JSON field pattern in order; the first one yielding
// usable URLs wins. Without any, it falls back to plain anchors.
func (s *SogouEngine) ExtractURLs(body string) []string {
	for _, pattern := range sogouJSONPatterns {
		if urls := matchJSONURLs(pattern, body); len(urls) > 0 {
			return urls
		}
	}
	return extractAnchors(body, sogouOwnHosts)
}

func matchJSONURLs(pattern *regexp.Regexp, body string) []string {
	var urls []string
	for _, m := range pattern.FindAllStringSubmatch(body, -1) {
		clean := escapedSlash.ReplaceAllString(m[1], "/")
		if len(clean) <= minSogouJSONURLLen || mentionsAny(strings.ToLower(clean), sogouJSONNoise) {
			continue
		}
		urls = append(urls, clean)
	}
	return urls
}
