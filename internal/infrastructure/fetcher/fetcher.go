package fetcher

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"

	"EmploymentReport/internal/ports"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxBodyBytes = 8 << 20
)

// DefaultUserAgents is the identity pool a request picks from at random.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.2478.51",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
}

var baseHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "zh-CN,zh;q=0.9,en;q=0.8",
	"Accept-Encoding":           "gzip, deflate, br",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// Options controls HTTP fetching behaviour.
type Options struct {
	Timeout      time.Duration
	UserAgents   []string
	MaxBodyBytes int64
}

// HTTPFetcher is a best-effort page fetcher: one GET, no retries.
type HTTPFetcher struct {
	client       *http.Client
	userAgents   []string
	maxBodyBytes int64
	logger       *slog.Logger
}

var _ ports.PageFetcher = (*HTTPFetcher)(nil)

// New builds a fetcher; zero options fall back to defaults.
func New(opts Options, log *slog.Logger) *HTTPFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if len(opts.UserAgents) == 0 {
		opts.UserAgents = DefaultUserAgents
	}

	return &HTTPFetcher{
		client:       &http.Client{Timeout: opts.Timeout},
		userAgents:   opts.UserAgents,
		maxBodyBytes: opts.MaxBodyBytes,
		logger:       log,
	}
}

// Fetch returns the page decoded to UTF-8, or "" on any failure.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) string {
	body, err := f.fetch(ctx, url)
	if err != nil {
		if f.logger != nil {
			f.logger.Warn("fetch failed", "url", url, "error", err)
		}
		return ""
	}
	return body
}

func (f *HTTPFetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	for k, v := range baseHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", f.randomUserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	raw, err := f.readBody(resp)
	if err != nil {
		return "", err
	}
	return toUTF8(raw, resp.Header.Get("Content-Type"))
}

func (f *HTTPFetcher) readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip decode: %w", err)
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		fl := flate.NewReader(resp.Body)
		defer fl.Close()
		reader = fl
	case "br":
		reader = brotli.NewReader(resp.Body)
	}

	body, err := io.ReadAll(io.LimitReader(reader, f.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, fmt.Errorf("response body exceeds limit of %d bytes", f.maxBodyBytes)
	}
	return body, nil
}

// toUTF8 converts the page to UTF-8 using header, BOM and <meta> hints.
// Without a hint, valid UTF-8 is kept as is and anything else goes through
// byte-level detection before the windows-1252 default.
func toUTF8(raw []byte, contentType string) (string, error) {
	enc, name, certain := charset.DetermineEncoding(raw, contentType)
	if !certain {
		if utf8.Valid(raw) {
			return string(raw), nil
		}
		if detected, detectedName, ok := detectEncoding(raw); ok {
			enc, name = detected, detectedName
		}
	}
	if name == "utf-8" {
		return string(raw), nil
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(decoded), nil
}

// detectEncoding guesses the charset from the bytes alone, the way Chinese
// sites without any declaration have to be read.
func detectEncoding(raw []byte) (encoding.Encoding, string, bool) {
	best, err := chardet.NewHtmlDetector().DetectBest(raw)
	if err != nil || best == nil {
		return nil, "", false
	}

	if strings.EqualFold(best.Charset, "GB-18030") {
		return simplifiedchinese.GB18030, "gb18030", true
	}
	enc, err := htmlindex.Get(best.Charset)
	if err != nil {
		return nil, "", false
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", false
	}
	return enc, name, true
}

func (f *HTTPFetcher) randomUserAgent() string {
	return f.userAgents[rand.Intn(len(f.userAgents))]
}
