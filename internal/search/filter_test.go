package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"short url with allow keyword", "https://gov.cn/jobs1", false},
		{"blocked domain beats allow keyword", "https://www.sohu.com/a/gov.cn/employment/2024-report", false},
		{"allow keyword", "https://www.moe.gov.cn/jyb_xwfb/s5147/202412/t20241201_1.html", true},
		{"root with trailing slash", "https://www.graduate-portal.cn/", false},
		{"long content-like path", "https://www.example.com/2024/12/01/some-long-path-page.html", true},
		{"short path without keyword", "https://www.example.com/abcdefgh", false},
		{"uppercase blocked domain", "https://WWW.FACEBOOK.COM/groups/graduates-2024/posts/1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keep(tt.url), tt.url)
		})
	}
}

func TestKeepDropsEveryTwentyCharURL(t *testing.T) {
	t.Parallel()

	for _, u := range []string{"https://gov.cn/jobs1", "https://edu.cn/news1", "https://x.com/report"} {
		require.Len(t, u, 20)
		assert.False(t, Keep(u), u)
	}
}

func TestKeepAllowKeywordAtSixty(t *testing.T) {
	t.Parallel()

	u := "https://www.moe.gov.cn/s5147/" + strings.Repeat("x", 31)
	require.Len(t, u, 60)
	assert.True(t, Keep(u))
	assert.False(t, Keep(strings.Replace(u, "moe.gov.cn", "sohu.com.gov.cn", 1)))
}

func TestFilterURLsPreservesOrder(t *testing.T) {
	t.Parallel()

	in := []string{
		"https://www.chinanews.com.cn/edu/2024/12-01/10325.shtml",
		"https://ads.example.com/click?id=123456789012345",
		"https://www.people.com.cn/n1/2024/1201/c1006-40000000.html",
	}
	assert.Equal(t, []string{in[0], in[2]}, FilterURLs(in))
	assert.Empty(t, FilterURLs(nil))
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	got := Dedupe([]string{"b", "a", "b", "c", "a"})
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

type stubEngine string

func (s stubEngine) Name() string                             { return string(s) }
func (s stubEngine) PageURL(string, int, int) (string, error) { return "", nil }
func (s stubEngine) ExtractURLs(string) []string              { return nil }

func TestRegistrySelect(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(stubEngine("bing"), stubEngine("sogou"))
	assert.Equal(t, []string{"bing", "sogou"}, reg.Names())

	engines, err := reg.Select([]string{"sogou", "bing"})
	require.NoError(t, err)
	require.Len(t, engines, 2)
	assert.Equal(t, "sogou", engines[0].Name())

	_, err = reg.Select([]string{"bing", "yahoo"})
	require.Error(t, err)
}
