package search

import "strings"

var blockedDomains = []string{
	"ads.", "advertisement", "ad.", "tracking.",
	"youdao", "hao123", "sohu.com", "163.com",
	"360.cn", "tongji.baidu.com",
	"sogoucdn.com", "sogouws.com",
	"baiducontent.com", "m.baidu.com", "baidubce.com",
	"play.google.com", "apps.apple.com",
	"facebook.com", "twitter.com", "instagram.com",
	"linkedin.com", "youtube.com", "tiktok.com",
	"ifsc", "swiftcode", "ifsccode", "ifsccodebank",
	"cleartax", "getswipe",
}

var allowKeywords = []string{
	"edu.cn", "gov.cn", "org.cn", "ac.cn",
	"news", "xinwen", "zaixian", "article",
	"employment", "job", "zhipin", "jobui",
	"career", "graduate", "bysh",
	"wangjiao", "juye", "qiuzhi",
	"rencai", "zhaopin", "51job",
	"chsi", "moe", "people.com.cn",
	"chinanews", "xinhuanet", "thepaper",
	"cctv", "cnbeta", "36kr",
	"gaoxiaojob", "yjbys",
	"paper", "report", "analysis",
	"data", "statistics", "trend",
}

const (
	minURLLength       = 30
	minRootURLLength   = 35
	contentURLLength   = 50
	contentURLSegments = 3
	contentURLMarkers  = "?=-_./"
)

// FilterURLs drops ads, trackers and homepages and keeps pages that look relevant.
// A blocked domain wins over any allow keyword.
func FilterURLs(urls []string) []string {
	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if Keep(u) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// Keep applies the filter to a single URL.
func Keep(u string) bool {
	if len(u) < minURLLength {
		return false
	}
	if strings.HasSuffix(u, "/") && len(u) < minRootURLLength {
		return false
	}

	lower := strings.ToLower(u)
	if containsAny(lower, blockedDomains) {
		return false
	}
	if containsAny(lower, allowKeywords) {
		return true
	}
	return looksLikeContentPage(u)
}

func looksLikeContentPage(u string) bool {
	return len(u) > contentURLLength &&
		strings.ContainsAny(u, contentURLMarkers) &&
		len(strings.Split(u, "/")) > contentURLSegments
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// Dedupe removes repeated URLs keeping first-seen order.
func Dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		unique = append(unique, u)
	}
	return unique
}
