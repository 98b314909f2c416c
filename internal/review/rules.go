package review

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// RequiredSections must each appear somewhere in a report.
var RequiredSections = []string{
	"执行摘要",
	"核心指标分析",
	"就业趋势",
	"区域分析",
	"专业类别分析",
	"结论与建议",
}

var depthKeywords = []string{
	"深度分析", "根本原因", "关键因素", "重要发现",
	"深度观点", "启示", "展望", "建议",
}

const (
	maxSentenceRunes  = 100
	minBullets        = 5
	minDepthKeywords  = 4
	minRecommendation = 5
)

var (
	statedEmploymentRate = regexp.MustCompile(`就业率：(\d+\.?\d*)%`)
	anyPercentage        = regexp.MustCompile(`\d+\.?\d*%`)
	markdownHeading      = regexp.MustCompile(`#+\s+`)
	bulletMarker         = regexp.MustCompile(`(?m)^\s*-\s+`)
	chartReference       = regexp.MustCompile(`(图表|图\d+|表\d+)`)
	sentenceEnd          = regexp.MustCompile(`[。！？]`)
)

// DefaultRules is the standard rule set, in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "logic", Check: checkLogic},
		{Name: "completeness", Check: checkCompleteness},
		{Name: "format", Check: checkFormat},
		{Name: "language", Check: checkLanguage},
		{Name: "depth", Check: checkDepth},
	}
}

func checkLogic(text string) []Finding {
	var out []Finding
	for _, m := range statedEmploymentRate.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v < 50 || v > 100 {
			out = append(out, Issue("异常就业率数据：%s%%，超出合理范围", formatRate(v)))
		}
	}

	if strings.Contains(text, "就业率有所下降") && !strings.Contains(text, "较往年有所下滑") {
		out = append(out, Suggestion("建议补充就业率下降的具体数据支撑"))
	}
	return out
}

// formatRate prints the shortest exact decimal, keeping ".0" on whole numbers.
func formatRate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func checkCompleteness(text string) []Finding {
	var out []Finding
	for _, section := range RequiredSections {
		if !strings.Contains(text, section) {
			out = append(out, Issue("缺少必要章节：%s", section))
		}
	}
	if !anyPercentage.MatchString(text) {
		out = append(out, Issue("报告缺乏具体百分比数据"))
	}
	if !strings.Contains(text, "数据来源") {
		out = append(out, Issue("缺少数据来源说明"))
	}
	return out
}

func checkFormat(text string) []Finding {
	var out []Finding
	if !markdownHeading.MatchString(text) {
		out = append(out, Issue("缺少Markdown标题格式"))
	}
	if len(bulletMarker.FindAllStringIndex(text, -1)) < minBullets {
		out = append(out, Suggestion("建议增加更多列表形式呈现数据"))
	}
	if !chartReference.MatchString(text) {
		out = append(out, Suggestion("建议添加图表以增强数据可视化"))
	}
	return out
}

func checkLanguage(text string) []Finding {
	var out []Finding

	long := 0
	for _, sentence := range sentenceEnd.Split(text, -1) {
		if utf8.RuneCountInString(sentence) > maxSentenceRunes {
			long++
		}
	}
	if long > 0 {
		out = append(out, Suggestion("发现%d个超长句子，建议拆分", long))
	}

	seen := make(map[string]struct{})
	for _, token := range strings.Fields(text) {
		if _, dup := seen[token]; dup {
			out = append(out, Suggestion("检测到部分重复表述，建议精简"))
			break
		}
		seen[token] = struct{}{}
	}
	return out
}

func checkDepth(text string) []Finding {
	var out []Finding

	found := 0
	for _, kw := range depthKeywords {
		if strings.Contains(text, kw) {
			found++
		}
	}
	if found < minDepthKeywords {
		out = append(out, Suggestion("报告深度不足，建议增加分析和见解"))
	}
	if !strings.Contains(text, "根据") && !strings.Contains(text, "数据显示") {
		out = append(out, Suggestion("观点缺乏数据支撑，建议增加"))
	}
	if strings.Count(text, "建议") < minRecommendation {
		out = append(out, Suggestion("建议部分不够充分，需要补充具体可操作的建议"))
	}
	return out
}
