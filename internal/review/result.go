package review

import (
	"fmt"
	"strings"
)

// Result is the outcome of one review pass.
type Result struct {
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
	Score       int      `json:"score"`
}

// Approved is derived from the score, never stored.
func (r Result) Approved() bool {
	return r.Score >= PassingScore
}

// Comments lists issues followed by suggestions.
func (r Result) Comments() []string {
	out := make([]string, 0, len(r.Issues)+len(r.Suggestions))
	out = append(out, r.Issues...)
	return append(out, r.Suggestions...)
}

// Markdown renders the human-readable review report.
func (r Result) Markdown() string {
	status := "不通过"
	if r.Approved() {
		status = "通过"
	}

	var b strings.Builder
	b.WriteString("# 报告审核报告\n\n")
	fmt.Fprintf(&b, "## 审核结果：%s\n\n", status)
	fmt.Fprintf(&b, "## 审核分数：%d/100\n\n", r.Score)

	b.WriteString("## 发现的问题\n")
	writeNumbered(&b, r.Issues, "✓ 未发现严重问题")

	b.WriteString("\n## 改进建议\n")
	writeNumbered(&b, r.Suggestions, "✓ 报告质量优秀")

	b.WriteString("\n## 总体评价\n")
	b.WriteString(assessment(r.Score))
	b.WriteString("\n")
	return b.String()
}

func writeNumbered(b *strings.Builder, items []string, empty string) {
	if len(items) == 0 {
		b.WriteString(empty + "\n")
		return
	}
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}

func assessment(score int) string {
	switch {
	case score >= 90:
		return "报告质量优秀，数据详实，分析深入，可直接发布。"
	case score >= PassingScore:
		return "报告质量良好，建议根据建议进行适当优化。"
	case score >= 60:
		return "报告基本符合要求，但需要修改和完善。"
	default:
		return "报告存在较多问题，需要重大修改。"
	}
}
