package review

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EmploymentReport/internal/analysis"
	"EmploymentReport/internal/domain"
	"EmploymentReport/internal/report"
)

// strongReport satisfies every default rule except the duplicate-token
// check, which any Markdown list necessarily trips on "-".
const strongReport = `# 就业报告

## 执行摘要
根据教育部数据显示，本科就业率：91.5%。整体就业率较往年有所下滑。

### 核心指标分析
- 签约率：80%。
- 深度分析：结构性矛盾突出。
- 根本原因：供需错配。
- 关键因素：产业升级。
- 重要发现：高职表现亮眼（见表1）。

#### 就业趋势
展望未来，机会与挑战并存。

##### 区域分析
东部机会集中。

###### 专业类别分析
理工科需求旺盛。

结论与建议：建议一、建议二、建议三、建议四、建议五。

数据来源：教育部`

func TestReviewStrongReport(t *testing.T) {
	res := New().Review(strongReport)

	assert.Empty(t, res.Issues)
	assert.Equal(t, []string{"检测到部分重复表述，建议精简"}, res.Suggestions)
	assert.Equal(t, 95, res.Score)
	assert.True(t, res.Approved())
}

func TestReviewEmptyTextScoresZero(t *testing.T) {
	res := New().Review("")

	assert.Equal(t, 0, res.Score)
	assert.False(t, res.Approved())
	assert.Contains(t, res.Issues, "缺少必要章节：执行摘要")
	assert.Contains(t, res.Issues, "缺少Markdown标题格式")
	assert.Contains(t, res.Issues, "缺少数据来源说明")
}

func TestReviewScoreBounds(t *testing.T) {
	critic := New()
	for _, text := range []string{"", strongReport, "## 标题\n就业率：20%", strings.Repeat("重复 ", 500)} {
		res := critic.Review(text)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)
		assert.Equal(t, res.Score >= PassingScore, res.Approved())
	}
}

func TestReviewIsDeterministic(t *testing.T) {
	critic := New()
	first := critic.Review(strongReport + "\n就业率：120%")
	second := critic.Review(strongReport + "\n就业率：120%")

	assert.Equal(t, first, second)
}

func TestReviewApprovalBoundary(t *testing.T) {
	findings := func(fs ...Finding) Rule {
		return Rule{Name: "fixed", Check: func(string) []Finding { return fs }}
	}

	atBoundary := New(findings(Issue("a"), Suggestion("b"), Suggestion("c"))).Review("x")
	assert.Equal(t, 80, atBoundary.Score)
	assert.True(t, atBoundary.Approved())

	below := New(findings(Issue("a"), Suggestion("b"), Suggestion("c"), Suggestion("d"))).Review("x")
	assert.Equal(t, 75, below.Score)
	assert.False(t, below.Approved())
}

func TestReviewMissingSectionNeverRaisesScore(t *testing.T) {
	critic := New()
	base := critic.Review(strongReport)

	for _, section := range RequiredSections {
		t.Run(section, func(t *testing.T) {
			res := critic.Review(strings.ReplaceAll(strongReport, section, "其他"))
			assert.LessOrEqual(t, res.Score, base.Score)
			assert.Contains(t, res.Issues, "缺少必要章节："+section)
		})
	}
}

func TestReviewFlagsImplausibleRates(t *testing.T) {
	res := New().Review(strongReport + "\n就业率：120% 就业率：45.5% 就业率：50%")

	assert.Equal(t, []string{
		"异常就业率数据：120.0%，超出合理范围",
		"异常就业率数据：45.5%，超出合理范围",
	}, res.Issues)
}

func TestReviewLanguageFindings(t *testing.T) {
	long := strings.Repeat("长", 101)
	res := New().Review(strongReport + "\n" + long + "。" + long + "！短句。")

	assert.Contains(t, res.Suggestions, "发现2个超长句子，建议拆分")

	unique := New().Review("甲 乙 丙")
	assert.NotContains(t, unique.Suggestions, "检测到部分重复表述，建议精简")
}

func TestReviewSurvivesInvalidUTF8AndPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		res := New().Review("\xff\xfe## 执行摘要\xc3")
		assert.GreaterOrEqual(t, res.Score, 0)
	})

	boom := Rule{Name: "boom", Check: func(string) []Finding { panic("bad state") }}
	res := New(boom, DefaultRules()[0]).Review(strongReport)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "rule boom cannot evaluate: bad state", res.Issues[0])
	assert.Equal(t, 90, res.Score)
}

func TestGeneratedReportHasNoIssues(t *testing.T) {
	employment, signing := 0.85, 0.78
	summary := domain.Summary{TotalSources: 10, AvgEmploymentRate: &employment, AvgSigningRate: &signing}

	text, err := report.Render(analysis.Analyze(summary), time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	res := New().Review(text)
	assert.Empty(t, res.Issues)
	assert.LessOrEqual(t, res.Score, 100)
}

func TestResultMarkdown(t *testing.T) {
	approved := Result{Issues: []string{}, Suggestions: []string{"建议添加图表以增强数据可视化"}, Score: 95}
	md := approved.Markdown()

	assert.Contains(t, md, "## 审核结果：通过")
	assert.Contains(t, md, "## 审核分数：95/100")
	assert.Contains(t, md, "✓ 未发现严重问题")
	assert.Contains(t, md, "1. 建议添加图表以增强数据可视化")
	assert.Contains(t, md, "报告质量优秀，数据详实，分析深入，可直接发布。")

	rejected := Result{Issues: []string{"缺少数据来源说明"}, Score: 55}
	md = rejected.Markdown()
	assert.Contains(t, md, "## 审核结果：不通过")
	assert.Contains(t, md, "1. 缺少数据来源说明")
	assert.Contains(t, md, "✓ 报告质量优秀")
	assert.Contains(t, md, "报告存在较多问题，需要重大修改。")
	assert.Equal(t, []string{"缺少数据来源说明"}, rejected.Comments())
}

func TestFormatRate(t *testing.T) {
	tests := map[string]float64{
		"120.0": 120,
		"45.5":  45.5,
		"120.5": 120.50,
		"0.0":   0,
		"33.25": 33.25,
	}
	for want, v := range tests {
		assert.Equal(t, want, formatRate(v))
	}
}
