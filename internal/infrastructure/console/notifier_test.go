package console

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"EmploymentReport/internal/domain"
)

func TestNotifierOutput(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer
	n := NewNotifier(&buf)

	n.StageStarted(domain.StageCollect, "数据抓取Agent")
	n.StageDone(domain.StageCollect, "数据源数量: 3")
	n.Verdict(false, 75, "# 报告审核报告")
	n.Warn("生成器不可用")
	n.Finished(domain.PipelineState{
		IsApproved: true,
		Revisions:  2,
		Messages:   make([]domain.Message, 7),
		SavedPath:  "reports/r.md",
	})

	out := buf.String()
	assert.Contains(t, out, "【数据抓取Agent】开始工作... (collect)")
	assert.Contains(t, out, "  - 数据源数量: 3")
	assert.Contains(t, out, "报告需要修改，重新生成...（75/100）")
	assert.Contains(t, out, "# 报告审核报告")
	assert.Contains(t, out, "⚠️ 生成器不可用")
	assert.Contains(t, out, "- 报告已审核通过: 是")
	assert.Contains(t, out, "- 总执行步骤: 7")
	assert.Contains(t, out, "报告保存在: reports/r.md")
}
