// Package console prints run progress for humans using pterm.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"EmploymentReport/internal/domain"
	"EmploymentReport/internal/ports"
)

var rule = strings.Repeat("=", 50)

// Notifier renders pipeline progress on a terminal.
type Notifier struct {
	w io.Writer
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier writes to w, or stdout when w is nil.
func NewNotifier(w io.Writer) *Notifier {
	if w == nil {
		w = os.Stdout
	}
	return &Notifier{w: w}
}

// Banner prints the program heading.
func (n *Notifier) Banner(title, subtitle string) {
	pterm.Fprintln(n.w, pterm.LightCyan(strings.Repeat("=", 60)))
	pterm.Fprintln(n.w, pterm.Bold.Sprint(title))
	if subtitle != "" {
		pterm.Fprintln(n.w, subtitle)
	}
	pterm.Fprintln(n.w, pterm.LightCyan(strings.Repeat("=", 60)))
}

// StageStarted announces a stage.
func (n *Notifier) StageStarted(stage domain.Stage, title string) {
	pterm.Fprintln(n.w)
	pterm.Fprintln(n.w, pterm.LightCyan(rule))
	pterm.Fprintln(n.w, fmt.Sprintf("🔄 【%s】开始工作... (%s)", title, stage))
	pterm.Fprintln(n.w, pterm.LightCyan(rule))
}

// StageDone prints a stage summary, one bullet per line.
func (n *Notifier) StageDone(stage domain.Stage, lines ...string) {
	pterm.Fprintln(n.w, pterm.Green("✅ "+string(stage)+" 完成"))
	for _, line := range lines {
		pterm.Fprintln(n.w, "  - "+line)
	}
}

// Verdict prints the review outcome and the rendered review report.
func (n *Notifier) Verdict(approved bool, score int, detail string) {
	pterm.Fprintln(n.w)
	if approved {
		pterm.Fprintln(n.w, pterm.Green(fmt.Sprintf("✅ 报告审核通过！（%d/100）", score)))
	} else {
		pterm.Fprintln(n.w, pterm.Yellow(fmt.Sprintf("⚠️ 报告需要修改，重新生成...（%d/100）", score)))
	}
	if detail = strings.TrimSpace(detail); detail != "" {
		pterm.Fprintln(n.w, detail)
	}
}

// Warn prints a non-fatal problem.
func (n *Notifier) Warn(message string) {
	pterm.Fprintln(n.w, pterm.Yellow("⚠️ "+message))
}

// Finished prints the run summary.
func (n *Notifier) Finished(state domain.PipelineState) {
	approved := "否"
	if state.IsApproved {
		approved = "是"
	}

	pterm.Fprintln(n.w)
	pterm.Fprintln(n.w, pterm.LightCyan(strings.Repeat("=", 60)))
	pterm.Fprintln(n.w, pterm.Green("🎉 报告生成完成！"))
	pterm.Fprintln(n.w, pterm.LightCyan(strings.Repeat("=", 60)))
	pterm.Fprintln(n.w, "最终状态：")
	pterm.Fprintln(n.w, "- 报告已审核通过: "+approved)
	pterm.Fprintln(n.w, fmt.Sprintf("- 修订次数: %d", state.Revisions))
	pterm.Fprintln(n.w, fmt.Sprintf("- 总执行步骤: %d", len(state.Messages)))
	if state.SavedPath != "" {
		pterm.Fprintln(n.w, "报告保存在: "+state.SavedPath)
	}
}
