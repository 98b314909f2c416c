package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"EmploymentReport/internal/analysis"
	"EmploymentReport/internal/domain"
	"EmploymentReport/internal/ports"
	"EmploymentReport/internal/report"
	"EmploymentReport/internal/review"
)

const systemMessage = "你是一个专业的就业数据分析助手，负责生成高质量的高校就业分析报告。"

const polishPrompt = `请对以下就业分析报告进行语言优化，要求：
1. 保持原有数据和逻辑不变
2. 优化语言表达，使其更加专业流畅
3. 增强报告的深度和洞察力
4. 保持Markdown格式

报告内容：
%s`

const revisePrompt = `请根据以下审核意见，修改和优化就业分析报告：

审核意见：
%s

原报告：
%s

要求：
1. 修复所有指出的问题
2. 吸收改进建议
3. 保持数据准确性
4. 保持结构完整性`

const unapprovedMarker = "> ⚠️ 本报告未通过自动审核（得分 %d/100），请人工复核。\n\n"

// StageError is returned when a stage cannot complete and the run stops.
type StageError struct {
	Stage domain.Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Collector ports.DataCollector
	Generator ports.Generator
	Store     ports.ReportStore
	Notifier  ports.Notifier
	Critic    *review.Critic
	// MaxRevisions caps rewrites; zero or negative leaves the loop unbounded.
	MaxRevisions int
	Logger       *slog.Logger
	Now          func() time.Time
	NewRunID     func() string
}

// Pipeline implements collect → analyze → write → review (↔ rewrite) → save.
type Pipeline struct {
	collector    ports.DataCollector
	generator    ports.Generator
	store        ports.ReportStore
	notifier     ports.Notifier
	critic       *review.Critic
	maxRevisions int
	logger       *slog.Logger
	now          func() time.Time
	newRunID     func() string
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{
		collector:    deps.Collector,
		generator:    deps.Generator,
		store:        deps.Store,
		notifier:     deps.Notifier,
		critic:       deps.Critic,
		maxRevisions: deps.MaxRevisions,
		logger:       deps.Logger,
		now:          deps.Now,
		newRunID:     deps.NewRunID,
	}
	if p.notifier == nil {
		p.notifier = nopNotifier{}
	}
	if p.critic == nil {
		p.critic = review.New()
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.newRunID == nil {
		p.newRunID = uuid.NewString
	}
	return p
}

type stageFunc func(context.Context, domain.PipelineState) (domain.PipelineState, error)

// Run executes one full report generation. The returned state is the last
// one reached, also on error.
func (p *Pipeline) Run(ctx context.Context) (domain.PipelineState, error) {
	if p.collector == nil || p.generator == nil || p.store == nil {
		return domain.PipelineState{}, errors.New("pipeline misconfigured")
	}

	state := domain.PipelineState{RunID: p.newRunID()}
	state = state.WithMessage(p.message(domain.RoleSystem, "", systemMessage))
	p.info("run started", "run_id", state.RunID)

	var err error
	for _, step := range []struct {
		stage domain.Stage
		run   stageFunc
	}{
		{domain.StageCollect, p.collect},
		{domain.StageAnalyze, p.analyze},
		{domain.StageWrite, p.write},
		{domain.StageReview, p.review},
	} {
		if state, err = p.step(ctx, step.stage, step.run, state); err != nil {
			return state, err
		}
	}

	for !state.IsApproved {
		if p.budgetSpent(state) {
			state = p.markUnapproved(state)
			break
		}
		if state, err = p.step(ctx, domain.StageRewrite, p.rewrite, state); err != nil {
			return state, err
		}
		if state, err = p.step(ctx, domain.StageReview, p.review, state); err != nil {
			return state, err
		}
	}
	if state.IsApproved {
		state.Outcome = domain.OutcomeApproved
	}

	if state, err = p.step(ctx, domain.StageSave, p.save, state); err != nil {
		return state, err
	}

	p.info("run finished", "run_id", state.RunID, "outcome", state.Outcome, "score", state.Score, "revisions", state.Revisions)
	p.notifier.Finished(state)
	return state, nil
}

func (p *Pipeline) step(ctx context.Context, stage domain.Stage, run stageFunc, state domain.PipelineState) (domain.PipelineState, error) {
	if err := ctx.Err(); err != nil {
		return state, &StageError{Stage: stage, Err: err}
	}

	p.debug("stage started", "run_id", state.RunID, "stage", stage)
	next, err := run(ctx, state)
	if err != nil {
		p.logError("stage failed", "run_id", state.RunID, "stage", stage, "error", err)
		return state, &StageError{Stage: stage, Err: err}
	}
	return next, nil
}

func (p *Pipeline) collect(ctx context.Context, s domain.PipelineState) (domain.PipelineState, error) {
	p.notifier.StageStarted(domain.StageCollect, "数据抓取Agent")

	summary, err := p.collector.Collect(ctx)
	if err != nil {
		return s, err
	}

	p.notifier.StageDone(domain.StageCollect,
		fmt.Sprintf("数据源数量: %d", summary.TotalSources),
		fmt.Sprintf("平均就业率: %.1f%%", analysis.AsFraction(summary.EmploymentAverage())*100),
		fmt.Sprintf("平均签约率: %.1f%%", analysis.AsFraction(summary.SigningAverage())*100),
	)
	p.info("data collected", "run_id", s.RunID, "sources", summary.TotalSources)

	s.RawData = summary
	return s.WithMessage(p.message(domain.RoleAssistant, domain.StageCollect,
		fmt.Sprintf("已成功抓取%d个数据源的就业数据", summary.TotalSources))), nil
}

func (p *Pipeline) analyze(_ context.Context, s domain.PipelineState) (domain.PipelineState, error) {
	p.notifier.StageStarted(domain.StageAnalyze, "数据分析Agent")

	s.AnalysisData = analysis.Analyze(s.RawData)

	p.notifier.StageDone(domain.StageAnalyze,
		"核心指标已提取",
		"就业趋势已挖掘",
		"区域、专业、学校类别分析完成",
		"自由职业数据已分析",
	)
	return s.WithMessage(p.message(domain.RoleAssistant, domain.StageAnalyze,
		fmt.Sprintf("数据分析完成，已生成%d个维度的分析结果", s.AnalysisData.Dimensions()))), nil
}

func (p *Pipeline) write(ctx context.Context, s domain.PipelineState) (domain.PipelineState, error) {
	p.notifier.StageStarted(domain.StageWrite, "报告撰写Agent")

	draft, err := report.Render(s.AnalysisData, p.now())
	if err != nil {
		return s, err
	}
	p.notifier.StageDone(domain.StageWrite,
		fmt.Sprintf("报告字数: %d 字", len([]rune(draft))),
		fmt.Sprintf("章节数: %d 个", strings.Count(draft, "##")),
	)

	polished, err := p.generator.Generate(ctx, fmt.Sprintf(polishPrompt, draft))
	if err != nil {
		return s, fmt.Errorf("polish draft: %w", err)
	}

	s.ReportContent = polished
	return s.WithMessage(p.message(domain.RoleAssistant, domain.StageWrite,
		"报告撰写完成，已生成结构化报告并经过LLM优化")), nil
}

func (p *Pipeline) review(_ context.Context, s domain.PipelineState) (domain.PipelineState, error) {
	p.notifier.StageStarted(domain.StageReview, "审核校对Agent")

	res := p.critic.Review(s.ReportContent)
	s.ReviewComments = res.Comments()
	s.IsApproved = res.Approved()
	s.Score = res.Score

	p.notifier.StageDone(domain.StageReview,
		fmt.Sprintf("审核分数: %d/100", res.Score),
		fmt.Sprintf("发现问题: %d 个", len(res.Issues)),
		fmt.Sprintf("改进建议: %d 条", len(res.Suggestions)),
	)
	p.notifier.Verdict(res.Approved(), res.Score, res.Markdown())
	p.info("report reviewed", "run_id", s.RunID, "score", res.Score, "approved", res.Approved(), "revisions", s.Revisions)

	verdict := "需要修改"
	if res.Approved() {
		verdict = "通过"
	}
	return s.WithMessage(p.message(domain.RoleAssistant, domain.StageReview,
		fmt.Sprintf("审核完成，分数：%d，%s", res.Score, verdict))), nil
}

func (p *Pipeline) rewrite(ctx context.Context, s domain.PipelineState) (domain.PipelineState, error) {
	p.notifier.StageStarted(domain.StageRewrite, "报告修改Agent")

	revised, err := p.generator.Generate(ctx, RevisionPrompt(s.ReviewComments, s.ReportContent))
	if err != nil {
		return s, fmt.Errorf("revise draft: %w", err)
	}

	s.ReportContent = revised
	s.Revisions++
	p.notifier.StageDone(domain.StageRewrite, fmt.Sprintf("第%d次修改完成", s.Revisions))
	return s.WithMessage(p.message(domain.RoleAssistant, domain.StageRewrite,
		fmt.Sprintf("报告已根据审核意见修改（第%d次）", s.Revisions))), nil
}

func (p *Pipeline) save(ctx context.Context, s domain.PipelineState) (domain.PipelineState, error) {
	p.notifier.StageStarted(domain.StageSave, "保存报告")

	content := s.ReportContent
	if s.Outcome == domain.OutcomeUnapproved {
		content = fmt.Sprintf(unapprovedMarker, s.Score) + content
	}

	path, err := p.store.Save(ctx, content)
	if err != nil {
		return s, err
	}

	s.SavedPath = path
	p.notifier.StageDone(domain.StageSave,
		"报告已保存至: "+path,
		fmt.Sprintf("文件大小: %d 字符", len([]rune(content))),
	)
	return s.WithMessage(p.message(domain.RoleAssistant, domain.StageSave, "报告已保存至: "+path)), nil
}

func (p *Pipeline) budgetSpent(s domain.PipelineState) bool {
	return p.maxRevisions > 0 && s.Revisions >= p.maxRevisions
}

func (p *Pipeline) markUnapproved(s domain.PipelineState) domain.PipelineState {
	s.Outcome = domain.OutcomeUnapproved
	msg := fmt.Sprintf("已达到最大修改次数%d，报告未通过审核（得分 %d/100）", p.maxRevisions, s.Score)
	p.notifier.Warn(msg)
	p.warn("revision budget spent", "run_id", s.RunID, "max_revisions", p.maxRevisions, "score", s.Score)
	return s.WithMessage(p.message(domain.RoleAssistant, domain.StageReview, msg))
}

// RevisionPrompt asks the generator to address comments in draft.
func RevisionPrompt(comments []string, draft string) string {
	bullets := make([]string, len(comments))
	for i, c := range comments {
		bullets[i] = "- " + c
	}
	return fmt.Sprintf(revisePrompt, strings.Join(bullets, "\n"), draft)
}

func (p *Pipeline) message(role domain.Role, stage domain.Stage, content string) domain.Message {
	return domain.Message{Role: role, Stage: stage, Content: content, CreatedAt: p.now()}
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Pipeline) logError(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}

type nopNotifier struct{}

func (nopNotifier) StageStarted(domain.Stage, string) {}
func (nopNotifier) StageDone(domain.Stage, ...string) {}
func (nopNotifier) Verdict(bool, int, string)         {}
func (nopNotifier) Warn(string)                       {}
func (nopNotifier) Finished(domain.PipelineState)     {}
