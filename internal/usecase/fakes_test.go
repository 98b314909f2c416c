package usecase

import (
	"context"
	"sync"

	"EmploymentReport/internal/domain"
)

type fakeCollector struct {
	summary domain.Summary
	err     error
}

func (f fakeCollector) Collect(context.Context) (domain.Summary, error) {
	return f.summary, f.err
}

// scriptedGenerator replays responses in order, repeating the last one.
type scriptedGenerator struct {
	mu        sync.Mutex
	responses []string
	errAt     map[int]error
	prompts   []string
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	call := len(g.prompts)
	g.prompts = append(g.prompts, prompt)
	if err := g.errAt[call]; err != nil {
		return "", err
	}
	if call < len(g.responses) {
		return g.responses[call], nil
	}
	return g.responses[len(g.responses)-1], nil
}

type memoryStore struct {
	saved []string
	err   error
}

func (s *memoryStore) Save(_ context.Context, content string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, content)
	return "reports/test.md", nil
}

type recordingNotifier struct {
	started  []domain.Stage
	verdicts []int
	warnings []string
	finished *domain.PipelineState
}

func (n *recordingNotifier) StageStarted(stage domain.Stage, _ string) {
	n.started = append(n.started, stage)
}

func (n *recordingNotifier) StageDone(domain.Stage, ...string) {}

func (n *recordingNotifier) Verdict(_ bool, score int, _ string) {
	n.verdicts = append(n.verdicts, score)
}

func (n *recordingNotifier) Warn(message string) {
	n.warnings = append(n.warnings, message)
}

func (n *recordingNotifier) Finished(state domain.PipelineState) {
	n.finished = &state
}

type fakeHarvester struct {
	urls    map[string][]string
	queries []string
}

func (h *fakeHarvester) Harvest(_ context.Context, query string, _, _ int) []string {
	h.queries = append(h.queries, query)
	return h.urls[query]
}

type mapFetcher struct {
	pages     map[string]string
	requested []string
}

func (f *mapFetcher) Fetch(_ context.Context, url string) string {
	f.requested = append(f.requested, url)
	return f.pages[url]
}
