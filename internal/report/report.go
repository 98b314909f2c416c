// Package report renders the analysis model into the Markdown report.
package report

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"EmploymentReport/internal/domain"
)

//go:embed templates/report.md.tmpl
var templates embed.FS

var reportTemplate = template.Must(
	template.New("report.md.tmpl").Funcs(template.FuncMap{
		"pct":  func(v float64) string { return fmt.Sprintf("%.1f", v*100) },
		"join": func(items []string) string { return strings.Join(items, ", ") },
		"inc":  func(i int) int { return i + 1 },
	}).ParseFS(templates, "templates/report.md.tmpl"),
)

type view struct {
	domain.AnalysisReport
	CompiledAt string
}

// Render produces the nine-chapter Markdown report dated at compiledAt.
func Render(analysis domain.AnalysisReport, compiledAt time.Time) (string, error) {
	var b strings.Builder
	err := reportTemplate.Execute(&b, view{
		AnalysisReport: analysis,
		CompiledAt:     compiledAt.Format("2006年1月"),
	})
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}
