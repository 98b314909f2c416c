// Package review scores a Markdown report with a fixed set of text rules.
package review

import (
	"fmt"
	"strings"
)

// PassingScore is the minimum score a report needs to be approved.
const PassingScore = 80

const (
	issuePenalty      = 10
	suggestionPenalty = 5
)

// Severity separates hard problems from improvement hints.
type Severity int

const (
	SeverityIssue Severity = iota
	SeveritySuggestion
)

// Finding is one observation produced by a rule.
type Finding struct {
	Severity Severity
	Message  string
}

// Issue builds a hard finding.
func Issue(format string, args ...any) Finding {
	return Finding{Severity: SeverityIssue, Message: fmt.Sprintf(format, args...)}
}

// Suggestion builds a soft finding.
func Suggestion(format string, args ...any) Finding {
	return Finding{Severity: SeveritySuggestion, Message: fmt.Sprintf(format, args...)}
}

// Rule is a named, pure check over the report text.
type Rule struct {
	Name  string
	Check func(text string) []Finding
}

// Critic runs its rules in registration order. It holds no state between
// reviews, so one value can be shared.
type Critic struct {
	rules []Rule
}

// New returns a Critic over rules, or over DefaultRules when none are given.
func New(rules ...Rule) *Critic {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Critic{rules: rules}
}

// Review evaluates text. Invalid UTF-8 is replaced before any rule sees it.
func (c *Critic) Review(text string) Result {
	text = strings.ToValidUTF8(text, "�")

	res := Result{Issues: []string{}, Suggestions: []string{}}
	for _, rule := range c.rules {
		for _, f := range runRule(rule, text) {
			switch f.Severity {
			case SeverityIssue:
				res.Issues = append(res.Issues, f.Message)
			default:
				res.Suggestions = append(res.Suggestions, f.Message)
			}
		}
	}

	res.Score = score(len(res.Issues), len(res.Suggestions))
	return res
}

func runRule(rule Rule, text string) (findings []Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []Finding{Issue("rule %s cannot evaluate: %v", rule.Name, r)}
		}
	}()
	return rule.Check(text)
}

func score(issues, suggestions int) int {
	return max(0, 100-issuePenalty*issues-suggestionPenalty*suggestions)
}
