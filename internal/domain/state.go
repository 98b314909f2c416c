package domain

import "time"

// Role tags a pipeline message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the pipeline log.
type Message struct {
	Role      Role      `json:"role"`
	Stage     Stage     `json:"stage,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Stage enumerates pipeline nodes.
type Stage string

const (
	StageCollect Stage = "collect"
	StageAnalyze Stage = "analyze"
	StageWrite   Stage = "write"
	StageReview  Stage = "review"
	StageRewrite Stage = "rewrite"
	StageSave    Stage = "save"
)

// Outcome is the terminal verdict of a run.
type Outcome string

const (
	OutcomePending    Outcome = ""
	OutcomeApproved   Outcome = "approved"
	OutcomeUnapproved Outcome = "unapproved"
)

// PipelineState is threaded through every stage. Stages return a modified
// copy: Messages only grow, ReviewComments are replaced on each review.
type PipelineState struct {
	RunID          string         `json:"run_id"`
	Messages       []Message      `json:"messages"`
	RawData        Summary        `json:"raw_data"`
	AnalysisData   AnalysisReport `json:"analysis_data"`
	ReportContent  string         `json:"report_content"`
	ReviewComments []string       `json:"review_comments"`
	IsApproved     bool           `json:"is_approved"`
	Score          int            `json:"score"`
	Revisions      int            `json:"revisions"`
	SavedPath      string         `json:"saved_path,omitempty"`
	Outcome        Outcome        `json:"outcome,omitempty"`
}

// WithMessage returns a copy of the state with msg appended.
// The message slice is copied so earlier states never observe the append.
func (s PipelineState) WithMessage(msg Message) PipelineState {
	messages := make([]Message, len(s.Messages), len(s.Messages)+1)
	copy(messages, s.Messages)
	s.Messages = append(messages, msg)
	return s
}
