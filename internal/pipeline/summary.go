package pipeline

import (
	"time"

	"go.uber.org/zap"
)

// Summary tallies what happened during one enrichment run.
type Summary struct {
	RunID              string        `json:"run_id"`
	Leads              int           `json:"leads"`
	ProbeFailures      int           `json:"probe_failures"`
	CompletionFailures int           `json:"completion_failures"`
	StartedAt          time.Time     `json:"started_at"`
	Duration           time.Duration `json:"duration"`
}

// NewSummary starts a summary for a new run.
func NewSummary() *Summary {
	return &Summary{
		RunID:     NewRunID(),
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the run duration.
func (s *Summary) Finish() {
	s.Duration = time.Since(s.StartedAt)
}

// Log emits the run summary with structured fields.
func (s *Summary) Log() {
	zap.L().Info("pipeline: run complete",
		zap.String("run_id", s.RunID),
		zap.Int("leads", s.Leads),
		zap.Int("probe_failures", s.ProbeFailures),
		zap.Int("completion_failures", s.CompletionFailures),
		zap.Duration("duration", s.Duration),
	)
}
