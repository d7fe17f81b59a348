package events

import "time"

const BenchmarkCompletedTopic = "salarybench.benchmark.completed.v1"

type VariantTiming struct {
	Variant   string `json:"variant"`
	Rows      int    `json:"rows"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

type BenchmarkCompletedEvent struct {
	EventType   string          `json:"event_type"`
	RunID       string          `json:"run_id"`
	Department  string          `json:"department"`
	Variants    []VariantTiming `json:"variants"`
	Divergences int             `json:"divergences"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
