package llm

import (
	"log/slog"
)

// CallEvent records metadata about a single model invocation.
type CallEvent struct {
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about model calls.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// SlogObserver writes call events to a structured logger.
type SlogObserver struct {
	logger *slog.Logger
}

func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		o.logger.Info("llm_call", "model", event.Model, "latency_ms", event.LatencyMs)
		return
	}
	o.logger.Warn("llm_call", "model", event.Model, "latency_ms", event.LatencyMs,
		"error_code", event.ErrorCode)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
