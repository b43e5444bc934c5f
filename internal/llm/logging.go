package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/speechdrill/internal/logger"
	"github.com/abhisek/speechdrill/internal/store"
)

// RecordingProvider logs each request through zap and appends it to the
// LLM event table, which backs `speechdrill llm list`.
type RecordingProvider struct {
	inner  Provider
	events store.LLMEventRepo
	log    *logger.Logger
	now    func() time.Time
}

// WithRecording wraps p. A nil repo skips persistence; a nil logger is a
// no-op.
func WithRecording(p Provider, events store.LLMEventRepo, log *logger.Logger) Provider {
	return &RecordingProvider{inner: p, events: events, log: log, now: time.Now}
}

func (r *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := r.now()
	resp, err := r.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    r.inner.Name(),
		Model:       r.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   r.now().Sub(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: describeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		r.log.Warn("llm request failed",
			"provider", data.Provider, "model", data.Model, "purpose", data.Purpose,
			"latency_ms", data.LatencyMs, "error", err)
	} else {
		r.log.Debug("llm request",
			"provider", data.Provider, "model", data.Model, "purpose", data.Purpose,
			"latency_ms", data.LatencyMs, "input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
	}

	if r.events != nil {
		// A failed event write never fails the request itself.
		if logErr := r.events.AppendLLMRequest(ctx, data); logErr != nil {
			r.log.Warn("record llm request event", "error", logErr)
		}
	}
	return resp, err
}

func (r *RecordingProvider) Name() string    { return r.inner.Name() }
func (r *RecordingProvider) ModelID() string { return r.inner.ModelID() }

// describeRequest renders a request as readable text for the event log.
func describeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
