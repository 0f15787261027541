package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/nani-api/internal/platform/logger"
	"github.com/phrazzld/nani-api/internal/redact"
)

// LogHandler writes every transition at debug level and failures at warn,
// using the request-scoped logger when the context carries one.
type LogHandler struct {
	fallback *slog.Logger
}

func NewLogHandler(fallback *slog.Logger) *LogHandler {
	return &LogHandler{fallback: fallback}
}

func (h *LogHandler) HandleEvent(ctx context.Context, event *StateEvent) error {
	log := logger.FromContextOrDefault(ctx, h.fallback)

	attrs := []any{
		"request_id", event.RequestID,
		"content_type", event.ContentType,
		"state", event.State,
	}
	if event.State == StateFailed && event.Err != nil {
		log.WarnContext(ctx, "generation failed", append(attrs, "error", redact.Error(event.Err))...)
		return nil
	}
	log.DebugContext(ctx, "generation state", attrs...)
	return nil
}
