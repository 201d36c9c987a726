package recommend

import "context"

type ctxKey string

// TraceIDKey carries the per-request trace ID set by the HTTP layer.
const TraceIDKey ctxKey = "reco_trace_id"

func TraceIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(TraceIDKey).(string); ok {
		return v
	}
	return ""
}
