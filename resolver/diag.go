package resolver

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Diagnostic event names emitted on resolution misses.
const (
	eventNoHandlerFound = "no_handler_found"
	eventNoRouteFound   = "no_route_found"
)

// emit records a structured resolution-miss event. Each event carries a
// fresh UUID so individual misses can be correlated across log streams.
func (r *Resolver) emit(event, url, normalized string, cause error) {
	r.log.Warn("url resolution failed",
		zap.String("event", event),
		zap.String("event_id", uuid.NewString()),
		zap.String("url", url),
		zap.String("normalized_url", normalized),
		zap.Error(cause),
	)
}
