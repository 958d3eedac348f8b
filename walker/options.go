package walker

import (
	"context"

	"github.com/erraggy/oasmodel/oaslog"
)

// Option configures the Walker.
type Option func(*Walker)

// WithPathItemHandler sets the handler for path items.
func WithPathItemHandler(fn PathItemHandler) Option {
	return func(w *Walker) { w.onPathItem = fn }
}

// WithOperationHandler sets the handler for operations.
func WithOperationHandler(fn OperationHandler) Option {
	return func(w *Walker) { w.onOperation = fn }
}

// WithParameterHandler sets the handler for parameters.
func WithParameterHandler(fn ParameterHandler) Option {
	return func(w *Walker) { w.onParameter = fn }
}

// WithRequestBodyHandler sets the handler for request bodies.
func WithRequestBodyHandler(fn RequestBodyHandler) Option {
	return func(w *Walker) { w.onRequestBody = fn }
}

// WithResponseHandler sets the handler for responses.
func WithResponseHandler(fn ResponseHandler) Option {
	return func(w *Walker) { w.onResponse = fn }
}

// WithMediaTypeHandler sets the handler for media types.
func WithMediaTypeHandler(fn MediaTypeHandler) Option {
	return func(w *Walker) { w.onMediaType = fn }
}

// WithSchemaHandler sets the handler for schemas.
func WithSchemaHandler(fn SchemaHandler) Option {
	return func(w *Walker) { w.onSchema = fn }
}

// WithSchemaSkippedHandler sets the handler called when a schema cycle is
// cut short.
func WithSchemaSkippedHandler(fn SchemaSkippedHandler) Option {
	return func(w *Walker) { w.onSchemaSkipped = fn }
}

// WithRefHandler sets a handler called for every $ref encountered.
func WithRefHandler(fn RefHandler) Option {
	return func(w *Walker) { w.onRef = fn }
}

// WithMaxDepth sets the maximum schema nesting depth. Nesting beyond it
// fails the walk with a *oaserrors.ResourceLimitError. Default is 100.
// If depth is <= 0, the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithUserContext sets the context for cancellation. It is also available
// to handlers via wc.Context().
func WithUserContext(ctx context.Context) Option {
	return func(w *Walker) {
		if ctx != nil {
			w.ctx = ctx
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l oaslog.Logger) Option {
	return func(w *Walker) { w.logger = oaslog.OrNop(l) }
}
