package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaslog"
)

// DefaultMaxDepth is the default limit on nested schema depth.
const DefaultMaxDepth = 100

// Action is a handler's verdict on how the walk proceeds.
type Action int

const (
	Continue     Action = iota // visit the node's children, then its siblings
	SkipChildren               // move on to the next sibling
	Stop                       // end the walk; Walk returns nil
)

var actionNames = [...]string{Continue: "Continue", SkipChildren: "SkipChildren", Stop: "Stop"}

func (a Action) IsValid() bool { return a >= 0 && int(a) < len(actionNames) }

func (a Action) String() string {
	if a.IsValid() {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// PathItemHandler is called for each path entry.
type PathItemHandler func(wc *WalkContext, item *model.PathItem) Action

// OperationHandler is called for each operation. wc.Method holds the verb.
type OperationHandler func(wc *WalkContext, op *model.Operation) Action

// ParameterHandler is called for each parameter, at path, operation or
// component level.
type ParameterHandler func(wc *WalkContext, p *model.Parameter) Action

// RequestBodyHandler is called for each request body.
type RequestBodyHandler func(wc *WalkContext, body *model.RequestBody) Action

// ResponseHandler is called for each response. wc.StatusCode holds the code
// inside an operation; wc.Name holds the component name.
type ResponseHandler func(wc *WalkContext, r *model.Response) Action

// MediaTypeHandler is called for each media type. wc.Name holds the media
// type name.
type MediaTypeHandler func(wc *WalkContext, mt *model.MediaType) Action

// SchemaHandler is called for each schema, including nested and reference
// schemas.
type SchemaHandler func(wc *WalkContext, s model.Schema) Action

// SchemaSkippedHandler is called when a schema is not descended into
// because it already appears among its own ancestors.
type SchemaSkippedHandler func(wc *WalkContext, s model.Schema)

// Walker traverses a model.Document and calls handlers for each node type.
type Walker struct {
	onPathItem      PathItemHandler
	onOperation     OperationHandler
	onParameter     ParameterHandler
	onRequestBody   RequestBodyHandler
	onResponse      ResponseHandler
	onMediaType     MediaTypeHandler
	onSchema        SchemaHandler
	onSchemaSkipped SchemaSkippedHandler
	onRef           RefHandler

	maxDepth int
	ctx      context.Context
	logger   oaslog.Logger

	ancestors map[model.Schema]bool
	stopped   bool
	visited   int
}

// New creates a Walker with default settings.
func New(opts ...Option) *Walker {
	w := &Walker{
		maxDepth: DefaultMaxDepth,
		ctx:      context.Background(),
		logger:   oaslog.NopLogger{},
	}
	for _, apply := range opts {
		if apply != nil {
			apply(w)
		}
	}
	return w
}

// Walk traverses doc in document order (paths, then components) and calls
// the registered handlers. It returns an error if doc is nil, the context
// is cancelled, or schemas nest deeper than the configured maximum.
func Walk(doc *model.Document, opts ...Option) error {
	return New(opts...).Walk(doc)
}

// Walk traverses doc. A Walker may be reused but not concurrently.
func (w *Walker) Walk(doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("walker: nil document")
	}
	w.ancestors, w.stopped, w.visited = make(map[model.Schema]bool), false, 0

	err := w.walkDocument(doc)
	w.logger.Debug("walk finished", "nodes", w.visited, "stopped", w.stopped)
	return err
}

// proceed counts the visit and reports whether to descend into the node.
// Unknown actions descend.
func (w *Walker) proceed(action Action) bool {
	w.visited++
	if action == Stop {
		w.stopped = true
	}
	return action != Stop && action != SkipChildren
}
