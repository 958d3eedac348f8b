// Package walker provides a document traversal API for model.Document.
//
// The walker visits every path item, operation, parameter, request body,
// response, media type and schema in document order: paths in insertion
// order, operations in method emission order, then the components section.
// Handlers receive the live nodes and may inspect or mutate them.
//
// # Quick Start
//
// Collect all operation IDs:
//
//	var ids []string
//	err := walker.Walk(doc,
//	    walker.WithOperationHandler(func(wc *walker.WalkContext, op *model.Operation) walker.Action {
//	        ids = append(ids, op.OperationID)
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// # References
//
// A node carrying a $ref is reported to the [RefHandler] and is not
// descended into; the walker never resolves references. Reference schemas
// are still passed to the [SchemaHandler].
//
// # Limits
//
// A schema reachable from itself through live pointers is visited once per
// branch; the repeat is reported to the [SchemaSkippedHandler]. Schemas
// nested deeper than [WithMaxDepth] fail the walk with a
// *oaserrors.ResourceLimitError.
//
// # Collectors
//
// [CollectSchemas], [CollectOperations] and [CollectRefs] cover the common
// gather-everything cases.
package walker
