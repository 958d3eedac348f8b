package walker

// RefNodeType names the kind of node a $ref was found on.
type RefNodeType string

// Node types that can carry a $ref.
const (
	RefNodeSchema      RefNodeType = "schema"
	RefNodeParameter   RefNodeType = "parameter"
	RefNodeResponse    RefNodeType = "response"
	RefNodeRequestBody RefNodeType = "requestBody"
	RefNodeHeader      RefNodeType = "header"
	RefNodeExample     RefNodeType = "example"
	RefNodeLink        RefNodeType = "link"
	RefNodePathItem    RefNodeType = "pathItem"
)

// RefInfo contains information about a $ref encountered during traversal.
type RefInfo struct {
	// Ref is the $ref value (e.g., "#/components/schemas/User")
	Ref string

	// SourcePath is the JSON path where the ref was encountered
	SourcePath string

	// NodeType is the type of node containing the ref
	NodeType RefNodeType
}

// RefHandler is called when a $ref is encountered during traversal.
// Return Stop to halt traversal, Continue to proceed.
type RefHandler func(wc *WalkContext, ref *RefInfo) Action

// handleRef reports a $ref to the ref handler. It returns false when the
// walk must stop.
func (w *Walker) handleRef(ref, jsonPath string, nodeType RefNodeType, state walkState) bool {
	if ref == "" || w.onRef == nil {
		return true
	}
	action := w.onRef(state.at(jsonPath), &RefInfo{Ref: ref, SourcePath: jsonPath, NodeType: nodeType})
	if action == Stop {
		w.stopped = true
		return false
	}
	return true
}
