package walker

import "context"

// Scope is where in the document the walk currently is. Fields are empty
// (or zero) when the walk is outside the corresponding construct.
type Scope struct {
	PathTemplate string // e.g. "/pets/{petId}" beneath paths
	Method       string // lower-case HTTP method beneath an operation
	StatusCode   string // "200", "default" beneath an operation response

	// Name is the map key of the current node: a component, property,
	// media type, header, link or example name.
	Name        string
	IsComponent bool
	Depth       int // schema nesting, 0 outside schemas
}

func (s Scope) InPathsScope() bool     { return s.PathTemplate != "" }
func (s Scope) InOperationScope() bool { return s.Method != "" }
func (s Scope) InResponseScope() bool  { return s.StatusCode != "" }

// WalkContext is passed to every handler.
type WalkContext struct {
	// JSONPath uses the dotted form of oaserrors,
	// e.g. "paths./pets.get.responses.200".
	JSONPath string
	Scope

	ctx context.Context
}

// Context returns the walk's context, or context.Background when none was
// supplied.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx != nil {
		return wc.ctx
	}
	return context.Background()
}

// walkState is copied by value on descent so siblings never see each
// other's scope.
type walkState struct {
	Scope
	ctx context.Context
}

func (s walkState) at(jsonPath string) *WalkContext {
	return &WalkContext{JSONPath: jsonPath, Scope: s.Scope, ctx: s.ctx}
}

func (s walkState) named(name string) walkState {
	s.Name = name
	return s
}
