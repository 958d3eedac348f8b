package walker

import "github.com/erraggy/oasmodel/model"

// collect runs a walk with one extra handler installed after the caller's
// options.
func collect[T any](doc *model.Document, opts []Option, handler Option, out T) (T, error) {
	if err := Walk(doc, append(opts, handler)...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// SchemaInfo is a schema together with the scope it was found in. The
// embedded Scope.Name is the component or property name, empty for items
// and other unnamed positions.
type SchemaInfo struct {
	Schema   model.Schema
	JSONPath string
	Scope
}

// SchemaCollector indexes the schemas of a document. All is in walk order;
// Components and Inline partition it.
type SchemaCollector struct {
	All        []*SchemaInfo
	Components []*SchemaInfo
	Inline     []*SchemaInfo

	ByPath map[string]*SchemaInfo
	ByName map[string]*SchemaInfo // top-level components.schemas entries only
}

func (c *SchemaCollector) add(info *SchemaInfo) {
	c.All = append(c.All, info)
	c.ByPath[info.JSONPath] = info
	if !info.IsComponent {
		c.Inline = append(c.Inline, info)
		return
	}
	c.Components = append(c.Components, info)
	if info.Depth == 1 && info.JSONPath == "components.schemas."+info.Name {
		c.ByName[info.Name] = info
	}
}

// CollectSchemas gathers every schema in doc, reference schemas included.
func CollectSchemas(doc *model.Document, opts ...Option) (*SchemaCollector, error) {
	c := &SchemaCollector{
		ByPath: map[string]*SchemaInfo{},
		ByName: map[string]*SchemaInfo{},
	}
	return collect(doc, opts, WithSchemaHandler(func(wc *WalkContext, s model.Schema) Action {
		c.add(&SchemaInfo{Schema: s, JSONPath: wc.JSONPath, Scope: wc.Scope})
		return Continue
	}), c)
}

// OperationInfo is an operation together with its path template and
// lower-case method, both available through the embedded Scope.
type OperationInfo struct {
	Operation *model.Operation
	JSONPath  string
	Scope
}

// OperationCollector indexes the operations of a document. An operation
// with several tags appears under each of them in ByTag; untagged ones
// appear under none.
type OperationCollector struct {
	All      []*OperationInfo
	ByPath   map[string][]*OperationInfo
	ByMethod map[string][]*OperationInfo
	ByTag    map[string][]*OperationInfo
	ByID     map[string]*OperationInfo // first declaration wins
}

func (c *OperationCollector) add(info *OperationInfo) {
	c.All = append(c.All, info)
	c.ByPath[info.PathTemplate] = append(c.ByPath[info.PathTemplate], info)
	c.ByMethod[info.Method] = append(c.ByMethod[info.Method], info)
	for _, tag := range info.Operation.Tags {
		c.ByTag[tag] = append(c.ByTag[tag], info)
	}
	if id := info.Operation.OperationID; id != "" {
		if _, seen := c.ByID[id]; !seen {
			c.ByID[id] = info
		}
	}
}

// CollectOperations gathers every operation in doc in path order.
func CollectOperations(doc *model.Document, opts ...Option) (*OperationCollector, error) {
	c := &OperationCollector{
		ByPath:   map[string][]*OperationInfo{},
		ByMethod: map[string][]*OperationInfo{},
		ByTag:    map[string][]*OperationInfo{},
		ByID:     map[string]*OperationInfo{},
	}
	return collect(doc, opts, WithOperationHandler(func(wc *WalkContext, op *model.Operation) Action {
		c.add(&OperationInfo{Operation: op, JSONPath: wc.JSONPath, Scope: wc.Scope})
		return Continue
	}), c)
}

// CollectRefs returns every $ref in doc in walk order.
func CollectRefs(doc *model.Document, opts ...Option) ([]*RefInfo, error) {
	var refs []*RefInfo
	out, err := collect(doc, opts, WithRefHandler(func(_ *WalkContext, ref *RefInfo) Action {
		refs = append(refs, ref)
		return Continue
	}), &refs)
	if err != nil {
		return nil, err
	}
	return *out, nil
}
