package builder

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oasjson"
)

// Builder assembles a model.Document through a fluent API.
//
// Every keyed entry (path, verb, component, tag) follows last-write-wins;
// replacements are logged at debug level. Problems such as empty names or
// unknown HTTP methods are recorded and returned together by Build, so a
// chain of calls never has to be interrupted for error checks.
//
// Concurrency: Builder instances are not safe for concurrent use.
type Builder struct {
	cfg *config
	doc *model.Document

	operationIDs map[string]Location
	errors       BuilderErrors
}

// New creates a Builder.
//
//	b := builder.New(builder.WithSchemaNaming(builder.SchemaNamingPascalCase)).
//		SetTitle("Pets").
//		SetVersion("1.0.0")
//	doc, err := b.Build()
func New(opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	doc := model.NewDocument()
	doc.OpenAPI = cfg.version
	return &Builder{
		cfg:          cfg,
		doc:          doc,
		operationIDs: make(map[string]Location),
	}
}

func (b *Builder) fail(err *BuilderError) *Builder {
	b.errors = append(b.errors, err)
	return b
}

func (b *Builder) info() *model.Info {
	if b.doc.Info == nil {
		b.doc.Info = &model.Info{}
	}
	return b.doc.Info
}

// SetInfo replaces the Info object.
func (b *Builder) SetInfo(info *model.Info) *Builder {
	b.doc.Info = info
	return b
}

// SetTitle sets the API title.
func (b *Builder) SetTitle(title string) *Builder {
	b.info().Title = title
	return b
}

// SetVersion sets the API version. This is not the OpenAPI version; see
// WithOpenAPIVersion for that.
func (b *Builder) SetVersion(version string) *Builder {
	b.info().Version = version
	return b
}

// SetDescription sets the API description.
func (b *Builder) SetDescription(desc string) *Builder {
	b.info().Description = desc
	return b
}

// SetContact sets the contact information.
func (b *Builder) SetContact(name, url, email string) *Builder {
	b.info().Contact = &model.Contact{Name: name, URL: url, Email: email}
	return b
}

// SetLicense sets the license information.
func (b *Builder) SetLicense(name, url string) *Builder {
	b.info().License = &model.License{Name: name, URL: url}
	return b
}

// SetExternalDocs sets the document-level external documentation.
func (b *Builder) SetExternalDocs(url, description string) *Builder {
	b.doc.ExternalDocs = &model.ExternalDocs{URL: url, Description: description}
	return b
}

// AddTag adds a tag. A tag with the same name is replaced in place.
func (b *Builder) AddTag(name, description string) *Builder {
	if name == "" {
		return b.fail(errEmptyName(ComponentTag))
	}
	tag := &model.Tag{Name: name, Description: description}
	for i, t := range b.doc.Tags {
		if t.Name == name {
			b.cfg.logger.Debug("replacing tag", "name", name)
			b.doc.Tags[i] = tag
			return b
		}
	}
	b.doc.AddTag(tag)
	return b
}

// AddServer appends a server.
func (b *Builder) AddServer(url, description string) *Builder {
	b.doc.AddServer(&model.Server{URL: url, Description: description})
	return b
}

// AddSecurity appends a document-level security requirement.
func (b *Builder) AddSecurity(req model.SecurityRequirement) *Builder {
	b.doc.Security = append(b.doc.Security, req)
	return b
}

// SchemaName returns name rewritten by the configured naming strategy.
func (b *Builder) SchemaName(name string) string {
	return b.cfg.naming.Apply(name)
}

// AddSchema registers a schema component under name, rewritten by the
// naming strategy. An existing schema with that name is replaced.
func (b *Builder) AddSchema(name string, s model.Schema) *Builder {
	name = b.SchemaName(name)
	if name == "" {
		return b.fail(errEmptyName(ComponentSchema))
	}
	if model.IsNil(s) {
		return b.fail(errNilValue(ComponentSchema, name))
	}
	c := b.doc.EnsureComponents()
	if _, exists := c.Schema(name); exists {
		b.cfg.logger.Debug("replacing schema component", "name", name)
	}
	if err := c.PutSchema(name, s); err != nil {
		return b.fail(&BuilderError{Component: ComponentSchema, Name: name, Cause: err})
	}
	return b
}

// SchemaRef returns a reference to the schema component name, rewritten
// the same way AddSchema rewrites it. The target need not exist yet.
func (b *Builder) SchemaRef(name string) *model.AnySchema {
	return model.NewRef(pathutil.SchemaRef(b.SchemaName(name)))
}

// AddResponse registers a response component.
func (b *Builder) AddResponse(name string, r *model.Response) *Builder {
	if name == "" {
		return b.fail(errEmptyName(ComponentResponse))
	}
	if r == nil {
		return b.fail(errNilValue(ComponentResponse, name))
	}
	c := b.doc.EnsureComponents()
	if _, exists := c.Response(name); exists {
		b.cfg.logger.Debug("replacing response component", "name", name)
	}
	if err := c.PutResponse(name, r); err != nil {
		return b.fail(&BuilderError{Component: ComponentResponse, Name: name, Cause: err})
	}
	return b
}

// ResponseRef returns a reference to the response component name.
func (b *Builder) ResponseRef(name string) *model.Response {
	return &model.Response{Ref: pathutil.ResponseRef(name)}
}

// AddParameter registers a parameter component.
func (b *Builder) AddParameter(name string, p *model.Parameter) *Builder {
	if name == "" {
		return b.fail(errEmptyName(ComponentParameter))
	}
	if p == nil {
		return b.fail(errNilValue(ComponentParameter, name))
	}
	c := b.doc.EnsureComponents()
	if _, exists := c.Parameter(name); exists {
		b.cfg.logger.Debug("replacing parameter component", "name", name)
	}
	if err := c.PutParameter(name, p); err != nil {
		return b.fail(&BuilderError{Component: ComponentParameter, Name: name, Cause: err})
	}
	return b
}

// ParameterRef returns a reference to the parameter component name.
func (b *Builder) ParameterRef(name string) *model.Parameter {
	return &model.Parameter{Ref: pathutil.ParameterRef(name)}
}

// AddPath sets the path item for a template. An existing item is replaced
// and keeps its position.
func (b *Builder) AddPath(template string, item *model.PathItem) *Builder {
	if template == "" {
		return b.fail(errEmptyName(ComponentPath))
	}
	if item == nil {
		return b.fail(errNilValue(ComponentPath, template))
	}
	if old, exists := b.doc.PathItem(template); exists {
		b.cfg.logger.Debug("replacing path item", "path", template)
		for method, op := range old.Operations().All() {
			b.releaseOperationID(op, method, template)
		}
	}
	b.doc.AddPathItem(template, item)
	for method, op := range item.Operations().All() {
		b.claimOperationID(op, method, template)
	}
	return b
}

// AddOperation sets the operation for method on the path template,
// creating the path item if needed. An existing operation for the same
// verb is replaced.
func (b *Builder) AddOperation(method, template string, op *model.Operation) *Builder {
	if !model.IsSupportedMethod(method) {
		return b.fail(errUnsupportedMethod(Location{Method: method, Path: template}))
	}
	if template == "" {
		return b.fail(errEmptyName(ComponentPath))
	}
	if op == nil {
		return b.fail(errNilValue(ComponentOperation, fmt.Sprintf("%s %s", method, template)))
	}
	item, exists := b.doc.PathItem(template)
	if !exists {
		item = &model.PathItem{}
		b.doc.AddPathItem(template, item)
	}
	if old := item.Operation(method); old != nil {
		b.cfg.logger.Debug("replacing operation", "method", method, "path", template)
		b.releaseOperationID(old, method, template)
	}
	item.SetOperation(method, op)
	b.claimOperationID(op, method, template)
	return b
}

func (b *Builder) claimOperationID(op *model.Operation, method, template string) {
	if op == nil || op.OperationID == "" {
		return
	}
	here := Location{Method: method, Path: template}
	if first, taken := b.operationIDs[op.OperationID]; taken {
		b.fail(errDuplicateOperationID(op.OperationID, here, first))
		return
	}
	b.operationIDs[op.OperationID] = here
}

// releaseOperationID forgets an operationId when the operation that
// claimed it is replaced.
func (b *Builder) releaseOperationID(op *model.Operation, method, template string) {
	if op == nil || op.OperationID == "" {
		return
	}
	if loc, ok := b.operationIDs[op.OperationID]; ok && loc.Path == template && strings.EqualFold(loc.Method, method) {
		delete(b.operationIDs, op.OperationID)
	}
}

// Build returns the assembled document, or every recorded error. The
// returned document is the one the Builder keeps editing.
func (b *Builder) Build() (*model.Document, error) {
	if b.cfg.err != nil {
		return nil, fmt.Errorf("builder: configuration error: %w", b.cfg.err)
	}
	if len(b.errors) > 0 {
		return nil, b.errors
	}
	return b.doc, nil
}

// MarshalJSON builds the document and renders it as JSON.
func (b *Builder) MarshalJSON() ([]byte, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}
	return oasjson.Marshal(doc, oasjson.WithLogger(b.cfg.logger))
}

// MarshalYAML builds the document and renders it as YAML.
func (b *Builder) MarshalYAML() ([]byte, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}
	return oasjson.MarshalYAML(doc, oasjson.WithLogger(b.cfg.logger))
}
