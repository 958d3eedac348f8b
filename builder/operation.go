package builder

import (
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/orderedmap"
)

// OperationOption configures an operation created by NewOperation.
type OperationOption func(*model.Operation)

// NewOperation creates an operation from options, applied in order.
//
//	op := builder.NewOperation(
//	    builder.WithOperationID("listPets"),
//	    builder.WithJSONResponse("200", "a page of pets", builder.SchemaRef("Pets")),
//	)
func NewOperation(opts ...OperationOption) *model.Operation {
	op := &model.Operation{}
	for _, opt := range opts {
		if opt != nil {
			opt(op)
		}
	}
	return op
}

// WithOperationID sets the operation ID.
func WithOperationID(id string) OperationOption {
	return func(op *model.Operation) {
		op.OperationID = id
	}
}

// WithSummary sets the operation summary.
func WithSummary(summary string) OperationOption {
	return func(op *model.Operation) {
		op.Summary = summary
	}
}

// WithDescription sets the operation description.
func WithDescription(desc string) OperationOption {
	return func(op *model.Operation) {
		op.Description = desc
	}
}

// WithTags appends tag names.
func WithTags(tags ...string) OperationOption {
	return func(op *model.Operation) {
		for _, t := range tags {
			op.AddTag(t)
		}
	}
}

// WithDeprecated sets the deprecated flag.
func WithDeprecated(deprecated bool) OperationOption {
	return func(op *model.Operation) {
		op.Deprecated = &deprecated
	}
}

// WithParameter appends a parameter.
func WithParameter(p *model.Parameter) OperationOption {
	return func(op *model.Operation) {
		op.AddParameter(p)
	}
}

// WithQueryParameter appends an optional query parameter with the given
// schema.
func WithQueryParameter(name, description string, s model.Schema) OperationOption {
	return func(op *model.Operation) {
		p := model.NewQueryParameter(name)
		p.Description = description
		p.Required = model.Ptr(false)
		p.Schema = s
		op.AddParameter(p)
	}
}

// WithRequestBody sets a request body with a single media type.
func WithRequestBody(mediaType string, s model.Schema, required bool) OperationOption {
	return func(op *model.Operation) {
		op.RequestBody = (&model.RequestBody{Required: &required}).
			AddMediaType(mediaType, &model.MediaType{Schema: s})
	}
}

// WithResponse sets the response for a status code. A repeated code is
// replaced in place.
func WithResponse(code string, r *model.Response) OperationOption {
	return func(op *model.Operation) {
		op.AddResponse(code, r)
	}
}

// WithJSONResponse sets a response whose application/json body matches s.
func WithJSONResponse(code, description string, s model.Schema) OperationOption {
	return WithResponse(code, (&model.Response{Description: description}).
		AddMediaType("application/json", &model.MediaType{Schema: s}))
}

// WithSecurity sets the security requirements.
func WithSecurity(requirements ...model.SecurityRequirement) OperationOption {
	return func(op *model.Operation) {
		op.Security = requirements
	}
}

// WithNoSecurity clears inherited security with an empty, present list.
func WithNoSecurity() OperationOption {
	return func(op *model.Operation) {
		op.Security = []model.SecurityRequirement{}
	}
}

// WithOperationExtension sets a specification extension. Keys that do not
// start with "x-" are never written.
func WithOperationExtension(key string, v any) OperationOption {
	return func(op *model.Operation) {
		if op.Extensions == nil {
			op.Extensions = orderedmap.New[any]()
		}
		op.Extensions.Set(key, v)
	}
}
