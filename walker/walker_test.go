package walker

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/oaslog"
)

// petstore builds a small document touching every walked node type.
func petstore(t *testing.T) *model.Document {
	t.Helper()
	doc := model.NewDocument()
	doc.Info = &model.Info{Title: "Pets", Version: "1.0.0"}

	list := &model.Operation{OperationID: "listPets", Tags: []string{"pets"}}
	list.AddParameter(&model.Parameter{Name: "limit", In: "query", Schema: &model.IntegerSchema{}})
	ok := &model.Response{Description: "OK"}
	ok.AddHeader("X-Rate", &model.Header{Schema: &model.IntegerSchema{}})
	ok.AddMediaType("application/json", &model.MediaType{
		Schema: &model.ArraySchema{Items: model.SchemaRef("Pet")},
	})
	ok.AddLink("next", &model.Link{Ref: "#/components/links/Next"})
	list.AddResponse("200", ok)

	create := &model.Operation{OperationID: "createPet", Tags: []string{"pets", "admin"}}
	create.RequestBody = (&model.RequestBody{}).AddMediaType("application/json", &model.MediaType{
		Schema: model.SchemaRef("Pet"),
	})
	create.AddResponse("201", &model.Response{Ref: "#/components/responses/Created"})

	pets := &model.PathItem{Get: list, Post: create}
	doc.AddPathItem("/pets", pets)

	show := &model.Operation{OperationID: "showPet"}
	show.AddResponse("default", &model.Response{Description: "any"})
	byID := &model.PathItem{Get: show}
	byID.AddParameter(&model.Parameter{Name: "id", In: "path", Schema: &model.StringSchema{}})
	doc.AddPathItem("/pets/{id}", byID)

	c := doc.EnsureComponents()
	pet := &model.ObjectSchema{}
	pet.AddProperty("id", &model.IntegerSchema{})
	pet.AddProperty("name", &model.StringSchema{})
	pet.AddProperty("tags", &model.ArraySchema{Items: &model.StringSchema{}})
	require.NoError(t, c.PutSchema("Pet", pet))
	require.NoError(t, c.PutSchema("Error", &model.ObjectSchema{AdditionalProperties: &model.StringSchema{}}))
	require.NoError(t, c.PutResponse("Created", &model.Response{Description: "created"}))
	require.NoError(t, c.PutLink("Next", &model.Link{OperationID: "listPets"}))
	return doc
}

func TestWalkNilDocument(t *testing.T) {
	err := Walk(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil document")
}

func TestWalkEmptyDocument(t *testing.T) {
	var visited int
	err := Walk(model.NewDocument(),
		WithSchemaHandler(func(*WalkContext, model.Schema) Action {
			visited++
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Zero(t, visited)
}

func TestWalkSchemaOrder(t *testing.T) {
	var paths []string
	err := Walk(petstore(t),
		WithSchemaHandler(func(wc *WalkContext, _ model.Schema) Action {
			paths = append(paths, wc.JSONPath)
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"paths./pets.get.parameters[0].schema",
		"paths./pets.get.responses.200.headers.X-Rate.schema",
		"paths./pets.get.responses.200.content.application/json.schema",
		"paths./pets.get.responses.200.content.application/json.schema.items",
		"paths./pets.post.requestBody.content.application/json.schema",
		"paths./pets/{id}.parameters[0].schema",
		"components.schemas.Pet",
		"components.schemas.Pet.properties.id",
		"components.schemas.Pet.properties.name",
		"components.schemas.Pet.properties.tags",
		"components.schemas.Pet.properties.tags.items",
		"components.schemas.Error",
		"components.schemas.Error.additionalProperties",
	}, paths)
}

func TestWalkContextFields(t *testing.T) {
	type seen struct {
		path, tpl, method, status, name string
		component                        bool
	}
	var ops, responses []seen
	err := Walk(petstore(t),
		WithOperationHandler(func(wc *WalkContext, _ *model.Operation) Action {
			assert.True(t, wc.InPathsScope())
			assert.True(t, wc.InOperationScope())
			assert.False(t, wc.InResponseScope())
			ops = append(ops, seen{path: wc.JSONPath, tpl: wc.PathTemplate, method: wc.Method})
			return Continue
		}),
		WithResponseHandler(func(wc *WalkContext, _ *model.Response) Action {
			responses = append(responses, seen{
				path: wc.JSONPath, tpl: wc.PathTemplate, method: wc.Method,
				status: wc.StatusCode, name: wc.Name, component: wc.IsComponent,
			})
			return Continue
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []seen{
		{path: "paths./pets.get", tpl: "/pets", method: "get"},
		{path: "paths./pets.post", tpl: "/pets", method: "post"},
		{path: "paths./pets/{id}.get", tpl: "/pets/{id}", method: "get"},
	}, ops)
	assert.Equal(t, []seen{
		{path: "paths./pets.get.responses.200", tpl: "/pets", method: "get", status: "200"},
		{path: "paths./pets.post.responses.201", tpl: "/pets", method: "post", status: "201"},
		{path: "paths./pets/{id}.get.responses.default", tpl: "/pets/{id}", method: "get", status: "default"},
		{path: "components.responses.Created", name: "Created", component: true},
	}, responses)
}

func TestWalkSchemaDepthAndName(t *testing.T) {
	collected, err := CollectSchemas(petstore(t))
	require.NoError(t, err)

	tags := collected.ByPath["components.schemas.Pet.properties.tags.items"]
	require.NotNil(t, tags)
	assert.Equal(t, 3, tags.Depth)
	assert.Empty(t, tags.Name)

	name := collected.ByPath["components.schemas.Pet.properties.name"]
	require.NotNil(t, name)
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, 2, name.Depth)
}

func TestWalkSkipChildren(t *testing.T) {
	var ops []string
	err := Walk(petstore(t),
		WithPathItemHandler(func(wc *WalkContext, _ *model.PathItem) Action {
			if wc.PathTemplate == "/pets" {
				return SkipChildren
			}
			return Continue
		}),
		WithOperationHandler(func(_ *WalkContext, op *model.Operation) Action {
			ops = append(ops, op.OperationID)
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"showPet"}, ops)
}

func TestWalkSkipSchemaChildren(t *testing.T) {
	var paths []string
	err := Walk(petstore(t),
		WithSchemaHandler(func(wc *WalkContext, _ model.Schema) Action {
			paths = append(paths, wc.JSONPath)
			if wc.JSONPath == "components.schemas.Pet" {
				return SkipChildren
			}
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Contains(t, paths, "components.schemas.Error")
	assert.NotContains(t, paths, "components.schemas.Pet.properties.id")
}

func TestWalkStop(t *testing.T) {
	var ops, schemas int
	err := Walk(petstore(t),
		WithOperationHandler(func(*WalkContext, *model.Operation) Action {
			ops++
			return Stop
		}),
		WithSchemaHandler(func(*WalkContext, model.Schema) Action {
			schemas++
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, ops)
	assert.Zero(t, schemas)
}

func TestWalkRefs(t *testing.T) {
	refs, err := CollectRefs(petstore(t))
	require.NoError(t, err)

	var got [][3]string
	for _, r := range refs {
		got = append(got, [3]string{r.Ref, r.SourcePath, string(r.NodeType)})
	}
	assert.Equal(t, [][3]string{
		{"#/components/schemas/Pet", "paths./pets.get.responses.200.content.application/json.schema.items", "schema"},
		{"#/components/links/Next", "paths./pets.get.responses.200.links.next", "link"},
		{"#/components/schemas/Pet", "paths./pets.post.requestBody.content.application/json.schema", "schema"},
		{"#/components/responses/Created", "paths./pets.post.responses.201", "response"},
	}, got)
}

func TestWalkRefHandlerStop(t *testing.T) {
	var refs, responses int
	err := Walk(petstore(t),
		WithRefHandler(func(*WalkContext, *RefInfo) Action {
			refs++
			return Stop
		}),
		WithResponseHandler(func(*WalkContext, *model.Response) Action {
			responses++
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, refs)
	assert.Equal(t, 1, responses)
}

func TestWalkRefNodesAreNotDescended(t *testing.T) {
	doc := model.NewDocument()
	op := &model.Operation{}
	op.AddParameter(&model.Parameter{Ref: "#/components/parameters/Limit", Schema: &model.IntegerSchema{}})
	doc.AddPathItem("/a", &model.PathItem{Get: op})

	var params, schemas int
	err := Walk(doc,
		WithParameterHandler(func(*WalkContext, *model.Parameter) Action {
			params++
			return Continue
		}),
		WithSchemaHandler(func(*WalkContext, model.Schema) Action {
			schemas++
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, params)
	assert.Zero(t, schemas)
}

func TestWalkSchemaCycle(t *testing.T) {
	node := &model.ObjectSchema{}
	node.AddProperty("next", node)
	doc := model.NewDocument()
	require.NoError(t, doc.EnsureComponents().PutSchema("Node", node))

	var visited, skipped []string
	err := Walk(doc,
		WithSchemaHandler(func(wc *WalkContext, _ model.Schema) Action {
			visited = append(visited, wc.JSONPath)
			return Continue
		}),
		WithSchemaSkippedHandler(func(wc *WalkContext, s model.Schema) {
			assert.Same(t, node, s)
			skipped = append(skipped, wc.JSONPath)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"components.schemas.Node"}, visited)
	assert.Equal(t, []string{"components.schemas.Node.properties.next"}, skipped)
}

func TestWalkSharedSchemaIsNotACycle(t *testing.T) {
	shared := &model.StringSchema{}
	obj := &model.ObjectSchema{}
	obj.AddProperty("a", shared)
	obj.AddProperty("b", shared)
	doc := model.NewDocument()
	require.NoError(t, doc.EnsureComponents().PutSchema("Obj", obj))

	var skipped int
	collected, err := CollectSchemas(doc, WithSchemaSkippedHandler(func(*WalkContext, model.Schema) { skipped++ }))
	require.NoError(t, err)
	assert.Len(t, collected.All, 3)
	assert.Zero(t, skipped)
}

func nestedArrays(levels int) model.Schema {
	var s model.Schema = &model.StringSchema{}
	for range levels {
		s = &model.ArraySchema{Items: s}
	}
	return s
}

func TestWalkMaxDepth(t *testing.T) {
	doc := model.NewDocument()
	require.NoError(t, doc.EnsureComponents().PutSchema("Deep", nestedArrays(4)))

	err := Walk(doc, WithMaxDepth(3))
	require.Error(t, err)
	var limit *oaserrors.ResourceLimitError
	require.True(t, errors.As(err, &limit))
	assert.Equal(t, int64(3), limit.Limit)
	assert.Equal(t, "components.schemas.Deep.items.items.items", limit.Path)
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))

	assert.NoError(t, Walk(doc, WithMaxDepth(5)))
	assert.NoError(t, Walk(doc, WithMaxDepth(0)), "non-positive keeps the default")
}

func TestWalkCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ops int
	err := Walk(petstore(t),
		WithUserContext(ctx),
		WithOperationHandler(func(*WalkContext, *model.Operation) Action {
			ops++
			return Continue
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, ops)
}

func TestWalkContextReachesHandlers(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	err := Walk(petstore(t),
		WithUserContext(ctx),
		WithOperationHandler(func(wc *WalkContext, _ *model.Operation) Action {
			assert.Equal(t, "v", wc.Context().Value(key{}))
			return Stop
		}),
	)
	require.NoError(t, err)

	assert.NotNil(t, (&WalkContext{}).Context())
}

func TestWalkerReuse(t *testing.T) {
	var ops int
	w := New(WithOperationHandler(func(*WalkContext, *model.Operation) Action {
		ops++
		return Stop
	}))
	require.NoError(t, w.Walk(petstore(t)))
	require.NoError(t, w.Walk(petstore(t)))
	assert.Equal(t, 2, ops)
}

func TestWalkLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := oaslog.NewSlogAdapter(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.NoError(t, Walk(petstore(t), WithLogger(logger)))
	assert.Contains(t, logs.String(), "walk finished")
	assert.Contains(t, logs.String(), "stopped=false")
}

func TestAction(t *testing.T) {
	tests := []struct {
		action Action
		want   string
		valid  bool
	}{
		{Continue, "Continue", true},
		{SkipChildren, "SkipChildren", true},
		{Stop, "Stop", true},
		{Action(9), "Action(9)", false},
		{Action(-1), "Action(-1)", false},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.String())
			assert.Equal(t, tt.valid, tt.action.IsValid())
		})
	}
}

func TestWalkMediaTypeAndRequestBody(t *testing.T) {
	var media []string
	var bodies int
	err := Walk(petstore(t),
		WithRequestBodyHandler(func(wc *WalkContext, _ *model.RequestBody) Action {
			bodies++
			assert.Equal(t, "post", wc.Method)
			return Continue
		}),
		WithMediaTypeHandler(func(wc *WalkContext, _ *model.MediaType) Action {
			media = append(media, wc.Name+"@"+wc.JSONPath)
			return SkipChildren
		}),
		WithSchemaHandler(func(wc *WalkContext, _ model.Schema) Action {
			assert.NotContains(t, wc.JSONPath, "content.")
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, bodies)
	assert.Equal(t, []string{
		"application/json@paths./pets.get.responses.200.content.application/json",
		"application/json@paths./pets.post.requestBody.content.application/json",
	}, media)
}
