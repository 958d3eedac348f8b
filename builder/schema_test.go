package builder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oasjson"
)

func render(t *testing.T, n model.Node) string {
	t.Helper()
	data, err := oasjson.Marshal(n)
	require.NoError(t, err)
	return string(data)
}

func TestSchemaBuilders(t *testing.T) {
	tests := []struct {
		name   string
		schema model.Schema
		want   string
	}{
		{
			name: "string",
			schema: String().
				Description("zip code").
				Pattern(`^\d{5}$`).
				MinLength(2).
				MaxLength(2).
				Build(),
			want: `{"description":"zip code","type":"string","minLength":2,"maxLength":2,"pattern":"^\\d{5}$"}`,
		},
		{
			name:   "integer",
			schema: Integer().Description("simple integer schema").MultipleOfInt(3).MinimumInt(6).Build(),
			want:   `{"description":"simple integer schema","type":"integer","minimum":6,"multipleOf":3}`,
		},
		{
			name: "number",
			schema: Number().
				Format("double").
				Minimum(decimal.RequireFromString("0.5")).
				ExclusiveMinimum(true).
				MaximumInt(10).
				Build(),
			want: `{"type":"number","format":"double","minimum":0.5,"maximum":10,"exclusiveMinimum":true}`,
		},
		{
			name:   "boolean",
			schema: Boolean().Default(false).Nullable(true).Build(),
			want:   `{"type":"boolean","default":false,"nullable":true}`,
		},
		{
			name:   "array",
			schema: Array(String().Build()).MinItems(1).UniqueItems(true).Build(),
			want:   `{"type":"array","items":{"type":"string"},"minItems":1,"uniqueItems":true}`,
		},
		{
			name: "object",
			schema: Object().
				Property("id", Integer().Format("int64").Build()).
				Required("id").
				AdditionalProperties(String().Build()).
				MaxProperties(4).
				Build(),
			want: `{"type":"object","additionalProperties":{"type":"string"},"maxProperties":4,"required":["id"],"properties":{"id":{"type":"integer","format":"int64"}}}`,
		},
		{
			name:   "closed object",
			schema: Object().AllowAdditionalProperties(false).Build(),
			want:   `{"type":"object","additionalProperties":false}`,
		},
		{
			name:   "any",
			schema: Any().Title("anything").Example(map[string]any{"k": "v"}).Build(),
			want:   `{"title":"anything","example":{"k":"v"}}`,
		},
		{
			name:   "empty enum",
			schema: String().Enum().Build(),
			want:   `{"type":"string","enum":[]}`,
		},
		{
			name:   "reference suppresses siblings",
			schema: Object().Description("ignored").Ref("#/components/schemas/Pet").Build(),
			want:   `{"$ref":"#/components/schemas/Pet"}`,
		},
		{
			name:   "flags and docs",
			schema: String().ReadOnly(true).Deprecated(true).ExternalDocs("https://example.com", "more").Build(),
			want:   `{"type":"string","readOnly":true,"deprecated":true,"externalDocs":{"description":"more","url":"https://example.com"}}`,
		},
		{
			name:   "extensions",
			schema: Boolean().Extension("x-flag", 1).Extension("plain", 2).Build(),
			want:   `{"type":"boolean","x-flag":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.schema))
		})
	}
}

func TestSchemaBuilderChainsKeepConcreteType(t *testing.T) {
	// Shared setters return the concrete builder, so variant setters remain
	// reachable after them.
	s := String().Title("t").MinLength(1).Description("d").MaxLength(0).Build()
	assert.Equal(t, 1, *s.MinLength)
	assert.Equal(t, 0, *s.MaxLength, "min above max is accepted")
	assert.Equal(t, "d", s.Description)
}

func TestSchemaBuilderPropertyOverwrite(t *testing.T) {
	s := Any().
		Property("street", String().Build()).
		Property("city", String().Build()).
		Property("street", Integer().Build()).
		Build()

	assert.Equal(t, []string{"street", "city"}, s.Properties.Keys())
	street, _ := s.Property("street")
	assert.Equal(t, model.TypeInteger, street.SchemaType())
}

func TestSchemaBuilderBuildReturnsSameValue(t *testing.T) {
	b := Integer()
	first := b.Build()
	b.MinimumInt(1)
	assert.Same(t, first, b.Build())
	assert.Equal(t, "1", first.Minimum.String())
}
