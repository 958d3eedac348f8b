package oasjson

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/oaslog"
	"github.com/erraggy/oasmodel/orderedmap"
)

func TestRoundTripScenario(t *testing.T) {
	first, err := Marshal(petstoreScenario(t))
	require.NoError(t, err)

	doc, err := Unmarshal(first)
	require.NoError(t, err)

	second, err := Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	addr, ok := doc.Components.Schema("Address")
	require.True(t, ok)
	assert.Equal(t, []string{"street", "city", "state", "zip", "country"}, addr.Core().Properties.Keys())

	item, ok := doc.PathItem("/foo")
	require.True(t, ok)
	require.NotNil(t, item.Get)
	ok200, ok := item.Get.Responses.Get("200")
	require.True(t, ok)
	media, ok := ok200.Content.Get("application/json")
	require.True(t, ok)
	assert.True(t, media.Schema.Core().IsRef())
	assert.Equal(t, "#/components/schemas/Address", media.Schema.Core().Ref)
}

func TestUnmarshalKeepsEmptyCollections(t *testing.T) {
	in := `{"openapi":"3.0.3","paths":{},"components":{"schemas":{"E":{"type":"string","enum":[]}}},"tags":[]}`
	doc, err := Unmarshal([]byte(in))
	require.NoError(t, err)

	out, err := Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	var buf bytes.Buffer
	logger := oaslog.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	in := `{"openapi":"3.0.3","bogus":1,"info":{"title":"t","version":"1","colour":"red","x-ok":true}}`
	doc, err := Unmarshal([]byte(in), WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, "t", doc.Info.Title)

	logged := buf.String()
	assert.Contains(t, logged, "ignoring unknown field")
	assert.Contains(t, logged, "field=bogus")
	assert.Contains(t, logged, "field=colour")
	assert.NotContains(t, logged, "x-ok")

	out, err := Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"openapi":"3.0.3","info":{"title":"t","version":"1","x-ok":true}}`, string(out))
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		message  string
		jsonPath string
	}{
		{name: "empty input", in: "", message: "empty input"},
		{name: "whitespace only", in: " \n\t", message: "empty input"},
		{name: "malformed", in: `{"openapi": }`, message: "invalid JSON"},
		{name: "truncated", in: `{"openapi":"3.0.3"`, message: "invalid JSON"},
		{name: "root is not an object", in: `[1,2]`, jsonPath: ""},
		{name: "wrong type", in: `{"paths":{"/a":{"get":{"operationId":1}}}}`, jsonPath: "paths./a.get.operationId"},
		{name: "bad schema type", in: `{"components":{"schemas":{"A":{"type":"banana"}}}}`, jsonPath: "components.schemas.A.type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrParse), "got %v", err)
			var pe *oaserrors.ParseError
			require.True(t, errors.As(err, &pe))
			if tt.message != "" {
				assert.Equal(t, tt.message, pe.Message)
			}
			assert.Equal(t, tt.jsonPath, pe.JSONPath)
		})
	}
}

func TestUnmarshalSyntaxErrorPosition(t *testing.T) {
	_, err := Unmarshal([]byte("{\n  \"openapi\": \"3.0.3\",\n  \"info\": ]\n}"))
	var pe *oaserrors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Greater(t, pe.Line, 0)
	assert.Greater(t, pe.Column, 0)
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		offset       int64
		line, column int
	}{
		{"start", "abc", 0, 1, 1},
		{"same line", "abc", 2, 1, 3},
		{"second line", "ab\ncd", 4, 2, 2},
		{"right after newline", "ab\ncd", 3, 2, 1},
		{"negative", "abc", -5, 1, 1},
		{"past end", "ab\ncd", 99, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, column := position([]byte(tt.data), tt.offset)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.column, column)
		})
	}
}

func TestDecodeTreeDepthLimit(t *testing.T) {
	deep := strings.Repeat("[", 200) + strings.Repeat("]", 200)

	_, err := DecodeTree([]byte(deep))
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit), "got %v", err)

	_, err = DecodeTree([]byte(deep), WithMaxDepth(200))
	assert.NoError(t, err)
}

func TestDecodeTreeValues(t *testing.T) {
	tree, err := DecodeTree([]byte(`{"b":0.1,"a":12345678901234567890123,"c":[true,null,"x"],"d":{}}`))
	require.NoError(t, err)

	m, ok := tree.(*orderedmap.Map[any])
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a", "c", "d"}, m.Keys())

	b, _ := m.Get("b")
	assert.True(t, decimal.RequireFromString("0.1").Equal(b.(decimal.Decimal)))
	a, _ := m.Get("a")
	assert.Equal(t, "12345678901234567890123", a.(decimal.Decimal).String())
	c, _ := m.Get("c")
	assert.Equal(t, []any{true, nil, "x"}, c)
	d, _ := m.Get("d")
	assert.Equal(t, 0, d.(*orderedmap.Map[any]).Len())
}

func TestUnmarshalSchema(t *testing.T) {
	s, err := UnmarshalSchema([]byte(`{"type":"integer","minimum":6,"multipleOf":3}`))
	require.NoError(t, err)
	integer, ok := s.(*model.IntegerSchema)
	require.True(t, ok)
	assert.Equal(t, "6", integer.Minimum.String())
	assert.Equal(t, "3", integer.MultipleOf.String())
}

func TestRoundTripNormalizesOpaqueNumbers(t *testing.T) {
	in := &model.IntegerSchema{SchemaCore: model.SchemaCore{Enum: []any{1, 2}, Default: 1}}
	data, err := Marshal(in)
	require.NoError(t, err)

	s, err := UnmarshalSchema(data)
	require.NoError(t, err)
	out := s.(*model.IntegerSchema)

	require.Len(t, out.Enum, 2)
	for i, want := range []int64{1, 2} {
		got, ok := out.Enum[i].(decimal.Decimal)
		require.True(t, ok, "enum[%d] is %T", i, out.Enum[i])
		assert.True(t, decimal.NewFromInt(want).Equal(got))
	}
	def, ok := out.Default.(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(1).Equal(def))

	again, err := Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"openapi":"3.0.2","info":{"title":"x","version":"1"}}`))
	require.NoError(t, err)
	assert.Equal(t, "3.0.2", doc.OpenAPI)
}
