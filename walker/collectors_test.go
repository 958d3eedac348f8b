package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmodel/model"
)

func TestCollectSchemas(t *testing.T) {
	collected, err := CollectSchemas(petstore(t))
	require.NoError(t, err)

	assert.Len(t, collected.All, 13)
	assert.Len(t, collected.Inline, 6)
	assert.Len(t, collected.Components, 7)
	assert.Len(t, collected.ByPath, 13)

	require.Contains(t, collected.ByName, "Pet")
	require.Contains(t, collected.ByName, "Error")
	assert.Len(t, collected.ByName, 2, "property names are not component names")
	assert.IsType(t, &model.ObjectSchema{}, collected.ByName["Pet"].Schema)
	assert.True(t, collected.ByName["Pet"].IsComponent)
}

func TestCollectSchemasNilDocument(t *testing.T) {
	collected, err := CollectSchemas(nil)
	require.Error(t, err)
	assert.Nil(t, collected)
}

func TestCollectOperations(t *testing.T) {
	collected, err := CollectOperations(petstore(t))
	require.NoError(t, err)

	require.Len(t, collected.All, 3)
	assert.Equal(t, "listPets", collected.All[0].Operation.OperationID)
	assert.Equal(t, "paths./pets.post", collected.All[1].JSONPath)

	assert.Len(t, collected.ByPath["/pets"], 2)
	assert.Len(t, collected.ByPath["/pets/{id}"], 1)
	assert.Len(t, collected.ByMethod["get"], 2)
	assert.Len(t, collected.ByMethod["post"], 1)
	assert.Len(t, collected.ByTag["pets"], 2)
	assert.Len(t, collected.ByTag["admin"], 1)

	require.Contains(t, collected.ByID, "showPet")
	assert.Equal(t, "/pets/{id}", collected.ByID["showPet"].PathTemplate)
}

func TestCollectOperationsFirstIDWins(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPathItem("/a", &model.PathItem{Get: &model.Operation{OperationID: "dup"}})
	doc.AddPathItem("/b", &model.PathItem{Get: &model.Operation{OperationID: "dup"}})

	collected, err := CollectOperations(doc)
	require.NoError(t, err)
	assert.Len(t, collected.All, 2)
	assert.Equal(t, "/a", collected.ByID["dup"].PathTemplate)
}

func TestCollectorsHonorOptions(t *testing.T) {
	doc := model.NewDocument()
	require.NoError(t, doc.EnsureComponents().PutSchema("Deep", nestedArrays(10)))

	_, err := CollectSchemas(doc, WithMaxDepth(2))
	require.Error(t, err)

	_, err = CollectRefs(doc, WithMaxDepth(2))
	require.Error(t, err)
}
