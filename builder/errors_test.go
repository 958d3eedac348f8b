package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasmodel/oaserrors"
)

func TestBuilderErrorMessage(t *testing.T) {
	getPets := Location{Method: "get", Path: "/pets"}
	tests := []struct {
		name string
		err  *BuilderError
		want string
	}{
		{"empty", &BuilderError{}, "builder"},
		{
			"unsupported method",
			errUnsupportedMethod(Location{Method: "fetch", Path: "/pets"}),
			"builder: operation FETCH /pets: unsupported HTTP method: fetch",
		},
		{
			"duplicate operationId",
			errDuplicateOperationID("listPets", Location{Method: "post", Path: "/pets"}, getPets),
			`builder: operation POST /pets (operationId listPets): duplicate operationId "listPets"; first defined at GET /pets`,
		},
		{"empty name", errEmptyName(ComponentSchema), "builder: schema: name must not be empty"},
		{
			"cause",
			&BuilderError{Component: ComponentSchema, Name: "Pet", Cause: errors.New("boom")},
			"builder: schema Pet: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, oaserrors.ErrConfig)
		})
	}
}

func TestBuilderErrorsFormatting(t *testing.T) {
	assert.Empty(t, BuilderErrors(nil).Error())
	assert.Empty(t, BuilderErrors{nil}.Error())

	one := BuilderErrors{errEmptyName(ComponentTag)}
	assert.Equal(t, "builder: tag: name must not be empty", one.Error())

	three := BuilderErrors{errEmptyName(ComponentTag), nil, errNilValue(ComponentPath, "/a")}
	assert.Equal(t, "builder: 3 error(s)\n  - tag: name must not be empty\n  - path /a: value must not be nil", three.Error())
	assert.Len(t, three.Unwrap(), 2)

	cause := errors.New("inner")
	assert.ErrorIs(t, BuilderErrors{{Cause: cause}}, cause)
}
