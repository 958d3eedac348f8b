package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationContextString(t *testing.T) {
	tests := []struct {
		name     string
		ctx      OperationContext
		expected string
	}{
		{
			name:     "operation with operationId",
			ctx:      OperationContext{Method: "GET", Path: "/users/{id}", OperationID: "getUser"},
			expected: "(operationId: getUser)",
		},
		{
			name:     "operation without operationId",
			ctx:      OperationContext{Method: "GET", Path: "/users/{id}"},
			expected: "(GET /users/{id})",
		},
		{
			name:     "path-level (no method)",
			ctx:      OperationContext{Path: "/users/{id}"},
			expected: "(path: /users/{id})",
		},
		{
			name:     "empty",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ctx.String())
			assert.Equal(t, tt.expected == "", tt.ctx.IsEmpty())
		})
	}
}
