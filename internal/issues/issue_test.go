package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasmodel/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name: "error",
			issue: Issue{
				Path:     "components.schemas.Name",
				Message:  "minLength 5 exceeds maxLength 2",
				Severity: severity.SeverityError,
			},
			want: "✗ components.schemas.Name: minLength 5 exceeds maxLength 2",
		},
		{
			name: "warning with operation",
			issue: Issue{
				Path:      "paths./pets.get",
				Message:   "no responses",
				Severity:  severity.SeverityWarning,
				Operation: &OperationContext{Method: "GET", Path: "/pets", OperationID: "listPets"},
			},
			want: "⚠ paths./pets.get (operationId: listPets): no responses",
		},
		{
			name: "empty operation context is ignored",
			issue: Issue{
				Path:      "info",
				Message:   "title is empty",
				Severity:  severity.SeverityWarning,
				Operation: &OperationContext{},
			},
			want: "⚠ info: title is empty",
		},
		{
			name:  "document level",
			issue: Issue{Message: "no paths", Severity: severity.SeverityInfo},
			want:  "ℹ (document): no paths",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.String())
		})
	}
}

func TestIssueFieldPath(t *testing.T) {
	assert.Equal(t, "info.title", Issue{Path: "info", Field: "title"}.FieldPath())
	assert.Equal(t, "info", Issue{Path: "info"}.FieldPath())
	assert.Equal(t, "openapi", Issue{Field: "openapi"}.FieldPath())
}
