package mcpserver

import (
	"errors"
	"math"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		offset int
		limit  int
		want   []int
	}{
		{name: "default limit returns all when under 100", offset: 0, limit: 0, want: []int{0, 1, 2, 3, 4}},
		{name: "explicit limit", offset: 0, limit: 2, want: []int{0, 1}},
		{name: "offset only", offset: 2, limit: 0, want: []int{2, 3, 4}},
		{name: "offset and limit", offset: 1, limit: 2, want: []int{1, 2}},
		{name: "offset at end", offset: 5, limit: 0, want: nil},
		{name: "negative offset", offset: -1, limit: 0, want: nil},
		{name: "limit past end", offset: 3, limit: 10, want: []int{3, 4}},
		{name: "overflowing limit", offset: 1, limit: math.MaxInt, want: []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(items, tt.offset, tt.limit))
		})
	}
}

func TestPaginate_MaxLimitCaps(t *testing.T) {
	old := cfg.MaxLimit
	cfg.MaxLimit = 2
	t.Cleanup(func() { cfg.MaxLimit = old })

	assert.Equal(t, []int{0, 1}, paginate([]int{0, 1, 2, 3}, 0, 50))
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))
	assert.Equal(t, "open <path>: no such file or directory",
		sanitizeError(errors.New("open /home/alice/specs/api.yaml: no such file or directory")))
	assert.Equal(t, "unresolved reference", sanitizeError(errors.New("unresolved reference")))
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("read /tmp/x.json failed"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "read <path> failed", text.Text)
}
