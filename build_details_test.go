package oasmodel

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	result := Version()
	assert.NotEmpty(t, result)
	assert.True(t, result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "oasmodel/"+Version(), UserAgent())
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()
	lines := strings.Split(info, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "oasmodel "+Version(), lines[0])
	assert.Equal(t, "Commit: "+Commit(), lines[1])
	assert.Contains(t, lines[2], runtime.Version())
	assert.Contains(t, lines[2], runtime.GOOS+"/"+runtime.GOARCH)
}
