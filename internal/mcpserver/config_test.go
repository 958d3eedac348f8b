package mcpserver

import (
	"testing"
	"time"

	"github.com/erraggy/oasmodel/oasjson"
	"github.com/stretchr/testify/assert"
)

// clearOASMODELEnv clears all OASMODEL_* env vars to isolate tests from the ambient environment.
func clearOASMODELEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASMODEL_MAX_DEPTH", "OASMODEL_INDENT",
		"OASMODEL_STRICT", "OASMODEL_NO_WARNINGS",
		"OASMODEL_LIMIT", "OASMODEL_MAX_LIMIT", "OASMODEL_MAX_INLINE_SIZE",
		"OASMODEL_CACHE_ENABLED", "OASMODEL_CACHE_MAX_SIZE", "OASMODEL_CACHE_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASMODELEnv(t)

	c := loadConfig()

	assert.Equal(t, oasjson.DefaultMaxDepth, c.MaxDepth)
	assert.Equal(t, 2, c.Indent)
	assert.False(t, c.ValidateStrict)
	assert.False(t, c.ValidateNoWarnings)
	assert.Equal(t, 100, c.Limit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASMODELEnv(t)
	t.Setenv("OASMODEL_MAX_DEPTH", "32")
	t.Setenv("OASMODEL_INDENT", "0")
	t.Setenv("OASMODEL_STRICT", "true")
	t.Setenv("OASMODEL_NO_WARNINGS", "1")
	t.Setenv("OASMODEL_LIMIT", "20")
	t.Setenv("OASMODEL_MAX_LIMIT", "500")
	t.Setenv("OASMODEL_MAX_INLINE_SIZE", "4096")
	t.Setenv("OASMODEL_CACHE_ENABLED", "false")
	t.Setenv("OASMODEL_CACHE_MAX_SIZE", "3")
	t.Setenv("OASMODEL_CACHE_TTL", "30s")

	c := loadConfig()

	assert.Equal(t, 32, c.MaxDepth)
	assert.Equal(t, 0, c.Indent)
	assert.True(t, c.ValidateStrict)
	assert.True(t, c.ValidateNoWarnings)
	assert.Equal(t, 20, c.Limit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, int64(4096), c.MaxInlineSize)
	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 3, c.CacheMaxSize)
	assert.Equal(t, 30*time.Second, c.CacheTTL)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearOASMODELEnv(t)
	t.Setenv("OASMODEL_MAX_DEPTH", "deep")
	t.Setenv("OASMODEL_INDENT", "-1")
	t.Setenv("OASMODEL_STRICT", "maybe")
	t.Setenv("OASMODEL_LIMIT", "0")
	t.Setenv("OASMODEL_CACHE_TTL", "soon")

	c := loadConfig()

	assert.Equal(t, oasjson.DefaultMaxDepth, c.MaxDepth)
	assert.Equal(t, 2, c.Indent)
	assert.False(t, c.ValidateStrict)
	assert.Equal(t, 100, c.Limit)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
}
