package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oasmodel/oasjson"
)

// serverConfig is the MCP server's tunables. Every field can be set
// through an OASMODEL_* environment variable.
type serverConfig struct {
	MaxDepth int // decode nesting limit
	Indent   int // 0 means compact

	ValidateStrict     bool
	ValidateNoWarnings bool

	Limit         int // default page size
	MaxLimit      int
	MaxInlineSize int64

	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration
}

var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDepth:           fromEnv("OASMODEL_MAX_DEPTH", oasjson.DefaultMaxDepth, positiveInt),
		Indent:             fromEnv("OASMODEL_INDENT", 2, nonNegativeInt),
		ValidateStrict:     fromEnv("OASMODEL_STRICT", false, parseBool),
		ValidateNoWarnings: fromEnv("OASMODEL_NO_WARNINGS", false, parseBool),
		Limit:              fromEnv("OASMODEL_LIMIT", 100, positiveInt),
		MaxLimit:           fromEnv("OASMODEL_MAX_LIMIT", 1000, positiveInt),
		MaxInlineSize:      int64(fromEnv("OASMODEL_MAX_INLINE_SIZE", 10<<20, positiveInt)),
		CacheEnabled:       fromEnv("OASMODEL_CACHE_ENABLED", true, parseBool),
		CacheMaxSize:       fromEnv("OASMODEL_CACHE_MAX_SIZE", 10, positiveInt),
		CacheTTL:           fromEnv("OASMODEL_CACHE_TTL", 15*time.Minute, positiveDuration),
	}
}

// fromEnv parses key with parse. Unset variables yield fallback silently;
// unparsable ones are logged and yield fallback.
func fromEnv[T any](key string, fallback T, parse func(string) (T, bool)) T {
	raw, set := os.LookupEnv(key)
	if !set || raw == "" {
		return fallback
	}
	v, ok := parse(raw)
	if !ok {
		slog.Warn("ignoring invalid environment value", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

func parseBool(s string) (bool, bool) {
	b, err := strconv.ParseBool(s)
	return b, err == nil
}

func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil && n > 0
}

func nonNegativeInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil && n >= 0
}

func positiveDuration(s string) (time.Duration, bool) {
	d, err := time.ParseDuration(s)
	return d, err == nil && d > 0
}
