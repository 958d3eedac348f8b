package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oasjson"
)

// specInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// cacheEntry holds a decoded document with LRU ordering and TTL expiry.
type cacheEntry struct {
	doc       *model.Document
	usedAt    time.Time
	expiresAt time.Time
}

// docCacheStore caches decoded documents for the session. File inputs are
// keyed by absolute path plus the SHA-256 of the bytes read, content inputs by
// the SHA-256 alone.
// Cached documents are shared, so tools must not mutate them.
type docCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

var docCache = &docCacheStore{entries: make(map[string]*cacheEntry)}

// get returns a cached document or nil. Expired entries are lazily removed.
func (c *docCacheStore) get(key string) *model.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	now := time.Now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.usedAt = now
	return e.doc
}

// put stores a document, evicting the least recently used entry at capacity.
func (c *docCacheStore) put(key string, doc *model.Document, maxSize int, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= maxSize {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.usedAt.Before(oldest) {
				oldestKey, oldest = k, e.usedAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = &cacheEntry{doc: doc, usedAt: now, expiresAt: now.Add(ttl)}
}

// reset clears all cached entries. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *docCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey derives the key from the bytes that were read, so a file
// rewritten while it is being read can never be cached under a key that
// describes other content.
func (s specInput) cacheKey(data []byte) string {
	sum := sha256.Sum256(data)
	digest := hex.EncodeToString(sum[:])
	if s.File == "" {
		return "content:" + digest
	}
	abs, err := filepath.Abs(s.File)
	if err != nil {
		return ""
	}
	return "file:" + abs + ":" + digest
}

// read returns the raw document bytes.
func (s specInput) read() ([]byte, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided (got 2)")
	case s.File == "" && s.Content == "":
		return nil, fmt.Errorf("exactly one of file or content must be provided (got 0)")
	case s.Content != "":
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASMODEL_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		return []byte(s.Content), nil
	}

	f, err := os.Open(s.File)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	// Read one byte past the limit to detect oversized files.
	data, err := io.ReadAll(io.LimitReader(f, cfg.MaxInlineSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("file exceeds maximum size of %d bytes", cfg.MaxInlineSize)
	}
	return data, nil
}

// resolve decodes the document from whichever input was provided, using the
// cache when enabled.
func (s specInput) resolve() (*model.Document, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}

	var key string
	if cfg.CacheEnabled {
		key = s.cacheKey(data)
	}
	if key != "" {
		if doc := docCache.get(key); doc != nil {
			return doc, nil
		}
	}

	doc, err := oasjson.UnmarshalAny(data, oasjson.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		return nil, err
	}
	if key != "" {
		docCache.put(key, doc, cfg.CacheMaxSize, cfg.CacheTTL)
	}
	return doc, nil
}
