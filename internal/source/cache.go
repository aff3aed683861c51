package source

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"data-gate/internal/table"
)

// DefaultCacheSize bounds the number of parsed tables kept in memory.
const DefaultCacheSize = 16

// Cache keeps parsed tables keyed by a fingerprint of the file content and
// the parse parameters, evicting the least recently used table when full.
// Callers always receive clones, so cached tables are never mutated. Safe
// for concurrent use.
type Cache struct {
	tables *lru.Cache[string, *table.Table]
}

// NewCache returns a cache holding at most size tables; size <= 0 selects
// DefaultCacheSize.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// only fails for size <= 0
	tables, _ := lru.New[string, *table.Table](size)
	return &Cache{tables: tables}
}

// Fingerprint identifies a parse: the same bytes read with different
// options produce different tables.
func Fingerprint(content []byte, kind string, opts Options) string {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(kind + "\x00" + opts.String()))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) Get(key string) (*table.Table, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.tables.Get(key)
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// Put stores a clone of t.
func (c *Cache) Put(key string, t *table.Table) {
	if c == nil {
		return
	}
	c.tables.Add(key, t.Clone())
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.tables.Len()
}
