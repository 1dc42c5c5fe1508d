// Package session keeps the latest classification suggestion per
// interactive session. Each new attempt overwrites the previous one;
// results are never merged. Everything downstream receives the result
// explicitly, so this cache is the only suggestion state in the
// process.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/brookeadam/vms-helper/pkg/types"
)

// Cache is a uuid-keyed in-memory suggestion cache, safe for
// concurrent use.
type Cache struct {
	mu      sync.RWMutex
	results map[string]types.ClassificationResult
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{results: make(map[string]types.ClassificationResult)}
}

// NewSession allocates a fresh session ID with no stored suggestion.
func (c *Cache) NewSession() string {
	return uuid.NewString()
}

// Put stores the suggestion for the session, replacing any previous
// one wholesale.
func (c *Cache) Put(id string, result types.ClassificationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[id] = result
}

// Get returns the latest suggestion for the session.
func (c *Cache) Get(id string) (types.ClassificationResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.results[id]
	return result, ok
}

// Delete drops the session's suggestion, if any.
func (c *Cache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.results, id)
}
