package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brookeadam/vms-helper/internal/session"
	"github.com/brookeadam/vms-helper/pkg/types"
)

func TestCache_PutOverwritesNotMerges(t *testing.T) {
	c := session.NewCache()
	id := c.NewSession()

	c.Put(id, types.ClassificationResult{
		Category:    "Field Research",
		Subcategory: "Field Research – AAMN",
		Reasoning:   "first attempt",
	})
	c.Put(id, types.ClassificationResult{Category: "Other"})

	got, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Other", got.Category)
	assert.Empty(t, got.Subcategory, "a new attempt must replace the old result wholesale")
	assert.Empty(t, got.Reasoning)
}

func TestCache_SessionsAreIsolated(t *testing.T) {
	c := session.NewCache()
	a := c.NewSession()
	b := c.NewSession()
	require.NotEqual(t, a, b)

	c.Put(a, types.ClassificationResult{Category: "Public Outreach"})

	_, ok := c.Get(b)
	assert.False(t, ok)

	got, ok := c.Get(a)
	require.True(t, ok)
	assert.Equal(t, "Public Outreach", got.Category)
}

func TestCache_Delete(t *testing.T) {
	c := session.NewCache()
	id := c.NewSession()
	c.Put(id, types.ClassificationResult{Category: "Other"})
	c.Delete(id)

	_, ok := c.Get(id)
	assert.False(t, ok)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := session.NewCache()
	id := c.NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Put(id, types.ClassificationResult{Category: "Other"})
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Get(id)
		}()
	}
	wg.Wait()
}
