package action

import "sync"

// Cache memoizes the result of creator factories by key.
type Cache struct {
	mu      sync.Mutex
	objects map[string]any
}

func NewCache() *Cache {
	return &Cache{objects: make(map[string]any)}
}

// Resolve returns the cached object for key, calling factory on first use.
func (c *Cache) Resolve(key string, factory func() any) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	if obj, ok := c.objects[key]; ok {
		return obj
	}

	obj := factory()
	c.objects[key] = obj

	return obj
}
