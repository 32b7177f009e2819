package predict

import "github.com/elliotchance/orderedmap/v2"

// DefaultCacheSize is the default capacity of the LRU cache.
const DefaultCacheSize = 32768

type cacheEntry struct {
	key     Key
	landing Landing
}

// Cache is a bounded least-recently-used cache of landings. The front of the
// ordered map is the least recently used entry. Cache is not safe for
// concurrent use.
type Cache struct {
	capacity int
	entries  *orderedmap.OrderedMap[uint64, cacheEntry]
}

// NewCache creates a cache holding at most capacity entries.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Cache{capacity: capacity, entries: orderedmap.NewOrderedMap[uint64, cacheEntry]()}
}

// Get returns the landing stored for k and marks it as most recently used.
func (c *Cache) Get(k Key) (Landing, bool) {
	h := k.Hash()
	e, ok := c.entries.Get(h)
	if !ok || e.key != k {
		return Landing{}, false
	}
	c.entries.Delete(h)
	c.entries.Set(h, e)
	return e.landing, true
}

// Put stores a landing for k, evicting the least recently used entry if the
// cache is full. It returns true if an entry was evicted. An entry whose hash
// collides with k is replaced.
func (c *Cache) Put(k Key, l Landing) (evicted bool) {
	h := k.Hash()
	if c.entries.Delete(h) {
		c.entries.Set(h, cacheEntry{key: k, landing: l})
		return false
	}
	if c.entries.Len() >= c.capacity {
		if front := c.entries.Front(); front != nil {
			c.entries.Delete(front.Key)
			evicted = true
		}
	}
	c.entries.Set(h, cacheEntry{key: k, landing: l})
	return evicted
}

// Len returns the number of entries in the cache.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Capacity ...
func (c *Cache) Capacity() int {
	return c.capacity
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.entries = orderedmap.NewOrderedMap[uint64, cacheEntry]()
}
