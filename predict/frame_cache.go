package predict

// FrameCache remembers the last landing computed and the frame it was computed
// for. Both sides usually query the same frame, so the second query is served
// without hashing the key.
type FrameCache struct {
	valid   bool
	frame   int
	key     Key
	landing Landing
}

// Get returns the cached landing if it was stored for the same frame and key.
func (c *FrameCache) Get(frame int, k Key) (Landing, bool) {
	if !c.valid || c.frame != frame || c.key != k {
		return Landing{}, false
	}
	return c.landing, true
}

// Set replaces the cached landing.
func (c *FrameCache) Set(frame int, k Key, l Landing) {
	c.valid, c.frame, c.key, c.landing = true, frame, k, l
}

// Invalidate clears the cache.
func (c *FrameCache) Invalidate() {
	*c = FrameCache{}
}
