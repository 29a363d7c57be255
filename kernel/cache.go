// SPDX-License-Identifier: MIT

package kernel

import "sync"

// Cache memoizes curves by scale.
// The zero value is not usable; construct with NewCache.
//
// Concurrency:
//   - Curve takes the read lock on the hit path.
//   - On a miss the curve is built without holding any lock, then published
//     under the write lock. If another goroutine published first, its curve
//     wins and the local one is dropped, so every caller sees one *Curve per
//     scale.
type Cache struct {
	mu     sync.RWMutex   // guards curves
	curves map[int]*Curve // scale -> published curve
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{curves: make(map[int]*Curve)}
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns a process-wide cache, created on first use.
// Generators fall back to it when no cache is supplied explicitly.
func Default() *Cache {
	defaultOnce.Do(func() { defaultCache = NewCache() })

	return defaultCache
}

// Curve returns the curve for scale, building and caching it on first use.
// Errors:
//   - ErrInvalidScale when scale <= 0 (nothing is cached).
//
// Complexity:
//   - Hit: O(1). Miss: O(scale).
func (c *Cache) Curve(scale int) (*Curve, error) {
	c.mu.RLock()
	cv, ok := c.curves[scale]
	c.mu.RUnlock()
	if ok {
		return cv, nil
	}

	built, err := BuildCurve(scale)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cv, ok = c.curves[scale]; ok {
		return cv, nil
	}
	c.curves[scale] = built

	return built, nil
}

// Len returns the number of cached scales.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.curves)
}
