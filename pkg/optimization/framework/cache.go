package framework

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"math"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedObjective memoises successful evaluations of an expensive objective,
// keyed by the exact bit pattern of the position. Failed evaluations are never
// cached.
type CachedObjective struct {
	obj   Objective
	cache *cache.Cache

	hits   int
	misses int
}

var _ Objective = &CachedObjective{}

// NewCachedObjective wraps obj. Entries expire after ttl; a ttl of zero keeps
// them for the lifetime of the wrapper.
func NewCachedObjective(obj Objective, ttl time.Duration) *CachedObjective {
	if ttl <= 0 {
		return &CachedObjective{obj: obj, cache: cache.New(cache.NoExpiration, 0)}
	}
	return &CachedObjective{obj: obj, cache: cache.New(ttl, 2*ttl)}
}

func (c *CachedObjective) Objective(x []float64) (float64, error) {
	key := positionKey(x)
	if v, ok := c.cache.Get(key); ok {
		c.hits++
		return v.(float64), nil
	}

	val, err := c.obj.Objective(x)
	if err != nil {
		return val, err
	}
	c.misses++
	c.cache.SetDefault(key, val)
	return val, nil
}

// Dimensions forwards to the wrapped objective when it declares one.
func (c *CachedObjective) Dimensions() int {
	if d, ok := c.obj.(Dimensioned); ok {
		return d.Dimensions()
	}
	return 0
}

// Hits is the number of evaluations answered from the cache.
func (c *CachedObjective) Hits() int { return c.hits }

// Misses is the number of evaluations forwarded to the wrapped objective.
func (c *CachedObjective) Misses() int { return c.misses }

// Len is the number of cached entries, including expired ones not yet purged.
func (c *CachedObjective) Len() int { return c.cache.ItemCount() }

func positionKey(x []float64) string {
	data := make([]byte, len(x)*8)
	for i, v := range x {
		binary.BigEndian.PutUint64(data[i*8:], math.Float64bits(v))
	}
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}
