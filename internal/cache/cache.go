// Package cache is the in-process read cache with tag-based invalidation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/unievent-backend/internal/metrics"
)

// Invalidation tags.
const (
	TagEvents    = "events"
	TagBookmarks = "bookmarks"
	TagReports   = "reports"
)

// EventTag tags every cached read that includes the event.
func EventTag(eventID string) string { return "event:" + eventID }

// UserEventsTag tags the list of events posted by a user.
func UserEventsTag(userID string) string { return "user-events:" + userID }

// UserBookmarksTag tags the bookmark list of a user.
func UserBookmarksTag(userID string) string { return "bookmarks:" + userID }

type entry struct {
	value     any
	expiresAt time.Time
}

// Tagged is an expirable LRU whose keys are registered under tags.
// Invalidate removes every key of a tag under the same lock that registers
// keys, and a load that overlaps an invalidation is not stored.
type Tagged struct {
	mu      sync.Mutex
	lru     *expirable.LRU[string, entry]
	tags    map[string]map[string]struct{}
	indexed int
	size    int
	gen     uint64
	now     func() time.Time
}

// New creates a cache holding at most size entries. maxTTL bounds the
// lifetime of any entry regardless of the TTL passed to Fetch.
func New(size int, maxTTL time.Duration) *Tagged {
	return &Tagged{
		lru:  expirable.NewLRU[string, entry](size, nil, maxTTL),
		tags: make(map[string]map[string]struct{}),
		size: size,
		now:  time.Now,
	}
}

// Key serializes a read path name and its parameters into a cache key.
func Key(name string, params any) string {
	b, err := json.Marshal(params)
	if err != nil {
		return name + ":" + fmt.Sprintf("%#v", params)
	}
	return name + ":" + string(b)
}

// Fetch returns the cached value for key or calls load and stores its
// result under tags for ttl. Errors are not cached.
func Fetch[T any](ctx context.Context, c *Tagged, key string, ttl time.Duration, tags []string, load func(context.Context) (T, error)) (T, error) {
	path := pathOf(key)

	if v, ok := c.get(key); ok {
		if typed, ok := v.(T); ok {
			metrics.RecordCache(path, true)
			return typed, nil
		}
	}
	metrics.RecordCache(path, false)

	gen := c.generation()
	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.set(key, v, ttl, tags, gen)
	return v, nil
}

// Invalidate drops every entry registered under any of tags.
func (c *Tagged) Invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	for _, tag := range tags {
		keys := c.tags[tag]
		for key := range keys {
			c.lru.Remove(key)
		}
		c.indexed -= len(keys)
		delete(c.tags, tag)
	}
}

// Purge drops everything.
func (c *Tagged) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.lru.Purge()
	c.tags = make(map[string]map[string]struct{})
	c.indexed = 0
}

// Len returns the number of live entries.
func (c *Tagged) Len() int {
	return c.lru.Len()
}

func (c *Tagged) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		c.lru.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (c *Tagged) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *Tagged) set(key string, v any, ttl time.Duration, tags []string, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return
	}

	c.lru.Add(key, entry{value: v, expiresAt: c.now().Add(ttl)})
	for _, tag := range tags {
		keys, ok := c.tags[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.tags[tag] = keys
		}
		if _, ok := keys[key]; !ok {
			keys[key] = struct{}{}
			c.indexed++
		}
	}

	if c.indexed > 4*c.size {
		c.compact()
	}
}

// compact drops index entries whose keys were evicted by the LRU.
func (c *Tagged) compact() {
	c.indexed = 0
	for tag, keys := range c.tags {
		for key := range keys {
			if !c.lru.Contains(key) {
				delete(keys, key)
			}
		}
		if len(keys) == 0 {
			delete(c.tags, tag)
			continue
		}
		c.indexed += len(keys)
	}
}

func pathOf(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
