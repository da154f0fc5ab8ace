package calculator

import (
	"container/list"

	"github.com/javacg/tgengine/internal/adapter"
	"github.com/javacg/tgengine/internal/typeinfo"
)

// cacheEntry is what the per-calculator LRU stores for one textual calling
// context (§4.8): the computed descriptor and, if the expression sat inside
// a local variable's scope, that scope's token range.
type cacheEntry struct {
	value      typeinfo.TypeInfo
	scope      adapter.TokenRange
	scopeKnown bool
}

// lru is a small fixed-capacity least-recently-used cache keyed by the
// textual form of a calling-context expression. Capacity 0 disables
// storage entirely (every Get misses), matching EngineConfig.
// CalculatorCacheSize's documented "0 disables caching" behavior. Not
// part of the examples' third-party stack: no LRU cache library appeared
// among the retrieved dependencies, so this small container/list-based
// structure is hand-rolled rather than imported (see DESIGN.md).
type lru struct {
	capacity int
	order    *list.List
	index    map[string]*list.Element
}

type lruPair struct {
	key   string
	entry cacheEntry
}

func newLRU(capacity int) *lru {
	return &lru{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *lru) get(key string) (cacheEntry, bool) {
	if c.capacity <= 0 {
		return cacheEntry{}, false
	}
	el, ok := c.index[key]
	if !ok {
		return cacheEntry{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruPair).entry, true
}

func (c *lru) put(key string, entry cacheEntry) {
	if c.capacity <= 0 {
		return
	}
	if el, ok := c.index[key]; ok {
		el.Value.(*lruPair).entry = entry
		c.order.MoveToFront(el)
		return
	}
	el := c.order.PushFront(&lruPair{key: key, entry: entry})
	c.index[key] = el
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.index, oldest.Value.(*lruPair).key)
		}
	}
}
