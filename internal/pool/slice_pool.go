package pool

import (
	"sync"

	"github.com/arloliu/geowire/section"
)

// SlicePool recycles slices of T.
type SlicePool[T any] struct {
	pool   sync.Pool
	maxCap int
}

// NewSlicePool creates an empty slice pool. Slices whose capacity exceeds
// maxCap are dropped on Put instead of being kept alive by the pool.
func NewSlicePool[T any](maxCap int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return new([]T) },
		},
		maxCap: maxCap,
	}
}

// Get retrieves a zero-length slice with room for at least capacity elements.
func (p *SlicePool[T]) Get(capacity int) []T {
	ptr, _ := p.pool.Get().(*[]T)
	if cap(*ptr) < capacity {
		return make([]T, 0, capacity)
	}

	return (*ptr)[:0]
}

// Put returns s to the pool. The caller must not use s afterwards.
//
// Example:
//
//	entries := indexPool.Get(16)
//	entries = append(entries, entry)
//	...
//	indexPool.Put(entries)
func (p *SlicePool[T]) Put(s []T) {
	if s == nil || cap(s) > p.maxCap {
		return
	}

	clear(s[:cap(s)])
	s = s[:0]
	p.pool.Put(&s)
}

var indexEntryPool = NewSlicePool[section.FeatureIndexEntry](section.FeatureMaxCount)

// GetIndexEntries retrieves an empty index entry slice from the pool.
func GetIndexEntries(capacity int) []section.FeatureIndexEntry {
	return indexEntryPool.Get(capacity)
}

// PutIndexEntries returns an index entry slice to the pool.
func PutIndexEntries(entries []section.FeatureIndexEntry) {
	indexEntryPool.Put(entries)
}
