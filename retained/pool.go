package retained

import "sync"

// ============================================================================
// Child Snapshot Pooling
// ============================================================================
//
// Every layout pass takes a snapshot of the child list so that changes made
// while the pass runs only show up in the next one. Passes run on every
// resize, so the snapshot slices are pooled.
//
// Usage:
//   rects := acquireRectSlice(len(children))
//   ... fill and use rects ...
//   releaseRectSlice(rects)

// rectSlicePool pools []Rect slices to reduce allocations.
var rectSlicePool = sync.Pool{
	New: func() interface{} {
		// Start with a reasonable capacity that covers most cases
		return make([]Rect, 0, 16)
	},
}

// acquireRectSlice gets an empty rect slice from the pool with capacity for
// at least n entries. Caller must call releaseRectSlice when done.
func acquireRectSlice(n int) []Rect {
	slice := rectSlicePool.Get().([]Rect)

	// If the pooled slice is too small, allocate a new one
	if cap(slice) < n {
		// Return the small slice to the pool for others
		rectSlicePool.Put(slice[:0])
		return make([]Rect, 0, n*2)
	}

	return slice[:0]
}

// releaseRectSlice returns a rect slice to the pool.
// The slice should not be used after calling this.
func releaseRectSlice(slice []Rect) {
	if slice == nil {
		return
	}

	// Clear the slice to avoid holding references (helps GC)
	clear(slice[:cap(slice)])

	// Only pool slices up to a reasonable size to avoid memory bloat
	if cap(slice) <= 256 {
		rectSlicePool.Put(slice[:0])
	}
}
