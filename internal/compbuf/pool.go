package compbuf

import (
	"sync"

	"github.com/chipsenkbeil/typed-path-sub000/component"
)

const (
	defaultCap = 16  // Most paths have fewer than 16 components
	maxCap     = 256 // Don't pool excessively deep paths
)

var bufferPool = sync.Pool{
	New: func() any {
		return &Buffer{
			comps: make([]component.Component, 0, defaultCap),
		}
	},
}

// Get retrieves a Buffer from the pool, reset and ready to use.
func Get() *Buffer {
	b := bufferPool.Get().(*Buffer)
	b.Reset()
	return b
}

// Put returns a Buffer to the pool if not oversized. The buffer is reset so
// pooled buffers do not keep parsed paths alive.
func Put(b *Buffer) {
	if b == nil || cap(b.comps) > maxCap {
		return // Let GC collect oversized buffers
	}
	b.Reset()
	bufferPool.Put(b)
}
