// Package cache provides a small generic LRU cache.
//
// The painter keeps one entry per brush configuration it has stamped with:
// the footprint kernel and the reference energy used by energy-conservative
// brushes. Rebuilding a 200px kernel costs tens of thousands of square roots,
// so repeated strokes with the same brush hit the cache instead.
//
//	c := cache.New[Key, *Kernel](32)
//	k := c.GetOrCreate(key, func() *Kernel { return build(key) })
//
// # Thread Safety
//
// Cache is not safe for concurrent use. The painter that owns it is a
// single-writer type and serializes all access.
package cache
