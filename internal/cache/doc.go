// Package cache provides the owning LRU cache behind the overlay's drawer
// registry.
//
// Values are resources (drawers holding sample buffers and materials), so
// the cache releases every value it drops:
//
//	c := cache.New[string, *Drawer](256, func(_ string, d *Drawer) {
//		d.Dispose()
//	})
//	d := c.GetOrCreate("Body/position.x", newDrawer)
//	c.Clear() // disposes every drawer
//
// The cache is not synchronized; the overlay draws from a single goroutine.
package cache
