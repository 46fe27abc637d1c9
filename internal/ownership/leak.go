// File: internal/ownership/leak.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Garbage-collection fallback for owners that were never closed.

package ownership

import "go.uber.org/zap"

// Reclaim is the finalizer body shared by the owned kinds. It reports the leak
// and, unless reclamation is disabled, releases the value.
func Reclaim[R comparable](kind string, c *Cell[R], release func(R) error) {
	raw, ok := c.Raw()
	if !ok {
		return
	}
	log := Logger().With(zap.String("kind", kind), zap.Any("raw", raw))
	if !ReclaimLeaks() {
		c.Disown()
		log.Warn("owner garbage collected without Close, leaving resource open")
		return
	}
	log.Warn("owner garbage collected without Close, releasing")
	if _, err := c.Release(release); err != nil {
		log.Error("release of leaked resource failed", zap.Error(err))
	}
}
