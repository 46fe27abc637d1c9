// File: internal/ownership/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ownership

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nop          = zap.NewNop()
	logger       atomic.Pointer[zap.Logger]
	reclaimLeaks atomic.Bool
)

func init() {
	reclaimLeaks.Store(true)
}

// Logger returns the logger used for leak and release reports.
// It is a no-op logger unless SetLogger was called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger replaces the logger. A nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// ReclaimLeaks reports whether owners found unreachable while still live
// release their value.
func ReclaimLeaks() bool {
	return reclaimLeaks.Load()
}

// SetReclaimLeaks toggles leak reclamation.
func SetReclaimLeaks(v bool) {
	reclaimLeaks.Store(v)
}
