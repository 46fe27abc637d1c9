// File: handle/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide settings for the ownership fallback paths.

package handle

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-fd/internal/ownership"
)

// Config controls how owners dropped without Close are handled.
type Config struct {
	// Logger receives leak reports and release errors that have no caller to
	// return to. Nil means no logging.
	Logger *zap.Logger
	// ReclaimLeaks releases the resource of an owner that is garbage
	// collected while still open. When false the leak is only reported.
	ReclaimLeaks bool
}

// DefaultConfig returns the settings in effect at startup.
func DefaultConfig() *Config {
	return &Config{
		Logger:       nil,  // no-op logger
		ReclaimLeaks: true, // close leaked resources
	}
}

// Configure applies cfg. A nil cfg restores the defaults.
func Configure(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	ownership.SetLogger(cfg.Logger)
	ownership.SetReclaimLeaks(cfg.ReclaimLeaks)
}

// SetLogger replaces only the logger.
func SetLogger(l *zap.Logger) {
	ownership.SetLogger(l)
}
