package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/momentics/hioload-fd/internal/ownership"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(nil) })

	l := zap.NewExample()
	Configure(&Config{Logger: l, ReclaimLeaks: false})
	assert.Same(t, l, ownership.Logger())
	assert.False(t, ownership.ReclaimLeaks())

	Configure(nil)
	assert.True(t, ownership.ReclaimLeaks())
	assert.NotSame(t, l, ownership.Logger())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, cfg.Logger)
	assert.True(t, cfg.ReclaimLeaks)
}
