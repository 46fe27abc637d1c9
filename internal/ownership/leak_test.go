package ownership

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestReclaim_ReleasesLiveCell(t *testing.T) {
	logs := observe(t)
	var c Cell[int]
	c.Init(11)
	var got []int
	Reclaim("fd", &c, func(raw int) error {
		got = append(got, raw)
		return nil
	})
	assert.Equal(t, []int{11}, got)
	assert.False(t, c.Live())
	assert.Equal(t, 1, logs.FilterMessage("owner garbage collected without Close, releasing").Len())
}

func TestReclaim_IgnoresReleasedCell(t *testing.T) {
	logs := observe(t)
	var c Cell[int]
	c.Init(11)
	_, _ = c.Release(func(int) error { return nil })
	Reclaim("fd", &c, func(int) error {
		t.Fatal("reclaimed a released cell")
		return nil
	})
	assert.Zero(t, logs.Len())
}

func TestReclaim_ReportsReleaseError(t *testing.T) {
	logs := observe(t)
	var c Cell[int]
	c.Init(4)
	Reclaim("socket", &c, func(int) error { return errors.New("bad handle") })
	entries := logs.FilterMessage("release of leaked resource failed").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "socket", entries[0].ContextMap()["kind"])
	}
}

func TestReclaim_DisabledLeavesResourceOpen(t *testing.T) {
	logs := observe(t)
	SetReclaimLeaks(false)
	t.Cleanup(func() { SetReclaimLeaks(true) })

	var c Cell[int]
	c.Init(8)
	Reclaim("handle", &c, func(int) error {
		t.Fatal("released with reclamation disabled")
		return nil
	})
	assert.False(t, c.Live())
	assert.Equal(t, 1, logs.FilterMessage("owner garbage collected without Close, leaving resource open").Len())
}

func TestLogger_DefaultsToNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
}
