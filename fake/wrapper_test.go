//go:build unix

package fake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-fd/fake"
	"github.com/momentics/hioload-fd/handle"
)

func ownedPipe(t *testing.T) (*handle.OwnedFd, *handle.OwnedFd) {
	t.Helper()
	var p [2]int
	require.NoError(t, unix.Pipe(p[:]))
	r, w := handle.FromRawFd(p[0]), handle.FromRawFd(p[1])
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return r, w
}

func TestWrapper_FromFdRefusesToReplaceHeldResource(t *testing.T) {
	r, w := ownedPipe(t)
	wrapper := fake.NewWrapper(r)

	assert.PanicsWithValue(t, "fake.Wrapper: already holds a resource", func() {
		wrapper.FromFd(w)
	})
	assert.Equal(t, r.AsRawFd(), wrapper.AsFd().AsRawFd())
	assert.True(t, w.Valid())
}

func TestWrapper_FromFdAfterHandOver(t *testing.T) {
	r, w := ownedPipe(t)
	wrapper := fake.NewWrapper(r)

	out := wrapper.IntoFd()
	assert.False(t, wrapper.Holds())
	wrapper.FromFd(w)
	assert.Equal(t, w.AsRawFd(), wrapper.AsFd().AsRawFd())
	assert.True(t, out.Valid())
	require.NoError(t, wrapper.Close())
	assert.True(t, out.Valid())
}
