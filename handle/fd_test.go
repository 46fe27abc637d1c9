//go:build unix

package handle

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// pipeFds opens a pipe and closes whatever the test leaves open.
func pipeFds(t *testing.T) (r, w RawFd) {
	t.Helper()
	var p [2]int
	require.NoError(t, unix.Pipe(p[:]))
	t.Cleanup(func() {
		for _, fd := range p {
			if isOpen(fd) {
				_ = unix.Close(fd)
			}
		}
	})
	return p[0], p[1]
}

func isOpen(fd RawFd) bool {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	return err == nil
}

func countCloses(t *testing.T) *atomic.Int32 {
	t.Helper()
	var n atomic.Int32
	prev := closeFd
	closeFd = func(fd RawFd) error {
		n.Add(1)
		return prev(fd)
	}
	t.Cleanup(func() { closeFd = prev })
	return &n
}

func TestBorrowRawFd_ReadsBackRawValue(t *testing.T) {
	r, _ := pipeFds(t)
	b := BorrowRawFd(r)
	assert.Equal(t, r, b.AsRawFd())
	assert.Equal(t, b, b.AsFd())
}

func TestBorrowRawFd_PanicsOnSentinel(t *testing.T) {
	assert.Panics(t, func() { BorrowRawFd(-1) })
	assert.Panics(t, func() { FromRawFd(-1) })
}

func TestOwnedFd_CloseReleasesExactlyOnce(t *testing.T) {
	closes := countCloses(t)
	r, _ := pipeFds(t)

	o := FromRawFd(r)
	require.True(t, o.Valid())
	require.NoError(t, o.Close())
	require.NoError(t, o.Close())

	assert.Equal(t, int32(1), closes.Load())
	assert.False(t, isOpen(r))
	assert.False(t, o.Valid())
}

func TestOwnedFd_ConcurrentCloseReleasesOnce(t *testing.T) {
	closes := countCloses(t)
	r, _ := pipeFds(t)
	o := FromRawFd(r)

	done := make(chan struct{})
	for i := 0; i < 16; i++ {
		go func() {
			_ = o.Close()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 16; i++ {
		<-done
	}
	assert.Equal(t, int32(1), closes.Load())
}

func TestOwnedFd_NilCloseIsNoop(t *testing.T) {
	var o *OwnedFd
	assert.NoError(t, o.Close())
	assert.False(t, o.Valid())
}

func TestOwnedFd_BorrowsCompareEqual(t *testing.T) {
	r, _ := pipeFds(t)
	o := FromRawFd(r)
	defer o.Close()

	a, b := o.AsFd(), o.AsFd()
	assert.Equal(t, a, b)
	assert.True(t, a == b)
	seen := map[BorrowedFd]bool{a: true}
	assert.True(t, seen[b])
	assert.Equal(t, r, o.AsRawFd())
}

func TestOwnedFd_IntoRawFdLeavesDescriptorOpen(t *testing.T) {
	closes := countCloses(t)
	r, _ := pipeFds(t)

	o := FromRawFd(r)
	raw := o.IntoRawFd()
	assert.Equal(t, r, raw)
	assert.True(t, isOpen(raw))
	assert.Zero(t, closes.Load())
	require.NoError(t, o.Close())
	assert.True(t, isOpen(raw), "closing a consumed owner must not release")

	again := FromRawFd(raw)
	assert.Equal(t, raw, again.AsRawFd())
	require.NoError(t, again.Close())
	assert.False(t, isOpen(raw))
	assert.Equal(t, int32(1), closes.Load())
}

func TestOwnedFd_UseAfterSpendPanics(t *testing.T) {
	r, _ := pipeFds(t)
	o := FromRawFd(r)
	require.NoError(t, o.Close())

	assert.Panics(t, func() { o.AsFd() })
	assert.Panics(t, func() { o.AsRawFd() })
	assert.Panics(t, func() { o.IntoRawFd() })
	assert.Panics(t, func() { o.Move() })
}

func TestOwnedFd_MoveTransfersResponsibility(t *testing.T) {
	closes := countCloses(t)
	r, _ := pipeFds(t)

	src := FromRawFd(r)
	dst := src.Move()
	assert.False(t, src.Valid())
	assert.True(t, dst.Valid())
	require.NoError(t, src.Close())
	assert.True(t, isOpen(r))

	require.NoError(t, dst.Close())
	assert.False(t, isOpen(r))
	assert.Equal(t, int32(1), closes.Load())
}

func TestOwnedFd_FromFdTakesOver(t *testing.T) {
	r, _ := pipeFds(t)
	src := FromRawFd(r)

	dst := new(OwnedFd)
	dst.FromFd(src.IntoFd())
	assert.False(t, src.Valid())
	assert.Equal(t, r, dst.AsRawFd())
	_, w := pipeFds(t)
	other := FromRawFd(w)
	assert.Panics(t, func() { dst.FromFd(other) })
	assert.True(t, other.Valid())
	require.NoError(t, other.Close())
	require.NoError(t, dst.Close())
}

func TestOwnedFd_TryCloneIsIndependent(t *testing.T) {
	r, _ := pipeFds(t)
	o := FromRawFd(r)

	clone, err := o.TryClone()
	require.NoError(t, err)
	assert.NotEqual(t, o.AsRawFd(), clone.AsRawFd())

	require.NoError(t, o.Close())
	assert.True(t, isOpen(clone.AsRawFd()))
	require.NoError(t, clone.Close())

	_, err = o.TryClone()
	assert.ErrorIs(t, err, ErrReleased)
}

func TestBorrowedFd_TryCloneToOwned(t *testing.T) {
	r, _ := pipeFds(t)
	owned, err := BorrowRawFd(r).TryCloneToOwned()
	require.NoError(t, err)
	defer owned.Close()
	assert.NotEqual(t, r, owned.AsRawFd())
	assert.True(t, isOpen(r))
}

func TestOwnedFd_GarbageCollectedOwnerIsReleased(t *testing.T) {
	closes := countCloses(t)
	r, _ := pipeFds(t)

	func() {
		_ = FromRawFd(r)
	}()
	assert.Eventually(t, func() bool {
		runtime.GC()
		return closes.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.False(t, isOpen(r))
}

func TestOwnedFd_String(t *testing.T) {
	r, _ := pipeFds(t)
	o := FromRawFd(r)
	assert.Equal(t, fmt.Sprintf("OwnedFd(%d)", r), o.String())
	assert.Equal(t, fmt.Sprintf("BorrowedFd(%d)", r), o.AsFd().String())
	require.NoError(t, o.Close())
	assert.Equal(t, "OwnedFd(spent)", o.String())
}

func TestOptionFd_Footprint(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(RawFd(0)), unsafe.Sizeof(OptionFd{}))
	assert.Equal(t, unsafe.Alignof(RawFd(0)), unsafe.Alignof(OptionFd{}))
}

func TestOptionFd_NoneAndSome(t *testing.T) {
	closes := countCloses(t)
	none := NoneFd()
	assert.True(t, none.IsNone())
	assert.Equal(t, -1, none.AsRawFd())
	_, ok := none.Take()
	assert.False(t, ok)
	assert.NoError(t, none.Close())
	assert.Equal(t, "OptionFd(none)", none.String())

	r, _ := pipeFds(t)
	some := SomeFd(FromRawFd(r))
	assert.True(t, some.IsSome())
	assert.Equal(t, r, some.AsRawFd())

	owned, ok := some.Take()
	require.True(t, ok)
	assert.True(t, some.IsNone())
	assert.Equal(t, r, owned.AsRawFd())
	require.NoError(t, owned.Close())
	assert.Equal(t, int32(1), closes.Load())
}

func TestOptionFd_FromRawSentinel(t *testing.T) {
	assert.True(t, OptionFromRawFd(-1).IsNone())

	r, _ := pipeFds(t)
	opt := OptionFromRawFd(r)
	require.True(t, opt.IsSome())
	require.NoError(t, opt.Close())
	assert.True(t, opt.IsNone())
	assert.False(t, isOpen(r))

	w := OptionFromRawFd(42)
	assert.Equal(t, 42, w.IntoRawFd())
	assert.True(t, w.IsNone())
}

type fdHolder struct {
	name string
	fd   OwnedFd
}

func TestOwnedFd_FromFdOnFieldOfLargerStruct(t *testing.T) {
	closes := countCloses(t)
	r, _ := pipeFds(t)

	h := &fdHolder{name: "reader"}
	h.fd.FromFd(FromRawFd(r))
	assert.Equal(t, r, h.fd.AsRawFd())
	assert.True(t, h.fd.Valid())

	require.NoError(t, h.fd.Close())
	require.NoError(t, h.fd.Close())
	assert.Equal(t, int32(1), closes.Load())
	assert.False(t, isOpen(r))
}

func TestOwnedFd_FieldOfDroppedStructIsReleased(t *testing.T) {
	closes := countCloses(t)
	r, _ := pipeFds(t)

	func() {
		h := &fdHolder{name: "dropped"}
		h.fd.FromFd(FromRawFd(r))
	}()
	assert.Eventually(t, func() bool {
		runtime.GC()
		return closes.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.False(t, isOpen(r))
}

func TestOwnedFd_FromFdRejectsSpentOwner(t *testing.T) {
	r, w := pipeFds(t)

	closed := FromRawFd(r)
	require.NoError(t, closed.Close())
	consumed := FromRawFd(w)
	raw := consumed.IntoRawFd()

	replacement := FromRawFd(raw)
	assert.Panics(t, func() { closed.FromFd(replacement) })
	assert.Panics(t, func() { consumed.FromFd(replacement) })
	assert.False(t, closed.Valid())
	assert.False(t, consumed.Valid())
	assert.True(t, replacement.Valid())
	require.NoError(t, replacement.Close())
}
