//go:build unix || wasip1

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import "github.com/momentics/hioload-fd/handle"

func (w *Wrapper) AsFd() handle.BorrowedFd {
	return w.filelike.AsFd()
}

func (w *Wrapper) IntoFd() *handle.OwnedFd {
	return w.take()
}

func (w *Wrapper) FromFd(owned *handle.OwnedFd) {
	w.adopt(owned)
}

func (v View) AsFd() handle.BorrowedFd {
	return v.borrowed
}
