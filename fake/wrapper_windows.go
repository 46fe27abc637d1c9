//go:build windows

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import "github.com/momentics/hioload-fd/handle"

func (w *Wrapper) AsHandle() handle.BorrowedHandle {
	return w.filelike.AsHandle()
}

func (w *Wrapper) IntoHandle() *handle.OwnedHandle {
	return w.take()
}

func (w *Wrapper) FromHandle(owned *handle.OwnedHandle) {
	w.adopt(owned)
}

func (v View) AsHandle() handle.BorrowedHandle {
	return v.borrowed
}
