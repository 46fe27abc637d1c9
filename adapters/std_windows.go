//go:build windows

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import "github.com/momentics/hioload-fd/handle"

func borrowFilelikeRaw(raw uintptr) BorrowedFilelike {
	return handle.BorrowRawHandle(handle.RawHandle(raw))
}

func borrowSocketlikeRaw(raw uintptr) BorrowedSocketlike {
	return handle.BorrowRawSocket(handle.RawSocket(raw))
}

func intoRawFilelike(owned *OwnedFilelike) uintptr {
	return uintptr(owned.IntoRawHandle())
}
