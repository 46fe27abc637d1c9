//go:build unix

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import "github.com/momentics/hioload-fd/handle"

func borrowFilelikeRaw(raw uintptr) BorrowedFilelike {
	return handle.BorrowRawFd(int(raw))
}

func borrowSocketlikeRaw(raw uintptr) BorrowedSocketlike {
	return handle.BorrowRawFd(int(raw))
}

func intoRawFilelike(owned *OwnedFilelike) uintptr {
	return uintptr(owned.IntoRawFd())
}
