// File: fake/wrapper.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import (
	"fmt"

	"github.com/momentics/hioload-fd/adapters"
)

// Wrapper owns a file-like resource. Its capability methods live in the
// per-platform files; everything here is portable.
type Wrapper struct {
	filelike *adapters.OwnedFilelike
}

// NewWrapper wraps owned. The Wrapper becomes responsible for closing it.
func NewWrapper(owned *adapters.OwnedFilelike) *Wrapper {
	return &Wrapper{filelike: owned}
}

// Close releases the wrapped resource. It is a no-op once the resource was
// handed over.
func (w *Wrapper) Close() error {
	if w.filelike == nil {
		return nil
	}
	return w.filelike.Close()
}

// Holds reports whether the wrapper still owns a resource.
func (w *Wrapper) Holds() bool {
	return w.filelike.Valid()
}

// adopt fills an empty wrapper. Replacing a held resource would leave it to
// the garbage collector, so that panics.
func (w *Wrapper) adopt(owned *adapters.OwnedFilelike) {
	if w.filelike != nil {
		panic("fake.Wrapper: already holds a resource")
	}
	w.filelike = owned
}

// take hands the owned resource out and leaves the wrapper empty.
func (w *Wrapper) take() *adapters.OwnedFilelike {
	owned := w.filelike
	if owned == nil {
		panic("fake.Wrapper: resource already handed over")
	}
	w.filelike = nil
	return owned
}

func (w *Wrapper) String() string {
	if w.filelike == nil {
		return "Wrapper(empty)"
	}
	return fmt.Sprintf("Wrapper(%s)", w.filelike)
}

// View is a read-only borrow of some other value's file-like resource. It
// implements only the borrow capability.
type View struct {
	borrowed adapters.BorrowedFilelike
}

// NewView borrows from src. The view is valid while src is.
func NewView(src adapters.AsFilelike) View {
	return View{borrowed: adapters.BorrowFilelike(src)}
}
