// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package api defines the capability interfaces through which a type joins the
// ownership model of package handle without exposing its internals.
//
// Each capability is independent. A type that only lends out its resource
// implements the borrow capability (AsFd, AsHandle, AsSocket). A type that can
// hand its resource over implements the into capability (IntoFd, ...). A type
// that can be built around an owned resource satisfies the from constraint
// (FromFd, ...) through a pointer-receiver initializer. Generic code asks for
// exactly the capability it needs.
package api
