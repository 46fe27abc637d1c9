// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package legacy keeps the raw-value conversions of the older convention
// available to code that still needs them. Importing it is opt-in; the
// ownership model in packages handle, api and adapters does not depend on it.
//
// Every function that turns a raw value into a borrowed or owned one is a
// trust boundary, exactly as handle.BorrowRawFd and handle.FromRawFd are.
package legacy
