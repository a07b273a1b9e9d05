// Package transform: sentinel errors.

package transform

import "errors"

// ErrDimension indicates a fermionic mode index at or above the declared
// qubit count.
var ErrDimension = errors.New("transform: mode index exceeds declared qubit count")

// ErrBadQubitCount indicates BravyiKitaev was invoked with n < 1.
var ErrBadQubitCount = errors.New("transform: qubit count must be positive")
