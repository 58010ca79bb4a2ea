// SPDX-License-Identifier: MIT
// Package: lvlife/unionfind

package unionfind

import "errors"

// ErrInvalidSize indicates New was asked for an empty or negative universe.
var ErrInvalidSize = errors.New("unionfind: size must be positive")

// ErrIndexOutOfRange indicates an id outside [0, Len()).
// Check with errors.Is; the returned error carries the offending id.
var ErrIndexOutOfRange = errors.New("unionfind: index out of range")
