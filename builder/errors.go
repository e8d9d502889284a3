// SPDX-License-Identifier: MIT
// Package: lvlabel/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w and the method tag.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that construction could not proceed
// (e.g., a nil constructor was passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps ErrTooFewVertices-class failures with the method
// context: "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
