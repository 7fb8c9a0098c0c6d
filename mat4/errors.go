// SPDX-License-Identifier: MIT
// Package mat4: sentinel error set.
// Precondition violations on construction are programmer errors with no
// recovery path; the offending constructors panic with these sentinels
// wrapped, and tests match the recovered value via errors.Is.

package mat4

import "errors"

var (
	// ErrComponentCount is carried by the panic raised when Of or SSet
	// receives a value count other than exactly 16. The panic message names
	// the offending count.
	ErrComponentCount = errors.New("mat4: expected exactly 16 components")

	// ErrAdoptLength is carried by the panic raised when Adopt or FromArray
	// receives a backing slice whose length is not exactly 16. The panic
	// message names the offending length.
	ErrAdoptLength = errors.New("mat4: backing array must have exactly 16 elements")
)
