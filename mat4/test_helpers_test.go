// SPDX-License-Identifier: MIT
// Package mat4_test: shared assertion helpers.

package mat4_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsIs runs fn, requires that it panics with an error value, and
// that the recovered error matches target via errors.Is.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()                  // capture the panic value
		require.NotNil(t, r)            // the call must panic
		err, ok := r.(error)            // precondition panics carry errors
		require.True(t, ok)             // not a string or other value
		require.ErrorIs(t, err, target) // wrapped sentinel must match
	}()
	fn()
}
