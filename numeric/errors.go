// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
// This file defines ONLY package-level sentinel errors. Precondition
// violations in this package are programmer errors with no recovery path, so
// the offending operations panic with a wrapped sentinel; callers (and tests)
// match the recovered value via errors.Is.

package numeric

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "numeric: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when
// context (the offending lengths) is essential — errors.Is still matches.

var (
	// ErrProductShape is the sentinel carried by the panic raised when
	// MatrixProduct receives an unsupported operand length pair. The panic
	// message always names both lengths.
	ErrProductShape = errors.New("numeric: unsupported matrix product operand lengths")
)
