// Package qubit: sentinel errors.
//
// Error policy (module-wide convention):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context (offending token/term) via %w wrapping
//     at the return site, never inside the sentinel itself.
//   - Runtime code never panics on user input; option constructors may
//     panic on programmer error.

package qubit

import "errors"

// ErrParse indicates a malformed qubit term token (axis letter missing,
// non-numeric index, trailing garbage).
var ErrParse = errors.New("qubit: malformed term token")

// ErrDuplicateQubit indicates a term text or factor list references the same
// qubit index more than once.
var ErrDuplicateQubit = errors.New("qubit: duplicate qubit index in term")

// ErrBadQubit indicates a negative qubit index in an explicitly constructed
// factor.
var ErrBadQubit = errors.New("qubit: qubit index must be non-negative")

// ErrNegativePower indicates Pow was invoked with a negative exponent.
var ErrNegativePower = errors.New("qubit: negative exponent")

// ErrTermBudget indicates an arithmetic step would exceed the configured
// maximum stored-term count.
var ErrTermBudget = errors.New("qubit: term budget exceeded")
