// Package fermion: sentinel errors.
//
// Error policy (module-wide convention):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Call sites attach the offending token/term via %w wrapping.
//   - Runtime code never panics on user input; option constructors may
//     panic on programmer error.

package fermion

import "errors"

// ErrParse indicates a malformed fermionic term token (non-numeric index,
// stray characters, misplaced creation marker).
var ErrParse = errors.New("fermion: malformed term token")

// ErrBadMode indicates a negative mode index in an explicitly constructed
// ladder factor.
var ErrBadMode = errors.New("fermion: mode index must be non-negative")

// ErrNegativePower indicates Pow was invoked with a negative exponent.
var ErrNegativePower = errors.New("fermion: negative exponent")

// ErrTermBudget indicates normal ordering or multiplication would exceed
// the configured maximum term count.
var ErrTermBudget = errors.New("fermion: term budget exceeded")
