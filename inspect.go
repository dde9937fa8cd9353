// inspect.go — nil-safe predicates and terminal-cause access.
//
// Scope:
//   • Zero-policy helpers answering "is this one of ours?" and "what started
//     it?".
//   • Interop-first: traversal goes through errors.As / errors.Unwrap, so
//     chains survive further wrapping by foreign code (fmt.Errorf("…: %w")).
package trailhound

import "errors"

// IsChain reports whether err is, or wraps, a *Chain.
func IsChain(err error) bool {
	if err == nil {
		return false
	}
	var ch *Chain
	return errors.As(err, &ch)
}

// AsChain extracts the first *Chain in err's unwrap sequence.
func AsChain(err error) (*Chain, bool) {
	if err == nil {
		return nil, false
	}
	var ch *Chain
	if errors.As(err, &ch) {
		return ch, true
	}
	return nil, false
}

// RootCause returns the deepest error in err's unwrap sequence — for a Chain
// that is the foreign failure observed at its origin, or the Chain itself for
// custom-constructed failures. nil in, nil out.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
