// chain.go — the Chain failure type and its construction/annotation operations.
//
// Scope (tiny core):
//   • Chain is the single unified failure type: a non-empty, newest-first
//     sequence of Frames, plus an optional terminal cause (the foreign error
//     observed at the origin).
//   • All growth is copy-on-write: Annotate returns a NEW *Chain and never
//     alters the receiver, so shared or concurrently held chains need no
//     synchronization.
//   • Interop-first: Chain implements error and Unwrap() error, so
//     errors.Is/As reach the preserved foreign cause.
//
// Invariants:
//   • A Chain built by any exported constructor has at least one Frame.
//   • Frames are never removed or reordered; the only mutation-shaped
//     operation is prepending exactly one Frame per annotation.
package trailhound

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoValue is the terminal cause recorded when an absent optional value is
// adapted into a Chain (see Present / FromOK). Callers may detect absence with
// errors.Is(err, ErrNoValue); its text is the fixed absence sentinel rendered
// by Trace.
var ErrNoValue = errors.New("no value present")

// Chain is an ordered causal failure chain: the most recent annotation at
// index 0, the origin at the last index, and optionally the foreign error
// that started it all as the terminal cause.
//
// The zero value is not usable; build chains with New, the adapters
// (Convert, Present, From, FromOK), or the propagation operations
// (Here, Examine, Custom).
type Chain struct {
	frames []Frame // newest-first, non-empty
	cause  error   // foreign origin, nil for custom-constructed failures
}

// New creates a single-frame Chain, recording the caller's source position
// when location capture is compiled in. An empty format yields the
// "unspecified error" message.
func New(format string, args ...any) *Chain {
	return NewAt(Caller(1), format, args...)
}

// NewAt is New with an explicitly supplied location (e.g. from generated
// code). The location is dropped when capture is compiled out.
func NewAt(loc Location, format string, args ...any) *Chain {
	return &Chain{frames: []Frame{newFrame(loc, format, args...)}}
}

// Annotate returns a NEW Chain with one more Frame prepended, recording the
// caller's source position when location capture is compiled in. The receiver
// is left untouched. A nil receiver behaves like New.
func (c *Chain) Annotate(format string, args ...any) *Chain {
	return c.AnnotateAt(Caller(1), format, args...)
}

// AnnotateAt is Annotate with an explicitly supplied location.
func (c *Chain) AnnotateAt(loc Location, format string, args ...any) *Chain {
	if c == nil {
		return NewAt(loc, format, args...)
	}
	return &Chain{
		frames: prependFrame(c.frames, newFrame(loc, format, args...)),
		cause:  c.cause,
	}
}

// Summary returns the message of the newest Frame: the top-level, most
// user-facing description of the failure.
func (c *Chain) Summary() string {
	return c.frames[0].Message
}

// Error implements error by delegating to Summary.
func (c *Chain) Error() string {
	return c.Summary()
}

// Trace returns the full diagnostic rendering, one line per Frame from most
// recent to origin, each formatted as "{index}: {location-prefix}{message}".
// A terminal foreign cause is emitted as one extra trailing line with no
// location prefix and an index one past the last Frame — unless its rendering
// was already lifted verbatim into the origin Frame (see From), in which case
// it is not repeated.
func (c *Chain) Trace() string {
	var sb strings.Builder
	for i, f := range c.frames {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(f.Loc.prefix())
		sb.WriteString(f.Message)
	}
	if c.cause != nil {
		if text := c.cause.Error(); text != c.frames[len(c.frames)-1].Message {
			sb.WriteByte('\n')
			sb.WriteString(strconv.Itoa(len(c.frames)))
			sb.WriteString(": ")
			sb.WriteString(text)
		}
	}
	return sb.String()
}

// Frames returns a copy of the chain's frames, newest first. The returned
// slice is safe to mutate without affecting the Chain (copy-on-read).
func (c *Chain) Frames() []Frame {
	return cloneFrames(c.frames)
}

// Len returns the number of Frames (annotations), excluding any terminal
// foreign cause.
func (c *Chain) Len() int {
	return len(c.frames)
}

// Unwrap exposes the terminal foreign cause (nil for custom-constructed
// failures) so errors.Is/As traverse through the chain to the origin.
func (c *Chain) Unwrap() error {
	return c.cause
}

var _ error = (*Chain)(nil)
