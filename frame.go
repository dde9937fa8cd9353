// frame.go — Location, Frame, and the internal frame sequence for trailhound.
//
// Design:
//   • Frame is an immutable (message, optional location) pair.
//   • The internal representation is a newest-first []Frame (index 0 = most
//     recent annotation, last index = origin).
//   • Builders are non-mutating: "prepend" returns a NEW slice with a fresh
//     backing array (no aliasing through spare append capacity).
//   • Public view for callers: copy-on-read []Frame.
//
// Rationale:
//   • A slice preserves order and gives O(1) access to both the summary frame
//     (index 0) and the origin frame (last index).
//   • Always allocating on growth keeps chains safe to hand across goroutines:
//     no two holders ever observe the same backing array being written.
package trailhound

import "fmt"

// Location identifies a source position recorded by an annotation.
//
// Column is zero for locations captured via the runtime (Go exposes file and
// line only); it is set only when a caller supplies the location explicitly,
// e.g. from generated code.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether l carries no position at all.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0
}

// String renders the position as "file:line" or "file:line:column",
// or "" for the zero Location.
func (l Location) String() string {
	if l.IsZero() {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// prefix returns the trace-line prefix for this location ("" when absent).
func (l Location) prefix() string {
	if l.IsZero() {
		return ""
	}
	return l.String() + ": "
}

// Frame is one annotation point in a chain: a fully rendered message plus an
// optional source location. Immutable once constructed.
type Frame struct {
	Message string
	Loc     Location
}

// defaultMessage is used when an operation is given no annotation text.
const defaultMessage = "unspecified error"

// newFrame renders the message eagerly (templates are never stored) and gates
// the location on the build-time capture flag: with capture disabled every
// frame is location-free, including explicitly supplied positions.
func newFrame(loc Location, format string, args ...any) Frame {
	if !Disclosed {
		loc = Location{}
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if msg == "" {
		msg = defaultMessage
	}
	return Frame{Message: msg, Loc: loc}
}

// prependFrame returns a NEW newest-first slice with f at index 0.
// A fresh backing array is always allocated to preserve copy-on-write.
func prependFrame(fs []Frame, f Frame) []Frame {
	out := make([]Frame, len(fs)+1)
	out[0] = f
	copy(out[1:], fs)
	return out
}

// cloneFrames returns a defensive copy for the public Frames() view.
func cloneFrames(fs []Frame) []Frame {
	out := make([]Frame, len(fs))
	copy(out, fs)
	return out
}
