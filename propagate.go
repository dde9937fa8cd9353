// propagate.go — adapters and propagation operations over foreign outcomes.
//
// Purpose
//   • Lift Go's two fallible shapes — (T, error) and the comma-ok optional —
//     into Chain failures at the first point of observation.
//   • Grow an existing Chain by exactly one Frame per call boundary.
//   • Stay policy-free: no recovery, retry, or logging here; callers own
//     control flow via the usual `if err != nil { return … }` guard.
//
// Shape of use (one operation per call boundary, then early return):
//
//	n, err := trailhound.Convert(strconv.Atoi(text), "could not convert %q", text)
//	if err != nil {
//		return 0, err
//	}
//	…
//	if err := doWork(); err != nil {
//		return trailhound.Examine(err, "work phase failed")
//	}
//
// All operations record the caller's source position when the disclose build
// tag is set, and render message arguments eagerly before storage.
package trailhound

// Convert adapts a (value, error) outcome. On success the value passes
// through untouched and the error is nil. On failure it returns a Chain whose
// top Frame is the annotation and whose terminal cause is err — the original
// low-level failure stays reachable via errors.Is/As and is rendered as the
// trailing Trace line.
//
// If err is already a *Chain it is annotated instead of re-wrapped, so
// Convert is always safe at boundaries that cannot tell the two apart.
func Convert[T any](v T, err error, format string, args ...any) (T, error) {
	if err == nil {
		return v, nil
	}
	return v, convertAt(Caller(1), err, format, args...)
}

// Present adapts a (value, ok) optional outcome. Presence passes the value
// through; absence produces a Chain whose terminal cause is ErrNoValue, the
// fixed absence sentinel.
func Present[T any](v T, ok bool, format string, args ...any) (T, error) {
	if ok {
		return v, nil
	}
	return v, &Chain{
		frames: []Frame{newFrame(Caller(1), format, args...)},
		cause:  ErrNoValue,
	}
}

// Here annotates a bare foreign error at the call site, preserving it as the
// terminal cause under a new single-frame Chain. nil in, nil out.
func Here(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return convertAt(Caller(1), err, format, args...)
}

// Examine grows a failure that is already a Chain by one Frame; a foreign
// error is converted first. nil in, nil out. This is the operation that makes
// chains grow as they cross layered call boundaries.
func Examine(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return convertAt(Caller(1), err, format, args...)
}

// ExamineVal is Examine for (value, error) boundaries: the value passes
// through untouched on success.
func ExamineVal[T any](v T, err error, format string, args ...any) (T, error) {
	if err == nil {
		return v, nil
	}
	return v, convertAt(Caller(1), err, format, args...)
}

// Custom unconditionally synthesizes a failure with no foreign origin, for
// business-rule checks with no underlying error.
func Custom(format string, args ...any) error {
	return NewAt(Caller(1), format, args...)
}

// From lifts any error into a Chain without adding an annotation Frame: the
// foreign rendering becomes the origin Frame's message. nil and existing
// chains pass through unchanged. Use it when there is nothing useful to add
// at this boundary.
func From(err error) error {
	if err == nil {
		return nil
	}
	if ch, ok := err.(*Chain); ok {
		return ch
	}
	// The cause is kept for errors.Is/As; Trace does not repeat its text
	// because the origin frame already carries it verbatim.
	return &Chain{
		frames: []Frame{{Message: err.Error()}},
		cause:  err,
	}
}

// FromOK lifts a (value, ok) optional outcome without annotation; absence
// becomes a Chain whose only Frame is the absence sentinel text.
func FromOK[T any](v T, ok bool) (T, error) {
	if ok {
		return v, nil
	}
	return v, &Chain{
		frames: []Frame{{Message: ErrNoValue.Error()}},
		cause:  ErrNoValue,
	}
}

// convertAt builds the annotated Chain for a failure observed at loc:
// existing chains gain one Frame, foreign errors become a fresh single-frame
// chain with the foreign error preserved as terminal cause.
func convertAt(loc Location, err error, format string, args ...any) *Chain {
	if ch, ok := err.(*Chain); ok {
		return ch.AnnotateAt(loc, format, args...)
	}
	return &Chain{
		frames: []Frame{newFrame(loc, format, args...)},
		cause:  err,
	}
}
