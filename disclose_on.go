//go:build disclose

// disclose_on.go — call-site capture, compiled in with the "disclose" tag.
//
// The disclose flag is the build-time switch for location capture: resolved
// once per built artifact, never mutable at run time. Build with
//
//	go build -tags disclose
//
// to record the file and line of every annotation point and have Trace render
// them as "file:line: " prefixes. Without the tag (see disclose_off.go) no
// position is ever captured or stored.
//
// Skip model: the skip parameter is relative to the caller of Caller.
// 0 reports the immediate caller's site; wrappers that interpose a helper
// frame pass 1, and so on.
package trailhound

import "runtime"

// Disclosed reports whether location capture is compiled into this artifact.
const Disclosed = true

// Caller returns the source position skip frames above the caller, or the
// zero Location if the stack cannot be read that far.
//
// Skip accounting: runtime.Caller(0) would report Caller itself, so +1 places
// skip=0 at the user-visible call site.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}
