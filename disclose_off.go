//go:build !disclose

// disclose_off.go — the default build: location capture compiled out.
//
// Without the "disclose" tag Caller is a constant-return stub: no
// runtime.Caller walk, no position stored in any Frame, and Trace renders no
// location prefixes. Explicitly supplied locations (NewAt, AnnotateAt) are
// dropped too, so a single artifact is uniformly location-free.
package trailhound

// Disclosed reports whether location capture is compiled into this artifact.
const Disclosed = false

// Caller returns the zero Location; capture is compiled out of this build.
func Caller(int) Location {
	return Location{}
}
