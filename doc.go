// doc.go — package documentation for trailhound
//
// Package trailhound turns fallible results into a single unified failure
// type — the Chain — that accumulates a human-readable causal trail as it
// propagates up through nested calls. A top-level caller sees not just the
// root cause but every logical layer the failure crossed, each optionally
// tagged with the source position of the annotation point.
//
// It is designed to be:
//   - Ergonomic at call sites (one operation per boundary, then the usual
//     early return on error)
//   - Interoperable with the stdlib (error, errors.Is/As, fmt.Formatter)
//   - Policy-free (no logging/recovery/retry rules, no I/O in core)
//
// # Building Chains
//
// A Chain is born where a foreign failure or absence is first observed, and
// grows by exactly one Frame at each later boundary:
//
//	func parseCount(text string) (int, error) {
//		n, err := strconv.Atoi(text)
//		return trailhound.Convert(n, err, "could not convert %q to an integer", text)
//	}
//
//	func loadConfig(path string) error {
//		if err := readAndParse(path); err != nil {
//			return trailhound.Examine(err, "loading config %s", path)
//		}
//		return nil
//	}
//
// Convert and Present adapt the two foreign shapes ((T, error) and the
// comma-ok optional); Here annotates a bare error; Examine grows an existing
// chain; Custom synthesizes a failure from a business-rule check. From and
// FromOK lift a failure with no annotation when there is nothing to add.
//
// # Rendering
//
// Summary (and Error, and plain %v) give the newest frame's message — the
// line fit for end users. Trace (and %+v) gives the whole trail for
// developers and logs, newest first, with the preserved foreign rendering as
// the final line:
//
//	0: Layer 1 failure
//	1: Layer 2 failure
//	2: could not convert "NaN" to an integer
//	3: strconv.Atoi: parsing "NaN": invalid syntax
//
// The library performs no I/O; both renderings are returned as strings.
//
// # The disclose Build Tag
//
// Source positions are a build-time feature, resolved once per artifact:
//
//	go build -tags disclose
//
// With the tag, every operation records its caller's file and line and Trace
// prefixes each frame line with "file:line: ". Without it (the default),
// Caller is a constant stub — nothing is captured, stored, or rendered, and
// annotation costs only the message formatting. Explicit positions passed to
// NewAt/AnnotateAt are honored only when the tag is set.
//
// # Ownership & Concurrency
//
// Every growth operation is copy-on-write: Annotate and friends return a new
// *Chain and never alter their input, so a chain handed to another goroutine
// needs no synchronization. No locking exists anywhere in the package.
//
// # Stdlib Interop
//
//   - Chain implements error; its Error() is the concise summary.
//   - Unwrap() exposes the terminal foreign cause, so
//     errors.Is(err, fs.ErrNotExist) and friends keep working through any
//     number of annotations.
//   - Absence adapted by Present/FromOK unwraps to the ErrNoValue sentinel.
//   - IsChain/AsChain/RootCause are nil-safe errors.As-based helpers.
//
// See example_test.go for runnable end-to-end demonstrations.
package trailhound
