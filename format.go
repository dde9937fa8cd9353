// format.go — fmt.Formatter implementation for Chain.
//
// Behavior:
//
//	%s, %v   → concise summary (Error()): the newest frame's message.
//	%+v      → full trace, one line per frame, newest first:
//	             0: main.go:18: Layer 1 failure
//	             1: main.go:13: Layer 2 failure
//	             2: main.go:7: could not convert to an integer
//	             3: strconv.Atoi: parsing "NaN": invalid syntax
//	%q       → quoted summary.
//
// Rationale: keep the core free of logging/serialization policy; fmt is the
// only output contract. Callers decide where the text goes (console, log, …).
package trailhound

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter. %v/%s stay cheap (summary only); %+v
// renders the full trace.
func (c *Chain) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, c.Trace())
			return
		}
		_, _ = io.WriteString(s, c.Summary())
	case 's':
		_, _ = io.WriteString(s, c.Summary())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.Summary())
	default:
		_, _ = io.WriteString(s, c.Summary())
	}
}

var _ fmt.Formatter = (*Chain)(nil)
