package lineedit

import "strings"

//-----------------------------------------------------------------------------

// outputBuffer is an append-only byte buffer. The render engine
// builds a full refresh sequence into one of these and flushes it
// with a single write, to avoid the flicker of many small writes.
type outputBuffer struct {
	b strings.Builder
}

func (o *outputBuffer) writeString(s string) {
	o.b.WriteString(s)
}

func (o *outputBuffer) String() string {
	return o.b.String()
}

// flush writes the accumulated bytes to fd in one call. Write errors
// are swallowed: display output is best-effort.
func (o *outputBuffer) flush(fd int) {
	if o.b.Len() == 0 {
		return
	}
	writeAll(fd, o.b.String())
}

//-----------------------------------------------------------------------------
