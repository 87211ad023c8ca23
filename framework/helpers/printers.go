package helpers

import (
	"fmt"
	"io"
)

// Matcher descriptions are always written to in-memory sinks, so a write error means the
// caller passed a broken io.Writer. There is no useful way for a describe method to report
// that, so these panic instead of making every call site check.

func MustFprint(w io.Writer, a ...any) {
	if _, err := fmt.Fprint(w, a...); err != nil {
		panic(err)
	}
}

func MustFprintf(w io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(err)
	}
}
