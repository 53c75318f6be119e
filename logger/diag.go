package logger

import (
	"fmt"
	"io"
	"os"
)

// diagOut carries the library's own diagnostics. It is deliberately not
// the log pipeline: once the worker is in trouble the pipeline cannot be
// trusted to report it. Overridable for tests.
var diagOut io.Writer = os.Stderr

func diagf(format string, args ...any) {
	fmt.Fprintf(diagOut, "rotolog: "+format+"\n", args...)
}
