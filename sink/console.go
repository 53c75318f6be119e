package sink

import (
	"fmt"
	"io"
	"os"
)

// Console emits each rendered line as soon as it arrives; console mode
// never buffers.
type Console struct {
	w io.Writer
}

// NewConsole returns a console sink writing to w, or to os.Stdout when w
// is nil.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// WriteLine writes one rendered line followed by a newline.
func (c *Console) WriteLine(line string) error {
	_, err := fmt.Fprintln(c.w, line)
	return err
}
