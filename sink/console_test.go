package sink

import (
	"bytes"
	"os"
	"testing"
)

func TestConsole_WriteLine(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	if err := c.WriteLine("first"); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteLine("second"); err != nil {
		t.Fatal(err)
	}

	if got, want := buf.String(), "first\nsecond\n"; got != want {
		t.Errorf("console output = %q, want %q", got, want)
	}
}

func TestConsole_DefaultsToStdout(t *testing.T) {
	c := NewConsole(nil)
	if c.w != os.Stdout {
		t.Error("nil writer should default to os.Stdout")
	}
}
