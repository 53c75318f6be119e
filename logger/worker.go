package logger

import (
	"github.com/rotolog/rotolog/core"
	"github.com/rotolog/rotolog/sink"
)

// worker is the queue's single consumer. It owns the line buffer and the
// file sink outright, so neither needs a lock.
type worker struct {
	settings Settings
	ch       <-chan core.Message
	console  *sink.Console
	file     *sink.File
	buf      []string
}

// newWorker resolves the sink once. Auto mode collapses to console or
// file here, at start time, never per message.
func newWorker(settings Settings, ch <-chan core.Message) *worker {
	w := &worker{settings: settings, ch: ch}

	mode := settings.Output.Mode()
	if mode == ModeAuto {
		mode = autoMode
	}
	if mode == ModeConsole {
		w.console = sink.NewConsole(nil)
		return w
	}

	fs, _ := settings.Output.FileSettings()
	w.file = sink.NewFile(sink.FileConfig{
		Dir:       fs.Path,
		Filename:  fs.Filename,
		Extension: fs.Extension,
		Capacity:  fs.Capacity,
		MaxBits:   fs.FileSize.Bits(),
	})
	w.buf = make([]string, 0, settings.BufferSize)
	return w
}

// run drains the queue until it is closed. Console mode emits every
// message as it arrives; file mode accumulates rendered lines and
// flushes only full batches. Any sink error is fatal: the worker reports
// it on the diagnostic writer and stops, and the logging subsystem stays
// down for the rest of the process life.
func (w *worker) run() {
	for msg := range w.ch {
		line := w.settings.Formatter.Format(msg)

		if w.console != nil {
			if err := w.console.WriteLine(line); err != nil {
				diagf("console write failed, worker stopping: %v", err)
				return
			}
			continue
		}

		w.buf = append(w.buf, line)
		if len(w.buf) < w.settings.BufferSize {
			continue
		}
		if err := w.file.Flush(w.buf); err != nil {
			diagf("flush failed, worker stopping: %v", err)
			return
		}
		w.buf = w.buf[:0]
	}
	w.shutdown()
}

// shutdown runs once the queue's sending side is closed. The partial
// buffer is flushed best-effort so an orderly Close loses nothing it
// already accepted.
func (w *worker) shutdown() {
	if w.file != nil {
		if err := w.file.Flush(w.buf); err != nil {
			diagf("final flush failed: %v", err)
		}
		w.buf = w.buf[:0]
		if err := w.file.Close(); err != nil {
			diagf("close log file: %v", err)
		}
	}
	diagf("message queue closed, worker stopping")
}
