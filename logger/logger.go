package logger

import (
	"sync"
	"sync/atomic"

	"github.com/rotolog/rotolog/core"
)

// sender is the producer-facing end of the worker queue. Sends never
// block: a full queue drops the message. The mutex only guards the
// closed flag against a send racing Close; the channel itself is safe
// for any number of concurrent senders.
type sender struct {
	mu     sync.RWMutex
	ch     chan core.Message
	closed bool
}

func (s *sender) send(msg core.Message) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- msg:
	default:
		// Queue full. Dropping beats blocking the producer.
	}
}

func (s *sender) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// ambient is the process-wide published sender behind the package-level
// Log function. Last writer wins; there is no unregistration.
var ambient atomic.Pointer[sender]

// Log sends a message through the most recently started Logger, if any.
// Like (*Logger).Log it never blocks and never fails; with no worker
// started yet the message is silently dropped.
func Log(modules []string, text string) {
	if s := ambient.Load(); s != nil {
		s.send(core.NewMessage(modules, text))
	}
}

// Logger is the producer-facing dispatch handle. An enabled Logger hands
// messages to the worker started by Start; a disabled one does nothing
// at all. Loggers are safe to share across goroutines.
type Logger struct {
	settings Settings
	enabled  bool
	sender   atomic.Pointer[sender]
}

// New returns an enabled or disabled Logger depending on
// settings.Enabled.
func New(settings Settings) *Logger {
	if !settings.Enabled {
		return Disabled()
	}
	applySettingsDefaults(&settings)
	return &Logger{settings: settings, enabled: true}
}

// Disabled returns a Logger whose Log is a no-op. It never creates a
// queue, a goroutine, or a file.
func Disabled() *Logger {
	return &Logger{}
}

// Log dispatches one message. It never blocks and never fails: on a
// disabled Logger, before Start, after the worker has stopped, or with
// the queue full, the message is dropped without telling the caller.
// A producer holding the Logger across a concurrent Start may observe
// "no worker yet" and drop; that race is accepted.
func (l *Logger) Log(modules []string, text string) {
	if l == nil || !l.enabled {
		return
	}
	if s := l.sender.Load(); s != nil {
		s.send(core.NewMessage(modules, text))
	}
}

// Handle joins the worker goroutine started by Start.
type Handle struct {
	s    *sender
	done chan struct{}
}

// Wait blocks until the worker loop has stopped, which without Close
// means a fatal sink error or never.
func (h *Handle) Wait() {
	<-h.done
}

// Close shuts the intake queue and waits for the worker to drain it,
// flush any partial file buffer, and stop. Messages logged after Close
// are dropped. Close is idempotent.
func (h *Handle) Close() {
	h.s.close()
	<-h.done
}

// Start creates the message queue, publishes its sender on this Logger
// and on the process-wide slot used by the package-level Log, and spawns
// the worker goroutine. It returns nil on a disabled Logger. The Handle
// is the only way to stop the worker short of process exit.
func (l *Logger) Start() *Handle {
	if l == nil || !l.enabled {
		return nil
	}

	s := &sender{ch: make(chan core.Message, l.settings.QueueDepth)}
	l.sender.Store(s)
	ambient.Store(s)

	h := &Handle{s: s, done: make(chan struct{})}
	w := newWorker(l.settings, s.ch)
	go func() {
		defer close(h.done)
		w.run()
	}()
	return h
}
