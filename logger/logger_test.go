package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/rotolog/rotolog/formatter"
)

func TestDisabledLogger_CreatesNothing(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	settings := NewSettings(false, 1,
		FileOutput(dir, 2, FileSizeFromKilobytes(1), "app", "log"), nil)

	for _, l := range []*Logger{Disabled(), New(settings)} {
		l.Log([]string{"MAIN"}, "dropped")
		if h := l.Start(); h != nil {
			t.Error("disabled logger started a worker")
		}
		l.Log([]string{"MAIN"}, "still dropped")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("disabled logger created files: %v", entries)
	}
}

func TestLog_BeforeStartIsDropped(t *testing.T) {
	l := New(NewSettings(true, 1, ConsoleOutput(), nil))
	// No worker registered yet; the call must neither block nor fail.
	l.Log([]string{"EARLY"}, "no worker yet")
}

func TestLog_NilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Log([]string{"NIL"}, "ignored")
}

func TestLogger_EndToEndFileRotation(t *testing.T) {
	defer goleak.VerifyNone(t)
	captureDiag(t)

	dir := t.TempDir()
	f := formatter.MustNew("::", "{message:600:600:left}", "")
	settings := NewSettings(true, 1,
		FileOutput(dir, 2, FileSizeFromKilobytes(1), "log", "log"), f)

	l := New(settings)
	h := l.Start()
	l.Log([]string{"T"}, "msg1")
	l.Log([]string{"T"}, "msg2")
	l.Log([]string{"T"}, "msg3")
	h.Close()

	// 601-byte lines against a 1000-byte ceiling: the file rolls after
	// message 2, message 3 starts a fresh current file.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 files, got %d", len(entries))
	}

	current, err := os.ReadFile(filepath.Join(dir, "log.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(current), "msg3") {
		t.Errorf("current file should hold message 3, got %q", string(current[:10]))
	}

	rolled, err := os.ReadFile(filepath.Join(dir, "log.log1"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rolled), "msg1") || !strings.Contains(string(rolled), "msg2") {
		t.Error("rolled file should hold messages 1 and 2")
	}
}

func TestLogger_ConcurrentProducers(t *testing.T) {
	defer goleak.VerifyNone(t)
	captureDiag(t)

	const producers = 8
	const perProducer = 50

	dir := t.TempDir()
	settings := NewSettings(true, 1,
		FileOutput(dir, 5, FileSizeFromMegabytes(16), "app", "log"), plainFormatter())

	l := New(settings)
	h := l.Start()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				l.Log([]string{"WORKER"}, "job")
			}
		}()
	}
	wg.Wait()
	h.Close()

	// The queue is deeper than the total send count, so nothing drops.
	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "\n"); got != producers*perProducer {
		t.Errorf("got %d lines, want %d", got, producers*perProducer)
	}
}

func TestAmbientLog_UsesLastStartedWorker(t *testing.T) {
	defer goleak.VerifyNone(t)
	captureDiag(t)

	dir := t.TempDir()
	settings := NewSettings(true, 1,
		FileOutput(dir, 5, FileSizeFromMegabytes(1), "app", "log"), plainFormatter())

	h := New(settings).Start()
	Log([]string{"AMBIENT"}, "via package-level call")
	h.Close()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "via package-level") {
		t.Errorf("ambient message missing: %q", string(data))
	}
}

func TestHandle_CloseIsIdempotentAndLateLogsDrop(t *testing.T) {
	defer goleak.VerifyNone(t)
	captureDiag(t)

	dir := t.TempDir()
	settings := NewSettings(true, 1,
		FileOutput(dir, 5, FileSizeFromMegabytes(1), "app", "log"), plainFormatter())

	l := New(settings)
	h := l.Start()
	l.Log([]string{"T"}, "before close")
	h.Close()
	h.Close()

	// The worker is gone; these must be dropped without panicking.
	l.Log([]string{"T"}, "after close")
	Log([]string{"T"}, "ambient after close")

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "after close") {
		t.Error("message accepted after Close")
	}
}

func TestHandle_WaitReturnsAfterClose(t *testing.T) {
	captureDiag(t)
	l := New(NewSettings(true, 1, FileOutput(t.TempDir(), 5, FileSizeFromMegabytes(1), "app", "log"), plainFormatter()))
	h := l.Start()

	waited := make(chan struct{})
	go func() {
		h.Wait()
		close(waited)
	}()

	h.Close()
	<-waited
}
