package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileConfig describes the rotating file set a File sink manages.
type FileConfig struct {
	// Dir is the log directory, created on first flush if absent.
	Dir string
	// Filename and Extension name the current file "Filename.Extension";
	// rotated files carry a numeric suffix directly after the extension.
	Filename  string
	Extension string
	// Capacity bounds how many files of the set may exist at a settle
	// point; the oldest is evicted to stay under it.
	Capacity int
	// MaxBits is the per-file size ceiling, in bits.
	MaxBits uint64
}

// File appends whole batches to the current log file and rotates the
// file set when the size ceiling is reached. Errors are returned to the
// caller and leave the sink unusable; the worker treats every one of
// them as fatal.
type File struct {
	cfg  FileConfig
	file *os.File
}

// NewFile returns a file sink. Nothing is opened or created until the
// first flush.
func NewFile(cfg FileConfig) *File {
	return &File{cfg: cfg}
}

// CurrentPath returns the path of the unnumbered current file.
func (f *File) CurrentPath() string {
	return filepath.Join(f.cfg.Dir, f.cfg.Filename+"."+f.cfg.Extension)
}

// Flush appends the batch to the current file as one newline-joined
// write, forces it to disk, and rotates when the file has reached the
// size ceiling. An empty batch is a no-op.
func (f *File) Flush(lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	if err := os.MkdirAll(f.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	if f.file == nil {
		file, err := os.OpenFile(f.CurrentPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		f.file = file
	}

	if _, err := f.file.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return fmt.Errorf("write log batch: %w", err)
	}
	if err := f.file.Sync(); err != nil {
		return fmt.Errorf("sync log file: %w", err)
	}

	info, err := f.file.Stat()
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if uint64(info.Size())*8 >= f.cfg.MaxBits {
		return f.rotate()
	}
	return nil
}

// rotate closes the full current file and renumbers the file set. The
// next flush creates a fresh current file.
func (f *File) rotate() error {
	if f.file != nil {
		if err := f.file.Close(); err != nil {
			return fmt.Errorf("close log file: %w", err)
		}
		f.file = nil
	}
	return rotateFiles(f.cfg)
}

// Close releases the current file handle. Batches are synced on every
// flush, so there is nothing left to write.
func (f *File) Close() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}
