package logger

import "github.com/rotolog/rotolog/formatter"

// FileSize is a per-file size ceiling. The stored unit is bits, with
// decimal multipliers between the constructors.
type FileSize struct {
	bits uint64
}

// FileSizeFromBytes returns a ceiling of n bytes.
func FileSizeFromBytes(n uint64) FileSize { return FileSize{bits: n * 8} }

// FileSizeFromKilobytes returns a ceiling of n kilobytes (1000 bytes).
func FileSizeFromKilobytes(n uint64) FileSize { return FileSize{bits: n * 8 * 1000} }

// FileSizeFromMegabytes returns a ceiling of n megabytes.
func FileSizeFromMegabytes(n uint64) FileSize { return FileSize{bits: n * 8 * 1000 * 1000} }

// FileSizeFromGigabytes returns a ceiling of n gigabytes.
func FileSizeFromGigabytes(n uint64) FileSize { return FileSize{bits: n * 8 * 1000 * 1000 * 1000} }

// Bits returns the ceiling in bits.
func (s FileSize) Bits() uint64 { return s.bits }

// DefaultFileSize is the 2 MB ceiling used when none is given.
func DefaultFileSize() FileSize { return FileSizeFromMegabytes(2) }

// FileSettings configures the rotating file set.
type FileSettings struct {
	// Path is the log directory.
	Path string
	// Capacity is how many files may exist at a settle point.
	Capacity int
	// FileSize is the per-file size ceiling.
	FileSize FileSize
	// Filename and Extension name the files: Filename.Extension for the
	// current file, with a numeric suffix appended for rotated ones.
	Filename  string
	Extension string
}

// DefaultFileSettings returns the stock file set: ./logs, ten files of
// 2 MB named logger.log.
func DefaultFileSettings() FileSettings {
	return FileSettings{
		Path:      "./logs",
		Capacity:  10,
		FileSize:  DefaultFileSize(),
		Filename:  "logger",
		Extension: "log",
	}
}

func applyFileDefaults(fs *FileSettings) {
	d := DefaultFileSettings()
	if fs.Path == "" {
		fs.Path = d.Path
	}
	if fs.Capacity <= 0 {
		fs.Capacity = d.Capacity
	}
	if fs.FileSize.bits == 0 {
		fs.FileSize = d.FileSize
	}
	if fs.Filename == "" {
		fs.Filename = d.Filename
	}
	if fs.Extension == "" {
		fs.Extension = d.Extension
	}
}

// OutputMode selects the worker's sink.
type OutputMode int8

const (
	// ModeConsole emits every message immediately to stdout.
	ModeConsole OutputMode = iota
	// ModeFile buffers messages and flushes batches to rotating files.
	ModeFile
	// ModeAuto picks console in dev builds and file otherwise; the
	// choice is static, made once when the worker starts.
	ModeAuto
)

// OutputChannel is the sink selection plus, for file and auto modes, the
// file set configuration.
type OutputChannel struct {
	mode OutputMode
	file FileSettings
}

// ConsoleOutput selects the console sink.
func ConsoleOutput() OutputChannel {
	return OutputChannel{mode: ModeConsole}
}

// FileOutput selects the rotating file sink. Zero-value fields take the
// DefaultFileSettings values.
func FileOutput(path string, capacity int, size FileSize, filename, extension string) OutputChannel {
	fs := FileSettings{Path: path, Capacity: capacity, FileSize: size, Filename: filename, Extension: extension}
	applyFileDefaults(&fs)
	return OutputChannel{mode: ModeFile, file: fs}
}

// AutoOutput carries the same file set as FileOutput but lets the build
// decide: console under the dev build tag, files otherwise.
func AutoOutput(path string, capacity int, size FileSize, filename, extension string) OutputChannel {
	o := FileOutput(path, capacity, size, filename, extension)
	o.mode = ModeAuto
	return o
}

// Mode returns the selected output mode.
func (o OutputChannel) Mode() OutputMode { return o.mode }

// FileSettings returns the file set configuration and whether this
// channel carries one (console mode does not).
func (o OutputChannel) FileSettings() (FileSettings, bool) {
	if o.mode == ModeConsole {
		return FileSettings{}, false
	}
	return o.file, true
}

// Defaults for Settings fields left at their zero value.
const (
	DefaultBufferSize = 2048
	DefaultQueueDepth = 4096
)

// Settings is the immutable, process-wide configuration bundle. It is
// fixed before the worker starts; changing anything means building a new
// Logger.
type Settings struct {
	// Enabled decides between a live Logger and a no-op one.
	Enabled bool
	// BufferSize is how many rendered lines accumulate before a file
	// flush. There is no time-based flush: a line can wait indefinitely
	// for its batch to fill.
	BufferSize int
	// QueueDepth bounds the producer queue. A full queue drops new
	// messages instead of blocking the producer.
	QueueDepth int
	// Output selects the sink.
	Output OutputChannel
	// Formatter renders each message into its output line.
	Formatter *formatter.MessageFormatter
}

// NewSettings bundles the configuration, filling zero-value fields with
// the defaults.
func NewSettings(enabled bool, bufferSize int, output OutputChannel, f *formatter.MessageFormatter) Settings {
	s := Settings{Enabled: enabled, BufferSize: bufferSize, Output: output, Formatter: f}
	applySettingsDefaults(&s)
	return s
}

// DefaultSettings is an enabled console logger with the stock formatter.
func DefaultSettings() Settings {
	return NewSettings(true, DefaultBufferSize, ConsoleOutput(), nil)
}

func applySettingsDefaults(s *Settings) {
	if s.BufferSize <= 0 {
		s.BufferSize = DefaultBufferSize
	}
	if s.QueueDepth <= 0 {
		s.QueueDepth = DefaultQueueDepth
	}
	if s.Formatter == nil {
		s.Formatter = formatter.Default()
	}
}
