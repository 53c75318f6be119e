package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/rotolog/rotolog/formatter"
	"github.com/rotolog/rotolog/logger"
)

// Format identifies the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document mirrors the on-disk logging section. Enabled is a pointer so
// an absent key defaults to true rather than to a disabled logger.
type document struct {
	Enabled    *bool  `koanf:"enabled"`
	BufferSize int    `koanf:"buffer_size"`
	QueueDepth int    `koanf:"queue_depth"`
	Output     string `koanf:"output"`
	File       struct {
		Path      string `koanf:"path"`
		Capacity  int    `koanf:"capacity"`
		MaxSizeKB uint64 `koanf:"max_size_kb"`
		Filename  string `koanf:"filename"`
		Extension string `koanf:"extension"`
	} `koanf:"file"`
	Format struct {
		Splitter  string `koanf:"splitter"`
		Template  string `koanf:"template"`
		Timestamp string `koanf:"timestamp"`
	} `koanf:"format"`
}

// Load reads a settings file, detecting the format from the extension
// (.yaml, .yml or .json).
func Load(path string) (logger.Settings, error) {
	format, err := detectFormat(path)
	if err != nil {
		return logger.Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return logger.Settings{}, fmt.Errorf("read settings file: %w", err)
	}
	return LoadBytes(data, format)
}

// LoadBytes parses an in-memory settings document.
func LoadBytes(data []byte, format Format) (logger.Settings, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = kyaml.Parser()
	case FormatJSON:
		parser = kjson.Parser()
	default:
		return logger.Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return logger.Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	var doc document
	if err := k.Unmarshal("logging", &doc); err != nil {
		return logger.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return buildSettings(doc)
}

// buildSettings maps the document onto the construction API.
func buildSettings(doc document) (logger.Settings, error) {
	enabled := true
	if doc.Enabled != nil {
		enabled = *doc.Enabled
	}

	splitter := doc.Format.Splitter
	if splitter == "" {
		splitter = formatter.DefaultSplitter
	}
	template := doc.Format.Template
	if template == "" {
		template = formatter.DefaultTemplate
	}
	layout := doc.Format.Timestamp
	if layout == "" {
		layout = formatter.DefaultTimestampLayout
	}
	f, err := formatter.New(splitter, template, layout)
	if err != nil {
		return logger.Settings{}, fmt.Errorf("format template: %w", err)
	}

	var size logger.FileSize
	if doc.File.MaxSizeKB > 0 {
		size = logger.FileSizeFromKilobytes(doc.File.MaxSizeKB)
	}

	var output logger.OutputChannel
	switch strings.ToLower(doc.Output) {
	case "", "console":
		output = logger.ConsoleOutput()
	case "file":
		output = logger.FileOutput(doc.File.Path, doc.File.Capacity, size, doc.File.Filename, doc.File.Extension)
	case "auto":
		output = logger.AutoOutput(doc.File.Path, doc.File.Capacity, size, doc.File.Filename, doc.File.Extension)
	default:
		return logger.Settings{}, fmt.Errorf("unknown output channel %q", doc.Output)
	}

	s := logger.NewSettings(enabled, doc.BufferSize, output, f)
	if doc.QueueDepth > 0 {
		s.QueueDepth = doc.QueueDepth
	}
	return s, nil
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot detect settings format of %q", path)
	}
}
