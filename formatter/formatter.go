package formatter

import (
	"strings"
	"time"

	"github.com/rotolog/rotolog/core"
)

// Defaults used by Default and by callers that leave formatter settings
// empty.
const (
	DefaultSplitter        = "::"
	DefaultTemplate        = "{timestamp} {splitter} {modules} {splitter} {message}"
	DefaultTimestampLayout = "2006-01-02 15:04:05.000000000"
)

// MessageFormatter renders messages according to a compiled mask
// sequence. It is immutable after construction and safe for concurrent
// use, although the worker loop is its only caller in practice.
type MessageFormatter struct {
	splitter string
	layout   string
	masks    []Mask
}

// New compiles the template and returns a formatter. The timestamp layout
// is a Go reference-time layout; an empty layout renders timestamps as
// empty values. The error mirrors Compile: only a brace-free template
// fails.
func New(splitter, template, timestampLayout string) (*MessageFormatter, error) {
	masks, err := Compile(template)
	if err != nil {
		return nil, err
	}
	return &MessageFormatter{splitter: splitter, layout: timestampLayout, masks: masks}, nil
}

// MustNew is New for static templates; it panics on error.
func MustNew(splitter, template, timestampLayout string) *MessageFormatter {
	f, err := New(splitter, template, timestampLayout)
	if err != nil {
		panic(err)
	}
	return f
}

// Default returns the stock formatter: "::" splitter, the default
// template, and a nanosecond timestamp layout.
func Default() *MessageFormatter {
	return MustNew(DefaultSplitter, DefaultTemplate, DefaultTimestampLayout)
}

// Format renders one message. The timestamp is captured here, once per
// call; it marks when the worker received the message, not when the
// logged event occurred.
func (f *MessageFormatter) Format(msg core.Message) string {
	return f.formatAt(time.Now(), msg)
}

// formatAt is the pure core of Format: for a fixed instant the rendering
// depends only on the message and the compiled masks.
func (f *MessageFormatter) formatAt(now time.Time, msg core.Message) string {
	var timestamp string
	if f.layout != "" {
		timestamp = now.Format(f.layout)
	}

	var b strings.Builder
	for _, m := range f.masks {
		switch m.Kind {
		case KindRaw:
			b.WriteString(m.Literal)
		case KindSplitter:
			b.WriteString(f.splitter)
		case KindTimestamp:
			b.WriteString(applyMask(timestamp, m))
		case KindModules:
			b.WriteString(applyMask(strings.Join(msg.Modules(), f.splitter), m))
		case KindMessage:
			b.WriteString(applyMask(msg.Text(), m))
		}
	}
	return b.String()
}

// applyMask runs the length policy, then the width/alignment policy.
// The result is always exactly the mask's width in characters.
func applyMask(value string, m Mask) string {
	return padToWidth(truncate(value, m.Length), m.Width, m.Align)
}

// truncate applies the length policy. A positive length keeps the first
// length characters, a non-positive one drops the last |length|
// characters; both are clamped to the value's size. Counting is in runes,
// not bytes.
func truncate(value string, length int) string {
	runes := []rune(value)
	if length > 0 {
		if length >= len(runes) {
			return value
		}
		return string(runes[:length])
	}
	drop := -length
	if drop > len(runes) {
		drop = len(runes)
	}
	return string(runes[:len(runes)-drop])
}

// padToWidth fits the value into a column of exactly width characters:
// values at or over the width are hard-truncated, shorter ones are padded
// with spaces distributed per the alignment. Center puts the odd space
// after the value.
func padToWidth(value string, width int, align Align) string {
	runes := []rune(value)
	if len(runes) >= width {
		return string(runes[:width])
	}

	free := width - len(runes)
	var before, after int
	switch align {
	case AlignLeft:
		after = free
	case AlignRight:
		before = free
	default:
		before = free / 2
		after = free - before
	}
	return strings.Repeat(" ", before) + value + strings.Repeat(" ", after)
}
