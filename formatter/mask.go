package formatter

import (
	"fmt"
	"strconv"
	"strings"
)

// Align is the horizontal alignment of a value inside its column.
type Align int8

const (
	// AlignCenter centers the value; the default.
	AlignCenter Align = iota
	// AlignLeft puts all padding after the value.
	AlignLeft
	// AlignRight puts all padding before the value.
	AlignRight
)

// parseAlign maps a field value to an alignment; anything unrecognized
// falls back to center.
func parseAlign(s string) Align {
	switch strings.ToLower(s) {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	default:
		return AlignCenter
	}
}

// Kind discriminates the compiled mask variants.
type Kind int8

const (
	// KindRaw emits its literal text unchanged.
	KindRaw Kind = iota
	// KindTimestamp emits the per-message receipt timestamp.
	KindTimestamp
	// KindSplitter emits the configured splitter string.
	KindSplitter
	// KindModules emits the module path joined with the splitter.
	KindModules
	// KindMessage emits the message text.
	KindMessage
)

// Defaults for missing or unparsable placeholder fields.
const (
	DefaultLength = 30
	DefaultWidth  = 30
)

// Mask is one compiled unit of a format template. A template compiles to
// an ordered mask sequence consumed left to right.
type Mask struct {
	Kind    Kind
	Literal string // literal text, KindRaw only
	Length  int
	Width   int
	Align   Align
}

func rawMask(literal string) Mask {
	return Mask{Kind: KindRaw, Literal: literal, Length: DefaultLength, Width: DefaultWidth}
}

// parseMask compiles the content of a single {...} placeholder. Parsing
// is total: bad numeric fields take the defaults, extra fields are
// ignored, and an unknown type name degrades to the content as literal
// text.
func parseMask(content string) Mask {
	fields := strings.Split(content, ":")

	m := Mask{Length: DefaultLength, Width: DefaultWidth, Align: AlignCenter}
	switch strings.ToLower(fields[0]) {
	case "timestamp":
		m.Kind = KindTimestamp
	case "splitter":
		m.Kind = KindSplitter
	case "modules":
		m.Kind = KindModules
	case "message":
		m.Kind = KindMessage
	default:
		return rawMask(content)
	}

	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil {
			m.Length = n
		}
	}
	if len(fields) > 2 {
		// Width is a column width; negative values are as unparsable as
		// garbage and take the default.
		if n, err := strconv.Atoi(fields[2]); err == nil && n >= 0 {
			m.Width = n
		}
	}
	if len(fields) > 3 {
		m.Align = parseAlign(fields[3])
	}
	return m
}

// Compile parses a format template into its ordered mask sequence.
// Literal runs between placeholders become Raw masks verbatim, so the
// concatenated raw text always reconstructs the template's
// non-placeholder characters exactly. The only fatal input is a template
// with no "{" or no "}" at all.
func Compile(template string) ([]Mask, error) {
	if !strings.Contains(template, "{") || !strings.Contains(template, "}") {
		return nil, fmt.Errorf("format template %q contains no {...} placeholders", template)
	}

	var masks []Mask
	rest := template
	for rest != "" {
		open := strings.Index(rest, "{")
		if open < 0 {
			masks = append(masks, rawMask(rest))
			break
		}
		if open > 0 {
			masks = append(masks, rawMask(rest[:open]))
		}
		end := strings.Index(rest[open+1:], "}")
		if end < 0 {
			// Unterminated placeholder: keep the tail as literal text.
			masks = append(masks, rawMask(rest[open:]))
			break
		}
		masks = append(masks, parseMask(rest[open+1:open+1+end]))
		rest = rest[open+1+end+1:]
	}
	return masks, nil
}

// MustCompile is Compile for templates known good at build time; it
// panics on error.
func MustCompile(template string) []Mask {
	masks, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return masks
}
