package core

// Message is one log record: the hierarchical module path of its source
// and the message text. The zero value is an empty record.
type Message struct {
	modules []string
	text    string
}

// NewMessage builds a Message from the caller's module path and text.
// The modules slice is copied; the caller keeps ownership of its slice.
func NewMessage(modules []string, text string) Message {
	var m []string
	if len(modules) > 0 {
		m = make([]string, len(modules))
		copy(m, modules)
	}
	return Message{modules: m, text: text}
}

// Modules returns the module path in insertion order. The returned slice
// is shared and must not be modified.
func (m Message) Modules() []string {
	return m.modules
}

// Text returns the message text.
func (m Message) Text() string {
	return m.text
}
