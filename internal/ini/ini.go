package ini

import (
	"io"
	"strings"

	"github.com/vk/inigen/internal/config"
)

// Render converts the model into INI text. An empty map yields an empty
// string; a section with no keys yields its header followed by the blank
// separator line only.
func Render(m *config.Map) string {
	var b strings.Builder
	for _, e := range m.Entries() {
		// A top-level scalar is not a section; it contributes nothing.
		if !e.IsSection() {
			continue
		}
		b.WriteString("[")
		b.WriteString(e.Name)
		b.WriteString("]\n")
		for _, k := range e.Section.Keys() {
			b.WriteString(k.Name)
			b.WriteString(" = ")
			b.WriteString(k.Value)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteTo renders the model and writes the text to w in a single call.
func WriteTo(w io.Writer, m *config.Map) (int, error) {
	return io.WriteString(w, Render(m))
}
