package qalog

import (
	"bytes"
	"encoding/json"
	"io"
)

// Renderer writes a category tree in a human-readable format.
type Renderer interface {
	Render(w io.Writer, categories []*Category) error
}

// MarshalCategories renders categories as indented JSON. Markup characters
// are not escaped and the output carries no trailing newline, so the same
// tree always yields byte-identical output.
func MarshalCategories(categories []*Category) ([]byte, error) {
	if categories == nil {
		categories = []*Category{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "   ")
	if err := enc.Encode(categories); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
