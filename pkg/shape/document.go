package shape

import "github.com/go-faster/jx"

// Printable renders to a display line.
type Printable interface {
	Print() string
}

// Serializable renders to a machine-readable string.
type Serializable interface {
	Serialize() string
}

// Document holds free-form text content and satisfies both contracts.
type Document struct {
	Content string
}

// Print implements Printable.
func (d Document) Print() string {
	return "Document: " + d.Content
}

// Serialize implements Serializable, producing a JSON object with proper
// escaping.
func (d Document) Serialize() string {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("content", func(e *jx.Encoder) { e.Str(d.Content) })
	})
	return e.String()
}

var (
	_ Printable    = Document{}
	_ Serializable = Document{}
)
