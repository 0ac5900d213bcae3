package template

// FieldKind distinguishes single-line inputs from multi-line ones.
// It only affects how a form renders the field; the engine treats both alike.
type FieldKind string

const (
	KindLine  FieldKind = "line"
	KindBlock FieldKind = "block"
)

// Field describes one fill-in slot of a template.
type Field struct {
	Name        string
	Placeholder string
	Kind        FieldKind
}

// Template is a static fill-in-the-blank draft skeleton. The Body contains
// {fieldName} tokens that Render substitutes with user values. Templates are
// code-defined and immutable; they are never persisted or edited at runtime.
type Template struct {
	ID       string
	Title    string
	Category string
	Fields   []Field
	Body     string
}
