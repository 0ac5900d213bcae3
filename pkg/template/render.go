package template

import "strings"

// Render substitutes the template's declared fields into its body.
//
// Every {name} occurrence of a declared field is replaced with the supplied
// value verbatim, or with a bracketed stand-in built from the field's
// placeholder when the value is absent or empty, so a partially filled draft
// stays readable. Tokens in the body that match no declared field are left
// as-is; templates are trusted static data and an unmatched token is not an
// error.
//
// Render is a pure function: no hidden state, safe to call on every keystroke.
func Render(tpl Template, values map[string]string) string {
	out := tpl.Body
	for _, field := range tpl.Fields {
		value := values[field.Name]
		if value == "" {
			value = "[" + field.Placeholder + "]"
		}
		out = strings.ReplaceAll(out, "{"+field.Name+"}", value)
	}
	return out
}
