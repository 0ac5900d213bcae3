// Package template provides fill-in-the-blank email draft skeletons and a
// pure rendering function over them.
//
// A Template declares an ordered list of named fields and a body containing
// {fieldName} tokens. Render substitutes user-supplied values into the body,
// falling back to bracketed placeholder text for blank fields so partially
// filled drafts remain readable. Rendering is synchronous and idempotent,
// suitable for live preview on every keystroke.
//
// The builtin catalog mirrors the product's static template library and is
// never persisted or mutated at runtime.
package template
