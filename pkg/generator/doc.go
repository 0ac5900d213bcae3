// Package generator turns a user prompt and tone preset into finished email
// draft text.
//
// Per call: resolve the API credential, compose a tone-specific instruction
// around the raw prompt, and make at most one bounded call to the remote
// generation backend. Any failure - missing credential, network error, empty
// response, timeout - routes to a deterministic per-tone fallback skeleton
// that interpolates the prompt into a canned subject/body/closing. Generate
// therefore never returns an error and never returns empty text; the feature
// stays usable offline and before credential setup, at the cost of quality.
//
// On success a draft_generated usage event is emitted (fire-and-forget) when
// the request carries a user id, for both remote and fallback output.
package generator
