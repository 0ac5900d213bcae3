// Package analytics records fire-and-forget usage events.
//
// Events are append-only rows (draft_generated, draft_saved, draft_copied,
// draft_emailed, login, signup) written to an analytics backend through the
// Sink interface. Analytics is strictly auxiliary: any failure is logged and
// swallowed, and must never alter the outcome of the operation that produced
// the event. Callers emit through the Emit helper, which enforces that
// policy.
//
// SupabaseSink writes to the usage_analytics table. AsyncSink decouples
// recording from the caller with a buffered background worker that drops
// events when the buffer is full. NoopSink disables analytics entirely.
package analytics
