// Package drafts owns the draft data model, the remote persistence
// abstraction, and the client-side Store that keeps a user's draft
// collection synchronized with the remote service.
//
// The Store mediates all mutations (save, update, delete, favorite-toggle)
// with a confirm-then-apply policy: local state changes only after the
// remote store acknowledges, and updates reconcile against the canonical
// returned row. The store moves through uninitialized -> loading -> ready on
// sign-in and back to uninitialized on sign-out, never carrying drafts
// across users.
//
// SupabaseRepository talks to the drafts table via PostgREST;
// MemoryRepository provides the same semantics in memory for tests and
// offline use.
package drafts
