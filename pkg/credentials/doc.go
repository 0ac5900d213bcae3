// Package credentials resolves the API credential for the remote generation
// backend across multiple sources.
//
// The Resolver checks, in strict priority order: an in-memory session value
// (set when the user explicitly supplies a credential), a persisted Storage
// slot from a prior session, and a build-time-injected default. The first
// present value wins. Supplying a credential updates both the session slot
// and the persistent slot, so the user is never re-prompted.
//
// Storage backends: an encrypted local file (AES-256-GCM under an
// HKDF-derived key), a Redis key, and an in-memory slot for tests.
//
// Correctness of a resolved credential is never checked here; a bad key
// surfaces as a failed remote call, which the generator converts into its
// deterministic offline fallback.
package credentials
