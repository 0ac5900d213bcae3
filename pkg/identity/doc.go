// Package identity abstracts the identity collaborator: who is signed in,
// and the sign-in/sign-up/sign-out/reset primitives.
//
// The core only ever needs "is a user present" and a stable user identifier;
// everything else about sessions and tokens stays inside the provider.
// SupabaseProvider talks to GoTrue; StaticProvider pins a fixed user for
// tests and single-user CLI mode.
package identity
