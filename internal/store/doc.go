// Package store exposes chat session records as a read-only virtual
// file surface, keyed by {scheme}:/{path} resource keys.
//
// Operations:
//   - Stat/Read: resolve against the registry; unknown keys fail NotFound
//   - Write/Delete/CreateDirectory: always fail NotPermitted
//   - ListDirectory: always empty (no hierarchy is modeled)
//   - Rename: emits a moved notification only; registry mutation is the
//     caller's responsibility (two-phase rename protocol)
//   - Watch: no-op subscription handle
//
// Content is synthesized from the key on every read and never cached,
// which is why Stat reports size zero. Both error classes are terminal
// and non-retryable.
package store
