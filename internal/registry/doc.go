// Package registry maintains the authoritative in-memory list of chat
// session records.
//
// Components:
//   - Manager: ordered session collection with rename-only mutation
//   - Seeder: builds the fixed record set from defaults and seed files
//
// Invariants:
//   - Every key resolves to exactly one record
//   - Iteration order is insertion order; renames never reorder
//   - Records are neither created nor deleted after construction
//
// Change Notification:
//
// Successful renames emit {original, modified} record pairs through a
// synchronous subscription stream so consumers can diff state instead of
// re-reading the full list.
package registry
