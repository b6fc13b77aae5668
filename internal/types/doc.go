// Package types defines shared data structures for the session service.
//
// Core Types:
//   - SessionRecord: one chat session's metadata (key, label, status, timing)
//   - RecordChange: before/after pair emitted on registry mutations
//   - MovedEvent: store-layer notification that a resource key changed
//
// Service Types:
//   - Service/Tool/Parameter: provider definitions for the service registry
//   - Result: uniform tool execution result
package types
