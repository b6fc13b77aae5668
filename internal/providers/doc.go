// Package providers implements the service providers exposed to the
// host shell.
//
// Available Providers:
//   - Sessions: registry listing, rename, and statistics
//   - SessionFS: the read-only virtual file surface (stat, read,
//     rejected mutations, moved notifications, no-op watches)
//
// Provider Interface:
//   - Definition(): returns service metadata and tool definitions
//   - Execute(): executes a tool with parameters and context
package providers
