// Package server wires the session registry, virtual store, providers,
// middleware, HTTP handlers, and WebSocket stream into one gin server.
//
// It also installs the rename-protocol listener: the store's moved
// notification triggers the registry mutation, whose change notification
// drives connected UI clients to re-query the session list.
package server
