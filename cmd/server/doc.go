// Command server runs the SessionFS service: a chat-session registry
// exposed over HTTP, a WebSocket event stream, and a read-only virtual
// file surface.
package main
