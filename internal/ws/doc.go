// Package ws provides the WebSocket event stream the host UI subscribes
// to: registry change notifications (re-render triggers) and store moved
// notifications (resource identity changes).
package ws
