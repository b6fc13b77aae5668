// Package events provides a synchronous observer-style emitter.
//
// The registry and store use it for their change and moved notification
// streams. Listeners run on the emitting goroutine, so handlers must not
// block. Subscriptions must be explicitly released to avoid leaks.
package events
