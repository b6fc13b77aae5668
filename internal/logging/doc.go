// Package logging provides structured logging built on zap.
//
// The shell components (server, seeder, websocket stream) log through
// this package; the registry and store cores are deliberately log-free.
package logging
