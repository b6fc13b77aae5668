// Package http provides the gin HTTP handlers for the session shell:
// session listing, resource stat/read, the two-phase rename command, and
// the service registry surface.
package http
