// Package middleware provides HTTP middleware for the gin router:
// CORS handling and per-IP rate limiting.
package middleware
