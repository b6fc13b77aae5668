// Package service provides the service registry for provider management.
//
// The registry maintains a catalog of available service providers and
// handles service discovery, tool execution, and relevance scoring.
//
// Components:
//   - Registry: central service catalog
//   - Provider: interface for service implementations
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(sessionsProvider)
//	result, err := registry.Execute(ctx, "sessions.list", params, appCtx)
package service
