package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sessionfs/sessionfs/internal/types"
)

// Provider is one tool-backed service exposed to the host shell.
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry holds providers keyed by service ID. IDs are unique for the
// same reason session keys are: a tool call names its target by ID.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider. The service ID must be non-empty and not
// already taken.
func (r *Registry) Register(p Provider) error {
	def := p.Definition()
	if def.ID == "" {
		return errors.New("provider has no service ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.providers[def.ID]; dup {
		return fmt.Errorf("service %q already registered", def.ID)
	}
	r.providers[def.ID] = p
	return nil
}

// Unregister removes the provider for serviceID, if present.
func (r *Registry) Unregister(serviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.providers, serviceID)
}

// Get returns the provider for serviceID.
func (r *Registry) Get(serviceID string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[serviceID]
	return p, ok
}

// List returns service definitions sorted by ID, optionally filtered
// by category.
func (r *Registry) List(category *types.Category) []types.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := make([]types.Service, 0, len(r.providers))
	for _, p := range r.providers {
		def := p.Definition()
		if category != nil && def.Category != *category {
			continue
		}
		services = append(services, def)
	}

	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Discover ranks services against a free-text query and returns at
// most limit of them, best match first. Ties keep ID order.
func (r *Registry) Discover(query string, limit int) []types.Service {
	tokens := strings.Fields(strings.ToLower(query))

	type match struct {
		service types.Service
		score   int
	}
	var matches []match
	for _, svc := range r.List(nil) {
		if score := relevance(tokens, svc); score > 0 {
			matches = append(matches, match{service: svc, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]types.Service, len(matches))
	for i, m := range matches {
		out[i] = m.service
	}
	return out
}

// relevance scores one service against query tokens. Exact ID and
// capability hits weigh more than free-text mentions.
func relevance(tokens []string, svc types.Service) int {
	caps := make(map[string]bool, len(svc.Capabilities))
	for _, c := range svc.Capabilities {
		caps[strings.ToLower(c)] = true
	}
	text := strings.ToLower(svc.Name + " " + svc.Description)

	score := 0
	for _, tok := range tokens {
		switch {
		case tok == svc.ID:
			score += 4
		case caps[tok]:
			score += 3
		case tok == string(svc.Category):
			score += 2
		case strings.Contains(text, tok):
			score++
		}
	}
	return score
}

// Execute routes a tool call to its provider. Tool IDs have the form
// "{service}.{tool}"; the provider interprets the tool part.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, found := strings.Cut(toolID, ".")
	if !found {
		return nil, fmt.Errorf("malformed tool ID %q", toolID)
	}

	provider, ok := r.Get(serviceID)
	if !ok {
		return nil, fmt.Errorf("no provider for service %q", serviceID)
	}

	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats summarizes the registered provider set.
type Stats struct {
	Services   int            `json:"services"`
	Tools      int            `json:"tools"`
	Categories map[string]int `json:"categories"`
}

// Stats counts providers, their tools, and their categories.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{Categories: make(map[string]int)}
	for _, p := range r.providers {
		def := p.Definition()
		stats.Services++
		stats.Tools += len(def.Tools)
		stats.Categories[string(def.Category)]++
	}
	return stats
}
