package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/sessionfs/sessionfs/internal/registry"
	"github.com/sessionfs/sessionfs/internal/types"
)

// Sessions exposes the session registry to the host shell.
type Sessions struct {
	registry *registry.Manager
}

// NewSessions creates a sessions provider
func NewSessions(reg *registry.Manager) *Sessions {
	return &Sessions{registry: reg}
}

// Definition returns service metadata
func (s *Sessions) Definition() types.Service {
	return types.Service{
		ID:          "sessions",
		Name:        "Session Registry",
		Description: "Chat session listing and rename operations",
		Category:    types.CategorySessions,
		Capabilities: []string{
			"list",
			"rename",
			"stats",
		},
		Tools: []types.Tool{
			{
				ID:          "sessions.list",
				Name:        "List Sessions",
				Description: "List all chat sessions in insertion order",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "sessions.rename",
				Name:        "Rename Session",
				Description: "Move a session record to a new resource key",
				Parameters: []types.Parameter{
					{Name: "old_key", Type: "string", Description: "Current resource key", Required: true},
					{Name: "new_key", Type: "string", Description: "New resource key", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "sessions.stats",
				Name:        "Registry Stats",
				Description: "Session counts by status and rename totals",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute runs a registry operation. The context is accepted for the
// host's calling convention but never consulted: every operation is an
// instantaneous lookup or rejection.
func (s *Sessions) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "sessions.list":
		return s.list()
	case "sessions.rename":
		return s.rename(params)
	case "sessions.stats":
		return s.stats()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (s *Sessions) list() (*types.Result, error) {
	records := s.registry.List()
	return success(map[string]interface{}{
		"sessions": records,
		"count":    len(records),
	})
}

func (s *Sessions) rename(params map[string]interface{}) (*types.Result, error) {
	oldKey, ok := params["old_key"].(string)
	if !ok || oldKey == "" {
		return failure("old_key parameter required")
	}

	newKey, ok := params["new_key"].(string)
	if !ok || newKey == "" {
		return failure("new_key parameter required")
	}

	if err := s.registry.Rename(oldKey, newKey); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return failure(fmt.Sprintf("session not found: %s", oldKey))
		}
		return failure(fmt.Sprintf("rename failed: %v", err))
	}

	return success(map[string]interface{}{
		"renamed": true,
		"old_key": oldKey,
		"new_key": newKey,
	})
}

func (s *Sessions) stats() (*types.Result, error) {
	st := s.registry.Stats()
	return success(map[string]interface{}{
		"total_sessions": st.TotalSessions,
		"by_status":      st.ByStatus,
		"renames":        st.Renames,
	})
}
