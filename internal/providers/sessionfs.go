package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/sessionfs/sessionfs/internal/store"
	"github.com/sessionfs/sessionfs/internal/types"
)

// SessionFS exposes the virtual read-only store to the host shell.
type SessionFS struct {
	store *store.Store
}

// NewSessionFS creates a sessionfs provider
func NewSessionFS(st *store.Store) *SessionFS {
	return &SessionFS{store: st}
}

// Definition returns service metadata
func (f *SessionFS) Definition() types.Service {
	return types.Service{
		ID:          "sessionfs",
		Name:        "Session Filesystem",
		Description: "Read-only virtual file surface over chat sessions",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"stat",
			"read",
			"list",
			"rename",
			"watch",
		},
		Tools: []types.Tool{
			{
				ID:          "sessionfs.stat",
				Name:        "Stat Resource",
				Description: "Get metadata for a session resource",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Resource key", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "sessionfs.read",
				Name:        "Read Resource",
				Description: "Read synthesized session content",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Resource key", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "sessionfs.write",
				Name:        "Write Resource",
				Description: "Write data to a resource (always rejected: store is read-only)",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Resource key", Required: true},
					{Name: "data", Type: "string", Description: "Data to write", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "sessionfs.delete",
				Name:        "Delete Resource",
				Description: "Delete a resource (always rejected: store is read-only)",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Resource key", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "sessionfs.mkdir",
				Name:        "Create Directory",
				Description: "Create a directory (always rejected: no hierarchy is modeled)",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Resource key", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "sessionfs.list",
				Name:        "List Directory",
				Description: "List a directory (always empty: no hierarchy is modeled)",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Resource key", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "sessionfs.rename",
				Name:        "Rename Resource",
				Description: "Emit a moved notification for a resource key change",
				Parameters: []types.Parameter{
					{Name: "old_key", Type: "string", Description: "Current resource key", Required: true},
					{Name: "new_key", Type: "string", Description: "New resource key", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "sessionfs.watch",
				Name:        "Watch Resource",
				Description: "Register a no-op watch subscription on a resource",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Resource key", Required: true},
				},
				Returns: "object",
			},
		},
	}
}

// Execute runs a store operation. The context is accepted for the host's
// calling convention but never consulted.
func (f *SessionFS) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "sessionfs.stat":
		return f.stat(params)
	case "sessionfs.read":
		return f.read(params)
	case "sessionfs.write":
		return f.write(params)
	case "sessionfs.delete":
		return f.delete(params)
	case "sessionfs.mkdir":
		return f.mkdir(params)
	case "sessionfs.list":
		return f.list(params)
	case "sessionfs.rename":
		return f.rename(params)
	case "sessionfs.watch":
		return f.watch(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (f *SessionFS) stat(params map[string]interface{}) (*types.Result, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return failure("key parameter required")
	}

	meta, err := f.store.Stat(key)
	if err != nil {
		return storeFailure(err)
	}

	return success(map[string]interface{}{
		"key":         key,
		"kind":        meta.Kind,
		"size":        meta.Size,
		"created_at":  meta.CreatedAt.Unix(),
		"modified_at": meta.ModifiedAt.Unix(),
	})
}

func (f *SessionFS) read(params map[string]interface{}) (*types.Result, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return failure("key parameter required")
	}

	data, err := f.store.Read(key)
	if err != nil {
		return storeFailure(err)
	}

	return success(map[string]interface{}{
		"key":     key,
		"content": string(data),
		"size":    len(data),
	})
}

func (f *SessionFS) write(params map[string]interface{}) (*types.Result, error) {
	key, _ := params["key"].(string)
	data, _ := params["data"].(string)
	return storeFailure(f.store.Write(key, []byte(data), store.WriteOptions{}))
}

func (f *SessionFS) delete(params map[string]interface{}) (*types.Result, error) {
	key, _ := params["key"].(string)
	return storeFailure(f.store.Delete(key))
}

func (f *SessionFS) mkdir(params map[string]interface{}) (*types.Result, error) {
	key, _ := params["key"].(string)
	return storeFailure(f.store.CreateDirectory(key))
}

func (f *SessionFS) list(params map[string]interface{}) (*types.Result, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return failure("key parameter required")
	}

	entries := f.store.ListDirectory(key)
	return success(map[string]interface{}{
		"key":     key,
		"entries": entries,
		"count":   len(entries),
	})
}

func (f *SessionFS) rename(params map[string]interface{}) (*types.Result, error) {
	oldKey, ok := params["old_key"].(string)
	if !ok || oldKey == "" {
		return failure("old_key parameter required")
	}

	newKey, ok := params["new_key"].(string)
	if !ok || newKey == "" {
		return failure("new_key parameter required")
	}

	f.store.Rename(oldKey, newKey)

	return success(map[string]interface{}{
		"moved":   true,
		"old_key": oldKey,
		"new_key": newKey,
	})
}

func (f *SessionFS) watch(params map[string]interface{}) (*types.Result, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return failure("key parameter required")
	}

	handle := f.store.Watch(key)
	return success(map[string]interface{}{
		"watch_id": handle.ID,
		"key":      handle.Key,
	})
}

// storeFailure maps the store error taxonomy onto tool results.
func storeFailure(err error) (*types.Result, error) {
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		return failure(fmt.Sprintf("resource not found: %s", nf.Key))
	}
	var np *store.NotPermittedError
	if errors.As(err, &np) {
		return failure(fmt.Sprintf("operation not permitted: %s", np.Op))
	}
	return failure(err.Error())
}
