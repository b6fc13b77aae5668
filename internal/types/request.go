package types

// RenameRequest asks the shell to move a session resource to a new key.
type RenameRequest struct {
	OldKey string `json:"old_key" binding:"required"`
	NewKey string `json:"new_key" binding:"required"`
}

// DiscoverRequest asks the service registry for relevant services.
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
}

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params" binding:"required"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}
