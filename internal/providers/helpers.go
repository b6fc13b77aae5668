package providers

import "github.com/sessionfs/sessionfs/internal/types"

// success builds a successful tool result
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// failure builds a failed tool result
func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
