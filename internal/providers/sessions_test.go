package providers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionfs/sessionfs/internal/registry"
	"github.com/sessionfs/sessionfs/internal/types"
)

func newTestRegistry() *registry.Manager {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	return registry.NewManager([]types.SessionRecord{
		{
			Key:    "my-session:/session-1",
			Label:  "Chat Session 1",
			Status: types.StatusCompleted,
			Timing: types.Timing{StartedAt: earlier, EndedAt: &now},
		},
		{
			Key:    "my-session:/session-2",
			Label:  "Chat Session 2",
			Status: types.StatusInProgress,
			Timing: types.Timing{StartedAt: earlier},
		},
	})
}

func TestSessionsDefinition(t *testing.T) {
	p := NewSessions(newTestRegistry())

	def := p.Definition()
	assert.Equal(t, "sessions", def.ID)
	assert.Equal(t, types.CategorySessions, def.Category)
	require.Len(t, def.Tools, 3)
	assert.Equal(t, "sessions.list", def.Tools[0].ID)
	assert.Equal(t, "sessions.rename", def.Tools[1].ID)
	assert.Equal(t, "sessions.stats", def.Tools[2].ID)
}

func TestSessionsList(t *testing.T) {
	p := NewSessions(newTestRegistry())

	result, err := p.Execute(context.Background(), "sessions.list", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 2, result.Data["count"])

	records, ok := result.Data["sessions"].([]types.SessionRecord)
	require.True(t, ok)
	assert.Equal(t, "my-session:/session-1", records[0].Key)
}

func TestSessionsRename(t *testing.T) {
	reg := newTestRegistry()
	p := NewSessions(reg)

	result, err := p.Execute(context.Background(), "sessions.rename", map[string]interface{}{
		"old_key": "my-session:/session-1",
		"new_key": "my-session:/moved",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, true, result.Data["renamed"])

	_, ok := reg.Get("my-session:/moved")
	assert.True(t, ok)
}

func TestSessionsRenameNotFound(t *testing.T) {
	p := NewSessions(newTestRegistry())

	result, err := p.Execute(context.Background(), "sessions.rename", map[string]interface{}{
		"old_key": "my-session:/missing",
		"new_key": "my-session:/anywhere",
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "session not found")
}

func TestSessionsRenameMissingParams(t *testing.T) {
	p := NewSessions(newTestRegistry())

	result, err := p.Execute(context.Background(), "sessions.rename", map[string]interface{}{
		"old_key": "my-session:/session-1",
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Contains(t, *result.Error, "new_key parameter required")
}

func TestSessionsStats(t *testing.T) {
	p := NewSessions(newTestRegistry())

	result, err := p.Execute(context.Background(), "sessions.stats", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 2, result.Data["total_sessions"])
}

func TestSessionsUnknownTool(t *testing.T) {
	p := NewSessions(newTestRegistry())

	result, err := p.Execute(context.Background(), "sessions.destroy", nil, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Contains(t, *result.Error, "unknown tool")
}
