package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeKey(t *testing.T) {
	assert.Equal(t, "my-session:/session-1", MakeKey("my-session", "session-1"))
	assert.Equal(t, "my-session:/session-1", MakeKey("my-session", "/session-1"))
	assert.Equal(t, "other:/a/b", MakeKey("other", "a/b"))
}

func TestKeyScheme(t *testing.T) {
	assert.Equal(t, "my-session", KeyScheme("my-session:/session-1"))
	assert.Equal(t, "", KeyScheme("no-separator"))
}

func TestKeyPath(t *testing.T) {
	assert.Equal(t, "/session-1", KeyPath("my-session:/session-1"))
	assert.Equal(t, "bare", KeyPath("bare"))
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusInProgress.Terminal())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusFailed.Valid())
	assert.False(t, Status("paused").Valid())
	assert.False(t, Status("").Valid())
}
