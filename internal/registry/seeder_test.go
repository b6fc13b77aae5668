package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionfs/sessionfs/internal/logging"
	"github.com/sessionfs/sessionfs/internal/types"
)

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSeederDefaults(t *testing.T) {
	s := NewSeeder("my-session", "", logging.NewNop())

	records := s.Seed()
	require.Len(t, records, 3)

	assert.Equal(t, "my-session:/session-1", records[0].Key)
	assert.Equal(t, "Chat Session 1", records[0].Label)
	assert.Equal(t, types.StatusCompleted, records[0].Status)
	require.NotNil(t, records[0].Timing.EndedAt)

	assert.Equal(t, "my-session:/session-2", records[1].Key)
	assert.Equal(t, types.StatusInProgress, records[1].Status)
	assert.Nil(t, records[1].Timing.EndedAt)

	assert.Equal(t, "my-session:/session-3", records[2].Key)
	assert.Equal(t, types.StatusFailed, records[2].Status)
	require.NotNil(t, records[2].Timing.EndedAt)
}

func TestSeederDefaultScheme(t *testing.T) {
	s := NewSeeder("", "", logging.NewNop())

	records := s.Defaults()
	assert.Equal(t, "my-session:/session-1", records[0].Key)
}

func TestSeederLoadsYAML(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "extra.yaml", `
- key: my-session:/imported-1
  label: Imported Session 1
  status: in_progress
  timing:
    started_at: 2026-08-23T10:00:00Z
`)

	s := NewSeeder("my-session", dir, logging.NewNop())
	records := s.Seed()
	require.Len(t, records, 4)
	assert.Equal(t, "my-session:/imported-1", records[3].Key)
	assert.Equal(t, "Imported Session 1", records[3].Label)
	assert.Equal(t, types.StatusInProgress, records[3].Status)
}

func TestSeederLoadsJSON(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "extra.json", `[
  {
    "key": "my-session:/imported-2",
    "label": "Imported Session 2",
    "status": "completed",
    "timing": {
      "started_at": "2026-08-23T10:00:00Z",
      "ended_at": "2026-08-23T11:00:00Z"
    }
  }
]`)

	s := NewSeeder("my-session", dir, logging.NewNop())
	records := s.Seed()
	require.Len(t, records, 4)
	assert.Equal(t, "my-session:/imported-2", records[3].Key)
	assert.Equal(t, types.StatusCompleted, records[3].Status)
}

func TestSeederPrefixesSchemelessKeys(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "bare.yaml", `
- key: bare-session
  label: Bare Session
  status: in_progress
  timing:
    started_at: 2026-08-23T10:00:00Z
`)

	s := NewSeeder("my-session", dir, logging.NewNop())
	records := s.Seed()
	require.Len(t, records, 4)
	assert.Equal(t, "my-session:/bare-session", records[3].Key)
}

func TestSeederRejectsInvalidRecords(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing label", `[{"key": "my-session:/x", "status": "completed", "timing": {"started_at": "2026-08-23T10:00:00Z"}}]`},
		{"bad status", `[{"key": "my-session:/x", "label": "X", "status": "paused", "timing": {"started_at": "2026-08-23T10:00:00Z"}}]`},
		{"ended before started", `[{"key": "my-session:/x", "label": "X", "status": "completed", "timing": {"started_at": "2026-08-23T11:00:00Z", "ended_at": "2026-08-23T10:00:00Z"}}]`},
		{"end time while in progress", `[{"key": "my-session:/x", "label": "X", "status": "in_progress", "timing": {"started_at": "2026-08-23T10:00:00Z", "ended_at": "2026-08-23T11:00:00Z"}}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSeedFile(t, dir, "bad.json", tc.content)

			// A failing file is skipped; the defaults survive.
			s := NewSeeder("my-session", dir, logging.NewNop())
			records := s.Seed()
			assert.Len(t, records, 3)
		})
	}
}

func TestSeederIgnoresUnknownExtensions(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "notes.txt", "not a seed file")

	s := NewSeeder("my-session", dir, logging.NewNop())
	records := s.Seed()
	assert.Len(t, records, 3)
}

func TestSeederMissingDir(t *testing.T) {
	s := NewSeeder("my-session", filepath.Join(t.TempDir(), "absent"), logging.NewNop())
	records := s.Seed()
	assert.Len(t, records, 3)
}
