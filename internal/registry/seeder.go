package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/sessionfs/sessionfs/internal/logging"
	"github.com/sessionfs/sessionfs/internal/types"
)

// Seeder assembles the fixed record set the registry is constructed with.
type Seeder struct {
	scheme   string
	seedsDir string
	logger   *logging.Logger
}

// NewSeeder creates a seeder. seedsDir may be empty, in which case only
// the built-in sample sessions are produced.
func NewSeeder(scheme, seedsDir string, logger *logging.Logger) *Seeder {
	if scheme == "" {
		scheme = types.DefaultScheme
	}
	return &Seeder{scheme: scheme, seedsDir: seedsDir, logger: logger}
}

// Seed returns the built-in sample sessions plus any records loaded from
// seed files. Duplicate keys are resolved by the registry (first wins).
func (s *Seeder) Seed() []types.SessionRecord {
	records := s.Defaults()

	if s.seedsDir != "" {
		loaded, err := s.loadDir()
		if err != nil {
			s.logger.Warn("Failed to load seed files", zap.String("dir", s.seedsDir), zap.Error(err))
		} else {
			records = append(records, loaded...)
		}
	}

	return records
}

// Defaults returns the three built-in sample sessions.
func (s *Seeder) Defaults() []types.SessionRecord {
	now := time.Now()
	hourAgo := now.Add(-time.Hour)
	halfHourAgo := now.Add(-30 * time.Minute)

	return []types.SessionRecord{
		{
			Key:         types.MakeKey(s.scheme, "session-1"),
			Label:       "Chat Session 1",
			Description: "First mock chat session",
			Status:      types.StatusCompleted,
			Timing:      types.Timing{StartedAt: hourAgo, EndedAt: &halfHourAgo},
		},
		{
			Key:         types.MakeKey(s.scheme, "session-2"),
			Label:       "Chat Session 2",
			Description: "Second mock chat session",
			Status:      types.StatusInProgress,
			Timing:      types.Timing{StartedAt: halfHourAgo},
		},
		{
			Key:         types.MakeKey(s.scheme, "session-3"),
			Label:       "Chat Session 3",
			Description: "Third mock chat session",
			Status:      types.StatusFailed,
			Timing:      types.Timing{StartedAt: hourAgo, EndedAt: &now},
		},
	}
}

// loadDir walks the seeds directory and parses every .yaml, .yml, and
// .json file as a list of session records.
func (s *Seeder) loadDir() ([]types.SessionRecord, error) {
	if _, err := os.Stat(s.seedsDir); os.IsNotExist(err) {
		s.logger.Warn("Seeds directory not found", zap.String("dir", s.seedsDir))
		return nil, nil
	}

	var records []types.SessionRecord
	var loaded, failed int

	err := filepath.Walk(s.seedsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		recs, err := s.loadFile(path)
		if err != nil {
			s.logger.Warn("Failed to load seed file", zap.String("file", info.Name()), zap.Error(err))
			failed++
			return nil
		}
		if recs == nil {
			return nil // unrecognized extension
		}

		records = append(records, recs...)
		loaded++
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Seed files processed", zap.Int("loaded", loaded), zap.Int("failed", failed))
	return records, nil
}

// loadFile parses one seed file. Returns (nil, nil) for extensions the
// seeder does not understand.
func (s *Seeder) loadFile(path string) ([]types.SessionRecord, error) {
	var unmarshal func([]byte, interface{}) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".json":
		unmarshal = json.Unmarshal
	default:
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []types.SessionRecord
	if err := unmarshal(data, &records); err != nil {
		return nil, err
	}

	for i := range records {
		rec := &records[i]
		if rec.Key == "" || rec.Label == "" {
			return nil, fmt.Errorf("record %d: key and label are required", i)
		}
		if !rec.Status.Valid() {
			return nil, fmt.Errorf("record %d: invalid status %q", i, rec.Status)
		}
		if rec.Timing.EndedAt != nil && rec.Timing.EndedAt.Before(rec.Timing.StartedAt) {
			return nil, fmt.Errorf("record %d: ended before started", i)
		}
		if rec.Timing.EndedAt != nil && !rec.Status.Terminal() {
			return nil, fmt.Errorf("record %d: end time on non-terminal status %q", i, rec.Status)
		}
		if types.KeyScheme(rec.Key) == "" {
			rec.Key = types.MakeKey(s.scheme, rec.Key)
		}
	}

	return records, nil
}
