// Package repo provides the candidate store implementations: local JSON
// files for single-machine use and Redis for a shared keyed store.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/talentscout/screening/internal/screening/model"
	logx "github.com/talentscout/screening/pkg/logger"
)

// FileCandidateStore writes one indented-JSON file per completed session
// under its data directory, named candidate_<session_id>.json.
type FileCandidateStore struct {
	dir string
}

func NewFileCandidateStore(dir string) *FileCandidateStore {
	return &FileCandidateStore{dir: dir}
}

func (s *FileCandidateStore) recordPath(sessionID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("candidate_%s.json", sessionID))
}

func (s *FileCandidateStore) Save(ctx context.Context, record *model.CandidateRecord) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir %s: %w", s.dir, err)
	}

	b, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate record: %w", err)
	}

	path := s.recordPath(record.SessionID)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		logx.Error().Err(err).Str("path", path).Msg("failed to write candidate record")
		return "", fmt.Errorf("write candidate record %s: %w", record.SessionID, err)
	}
	return path, nil
}

func (s *FileCandidateStore) Load(ctx context.Context, sessionID string) (*model.CandidateRecord, error) {
	path := s.recordPath(sessionID)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidate record %s: %w", sessionID, err)
	}

	var record model.CandidateRecord
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, fmt.Errorf("unmarshal candidate record %s: %w", sessionID, err)
	}
	return &record, nil
}

func (s *FileCandidateStore) List(ctx context.Context) ([]*model.CandidateRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data dir %s: %w", s.dir, err)
	}

	var records []*model.CandidateRecord
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "candidate_") || !strings.HasSuffix(name, ".json") {
			continue
		}

		b, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			logx.Warn().Err(err).Str("file", name).Msg("skipping unreadable candidate file")
			continue
		}
		var record model.CandidateRecord
		if err := json.Unmarshal(b, &record); err != nil {
			logx.Warn().Err(err).Str("file", name).Msg("skipping malformed candidate file")
			continue
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	return records, nil
}

var _ model.CandidateStore = (*FileCandidateStore)(nil)
