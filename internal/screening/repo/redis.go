package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	errx "github.com/talentscout/screening/internal/core/error"
	"github.com/talentscout/screening/internal/screening/model"
	logx "github.com/talentscout/screening/pkg/logger"
)

// indexKey is the set of all stored session ids, kept so List does not
// need a KEYS scan.
const indexKey = "candidates:index"

// RedisCandidateStore keeps one JSON blob per completed session under
// candidate:<session_id>.
type RedisCandidateStore struct {
	rdb redis.Cmdable
}

func NewRedisCandidateStore(rdb redis.Cmdable) *RedisCandidateStore {
	return &RedisCandidateStore{rdb: rdb}
}

func (s *RedisCandidateStore) candidateKey(sessionID string) string {
	return fmt.Sprintf("candidate:%s", sessionID)
}

func (s *RedisCandidateStore) Save(ctx context.Context, record *model.CandidateRecord) (string, error) {
	b, err := json.Marshal(record)
	if err != nil {
		logx.Error().Err(err).Str("session_id", record.SessionID).Msg("failed to marshal candidate record")
		return "", fmt.Errorf("marshal candidate record: %w", err)
	}

	key := s.candidateKey(record.SessionID)
	if err := s.rdb.Set(ctx, key, b, 0).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to write candidate record to redis")
		return "", errx.WrapRedis(err)
	}
	if err := s.rdb.SAdd(ctx, indexKey, record.SessionID).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to index candidate record")
		return "", errx.WrapRedis(err)
	}
	return key, nil
}

func (s *RedisCandidateStore) Load(ctx context.Context, sessionID string) (*model.CandidateRecord, error) {
	key := s.candidateKey(sessionID)
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, errx.WrapRedis(err)
	}

	var record model.CandidateRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("unmarshal candidate record %s: %w", sessionID, err)
	}
	return &record, nil
}

func (s *RedisCandidateStore) List(ctx context.Context) ([]*model.CandidateRecord, error) {
	ids, err := s.rdb.SMembers(ctx, indexKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errx.WrapRedis(err)
	}

	records := make([]*model.CandidateRecord, 0, len(ids))
	for _, id := range ids {
		record, err := s.Load(ctx, id)
		if err != nil {
			// An indexed id without a record is stale; skip it.
			logx.Warn().Err(err).Str("session_id", id).Msg("skipping unreadable candidate record")
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	return records, nil
}

var _ model.CandidateStore = (*RedisCandidateStore)(nil)
