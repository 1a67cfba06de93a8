package staging

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

// Store persists one staging area per login session.
type Store interface {
	// Get returns nil without error when the session has no area.
	Get(ctx context.Context, sessionID string) (*Area, error)
	Save(ctx context.Context, sessionID string, area *Area) error
	Delete(ctx context.Context, sessionID string) error
}

type redisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStore keeps areas as JSON; every save refreshes the TTL.
func NewRedisStore(client redis.Cmdable, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (*Area, error) {
	raw, err := s.client.Get(ctx, constants.BuildStagingKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("load staging area", err)
	}

	var area Area
	if err := json.Unmarshal(raw, &area); err != nil {
		return nil, apperrors.Storage("decode staging area", err)
	}
	return &area, nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, area *Area) error {
	data, err := json.Marshal(area)
	if err != nil {
		return apperrors.Storage("encode staging area", err)
	}
	if err := s.client.Set(ctx, constants.BuildStagingKey(sessionID), data, s.ttl).Err(); err != nil {
		return apperrors.Storage("save staging area", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, constants.BuildStagingKey(sessionID)).Err(); err != nil {
		return apperrors.Storage("clear staging area", err)
	}
	return nil
}
