package event

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix = "receipt:stripe_event:"
	// Stripe retries a webhook for up to three days.
	processedTTL = 72 * time.Hour
)

type Service interface {
	// MarkProcessed records the event id and reports whether this call was the first to see it.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	// Release forgets an event so a redelivery of it is handled again.
	Release(ctx context.Context, eventID string) error
}

type store interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type service struct {
	store  store
	logger *zap.Logger
}

// NewService deduplicates through Redis; with a nil client every event counts as new.
func NewService(rdb *redis.Client, logger *zap.Logger) Service {
	if rdb == nil {
		logger.Info("Redis not configured, webhook events are not deduplicated")
		return &service{logger: logger}
	}
	return &service{store: rdb, logger: logger}
}

func (s *service) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	if s.store == nil {
		return true, nil
	}

	first, err := s.store.SetNX(ctx, keyPrefix+eventID, time.Now().Unix(), processedTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark event processed: %w", err)
	}

	if !first {
		s.logger.Info("Event is already processed", zap.String("event_id", eventID))
	}
	return first, nil
}

func (s *service) Release(ctx context.Context, eventID string) error {
	if s.store == nil {
		return nil
	}

	if err := s.store.Del(ctx, keyPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("failed to release event: %w", err)
	}
	return nil
}
