package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/educenter-api/internal/dto"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
)

const resultKeyPrefix = "educenter:auto_enroll:result:"

// ResultRepository keeps the latest auto-enrollment outcome per student in Redis.
// Only outcomes are stored; class snapshots are always read fresh.
type ResultRepository struct {
	client *redis.Client
}

// NewResultRepository constructs a result repository. A nil client behaves as an empty store.
func NewResultRepository(client *redis.Client) *ResultRepository {
	return &ResultRepository{client: client}
}

// ResultKey returns the Redis key holding a student's outcome.
func ResultKey(studentID string) string {
	return resultKeyPrefix + studentID
}

// Get loads the stored outcome or returns appErrors.ErrCacheMiss.
func (r *ResultRepository) Get(ctx context.Context, studentID string) (*dto.AutoEnrollmentResult, error) {
	if r.client == nil {
		return nil, appErrors.ErrCacheMiss
	}
	key := ResultKey(studentID)
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, appErrors.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	var result dto.AutoEnrollmentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("unmarshal result for %s: %w", key, err)
	}
	return &result, nil
}

// Save stores the outcome with the given TTL.
func (r *ResultRepository) Save(ctx context.Context, result *dto.AutoEnrollmentResult, ttl time.Duration) error {
	if r.client == nil || result == nil {
		return nil
	}
	key := ResultKey(result.StudentID)
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result for %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *ResultRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
