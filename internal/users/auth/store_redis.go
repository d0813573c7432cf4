// Copyright (c) 2026 Arch.krd. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/archkrd/api/internal/platform/apperr"
	"github.com/archkrd/api/internal/platform/constants"
)

// resetTokenRepository implements [ResetTokenRepository] on Redis.
type resetTokenRepository struct {
	client *redis.Client
}

// NewResetTokenRepository constructs the Redis backed reset-token store.
func NewResetTokenRepository(client *redis.Client) ResetTokenRepository {
	return &resetTokenRepository{client: client}
}

func resetKey(tokenHash string) string {
	return constants.RedisPrefixResetToken + tokenHash
}

// Save stores a reset token hash for a user with a TTL.
func (repository *resetTokenRepository) Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {

	if err := repository.client.Set(ctx, resetKey(tokenHash), userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to save reset token: %w", err)
	}

	return nil
}

// Consume retrieves and deletes a reset token in one step.
func (repository *resetTokenRepository) Consume(ctx context.Context, tokenHash string) (string, error) {

	// GETDEL makes the token single-use even under concurrent submissions
	userID, err := repository.client.GetDel(ctx, resetKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("reset_token")
		}
		return "", fmt.Errorf("redis: failed to consume reset token: %w", err)
	}

	return userID, nil
}
