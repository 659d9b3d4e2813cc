package repository

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepo stores refresh token hashes. With a Redis client the
// hashes live in Redis under "refresh:<hash>" with a TTL, so every
// instance of the service sees the same sessions; without one the
// repo degrades to process memory, mirroring how the middleware
// degrades when Redis is down.
type TokenRepo struct {
	rdb *redis.Client

	mu    sync.Mutex
	local map[string]localToken
}

type localToken struct {
	userID    string
	expiresAt time.Time
}

// NewTokenRepo builds a TokenRepo. rdb may be nil.
func NewTokenRepo(rdb *redis.Client) *TokenRepo {
	return &TokenRepo{rdb: rdb, local: make(map[string]localToken)}
}

const refreshKeyPrefix = "refresh:"

// StoreRefresh records a refresh token hash for a user until exp.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	if r.rdb != nil {
		return r.rdb.Set(ctx, refreshKeyPrefix+tokenHash, userID, ttl).Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.local[tokenHash] = localToken{userID: userID, expiresAt: exp}
	return nil
}

// ValidateRefresh returns the owning user ID when the hash matches a
// live token, or ErrTokenNotFound.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	if r.rdb != nil {
		userID, err := r.rdb.Get(ctx, refreshKeyPrefix+tokenHash).Result()
		if err == redis.Nil {
			return "", ErrTokenNotFound
		}
		if err != nil {
			return "", err
		}
		return userID, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, ok := r.local[tokenHash]
	if !ok || time.Now().UTC().After(tok.expiresAt) {
		delete(r.local, tokenHash)
		return "", ErrTokenNotFound
	}
	return tok.userID, nil
}

// RevokeByHash invalidates one refresh token. Revoking an unknown
// hash is a no-op.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	if r.rdb != nil {
		return r.rdb.Del(ctx, refreshKeyPrefix+tokenHash).Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.local, tokenHash)
	return nil
}
