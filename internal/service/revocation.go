// File: internal/service/revocation.go
package service

import (
	"context"
	"errors"
	"time"

	"daily-diet/internal/cache"
)

const revokedTokenPrefix = "revoked_token:"

// RevokeToken 將 token 的 jti 寫入 Redis，保存到 token 過期為止
func RevokeToken(ctx context.Context, c cache.Cache, claims *CustomClaims) error {
	if claims.ID == "" {
		return errors.New("token has no jti")
	}
	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(timeNow())
		if ttl <= 0 {
			return nil
		}
	}
	return c.Set(ctx, revokedTokenPrefix+claims.ID, 1, ttl).Err()
}

// IsTokenRevoked 檢查 jti 是否已被撤銷
func IsTokenRevoked(ctx context.Context, c cache.Cache, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	n, err := c.Exists(ctx, revokedTokenPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
