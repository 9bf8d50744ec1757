// File: utils/auth.go
package utils

import (
	"context"
)

// RevokeToken records the hash of a signed-out token in the auth cache so
// the middleware rejects it until it would have expired anyway.
func RevokeToken(ctx context.Context, token string) error {
	client := GetAuthCacheClient()
	return client.Set(ctx, RevokedTokenPrefix+HashToken(token), "1", RevokedTokenTTL).Err()
}

// IsTokenRevoked reports whether a token has been signed out. A cache error
// counts as revoked.
func IsTokenRevoked(ctx context.Context, token string) bool {
	client := GetAuthCacheClient()
	n, err := client.Exists(ctx, RevokedTokenPrefix+HashToken(token)).Result()
	if err != nil {
		return true
	}
	return n > 0
}
