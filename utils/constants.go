// File: utils/constants.go
package utils

import "time"

// RevokedTokenPrefix is the prefix used for Redis revoked-token cache keys.
const RevokedTokenPrefix = "auth:revoked:"

// RevokedTokenTTL is the time-to-live for revoked-token entries. It should
// outlive the longest token expiry so a revoked token can never come back.
const RevokedTokenTTL = 80 * time.Hour

// TranslationCachePrefix is the prefix used for translated display projections.
const TranslationCachePrefix = "translate:"

// TranslationCacheTTL bounds how long a translated projection is reused.
const TranslationCacheTTL = 24 * time.Hour
