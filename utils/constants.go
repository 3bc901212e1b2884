package utils

import "time"

// AuthCachePrefix is the prefix for cached admin role entries in Redis.
const AuthCachePrefix = "auth:"

// AuthCacheTTL bounds how long a verified role is trusted before the
// gate re-reads the users collection.
const AuthCacheTTL = 10 * time.Minute
