package constants

import (
	"fmt"
	"net/url"
	"time"
)

// Redis key layout.
// Pattern: busline:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_SHORT      = 6 * time.Hour    // 6 hours - for admin listings
	TTL_SEMI_STATIC_QUICK = 15 * time.Minute // 15 minutes - for route lookups
	TTL_DYNAMIC_QUICK     = 2 * time.Minute  // 2 minutes - for seat availability in search results
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "busline"
)

// ================== BUSES MODULE ==================

const (
	CACHE_KEY_BUS_SEARCH = CACHE_PREFIX + ":buses:search" // + :src:X:dst:Y:date:Z
	CACHE_KEY_BUS_LIST   = CACHE_PREFIX + ":buses:list:all"
)

const (
	// Search results carry available_seats, so they go stale with every commit.
	TTL_BUS_SEARCH = TTL_DYNAMIC_QUICK
	TTL_BUS_LIST   = TTL_SEMI_STATIC_QUICK
)

// ================== STAGING MODULE ==================

const (
	KEY_STAGING_SESSION = CACHE_PREFIX + ":staging:session:" // + session-id
)

// ================== RATE LIMIT ==================

const (
	KEY_RATE_LIMIT = CACHE_PREFIX + ":ratelimit:" // + ip:type
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_BUSES_ALL = CACHE_PREFIX + ":buses:*"
)

// ================== HELPER FUNCTIONS ==================

// BuildBusSearchKey -> "busline:buses:search:src:Pune:dst:Mumbai:date:2026-01-10"
// Route names are matched exactly, so the key keeps their case.
func BuildBusSearchKey(source, destination, date string) string {
	return fmt.Sprintf("%s:src:%s:dst:%s:date:%s",
		CACHE_KEY_BUS_SEARCH, normalizeKeyPart(source), normalizeKeyPart(destination), date)
}

func BuildStagingKey(sessionID string) string {
	return KEY_STAGING_SESSION + sessionID
}

func BuildRateLimitKey(clientIP, limitType string) string {
	return KEY_RATE_LIMIT + clientIP + ":" + limitType
}

func normalizeKeyPart(s string) string {
	return url.QueryEscape(s)
}
