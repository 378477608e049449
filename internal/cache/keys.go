package cache

import "strings"

const (
	GlobalKeyPrefix = "compass"

	ServiceSession = "session"
	TypeState      = "state"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	base := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) == 0 {
		return base
	}
	return base + ":" + strings.Join(paramsKey, "_")
}

// SessionStateKey is the key a quiz session's JSON state lives under.
func SessionStateKey(sessionID string) string {
	return GenerateCacheKey(ServiceSession, TypeState, sessionID)
}
