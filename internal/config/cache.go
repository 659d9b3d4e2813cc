package config

import (
	"strings"
	"time"
)

// CacheConfig defines settings for the response cache middleware
// that sits in front of the read-only programme and browse
// endpoints. When Enabled is false or no Redis client is available,
// caching is disabled. Methods lists the HTTP methods to cache; TTL
// is the entry lifetime; KeyStrategy decides which request parts
// form the cache key.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig builds a CacheConfig from the environment with
// defaults suited to programme queries: short TTL, GET only.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      parseMethods(envStr("CACHE_METHODS", "GET")),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		KeyStrategy:  envStr("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}

// getenv returns the value of key or def when unset. Shared by the
// loaders in this package.
func getenv(key, def string) string {
	return envStr(key, def)
}
