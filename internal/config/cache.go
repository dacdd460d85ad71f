package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig controls the read-through response cache.  Only safe read
// endpoints are cached; mutating routes bypass it entirely.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
	MaxBody int
}

// LoadCacheConfig reads CACHE_* environment variables, falling back to
// sensible defaults when unset.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  envStr("CACHE_PREFIX", "urb:cache"),
		MaxBody: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes", "on":
		return true
	case "0", "false", "FALSE", "no", "off":
		return false
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
