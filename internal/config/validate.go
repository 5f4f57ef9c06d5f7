package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	switch c.RateLimit.Backend {
	case "memory":
	case "redis":
		if strings.TrimSpace(c.RateLimit.RedisAddr) == "" {
			return fmt.Errorf("ratelimit.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("ratelimit.backend must be memory or redis (got %q)", c.RateLimit.Backend)
	}

	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be > 0 (got %d)", c.Cache.Size)
	}
	if c.Cache.TTL <= 0 || c.Cache.RecommendTTL <= 0 {
		return fmt.Errorf("cache ttl values must be > 0")
	}

	if c.Events.UTCOffset <= -24*time.Hour || c.Events.UTCOffset >= 24*time.Hour {
		return fmt.Errorf("events.utc_offset must be within (-24h, 24h) (got %s)", c.Events.UTCOffset)
	}
	if c.Events.PageSize <= 0 || c.Events.PageSize > c.Events.MaxPageSize {
		return fmt.Errorf("events.page_size must be in [1, %d] (got %d)", c.Events.MaxPageSize, c.Events.PageSize)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.SessionSecret) < 32 {
		return fmt.Errorf("session_secret must be at least 32 characters (got %d)", len(a.SessionSecret))
	}
	if len(a.BetaSecret) < 32 {
		return fmt.Errorf("beta_secret must be at least 32 characters (got %d)", len(a.BetaSecret))
	}
	if len(a.EmailTokenSecret) < 32 {
		return fmt.Errorf("email_token_secret must be at least 32 characters (got %d)", len(a.EmailTokenSecret))
	}
	if len(a.CronSecret) < 16 {
		return fmt.Errorf("cron_secret must be at least 16 characters (got %d)", len(a.CronSecret))
	}
	if a.SessionMaxAge <= 0 {
		return fmt.Errorf("session_max_age must be > 0")
	}
	if strings.TrimSpace(a.InstitutionalDomain) == "" {
		return fmt.Errorf("institutional_domain is required")
	}

	a.AdminIDs = ParseList(a.AdminIDsRaw)

	return nil
}

// ParseList splits a comma-separated string, trimming entries and dropping
// empty ones. An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}

	return out
}
