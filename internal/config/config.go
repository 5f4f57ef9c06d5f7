package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	AI        AIConfig        `yaml:"ai"`
	Mail      MailConfig      `yaml:"mail"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Cache     CacheConfig     `yaml:"cache"`
	Events    EventsConfig    `yaml:"events"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// SlowQuery is the duration above which a query is logged at warn. Zero disables it.
	SlowQuery time.Duration `yaml:"slow_query" env:"DATABASE_SLOW_QUERY" env-default:"500ms"`
}

// AuthConfig holds session, beta-access, cron and verification settings.
type AuthConfig struct {
	SessionSecret       string        `yaml:"session_secret"       env:"AUTH_SESSION_SECRET"       env-required:"true"`
	SessionIssuer       string        `yaml:"session_issuer"       env:"AUTH_SESSION_ISSUER"       env-default:"unievent"`
	SessionMaxAge       time.Duration `yaml:"session_max_age"      env:"AUTH_SESSION_MAX_AGE"      env-default:"24h"`
	SessionCookie       string        `yaml:"session_cookie"       env:"AUTH_SESSION_COOKIE"       env-default:"session_token"`
	MarkerCookie        string        `yaml:"marker_cookie"        env:"AUTH_MARKER_COOKIE"        env-default:"MOD_AUTH_CAS"`
	CookieSecure        bool          `yaml:"cookie_secure"        env:"AUTH_COOKIE_SECURE"        env-default:"true"`
	ProfileURL          string        `yaml:"profile_url"          env:"AUTH_PROFILE_URL"`
	BetaSecret          string        `yaml:"beta_secret"          env:"AUTH_BETA_SECRET"          env-required:"true"`
	BetaPassword        string        `yaml:"beta_password"        env:"AUTH_BETA_PASSWORD"        env-required:"true"`
	BetaCookie          string        `yaml:"beta_cookie"          env:"AUTH_BETA_COOKIE"          env-default:"beta_access"`
	BetaTTL             time.Duration `yaml:"beta_ttl"             env:"AUTH_BETA_TTL"             env-default:"24h"`
	BetaAttemptsPerMin  int           `yaml:"beta_attempts_per_min" env:"AUTH_BETA_ATTEMPTS_PER_MIN" env-default:"10"`
	CronSecret          string        `yaml:"cron_secret"          env:"AUTH_CRON_SECRET"          env-required:"true"`
	EmailTokenSecret    string        `yaml:"email_token_secret"   env:"AUTH_EMAIL_TOKEN_SECRET"   env-required:"true"`
	EmailTokenTTL       time.Duration `yaml:"email_token_ttl"      env:"AUTH_EMAIL_TOKEN_TTL"      env-default:"1h"`
	InstitutionalDomain string        `yaml:"institutional_domain" env:"AUTH_INSTITUTIONAL_DOMAIN" env-default:"live.iium.edu.my"`
	AdminIDsRaw         string        `yaml:"admin_ids"            env:"AUTH_ADMIN_IDS"`

	// AdminIDs is parsed from AdminIDsRaw during validation.
	AdminIDs []string `yaml:"-" env:"-"`
}

// IsAdmin reports whether the matric id belongs to a configured administrator.
func (c AuthConfig) IsAdmin(userID string) bool {
	return userID != "" && slices.Contains(c.AdminIDs, userID)
}

// StorageConfig holds S3-compatible object storage settings.
type StorageConfig struct {
	Endpoint      string `yaml:"endpoint"        env:"STORAGE_ENDPOINT"        env-required:"true"`
	AccessKey     string `yaml:"access_key"      env:"STORAGE_ACCESS_KEY"      env-required:"true"`
	SecretKey     string `yaml:"secret_key"      env:"STORAGE_SECRET_KEY"      env-required:"true"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_BUCKET"          env-default:"event-posters"`
	Region        string `yaml:"region"          env:"STORAGE_REGION"`
	UseSSL        bool   `yaml:"use_ssl"         env:"STORAGE_USE_SSL"         env-default:"true"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
}

// AIConfig holds the moderation and embedding provider settings.
type AIConfig struct {
	AnthropicAPIKey string        `yaml:"anthropic_api_key"  env:"AI_ANTHROPIC_API_KEY"  env-required:"true"`
	AnthropicModel  string        `yaml:"anthropic_model"    env:"AI_ANTHROPIC_MODEL"    env-default:"claude-haiku-4-5"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"     env:"AI_GEMINI_API_KEY"     env-required:"true"`
	GeminiModel     string        `yaml:"gemini_model"       env:"AI_GEMINI_MODEL"       env-default:"text-embedding-004"`
	GeminiBaseURL   string        `yaml:"gemini_base_url"    env:"AI_GEMINI_BASE_URL"    env-default:"https://generativelanguage.googleapis.com/v1beta"`
	RequestTimeout  time.Duration `yaml:"request_timeout"    env:"AI_REQUEST_TIMEOUT"    env-default:"30s"`
	BreakerFailures uint32        `yaml:"breaker_failures"   env:"AI_BREAKER_FAILURES"   env-default:"5"`
	BreakerOpenFor  time.Duration `yaml:"breaker_open_for"   env:"AI_BREAKER_OPEN_FOR"   env-default:"30s"`
	BreakerHalfOpen uint32        `yaml:"breaker_half_open"  env:"AI_BREAKER_HALF_OPEN"  env-default:"1"`
}

// MailConfig holds SMTP delivery settings for verification e-mails.
type MailConfig struct {
	SMTPHost      string `yaml:"smtp_host"       env:"MAIL_SMTP_HOST"`
	SMTPPort      int    `yaml:"smtp_port"       env:"MAIL_SMTP_PORT"       env-default:"587"`
	Username      string `yaml:"username"        env:"MAIL_USERNAME"`
	Password      string `yaml:"password"        env:"MAIL_PASSWORD"`
	From          string `yaml:"from"            env:"MAIL_FROM"            env-default:"no-reply@unievent.local"`
	PublicBaseURL string `yaml:"public_base_url" env:"MAIL_PUBLIC_BASE_URL" env-default:"http://localhost:3000"`
}

// RateLimitConfig selects the limiter backend.
type RateLimitConfig struct {
	Backend         string        `yaml:"backend"          env:"RATELIMIT_BACKEND"          env-default:"memory"`
	RedisAddr       string        `yaml:"redis_addr"       env:"RATELIMIT_REDIS_ADDR"`
	RedisPassword   string        `yaml:"redis_password"   env:"RATELIMIT_REDIS_PASSWORD"`
	RedisPrefix     string        `yaml:"redis_prefix"     env:"RATELIMIT_REDIS_PREFIX"     env-default:"unievent:ratelimit"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}

// CacheConfig holds read-side cache settings.
type CacheConfig struct {
	TTL          time.Duration `yaml:"ttl"           env:"CACHE_TTL"           env-default:"60s"`
	RecommendTTL time.Duration `yaml:"recommend_ttl" env:"CACHE_RECOMMEND_TTL" env-default:"5m"`
	Size         int           `yaml:"size"          env:"CACHE_SIZE"          env-default:"2048"`
}

// EventsConfig holds event-domain settings.
type EventsConfig struct {
	UTCOffset   time.Duration `yaml:"utc_offset"     env:"EVENTS_UTC_OFFSET"     env-default:"8h"`
	PageSize    int           `yaml:"page_size"      env:"EVENTS_PAGE_SIZE"      env-default:"24"`
	MaxPageSize int           `yaml:"max_page_size"  env:"EVENTS_MAX_PAGE_SIZE"  env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
