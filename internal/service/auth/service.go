// Package auth implements institutional login and e-mail verification.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/adapter/provider/institution"
	"github.com/heartmarshall/unievent-backend/internal/auth"
	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/ratelimit"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	MarkEmailVerified(ctx context.Context, id, institutionalEmail string) error
}

// tokenRepo defines the verification token repository interface needed by auth service.
type tokenRepo interface {
	Upsert(ctx context.Context, t domain.VerificationToken) error
	GetByUser(ctx context.Context, userID string) (*domain.VerificationToken, error)
	Delete(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// profileProvider resolves an institutional session marker to a profile.
type profileProvider interface {
	Profile(ctx context.Context, marker string) (*institution.Profile, error)
}

// sessionIssuer signs session tokens.
type sessionIssuer interface {
	Issue(identity domain.Identity) (string, error)
}

// emailTokens signs and verifies e-mail verification tokens.
type emailTokens interface {
	Issue(userID, email string) (string, time.Time, error)
	Parse(token string) (*auth.EmailClaims, error)
}

type mailer interface {
	SendVerification(ctx context.Context, to, link string) error
}

type rateLimiter interface {
	Allow(ctx context.Context, key string, limit ratelimit.Limit) bool
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the settings the auth service reads.
type Config struct {
	InstitutionalDomain string
	// VerifyBaseURL is prepended to the verification path in e-mailed links.
	VerifyBaseURL string
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tokens   tokenRepo
	profiles profileProvider
	sessions sessionIssuer
	email    emailTokens
	mail     mailer
	limiter  rateLimiter
	attempts *AttemptTracker
	tx       txManager
	cfg      Config
	now      func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	cfg Config,
	users userRepo,
	tokens tokenRepo,
	profiles profileProvider,
	sessions sessionIssuer,
	email emailTokens,
	mail mailer,
	limiter rateLimiter,
	attempts *AttemptTracker,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		tokens:   tokens,
		profiles: profiles,
		sessions: sessions,
		email:    email,
		mail:     mail,
		limiter:  limiter,
		attempts: attempts,
		tx:       tx,
		cfg:      cfg,
		now:      time.Now,
	}
}
