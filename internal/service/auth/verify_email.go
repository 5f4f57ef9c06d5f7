package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/unievent-backend/internal/auth"
	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/ratelimit"
	"github.com/heartmarshall/unievent-backend/pkg/ctxutil"
)

// VerifyPath is the public path that consumes verification links.
const VerifyPath = "/api/auth/verify-email"

// ErrInvalidToken is returned for verification tokens that are malformed,
// expired, superseded or already used.
var ErrInvalidToken = fmt.Errorf("%w: invalid or expired verification token", domain.ErrValidation)

// RequestEmailVerification e-mails a verification link for an institutional
// address to the authenticated user.
func (s *Service) RequestEmailVerification(ctx context.Context, email string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := ratelimit.Check(ctx, s.limiter, ratelimit.ActionVerifyEmail, userID, ratelimit.VerifyEmail); err != nil {
		return err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.NewValidationError("email", "required")
	}
	if !domain.HasEmailDomain(email, s.cfg.InstitutionalDomain) {
		return domain.NewValidationError("email", "must be an @"+s.cfg.InstitutionalDomain+" address")
	}

	release, wait := s.attempts.Reserve(userID)
	if wait > 0 {
		return domain.NewRateLimitError(ratelimit.ActionVerifyEmail, wait)
	}
	sent := false
	defer func() {
		if !sent {
			release()
		}
	}()

	token, expiresAt, err := s.email.Issue(userID, email)
	if err != nil {
		return fmt.Errorf("auth.RequestEmailVerification issue token: %w", err)
	}

	err = s.tokens.Upsert(ctx, domain.VerificationToken{
		UserID:    userID,
		TokenHash: auth.HashToken(token),
		ExpiresAt: expiresAt,
		IsValid:   true,
	})
	if err != nil {
		return fmt.Errorf("auth.RequestEmailVerification store token: %w", err)
	}

	if err := s.mail.SendVerification(ctx, email, s.verifyLink(token)); err != nil {
		return fmt.Errorf("auth.RequestEmailVerification send mail: %w", err)
	}
	sent = true

	s.log.InfoContext(ctx, "verification e-mail sent", slog.String("user_id", userID))
	return nil
}

// VerifyEmail consumes a verification token and marks the user's
// institutional e-mail as verified.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.email.Parse(token)
	if err != nil {
		s.log.DebugContext(ctx, "verification token rejected", slog.String("reason", err.Error()))
		return ErrInvalidToken
	}

	stored, err := s.tokens.GetByUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("auth.VerifyEmail get token: %w", err)
	}

	hash := auth.HashToken(token)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(stored.TokenHash)) != 1 {
		return ErrInvalidToken
	}
	if !stored.IsValid || stored.IsExpired(s.now()) {
		return ErrInvalidToken
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.MarkEmailVerified(txCtx, claims.UserID, claims.Email); err != nil {
			return fmt.Errorf("mark verified: %w", err)
		}
		if err := s.tokens.Delete(txCtx, claims.UserID); err != nil {
			return fmt.Errorf("delete token: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.VerifyEmail: %w", err)
	}
	s.attempts.Reset(claims.UserID)

	s.log.InfoContext(ctx, "institutional e-mail verified", slog.String("user_id", claims.UserID))
	return nil
}

// CleanupExpiredTokens removes expired verification tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	count, err := s.tokens.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int64("count", count))
	}

	return count, nil
}

func (s *Service) verifyLink(token string) string {
	return strings.TrimRight(s.cfg.VerifyBaseURL, "/") + VerifyPath + "?token=" + url.QueryEscape(token)
}
