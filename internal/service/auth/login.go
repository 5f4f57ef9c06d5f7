package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/pkg/ctxutil"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	User         *domain.User
	SessionToken string
}

// Login exchanges an institutional session marker for a session token.
// The user is created on first login; later logins refresh the profile.
func (s *Service) Login(ctx context.Context, marker string) (*LoginResult, error) {
	marker = strings.TrimSpace(marker)
	if marker == "" {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.Profile(ctx, marker)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login fetch profile: %w", err)
	}
	if strings.TrimSpace(profile.Matric) == "" {
		s.log.WarnContext(ctx, "institution profile has no matric")
		return nil, domain.ErrUnauthorized
	}

	candidate := &domain.User{
		ID:    strings.TrimSpace(profile.Matric),
		Name:  strings.TrimSpace(profile.Name),
		Email: strings.ToLower(strings.TrimSpace(profile.Email)),
	}
	if img := strings.TrimSpace(profile.Image); img != "" {
		candidate.ImageURL = &img
	}

	user, err := s.users.Upsert(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("auth.Login upsert user: %w", err)
	}

	token, err := s.sessions.Issue(domain.Identity{
		UserID:    user.ID,
		SessionID: marker,
		Name:      user.Name,
		Email:     user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))

	return &LoginResult{User: user, SessionToken: token}, nil
}

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
