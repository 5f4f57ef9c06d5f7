package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/unievent-backend/internal/domain"
)

// Session resolution failures. Callers treat all of them as "not authenticated".
var (
	ErrMissingCookie   = errors.New("session cookie missing")
	ErrSessionMismatch = errors.New("session id does not match institutional marker")
	ErrSessionTooOld   = errors.New("session older than max age")
)

// SessionManager issues and resolves the locally signed session token that
// pairs with the institutional session marker cookie.
type SessionManager struct {
	secret []byte
	issuer string
	maxAge time.Duration
	now    func() time.Time
}

// NewSessionManager creates a session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret, issuer string, maxAge time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// WithClock replaces the time source. Used by tests to move virtual time.
func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	m.now = now
	return m
}

// MaxAge returns the configured session lifetime.
func (m *SessionManager) MaxAge() time.Duration { return m.maxAge }

type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Issue signs a session token for identity, bound to identity.SessionID.
func (m *SessionManager) Issue(identity domain.Identity) (string, error) {
	if identity.UserID == "" || identity.SessionID == "" {
		return "", fmt.Errorf("issue session: user id and session id are required")
	}

	now := m.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
		SessionID: identity.SessionID,
		Name:      identity.Name,
		Email:     identity.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Resolve validates token against the institutional marker and returns the
// identity it carries. It fails when either value is empty, the signature or
// issuer is wrong, the sid claim differs from marker, or the token is older
// than the max age.
func (m *SessionManager) Resolve(marker, token string) (*domain.Identity, error) {
	if marker == "" || token == "" {
		return nil, ErrMissingCookie
	}

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.SessionID != marker {
		return nil, ErrSessionMismatch
	}

	if claims.IssuedAt == nil || m.now().Sub(claims.IssuedAt.Time) > m.maxAge {
		return nil, ErrSessionTooOld
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return &domain.Identity{
		UserID:    claims.Subject,
		SessionID: claims.SessionID,
		Name:      claims.Name,
		Email:     claims.Email,
	}, nil
}
