package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const emailVerificationPurpose = "email_verification"

// EmailTokenManager issues the signed tokens embedded in verification links.
type EmailTokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewEmailTokenManager creates a verification token manager.
func NewEmailTokenManager(secret, issuer string, ttl time.Duration) *EmailTokenManager {
	return &EmailTokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source.
func (m *EmailTokenManager) WithClock(now func() time.Time) *EmailTokenManager {
	m.now = now
	return m
}

type emailClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

// EmailClaims is the verified content of a verification token.
type EmailClaims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Issue signs a token binding userID to email. It returns the token and its expiry.
func (m *EmailTokenManager) Issue(userID, email string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := emailClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email:   email,
		Purpose: emailVerificationPurpose,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature, issuer, purpose and expiry of a token.
func (m *EmailTokenManager) Parse(token string) (*EmailClaims, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	parsed, err := jwt.ParseWithClaims(token, &emailClaims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*emailClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Purpose != emailVerificationPurpose {
		return nil, fmt.Errorf("unexpected token purpose %q", claims.Purpose)
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, fmt.Errorf("token is missing subject or email")
	}

	return &EmailClaims{
		UserID:    claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex string.
// Only the hash of a verification token is stored.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
