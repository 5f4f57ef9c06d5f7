package domain

import (
	"strings"
	"time"
)

// User is an account keyed by the institutional matric number.
type User struct {
	ID                 string
	Name               string
	Email              string
	InstitutionalEmail *string
	ImageURL           *string
	EmailVerified      bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Identity is the resolved caller of a request.
type Identity struct {
	UserID    string
	SessionID string
	Name      string
	Email     string
}

// VerificationToken is the stored hash of an outstanding e-mail verification token.
type VerificationToken struct {
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	IsValid   bool
	CreatedAt time.Time
}

// IsExpired returns true if the token has expired relative to now.
func (t *VerificationToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// HasEmailDomain reports whether email belongs to domain, case-insensitively.
func HasEmailDomain(email, domain string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	domain = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(domain), "@"))
	if domain == "" {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && email[at+1:] == domain
}
