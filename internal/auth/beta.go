package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidBetaToken is returned for a malformed, forged or expired beta cookie.
var ErrInvalidBetaToken = errors.New("invalid beta access token")

// BetaGate guards the closed beta with a shared password and an HMAC-signed
// cookie of the form "<nonce>:<expiry>.<hex hmac>".
type BetaGate struct {
	secret   []byte
	password string
	ttl      time.Duration
	now      func() time.Time
}

// NewBetaGate creates a beta gate. password may be a bcrypt hash or plaintext.
func NewBetaGate(secret, password string, ttl time.Duration) *BetaGate {
	return &BetaGate{
		secret:   []byte(secret),
		password: password,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the time source.
func (g *BetaGate) WithClock(now func() time.Time) *BetaGate {
	g.now = now
	return g
}

// TTL returns the lifetime of issued tokens.
func (g *BetaGate) TTL() time.Duration { return g.ttl }

// CheckPassword compares candidate with the configured password.
func (g *BetaGate) CheckPassword(candidate string) bool {
	if candidate == "" {
		return false
	}
	if isBcryptHash(g.password) {
		return bcrypt.CompareHashAndPassword([]byte(g.password), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(g.password), []byte(candidate)) == 1
}

// IssueToken returns a signed beta token valid for the gate TTL.
func (g *BetaGate) IssueToken() (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	payload := hex.EncodeToString(nonce) + ":" + strconv.FormatInt(g.now().Add(g.ttl).Unix(), 10)
	return payload + "." + g.sign(payload), nil
}

// ValidateToken recomputes the HMAC, compares it in constant time and
// checks the embedded expiry.
func (g *BetaGate) ValidateToken(token string) error {
	dot := strings.LastIndexByte(token, '.')
	if dot <= 0 || dot == len(token)-1 {
		return ErrInvalidBetaToken
	}
	payload, sig := token[:dot], token[dot+1:]

	got, err := hex.DecodeString(sig)
	if err != nil {
		return ErrInvalidBetaToken
	}
	want, _ := hex.DecodeString(g.sign(payload))
	if !hmac.Equal(got, want) {
		return ErrInvalidBetaToken
	}

	colon := strings.LastIndexByte(payload, ':')
	if colon <= 0 {
		return ErrInvalidBetaToken
	}
	exp, err := strconv.ParseInt(payload[colon+1:], 10, 64)
	if err != nil || !g.now().Before(time.Unix(exp, 0)) {
		return ErrInvalidBetaToken
	}
	return nil
}

func (g *BetaGate) sign(payload string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
