// Package institution fetches the signed-in student's profile from the
// university portal using the institutional session cookie.
package institution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/domain"
)

// Profile is the portal's view of the signed-in student.
type Profile struct {
	Matric string `json:"matric"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Image  string `json:"image"`
}

// Client calls the portal profile endpoint.
type Client struct {
	profileURL string
	cookieName string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a portal client. cookieName is the institutional session
// marker cookie forwarded to the portal.
func New(profileURL, cookieName string, logger *slog.Logger) *Client {
	return &Client{
		profileURL: profileURL,
		cookieName: cookieName,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "institution"),
	}
}

// Profile returns the profile behind marker. A rejected marker yields
// domain.ErrUnauthorized.
func (c *Client) Profile(ctx context.Context, marker string) (*Profile, error) {
	if marker == "" {
		return nil, domain.ErrUnauthorized
	}
	if c.profileURL == "" {
		return nil, errors.New("institution profile url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create profile request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: c.cookieName, Value: marker})
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.log.WarnContext(ctx, "institution rejected session marker", slog.Int("status", resp.StatusCode))
		return nil, domain.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("profile endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p.Matric = strings.TrimSpace(p.Matric)
	if p.Matric == "" {
		return nil, fmt.Errorf("profile has no matric number")
	}
	return &p, nil
}
