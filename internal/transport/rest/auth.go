package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/service/auth"
	"github.com/heartmarshall/unievent-backend/internal/transport/middleware"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, marker string) (*auth.LoginResult, error)
	Me(ctx context.Context) (*domain.User, error)
	RequestEmailVerification(ctx context.Context, email string) error
	VerifyEmail(ctx context.Context, token string) error
}

type betaGate interface {
	CheckPassword(candidate string) bool
	IssueToken() (string, error)
	ValidateToken(token string) error
	TTL() time.Duration
}

// CookieConfig names the cookies the auth endpoints read and write.
type CookieConfig struct {
	Session       string
	Marker        string
	Beta          string
	Secure        bool
	SessionMaxAge time.Duration
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc     authService
	beta    betaGate
	cookies CookieConfig
	log     *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, beta betaGate, cookies CookieConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, beta: beta, cookies: cookies, log: logger.With("handler", "auth")}
}

type betaRequest struct {
	Password string `json:"password"`
}

type verifyEmailRequest struct {
	Email string `json:"email"`
}

type userResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	InstitutionalEmail *string `json:"institutionalEmail,omitempty"`
	ImageURL           *string `json:"imageUrl,omitempty"`
	EmailVerified      bool    `json:"emailVerified"`
}

// GrantBeta handles POST /api/auth/beta-access.
func (h *AuthHandler) GrantBeta(w http.ResponseWriter, r *http.Request) {
	var req betaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if !h.beta.CheckPassword(req.Password) {
		h.log.InfoContext(r.Context(), "beta access denied", slog.String("remote_addr", r.RemoteAddr))
		writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, err := h.beta.IssueToken()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookies.Beta,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.beta.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	writeOK(w, "beta access granted")
}

// CheckBeta handles GET /api/auth/beta-access.
func (h *AuthHandler) CheckBeta(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(h.cookies.Beta)
	if err != nil || h.beta.ValidateToken(c.Value) != nil {
		writeError(w, http.StatusUnauthorized, "beta access required")
		return
	}
	writeOK(w, "beta access valid")
}

// Login handles POST /api/auth/login. The institutional marker cookie is
// exchanged for a session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var marker string
	if c, err := r.Cookie(h.cookies.Marker); err == nil {
		marker = c.Value
	}

	res, err := h.svc.Login(r.Context(), marker)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookies.Session,
		Value:    res.SessionToken,
		Path:     "/",
		MaxAge:   int(h.cookies.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeData(w, http.StatusOK, toUserResponse(res.User))
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookies.Session,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeOK(w, "logged out")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toUserResponse(user)
	if identity, ok := middleware.IdentityFromCtx(r.Context()); ok && resp.Name == "" {
		resp.Name = identity.Name
	}
	writeData(w, http.StatusOK, resp)
}

// RequestVerification handles POST /api/auth/verify-email.
func (h *AuthHandler) RequestVerification(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RequestEmailVerification(r.Context(), req.Email); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, "verification e-mail sent")
}

// VerifyEmail handles GET /api/auth/verify-email?token=.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.VerifyEmail(r.Context(), r.URL.Query().Get("token")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, "e-mail verified")
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		InstitutionalEmail: u.InstitutionalEmail,
		ImageURL:           u.ImageURL,
		EmailVerified:      u.EmailVerified,
	}
}
