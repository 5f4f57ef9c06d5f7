package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/pkg/ctxutil"
)

type sessionResolver interface {
	Resolve(marker, token string) (*domain.Identity, error)
}

// SessionCookies names the cookies a session is resolved from.
type SessionCookies struct {
	Session string
	Marker  string
}

type identityKey struct{}

type userHolderKey struct{}

// userHolder lets Logger, which runs outside Session, see the resolved user.
type userHolder struct {
	userID string
}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, userHolderKey{}, h)
}

// IdentityFromCtx returns the identity resolved by Session, if any.
func IdentityFromCtx(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*domain.Identity)
	return id, ok && id != nil
}

// Session resolves the session cookie pair into an identity. Requests
// without a valid session continue anonymously; handlers that need a user
// check for one.
func Session(resolver sessionResolver, cookies SessionCookies, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := cookieValue(r, cookies.Session)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := resolver.Resolve(cookieValue(r, cookies.Marker), token)
			if err != nil {
				logger.DebugContext(r.Context(), "session rejected", slog.String("reason", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), identity.UserID)
			ctx = context.WithValue(ctx, identityKey{}, identity)
			if h, ok := r.Context().Value(userHolderKey{}).(*userHolder); ok {
				h.userID = identity.UserID
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects anonymous requests with 401.
func RequireSession() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
func RequireAdmin(isAdmin func(userID string) bool, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !isAdmin(userID) {
				logger.WarnContext(r.Context(), "admin access denied",
					slog.String("user_id", userID),
					slog.String("path", r.URL.Path))
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func cookieValue(r *http.Request, name string) string {
	if name == "" {
		return ""
	}
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
