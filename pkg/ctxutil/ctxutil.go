// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import "context"

type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// WithUserID stores the matric number of the signed-in student.
func WithUserID(ctx context.Context, matric string) context.Context {
	return context.WithValue(ctx, userIDKey{}, matric)
}

// UserIDFromCtx reports the stored matric number. A blank value counts as
// anonymous.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	matric, _ := ctx.Value(userIDKey{}).(string)
	return matric, matric != ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
