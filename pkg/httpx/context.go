package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

type ctxKey string

const ctxKeySession ctxKey = "session"

// Session is the verified credential attached to a request.
type Session struct {
	Claims jwtx.Claims
	Token  string

	// FromCookie is set when the credential arrived in the session cookie
	// rather than an Authorization header.
	FromCookie bool
}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKeySession, s)
}

// SessionFromContext returns the session attached by IdentifyMiddleware.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKeySession).(Session)
	return s, ok
}

// UserIDFromContext returns the authenticated subject, or "".
func UserIDFromContext(ctx context.Context) string {
	if s, ok := SessionFromContext(ctx); ok {
		return s.Claims.Subject
	}
	return ""
}

func logFromRequest(r *http.Request) *slog.Logger {
	return slogx.FromContext(r.Context())
}
