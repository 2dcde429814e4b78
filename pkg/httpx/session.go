package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// SessionToken extracts the raw credential from the Authorization header,
// falling back to the named cookie.
func SessionToken(r *http.Request, cookieName string) (token string, fromCookie bool) {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")), false
	}
	if cookieName == "" {
		return "", false
	}
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}

// IdentifyMiddleware verifies the request credential when one is present
// and attaches it to the context. It never rejects; deciding whether a
// route needs a session is left to the authorization gate.
func IdentifyMiddleware(v jwtx.Verifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, fromCookie := SessionToken(r, cookieName)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				logFromRequest(r).Debug("ignoring invalid session credential", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithSession(r.Context(), Session{Claims: claims, Token: raw, FromCookie: fromCookie})
			ctx = slogx.With(ctx, "user_id", claims.Subject, "role", claims.Role)
			slogx.Annotate(ctx, "user_id", claims.Subject, "role", claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
