package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/rollcall/internal/presence/authz"
	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// Gate enforces the authorization table before any handler runs. It reads
// the session attached by httpx.IdentifyMiddleware and only looks at the
// role; the location cached in the credential plays no part.
func Gate(t *authz.Table) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var p *authz.Principal
			if s, ok := httpx.SessionFromContext(r.Context()); ok {
				p = &authz.Principal{UserID: s.Claims.Subject, Role: domain.Role(s.Claims.Role)}
			}

			d := t.Evaluate(r.Method, r.URL.Path, p)
			switch d {
			case authz.Allow:
				next.ServeHTTP(w, r)
				return

			case authz.Unauthenticated:
				if httpx.WantsHTML(r) {
					http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
					return
				}
				rollcallsdk.ErrUnauthenticated.WriteError(w)

			case authz.MethodNotAllowed:
				w.Header().Set("Allow", strings.Join(t.AllowedMethods(r.URL.Path), ", "))
				rollcallsdk.ErrMethodNotAllowed.WriteError(w)

			case authz.Forbidden:
				rollcallsdk.ErrForbidden.WriteError(w)

			case authz.RedirectHome:
				http.Redirect(w, r, "/", http.StatusSeeOther)
			}

			slogx.Annotate(r.Context(), "gate", d.String())
			slogx.FromContext(r.Context()).Debug("request rejected by gate",
				slog.String("decision", d.String()),
			)
		})
	}
}
