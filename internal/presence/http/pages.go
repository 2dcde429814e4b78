package http

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/rollcall/internal/presence/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PageHandler serves the two browser pages: the login form and the home
// page showing the caller's presence.
type PageHandler struct {
	Presence *service.PresenceService
}

// safeNext keeps post-login redirects on this origin.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		slogx.FromContext(r.Context()).Error("failed to render page",
			slog.String("page", name),
			slog.Any("error", err),
		)
	}
}

func (h *PageHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	render(w, r, "login.html", struct{ Next string }{Next: safeNext(r.URL.Query().Get("next"))})
}

type homeData struct {
	Name     string
	Role     string
	Present  bool
	Location string
}

func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r)
	if !ok {
		return
	}

	view, err := h.Presence.Current(r.Context(), s.Claims.Subject)
	if err != nil {
		selfError(w, r, err)
		return
	}

	data := homeData{Name: view.User.Name, Role: view.User.Role.String()}
	if view.Location != nil {
		data.Present = true
		data.Location = view.Location.Name
	}
	render(w, r, "home.html", data)
}
