package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/presence/authz"
	"github.com/aussiebroadwan/rollcall/internal/presence/service"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"

	_ "github.com/aussiebroadwan/rollcall/api/rollcall" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultCookieName carries the session credential for browsers.
const DefaultCookieName = "rollcall_session"

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	table        *authz.Table
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Cookie CookieConfig

	PresenceService *service.PresenceService
	AuditService    *service.AuditService
	LocationService *service.LocationService
	UserService     *service.UserService
	SessionService  *service.SessionService
	MFAService      *service.MFAService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	table *authz.Table,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		table:        table,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Cookie:       CookieConfig{Name: DefaultCookieName, Secure: true},
	}
	return r
}

// ApplyRoutes registers every route and fixes the middleware chain. Set the
// services and Cookie first.
func (r *Router) ApplyRoutes() {
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.IdentifyMiddleware(r.verifier, r.Cookie.Name),
		Gate(r.table),
	}

	r.registerSession()
	r.registerPresence()
	r.registerAudit()
	r.registerLocations()
	r.registerUsers()
	r.registerSystem()
	r.registerPages()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		rollcallsdk.ErrNotFound.WriteError(w)
	})
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rollcall Presence Service API
//	@version		0.1.0
//	@description	Staff presence tracking: check in, check out and location updates with an append-only audit trail.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/rollcall
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session credential. Format: "Bearer {token}". Browsers use the rollcall_session cookie.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	h := &SessionHandler{
		Sessions: r.SessionService,
		MFA:      r.MFAService,
		Cookie:   r.Cookie,
	}

	// Login is keyed on IP and email to slow password guessing.
	r.Mux.Handle("POST /v1/session/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/session/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleCurrent),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /v1/session/mfa/enroll",
		httpx.Chain(http.HandlerFunc(h.HandleMFAEnroll),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	// Strict to stop brute force of TOTP codes.
	r.Mux.Handle("POST /v1/session/mfa/verify",
		httpx.Chain(http.HandlerFunc(h.HandleMFAVerify),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/session/mfa",
		httpx.Chain(http.HandlerFunc(h.HandleMFADisable),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerPresence() {
	h := &PresenceHandler{
		Presence: r.PresenceService,
		Audit:    r.AuditService,
		Sessions: r.SessionService,
		Cookie:   r.Cookie,
	}

	write := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByUser(httpx.ModerateLimit))
	}
	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByUser(httpx.LenientLimit))
	}

	r.Mux.Handle("POST /v1/presence/check-in", write(h.HandleCheckIn))
	r.Mux.Handle("POST /v1/presence/check-out", write(h.HandleCheckOut))
	r.Mux.Handle("POST /v1/presence/update-location", write(h.HandleUpdateLocation))
	r.Mux.Handle("GET /v1/presence", read(h.HandleCurrent))
	r.Mux.Handle("GET /v1/presence/locations", read(h.HandleLocations))
	r.Mux.Handle("GET /v1/presence/timeline", read(h.HandleTimeline))
}

func (r *Router) registerAudit() {
	h := &AuditHandler{Audit: r.AuditService}

	r.Mux.Handle("GET /v1/access-logs",
		httpx.Chain(http.HandlerFunc(h.HandleQuery), httpx.RateLimitByUser(httpx.LenientLimit)),
	)
	r.Mux.Handle("GET /v1/timeline/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUserTimeline), httpx.RateLimitByUser(httpx.LenientLimit)),
	)
	r.Mux.Handle("GET /v1/timeline/locations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleLocationTimeline), httpx.RateLimitByUser(httpx.LenientLimit)),
	)
}

func (r *Router) registerLocations() {
	h := &LocationHandler{Locations: r.LocationService}

	read := httpx.RateLimitByUser(httpx.LenientLimit)
	write := httpx.RateLimitByUser(httpx.ModerateLimit)

	r.Mux.Handle("GET /v1/locations", httpx.Chain(http.HandlerFunc(h.HandleList), read))
	r.Mux.Handle("POST /v1/locations", httpx.Chain(http.HandlerFunc(h.HandleCreate), write))
	r.Mux.Handle("GET /v1/locations/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), read))
	r.Mux.Handle("PATCH /v1/locations/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), write))
	r.Mux.Handle("DELETE /v1/locations/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), write))
}

func (r *Router) registerUsers() {
	h := &UserHandler{Users: r.UserService}

	read := httpx.RateLimitByUser(httpx.LenientLimit)
	write := httpx.RateLimitByUser(httpx.ModerateLimit)

	r.Mux.Handle("GET /v1/users", httpx.Chain(http.HandlerFunc(h.HandleList), read))
	r.Mux.Handle("POST /v1/users", httpx.Chain(http.HandlerFunc(h.HandleCreate), write))
	r.Mux.Handle("GET /v1/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), read))
	r.Mux.Handle("PATCH /v1/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), write))
	r.Mux.Handle("DELETE /v1/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), write))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPages() {
	h := &PageHandler{Presence: r.PresenceService}

	r.Mux.Handle("GET /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIP(httpx.LenientLimit)),
	)
	r.Mux.Handle("GET /{$}",
		httpx.Chain(http.HandlerFunc(h.HandleHome), httpx.RateLimitByUser(httpx.LenientLimit)),
	)
}
