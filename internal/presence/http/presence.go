package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/rollcall/internal/presence/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// PresenceHandler serves the caller's own presence.
type PresenceHandler struct {
	Presence *service.PresenceService
	Audit    *service.AuditService
	Sessions *service.SessionService
	Cookie   CookieConfig
}

type transitionFunc func(context.Context, service.TransitionRequest) (service.TransitionResult, error)

// HandleCheckIn handles POST /v1/presence/check-in
//
//	@Summary		Check in
//	@Description	Checks the caller into a location, appends one audit record and returns the
//	@Description	caller's credential re-signed with the new location.
//	@Tags			Presence
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.TransitionRequest	true	"Location and optional action time"
//	@Success		201		{object}	rollcallsdk.TransitionResponse
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"location_required, already_checked_in or presence_changed"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Failure		404		{object}	rollcallsdk.ErrorResponse	"location_not_found"
//	@Router			/v1/presence/check-in [post].
func (h *PresenceHandler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Presence.CheckIn)
}

// HandleUpdateLocation handles POST /v1/presence/update-location
//
//	@Summary		Update location
//	@Description	Moves a checked in caller to another location.
//	@Tags			Presence
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.TransitionRequest	true	"Location and optional action time"
//	@Success		201		{object}	rollcallsdk.TransitionResponse
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"location_required, already_at_location, no_active_check_in or presence_changed"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Failure		404		{object}	rollcallsdk.ErrorResponse	"location_not_found"
//	@Router			/v1/presence/update-location [post].
func (h *PresenceHandler) HandleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Presence.UpdateLocation)
}

// HandleCheckOut handles POST /v1/presence/check-out
//
//	@Summary	Check out
//	@Tags		Presence
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		rollcallsdk.TransitionRequest	false	"Optional action time"
//	@Success	201		{object}	rollcallsdk.TransitionResponse
//	@Failure	400		{object}	rollcallsdk.ErrorResponse	"no_active_check_in or presence_changed"
//	@Failure	401		{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Router		/v1/presence/check-out [post].
func (h *PresenceHandler) HandleCheckOut(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Presence.CheckOut)
}

func (h *PresenceHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	ctx := r.Context()
	s, ok := requireSession(w, r)
	if !ok {
		return
	}

	var body rollcallsdk.TransitionRequest
	if err := httpx.DecodeJSON(r, &body); err != nil {
		rollcallsdk.ErrInvalidBody.WriteError(w)
		return
	}

	res, err := fn(ctx, service.TransitionRequest{
		UserID:     s.Claims.Subject,
		LocationID: body.LocationID,
		ActionTime: body.ActionTime,
		Client: service.ClientInfo{
			IP:        httpx.ClientIP(r),
			UserAgent: r.UserAgent(),
		},
	})
	if err != nil {
		selfError(w, r, err)
		return
	}

	// The transition is committed; a failed resync leaves the caller with
	// their old credential and a stale cached location.
	token := s.Token
	cred, err := h.Sessions.Resync(ctx, s.Claims, res.User.CurrentLocationID)
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to resync session", slog.Any("error", err))
	} else {
		token = cred.Token
		if s.FromCookie {
			h.Cookie.set(w, cred.Token, cred.ExpiresAt())
		}
	}

	httpx.WriteJSON(w, http.StatusCreated, rollcallsdk.TransitionResponse{
		AuditRecord:     toRecord(res.Record),
		CurrentLocation: toLocationPtr(res.Location),
		Session:         token,
	})
}

// HandleCurrent handles GET /v1/presence
//
//	@Summary		Current presence
//	@Description	Returns the caller's presence as stored, not as cached in the credential.
//	@Tags			Presence
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	rollcallsdk.PresenceResponse
//	@Failure		401	{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Router			/v1/presence [get].
func (h *PresenceHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r)
	if !ok {
		return
	}

	view, err := h.Presence.Current(r.Context(), s.Claims.Subject)
	if err != nil {
		selfError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.PresenceResponse{
		Presence:   string(view.User.Presence),
		Location:   toLocationPtr(view.Location),
		LastLogin:  toLoginInfo(view.User.LastLogin),
		LastLogout: view.User.LastLogout,
	})
}

// HandleLocations handles GET /v1/presence/locations
//
//	@Summary	Location picker
//	@Tags		Presence
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	rollcallsdk.LocationOptions
//	@Failure	401	{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Router		/v1/presence/locations [get].
func (h *PresenceHandler) HandleLocations(w http.ResponseWriter, r *http.Request) {
	ls, err := h.Presence.Locations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.LocationOptions{Locations: toLocationOptions(ls)})
}

// HandleTimeline handles GET /v1/presence/timeline
//
//	@Summary	Own timeline
//	@Tags		Presence
//	@Security	BearerAuth
//	@Produce	json
//	@Param		locationId	query		string	false	"Location filter"
//	@Param		dateFrom	query		string	false	"Inclusive lower bound, RFC 3339 or YYYY-MM-DD"
//	@Param		dateTo		query		string	false	"Inclusive upper bound, RFC 3339 or YYYY-MM-DD"
//	@Param		page		query		int		false	"Page number, 1-based"
//	@Param		pageSize	query		int		false	"Page size, at most 100"
//	@Success	200			{object}	rollcallsdk.AccessLogPage
//	@Failure	400			{object}	rollcallsdk.ErrorResponse	"Invalid filter"
//	@Failure	401			{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Router		/v1/presence/timeline [get].
func (h *PresenceHandler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r)
	if !ok {
		return
	}

	page, err := h.Audit.OwnTimeline(r.Context(), s.Claims.Subject, auditFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPage(page))
}
