package http

import (
	"net/http"

	"github.com/aussiebroadwan/rollcall/internal/presence/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
)

// AuditHandler serves the audit trail to administrators.
type AuditHandler struct {
	Audit *service.AuditService
}

func auditFilter(r *http.Request) service.AuditFilter {
	q := r.URL.Query()
	return service.AuditFilter{
		UserID:     q.Get("userId"),
		LocationID: q.Get("locationId"),
		Action:     q.Get("actionType"),
		DateFrom:   q.Get("dateFrom"),
		DateTo:     q.Get("dateTo"),
		Search:     q.Get("search"),
		Page:       q.Get("page"),
		PageSize:   q.Get("pageSize"),
		SortField:  q.Get("sortField"),
		SortOrder:  q.Get("sortOrder"),
	}
}

// HandleQuery handles GET /v1/access-logs
//
//	@Summary		Query access logs
//	@Description	Filters, searches, sorts and pages the audit trail. Search matches the user's
//	@Description	name or email and the location's name or address as recorded.
//	@Tags			Audit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userId		query		string	false	"User filter"
//	@Param			locationId	query		string	false	"Location filter"
//	@Param			actionType	query		string	false	"Action filter"	Enums(CHECK_IN, CHECK_OUT, UPDATE_LOCATION)
//	@Param			dateFrom	query		string	false	"Inclusive lower bound, RFC 3339 or YYYY-MM-DD"
//	@Param			dateTo		query		string	false	"Inclusive upper bound, RFC 3339 or YYYY-MM-DD"
//	@Param			search		query		string	false	"Free text search"
//	@Param			page		query		int		false	"Page number, 1-based"
//	@Param			pageSize	query		int		false	"Page size, at most 100"
//	@Param			sortField	query		string	false	"Sort column"	Enums(actionTime, recordedAt, action, userName, locationName)
//	@Param			sortOrder	query		string	false	"Sort order"	Enums(asc, desc)
//	@Success		200			{object}	rollcallsdk.AccessLogPage
//	@Failure		400			{object}	rollcallsdk.ErrorResponse	"Invalid filter"
//	@Failure		401			{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Failure		403			{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Router			/v1/access-logs [get].
func (h *AuditHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	page, err := h.Audit.Query(r.Context(), auditFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPage(page))
}

// HandleUserTimeline handles GET /v1/timeline/users/{id}
//
//	@Summary	User timeline
//	@Tags		Audit
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id			path		string	true	"User ID"
//	@Param		locationId	query		string	false	"Location filter"
//	@Param		dateFrom	query		string	false	"Inclusive lower bound"
//	@Param		dateTo		query		string	false	"Inclusive upper bound"
//	@Param		page		query		int		false	"Page number, 1-based"
//	@Param		pageSize	query		int		false	"Page size, at most 100"
//	@Success	200			{object}	rollcallsdk.AccessLogPage
//	@Failure	400			{object}	rollcallsdk.ErrorResponse	"Invalid filter"
//	@Failure	403			{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Failure	404			{object}	rollcallsdk.ErrorResponse	"User not found"
//	@Router		/v1/timeline/users/{id} [get].
func (h *AuditHandler) HandleUserTimeline(w http.ResponseWriter, r *http.Request) {
	page, err := h.Audit.UserTimeline(r.Context(), r.PathValue("id"), auditFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPage(page))
}

// HandleLocationTimeline handles GET /v1/timeline/locations/{id}
//
//	@Summary	Location timeline
//	@Tags		Audit
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id			path		string	true	"Location ID"
//	@Param		userId		query		string	false	"User filter"
//	@Param		dateFrom	query		string	false	"Inclusive lower bound"
//	@Param		dateTo		query		string	false	"Inclusive upper bound"
//	@Param		page		query		int		false	"Page number, 1-based"
//	@Param		pageSize	query		int		false	"Page size, at most 100"
//	@Success	200			{object}	rollcallsdk.AccessLogPage
//	@Failure	400			{object}	rollcallsdk.ErrorResponse	"Invalid filter"
//	@Failure	403			{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Failure	404			{object}	rollcallsdk.ErrorResponse	"Location not found"
//	@Router		/v1/timeline/locations/{id} [get].
func (h *AuditHandler) HandleLocationTimeline(w http.ResponseWriter, r *http.Request) {
	page, err := h.Audit.LocationTimeline(r.Context(), r.PathValue("id"), auditFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPage(page))
}
