package http

import (
	"net/http"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
)

// LocationHandler serves the location directory.
type LocationHandler struct {
	Locations *service.LocationService
}

// HandleList handles GET /v1/locations
//
//	@Summary	List locations
//	@Tags		Locations
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	rollcallsdk.LocationList
//	@Failure	401	{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Failure	403	{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Router		/v1/locations [get].
func (h *LocationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ls, err := h.Locations.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.LocationList{Locations: toLocations(ls)})
}

// HandleCreate handles POST /v1/locations
//
//	@Summary	Create location
//	@Tags		Locations
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		rollcallsdk.CreateLocationRequest	true	"Location"
//	@Success	201		{object}	rollcallsdk.Location
//	@Failure	400		{object}	rollcallsdk.ErrorResponse	"Invalid request"
//	@Failure	403		{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Router		/v1/locations [post].
func (h *LocationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.CreateLocationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		rollcallsdk.ErrInvalidBody.WriteError(w)
		return
	}

	l, err := h.Locations.Create(r.Context(), service.LocationInput{
		Name:        req.Name,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toLocation(l))
}

// HandleGet handles GET /v1/locations/{id}
//
//	@Summary	Get location
//	@Tags		Locations
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Location ID"
//	@Success	200	{object}	rollcallsdk.Location
//	@Failure	403	{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Failure	404	{object}	rollcallsdk.ErrorResponse	"Not found"
//	@Router		/v1/locations/{id} [get].
func (h *LocationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	l, err := h.Locations.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLocation(l))
}

// HandleUpdate handles PATCH /v1/locations/{id}
//
//	@Summary		Update location
//	@Description	Edits a location. Existing access logs keep the values recorded at the time.
//	@Tags			Locations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Location ID"
//	@Param			request	body		rollcallsdk.UpdateLocationRequest	true	"Changes"
//	@Success		200		{object}	rollcallsdk.Location
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"Invalid request"
//	@Failure		403		{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Failure		404		{object}	rollcallsdk.ErrorResponse	"Not found"
//	@Router			/v1/locations/{id} [patch].
func (h *LocationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.UpdateLocationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		rollcallsdk.ErrInvalidBody.WriteError(w)
		return
	}

	l, err := h.Locations.Update(r.Context(), r.PathValue("id"), domain.LocationPatch{
		Name:             req.Name,
		Address:          req.Address,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Description:      req.Description,
		ClearCoordinates: req.ClearCoordinates,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLocation(l))
}

// HandleDelete handles DELETE /v1/locations/{id}
//
//	@Summary		Delete location
//	@Description	Removes a location nobody is checked into.
//	@Tags			Locations
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Location ID"
//	@Success		204	"Deleted"
//	@Failure		400	{object}	rollcallsdk.ErrorResponse	"location_in_use"
//	@Failure		403	{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Failure		404	{object}	rollcallsdk.ErrorResponse	"Not found"
//	@Router			/v1/locations/{id} [delete].
func (h *LocationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Locations.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
