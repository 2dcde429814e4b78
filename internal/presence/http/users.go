package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
)

// UserHandler serves user administration.
type UserHandler struct {
	Users *service.UserService
}

func normalize(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

func rolePtr(s *string) *domain.Role {
	if s == nil {
		return nil
	}
	r := domain.Role(normalize(*s))
	return &r
}

func statusPtr(s *string) *domain.AccountStatus {
	if s == nil {
		return nil
	}
	st := domain.AccountStatus(normalize(*s))
	return &st
}

// HandleList handles GET /v1/users
//
//	@Summary	List users
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	rollcallsdk.UserList
//	@Failure	403	{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Router		/v1/users [get].
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	us, err := h.Users.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.UserList{Users: toUsers(us)})
}

// HandleCreate handles POST /v1/users
//
//	@Summary		Create user
//	@Description	Adds a user. When no password is given one is generated and returned once.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.CreateUserRequest	true	"User"
//	@Success		201		{object}	rollcallsdk.CreateUserResponse
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"Invalid request or email taken"
//	@Failure		403		{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Router			/v1/users [post].
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		rollcallsdk.ErrInvalidBody.WriteError(w)
		return
	}

	u, generated, err := h.Users.Create(r.Context(), service.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(normalize(req.Role)),
		Status:   domain.AccountStatus(normalize(req.Status)),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, rollcallsdk.CreateUserResponse{
		User:              toUser(u),
		GeneratedPassword: generated,
	})
}

// HandleGet handles GET /v1/users/{id}
//
//	@Summary	Get user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	rollcallsdk.User
//	@Failure	403	{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Failure	404	{object}	rollcallsdk.ErrorResponse	"Not found"
//	@Router		/v1/users/{id} [get].
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.Users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleUpdate handles PATCH /v1/users/{id}
//
//	@Summary		Update user
//	@Description	Edits a user. Presence is only changed by the presence endpoints.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"User ID"
//	@Param			request	body		rollcallsdk.UpdateUserRequest	true	"Changes"
//	@Success		200		{object}	rollcallsdk.User
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"Invalid request or email taken"
//	@Failure		403		{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Failure		404		{object}	rollcallsdk.ErrorResponse	"Not found"
//	@Router			/v1/users/{id} [patch].
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.UpdateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		rollcallsdk.ErrInvalidBody.WriteError(w)
		return
	}

	u, err := h.Users.Update(r.Context(), r.PathValue("id"), service.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     rolePtr(req.Role),
		Status:   statusPtr(req.Status),
		ResetMFA: req.ResetMFA,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleDelete handles DELETE /v1/users/{id}
//
//	@Summary		Delete user
//	@Description	Removes a user. Their access logs remain.
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204	"Deleted"
//	@Failure		400	{object}	rollcallsdk.ErrorResponse	"cannot_delete_self"
//	@Failure		403	{object}	rollcallsdk.ErrorResponse	"Role not permitted"
//	@Failure		404	{object}	rollcallsdk.ErrorResponse	"Not found"
//	@Router			/v1/users/{id} [delete].
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor := httpx.UserIDFromContext(r.Context())
	if err := h.Users.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
