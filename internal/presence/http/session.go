package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/presence/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
)

func (c CookieConfig) set(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c CookieConfig) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// requireSession returns the caller's session or writes a 401.
func requireSession(w http.ResponseWriter, r *http.Request) (httpx.Session, bool) {
	s, ok := httpx.SessionFromContext(r.Context())
	if !ok || s.Claims.Subject == "" {
		rollcallsdk.ErrUnauthenticated.WriteError(w)
		return httpx.Session{}, false
	}
	return s, true
}

// SessionHandler handles login, logout and the caller's MFA settings.
type SessionHandler struct {
	Sessions *service.SessionService
	MFA      *service.MFAService
	Cookie   CookieConfig
}

// HandleLogin handles POST /v1/session/login
//
//	@Summary		Log in
//	@Description	Authenticates with email and password, plus a TOTP code when MFA is enabled.
//	@Description	The credential is returned in the body and set as the session cookie.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	rollcallsdk.SessionResponse		"Session credential"
//	@Failure		400		{object}	rollcallsdk.ErrorResponse		"Invalid request body"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse		"Invalid credentials or one-time code"
//	@Failure		403		{object}	rollcallsdk.ErrorResponse		"Account inactive"
//	@Failure		429		{object}	rollcallsdk.ErrorResponse		"Too many attempts"
//	@Router			/v1/session/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		rollcallsdk.ErrInvalidBody.WriteError(w)
		return
	}

	cred, user, err := h.Sessions.Login(r.Context(), service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
		OTP:      req.OTP,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.Cookie.set(w, cred.Token, cred.ExpiresAt())
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.SessionResponse{
		Session:   cred.Token,
		ExpiresAt: cred.ExpiresAt(),
		User:      toUser(user),
	})
}

// HandleLogout handles POST /v1/session/logout
//
//	@Summary	Log out
//	@Tags		Session
//	@Security	BearerAuth
//	@Success	204	"Logged out"
//	@Failure	401	{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Router		/v1/session/logout [post].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r)
	if !ok {
		return
	}
	h.Sessions.Logout(r.Context(), s.Claims)
	h.Cookie.clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleCurrent handles GET /v1/session
//
//	@Summary		Current session
//	@Description	Describes the caller's session. The account is re-read, so a deleted or
//	@Description	deactivated user is rejected even though the credential is still valid.
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	rollcallsdk.SessionInfo
//	@Failure		401	{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Failure		403	{object}	rollcallsdk.ErrorResponse	"Account inactive"
//	@Router			/v1/session [get].
func (h *SessionHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r)
	if !ok {
		return
	}

	user, err := h.Sessions.Current(r.Context(), s.Claims)
	if err != nil {
		writeError(w, r, err)
		return
	}

	info := rollcallsdk.SessionInfo{
		SessionID:  s.Claims.SID,
		LocationID: s.Claims.LocationID,
		AMR:        s.Claims.AMR,
		User:       toUser(user),
	}
	if s.Claims.ExpiresAt != nil {
		info.ExpiresAt = s.Claims.ExpiresAt.Time
	}
	httpx.WriteJSON(w, http.StatusOK, info)
}

// HandleMFAEnroll handles POST /v1/session/mfa/enroll
//
//	@Summary		Start TOTP enrollment
//	@Description	Generates a TOTP secret. MFA is enabled once a code is verified.
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	rollcallsdk.MFAEnrollResponse
//	@Failure		400	{object}	rollcallsdk.ErrorResponse	"MFA already enabled"
//	@Failure		401	{object}	rollcallsdk.ErrorResponse	"Missing or invalid session"
//	@Router			/v1/session/mfa/enroll [post].
func (h *SessionHandler) HandleMFAEnroll(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r)
	if !ok {
		return
	}

	enr, err := h.MFA.EnrollTOTP(r.Context(), s.Claims.Subject)
	if err != nil {
		selfError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.MFAEnrollResponse{
		Secret:  enr.Secret,
		URL:     enr.URL,
		Issuer:  enr.Issuer,
		Account: enr.Account,
	})
}

// HandleMFAVerify handles POST /v1/session/mfa/verify
//
//	@Summary	Enable MFA
//	@Tags		Session
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	rollcallsdk.MFACodeRequest	true	"TOTP code"
//	@Success	204		"MFA enabled"
//	@Failure	400		{object}	rollcallsdk.ErrorResponse	"Not enrolled or already enabled"
//	@Failure	401		{object}	rollcallsdk.ErrorResponse	"Invalid code or session"
//	@Router		/v1/session/mfa/verify [post].
func (h *SessionHandler) HandleMFAVerify(w http.ResponseWriter, r *http.Request) {
	h.withCode(w, r, h.MFA.VerifyTOTP)
}

// HandleMFADisable handles DELETE /v1/session/mfa
//
//	@Summary	Disable MFA
//	@Tags		Session
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	rollcallsdk.MFACodeRequest	true	"Current TOTP code"
//	@Success	204		"MFA disabled"
//	@Failure	400		{object}	rollcallsdk.ErrorResponse	"MFA not enabled"
//	@Failure	401		{object}	rollcallsdk.ErrorResponse	"Invalid code or session"
//	@Router		/v1/session/mfa [delete].
func (h *SessionHandler) HandleMFADisable(w http.ResponseWriter, r *http.Request) {
	h.withCode(w, r, h.MFA.Disable)
}

func (h *SessionHandler) withCode(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, userID, code string) error,
) {
	s, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req rollcallsdk.MFACodeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		rollcallsdk.ErrInvalidBody.WriteError(w)
		return
	}

	if err := fn(r.Context(), s.Claims.Subject, req.Code); err != nil {
		selfError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
