package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/rollcall/internal/presence/service"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// statusFor maps a service error kind to its HTTP status. Conflicts are
// reported as 400 so clients treat them like any rejected precondition.
func statusFor(k service.ErrorKind) int {
	switch k {
	case service.KindValidation, service.KindConflict:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindUnauthenticated:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// writeError renders a service error. Internal errors are logged and
// reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(service.Kind(err))
	if status == http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}
	rollcallsdk.NewAPIError(status, service.Reason(err), err.Error()).WriteError(w)
}

// selfError is writeError for operations on the caller's own account: a
// caller whose account is gone holds a dead session.
func selfError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		err = service.ErrInvalidSession
	}
	writeError(w, r, err)
}
