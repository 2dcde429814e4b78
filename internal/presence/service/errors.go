package service

import (
	"errors"
)

// ErrorKind classifies a service failure for the transport layer.
type ErrorKind uint8

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthenticated
	KindForbidden
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	}
	return "internal"
}

// Error is a classified service failure with a machine-readable reason.
// The exported Err* values are compared with errors.Is and may be wrapped
// with extra detail.
type Error struct {
	kind   ErrorKind
	Reason string
	msg    string
}

func newError(kind ErrorKind, reason, msg string) *Error {
	return &Error{kind: kind, Reason: reason, msg: msg}
}

func (e *Error) Error() string   { return e.msg }
func (e *Error) Kind() ErrorKind { return e.kind }

// Kind reports the classification of err, KindInternal for anything that
// is not a service error.
func Kind(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.kind
	}
	return KindInternal
}

// Reason returns the machine-readable reason of err, or "server_error".
func Reason(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Reason
	}
	return "server_error"
}

// Presence transitions.
var (
	ErrLocationRequired  = newError(KindValidation, "location_required", "location id is required")
	ErrLocationNotFound  = newError(KindNotFound, "location_not_found", "location not found")
	ErrAlreadyCheckedIn  = newError(KindConflict, "already_checked_in", "already checked in; check out first")
	ErrAlreadyAtLocation = newError(KindConflict, "already_at_location", "already at this location")
	ErrNoActiveCheckIn   = newError(KindConflict, "no_active_check_in", "not checked in")
	ErrPresenceChanged   = newError(KindConflict, "presence_changed", "presence changed concurrently; retry")
)

// Directory and administration.
var (
	ErrInvalidRequest   = newError(KindValidation, "invalid_request", "invalid request")
	ErrInvalidFilter    = newError(KindValidation, "invalid_filter", "invalid filter")
	ErrLocationInUse    = newError(KindConflict, "location_in_use", "location has users checked in")
	ErrUserNotFound     = newError(KindNotFound, "user_not_found", "user not found")
	ErrEmailTaken       = newError(KindConflict, "email_taken", "email already in use")
	ErrCannotDeleteSelf = newError(KindConflict, "cannot_delete_self", "cannot delete your own account")
)

// Sessions and MFA.
var (
	ErrInvalidCredentials = newError(KindUnauthenticated, "invalid_credentials", "invalid email or password")
	ErrAccountInactive    = newError(KindForbidden, "account_inactive", "account is inactive")
	ErrMFARequired        = newError(KindUnauthenticated, "mfa_required", "one-time code required")
	ErrInvalidOTP         = newError(KindUnauthenticated, "invalid_otp", "invalid one-time code")
	ErrInvalidSession     = newError(KindUnauthenticated, "invalid_session", "session is no longer valid")
	ErrMFANotEnrolled     = newError(KindConflict, "mfa_not_enrolled", "MFA enrollment not started")
	ErrMFAAlreadyEnabled  = newError(KindConflict, "mfa_already_enabled", "MFA already enabled")
	ErrMFANotEnabled      = newError(KindConflict, "mfa_not_enabled", "MFA not enabled")
)
