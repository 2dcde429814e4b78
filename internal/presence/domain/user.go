package domain

import "time"

// AccountStatus controls whether a user may sign in.
type AccountStatus string

const (
	StatusActive   AccountStatus = "ACTIVE"
	StatusInactive AccountStatus = "INACTIVE"
)

func (s AccountStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Presence is whether a user is currently checked in somewhere.
type Presence string

const (
	PresencePresent Presence = "PRESENT"
	PresenceAbsent  Presence = "ABSENT"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // argon2id, PHC encoded
	Role         Role
	Status       AccountStatus

	// Presence is ABSENT exactly when CurrentLocationID is empty. Only the
	// presence transitions write these two fields.
	Presence          Presence
	CurrentLocationID string

	LastLogin  *LoginInfo
	LastLogout *time.Time

	MFAEnabled *time.Time
	MFASecret  *string // base32 TOTP secret

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoginInfo is recorded on every check in.
type LoginInfo struct {
	At        time.Time
	IP        string
	UserAgent string
	Browser   string
	OS        string
	Device    string
}

// IsPresent reports whether the user is checked in.
func (u User) IsPresent() bool { return u.CurrentLocationID != "" }

// PresenceChange is the compare-and-swap applied by a transition. The
// update only lands while the stored location still equals FromLocationID.
type PresenceChange struct {
	UserID         string
	FromLocationID string
	ToLocationID   string // empty means check out

	Login  *LoginInfo
	Logout *time.Time
}

// UserPatch holds the administrative edits to a user. Nil fields are left
// unchanged. Presence fields are deliberately absent.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *Role
	Status       *AccountStatus
}
