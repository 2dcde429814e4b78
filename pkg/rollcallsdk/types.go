package rollcallsdk

import (
	"net/url"
	"strconv"
	"time"
)

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime,omitempty" example:"1h23m45s"`
	Version string        `json:"version,omitempty" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the critical dependencies.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
	Signer   string `json:"signer" example:"ok"`
}

// ============================================================================
// Session
// ============================================================================

// LoginRequest is the body of POST /v1/session/login. OTP is required for
// users with MFA enabled.
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
	OTP      string `json:"otp,omitempty" example:"123456"`
}

// SessionResponse is returned by a successful login.
type SessionResponse struct {
	Session   string    `json:"session"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// SessionInfo describes the caller's session. LocationID is the location
// cached in the credential; GET /v1/presence is authoritative.
type SessionInfo struct {
	SessionID  string    `json:"sessionId"`
	ExpiresAt  time.Time `json:"expiresAt"`
	LocationID string    `json:"locationId,omitempty"`
	AMR        []string  `json:"amr,omitempty" example:"pwd,otp"`
	User       User      `json:"user"`
}

// MFAEnrollResponse carries a fresh TOTP secret. MFA is enabled once a code
// is verified.
type MFAEnrollResponse struct {
	Secret  string `json:"secret" example:"JBSWY3DPEHPK3PXP"`
	URL     string `json:"url" example:"otpauth://totp/Rollcall:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Rollcall"`
	Issuer  string `json:"issuer" example:"Rollcall"`
	Account string `json:"account" example:"alice@example.com"`
}

// MFACodeRequest carries a TOTP code.
type MFACodeRequest struct {
	Code string `json:"code" example:"123456"`
}

// ============================================================================
// Users
// ============================================================================

// User is a staff member.
type User struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Role              string     `json:"role" enums:"SUPER_ADMIN,MANAGER_ADMIN,PERSONAL"`
	Status            string     `json:"status" enums:"ACTIVE,INACTIVE"`
	Presence          string     `json:"presence" enums:"PRESENT,ABSENT"`
	CurrentLocationID string     `json:"currentLocationId,omitempty"`
	LastLogin         *LoginInfo `json:"lastLogin,omitempty"`
	LastLogout        *time.Time `json:"lastLogout,omitempty"`
	MFAEnabled        bool       `json:"mfaEnabled"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// LoginInfo describes the client of the user's last check in.
type LoginInfo struct {
	At        time.Time `json:"at"`
	IP        string    `json:"ip,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Browser   string    `json:"browser,omitempty"`
	OS        string    `json:"os,omitempty"`
	Device    string    `json:"device,omitempty"`
}

// CreateUserRequest is the body of POST /v1/users. An empty password is
// generated and returned once.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty" enums:"SUPER_ADMIN,MANAGER_ADMIN,PERSONAL"`
	Status   string `json:"status,omitempty" enums:"ACTIVE,INACTIVE"`
}

// CreateUserResponse is returned by POST /v1/users.
type CreateUserResponse struct {
	User              User   `json:"user"`
	GeneratedPassword string `json:"generatedPassword,omitempty"`
}

// UpdateUserRequest is the body of PATCH /v1/users/{id}. Omitted fields are
// unchanged. ResetMFA removes the user's TOTP enrollment.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
	ResetMFA bool    `json:"resetMfa,omitempty"`
}

// UserList is returned by GET /v1/users.
type UserList struct {
	Users []User `json:"users"`
}

// ============================================================================
// Locations
// ============================================================================

// Location is a place staff check into.
type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LocationOption is one entry of the check in picker.
type LocationOption struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// CreateLocationRequest is the body of POST /v1/locations. Coordinates are
// set together or not at all.
type CreateLocationRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Description string   `json:"description,omitempty"`
}

// UpdateLocationRequest is the body of PATCH /v1/locations/{id}.
type UpdateLocationRequest struct {
	Name             *string  `json:"name,omitempty"`
	Address          *string  `json:"address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ClearCoordinates bool     `json:"clearCoordinates,omitempty"`
}

// LocationList is returned by GET /v1/locations.
type LocationList struct {
	Locations []Location `json:"locations"`
}

// LocationOptions is returned by GET /v1/presence/locations.
type LocationOptions struct {
	Locations []LocationOption `json:"locations"`
}

// ============================================================================
// Presence
// ============================================================================

// TransitionRequest is the body of the presence transitions. LocationID is
// ignored on check out; ActionTime defaults to the server clock.
type TransitionRequest struct {
	LocationID string     `json:"locationId,omitempty"`
	ActionTime *time.Time `json:"actionTime,omitempty"`
}

// TransitionResponse is returned by a committed transition. Session is the
// caller's credential re-signed with the new location.
type TransitionResponse struct {
	AuditRecord     AccessLogRecord `json:"auditRecord"`
	CurrentLocation *Location       `json:"currentLocation,omitempty"`
	Session         string          `json:"session"`
}

// PresenceResponse is the caller's presence as stored.
type PresenceResponse struct {
	Presence   string     `json:"presence" enums:"PRESENT,ABSENT"`
	Location   *Location  `json:"location,omitempty"`
	LastLogin  *LoginInfo `json:"lastLogin,omitempty"`
	LastLogout *time.Time `json:"lastLogout,omitempty"`
}

// ============================================================================
// Access logs
// ============================================================================

// AccessLogRecord is one audit record. The user and location fields are
// snapshots taken when the record was written.
type AccessLogRecord struct {
	ID         string    `json:"id"`
	Action     string    `json:"action" enums:"CHECK_IN,CHECK_OUT,UPDATE_LOCATION"`
	ActionTime time.Time `json:"actionTime"`
	RecordedAt time.Time `json:"recordedAt"`

	UserID    string `json:"userId,omitempty"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`

	LocationID        string   `json:"locationId,omitempty"`
	LocationName      string   `json:"locationName"`
	LocationAddress   string   `json:"locationAddress,omitempty"`
	LocationLatitude  *float64 `json:"locationLatitude,omitempty"`
	LocationLongitude *float64 `json:"locationLongitude,omitempty"`

	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Browser   string `json:"browser,omitempty"`
	OS        string `json:"os,omitempty"`
	Device    string `json:"device,omitempty"`
	Country   string `json:"country,omitempty"`
	City      string `json:"city,omitempty"`
}

// Pagination describes one page of results.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// AccessLogPage is returned by the audit and timeline endpoints.
type AccessLogPage struct {
	Records    []AccessLogRecord `json:"records"`
	Pagination Pagination        `json:"pagination"`
}

// AccessLogQuery holds the query parameters of the audit endpoints. Zero
// values are omitted.
type AccessLogQuery struct {
	UserID     string
	LocationID string
	ActionType string
	DateFrom   string
	DateTo     string
	Search     string
	Page       int
	PageSize   int
	SortField  string
	SortOrder  string
}

// Values encodes q as URL query parameters.
func (q AccessLogQuery) Values() url.Values {
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("userId", q.UserID)
	set("locationId", q.LocationID)
	set("actionType", q.ActionType)
	set("dateFrom", q.DateFrom)
	set("dateTo", q.DateTo)
	set("search", q.Search)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	set("sortField", q.SortField)
	set("sortOrder", q.SortOrder)
	return v
}
