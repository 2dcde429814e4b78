package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Action is the kind of presence change an access log records.
type Action uint8

const (
	ActionCheckIn Action = iota + 1
	ActionCheckOut
	ActionUpdateLocation
)

// Actions lists every action in declaration order.
var Actions = []Action{ActionCheckIn, ActionCheckOut, ActionUpdateLocation}

func (a Action) String() string {
	switch a {
	case ActionCheckIn:
		return "CHECK_IN"
	case ActionCheckOut:
		return "CHECK_OUT"
	case ActionUpdateLocation:
		return "UPDATE_LOCATION"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

func (a Action) Valid() bool {
	return a >= ActionCheckIn && a <= ActionUpdateLocation
}

// ParseAction accepts CHECK_IN, check-in, checkIn and similar spellings.
func ParseAction(s string) (Action, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToUpper(strings.TrimSpace(s)))
	switch norm {
	case "CHECKIN":
		return ActionCheckIn, nil
	case "CHECKOUT":
		return ActionCheckOut, nil
	case "UPDATELOCATION":
		return ActionUpdateLocation, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

func (a Action) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid action %d", uint8(a))
	}
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(b []byte) error {
	v, err := ParseAction(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Value stores the action by name.
func (a Action) Value() (driver.Value, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid action %d", uint8(a))
	}
	return a.String(), nil
}

func (a *Action) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		return a.UnmarshalText(v)
	}
	return fmt.Errorf("cannot scan %T into Action", src)
}

// LocationSnapshot is the location as it was when a record was written.
type LocationSnapshot struct {
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// SnapshotOf copies the descriptive fields of l.
func SnapshotOf(l Location) LocationSnapshot {
	return LocationSnapshot{
		Name:      l.Name,
		Address:   l.Address,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}
}

// AccessLog is one immutable audit record.
type AccessLog struct {
	ID         string
	Action     Action
	ActionTime time.Time // caller supplied, defaults to now
	RecordedAt time.Time // server assigned

	// Weak references, cleared when the referent is deleted.
	UserID     string
	LocationID string

	UserName  string
	UserEmail string
	Location  LocationSnapshot

	IP        string
	UserAgent string
	Browser   string
	OS        string
	Device    string

	Country string
	City    string
}

// SortField names the columns an audit query may be ordered by.
type SortField string

const (
	SortActionTime   SortField = "actionTime"
	SortRecordedAt   SortField = "recordedAt"
	SortAction       SortField = "action"
	SortUserName     SortField = "userName"
	SortLocationName SortField = "locationName"
)

func (f SortField) Valid() bool {
	switch f {
	case SortActionTime, SortRecordedAt, SortAction, SortUserName, SortLocationName:
		return true
	}
	return false
}

// Pagination defaults and bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AccessLogQuery selects audit records. Zero values mean "no filter".
type AccessLogQuery struct {
	UserID     string
	LocationID string
	Action     Action
	From       *time.Time // inclusive
	To         *time.Time // inclusive
	Search     string

	Page     int // 1-based
	PageSize int

	SortField SortField
	SortDesc  bool
}

// Offset is the number of rows skipped for the current page.
func (q AccessLogQuery) Offset() int { return (q.Page - 1) * q.PageSize }

// AccessLogPage is one page of results.
type AccessLogPage struct {
	Records    []AccessLog
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// NewAccessLogPage computes TotalPages from total and q.PageSize.
func NewAccessLogPage(records []AccessLog, q AccessLogQuery, total int) AccessLogPage {
	pages := 0
	if q.PageSize > 0 {
		pages = (total + q.PageSize - 1) / q.PageSize
	}
	return AccessLogPage{
		Records:    records,
		Page:       q.Page,
		PageSize:   q.PageSize,
		Total:      total,
		TotalPages: pages,
	}
}
