package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
)

// AuditFilter is an access log query as it arrives from a client, before
// validation. Empty fields mean "not set".
type AuditFilter struct {
	UserID     string
	LocationID string
	Action     string
	DateFrom   string // RFC 3339 or YYYY-MM-DD
	DateTo     string // RFC 3339 or YYYY-MM-DD, inclusive
	Search     string
	Page       string
	PageSize   string
	SortField  string
	SortOrder  string // asc or desc
}

const dateOnly = "2006-01-02"

// Normalize validates f and fills in defaults.
func (f AuditFilter) Normalize() (domain.AccessLogQuery, error) {
	q := domain.AccessLogQuery{
		UserID:     strings.TrimSpace(f.UserID),
		LocationID: strings.TrimSpace(f.LocationID),
		Search:     strings.TrimSpace(f.Search),
		Page:       1,
		PageSize:   domain.DefaultPageSize,
		SortField:  domain.SortActionTime,
		SortDesc:   true,
	}

	if s := strings.TrimSpace(f.Action); s != "" {
		a, err := domain.ParseAction(s)
		if err != nil {
			return q, fmt.Errorf("%w: actionType %q", ErrInvalidFilter, s)
		}
		q.Action = a
	}

	var err error
	if q.From, err = parseBound(f.DateFrom, false); err != nil {
		return q, fmt.Errorf("%w: dateFrom: %v", ErrInvalidFilter, err)
	}
	if q.To, err = parseBound(f.DateTo, true); err != nil {
		return q, fmt.Errorf("%w: dateTo: %v", ErrInvalidFilter, err)
	}
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return q, fmt.Errorf("%w: dateFrom is after dateTo", ErrInvalidFilter)
	}

	if s := strings.TrimSpace(f.Page); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return q, fmt.Errorf("%w: page must be a positive integer", ErrInvalidFilter)
		}
		q.Page = n
	}
	if s := strings.TrimSpace(f.PageSize); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return q, fmt.Errorf("%w: pageSize must be a positive integer", ErrInvalidFilter)
		}
		q.PageSize = min(n, domain.MaxPageSize)
	}

	if s := strings.TrimSpace(f.SortField); s != "" {
		sf := domain.SortField(s)
		if !sf.Valid() {
			return q, fmt.Errorf("%w: sortField %q", ErrInvalidFilter, s)
		}
		q.SortField = sf
	}
	switch strings.ToLower(strings.TrimSpace(f.SortOrder)) {
	case "", "desc":
		q.SortDesc = true
	case "asc":
		q.SortDesc = false
	default:
		return q, fmt.Errorf("%w: sortOrder %q", ErrInvalidFilter, f.SortOrder)
	}
	return q, nil
}

// parseBound reads a range bound. A bare date covers the whole UTC day, so
// an upper bound moves to the last nanosecond of that day.
func parseBound(s string, upper bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a date", s)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// AuditService reads the access log. Records are written only by the
// presence transitions.
type AuditService struct {
	Store store.Store
}

// Query returns one page of access logs matching f.
func (s *AuditService) Query(ctx context.Context, f AuditFilter) (domain.AccessLogPage, error) {
	q, err := f.Normalize()
	if err != nil {
		return domain.AccessLogPage{}, err
	}
	return s.run(ctx, q)
}

func (s *AuditService) run(ctx context.Context, q domain.AccessLogQuery) (domain.AccessLogPage, error) {
	records, total, err := s.Store.AccessLogs().QueryAccessLogs(ctx, q)
	if err != nil {
		return domain.AccessLogPage{}, fmt.Errorf("query access logs: %w", err)
	}
	return domain.NewAccessLogPage(records, q, total), nil
}

// timeline narrows f to the fields a timeline honours: the date range,
// pagination and one cross filter. Timelines are always newest first.
func timeline(f AuditFilter) (domain.AccessLogQuery, error) {
	return AuditFilter{
		UserID:     f.UserID,
		LocationID: f.LocationID,
		DateFrom:   f.DateFrom,
		DateTo:     f.DateTo,
		Page:       f.Page,
		PageSize:   f.PageSize,
	}.Normalize()
}

// UserTimeline lists one user's records, optionally at one location.
func (s *AuditService) UserTimeline(ctx context.Context, userID string, f AuditFilter) (domain.AccessLogPage, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AccessLogPage{}, ErrUserNotFound
		}
		return domain.AccessLogPage{}, err
	}
	f.UserID = userID
	q, err := timeline(f)
	if err != nil {
		return domain.AccessLogPage{}, err
	}
	return s.run(ctx, q)
}

// LocationTimeline lists one location's records, optionally for one user.
func (s *AuditService) LocationTimeline(ctx context.Context, locationID string, f AuditFilter) (domain.AccessLogPage, error) {
	if _, err := s.Store.Locations().GetLocationByID(ctx, locationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AccessLogPage{}, ErrLocationNotFound
		}
		return domain.AccessLogPage{}, err
	}
	f.LocationID = locationID
	q, err := timeline(f)
	if err != nil {
		return domain.AccessLogPage{}, err
	}
	return s.run(ctx, q)
}

// OwnTimeline lists the caller's own records. Any user filter in f is
// replaced by the caller.
func (s *AuditService) OwnTimeline(ctx context.Context, userID string, f AuditFilter) (domain.AccessLogPage, error) {
	if userID == "" {
		return domain.AccessLogPage{}, ErrInvalidSession
	}
	f.UserID = userID
	q, err := timeline(f)
	if err != nil {
		return domain.AccessLogPage{}, err
	}
	return s.run(ctx, q)
}
