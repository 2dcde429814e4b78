package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/events"
	"github.com/aussiebroadwan/rollcall/internal/presence/geo"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
	"github.com/aussiebroadwan/rollcall/pkg/fingerprint"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
	"github.com/cenkalti/backoff/v4"
)

// CheckInPolicy decides what a check in does when the caller is already
// checked in somewhere.
type CheckInPolicy string

const (
	// CheckInAllow moves the caller to the new location and records a
	// check in.
	CheckInAllow CheckInPolicy = "allow"

	// CheckInReject refuses with ErrAlreadyCheckedIn.
	CheckInReject CheckInPolicy = "reject"
)

func ParseCheckInPolicy(s string) (CheckInPolicy, error) {
	switch p := CheckInPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return CheckInAllow, nil
	case CheckInAllow, CheckInReject:
		return p, nil
	}
	return "", fmt.Errorf("unknown check-in policy %q (want allow or reject)", s)
}

// ClientInfo describes where a request came from.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// TransitionRequest is the input to every presence transition. LocationID
// is ignored by CheckOut. ActionTime defaults to now.
type TransitionRequest struct {
	UserID     string
	LocationID string
	ActionTime *time.Time
	Client     ClientInfo
}

// TransitionResult is the committed outcome of a transition.
type TransitionResult struct {
	Record domain.AccessLog
	User   domain.User

	// Location is where the user now is; nil after a check out.
	Location *domain.Location
}

// PresenceView is a user's authoritative presence.
type PresenceView struct {
	User     domain.User
	Location *domain.Location
}

// PresenceService runs the check in, check out and location update
// transitions. Each one reads the user, checks its precondition, appends
// one audit record and swaps the presence fields in a single transaction.
type PresenceService struct {
	Store  store.Store
	Policy CheckInPolicy

	// Optional collaborators.
	Events events.Publisher
	Geo    geo.Resolver

	// Backoff overrides DefaultBackoff for transient store failures.
	Backoff func() backoff.BackOff

	Now func() time.Time
}

func (s *PresenceService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *PresenceService) CheckIn(ctx context.Context, req TransitionRequest) (TransitionResult, error) {
	return s.transition(ctx, domain.ActionCheckIn, req)
}

func (s *PresenceService) UpdateLocation(ctx context.Context, req TransitionRequest) (TransitionResult, error) {
	return s.transition(ctx, domain.ActionUpdateLocation, req)
}

func (s *PresenceService) CheckOut(ctx context.Context, req TransitionRequest) (TransitionResult, error) {
	req.LocationID = ""
	return s.transition(ctx, domain.ActionCheckOut, req)
}

func (s *PresenceService) transition(ctx context.Context, action domain.Action, req TransitionRequest) (TransitionResult, error) {
	log := slogx.FromContext(ctx)
	req.LocationID = strings.TrimSpace(req.LocationID)

	var (
		res  TransitionResult
		from string
	)
	err := retryTransient(ctx, s.Backoff, func() error {
		return s.Store.WithTx(ctx, func(tx store.Tx) error {
			var err error
			res, from, err = s.apply(ctx, tx, action, req)
			return err
		})
	})
	if err != nil {
		if Kind(err) == KindInternal {
			log.Error("presence transition failed",
				slog.String("action", action.String()),
				slog.String("user_id", req.UserID),
				slog.Any("error", err),
			)
		}
		return TransitionResult{}, err
	}

	log.Info("presence changed",
		slog.String("action", action.String()),
		slog.String("user_id", req.UserID),
		slog.String("from_location_id", from),
		slog.String("to_location_id", res.User.CurrentLocationID),
		slog.String("record_id", res.Record.ID),
	)
	s.publish(ctx, res, from)
	return res, nil
}

// apply runs inside the transaction and returns the previous location.
func (s *PresenceService) apply(ctx context.Context, tx store.Tx, action domain.Action, req TransitionRequest) (TransitionResult, string, error) {
	user, err := tx.Users().GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TransitionResult{}, "", ErrUserNotFound
		}
		return TransitionResult{}, "", fmt.Errorf("load user: %w", err)
	}
	from := user.CurrentLocationID

	// target is the location whose snapshot goes into the record: the
	// destination, or for a check out the location being left.
	var target domain.Location
	switch action {
	case domain.ActionCheckIn:
		if req.LocationID == "" {
			return TransitionResult{}, from, ErrLocationRequired
		}
		if target, err = loadLocation(ctx, tx, req.LocationID); err != nil {
			return TransitionResult{}, from, err
		}
		if user.IsPresent() && s.Policy == CheckInReject {
			return TransitionResult{}, from, ErrAlreadyCheckedIn
		}

	case domain.ActionUpdateLocation:
		if req.LocationID == "" {
			return TransitionResult{}, from, ErrLocationRequired
		}
		if target, err = loadLocation(ctx, tx, req.LocationID); err != nil {
			return TransitionResult{}, from, err
		}
		if !user.IsPresent() {
			return TransitionResult{}, from, ErrNoActiveCheckIn
		}
		if target.ID == from {
			return TransitionResult{}, from, ErrAlreadyAtLocation
		}

	case domain.ActionCheckOut:
		if !user.IsPresent() {
			return TransitionResult{}, from, ErrNoActiveCheckIn
		}
		// The foreign key keeps an occupied location from disappearing.
		if target, err = tx.Locations().GetLocationByID(ctx, from); err != nil {
			return TransitionResult{}, from, fmt.Errorf("load current location %s: %w", from, err)
		}

	default:
		return TransitionResult{}, from, fmt.Errorf("unsupported action %v", action)
	}

	now := s.now()
	at := now
	if req.ActionTime != nil {
		at = req.ActionTime.UTC()
	}

	fp := fingerprint.Extract(req.Client.UserAgent)
	var place geo.Place
	if s.Geo != nil {
		place = s.Geo.Lookup(req.Client.IP)
	}

	change := domain.PresenceChange{UserID: user.ID, FromLocationID: from}
	switch action {
	case domain.ActionCheckIn:
		change.ToLocationID = target.ID
		change.Login = &domain.LoginInfo{
			At:        at,
			IP:        req.Client.IP,
			UserAgent: req.Client.UserAgent,
			Browser:   fp.Browser,
			OS:        fp.OS,
			Device:    fp.Device,
		}
	case domain.ActionUpdateLocation:
		change.ToLocationID = target.ID
	case domain.ActionCheckOut:
		change.Logout = &at
	}

	if err := tx.Users().UpdatePresence(ctx, change); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return TransitionResult{}, from, ErrPresenceChanged
		}
		return TransitionResult{}, from, fmt.Errorf("update presence: %w", err)
	}

	rec := domain.AccessLog{
		ID:         idx.NewAt(now).String(),
		Action:     action,
		ActionTime: at,
		RecordedAt: now,
		UserID:     user.ID,
		LocationID: target.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		Location:   domain.SnapshotOf(target),
		IP:         req.Client.IP,
		UserAgent:  req.Client.UserAgent,
		Browser:    fp.Browser,
		OS:         fp.OS,
		Device:     fp.Device,
		Country:    place.Country,
		City:       place.City,
	}
	if err := tx.AccessLogs().AppendAccessLog(ctx, rec); err != nil {
		return TransitionResult{}, from, fmt.Errorf("append access log: %w", err)
	}

	user.CurrentLocationID = change.ToLocationID
	user.Presence = domain.PresenceAbsent
	if change.ToLocationID != "" {
		user.Presence = domain.PresencePresent
	}
	if change.Login != nil {
		user.LastLogin = change.Login
	}
	if change.Logout != nil {
		user.LastLogout = change.Logout
	}
	user.UpdatedAt = now

	res := TransitionResult{Record: rec, User: user}
	if change.ToLocationID != "" {
		res.Location = &target
	}
	return res, from, nil
}

func loadLocation(ctx context.Context, tx store.Tx, id string) (domain.Location, error) {
	l, err := tx.Locations().GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Location{}, ErrLocationNotFound
		}
		return domain.Location{}, fmt.Errorf("load location: %w", err)
	}
	return l, nil
}

func (s *PresenceService) publish(ctx context.Context, res TransitionResult, from string) {
	if s.Events == nil {
		return
	}
	err := s.Events.Publish(ctx, events.PresenceEvent{
		RecordID:           res.Record.ID,
		Action:             res.Record.Action.String(),
		UserID:             res.Record.UserID,
		LocationID:         res.User.CurrentLocationID,
		PreviousLocationID: from,
		ActionTime:         res.Record.ActionTime,
		RecordedAt:         res.Record.RecordedAt,
	})
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to publish presence event",
			slog.String("record_id", res.Record.ID),
			slog.Any("error", err),
		)
	}
}

// Current re-reads the user's presence from the store.
func (s *PresenceService) Current(ctx context.Context, userID string) (PresenceView, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PresenceView{}, ErrUserNotFound
		}
		return PresenceView{}, err
	}

	view := PresenceView{User: user}
	if user.IsPresent() {
		l, err := s.Store.Locations().GetLocationByID(ctx, user.CurrentLocationID)
		if err != nil {
			return PresenceView{}, fmt.Errorf("load current location: %w", err)
		}
		view.Location = &l
	}
	return view, nil
}

// Locations lists the locations a user may check into.
func (s *PresenceService) Locations(ctx context.Context) ([]domain.Location, error) {
	return s.Store.Locations().ListLocations(ctx)
}
