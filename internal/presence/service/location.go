package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
	"github.com/cenkalti/backoff/v4"
)

type LocationService struct {
	Store   store.Store
	Backoff func() backoff.BackOff
}

// LocationInput is a new location.
type LocationInput struct {
	Name        string
	Address     string
	Latitude    *float64
	Longitude   *float64
	Description string
}

func checkCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidRequest)
	}
	return nil
}

func (s *LocationService) Create(ctx context.Context, in LocationInput) (domain.Location, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.Location{}, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if err := checkCoordinates(in.Latitude, in.Longitude); err != nil {
		return domain.Location{}, err
	}

	l := domain.Location{
		ID:          idx.New().String(),
		Name:        in.Name,
		Address:     strings.TrimSpace(in.Address),
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Description: in.Description,
	}
	if err := s.Store.Locations().CreateLocation(ctx, l); err != nil {
		return domain.Location{}, fmt.Errorf("create location: %w", err)
	}

	slogx.FromContext(ctx).Info("location created",
		slog.String("location_id", l.ID),
		slog.String("name", l.Name),
	)
	return s.Get(ctx, l.ID)
}

func (s *LocationService) Get(ctx context.Context, id string) (domain.Location, error) {
	l, err := s.Store.Locations().GetLocationByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Location{}, ErrLocationNotFound
	}
	return l, err
}

func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.Store.Locations().ListLocations(ctx)
}

func (s *LocationService) Update(ctx context.Context, id string, p domain.LocationPatch) (domain.Location, error) {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return domain.Location{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidRequest)
		}
		p.Name = &name
	}
	if !p.ClearCoordinates && (p.Latitude != nil || p.Longitude != nil) {
		if err := checkCoordinates(p.Latitude, p.Longitude); err != nil {
			return domain.Location{}, err
		}
	}

	if err := s.Store.Locations().UpdateLocation(ctx, id, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Location{}, ErrLocationNotFound
		}
		return domain.Location{}, fmt.Errorf("update location: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes a location nobody is checked into. Past access logs keep
// their snapshot of it.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	err := retryTransient(ctx, s.Backoff, func() error {
		return s.Store.WithTx(ctx, func(tx store.Tx) error {
			return tx.Locations().DeleteLocation(ctx, id)
		})
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrLocationNotFound
	case errors.Is(err, store.ErrConflict):
		return ErrLocationInUse
	case err != nil:
		return fmt.Errorf("delete location: %w", err)
	}

	slogx.FromContext(ctx).Info("location deleted", slog.String("location_id", id))
	return nil
}
