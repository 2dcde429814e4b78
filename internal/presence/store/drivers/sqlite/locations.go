package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
)

type locationsRepo struct{ q querier }

const locationColumns = `id, name, address, latitude, longitude, description, created_at, updated_at`

func scanLocation(row rowScanner) (domain.Location, error) {
	var (
		l                    domain.Location
		lat, lng             sql.NullFloat64
		createdAt, updatedAt string
	)
	if err := row.Scan(&l.ID, &l.Name, &l.Address, &lat, &lng, &l.Description, &createdAt, &updatedAt); err != nil {
		return domain.Location{}, mapErr(err)
	}

	l.Latitude = floatPtr(lat)
	l.Longitude = floatPtr(lng)

	var err error
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Location{}, err
	}
	if l.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Location{}, err
	}
	return l, nil
}

func (r *locationsRepo) GetLocationByID(ctx context.Context, id string) (domain.Location, error) {
	return scanLocation(r.q.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = ?`, id))
}

func (r *locationsRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, mapErr(rows.Err())
}

func (r *locationsRepo) CreateLocation(ctx context.Context, l domain.Location) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = l.CreatedAt
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO locations (id, name, address, latitude, longitude, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Address, nullFloat(l.Latitude), nullFloat(l.Longitude), l.Description,
		formatTime(l.CreatedAt), formatTime(l.UpdatedAt),
	)
	return mapErr(err)
}

func (r *locationsRepo) UpdateLocation(ctx context.Context, id string, p domain.LocationPatch) error {
	var set setClause
	if p.Name != nil {
		set.add("name", *p.Name)
	}
	if p.Address != nil {
		set.add("address", *p.Address)
	}
	if p.Description != nil {
		set.add("description", *p.Description)
	}
	switch {
	case p.ClearCoordinates:
		set.add("latitude", nil)
		set.add("longitude", nil)
	default:
		if p.Latitude != nil {
			set.add("latitude", *p.Latitude)
		}
		if p.Longitude != nil {
			set.add("longitude", *p.Longitude)
		}
	}
	if set.empty() {
		_, err := r.GetLocationByID(ctx, id)
		return err
	}
	set.add("updated_at", formatTime(time.Now()))

	res, err := r.q.ExecContext(ctx, `UPDATE locations SET `+set.sql()+` WHERE id = ?`, append(set.args, id)...)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *locationsRepo) DeleteLocation(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `
		DELETE FROM locations
		WHERE id = ?
		  AND NOT EXISTS (SELECT 1 FROM users WHERE current_location_id = ?)`,
		id, id,
	)
	if err != nil {
		return mapErr(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	if _, err := r.GetLocationByID(ctx, id); err != nil {
		return err
	}
	return store.ErrConflict
}
