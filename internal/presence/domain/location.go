package domain

import "time"

type Location struct {
	ID          string
	Name        string
	Address     string
	Latitude    *float64
	Longitude   *float64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LocationPatch holds edits to a location. Nil fields are left unchanged.
// ClearCoordinates removes both coordinates.
type LocationPatch struct {
	Name             *string
	Address          *string
	Latitude         *float64
	Longitude        *float64
	Description      *string
	ClearCoordinates bool
}
