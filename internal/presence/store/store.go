package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a conditional write whose condition no longer
	// held: a presence compare-and-swap that lost a race, or deleting a
	// location that is still referenced.
	ErrConflict = errors.New("store: conflict")

	// ErrTransient marks failures worth retrying, such as a busy or
	// locked database.
	ErrTransient = errors.New("store: transient failure")
)

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories; transactional work goes through Tx or WithTx.
type Store interface {
	Users() Users
	Locations() Locations
	AccessLogs() AccessLogs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts u; ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser applies administrative edits and bumps updated_at.
	UpdateUser(ctx context.Context, id string, p domain.UserPatch) error

	// UpdatePresence applies c only if the user's current location still
	// equals c.FromLocationID, returning ErrConflict otherwise.
	UpdatePresence(ctx context.Context, c domain.PresenceChange) error

	// DeleteUser removes the user. Access logs keep their snapshots and
	// lose the reference.
	DeleteUser(ctx context.Context, id string) error

	IsEmpty(ctx context.Context) (bool, error)

	UpdateMFASecret(ctx context.Context, userID, secret string) error
	EnableMFA(ctx context.Context, userID string) error
	DisableMFA(ctx context.Context, userID string) error
}

type Locations interface {
	GetLocationByID(ctx context.Context, id string) (domain.Location, error)

	// ListLocations orders by name.
	ListLocations(ctx context.Context) ([]domain.Location, error)

	CreateLocation(ctx context.Context, l domain.Location) error
	UpdateLocation(ctx context.Context, id string, p domain.LocationPatch) error

	// DeleteLocation removes the location unless a user is currently
	// checked into it (ErrConflict). The check and the delete are one
	// statement.
	DeleteLocation(ctx context.Context, id string) error
}

// AccessLogs is append only; there is no update or delete.
type AccessLogs interface {
	AppendAccessLog(ctx context.Context, l domain.AccessLog) error
	GetAccessLogByID(ctx context.Context, id string) (domain.AccessLog, error)

	// QueryAccessLogs expects a normalised query (page and size set, sort
	// field valid).
	QueryAccessLogs(ctx context.Context, q domain.AccessLogQuery) ([]domain.AccessLog, int, error)
}
