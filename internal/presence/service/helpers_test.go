package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/internal/presence/store"
	"github.com/aussiebroadwan/rollcall/internal/presence/store/drivers/sqlite"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
)

const edgeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.0.0"

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "rollcall.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func noWait() backoff.BackOff { return &backoff.ZeroBackOff{} }

// seedUser inserts a user directly, skipping password hashing.
func seedUser(t *testing.T, st store.Store, name string, role domain.Role) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "unused",
		Role:         role,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	got, err := st.Users().GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	return got
}

func seedLocation(t *testing.T, st store.Store, name string) domain.Location {
	t.Helper()
	svc := &LocationService{Store: st}
	lat, lng := -37.8136, 144.9631
	l, err := svc.Create(context.Background(), LocationInput{
		Name:      name,
		Address:   name + " Road",
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)
	return l
}

func countLogs(t *testing.T, st store.Store) int {
	t.Helper()
	_, total, err := st.AccessLogs().QueryAccessLogs(context.Background(), domain.AccessLogQuery{
		Page: 1, PageSize: 1, SortField: domain.SortActionTime,
	})
	require.NoError(t, err)
	return total
}

// requireInvariant checks presence is ABSENT exactly when there is no
// current location.
func requireInvariant(t *testing.T, st store.Store, userID string) domain.User {
	t.Helper()
	u, err := st.Users().GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, u.Presence == domain.PresenceAbsent, u.CurrentLocationID == "")
	return u
}
