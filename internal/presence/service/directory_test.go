package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestLocationService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LocationService{Store: st, Backoff: noWait}

	_, err := svc.Create(ctx, LocationInput{Name: "  "})
	require.ErrorIs(t, err, ErrInvalidRequest)

	lat := 1.5
	_, err = svc.Create(ctx, LocationInput{Name: "Half", Latitude: &lat})
	require.ErrorIs(t, err, ErrInvalidRequest)

	l, err := svc.Create(ctx, LocationInput{Name: " Depot ", Address: "1 Dock St"})
	require.NoError(t, err)
	require.Equal(t, "Depot", l.Name)
	require.False(t, l.CreatedAt.IsZero())

	empty := ""
	_, err = svc.Update(ctx, l.ID, domain.LocationPatch{Name: &empty})
	require.ErrorIs(t, err, ErrInvalidRequest)

	desc := "loading bay"
	updated, err := svc.Update(ctx, l.ID, domain.LocationPatch{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, desc, updated.Description)

	_, err = svc.Update(ctx, "missing", domain.LocationPatch{Description: &desc})
	require.ErrorIs(t, err, ErrLocationNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, l.ID))
	require.ErrorIs(t, svc.Delete(ctx, l.ID), ErrLocationNotFound)
	_, err = svc.Get(ctx, l.ID)
	require.ErrorIs(t, err, ErrLocationNotFound)
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	_, _, err := svc.Create(ctx, UserInput{Email: "x@example.com"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, _, err = svc.Create(ctx, UserInput{Name: "X", Email: "x@example.com", Role: "ROOT"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	u, generated, err := svc.Create(ctx, UserInput{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	require.Equal(t, domain.RolePersonal, u.Role)
	require.Equal(t, domain.StatusActive, u.Status)
	require.Len(t, generated, generatedPasswordLength)
	require.NoError(t, cryptox.VerifyPassword(generated, u.PasswordHash))

	_, generated, err = svc.Create(ctx, UserInput{Name: "Bob", Email: "bob@example.com", Password: "hunter22", Role: domain.RoleManagerAdmin})
	require.NoError(t, err)
	require.Empty(t, generated)

	_, _, err = svc.Create(ctx, UserInput{Name: "Ada Again", Email: "ADA@example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)

	taken := "bob@example.com"
	_, err = svc.Update(ctx, u.ID, UserUpdate{Email: &taken})
	require.ErrorIs(t, err, ErrEmailTaken)

	role := domain.RoleSuperAdmin
	status := domain.StatusInactive
	pw := "new-password"
	updated, err := svc.Update(ctx, u.ID, UserUpdate{Role: &role, Status: &status, Password: &pw})
	require.NoError(t, err)
	require.Equal(t, role, updated.Role)
	require.Equal(t, status, updated.Status)
	require.NoError(t, cryptox.VerifyPassword(pw, updated.PasswordHash))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.ErrorIs(t, svc.Delete(ctx, u.ID, u.ID), ErrCannotDeleteSelf)
	require.NoError(t, svc.Delete(ctx, "someone-else", u.ID))
	require.ErrorIs(t, svc.Delete(ctx, "someone-else", u.ID), ErrUserNotFound)
}

func TestUserDeleteDetachesAccessLogs(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}
	presence := newPresence(st)

	u := seedUser(t, st, "ada", domain.RolePersonal)
	l := seedLocation(t, st, "North")
	in, err := presence.CheckIn(ctx, TransitionRequest{UserID: u.ID, LocationID: l.ID})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, "admin", u.ID))

	rec, err := st.AccessLogs().GetAccessLogByID(ctx, in.Record.ID)
	require.NoError(t, err)
	require.Empty(t, rec.UserID)
	require.Equal(t, "ada", rec.UserName)

	// The location is free again once its only occupant is gone.
	require.NoError(t, (&LocationService{Store: st}).Delete(ctx, l.ID))
}

func TestBootstrapEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Users: &UserService{Store: st}}

	created, err := svc.EnsureAdmin(ctx, BootstrapAdmin{})
	require.NoError(t, err)
	require.False(t, created, "nothing to create without an email")

	created, err = svc.EnsureAdmin(ctx, BootstrapAdmin{Email: "root@example.com", Password: "correct horse"})
	require.NoError(t, err)
	require.True(t, created)

	admin, err := st.Users().GetUserByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleSuperAdmin, admin.Role)
	require.Equal(t, "Administrator", admin.Name)

	created, err = svc.EnsureAdmin(ctx, BootstrapAdmin{Email: "other@example.com"})
	require.NoError(t, err)
	require.False(t, created)
}
