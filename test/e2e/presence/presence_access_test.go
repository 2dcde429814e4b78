package presence_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
)

// TestRoleAccess verifies each role only reaches its own routes.
func TestRoleAccess(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin := loginAdmin(t, baseURL)
	manager, _ := createStaff(t, admin, baseURL, "manager", "MANAGER_ADMIN")
	staff, staffUser := createStaff(t, admin, baseURL, "carol", "PERSONAL")
	loc := createLocation(t, admin, "Office")

	t.Run("anonymous", func(t *testing.T) {
		client := rollcallsdk.NewClient(baseURL)
		_, err := client.GetPresence(ctx)
		assertAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeUnauthenticated)
	})

	t.Run("personal", func(t *testing.T) {
		_, err := staff.ListLocations(ctx)
		assertAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeForbidden)

		_, err = staff.QueryAccessLogs(ctx, rollcallsdk.AccessLogQuery{})
		assertAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeForbidden)

		_, err = staff.ListUsers(ctx)
		assertAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeForbidden)
	})

	t.Run("manager", func(t *testing.T) {
		locations, err := manager.ListLocations(ctx)
		require.NoError(t, err)
		require.Len(t, locations, 1)

		_, err = manager.QueryAccessLogs(ctx, rollcallsdk.AccessLogQuery{})
		require.NoError(t, err)

		_, err = manager.GetUser(ctx, staffUser.ID)
		require.NoError(t, err)

		_, err = manager.CreateLocation(ctx, rollcallsdk.CreateLocationRequest{Name: "Annex"})
		assertAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeForbidden)

		err = manager.DeleteUser(ctx, staffUser.ID)
		assertAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeForbidden)
	})

	t.Run("super admin", func(t *testing.T) {
		name := "Head Office"
		updated, err := admin.PatchLocation(ctx, loc.ID, rollcallsdk.UpdateLocationRequest{Name: &name})
		require.NoError(t, err)
		require.Equal(t, name, updated.Name)

		users, err := admin.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
	})
}

// TestDeactivatedUserCannotSignIn verifies an inactive account is refused
// at login.
func TestDeactivatedUserCannotSignIn(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin := loginAdmin(t, baseURL)
	_, user := createStaff(t, admin, baseURL, "dave", "PERSONAL")

	inactive := "INACTIVE"
	updated, err := admin.PatchUser(ctx, user.ID, rollcallsdk.UpdateUserRequest{Status: &inactive})
	require.NoError(t, err)
	require.Equal(t, "INACTIVE", updated.Status)

	client := rollcallsdk.NewClient(baseURL)
	_, err = client.Login(ctx, rollcallsdk.LoginRequest{Email: "dave@example.com", Password: "Staff123!"})
	assertAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeAccountInactive)
}

// TestAdminCannotDeleteSelf verifies the last guard on user deletion.
func TestAdminCannotDeleteSelf(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin := loginAdmin(t, baseURL)

	session, err := admin.GetSession(ctx)
	require.NoError(t, err)

	err = admin.DeleteUser(ctx, session.User.ID)
	assertAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeCannotDeleteSelf)
}
