package presence_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
)

// TestPresenceLifecycle walks a staff member through check in, a location
// update and check out, then reads the audit trail back.
func TestPresenceLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin := loginAdmin(t, baseURL)
	staff, staffUser := createStaff(t, admin, baseURL, "alice", "PERSONAL")

	north := createLocation(t, admin, "North")
	south := createLocation(t, admin, "South")

	options, err := staff.ListPresenceLocations(ctx)
	require.NoError(t, err)
	require.Len(t, options, 2)

	presence, err := staff.GetPresence(ctx)
	require.NoError(t, err)
	require.Equal(t, "ABSENT", presence.Presence)
	require.Nil(t, presence.Location)

	_, err = staff.CheckOut(ctx, rollcallsdk.TransitionRequest{})
	assertAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeNoActiveCheckIn)

	_, err = staff.CheckIn(ctx, rollcallsdk.TransitionRequest{})
	assertAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeLocationRequired)

	before := staff.Token()
	in, err := staff.CheckIn(ctx, rollcallsdk.TransitionRequest{LocationID: north.ID})
	require.NoError(t, err)
	require.Equal(t, "CHECK_IN", in.AuditRecord.Action)
	require.Equal(t, "North", in.AuditRecord.LocationName)
	require.Equal(t, staffUser.ID, in.AuditRecord.UserID)
	require.Equal(t, north.ID, in.CurrentLocation.ID)
	require.NotEqual(t, before, staff.Token(), "session should be re-signed")

	session, err := staff.GetSession(ctx)
	require.NoError(t, err)
	require.Equal(t, north.ID, session.LocationID)

	_, err = staff.UpdateLocation(ctx, rollcallsdk.TransitionRequest{LocationID: north.ID})
	assertAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeAlreadyAtLocation)

	moved, err := staff.UpdateLocation(ctx, rollcallsdk.TransitionRequest{LocationID: south.ID})
	require.NoError(t, err)
	require.Equal(t, "UPDATE_LOCATION", moved.AuditRecord.Action)
	require.Equal(t, south.ID, moved.CurrentLocation.ID)

	// A location cannot be deleted while someone is checked into it.
	err = admin.DeleteLocation(ctx, south.ID)
	assertAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeLocationInUse)

	out, err := staff.CheckOut(ctx, rollcallsdk.TransitionRequest{})
	require.NoError(t, err)
	require.Equal(t, "CHECK_OUT", out.AuditRecord.Action)
	require.Equal(t, "South", out.AuditRecord.LocationName)
	require.Nil(t, out.CurrentLocation)

	presence, err = staff.GetPresence(ctx)
	require.NoError(t, err)
	require.Equal(t, "ABSENT", presence.Presence)
	require.NotNil(t, presence.LastLogout)

	timeline, err := staff.OwnTimeline(ctx, rollcallsdk.AccessLogQuery{})
	require.NoError(t, err)
	require.Equal(t, 3, timeline.Pagination.Total)
	require.Equal(t, "CHECK_OUT", timeline.Records[0].Action, "newest first")

	// The audit trail keeps the location name after the location is gone.
	require.NoError(t, admin.DeleteLocation(ctx, south.ID))

	logs, err := admin.QueryAccessLogs(ctx, rollcallsdk.AccessLogQuery{
		UserID:    staffUser.ID,
		SortField: "actionTime",
		SortOrder: "asc",
	})
	require.NoError(t, err)
	require.Len(t, logs.Records, 3)
	require.Equal(t, "CHECK_IN", logs.Records[0].Action)
	require.Equal(t, "South", logs.Records[2].LocationName)
	require.Empty(t, logs.Records[2].LocationID)
}

// TestBackdatedTransition verifies a client supplied action time is kept
// while the record time is the server clock.
func TestBackdatedTransition(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin := loginAdmin(t, baseURL)
	staff, _ := createStaff(t, admin, baseURL, "bob", "PERSONAL")
	loc := createLocation(t, admin, "Depot")

	at := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Second)
	in, err := staff.CheckIn(ctx, rollcallsdk.TransitionRequest{LocationID: loc.ID, ActionTime: &at})
	require.NoError(t, err)
	require.True(t, at.Equal(in.AuditRecord.ActionTime))
	require.True(t, in.AuditRecord.RecordedAt.After(at))

	day := at.Format("2006-01-02")
	logs, err := admin.LocationTimeline(ctx, loc.ID, rollcallsdk.AccessLogQuery{DateFrom: day, DateTo: day})
	require.NoError(t, err)
	require.Len(t, logs.Records, 1)
}

// TestLogoutDropsSession verifies the client forgets its credential on
// logout.
func TestLogoutDropsSession(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin := loginAdmin(t, baseURL)

	require.NoError(t, admin.Logout(ctx))
	require.Empty(t, admin.Token())

	_, err := admin.GetSession(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeUnauthenticated)
}
