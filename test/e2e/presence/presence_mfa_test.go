package presence_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

// TestMFAEnrollment enrolls TOTP, then checks login requires the code.
func TestMFAEnrollment(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin := loginAdmin(t, baseURL)
	staff, _ := createStaff(t, admin, baseURL, "erin", "PERSONAL")

	enrollment, err := staff.EnrollMFA(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Contains(t, enrollment.URL, "otpauth://totp/")
	require.Equal(t, "erin@example.com", enrollment.Account)

	err = staff.VerifyMFA(ctx, "000000")
	assertAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeInvalidOTP)

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, staff.VerifyMFA(ctx, code))

	client := rollcallsdk.NewClient(baseURL)
	_, err = client.Login(ctx, rollcallsdk.LoginRequest{Email: "erin@example.com", Password: "Staff123!"})
	assertAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeMFARequired)

	code, err = totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	resp, err := client.Login(ctx, rollcallsdk.LoginRequest{Email: "erin@example.com", Password: "Staff123!", OTP: code})
	require.NoError(t, err)
	require.True(t, resp.User.MFAEnabled)

	session, err := client.GetSession(ctx)
	require.NoError(t, err)
	require.Contains(t, session.AMR, "otp")
}
