package presence_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for presence service end-to-end
 * tests. This includes container setup, sign in and assertions.
 */

const (
	testImageName = "rollcall-test:latest"

	adminEmail    = "admin@example.com"
	adminName     = "Administrator"
	adminPassword = "Admin123!"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Rollcall Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Rollcall Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/rollcall/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// baseEnv is the container environment shared by every setup.
func baseEnv() map[string]string {
	return map[string]string{
		"ENV":                      "test",
		"LOG_LEVEL":                "info",
		"LOG_FORMAT":               "json",
		"ROLLCALL_DATABASE_FILE":   "/data/rollcall.db",
		"ROLLCALL_PEPPER_FILE":     "/data/pepper",
		"ROLLCALL_ISSUER":          "rollcall",
		"ROLLCALL_ALGORITHM":       "EdDSA",
		"ROLLCALL_NUM_KEYS":        "1",
		"ROLLCALL_COOKIE_SECURE":   "false",
		"BOOTSTRAP_ADMIN_EMAIL":    adminEmail,
		"BOOTSTRAP_ADMIN_NAME":     adminName,
		"BOOTSTRAP_ADMIN_PASSWORD": adminPassword,
	}
}

// setupContainer starts the service with relaxed rate limits and returns
// the base URL.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseEnv()
	// Tests make many rapid requests which would otherwise hit the strict production limits
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupContainerWithDefaultRateLimits starts the service with the
// production rate limits. Only the rate limit tests should use it.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// loginAdmin signs in as the bootstrapped administrator.
func loginAdmin(t *testing.T, baseURL string) *rollcallsdk.Client {
	t.Helper()
	return login(t, baseURL, adminEmail, adminPassword)
}

func login(t *testing.T, baseURL, email, password string) *rollcallsdk.Client {
	t.Helper()

	client := rollcallsdk.NewClient(baseURL)
	resp, err := client.Login(t.Context(), rollcallsdk.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Session, "session should not be empty")
	require.Equal(t, email, resp.User.Email)
	return client
}

// createStaff creates a user with the given role through the admin client
// and signs them in.
func createStaff(t *testing.T, admin *rollcallsdk.Client, baseURL, name, role string) (*rollcallsdk.Client, rollcallsdk.User) {
	t.Helper()

	email := name + "@example.com"
	created, err := admin.CreateUser(t.Context(), rollcallsdk.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: "Staff123!",
		Role:     role,
	})
	require.NoError(t, err)
	require.Empty(t, created.GeneratedPassword)

	return login(t, baseURL, email, "Staff123!"), created.User
}

func createLocation(t *testing.T, admin *rollcallsdk.Client, name string) rollcallsdk.Location {
	t.Helper()

	loc, err := admin.CreateLocation(t.Context(), rollcallsdk.CreateLocationRequest{
		Name:    name,
		Address: name + " Street",
	})
	require.NoError(t, err)
	require.NotEmpty(t, loc.ID)
	return *loc
}

// assertAPIError verifies err is an API error with the given status and code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, rollcallsdk.StatusCode(err), "unexpected status: %v", err)
	require.True(t, rollcallsdk.IsCode(err, code), "expected %s, got: %v", code, err)
}

func assertHealthy(t *testing.T, health *rollcallsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
