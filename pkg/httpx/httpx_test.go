package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		xff    string
		want   string
	}{
		{"peer address", "192.168.1.1:12345", "", "192.168.1.1"},
		{"first forwarded entry", "10.0.0.1:1", "203.0.113.1, 192.168.1.1", "203.0.113.1"},
		{"single forwarded entry", "10.0.0.1:1", " 198.51.100.7 ", "198.51.100.7"},
		{"blank forwarded entry", "10.0.0.1:1", " , 1.2.3.4", "10.0.0.1"},
		{"ipv6 peer", "[2001:db8::1]:443", "", "2001:db8::1"},
		{"no port", "192.168.1.9", "", "192.168.1.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			require.Equal(t, tt.want, httpx.ClientIP(req))
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRecover(t *testing.T) {
	h := httpx.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "server_error")
}

func TestIdentifyMiddleware(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "test", NumKeys: 1})
	require.NoError(t, err)

	token, err := km.Sign(jwtx.NewSessionClaims(jwtx.SessionParams{
		Subject: "user-1",
		SID:     "sid-1",
		Role:    "PERSONAL",
		Issuer:  "test",
		TTL:     time.Minute,
	}, time.Now().UTC()))
	require.NoError(t, err)

	var got httpx.Session
	var ok bool
	h := httpx.IdentifyMiddleware(km.Verifier, "sess")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = httpx.SessionFromContext(r.Context())
	}))

	t.Run("bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, ok)
		require.Equal(t, "user-1", got.Claims.Subject)
		require.False(t, got.FromCookie)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sess", Value: token})
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, ok)
		require.True(t, got.FromCookie)
		require.Equal(t, token, got.Token)
	})

	t.Run("invalid credential passes through anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.False(t, ok)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		LocationID string `json:"locationId"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"locationId":"L1"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	require.NoError(t, httpx.DecodeJSON(req, &dst))
	require.Equal(t, "L1", dst.LocationID)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, httpx.DecodeJSON(req, &dst), "empty body is allowed")

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	require.Error(t, httpx.DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.Error(t, httpx.DecodeJSON(req, &dst))
}

func TestWantsHTML(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	require.True(t, httpx.WantsHTML(req))

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Accept", "text/html")
	require.False(t, httpx.WantsHTML(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	require.False(t, httpx.WantsHTML(req))
}
