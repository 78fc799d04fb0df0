package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/pos-api/internal/config"
	"github.com/vietanh2810/pos-api/internal/pkg/jwthelper"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost:5000",
			Port:               "5000",
			JWTSigningKey:      "test-key",
			AllowedCORSDomains: "http://localhost:3000",
		},
		Gin: &config.GinConfig{Mode: "test"},
	}

	// Routes that never reach a handler (healthcheck, auth rejections) do not
	// touch the database, so a nil connection is fine here.
	return NewServer(conf, nil)
}

func TestServer_Healthcheck(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	s.Router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestServer_ProtectedRoutesRequireJWT(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		path   string
	}{
		{"create product", http.MethodPost, "/api/v1/products"},
		{"update product", http.MethodPut, "/api/v1/products/1"},
		{"delete product", http.MethodDelete, "/api/v1/products/1"},
		{"create sale", http.MethodPost, "/api/v1/sales"},
		{"get user", http.MethodGet, "/api/v1/users/1"},
	}

	s := newTestServer(t)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
			resp := httptest.NewRecorder()
			// when
			s.Router.ServeHTTP(resp, req)
			// then
			assert.Equal(t, http.StatusUnauthorized, resp.Code)
		})
	}
}

func TestServer_RejectsMalformedBearerTokens(t *testing.T) {
	s := newTestServer(t)

	t.Run("missing Bearer prefix", func(t *testing.T) {
		token, err := jwthelper.GenerateToken("test-key", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", strings.NewReader(`{}`))
		req.Header.Set("Authorization", token)
		resp := httptest.NewRecorder()
		s.Router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		token, err := jwthelper.GenerateToken("other-key", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		s.Router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}
