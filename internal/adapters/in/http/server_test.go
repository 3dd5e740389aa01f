package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeCapability(t *testing.T, s *Server, method, path string) capability {
	t.Helper()
	for _, r := range s.routes() {
		if r.method == method && r.path == path {
			return r.capability
		}
	}
	t.Fatalf("route %s %s not registered", method, path)
	return capPublic
}

func TestRoutes_CapabilityPolicy(t *testing.T) {
	s := &Server{}

	tests := []struct {
		method string
		path   string
		want   capability
	}{
		// Caller-scoped listings must not be reachable anonymously.
		{http.MethodGet, "/cashouts", capAuthenticated},
		{http.MethodGet, "/myparcels", capAuthenticated},
		{http.MethodGet, "/payments", capAuthenticated},
		{http.MethodPost, "/cashout", capAuthenticated},
		{http.MethodPost, "/parcels", capAuthenticated},
		{http.MethodPost, "/payments", capAuthenticated},

		// Admin surface.
		{http.MethodGet, "/cashouts/allow", capAdmin},
		{http.MethodPatch, "/cashouts/:id", capAdmin},
		{http.MethodGet, "/riders/pending", capAdmin},
		{http.MethodPatch, "/riders/:id", capAdmin},
		{http.MethodPatch, "/users/role/:id", capAdmin},
		{http.MethodDelete, "/parcels/:id", capAdmin},

		// Public surface.
		{http.MethodPost, "/users", capPublic},
		{http.MethodPost, "/auth/login", capPublic},
		{http.MethodGet, "/allparcel", capPublic},
		{http.MethodGet, "/tracking/:parcelId", capPublic},
	}

	for _, tt := range tests {
		got := routeCapability(t, s, tt.method, tt.path)
		assert.Equalf(t, tt.want, got, "%s %s", tt.method, tt.path)
	}
}

func TestRoutes_NoDuplicateRegistrations(t *testing.T) {
	s := &Server{}

	seen := make(map[string]bool)
	for _, r := range s.routes() {
		key := r.method + " " + r.path
		require.Falsef(t, seen[key], "duplicate route %s", key)
		seen[key] = true
	}
}
