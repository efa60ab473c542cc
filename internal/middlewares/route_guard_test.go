package middlewares

import (
	"invoice-dashboard/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		FlagCookieName:    "auth",
		LoginPath:         "/login",
		ProtectedPrefixes: []string{"/dashboard", "/upload", "/invoices", "/invoice"},
	}
}

func TestRouteGuard(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		cookie       *http.Cookie
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "protected path without flag redirects",
			path:         "/dashboard",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:       "protected path with flag passes",
			path:       "/dashboard",
			cookie:     &http.Cookie{Name: "auth", Value: "true"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "login page without flag passes",
			path:       "/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "root without flag passes",
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:         "nested protected path redirects",
			path:         "/invoice/INV-42",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:         "raw prefix match covers lookalike paths",
			path:         "/uploads-archive",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:         "malformed flag value fails closed",
			path:         "/upload",
			cookie:       &http.Cookie{Name: "auth", Value: "yes"},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:         "empty flag value fails closed",
			path:         "/invoices",
			cookie:       &http.Cookie{Name: "auth", Value: ""},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:         "flag under another name is ignored",
			path:         "/invoices",
			cookie:       &http.Cookie{Name: "session_id", Value: "true"},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:       "static assets never guarded",
			path:       "/static/app.css",
			wantStatus: http.StatusOK,
		},
		{
			name:       "api routes not guarded",
			path:       "/api/auth/status",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			RouteGuard(testAuthConfig())(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
		})
	}
}

func TestRouteGuardDoesNotTouchCookies(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rr := httptest.NewRecorder()

	RouteGuard(testAuthConfig())(next).ServeHTTP(rr, req)

	assert.Empty(t, rr.Result().Cookies())
}

func TestIsProtectedPath(t *testing.T) {
	prefixes := testAuthConfig().ProtectedPrefixes

	assert.True(t, IsProtectedPath(prefixes, "/upload"))
	assert.True(t, IsProtectedPath(prefixes, "/invoices?vendor=acme"))
	assert.False(t, IsProtectedPath(prefixes, "/login"))
	assert.False(t, IsProtectedPath(prefixes, "/favicon.ico"))
	assert.False(t, IsProtectedPath(nil, "/dashboard"))
}

func TestHasAuthFlag(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, HasAuthFlag(req, "auth"))

	req.AddCookie(&http.Cookie{Name: "auth", Value: "true"})
	assert.True(t, HasAuthFlag(req, "auth"))
}
