package middlewares

import (
	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/metrics"
	"net/http"
	"strings"
)

// AuthFlagValue is the only flag cookie value the guard accepts.
const AuthFlagValue = "true"

var unguardedPrefixes = []string{
	"/static/",
	"/favicon.ico",
}

// RouteGuard redirects requests for protected paths to the login page unless
// the request carries the auth flag cookie. It only reads the request, so it
// can run before the session is loaded.
func RouteGuard(cfg config.AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			prefix, protected := protectedPrefix(cfg.ProtectedPrefixes, r.URL.Path)
			if !protected || HasAuthFlag(r, cfg.FlagCookieName) {
				next.ServeHTTP(w, r)
				return
			}

			metrics.GuardRedirects.WithLabelValues(prefix).Inc()
			http.Redirect(w, r, cfg.LoginPath, http.StatusSeeOther)
		})
	}
}

// IsProtectedPath reports whether path falls under one of the prefixes.
func IsProtectedPath(prefixes []string, path string) bool {
	_, ok := protectedPrefix(prefixes, path)
	return ok
}

func protectedPrefix(prefixes []string, path string) (string, bool) {
	for _, skip := range unguardedPrefixes {
		if strings.HasPrefix(path, skip) {
			return "", false
		}
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return prefix, true
		}
	}

	return "", false
}

// HasAuthFlag reports whether the request carries a well-formed auth flag.
func HasAuthFlag(r *http.Request, cookieName string) bool {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return false
	}
	return cookie.Value == AuthFlagValue
}
