package middlewares

import (
	"net/http"
)

// ReassertAuthFlag rewrites the auth flag cookie for sessions that are still
// logged in but arrived without it. Must run after AppContextMiddleware.
func ReassertAuthFlag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		appCtx.SessionManager.ReassertAuthFlag(appCtx)

		next.ServeHTTP(w, r)
	})
}
